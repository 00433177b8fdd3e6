//go:build unit || e2e

package builder

import (
	"time"

	"petstay/internal/domain/coupon"
	"petstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID               uuid.UUID
	Code             string
	Description      string
	Kind             coupon.Kind
	Percent          float64
	FixedAmountCents int64
	MinSubtotalCents int64
	MinPets          int
	MinNights        int
	ValidFrom        *time.Time
	ValidTo          *time.Time
	MaxUses          *int32
	UsedCount        int32
	Active           bool
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:          uuid.New(),
		Code:        "WELCOME10",
		Description: "10% off the stay",
		Kind:        coupon.KindPercentOfTotal,
		Percent:     10,
		Active:      true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithKind(kind coupon.Kind) *CouponBuilder {
	b.Kind = kind
	return b
}

func (b *CouponBuilder) WithPercent(percent float64) *CouponBuilder {
	b.Percent = percent
	return b
}

func (b *CouponBuilder) WithFixedAmount(cents int64) *CouponBuilder {
	b.FixedAmountCents = cents
	return b
}

func (b *CouponBuilder) WithMinSubtotal(cents int64) *CouponBuilder {
	b.MinSubtotalCents = cents
	return b
}

func (b *CouponBuilder) WithMinPets(n int) *CouponBuilder {
	b.MinPets = n
	return b
}

func (b *CouponBuilder) WithMinNights(n int) *CouponBuilder {
	b.MinNights = n
	return b
}

func (b *CouponBuilder) WithWindow(from, to time.Time) *CouponBuilder {
	b.ValidFrom = &from
	b.ValidTo = &to
	return b
}

func (b *CouponBuilder) WithMaxUses(n int32) *CouponBuilder {
	b.MaxUses = &n
	return b
}

func (b *CouponBuilder) WithUsedCount(n int32) *CouponBuilder {
	b.UsedCount = n
	return b
}

func (b *CouponBuilder) Inactive() *CouponBuilder {
	b.Active = false
	return b
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	code, err := coupon.NewCode(b.Code)
	if err != nil {
		return nil, err
	}
	policy, err := coupon.NewPolicy(b.Kind, b.Percent, b.FixedAmountCents, b.MinSubtotalCents, b.MinPets, b.MinNights)
	if err != nil {
		return nil, err
	}
	return coupon.ReconstructCoupon(
		b.ID, code, b.Description, policy,
		b.ValidFrom, b.ValidTo, b.MaxUses, b.UsedCount, b.Active,
		BaseTime, BaseTime,
	), nil
}

func (b *CouponBuilder) MustBuild() *coupon.Coupon {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	view := &queries.CouponView{
		ID:          b.ID,
		Code:        b.Code,
		Description: b.Description,
		Kind:        int(b.Kind),
		ValidFrom:   b.ValidFrom,
		ValidTo:     b.ValidTo,
		MaxUses:     b.MaxUses,
		UsedCount:   b.UsedCount,
		IsActive:    b.Active,
		CreatedAt:   BaseTime,
		UpdatedAt:   BaseTime,
	}
	if b.Percent != 0 {
		percent := b.Percent
		view.Percent = &percent
	}
	if b.FixedAmountCents != 0 {
		fixed := b.FixedAmountCents
		view.FixedAmountCents = &fixed
	}
	if b.MinSubtotalCents != 0 {
		minSubtotal := b.MinSubtotalCents
		view.MinSubtotalCents = &minSubtotal
	}
	if b.MinPets != 0 {
		minPets := b.MinPets
		view.MinPets = &minPets
	}
	if b.MinNights != 0 {
		minNights := b.MinNights
		view.MinNights = &minNights
	}
	return view
}
