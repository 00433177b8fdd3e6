package commands

import (
	"context"
	"time"

	"petstay/internal/domain/coupon"
	"petstay/internal/infra"
	"petstay/internal/pkg/errs"
	"petstay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCouponValidation = errs.New("coupon validation failed")
	ErrDuplicateCode    = errs.New("coupon code already exists")
)

type CouponInput struct {
	Code             string
	Description      string
	Kind             int
	Percent          float64
	FixedAmountCents int64
	MinSubtotalCents int64
	MinPets          int
	MinNights        int
	ValidFrom        *time.Time
	ValidTo          *time.Time
	MaxUses          *int32
}

type CouponCommands interface {
	Create(ctx context.Context, in CouponInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in CouponInput) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) error
}

type couponCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCouponCommands(uow shared.UnitOfWork) CouponCommands {
	return &couponCommandsImpl{uow: uow}
}

func (u *couponCommandsImpl) Create(ctx context.Context, in CouponInput) (uuid.UUID, error) {
	code, policy, err := buildCouponParts(in)
	if err != nil {
		return uuid.Nil, err
	}

	c := coupon.NewCoupon(code, in.Description, policy, in.ValidFrom, in.ValidTo, in.MaxUses)
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Coupons().Create(ctx, c); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateCode)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (u *couponCommandsImpl) Update(ctx context.Context, id uuid.UUID, in CouponInput) error {
	_, policy, err := buildCouponParts(in)
	if err != nil {
		return err
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Coupons().FindByID(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrCouponNotFound)
		}
		c.Update(in.Description, policy, in.ValidFrom, in.ValidTo, in.MaxUses)
		return tx.Coupons().Save(ctx, c)
	})
}

func (u *couponCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	return u.setActive(ctx, id, false)
}

func (u *couponCommandsImpl) Activate(ctx context.Context, id uuid.UUID) error {
	return u.setActive(ctx, id, true)
}

func (u *couponCommandsImpl) setActive(ctx context.Context, id uuid.UUID, active bool) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Coupons().FindByID(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrCouponNotFound)
		}
		if active {
			c.Activate()
		} else {
			c.Deactivate()
		}
		return tx.Coupons().Save(ctx, c)
	})
}

func buildCouponParts(in CouponInput) (coupon.Code, coupon.Policy, error) {
	code, err := coupon.NewCode(in.Code)
	if err != nil {
		return "", coupon.Policy{}, errs.Mark(err, ErrCouponValidation)
	}
	policy, err := coupon.NewPolicy(
		coupon.Kind(in.Kind),
		in.Percent,
		in.FixedAmountCents,
		in.MinSubtotalCents,
		in.MinPets,
		in.MinNights,
	)
	if err != nil {
		return "", coupon.Policy{}, errs.Mark(err, ErrCouponValidation)
	}
	return code, policy, nil
}
