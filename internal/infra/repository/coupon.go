package repository

import (
	"context"
	"time"

	"petstay/internal/domain/coupon"
	"petstay/internal/infra"
	"petstay/internal/infra/db"
	"petstay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

const couponColumns = `
	id, code, description, kind, percent, fixed_amount_cents,
	min_subtotal_cents, min_pets, min_nights,
	valid_from, valid_to, max_uses, used_count, is_active,
	created_at, updated_at`

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
	}
	row := r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE code = $1`,
		normalized.String(),
	)
	return scanCoupon(row)
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE id = $1`,
		id,
	)
	return scanCoupon(row)
}

const insertCouponSQL = `
INSERT INTO coupons (
	id, code, description, kind, percent, fixed_amount_cents,
	min_subtotal_cents, min_pets, min_nights,
	valid_from, valid_to, max_uses, used_count, is_active,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())`

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	policy := c.Policy()
	_, err := r.db.Exec(ctx, insertCouponSQL,
		c.ID(), c.Code().String(), c.Description(),
		int(policy.Kind()), policy.Percent(), policy.FixedAmountCents(),
		policy.MinSubtotalCents(), policy.MinPets(), policy.MinNights(),
		c.ValidFrom(), c.ValidTo(), c.MaxUses(), c.UsedCount(), c.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

const updateCouponSQL = `
UPDATE coupons SET
	description = $2, kind = $3, percent = $4, fixed_amount_cents = $5,
	min_subtotal_cents = $6, min_pets = $7, min_nights = $8,
	valid_from = $9, valid_to = $10, max_uses = $11, is_active = $12,
	updated_at = now()
WHERE id = $1`

func (r *CouponRepository) Save(ctx context.Context, c *coupon.Coupon) error {
	policy := c.Policy()
	tag, err := r.db.Exec(ctx, updateCouponSQL,
		c.ID(), c.Description(),
		int(policy.Kind()), policy.Percent(), policy.FixedAmountCents(),
		policy.MinSubtotalCents(), policy.MinPets(), policy.MinNights(),
		c.ValidFrom(), c.ValidTo(), c.MaxUses(), c.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found on save", nil, infra.KindNotFound)
	}
	return nil
}

// Redeem is a compare-and-increment: the predicate re-checks the cap on the
// current row so two racing redemptions can never exceed max_uses.
func (r *CouponRepository) Redeem(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE coupons SET used_count = used_count + 1, updated_at = now()
		 WHERE id = $1 AND (max_uses IS NULL OR used_count < max_uses)`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to redeem coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon usage cap reached", nil, infra.KindConflict)
	}
	return nil
}

func (r *CouponRepository) Release(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE coupons SET used_count = GREATEST(used_count - 1, 0), updated_at = now()
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to release coupon usage", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoupon(row rowScanner) (*coupon.Coupon, error) {
	var (
		id               uuid.UUID
		code             string
		description      string
		kind             int
		percent          float64
		fixedAmountCents int64
		minSubtotalCents int64
		minPets          int
		minNights        int
		validFrom        *time.Time
		validTo          *time.Time
		maxUses          *int32
		usedCount        int32
		isActive         bool
		createdAt        time.Time
		updatedAt        time.Time
	)

	err := row.Scan(
		&id, &code, &description, &kind, &percent, &fixedAmountCents,
		&minSubtotalCents, &minPets, &minNights,
		&validFrom, &validTo, &maxUses, &usedCount, &isActive,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan coupon", err)
	}

	domainCode, err := coupon.NewCode(code)
	if err != nil {
		return nil, infra.WrapRepoErr("stored coupon code invalid", err)
	}
	policy, err := coupon.NewPolicy(coupon.Kind(kind), percent, fixedAmountCents, minSubtotalCents, minPets, minNights)
	if err != nil {
		return nil, infra.WrapRepoErr("stored coupon policy invalid", err)
	}

	return coupon.ReconstructCoupon(
		id, domainCode, description, policy,
		validFrom, validTo, maxUses, usedCount, isActive,
		createdAt, updatedAt,
	), nil
}
