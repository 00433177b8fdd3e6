package readstore

import (
	"context"
	"time"

	"petstay/internal/domain/coupon"
	"petstay/internal/infra"
	"petstay/internal/infra/db"
	"petstay/internal/infra/repository"
	"petstay/internal/pkg/pgconv"
	"petstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponReadStore struct {
	db   db.DBTX
	repo *repository.CouponRepository
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{
		db:   dbtx,
		repo: repository.NewCouponRepository(dbtx),
	}
}

const couponViewSQL = `
SELECT id, code, description, kind, percent, fixed_amount_cents,
       min_subtotal_cents, min_pets, min_nights,
       valid_from, valid_to, max_uses, used_count, is_active,
       created_at, updated_at
FROM coupons`

func (s *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row := s.db.QueryRow(ctx, couponViewSQL+` WHERE id = $1`, id)
	return scanCouponView(row)
}

func (s *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
	}
	row := s.db.QueryRow(ctx, couponViewSQL+` WHERE code = $1`, normalized.String())
	return scanCouponView(row)
}

func (s *CouponReadStore) FindAll(ctx context.Context, includeInactive bool, limit, offset int32) ([]*queries.CouponView, error) {
	query := couponViewSQL
	args := []any{limit, offset}
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var views []*queries.CouponView
	for rows.Next() {
		view, err := scanCouponView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupons", err)
	}
	return views, nil
}

// FindEntityByCode serves quote previews, which evaluate the aggregate
// without locking or redeeming it.
func (s *CouponReadStore) FindEntityByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	return s.repo.FindByCode(ctx, code)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCouponView(row rowScanner) (*queries.CouponView, error) {
	var view queries.CouponView
	var percent float64
	var fixedAmountCents, minSubtotalCents int64
	var minPets, minNights int
	var validFrom, validTo *time.Time

	err := row.Scan(
		&view.ID, &view.Code, &view.Description, &view.Kind,
		&percent, &fixedAmountCents,
		&minSubtotalCents, &minPets, &minNights,
		&validFrom, &validTo, &view.MaxUses, &view.UsedCount, &view.IsActive,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan coupon view", err)
	}

	if percent > 0 {
		view.Percent = &percent
	}
	if fixedAmountCents > 0 {
		view.FixedAmountCents = &fixedAmountCents
	}
	if minSubtotalCents > 0 {
		view.MinSubtotalCents = &minSubtotalCents
	}
	if minPets > 0 {
		view.MinPets = &minPets
	}
	if minNights > 0 {
		view.MinNights = &minNights
	}
	view.ValidFrom = validFrom
	view.ValidTo = validTo
	return &view, nil
}
