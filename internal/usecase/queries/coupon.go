package queries

import (
	"context"

	"petstay/internal/infra"
	"petstay/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCouponNotFound = errs.New("coupon not found")

type CouponQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	GetByCode(ctx context.Context, code string) (*CouponView, error)
	List(ctx context.Context, includeInactive bool, limit, offset int32) ([]*CouponView, error)
}

type CouponViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	FindByCode(ctx context.Context, code string) (*CouponView, error)
	FindAll(ctx context.Context, includeInactive bool, limit, offset int32) ([]*CouponView, error)
}

type couponQueriesImpl struct {
	repo CouponViewRepo
}

func NewCouponQueries(repo CouponViewRepo) CouponQueries {
	return &couponQueriesImpl{repo: repo}
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *couponQueriesImpl) GetByCode(ctx context.Context, code string) (*CouponView, error) {
	view, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *couponQueriesImpl) List(ctx context.Context, includeInactive bool, limit, offset int32) ([]*CouponView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.FindAll(ctx, includeInactive, limit, offset)
}
