package queries

import (
	"context"

	"petstay/internal/domain/user"
	"petstay/internal/infra"
	"petstay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
)

const defaultListLimit = 50

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error)
	// ListByCustomer is scoped to the actor for customers; staff may list
	// any customer's reservations.
	ListByCustomer(ctx context.Context, actor user.Actor, customerID uuid.UUID, limit, offset int32) ([]*ReservationListItem, error)
	ListAll(ctx context.Context, actor user.Actor, status *string, limit, offset int32) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*ReservationListItem, error)
	FindAll(ctx context.Context, status *string, limit, offset int32) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !actor.IsStaff() && view.CustomerID != actor.ID {
		return nil, ErrReservationAccess
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByCustomer(ctx context.Context, actor user.Actor, customerID uuid.UUID, limit, offset int32) ([]*ReservationListItem, error) {
	if !actor.IsStaff() && customerID != actor.ID {
		return nil, ErrReservationAccess
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.FindByCustomerID(ctx, customerID, limit, offset)
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context, actor user.Actor, status *string, limit, offset int32) ([]*ReservationListItem, error) {
	if !actor.IsStaff() {
		return nil, ErrReservationAccess
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.FindAll(ctx, status, limit, offset)
}
