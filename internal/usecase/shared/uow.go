package shared

import (
	"context"

	"petstay/internal/domain/coupon"
	"petstay/internal/domain/reservation"
	"petstay/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrConcurrencyConflict is returned when the per-reservation or
// per-coupon atomicity guarantee cannot be honored after retries.
// Callers should retry the whole read-compute-write cycle.
var ErrConcurrencyConflict = errs.New("concurrent modification conflict")

// UnitOfWork serializes a read-compute-write cycle on the aggregates it
// touches. Operations on distinct reservation ids proceed in parallel.
type UnitOfWork interface {
	// Within runs fn in a transaction, retrying on serialization
	// conflicts. Either everything fn did is committed or nothing is.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Coupons() CouponRepository
	Pets() PetRepository
	Users() UserRepository
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	// FindByIDForUpdate locks the reservation row for the duration of
	// the transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Save(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	Create(ctx context.Context, c *coupon.Coupon) error
	Save(ctx context.Context, c *coupon.Coupon) error
	// Redeem increments the usage counter with a storage-level
	// compare-and-increment; a cap overrun surfaces as a conflict.
	Redeem(ctx context.Context, id uuid.UUID) error
	// Release returns a usage slot when a coupon is replaced or removed
	// from a reservation. Cancellation never releases.
	Release(ctx context.Context, id uuid.UUID) error
}

type PetRepository interface {
	// FindOwnedByIDs returns snapshots for the given pet ids that belong
	// to the customer; a missing or foreign id is simply absent.
	FindOwnedByIDs(ctx context.Context, customerID uuid.UUID, ids []uuid.UUID) ([]PetSnapshot, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
