package commands

import (
	"context"
	"errors"
	"time"

	"petstay/internal/domain/coupon"
	"petstay/internal/domain/reservation"
	"petstay/internal/domain/user"
	"petstay/internal/pkg/clock"
	"petstay/internal/pkg/errs"
	"petstay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrCouponNotFound      = errs.New("coupon not found")
	ErrPetNotFound         = errs.New("pet not found for customer")
	ErrValidation          = errs.New("reservation validation failed")
	ErrInvalidTransition   = errs.New("invalid lifecycle transition")
	ErrForbiddenRole       = errs.New("operation forbidden for role")
	ErrImmutableState      = errs.New("reservation is immutable")
	ErrIneligibleCoupon    = errs.New("coupon is not eligible")
	ErrManualDiscountSet   = errs.New("manual discount already set")
)

type CreateReservationInput struct {
	CustomerID *uuid.UUID
	PetIDs     []uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	CouponCode *string
	Note       string
}

type UpdateReservationInput struct {
	PetIDs    []uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Note      *string
}

type SubmitPaymentProofInput struct {
	ArtifactRef string
	Note        string
}

type ReservationCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateReservationInput) (uuid.UUID, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateReservationInput) error
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error

	ApplyCoupon(ctx context.Context, actor user.Actor, id uuid.UUID, code string) error
	RemoveCoupon(ctx context.Context, actor user.Actor, id uuid.UUID) error
	GrantManualDiscount(ctx context.Context, actor user.Actor, id uuid.UUID, amountCents int64) error
	ClearManualDiscount(ctx context.Context, actor user.Actor, id uuid.UUID) error

	Confirm(ctx context.Context, actor user.Actor, id uuid.UUID) error
	RequestPayment(ctx context.Context, actor user.Actor, id uuid.UUID) error
	SubmitPaymentProof(ctx context.Context, actor user.Actor, id uuid.UUID, in SubmitPaymentProofInput) error
	ApprovePayment(ctx context.Context, actor user.Actor, id uuid.UUID) error
	Finalize(ctx context.Context, actor user.Actor, id uuid.UUID) error
	Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	clock   clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		clock:   clk,
	}
}

func (u *reservationCommandsImpl) Create(ctx context.Context, actor user.Actor, in CreateReservationInput) (uuid.UUID, error) {
	customerID := actor.ID
	if in.CustomerID != nil {
		customerID = *in.CustomerID
	}

	var reservationID uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pets, err := u.resolvePets(ctx, tx, customerID, in.PetIDs)
		if err != nil {
			return err
		}

		res, err := u.factory.NewReservation(actor, customerID, pets, in.StartDate, in.EndDate, reservation.NewNote(in.Note))
		if err != nil {
			return liftReservationErr(err)
		}

		if in.CouponCode != nil {
			if err := u.attachCoupon(ctx, tx, res, actor, *in.CouponCode); err != nil {
				return err
			}
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		reservationID = res.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reservationID, nil
}

func (u *reservationCommandsImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateReservationInput) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := u.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		pets, err := u.resolvePets(ctx, tx, res.CustomerID(), in.PetIDs)
		if err != nil {
			return err
		}

		validPets, stay, err := u.factory.NewStay(pets, in.StartDate, in.EndDate)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}

		if err := res.Reschedule(actor, validPets, stay, u.factory.Calculator(), u.clock.Now()); err != nil {
			return liftReservationErr(err)
		}

		// A coupon already on the reservation must stay eligible under
		// the recomputed quote, or the whole update is rejected.
		if res.DiscountSource() == reservation.DiscountSourceCoupon && res.CouponID() != nil {
			c, err := tx.Coupons().FindByID(ctx, *res.CouponID())
			if err != nil {
				return errs.Mark(err, ErrCouponNotFound)
			}
			discount, err := c.Evaluate(u.clock.Now(), factsFor(res))
			if err != nil {
				return errs.Mark(err, ErrIneligibleCoupon)
			}
			if err := res.ApplyCouponDiscount(actor, c.ID(), reservation.MoneyFromCents(discount), u.clock.Now()); err != nil {
				return liftReservationErr(err)
			}
		}

		if in.Note != nil {
			if err := res.UpdateNote(actor, reservation.NewNote(*in.Note), u.clock.Now()); err != nil {
				return liftReservationErr(err)
			}
		}

		return tx.Reservations().Save(ctx, res)
	})
}

func (u *reservationCommandsImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := u.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := res.EnsureDeletable(actor); err != nil {
			return liftReservationErr(err)
		}
		return tx.Reservations().Delete(ctx, id)
	})
}

func (u *reservationCommandsImpl) ApplyCoupon(ctx context.Context, actor user.Actor, id uuid.UUID, code string) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := u.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := u.attachCoupon(ctx, tx, res, actor, code); err != nil {
			return err
		}
		return tx.Reservations().Save(ctx, res)
	})
}

func (u *reservationCommandsImpl) RemoveCoupon(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := u.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		previous := res.CouponID()
		if err := res.RemoveCouponDiscount(actor, u.clock.Now()); err != nil {
			return liftReservationErr(err)
		}
		if previous != nil {
			if err := tx.Coupons().Release(ctx, *previous); err != nil {
				return err
			}
		}
		return tx.Reservations().Save(ctx, res)
	})
}

func (u *reservationCommandsImpl) GrantManualDiscount(ctx context.Context, actor user.Actor, id uuid.UUID, amountCents int64) error {
	amount, err := reservation.NewMoney(amountCents)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := u.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		previous := res.CouponID()
		if err := res.GrantManualDiscount(actor, amount, u.clock.Now()); err != nil {
			return liftReservationErr(err)
		}
		// The manual grant replaces a coupon discount, so its usage
		// slot is returned.
		if previous != nil {
			if err := tx.Coupons().Release(ctx, *previous); err != nil {
				return err
			}
		}
		return tx.Reservations().Save(ctx, res)
	})
}

func (u *reservationCommandsImpl) ClearManualDiscount(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := u.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := res.ClearManualDiscount(actor, u.clock.Now()); err != nil {
			return liftReservationErr(err)
		}
		return tx.Reservations().Save(ctx, res)
	})
}

func (u *reservationCommandsImpl) Confirm(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return u.transition(ctx, actor, id, (*reservation.Reservation).Confirm)
}

func (u *reservationCommandsImpl) RequestPayment(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return u.transition(ctx, actor, id, (*reservation.Reservation).RequestPayment)
}

func (u *reservationCommandsImpl) ApprovePayment(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return u.transition(ctx, actor, id, (*reservation.Reservation).ApprovePayment)
}

func (u *reservationCommandsImpl) Finalize(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return u.transition(ctx, actor, id, (*reservation.Reservation).Finalize)
}

func (u *reservationCommandsImpl) Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return u.transition(ctx, actor, id, (*reservation.Reservation).Cancel)
}

func (u *reservationCommandsImpl) SubmitPaymentProof(ctx context.Context, actor user.Actor, id uuid.UUID, in SubmitPaymentProofInput) error {
	proof, err := reservation.NewPaymentProof(in.ArtifactRef, in.Note, u.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := u.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := res.AttachPaymentProof(actor, proof, u.clock.Now()); err != nil {
			return liftReservationErr(err)
		}
		return tx.Reservations().Save(ctx, res)
	})
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (u *reservationCommandsImpl) transition(
	ctx context.Context,
	actor user.Actor,
	id uuid.UUID,
	apply func(*reservation.Reservation, user.Actor, time.Time) error,
) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := u.loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := apply(res, actor, u.clock.Now()); err != nil {
			return liftReservationErr(err)
		}
		return tx.Reservations().Save(ctx, res)
	})
}

func (u *reservationCommandsImpl) loadForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationNotFound)
	}
	return res, nil
}

// attachCoupon evaluates and attaches a coupon, keeping the usage counter
// consistent: a replaced coupon's slot is released, and re-applying the
// coupon already on the reservation does not redeem twice.
func (u *reservationCommandsImpl) attachCoupon(ctx context.Context, tx shared.Tx, res *reservation.Reservation, actor user.Actor, code string) error {
	c, err := tx.Coupons().FindByCode(ctx, code)
	if err != nil {
		return errs.Mark(err, ErrCouponNotFound)
	}

	discount, err := c.Evaluate(u.clock.Now(), factsFor(res))
	if err != nil {
		return errs.Mark(err, ErrIneligibleCoupon)
	}

	previous := res.CouponID()
	if err := res.ApplyCouponDiscount(actor, c.ID(), reservation.MoneyFromCents(discount), u.clock.Now()); err != nil {
		return liftReservationErr(err)
	}

	if previous != nil && *previous == c.ID() {
		return nil
	}
	if previous != nil {
		if err := tx.Coupons().Release(ctx, *previous); err != nil {
			return err
		}
	}
	if err := tx.Coupons().Redeem(ctx, c.ID()); err != nil {
		// The storage-level compare-and-increment lost the race.
		return errs.Mark(coupon.ErrExhausted, ErrIneligibleCoupon)
	}
	return nil
}

func factsFor(res *reservation.Reservation) coupon.EligibilityFacts {
	quote := res.PriceQuote()
	return coupon.EligibilityFacts{
		SubtotalCents: quote.Subtotal.Cents(),
		PetCount:      len(res.Pets()),
		Nights:        quote.Nights,
	}
}

func (u *reservationCommandsImpl) resolvePets(ctx context.Context, tx shared.Tx, customerID uuid.UUID, ids []uuid.UUID) ([]reservation.PetRef, error) {
	snapshots, err := tx.Pets().FindOwnedByIDs(ctx, customerID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]shared.PetSnapshot, len(snapshots))
	for _, s := range snapshots {
		byID[s.ID] = s
	}
	refs := make([]reservation.PetRef, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, ErrPetNotFound
		}
		refs = append(refs, reservation.NewPetRef(s.ID, s.Name))
	}
	return refs, nil
}

// liftReservationErr marks domain guard failures with the usecase-level
// sentinels the transport layer switches on. The domain sentinel stays in
// the chain for errors.Is.
func liftReservationErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrForbiddenRole):
		return errs.Mark(err, ErrForbiddenRole)
	case errors.Is(err, reservation.ErrInvalidTransition), errors.Is(err, reservation.ErrNotDeletable):
		return errs.Mark(err, ErrInvalidTransition)
	case errors.Is(err, reservation.ErrImmutableState):
		return errs.Mark(err, ErrImmutableState)
	case errors.Is(err, reservation.ErrManualDiscountSet):
		return errs.Mark(err, ErrManualDiscountSet)
	default:
		return errs.Mark(err, ErrValidation)
	}
}

// CouponIneligibilityReason exposes the specific rejection token for an
// ErrIneligibleCoupon result so the UI can explain it.
func CouponIneligibilityReason(err error) string {
	if errors.Is(err, ErrCouponNotFound) {
		return "not-found"
	}
	if reason := coupon.IneligibilityReason(err); reason != "" {
		return reason
	}
	return "ineligible"
}
