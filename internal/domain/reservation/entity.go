package reservation

import (
	"errors"
	"time"

	"petstay/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid reservation transition")
	ErrForbiddenRole     = errors.New("actor is not allowed to perform this operation")
	ErrImmutableState    = errors.New("reservation can no longer be modified")
	ErrManualDiscountSet = errors.New("manual discount must be cleared before applying a coupon")
	ErrNoCouponApplied   = errors.New("reservation has no coupon discount")
	ErrNoManualDiscount  = errors.New("reservation has no manual discount")
	ErrNotDeletable      = errors.New("only reservations in created state can be deleted")
)

// Reservation is the aggregate root of the booking lifecycle. All state and
// monetary mutations go through its methods; a rejected operation leaves the
// aggregate untouched.
type Reservation struct {
	id             uuid.UUID
	customerID     uuid.UUID
	pets           []PetRef
	stay           StayPeriod
	quote          Quote
	discount       Money
	discountSource DiscountSource
	couponID       *uuid.UUID
	status         Status
	note           Note
	proof          *PaymentProof
	history        []HistoryEntry

	// history entries at index < persistedHistory are already stored
	persistedHistory int

	createdAt time.Time
	updatedAt time.Time
}

func newReservation(
	actor user.Actor,
	customerID uuid.UUID,
	pets []PetRef,
	stay StayPeriod,
	quote Quote,
	note Note,
	now time.Time,
) *Reservation {
	r := &Reservation{
		id:             uuid.New(),
		customerID:     customerID,
		pets:           pets,
		stay:           stay,
		quote:          quote,
		discountSource: DiscountSourceNone,
		status:         StatusCreated,
		note:           note,
		createdAt:      now,
		updatedAt:      now,
	}
	r.appendHistory(StatusCreated, actor.ID, now)
	return r
}

func ReconstructReservation(
	id, customerID uuid.UUID,
	pets []PetRef,
	stay StayPeriod,
	quote Quote,
	discount Money,
	discountSource DiscountSource,
	couponID *uuid.UUID,
	status Status,
	note Note,
	proof *PaymentProof,
	history []HistoryEntry,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		customerID:       customerID,
		pets:             pets,
		stay:             stay,
		quote:            quote,
		discount:         discount,
		discountSource:   discountSource,
		couponID:         couponID,
		status:           status,
		note:             note,
		proof:            proof,
		history:          history,
		persistedHistory: len(history),
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Lifecycle transitions
// ---------------------------------------------------------------------------

func (r *Reservation) Confirm(actor user.Actor, now time.Time) error {
	return r.staffTransition(actor, StatusConfirmed, now)
}

func (r *Reservation) RequestPayment(actor user.Actor, now time.Time) error {
	return r.staffTransition(actor, StatusPaymentPending, now)
}

func (r *Reservation) ApprovePayment(actor user.Actor, now time.Time) error {
	return r.staffTransition(actor, StatusPaymentApproved, now)
}

func (r *Reservation) Finalize(actor user.Actor, now time.Time) error {
	return r.staffTransition(actor, StatusFinalized, now)
}

// Cancel is reachable from every non-terminal state. A cancelled
// reservation keeps its record; there is no purge past the created state.
func (r *Reservation) Cancel(actor user.Actor, now time.Time) error {
	return r.staffTransition(actor, StatusCancelled, now)
}

func (r *Reservation) staffTransition(actor user.Actor, next Status, now time.Time) error {
	if !actor.IsStaff() {
		return ErrForbiddenRole
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	r.appendHistory(next, actor.ID, now)
	r.updatedAt = now
	return nil
}

// AttachPaymentProof records the proof artifact while payment is pending.
// The status does not change, but the submission is still audited.
func (r *Reservation) AttachPaymentProof(actor user.Actor, proof PaymentProof, now time.Time) error {
	if r.status != StatusPaymentPending {
		return ErrInvalidTransition
	}
	if err := r.ensureOwnerOrStaff(actor); err != nil {
		return err
	}
	r.proof = &proof
	r.appendHistory(r.status, actor.ID, now)
	r.updatedAt = now
	return nil
}

// EnsureDeletable guards the hard delete, which only exists for
// reservations that never left the created state.
func (r *Reservation) EnsureDeletable(actor user.Actor) error {
	if err := r.ensureOwnerOrStaff(actor); err != nil {
		return err
	}
	if r.status != StatusCreated {
		return ErrNotDeletable
	}
	return nil
}

// ---------------------------------------------------------------------------
// Pricing and discounts
// ---------------------------------------------------------------------------

// Reschedule replaces pets and dates and recomputes the quote. A coupon
// discount attached to the reservation must be re-evaluated by the caller
// against the new quote; a manual discount is re-clamped here.
func (r *Reservation) Reschedule(actor user.Actor, pets []PetRef, stay StayPeriod, calc PriceCalculator, now time.Time) error {
	if err := r.ensureOwnerOrStaff(actor); err != nil {
		return err
	}
	if !r.status.IsMutable() {
		return ErrImmutableState
	}
	r.pets = pets
	r.stay = stay
	r.quote = calc.Quote(pets, stay)
	r.discount = clampDiscount(r.discount, r.quote.Subtotal)
	r.updatedAt = now
	return nil
}

// ApplyCouponDiscount attaches a coupon-derived discount. Eligibility is
// evaluated by the coupon aggregate; this method enforces the discount
// authority rules: no stacking with a manual discount, clamp to subtotal.
func (r *Reservation) ApplyCouponDiscount(actor user.Actor, couponID uuid.UUID, discount Money, now time.Time) error {
	if err := r.ensureOwnerOrStaff(actor); err != nil {
		return err
	}
	if !r.status.IsMutable() {
		return ErrImmutableState
	}
	if r.discountSource == DiscountSourceManual {
		return ErrManualDiscountSet
	}
	id := couponID
	r.discount = clampDiscount(discount, r.quote.Subtotal)
	r.discountSource = DiscountSourceCoupon
	r.couponID = &id
	r.updatedAt = now
	return nil
}

func (r *Reservation) RemoveCouponDiscount(actor user.Actor, now time.Time) error {
	if err := r.ensureOwnerOrStaff(actor); err != nil {
		return err
	}
	if !r.status.IsMutable() {
		return ErrImmutableState
	}
	if r.discountSource != DiscountSourceCoupon {
		return ErrNoCouponApplied
	}
	r.clearDiscount(now)
	return nil
}

// GrantManualDiscount replaces any coupon discount with a staff-entered
// amount. Pricing is locked once confirmed, so the grant is only valid
// while the reservation is in the created state.
func (r *Reservation) GrantManualDiscount(actor user.Actor, amount Money, now time.Time) error {
	if !actor.IsStaff() {
		return ErrForbiddenRole
	}
	if r.status != StatusCreated {
		return ErrImmutableState
	}
	r.discount = clampDiscount(amount, r.quote.Subtotal)
	r.discountSource = DiscountSourceManual
	r.couponID = nil
	r.updatedAt = now
	return nil
}

func (r *Reservation) ClearManualDiscount(actor user.Actor, now time.Time) error {
	if !actor.IsStaff() {
		return ErrForbiddenRole
	}
	if r.status != StatusCreated {
		return ErrImmutableState
	}
	if r.discountSource != DiscountSourceManual {
		return ErrNoManualDiscount
	}
	r.clearDiscount(now)
	return nil
}

func (r *Reservation) clearDiscount(now time.Time) {
	r.discount = Money{}
	r.discountSource = DiscountSourceNone
	r.couponID = nil
	r.updatedAt = now
}

func clampDiscount(discount, subtotal Money) Money {
	if subtotal.LessThan(discount) {
		return subtotal
	}
	return discount
}

// UpdateNote is allowed at any point before finalization or cancellation.
func (r *Reservation) UpdateNote(actor user.Actor, note Note, now time.Time) error {
	if err := r.ensureOwnerOrStaff(actor); err != nil {
		return err
	}
	if r.status.IsTerminal() {
		return ErrImmutableState
	}
	r.note = note
	r.updatedAt = now
	return nil
}

func (r *Reservation) ensureOwnerOrStaff(actor user.Actor) error {
	if actor.IsStaff() || actor.ID == r.customerID {
		return nil
	}
	return ErrForbiddenRole
}

func (r *Reservation) appendHistory(status Status, actorID uuid.UUID, now time.Time) {
	r.history = append(r.history, HistoryEntry{
		Status:     status,
		ActorID:    actorID,
		RecordedAt: now,
	})
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Total is always subtotal minus discount, floored at zero.
func (r *Reservation) Total() Money {
	return r.quote.Subtotal.SubFloored(r.discount)
}

// PendingHistory returns audit entries appended since the aggregate was
// loaded; the repository persists exactly these on save.
func (r *Reservation) PendingHistory() []HistoryEntry {
	return r.history[r.persistedHistory:]
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) CustomerID() uuid.UUID         { return r.customerID }
func (r *Reservation) Pets() []PetRef                { return r.pets }
func (r *Reservation) Stay() StayPeriod              { return r.stay }
func (r *Reservation) PriceQuote() Quote             { return r.quote }
func (r *Reservation) Discount() Money               { return r.discount }
func (r *Reservation) DiscountSource() DiscountSource { return r.discountSource }
func (r *Reservation) CouponID() *uuid.UUID          { return r.couponID }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) Note() Note                    { return r.note }
func (r *Reservation) Proof() *PaymentProof          { return r.proof }
func (r *Reservation) History() []HistoryEntry       { return r.history }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
