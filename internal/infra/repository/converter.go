package repository

import (
	"time"

	"petstay/internal/domain/reservation"

	"github.com/google/uuid"
)

// reservationRecord mirrors the reservations row; the aggregate is rebuilt
// from it plus the pets and history child tables.
type reservationRecord struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	Nights           int
	SubtotalCents    int64
	DiscountCents    int64
	DiscountSource   string
	CouponID         *uuid.UUID
	Status           int
	Note             string
	ProofRef         *string
	ProofNote        *string
	ProofSubmittedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (rec reservationRecord) toDomain(
	pets []reservation.PetRef,
	charges []reservation.PetCharge,
	history []reservation.HistoryEntry,
) *reservation.Reservation {
	quote := reservation.Quote{
		Nights:   rec.Nights,
		PerPet:   charges,
		Subtotal: reservation.MoneyFromCents(rec.SubtotalCents),
	}

	var proof *reservation.PaymentProof
	if rec.ProofRef != nil {
		note := ""
		if rec.ProofNote != nil {
			note = *rec.ProofNote
		}
		submittedAt := time.Time{}
		if rec.ProofSubmittedAt != nil {
			submittedAt = *rec.ProofSubmittedAt
		}
		if p, err := reservation.NewPaymentProof(*rec.ProofRef, note, submittedAt); err == nil {
			proof = &p
		}
	}

	return reservation.ReconstructReservation(
		rec.ID, rec.CustomerID,
		pets,
		reservation.ReconstructStayPeriod(rec.StartDate, rec.EndDate),
		quote,
		reservation.MoneyFromCents(rec.DiscountCents),
		reservation.DiscountSource(rec.DiscountSource),
		rec.CouponID,
		reservation.Status(rec.Status),
		reservation.NewNote(rec.Note),
		proof,
		history,
		rec.CreatedAt, rec.UpdatedAt,
	)
}
