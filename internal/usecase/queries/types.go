package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID             uuid.UUID          `json:"id"`
	CustomerID     uuid.UUID          `json:"customer_id"`
	CustomerName   string             `json:"customer_name"`
	Pets           []PetView          `json:"pets"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	Nights         int                `json:"nights"`
	Status         string             `json:"status"`
	SubtotalCents  int64              `json:"subtotal_cents"`
	DiscountCents  int64              `json:"discount_cents"`
	DiscountSource string             `json:"discount_source"`
	TotalCents     int64              `json:"total_cents"`
	CouponID       *uuid.UUID         `json:"coupon_id,omitempty"`
	CouponCode     *string            `json:"coupon_code,omitempty"`
	Note           *string            `json:"note,omitempty"`
	ProofRef       *string            `json:"proof_ref,omitempty"`
	ProofNote      *string            `json:"proof_note,omitempty"`
	History        []HistoryEntryView `json:"history"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type PetView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	AmountCents int64     `json:"amount_cents"`
}

type HistoryEntryView struct {
	Status     string    `json:"status"`
	ActorID    uuid.UUID `json:"actor_id"`
	ActorName  string    `json:"actor_name"`
	RecordedAt time.Time `json:"recorded_at"`
}

type ReservationListItem struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	PetCount      int       `json:"pet_count"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"`
	TotalCents    int64     `json:"total_cents"`
	DiscountCents int64     `json:"discount_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

type CouponView struct {
	ID               uuid.UUID  `json:"id"`
	Code             string     `json:"code"`
	Description      string     `json:"description"`
	Kind             int        `json:"kind"`
	Percent          *float64   `json:"percent,omitempty"`
	FixedAmountCents *int64     `json:"fixed_amount_cents,omitempty"`
	MinSubtotalCents *int64     `json:"min_subtotal_cents,omitempty"`
	MinPets          *int       `json:"min_pets,omitempty"`
	MinNights        *int       `json:"min_nights,omitempty"`
	ValidFrom        *time.Time `json:"valid_from,omitempty"`
	ValidTo          *time.Time `json:"valid_to,omitempty"`
	MaxUses          *int32     `json:"max_uses,omitempty"`
	UsedCount        int32      `json:"used_count"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// QuoteView is the read-only pricing preview, computed with the same
// calculator and coupon evaluation the write side uses.
type QuoteView struct {
	Nights         int       `json:"nights"`
	PerPet         []PetView `json:"per_pet"`
	SubtotalCents  int64     `json:"subtotal_cents"`
	DiscountCents  int64     `json:"discount_cents"`
	TotalCents     int64     `json:"total_cents"`
	CouponApplied  bool      `json:"coupon_applied"`
	CouponRejected *string   `json:"coupon_rejected,omitempty"`
}
