package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CustomerID *uuid.UUID  `json:"customer_id,omitempty"`
	PetIDs     []uuid.UUID `json:"pet_ids" binding:"required,min=1,max=3"`
	StartDate  time.Time   `json:"start_date" binding:"required"`
	EndDate    time.Time   `json:"end_date" binding:"required"`
	CouponCode *string     `json:"coupon_code,omitempty"`
	Note       *string     `json:"note,omitempty"`
}

func (r CreateReservationRequest) GetCouponCode() *string {
	return trimmedPtr(r.CouponCode)
}

func (r CreateReservationRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}

type UpdateReservationRequest struct {
	PetIDs    []uuid.UUID `json:"pet_ids" binding:"required,min=1,max=3"`
	StartDate time.Time   `json:"start_date" binding:"required"`
	EndDate   time.Time   `json:"end_date" binding:"required"`
	Note      *string     `json:"note,omitempty"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type ManualDiscountRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,min=0"`
}

type PaymentProofRequest struct {
	ArtifactRef string  `json:"artifact_ref" binding:"required"`
	Note        *string `json:"note,omitempty"`
}

func (r PaymentProofRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}

type QuoteRequest struct {
	PetIDs     []uuid.UUID `json:"pet_ids" binding:"required,min=1,max=3"`
	StartDate  time.Time   `json:"start_date" binding:"required"`
	EndDate    time.Time   `json:"end_date" binding:"required"`
	CouponCode *string     `json:"coupon_code,omitempty"`
}

func (r QuoteRequest) GetCouponCode() *string {
	return trimmedPtr(r.CouponCode)
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
