package response

import (
	"time"

	"petstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID         `json:"id"`
	CustomerID     uuid.UUID         `json:"customerId"`
	CustomerName   string            `json:"customerName"`
	Pets           []PetResponse     `json:"pets"`
	StartDate      time.Time         `json:"startDate"`
	EndDate        time.Time         `json:"endDate"`
	Nights         int               `json:"nights"`
	Status         string            `json:"status"`
	SubtotalCents  int64             `json:"subtotalCents"`
	DiscountCents  int64             `json:"discountCents"`
	DiscountSource string            `json:"discountSource"`
	TotalCents     int64             `json:"totalCents"`
	CouponID       *uuid.UUID        `json:"couponId,omitempty"`
	CouponCode     *string           `json:"couponCode,omitempty"`
	Note           *string           `json:"note,omitempty"`
	ProofRef       *string           `json:"proofRef,omitempty"`
	ProofNote      *string           `json:"proofNote,omitempty"`
	History        []HistoryResponse `json:"history"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type PetResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	AmountCents int64     `json:"amountCents"`
}

type HistoryResponse struct {
	Status     string    `json:"status"`
	ActorID    uuid.UUID `json:"actorId"`
	ActorName  string    `json:"actorName"`
	RecordedAt time.Time `json:"recordedAt"`
}

type ReservationListResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	PetCount      int       `json:"petCount"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Status        string    `json:"status"`
	TotalCents    int64     `json:"totalCents"`
	DiscountCents int64     `json:"discountCents"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	pets := make([]PetResponse, len(rm.Pets))
	for i, p := range rm.Pets {
		pets[i] = PetResponse{ID: p.ID, Name: p.Name, AmountCents: p.AmountCents}
	}
	history := make([]HistoryResponse, len(rm.History))
	for i, h := range rm.History {
		history[i] = HistoryResponse{
			Status:     h.Status,
			ActorID:    h.ActorID,
			ActorName:  h.ActorName,
			RecordedAt: h.RecordedAt,
		}
	}
	return &ReservationResponse{
		ID:             rm.ID,
		CustomerID:     rm.CustomerID,
		CustomerName:   rm.CustomerName,
		Pets:           pets,
		StartDate:      rm.StartDate,
		EndDate:        rm.EndDate,
		Nights:         rm.Nights,
		Status:         rm.Status,
		SubtotalCents:  rm.SubtotalCents,
		DiscountCents:  rm.DiscountCents,
		DiscountSource: rm.DiscountSource,
		TotalCents:     rm.TotalCents,
		CouponID:       rm.CouponID,
		CouponCode:     rm.CouponCode,
		Note:           rm.Note,
		ProofRef:       rm.ProofRef,
		ProofNote:      rm.ProofNote,
		History:        history,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:            rm.ID,
		CustomerID:    rm.CustomerID,
		CustomerName:  rm.CustomerName,
		PetCount:      rm.PetCount,
		StartDate:     rm.StartDate,
		EndDate:       rm.EndDate,
		Status:        rm.Status,
		TotalCents:    rm.TotalCents,
		DiscountCents: rm.DiscountCents,
		CreatedAt:     rm.CreatedAt,
	}
}
