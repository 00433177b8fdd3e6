package response

import (
	"time"

	"petstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID               uuid.UUID  `json:"id"`
	Code             string     `json:"code"`
	Description      string     `json:"description"`
	Kind             int        `json:"kind"`
	Percent          *float64   `json:"percent,omitempty"`
	FixedAmountCents *int64     `json:"fixedAmountCents,omitempty"`
	MinSubtotalCents *int64     `json:"minSubtotalCents,omitempty"`
	MinPets          *int       `json:"minPets,omitempty"`
	MinNights        *int       `json:"minNights,omitempty"`
	ValidFrom        *time.Time `json:"validFrom,omitempty"`
	ValidTo          *time.Time `json:"validTo,omitempty"`
	MaxUses          *int32     `json:"maxUses,omitempty"`
	UsedCount        int32      `json:"usedCount"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func FromCouponView(rm *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		ID:               rm.ID,
		Code:             rm.Code,
		Description:      rm.Description,
		Kind:             rm.Kind,
		Percent:          rm.Percent,
		FixedAmountCents: rm.FixedAmountCents,
		MinSubtotalCents: rm.MinSubtotalCents,
		MinPets:          rm.MinPets,
		MinNights:        rm.MinNights,
		ValidFrom:        rm.ValidFrom,
		ValidTo:          rm.ValidTo,
		MaxUses:          rm.MaxUses,
		UsedCount:        rm.UsedCount,
		IsActive:         rm.IsActive,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}
