package request

import (
	"time"

	"petstay/internal/usecase/commands"
)

type CouponRequest struct {
	Code             string     `json:"code" binding:"required"`
	Description      string     `json:"description"`
	Kind             int        `json:"kind" binding:"required,min=1,max=5"`
	Percent          float64    `json:"percent"`
	FixedAmountCents int64      `json:"fixed_amount_cents"`
	MinSubtotalCents int64      `json:"min_subtotal_cents"`
	MinPets          int        `json:"min_pets"`
	MinNights        int        `json:"min_nights"`
	ValidFrom        *time.Time `json:"valid_from,omitempty"`
	ValidTo          *time.Time `json:"valid_to,omitempty"`
	MaxUses          *int32     `json:"max_uses,omitempty"`
}

func (r CouponRequest) ToInput() commands.CouponInput {
	return commands.CouponInput{
		Code:             r.Code,
		Description:      r.Description,
		Kind:             r.Kind,
		Percent:          r.Percent,
		FixedAmountCents: r.FixedAmountCents,
		MinSubtotalCents: r.MinSubtotalCents,
		MinPets:          r.MinPets,
		MinNights:        r.MinNights,
		ValidFrom:        r.ValidFrom,
		ValidTo:          r.ValidTo,
		MaxUses:          r.MaxUses,
	}
}
