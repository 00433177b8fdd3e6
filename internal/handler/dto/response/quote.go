package response

import (
	"petstay/internal/usecase/queries"
)

type QuoteResponse struct {
	Nights         int           `json:"nights"`
	PerPet         []PetResponse `json:"perPet"`
	SubtotalCents  int64         `json:"subtotalCents"`
	DiscountCents  int64         `json:"discountCents"`
	TotalCents     int64         `json:"totalCents"`
	CouponApplied  bool          `json:"couponApplied"`
	CouponRejected *string       `json:"couponRejected,omitempty"`
}

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	perPet := make([]PetResponse, len(rm.PerPet))
	for i, p := range rm.PerPet {
		perPet[i] = PetResponse{ID: p.ID, Name: p.Name, AmountCents: p.AmountCents}
	}
	return &QuoteResponse{
		Nights:         rm.Nights,
		PerPet:         perPet,
		SubtotalCents:  rm.SubtotalCents,
		DiscountCents:  rm.DiscountCents,
		TotalCents:     rm.TotalCents,
		CouponApplied:  rm.CouponApplied,
		CouponRejected: rm.CouponRejected,
	}
}
