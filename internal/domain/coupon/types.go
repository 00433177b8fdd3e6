package coupon

// Kind discriminates the promotional policy. Codes 1..5 follow the
// persisted values.
type Kind int

const (
	// KindPercentOfTotal discounts a percentage of the subtotal.
	KindPercentOfTotal Kind = iota + 1
	// KindPercentWithMinSubtotal requires a minimum subtotal.
	KindPercentWithMinSubtotal
	// KindPercentWithMinNights requires a minimum number of nights.
	KindPercentWithMinNights
	// KindFixedWithMinSubtotal discounts a fixed amount, capped at the
	// subtotal, and requires a minimum subtotal.
	KindFixedWithMinSubtotal
	// KindLastPetPercent discounts a percentage of the notional last
	// pet's share of the subtotal.
	KindLastPetPercent
)

func (k Kind) String() string {
	switch k {
	case KindPercentOfTotal:
		return "percent_of_total"
	case KindPercentWithMinSubtotal:
		return "percent_with_min_subtotal"
	case KindPercentWithMinNights:
		return "percent_with_min_nights"
	case KindFixedWithMinSubtotal:
		return "fixed_with_min_subtotal"
	case KindLastPetPercent:
		return "last_pet_percent"
	default:
		return "unknown"
	}
}

func (k Kind) IsValid() bool {
	return k >= KindPercentOfTotal && k <= KindLastPetPercent
}

func (k Kind) usesPercent() bool {
	switch k {
	case KindPercentOfTotal, KindPercentWithMinSubtotal, KindPercentWithMinNights, KindLastPetPercent:
		return true
	default:
		return false
	}
}
