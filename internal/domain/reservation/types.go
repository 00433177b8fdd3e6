package reservation

// Status codes follow the persisted lifecycle values 1..6.
type Status int

const (
	StatusCreated Status = iota + 1
	StatusConfirmed
	StatusPaymentPending
	StatusPaymentApproved
	StatusFinalized
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusConfirmed:
		return "confirmed"
	case StatusPaymentPending:
		return "payment_pending"
	case StatusPaymentApproved:
		return "payment_approved"
	case StatusFinalized:
		return "finalized"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func (s Status) IsValid() bool {
	return s >= StatusCreated && s <= StatusCancelled
}

// IsTerminal reports whether the status accepts no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusFinalized || s == StatusCancelled
}

// IsMutable reports whether pets, dates and discounts may still change.
// Pricing is locked once payment has been approved.
func (s Status) IsMutable() bool {
	switch s {
	case StatusCreated, StatusConfirmed, StatusPaymentPending:
		return true
	default:
		return false
	}
}

// CanTransitionTo is the single source of truth for the lifecycle graph.
func (s Status) CanTransitionTo(next Status) bool {
	switch next {
	case StatusConfirmed:
		return s == StatusCreated
	case StatusPaymentPending:
		return s == StatusConfirmed
	case StatusPaymentApproved:
		return s == StatusPaymentPending
	case StatusFinalized:
		return s == StatusPaymentApproved
	case StatusCancelled:
		return !s.IsTerminal()
	default:
		return false
	}
}

// DiscountSource identifies which authority produced the reservation's
// discount. Coupon and manual discounts never stack.
type DiscountSource string

const (
	DiscountSourceNone   DiscountSource = "none"
	DiscountSourceCoupon DiscountSource = "coupon"
	DiscountSourceManual DiscountSource = "manual"
)

func (d DiscountSource) IsValid() bool {
	switch d {
	case DiscountSourceNone, DiscountSourceCoupon, DiscountSourceManual:
		return true
	default:
		return false
	}
}
