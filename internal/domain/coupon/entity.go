package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Ineligibility reasons, checked in a fixed order; the first failure wins
// so callers can explain the exact rejection to the user.
var (
	ErrInactive          = errors.New("coupon is inactive")
	ErrNotYetValid       = errors.New("coupon is not yet valid")
	ErrExpired           = errors.New("coupon has expired")
	ErrExhausted         = errors.New("coupon usage cap reached")
	ErrMinSubtotalNotMet = errors.New("reservation subtotal below coupon minimum")
	ErrMinNightsNotMet   = errors.New("reservation nights below coupon minimum")
	ErrMinPetsNotMet     = errors.New("reservation pet count below coupon minimum")
)

// IneligibilityReason maps an evaluation error to the stable reason token
// surfaced to callers. Unknown errors map to an empty string.
func IneligibilityReason(err error) string {
	switch {
	case errors.Is(err, ErrInactive):
		return "inactive"
	case errors.Is(err, ErrNotYetValid), errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrExhausted):
		return "cap-reached"
	case errors.Is(err, ErrMinSubtotalNotMet), errors.Is(err, ErrMinNightsNotMet), errors.Is(err, ErrMinPetsNotMet):
		return "minimum-not-met"
	default:
		return ""
	}
}

// EligibilityFacts are the reservation-side inputs to coupon evaluation.
type EligibilityFacts struct {
	SubtotalCents int64
	PetCount      int
	Nights        int
}

type Coupon struct {
	id          uuid.UUID
	code        Code
	description string
	policy      Policy
	validFrom   *time.Time
	validTo     *time.Time
	maxUses     *int32
	usedCount   int32
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCoupon(
	code Code,
	description string,
	policy Policy,
	validFrom, validTo *time.Time,
	maxUses *int32,
) *Coupon {
	return &Coupon{
		id:          uuid.New(),
		code:        code,
		description: description,
		policy:      policy,
		validFrom:   validFrom,
		validTo:     validTo,
		maxUses:     maxUses,
		active:      true,
	}
}

func ReconstructCoupon(
	id uuid.UUID,
	code Code,
	description string,
	policy Policy,
	validFrom, validTo *time.Time,
	maxUses *int32,
	usedCount int32,
	active bool,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:          id,
		code:        code,
		description: description,
		policy:      policy,
		validFrom:   validFrom,
		validTo:     validTo,
		maxUses:     maxUses,
		usedCount:   usedCount,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Evaluate runs the eligibility checks in order (active, validity window,
// usage cap, policy minimums) and returns the discount in cents. It never
// mutates the coupon; redemption accounting is a storage concern so the
// cap check stays race-free.
func (c *Coupon) Evaluate(now time.Time, facts EligibilityFacts) (int64, error) {
	if !c.active {
		return 0, ErrInactive
	}
	if c.validFrom != nil && now.Before(*c.validFrom) {
		return 0, ErrNotYetValid
	}
	if c.validTo != nil && now.After(*c.validTo) {
		return 0, ErrExpired
	}
	if c.maxUses != nil && c.usedCount >= *c.maxUses {
		return 0, ErrExhausted
	}
	if err := c.policy.eligible(facts); err != nil {
		return 0, err
	}
	return c.policy.discountCents(facts), nil
}

// Update replaces the staff-editable fields. The usage counter is never
// edited directly.
func (c *Coupon) Update(description string, policy Policy, validFrom, validTo *time.Time, maxUses *int32) {
	c.description = description
	c.policy = policy
	c.validFrom = validFrom
	c.validTo = validTo
	c.maxUses = maxUses
}

// Deactivate pulls the coupon regardless of its validity window.
func (c *Coupon) Deactivate() {
	c.active = false
}

func (c *Coupon) Activate() {
	c.active = true
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) Description() string   { return c.description }
func (c *Coupon) Policy() Policy        { return c.policy }
func (c *Coupon) ValidFrom() *time.Time { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time   { return c.validTo }
func (c *Coupon) MaxUses() *int32       { return c.maxUses }
func (c *Coupon) UsedCount() int32      { return c.usedCount }
func (c *Coupon) IsActive() bool        { return c.active }
func (c *Coupon) CreatedAt() time.Time  { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time  { return c.updatedAt }
