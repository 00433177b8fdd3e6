package coupon

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode       = errors.New("invalid coupon code format")
	ErrInvalidKind       = errors.New("invalid coupon kind")
	ErrInvalidPercent    = errors.New("percentage must be between 0 and 100")
	ErrInvalidFixedValue = errors.New("fixed discount must be positive")
	ErrNegativeMinimum   = errors.New("policy minimums cannot be negative")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is a case-insensitive coupon identifier, stored normalized.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Policy bundles a kind with its numeric parameters. Parameters a kind
// does not use stay zero.
type Policy struct {
	kind             Kind
	percent          float64
	fixedAmountCents int64
	minSubtotalCents int64
	minPets          int
	minNights        int
}

func NewPolicy(kind Kind, percent float64, fixedAmountCents, minSubtotalCents int64, minPets, minNights int) (Policy, error) {
	if !kind.IsValid() {
		return Policy{}, ErrInvalidKind
	}
	if kind.usesPercent() && (percent <= 0 || percent > 100) {
		return Policy{}, ErrInvalidPercent
	}
	if kind == KindFixedWithMinSubtotal && fixedAmountCents <= 0 {
		return Policy{}, ErrInvalidFixedValue
	}
	if minSubtotalCents < 0 || minPets < 0 || minNights < 0 {
		return Policy{}, ErrNegativeMinimum
	}
	return Policy{
		kind:             kind,
		percent:          percent,
		fixedAmountCents: fixedAmountCents,
		minSubtotalCents: minSubtotalCents,
		minPets:          minPets,
		minNights:        minNights,
	}, nil
}

func (p Policy) Kind() Kind               { return p.kind }
func (p Policy) Percent() float64         { return p.percent }
func (p Policy) FixedAmountCents() int64  { return p.fixedAmountCents }
func (p Policy) MinSubtotalCents() int64  { return p.minSubtotalCents }
func (p Policy) MinPets() int             { return p.minPets }
func (p Policy) MinNights() int           { return p.minNights }

// eligible checks the policy-specific minimums.
func (p Policy) eligible(f EligibilityFacts) error {
	switch p.kind {
	case KindPercentWithMinSubtotal, KindFixedWithMinSubtotal:
		if f.SubtotalCents < p.minSubtotalCents {
			return ErrMinSubtotalNotMet
		}
	case KindPercentWithMinNights:
		if f.Nights < p.minNights {
			return ErrMinNightsNotMet
		}
	case KindLastPetPercent:
		if f.PetCount < 1 {
			return ErrMinPetsNotMet
		}
	}
	if p.minPets > 0 && f.PetCount < p.minPets {
		return ErrMinPetsNotMet
	}
	return nil
}

// discountCents computes the discount for already-eligible facts, capped
// at the subtotal.
func (p Policy) discountCents(f EligibilityFacts) int64 {
	var discount int64
	switch p.kind {
	case KindPercentOfTotal, KindPercentWithMinSubtotal, KindPercentWithMinNights:
		discount = percentOf(f.SubtotalCents, p.percent)
	case KindFixedWithMinSubtotal:
		discount = p.fixedAmountCents
	case KindLastPetPercent:
		share := f.SubtotalCents / int64(f.PetCount)
		discount = percentOf(share, p.percent)
	}
	if discount > f.SubtotalCents {
		return f.SubtotalCents
	}
	return discount
}

func percentOf(cents int64, percent float64) int64 {
	return int64(math.Round(float64(cents) * percent / 100.0))
}
