package reservation

// PetCharge is one pet's share of the stay.
type PetCharge struct {
	Pet    PetRef
	Amount Money
}

// Quote is the monetary snapshot before discounts.
type Quote struct {
	Nights   int
	PerPet   []PetCharge
	Subtotal Money
}

type PriceCalculator interface {
	Quote(pets []PetRef, stay StayPeriod) Quote
}

// NightlyRateCalculator bills a single configured nightly rate per pet.
// The rate is injected from configuration so pricing stays testable.
type NightlyRateCalculator struct {
	rateCents int64
}

func NewNightlyRateCalculator(rateCents int64) *NightlyRateCalculator {
	return &NightlyRateCalculator{rateCents: rateCents}
}

func (c *NightlyRateCalculator) Quote(pets []PetRef, stay StayPeriod) Quote {
	nights := stay.Nights()

	perPet := make([]PetCharge, len(pets))
	var subtotal int64
	for i, pet := range pets {
		amount := c.rateCents * int64(nights)
		perPet[i] = PetCharge{Pet: pet, Amount: MoneyFromCents(amount)}
		subtotal += amount
	}

	return Quote{
		Nights:   nights,
		PerPet:   perPet,
		Subtotal: MoneyFromCents(subtotal),
	}
}
