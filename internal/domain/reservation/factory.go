package reservation

import (
	"time"

	"petstay/internal/domain/user"
	"petstay/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory assembles a new reservation from raw caller input, validating
// the pet set and date range and pricing the stay.
type Factory struct {
	clock clock.Clock
	calc  PriceCalculator
}

func NewFactory(c clock.Clock, calc PriceCalculator) *Factory {
	return &Factory{clock: c, calc: calc}
}

func (f *Factory) NewReservation(
	actor user.Actor,
	customerID uuid.UUID,
	pets []PetRef,
	start, end time.Time,
	note Note,
) (*Reservation, error) {
	// Customers may only book for themselves; staff may book for anyone.
	if !actor.IsStaff() && actor.ID != customerID {
		return nil, ErrForbiddenRole
	}

	validPets, err := NewPetList(pets)
	if err != nil {
		return nil, err
	}

	stay, err := NewStayPeriod(start, end, clock.Today(f.clock))
	if err != nil {
		return nil, err
	}

	quote := f.calc.Quote(validPets, stay)
	now := f.clock.Now()

	return newReservation(actor, customerID, validPets, stay, quote, note, now), nil
}

// NewStay validates a replacement pet set and date range for an existing
// reservation and returns both, priced by the same calculator.
func (f *Factory) NewStay(pets []PetRef, start, end time.Time) ([]PetRef, StayPeriod, error) {
	validPets, err := NewPetList(pets)
	if err != nil {
		return nil, StayPeriod{}, err
	}
	stay, err := NewStayPeriod(start, end, clock.Today(f.clock))
	if err != nil {
		return nil, StayPeriod{}, err
	}
	return validPets, stay, nil
}

func (f *Factory) Calculator() PriceCalculator { return f.calc }

func (f *Factory) Clock() clock.Clock { return f.clock }
