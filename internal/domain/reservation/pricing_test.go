//go:build unit

package reservation_test

import (
	"testing"

	"petstay/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNightlyRateCalculator(t *testing.T) {
	calc := reservation.NewNightlyRateCalculator(8500)

	stay := func(nights int) reservation.StayPeriod {
		return reservation.ReconstructStayPeriod(
			date(2026, 9, 10),
			date(2026, 9, 10+nights),
		)
	}

	pets := func(n int) []reservation.PetRef {
		out := make([]reservation.PetRef, n)
		for i := range out {
			out[i] = reservation.NewPetRef(uuid.New(), "Pet")
		}
		return out
	}

	cases := []struct {
		name     string
		pets     int
		nights   int
		perPet   int64
		subtotal int64
	}{
		{name: "one pet one night", pets: 1, nights: 1, perPet: 8500, subtotal: 8500},
		{name: "one pet two nights", pets: 1, nights: 2, perPet: 17000, subtotal: 17000},
		{name: "two pets two nights", pets: 2, nights: 2, perPet: 17000, subtotal: 34000},
		{name: "three pets five nights", pets: 3, nights: 5, perPet: 42500, subtotal: 127500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := calc.Quote(pets(tc.pets), stay(tc.nights))

			assert.Equal(t, tc.nights, quote.Nights)
			assert.Equal(t, tc.subtotal, quote.Subtotal.Cents())
			require.Len(t, quote.PerPet, tc.pets)
			for _, charge := range quote.PerPet {
				assert.Equal(t, tc.perPet, charge.Amount.Cents())
			}
		})
	}

	t.Run("per pet charges keep request order", func(t *testing.T) {
		rex := reservation.NewPetRef(uuid.New(), "Rex")
		luna := reservation.NewPetRef(uuid.New(), "Luna")

		quote := calc.Quote([]reservation.PetRef{rex, luna}, stay(1))

		require.Len(t, quote.PerPet, 2)
		assert.Equal(t, rex.ID(), quote.PerPet[0].Pet.ID())
		assert.Equal(t, luna.ID(), quote.PerPet[1].Pet.ID())
	})
}
