//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"petstay/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayPeriod(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			start time.Time
			end   time.Time
			errIs error
		}{
			{name: "valid future range", start: date(2026, 9, 10), end: date(2026, 9, 13)},
			{name: "starts today", start: today, end: date(2026, 9, 2)},
			{name: "same day stay", start: date(2026, 9, 10), end: date(2026, 9, 10)},
			{name: "start after end", start: date(2026, 9, 13), end: date(2026, 9, 10), errIs: reservation.ErrInvalidStayRange},
			{name: "start in the past", start: date(2026, 8, 30), end: date(2026, 9, 10), errIs: reservation.ErrStayInPast},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := reservation.NewStayPeriod(tc.start, tc.end, today)
				if tc.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, tc.errIs)
				}
			})
		}
	})

	t.Run("nights", func(t *testing.T) {
		cases := []struct {
			name   string
			start  time.Time
			end    time.Time
			nights int
		}{
			{name: "three nights", start: date(2026, 9, 10), end: date(2026, 9, 13), nights: 3},
			{name: "one night", start: date(2026, 9, 10), end: date(2026, 9, 11), nights: 1},
			{name: "same day bills one night", start: date(2026, 9, 10), end: date(2026, 9, 10), nights: 1},
			{name: "month boundary", start: date(2026, 9, 29), end: date(2026, 10, 2), nights: 3},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				stay, err := reservation.NewStayPeriod(tc.start, tc.end, today)
				require.NoError(t, err)
				assert.Equal(t, tc.nights, stay.Nights())
			})
		}
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		start := time.Date(2026, 9, 10, 23, 59, 0, 0, time.UTC)
		end := time.Date(2026, 9, 11, 0, 1, 0, 0, time.UTC)

		stay, err := reservation.NewStayPeriod(start, end, today)
		require.NoError(t, err)
		assert.Equal(t, 1, stay.Nights())
		assert.Equal(t, date(2026, 9, 10), stay.Start())
		assert.Equal(t, date(2026, 9, 11), stay.End())
	})
}

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := reservation.NewMoney(-1)
		require.ErrorIs(t, err, reservation.ErrNegativeAmount)
	})

	t.Run("subtraction floors at zero", func(t *testing.T) {
		subtotal := reservation.MoneyFromCents(17000)

		assert.Equal(t, int64(15300), subtotal.SubFloored(reservation.MoneyFromCents(1700)).Cents())
		assert.Equal(t, int64(0), subtotal.SubFloored(reservation.MoneyFromCents(17000)).Cents())
		assert.Equal(t, int64(0), subtotal.SubFloored(reservation.MoneyFromCents(20000)).Cents())
	})

	t.Run("reais conversion", func(t *testing.T) {
		assert.InDelta(t, 85.0, reservation.MoneyFromCents(8500).Reais(), 0.001)
	})
}

func TestNewPetList(t *testing.T) {
	petRef := func(name string) reservation.PetRef {
		return reservation.NewPetRef(uuid.New(), name)
	}

	t.Run("accepts one to three distinct pets", func(t *testing.T) {
		for n := 1; n <= reservation.MaxPets; n++ {
			refs := make([]reservation.PetRef, n)
			for i := range refs {
				refs[i] = petRef("Pet")
			}
			got, err := reservation.NewPetList(refs)
			require.NoError(t, err)
			assert.Len(t, got, n)
		}
	})

	t.Run("rejects empty list", func(t *testing.T) {
		_, err := reservation.NewPetList(nil)
		require.ErrorIs(t, err, reservation.ErrNoPets)
	})

	t.Run("rejects more than three pets", func(t *testing.T) {
		refs := []reservation.PetRef{petRef("a"), petRef("b"), petRef("c"), petRef("d")}
		_, err := reservation.NewPetList(refs)
		require.ErrorIs(t, err, reservation.ErrTooManyPets)
	})

	t.Run("rejects duplicate pet ids", func(t *testing.T) {
		dup := petRef("Rex")
		_, err := reservation.NewPetList([]reservation.PetRef{dup, dup})
		require.ErrorIs(t, err, reservation.ErrDuplicatePet)
	})
}

func TestPaymentProof(t *testing.T) {
	t.Run("requires an artifact reference", func(t *testing.T) {
		_, err := reservation.NewPaymentProof("", "paid via pix", today)
		require.ErrorIs(t, err, reservation.ErrEmptyProofRef)
	})

	t.Run("note is optional", func(t *testing.T) {
		proof, err := reservation.NewPaymentProof("receipts/2026/0001.pdf", "", today)
		require.NoError(t, err)
		assert.Equal(t, "receipts/2026/0001.pdf", proof.ArtifactRef())
		assert.Empty(t, proof.Note())
	})
}
