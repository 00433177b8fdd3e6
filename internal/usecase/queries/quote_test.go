//go:build unit

package queries_test

import (
	"context"
	"testing"

	"petstay/internal/domain/coupon"
	"petstay/internal/domain/reservation"
	"petstay/internal/infra"
	"petstay/internal/pkg/clock"
	"petstay/internal/usecase/queries"
	"petstay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuotePetStore struct {
	names map[uuid.UUID]string
}

func (s *fakeQuotePetStore) FindNamesOwnedByIDs(_ context.Context, _ uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string)
	for _, id := range ids {
		if name, ok := s.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

type fakeQuoteCouponStore struct {
	byCode map[string]*coupon.Coupon
}

func (s *fakeQuoteCouponStore) FindEntityByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	c, ok := s.byCode[code]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return c, nil
}

type quoteFixture struct {
	quotes     queries.QuoteQueries
	customerID uuid.UUID
	petIDs     []uuid.UUID
}

func newQuoteFixture(coupons ...*coupon.Coupon) *quoteFixture {
	petIDs := []uuid.UUID{uuid.New(), uuid.New()}
	pets := &fakeQuotePetStore{names: map[uuid.UUID]string{
		petIDs[0]: "Rex",
		petIDs[1]: "Luna",
	}}
	store := &fakeQuoteCouponStore{byCode: make(map[string]*coupon.Coupon)}
	for _, c := range coupons {
		store.byCode[c.Code().String()] = c
	}

	calc := reservation.NewNightlyRateCalculator(builder.DefaultNightlyRateCents)
	clk := clock.NewMockClock(builder.BaseTime)

	return &quoteFixture{
		quotes:     queries.NewQuoteQueries(pets, store, calc, clk),
		customerID: uuid.New(),
		petIDs:     petIDs,
	}
}

// two pets, two nights: subtotal 34000
func (f *quoteFixture) input() queries.QuoteInput {
	start := builder.BaseTime.AddDate(0, 0, 10)
	return queries.QuoteInput{
		CustomerID: f.customerID,
		PetIDs:     f.petIDs,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 2),
	}
}

func TestQuotePreview(t *testing.T) {
	ctx := context.Background()

	t.Run("prices the stay per pet", func(t *testing.T) {
		f := newQuoteFixture()

		view, err := f.quotes.Preview(ctx, f.input())
		require.NoError(t, err)

		assert.Equal(t, 2, view.Nights)
		assert.Equal(t, int64(34000), view.SubtotalCents)
		assert.Equal(t, int64(34000), view.TotalCents)
		assert.Zero(t, view.DiscountCents)
		require.Len(t, view.PerPet, 2)
		assert.Equal(t, "Rex", view.PerPet[0].Name)
		assert.Equal(t, int64(17000), view.PerPet[0].AmountCents)
	})

	t.Run("eligible coupon reduces the total", func(t *testing.T) {
		c := builder.NewCouponBuilder().WithCode("SAVE10").WithPercent(10).MustBuild()
		f := newQuoteFixture(c)
		in := f.input()
		code := "SAVE10"
		in.CouponCode = &code

		view, err := f.quotes.Preview(ctx, in)
		require.NoError(t, err)

		assert.True(t, view.CouponApplied)
		assert.Nil(t, view.CouponRejected)
		assert.Equal(t, int64(3400), view.DiscountCents)
		assert.Equal(t, int64(30600), view.TotalCents)
	})

	t.Run("ineligible coupon still prices the stay", func(t *testing.T) {
		c := builder.NewCouponBuilder().
			WithCode("BIGSPEND").
			WithKind(coupon.KindPercentWithMinSubtotal).
			WithMinSubtotal(99999).
			MustBuild()
		f := newQuoteFixture(c)
		in := f.input()
		code := "BIGSPEND"
		in.CouponCode = &code

		view, err := f.quotes.Preview(ctx, in)
		require.NoError(t, err)

		assert.False(t, view.CouponApplied)
		require.NotNil(t, view.CouponRejected)
		assert.Equal(t, "minimum-not-met", *view.CouponRejected)
		assert.Equal(t, int64(34000), view.TotalCents)
	})

	t.Run("unknown coupon code is a rejection, not an error", func(t *testing.T) {
		f := newQuoteFixture()
		in := f.input()
		code := "NOSUCHCODE"
		in.CouponCode = &code

		view, err := f.quotes.Preview(ctx, in)
		require.NoError(t, err)

		require.NotNil(t, view.CouponRejected)
		assert.Equal(t, "not-found", *view.CouponRejected)
	})

	t.Run("fixed discount never drives the total negative", func(t *testing.T) {
		c := builder.NewCouponBuilder().
			WithCode("BIGFIXED").
			WithKind(coupon.KindFixedWithMinSubtotal).
			WithPercent(0).
			WithFixedAmount(50000).
			WithMinSubtotal(10000).
			MustBuild()
		f := newQuoteFixture(c)
		in := f.input()
		code := "BIGFIXED"
		in.CouponCode = &code

		view, err := f.quotes.Preview(ctx, in)
		require.NoError(t, err)

		assert.True(t, view.CouponApplied)
		assert.Equal(t, int64(34000), view.DiscountCents)
		assert.Equal(t, int64(0), view.TotalCents)
	})

	t.Run("unknown pet id", func(t *testing.T) {
		f := newQuoteFixture()
		in := f.input()
		in.PetIDs = append(in.PetIDs, uuid.New())

		_, err := f.quotes.Preview(ctx, in)
		require.ErrorIs(t, err, queries.ErrQuoteInvalid)
	})

	t.Run("invalid dates", func(t *testing.T) {
		f := newQuoteFixture()
		in := f.input()
		in.StartDate, in.EndDate = in.EndDate, in.StartDate

		_, err := f.quotes.Preview(ctx, in)
		require.ErrorIs(t, err, queries.ErrQuoteInvalid)
	})
}
