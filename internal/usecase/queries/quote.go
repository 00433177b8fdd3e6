package queries

import (
	"context"
	"time"

	"petstay/internal/domain/coupon"
	"petstay/internal/domain/reservation"
	"petstay/internal/infra"
	"petstay/internal/pkg/clock"
	"petstay/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrQuoteInvalid = errs.New("quote input invalid")

type QuoteInput struct {
	CustomerID uuid.UUID
	PetIDs     []uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	CouponCode *string
}

// QuoteQueries prices a prospective stay without touching any reservation.
// The preview shares the calculator and coupon evaluation with the write
// side so a quoted total never disagrees with a booked one.
type QuoteQueries interface {
	Preview(ctx context.Context, in QuoteInput) (*QuoteView, error)
}

// QuotePetStore resolves pet names owned by the customer.
type QuotePetStore interface {
	FindNamesOwnedByIDs(ctx context.Context, customerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// QuoteCouponStore loads a coupon aggregate for evaluation, without locking.
type QuoteCouponStore interface {
	FindEntityByCode(ctx context.Context, code string) (*coupon.Coupon, error)
}

type quoteQueriesImpl struct {
	pets    QuotePetStore
	coupons QuoteCouponStore
	calc    reservation.PriceCalculator
	clock   clock.Clock
}

func NewQuoteQueries(pets QuotePetStore, coupons QuoteCouponStore, calc reservation.PriceCalculator, clk clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{
		pets:    pets,
		coupons: coupons,
		calc:    calc,
		clock:   clk,
	}
}

func (q *quoteQueriesImpl) Preview(ctx context.Context, in QuoteInput) (*QuoteView, error) {
	names, err := q.pets.FindNamesOwnedByIDs(ctx, in.CustomerID, in.PetIDs)
	if err != nil {
		return nil, err
	}
	refs := make([]reservation.PetRef, 0, len(in.PetIDs))
	for _, id := range in.PetIDs {
		name, ok := names[id]
		if !ok {
			return nil, errs.Mark(errs.New("pet not found for customer"), ErrQuoteInvalid)
		}
		refs = append(refs, reservation.NewPetRef(id, name))
	}

	pets, err := reservation.NewPetList(refs)
	if err != nil {
		return nil, errs.Mark(err, ErrQuoteInvalid)
	}
	stay, err := reservation.NewStayPeriod(in.StartDate, in.EndDate, clock.Today(q.clock))
	if err != nil {
		return nil, errs.Mark(err, ErrQuoteInvalid)
	}

	quote := q.calc.Quote(pets, stay)

	view := &QuoteView{
		Nights:        quote.Nights,
		SubtotalCents: quote.Subtotal.Cents(),
		TotalCents:    quote.Subtotal.Cents(),
	}
	for _, charge := range quote.PerPet {
		view.PerPet = append(view.PerPet, PetView{
			ID:          charge.Pet.ID(),
			Name:        charge.Pet.Name(),
			AmountCents: charge.Amount.Cents(),
		})
	}

	if in.CouponCode == nil {
		return view, nil
	}

	c, err := q.coupons.FindEntityByCode(ctx, *in.CouponCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			reason := "not-found"
			view.CouponRejected = &reason
			return view, nil
		}
		return nil, err
	}

	facts := coupon.EligibilityFacts{
		SubtotalCents: quote.Subtotal.Cents(),
		PetCount:      len(pets),
		Nights:        quote.Nights,
	}
	discount, err := c.Evaluate(q.clock.Now(), facts)
	if err != nil {
		reason := coupon.IneligibilityReason(err)
		if reason == "" {
			reason = "ineligible"
		}
		view.CouponRejected = &reason
		return view, nil
	}

	view.DiscountCents = discount
	view.TotalCents = quote.Subtotal.Cents() - discount
	if view.TotalCents < 0 {
		view.TotalCents = 0
	}
	view.CouponApplied = true
	return view, nil
}
