//go:build unit || e2e

package builder

import (
	"time"

	"petstay/internal/domain/reservation"
	"petstay/internal/domain/user"
	"petstay/internal/pkg/clock"
	"petstay/internal/usecase/queries"

	"github.com/google/uuid"
)

// BaseTime is the frozen "now" every builder starts from. Stays default to
// a three night booking ten days out.
var BaseTime = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

const DefaultNightlyRateCents = 8500

type ReservationBuilder struct {
	Actor      user.Actor
	CustomerID uuid.UUID
	Pets       []reservation.PetRef
	Start      time.Time
	End        time.Time
	Note       string
	Now        time.Time
	RateCents  int64
}

func NewReservationBuilder() *ReservationBuilder {
	actor := NewCustomerActor()
	return &ReservationBuilder{
		Actor:      actor,
		CustomerID: actor.ID,
		Pets: []reservation.PetRef{
			reservation.NewPetRef(uuid.New(), "Rex"),
		},
		Start:     BaseTime.AddDate(0, 0, 10),
		End:       BaseTime.AddDate(0, 0, 13),
		Note:      "",
		Now:       BaseTime,
		RateCents: DefaultNightlyRateCents,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithActor(actor user.Actor) *ReservationBuilder {
	b.Actor = actor
	return b
}

func (b *ReservationBuilder) WithCustomerID(id uuid.UUID) *ReservationBuilder {
	b.CustomerID = id
	return b
}

func (b *ReservationBuilder) WithPets(pets ...reservation.PetRef) *ReservationBuilder {
	b.Pets = pets
	return b
}

func (b *ReservationBuilder) WithPetCount(n int) *ReservationBuilder {
	pets := make([]reservation.PetRef, n)
	names := []string{"Rex", "Luna", "Thor", "Mel", "Bidu"}
	for i := range pets {
		name := "Pet"
		if i < len(names) {
			name = names[i]
		}
		pets[i] = reservation.NewPetRef(uuid.New(), name)
	}
	b.Pets = pets
	return b
}

func (b *ReservationBuilder) WithStay(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) WithNights(n int) *ReservationBuilder {
	b.Start = BaseTime.AddDate(0, 0, 10)
	b.End = b.Start.AddDate(0, 0, n)
	return b
}

func (b *ReservationBuilder) WithNote(note string) *ReservationBuilder {
	b.Note = note
	return b
}

func (b *ReservationBuilder) Factory() *reservation.Factory {
	calc := reservation.NewNightlyRateCalculator(b.RateCents)
	return reservation.NewFactory(clock.NewMockClock(b.Now), calc)
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return b.Factory().NewReservation(b.Actor, b.CustomerID, b.Pets, b.Start, b.End, reservation.NewNote(b.Note))
}

// MustBuild is for tests exercising behavior past construction.
func (b *ReservationBuilder) MustBuild() *reservation.Reservation {
	res, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}

// BuildView produces the read model a freshly created reservation would
// project to, priced with the builder's rate.
func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	period, err := reservation.NewStayPeriod(b.Start, b.End, b.Now)
	if err != nil {
		panic(err)
	}
	nights := period.Nights()

	pets := make([]queries.PetView, len(b.Pets))
	var subtotal int64
	for i, p := range b.Pets {
		amount := b.RateCents * int64(nights)
		pets[i] = queries.PetView{ID: p.ID(), Name: p.Name(), AmountCents: amount}
		subtotal += amount
	}

	view := &queries.ReservationView{
		ID:             uuid.New(),
		CustomerID:     b.CustomerID,
		CustomerName:   "Test Customer",
		Pets:           pets,
		StartDate:      b.Start,
		EndDate:        b.End,
		Nights:         nights,
		Status:         reservation.StatusCreated.String(),
		SubtotalCents:  subtotal,
		DiscountCents:  0,
		DiscountSource: string(reservation.DiscountSourceNone),
		TotalCents:     subtotal,
		History: []queries.HistoryEntryView{
			{Status: reservation.StatusCreated.String(), ActorID: b.Actor.ID, ActorName: "Test Customer", RecordedAt: b.Now},
		},
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
	if b.Note != "" {
		note := b.Note
		view.Note = &note
	}
	return view
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	view := b.BuildView()
	return &queries.ReservationListItem{
		ID:            view.ID,
		CustomerID:    view.CustomerID,
		CustomerName:  view.CustomerName,
		PetCount:      len(view.Pets),
		StartDate:     view.StartDate,
		EndDate:       view.EndDate,
		Status:        view.Status,
		TotalCents:    view.TotalCents,
		DiscountCents: view.DiscountCents,
		CreatedAt:     view.CreatedAt,
	}
}
