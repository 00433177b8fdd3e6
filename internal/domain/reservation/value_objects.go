package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayRange = errors.New("start date must not be after end date")
	ErrStayInPast       = errors.New("stay dates cannot be in the past")
	ErrNoPets           = errors.New("reservation requires at least one pet")
	ErrTooManyPets      = errors.New("reservation accepts at most three pets")
	ErrDuplicatePet     = errors.New("reservation pets must be distinct")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrEmptyProofRef    = errors.New("payment proof reference is required")
)

// MaxPets is the booking limit per reservation.
const MaxPets = 3

// StayPeriod is a contiguous calendar date range. Time-of-day is never
// significant; both bounds are truncated to midnight UTC.
type StayPeriod struct {
	start time.Time
	end   time.Time
}

// NewStayPeriod validates start <= end and that neither date is before
// today in the authority's clock.
func NewStayPeriod(start, end, today time.Time) (StayPeriod, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	today = truncateToDate(today)

	if start.After(end) {
		return StayPeriod{}, ErrInvalidStayRange
	}
	if start.Before(today) || end.Before(today) {
		return StayPeriod{}, ErrStayInPast
	}

	return StayPeriod{start: start, end: end}, nil
}

// ReconstructStayPeriod rebuilds a stored period without the "not in the
// past" check, which only applies at creation/modification time.
func ReconstructStayPeriod(start, end time.Time) StayPeriod {
	return StayPeriod{start: truncateToDate(start), end: truncateToDate(end)}
}

func (s StayPeriod) Start() time.Time { return s.start }
func (s StayPeriod) End() time.Time   { return s.end }

// Nights is the billable duration. A same-day stay still bills one night.
func (s StayPeriod) Nights() int {
	nights := int(s.end.Sub(s.start).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Money is an amount in centavos (BRL). Arithmetic stays in integer cents;
// two-decimal rendering happens at the presentation layer.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// MoneyFromCents trusts the input; used for already-validated amounts.
func MoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Reais() float64 { return float64(m.cents) / 100.0 }

func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// SubFloored subtracts, flooring at zero.
func (m Money) SubFloored(other Money) Money {
	if other.cents >= m.cents {
		return Money{}
	}
	return Money{cents: m.cents - other.cents}
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// PetRef references a pet owned by the customer. The reservation never
// owns the pet; the display name is denormalized for the stay record.
type PetRef struct {
	id   uuid.UUID
	name string
}

func NewPetRef(id uuid.UUID, name string) PetRef {
	return PetRef{id: id, name: name}
}

func (p PetRef) ID() uuid.UUID { return p.id }
func (p PetRef) Name() string  { return p.name }

// NewPetList validates the 1..3 distinct pets invariant.
func NewPetList(refs []PetRef) ([]PetRef, error) {
	if len(refs) == 0 {
		return nil, ErrNoPets
	}
	if len(refs) > MaxPets {
		return nil, ErrTooManyPets
	}
	seen := make(map[uuid.UUID]struct{}, len(refs))
	for _, ref := range refs {
		if _, dup := seen[ref.id]; dup {
			return nil, ErrDuplicatePet
		}
		seen[ref.id] = struct{}{}
	}
	out := make([]PetRef, len(refs))
	copy(out, refs)
	return out, nil
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string { return n.value }
func (n Note) IsEmpty() bool  { return n.value == "" }

// PaymentProof is an opaque reference to an uploaded artifact plus
// free-text notes. Storage of the artifact itself is external.
type PaymentProof struct {
	artifactRef string
	note        string
	submittedAt time.Time
}

func NewPaymentProof(artifactRef, note string, submittedAt time.Time) (PaymentProof, error) {
	if artifactRef == "" {
		return PaymentProof{}, ErrEmptyProofRef
	}
	return PaymentProof{artifactRef: artifactRef, note: note, submittedAt: submittedAt}, nil
}

func (p PaymentProof) ArtifactRef() string    { return p.artifactRef }
func (p PaymentProof) Note() string           { return p.note }
func (p PaymentProof) SubmittedAt() time.Time { return p.submittedAt }

// HistoryEntry is an immutable audit record of a state-affecting event.
type HistoryEntry struct {
	Status     Status
	ActorID    uuid.UUID
	RecordedAt time.Time
}
