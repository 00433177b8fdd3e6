//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"petstay/internal/domain/coupon"
	"petstay/internal/domain/reservation"
	"petstay/internal/domain/user"
	"petstay/internal/pkg/clock"
	"petstay/internal/usecase/commands"
	"petstay/internal/usecase/shared"
	"petstay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// in-memory fakes
// ---------------------------------------------------------------------------

type fakeReservationRepo struct {
	byID    map[uuid.UUID]*reservation.Reservation
	saves   int
	creates int
	deletes int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{byID: make(map[uuid.UUID]*reservation.Reservation)}
}

func (r *fakeReservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	r.byID[res.ID()] = res
	r.creates++
	return nil
}

func (r *fakeReservationRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.byID[id]
	if !ok {
		return nil, errors.New("reservation not found")
	}
	return res, nil
}

func (r *fakeReservationRepo) Save(_ context.Context, res *reservation.Reservation) error {
	r.byID[res.ID()] = res
	r.saves++
	return nil
}

func (r *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	r.deletes++
	return nil
}

type fakeCouponRepo struct {
	byID      map[uuid.UUID]*coupon.Coupon
	redeems   map[uuid.UUID]int
	releases  map[uuid.UUID]int
	capHit    bool
	createErr error
}

func newFakeCouponRepo(coupons ...*coupon.Coupon) *fakeCouponRepo {
	r := &fakeCouponRepo{
		byID:     make(map[uuid.UUID]*coupon.Coupon),
		redeems:  make(map[uuid.UUID]int),
		releases: make(map[uuid.UUID]int),
	}
	for _, c := range coupons {
		r.byID[c.ID()] = c
	}
	return r
}

func (r *fakeCouponRepo) FindByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, errors.New("coupon not found")
	}
	for _, c := range r.byID {
		if c.Code() == normalized {
			return c, nil
		}
	}
	return nil, errors.New("coupon not found")
}

func (r *fakeCouponRepo) FindByID(_ context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, errors.New("coupon not found")
	}
	return c, nil
}

func (r *fakeCouponRepo) Create(_ context.Context, c *coupon.Coupon) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[c.ID()] = c
	return nil
}

func (r *fakeCouponRepo) Save(_ context.Context, c *coupon.Coupon) error {
	r.byID[c.ID()] = c
	return nil
}

func (r *fakeCouponRepo) Redeem(_ context.Context, id uuid.UUID) error {
	if r.capHit {
		return errors.New("usage cap reached")
	}
	r.redeems[id]++
	return nil
}

func (r *fakeCouponRepo) Release(_ context.Context, id uuid.UUID) error {
	r.releases[id]++
	return nil
}

type fakePetRepo struct {
	snapshots []shared.PetSnapshot
}

func (r *fakePetRepo) FindOwnedByIDs(_ context.Context, customerID uuid.UUID, ids []uuid.UUID) ([]shared.PetSnapshot, error) {
	var out []shared.PetSnapshot
	for _, s := range r.snapshots {
		if s.CustomerID != customerID {
			continue
		}
		for _, id := range ids {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID) error { return nil }

type fakeTx struct {
	reservations *fakeReservationRepo
	coupons      *fakeCouponRepo
	pets         *fakePetRepo
	users        *fakeUserRepo
}

func (t *fakeTx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *fakeTx) Coupons() shared.CouponRepository           { return t.coupons }
func (t *fakeTx) Pets() shared.PetRepository                 { return t.pets }
func (t *fakeTx) Users() shared.UserRepository               { return t.users }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

// ---------------------------------------------------------------------------
// fixture
// ---------------------------------------------------------------------------

type fixture struct {
	commands commands.ReservationCommands
	tx       *fakeTx
	customer user.Actor
	staff    user.Actor
	petIDs   []uuid.UUID
}

func newFixture(t *testing.T, coupons ...*coupon.Coupon) *fixture {
	t.Helper()

	customer := builder.NewCustomerActor()
	petIDs := []uuid.UUID{uuid.New(), uuid.New()}

	tx := &fakeTx{
		reservations: newFakeReservationRepo(),
		coupons:      newFakeCouponRepo(coupons...),
		pets: &fakePetRepo{snapshots: []shared.PetSnapshot{
			{ID: petIDs[0], CustomerID: customer.ID, Name: "Rex"},
			{ID: petIDs[1], CustomerID: customer.ID, Name: "Luna"},
		}},
		users: &fakeUserRepo{},
	}

	clk := clock.NewMockClock(builder.BaseTime)
	calc := reservation.NewNightlyRateCalculator(builder.DefaultNightlyRateCents)
	factory := reservation.NewFactory(clk, calc)

	return &fixture{
		commands: commands.NewReservationCommands(&fakeUoW{tx: tx}, factory, clk),
		tx:       tx,
		customer: customer,
		staff:    builder.NewStaffActor(),
		petIDs:   petIDs,
	}
}

// two pets, two nights: subtotal 34000
func (f *fixture) createInput() commands.CreateReservationInput {
	start := builder.BaseTime.AddDate(0, 0, 10)
	return commands.CreateReservationInput{
		PetIDs:    f.petIDs,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
	}
}

func (f *fixture) mustCreate(t *testing.T, in commands.CreateReservationInput) uuid.UUID {
	t.Helper()
	id, err := f.commands.Create(context.Background(), f.customer, in)
	require.NoError(t, err)
	return id
}

func tenPercentCoupon() *coupon.Coupon {
	return builder.NewCouponBuilder().WithCode("SAVE10").WithPercent(10).MustBuild()
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestCreateReservation(t *testing.T) {
	t.Run("plain booking", func(t *testing.T) {
		f := newFixture(t)

		id := f.mustCreate(t, f.createInput())

		res := f.tx.reservations.byID[id]
		require.NotNil(t, res)
		assert.Equal(t, f.customer.ID, res.CustomerID())
		assert.Equal(t, int64(34000), res.PriceQuote().Subtotal.Cents())
		assert.Equal(t, 1, f.tx.reservations.creates)
	})

	t.Run("pet order follows the request", func(t *testing.T) {
		f := newFixture(t)
		in := f.createInput()
		in.PetIDs = []uuid.UUID{f.petIDs[1], f.petIDs[0]}

		id := f.mustCreate(t, in)

		pets := f.tx.reservations.byID[id].Pets()
		require.Len(t, pets, 2)
		assert.Equal(t, "Luna", pets[0].Name())
		assert.Equal(t, "Rex", pets[1].Name())
	})

	t.Run("booking with a coupon redeems a usage slot", func(t *testing.T) {
		c := tenPercentCoupon()
		f := newFixture(t, c)
		in := f.createInput()
		code := "SAVE10"
		in.CouponCode = &code

		id := f.mustCreate(t, in)

		res := f.tx.reservations.byID[id]
		assert.Equal(t, int64(3400), res.Discount().Cents())
		assert.Equal(t, int64(30600), res.Total().Cents())
		assert.Equal(t, 1, f.tx.coupons.redeems[c.ID()])
	})

	t.Run("unknown pet id", func(t *testing.T) {
		f := newFixture(t)
		in := f.createInput()
		in.PetIDs = append(in.PetIDs, uuid.New())

		_, err := f.commands.Create(context.Background(), f.customer, in)
		require.ErrorIs(t, err, commands.ErrPetNotFound)
		assert.Zero(t, f.tx.reservations.creates)
	})

	t.Run("another customer's pet", func(t *testing.T) {
		f := newFixture(t)
		stranger := builder.NewCustomerActor()
		in := f.createInput()

		_, err := f.commands.Create(context.Background(), stranger, in)
		require.ErrorIs(t, err, commands.ErrPetNotFound)
	})

	t.Run("unknown coupon code", func(t *testing.T) {
		f := newFixture(t)
		in := f.createInput()
		code := "NOSUCHCODE"
		in.CouponCode = &code

		_, err := f.commands.Create(context.Background(), f.customer, in)
		require.ErrorIs(t, err, commands.ErrCouponNotFound)
		assert.Equal(t, "not-found", commands.CouponIneligibilityReason(err))
		assert.Zero(t, f.tx.reservations.creates)
	})

	t.Run("ineligible coupon aborts the booking", func(t *testing.T) {
		c := builder.NewCouponBuilder().
			WithCode("BIGSPEND").
			WithKind(coupon.KindPercentWithMinSubtotal).
			WithMinSubtotal(99999).
			MustBuild()
		f := newFixture(t, c)
		in := f.createInput()
		code := "BIGSPEND"
		in.CouponCode = &code

		_, err := f.commands.Create(context.Background(), f.customer, in)
		require.ErrorIs(t, err, commands.ErrIneligibleCoupon)
		assert.Equal(t, "minimum-not-met", commands.CouponIneligibilityReason(err))
		assert.Zero(t, f.tx.coupons.redeems[c.ID()])
	})

	t.Run("invalid dates", func(t *testing.T) {
		f := newFixture(t)
		in := f.createInput()
		in.StartDate, in.EndDate = in.EndDate, in.StartDate

		_, err := f.commands.Create(context.Background(), f.customer, in)
		require.ErrorIs(t, err, commands.ErrValidation)
	})
}

func TestApplyCoupon(t *testing.T) {
	t.Run("attach to an existing reservation", func(t *testing.T) {
		c := tenPercentCoupon()
		f := newFixture(t, c)
		id := f.mustCreate(t, f.createInput())

		require.NoError(t, f.commands.ApplyCoupon(context.Background(), f.customer, id, "SAVE10"))

		res := f.tx.reservations.byID[id]
		assert.Equal(t, reservation.DiscountSourceCoupon, res.DiscountSource())
		assert.Equal(t, 1, f.tx.coupons.redeems[c.ID()])
	})

	t.Run("replacing a coupon releases the old slot", func(t *testing.T) {
		first := tenPercentCoupon()
		second := builder.NewCouponBuilder().WithCode("SAVE20").WithPercent(20).MustBuild()
		f := newFixture(t, first, second)
		id := f.mustCreate(t, f.createInput())
		require.NoError(t, f.commands.ApplyCoupon(context.Background(), f.customer, id, "SAVE10"))

		require.NoError(t, f.commands.ApplyCoupon(context.Background(), f.customer, id, "SAVE20"))

		assert.Equal(t, 1, f.tx.coupons.releases[first.ID()])
		assert.Equal(t, 1, f.tx.coupons.redeems[second.ID()])
		res := f.tx.reservations.byID[id]
		assert.Equal(t, int64(6800), res.Discount().Cents())
	})

	t.Run("re-applying the same coupon does not redeem twice", func(t *testing.T) {
		c := tenPercentCoupon()
		f := newFixture(t, c)
		id := f.mustCreate(t, f.createInput())
		require.NoError(t, f.commands.ApplyCoupon(context.Background(), f.customer, id, "SAVE10"))

		require.NoError(t, f.commands.ApplyCoupon(context.Background(), f.customer, id, "SAVE10"))

		assert.Equal(t, 1, f.tx.coupons.redeems[c.ID()])
		assert.Zero(t, f.tx.coupons.releases[c.ID()])
	})

	t.Run("losing the redemption race surfaces as cap reached", func(t *testing.T) {
		c := tenPercentCoupon()
		f := newFixture(t, c)
		id := f.mustCreate(t, f.createInput())
		f.tx.coupons.capHit = true

		err := f.commands.ApplyCoupon(context.Background(), f.customer, id, "SAVE10")
		require.ErrorIs(t, err, commands.ErrIneligibleCoupon)
		assert.Equal(t, "cap-reached", commands.CouponIneligibilityReason(err))
	})

	t.Run("rejected while a manual discount is set", func(t *testing.T) {
		c := tenPercentCoupon()
		f := newFixture(t, c)
		id := f.mustCreate(t, f.createInput())
		require.NoError(t, f.commands.GrantManualDiscount(context.Background(), f.staff, id, 1000))

		err := f.commands.ApplyCoupon(context.Background(), f.customer, id, "SAVE10")
		require.ErrorIs(t, err, commands.ErrManualDiscountSet)
		assert.Zero(t, f.tx.coupons.redeems[c.ID()])
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t, tenPercentCoupon())

		err := f.commands.ApplyCoupon(context.Background(), f.customer, uuid.New(), "SAVE10")
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestRemoveCoupon(t *testing.T) {
	t.Run("releases the usage slot", func(t *testing.T) {
		c := tenPercentCoupon()
		f := newFixture(t, c)
		id := f.mustCreate(t, f.createInput())
		require.NoError(t, f.commands.ApplyCoupon(context.Background(), f.customer, id, "SAVE10"))

		require.NoError(t, f.commands.RemoveCoupon(context.Background(), f.customer, id))

		assert.Equal(t, 1, f.tx.coupons.releases[c.ID()])
		res := f.tx.reservations.byID[id]
		assert.Equal(t, reservation.DiscountSourceNone, res.DiscountSource())
	})

	t.Run("nothing to remove", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())

		err := f.commands.RemoveCoupon(context.Background(), f.customer, id)
		require.ErrorIs(t, err, commands.ErrValidation)
	})
}

func TestManualDiscount(t *testing.T) {
	t.Run("staff grant", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())

		require.NoError(t, f.commands.GrantManualDiscount(context.Background(), f.staff, id, 5000))

		res := f.tx.reservations.byID[id]
		assert.Equal(t, reservation.DiscountSourceManual, res.DiscountSource())
		assert.Equal(t, int64(5000), res.Discount().Cents())
	})

	t.Run("customer cannot grant", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())

		err := f.commands.GrantManualDiscount(context.Background(), f.customer, id, 5000)
		require.ErrorIs(t, err, commands.ErrForbiddenRole)
	})

	t.Run("negative amount", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())

		err := f.commands.GrantManualDiscount(context.Background(), f.staff, id, -1)
		require.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("replacing a coupon releases its slot", func(t *testing.T) {
		c := tenPercentCoupon()
		f := newFixture(t, c)
		id := f.mustCreate(t, f.createInput())
		require.NoError(t, f.commands.ApplyCoupon(context.Background(), f.customer, id, "SAVE10"))

		require.NoError(t, f.commands.GrantManualDiscount(context.Background(), f.staff, id, 5000))

		assert.Equal(t, 1, f.tx.coupons.releases[c.ID()])
		res := f.tx.reservations.byID[id]
		assert.Nil(t, res.CouponID())
	})

	t.Run("clear", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())
		require.NoError(t, f.commands.GrantManualDiscount(context.Background(), f.staff, id, 5000))

		require.NoError(t, f.commands.ClearManualDiscount(context.Background(), f.staff, id))

		res := f.tx.reservations.byID[id]
		assert.Equal(t, reservation.DiscountSourceNone, res.DiscountSource())
	})
}

func TestLifecycleCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("staff drive the full lifecycle", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())

		require.NoError(t, f.commands.Confirm(ctx, f.staff, id))
		require.NoError(t, f.commands.RequestPayment(ctx, f.staff, id))
		require.NoError(t, f.commands.SubmitPaymentProof(ctx, f.customer, id, commands.SubmitPaymentProofInput{
			ArtifactRef: "receipts/0001.pdf",
			Note:        "pix",
		}))
		require.NoError(t, f.commands.ApprovePayment(ctx, f.staff, id))
		require.NoError(t, f.commands.Finalize(ctx, f.staff, id))

		res := f.tx.reservations.byID[id]
		assert.Equal(t, reservation.StatusFinalized, res.Status())
		require.NotNil(t, res.Proof())
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())

		err := f.commands.Confirm(ctx, f.customer, id)
		require.ErrorIs(t, err, commands.ErrForbiddenRole)
	})

	t.Run("out of order transition", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())

		err := f.commands.ApprovePayment(ctx, f.staff, id)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("cancel keeps the coupon slot consumed", func(t *testing.T) {
		c := tenPercentCoupon()
		f := newFixture(t, c)
		id := f.mustCreate(t, f.createInput())
		require.NoError(t, f.commands.ApplyCoupon(ctx, f.customer, id, "SAVE10"))

		require.NoError(t, f.commands.Cancel(ctx, f.staff, id))

		assert.Zero(t, f.tx.coupons.releases[c.ID()])
		res := f.tx.reservations.byID[id]
		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.Equal(t, reservation.DiscountSourceCoupon, res.DiscountSource())
	})

	t.Run("payment proof outside payment pending", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())

		err := f.commands.SubmitPaymentProof(ctx, f.customer, id, commands.SubmitPaymentProofInput{ArtifactRef: "x"})
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}

func TestUpdateReservation(t *testing.T) {
	ctx := context.Background()

	updateInput := func(f *fixture, nights int) commands.UpdateReservationInput {
		start := builder.BaseTime.AddDate(0, 0, 20)
		return commands.UpdateReservationInput{
			PetIDs:    f.petIDs[:1],
			StartDate: start,
			EndDate:   start.AddDate(0, 0, nights),
		}
	}

	t.Run("reprices the stay", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())

		require.NoError(t, f.commands.Update(ctx, f.customer, id, updateInput(f, 1)))

		res := f.tx.reservations.byID[id]
		assert.Equal(t, int64(8500), res.PriceQuote().Subtotal.Cents())
		assert.Len(t, res.Pets(), 1)
	})

	t.Run("attached coupon is re-evaluated against the new quote", func(t *testing.T) {
		c := builder.NewCouponBuilder().
			WithCode("LONGSTAY").
			WithKind(coupon.KindPercentWithMinNights).
			WithMinNights(2).
			MustBuild()
		f := newFixture(t, c)
		id := f.mustCreate(t, f.createInput())
		require.NoError(t, f.commands.ApplyCoupon(ctx, f.customer, id, "LONGSTAY"))
		savesBefore := f.tx.reservations.saves

		err := f.commands.Update(ctx, f.customer, id, updateInput(f, 1))

		require.ErrorIs(t, err, commands.ErrIneligibleCoupon)
		assert.Equal(t, savesBefore, f.tx.reservations.saves)
	})

	t.Run("coupon discount is recomputed when still eligible", func(t *testing.T) {
		c := tenPercentCoupon()
		f := newFixture(t, c)
		id := f.mustCreate(t, f.createInput())
		require.NoError(t, f.commands.ApplyCoupon(ctx, f.customer, id, "SAVE10"))

		require.NoError(t, f.commands.Update(ctx, f.customer, id, updateInput(f, 1)))

		res := f.tx.reservations.byID[id]
		assert.Equal(t, int64(850), res.Discount().Cents())
		assert.Equal(t, 1, f.tx.coupons.redeems[c.ID()])
	})

	t.Run("note update rides along", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())
		note := "allergic to chicken"
		in := updateInput(f, 2)
		in.Note = &note

		require.NoError(t, f.commands.Update(ctx, f.customer, id, in))
		assert.Equal(t, note, f.tx.reservations.byID[id].Note().String())
	})
}

func TestDeleteReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("created reservations can be deleted", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())

		require.NoError(t, f.commands.Delete(ctx, f.customer, id))
		assert.Equal(t, 1, f.tx.reservations.deletes)
	})

	t.Run("confirmed reservations cannot", func(t *testing.T) {
		f := newFixture(t)
		id := f.mustCreate(t, f.createInput())
		require.NoError(t, f.commands.Confirm(ctx, f.staff, id))

		err := f.commands.Delete(ctx, f.customer, id)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
		assert.Zero(t, f.tx.reservations.deletes)
	})
}
