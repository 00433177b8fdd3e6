//go:build unit

package commands_test

import (
	"context"
	"testing"

	"petstay/internal/domain/coupon"
	"petstay/internal/infra"
	"petstay/internal/usecase/commands"
	"petstay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCouponFixture(coupons ...*coupon.Coupon) (commands.CouponCommands, *fakeCouponRepo) {
	repo := newFakeCouponRepo(coupons...)
	uow := &fakeUoW{tx: &fakeTx{
		reservations: newFakeReservationRepo(),
		coupons:      repo,
		pets:         &fakePetRepo{},
		users:        &fakeUserRepo{},
	}}
	return commands.NewCouponCommands(uow), repo
}

func validInput() commands.CouponInput {
	return commands.CouponInput{
		Code:        "WELCOME10",
		Description: "10% off the stay",
		Kind:        int(coupon.KindPercentOfTotal),
		Percent:     10,
	}
}

func TestCreateCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active coupon", func(t *testing.T) {
		cmd, repo := newCouponFixture()

		id, err := cmd.Create(ctx, validInput())
		require.NoError(t, err)

		c := repo.byID[id]
		require.NotNil(t, c)
		assert.True(t, c.IsActive())
		assert.Equal(t, "WELCOME10", c.Code().String())
		assert.Zero(t, c.UsedCount())
	})

	t.Run("code is normalized", func(t *testing.T) {
		cmd, repo := newCouponFixture()
		in := validInput()
		in.Code = "  welcome10 "

		id, err := cmd.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "WELCOME10", repo.byID[id].Code().String())
	})

	t.Run("invalid code", func(t *testing.T) {
		cmd, _ := newCouponFixture()
		in := validInput()
		in.Code = "no!"

		_, err := cmd.Create(ctx, in)
		require.ErrorIs(t, err, commands.ErrCouponValidation)
	})

	t.Run("invalid policy", func(t *testing.T) {
		cmd, _ := newCouponFixture()
		in := validInput()
		in.Percent = 0

		_, err := cmd.Create(ctx, in)
		require.ErrorIs(t, err, commands.ErrCouponValidation)
	})

	t.Run("duplicate code", func(t *testing.T) {
		cmd, repo := newCouponFixture()
		repo.createErr = infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)

		_, err := cmd.Create(ctx, validInput())
		require.ErrorIs(t, err, commands.ErrDuplicateCode)
	})
}

func TestUpdateCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces editable fields, keeps the counter", func(t *testing.T) {
		existing := builder.NewCouponBuilder().WithUsedCount(7).MustBuild()
		cmd, repo := newCouponFixture(existing)

		in := validInput()
		in.Description = "now 25% off"
		in.Percent = 25
		require.NoError(t, cmd.Update(ctx, existing.ID(), in))

		c := repo.byID[existing.ID()]
		assert.Equal(t, "now 25% off", c.Description())
		assert.InDelta(t, 25.0, c.Policy().Percent(), 0.001)
		assert.Equal(t, int32(7), c.UsedCount())
	})

	t.Run("unknown coupon", func(t *testing.T) {
		cmd, _ := newCouponFixture()
		err := cmd.Update(ctx, uuid.New(), validInput())
		require.ErrorIs(t, err, commands.ErrCouponNotFound)
	})
}

func TestCouponActivation(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivate then activate", func(t *testing.T) {
		existing := builder.NewCouponBuilder().MustBuild()
		cmd, repo := newCouponFixture(existing)

		require.NoError(t, cmd.Deactivate(ctx, existing.ID()))
		assert.False(t, repo.byID[existing.ID()].IsActive())

		require.NoError(t, cmd.Activate(ctx, existing.ID()))
		assert.True(t, repo.byID[existing.ID()].IsActive())
	})

	t.Run("unknown coupon", func(t *testing.T) {
		cmd, _ := newCouponFixture()
		require.ErrorIs(t, cmd.Deactivate(ctx, uuid.New()), commands.ErrCouponNotFound)
	})
}
