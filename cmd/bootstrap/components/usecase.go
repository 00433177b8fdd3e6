package components

import (
	"petstay/internal/domain/reservation"
	"petstay/internal/pkg/clock"
	"petstay/internal/pkg/config"
	"petstay/internal/usecase"
	"petstay/internal/usecase/commands"
	"petstay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

func NewPriceCalculator(cfg config.Config) *reservation.NightlyRateCalculator {
	return reservation.NewNightlyRateCalculator(cfg.Pricing.NightlyRateCents)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewCouponCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewCouponQueries,
		queries.NewQuoteQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
