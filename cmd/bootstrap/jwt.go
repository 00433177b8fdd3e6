package bootstrap

import (
	"petstay/internal/pkg/config"
	"petstay/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) jwt.Service {
	return jwt.NewService(cfg.JWT)
}
