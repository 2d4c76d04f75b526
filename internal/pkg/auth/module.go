package auth

import (
	"github.com/solenik/userhub/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

type hasherParams struct {
	fx.In

	Config *config.Config
}

func newPasswordHasher(p hasherParams) PasswordHasher {
	return NewBcryptHasher(p.Config.BcryptCost)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) TokenStrategy {
	return NewJWTStrategy(p.Config.TokenSecret, Options{TTL: p.Config.TokenTTL})
}
