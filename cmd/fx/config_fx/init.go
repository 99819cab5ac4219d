package config_fx

import (
	"go.uber.org/fx"

	"wanderai/internal/infra"
	"wanderai/pkg/utils"
)

var Module = fx.Provide(
	infra.LoadConfig,
	provideJWTMaker,
)

func provideJWTMaker(cfg *infra.Config) *utils.JWTMaker {
	return utils.NewJWTMaker(cfg.JWTSecret, cfg.TokenExpiry)
}
