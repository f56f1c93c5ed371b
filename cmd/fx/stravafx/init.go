package stravafx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"routediscovery/internal/services"
	"routediscovery/pkg/config"
)

var Module = fx.Provide(
	provideTokenService, provideStravaService)

func provideTokenService(cfg *config.Config, log zerolog.Logger) services.TokenServiceInterface {
	return services.NewTokenService(cfg.StravaClientID, cfg.StravaClientSecret, log)
}

func provideStravaService(log zerolog.Logger) services.StravaServiceInterface {
	return services.NewStravaService(log)
}
