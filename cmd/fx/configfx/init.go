package configfx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"routediscovery/pkg/config"
	"routediscovery/pkg/logger"
)

var Module = fx.Provide(
	provideConfig, provideLogger)

func provideConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func provideLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(cfg.Debug)
}
