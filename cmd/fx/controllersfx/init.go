package controllersfx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"routediscovery/internal/api/controllers"
	"routediscovery/internal/services"
	"routediscovery/pkg/config"
)

var Module = fx.Provide(
	provideAuthController, provideActivitiesController, providePoisController)

func provideAuthController(tokenService services.TokenServiceInterface, cfg *config.Config, log zerolog.Logger) *controllers.AuthController {
	return controllers.NewAuthController(tokenService, cfg.FrontendURL, log)
}

func provideActivitiesController(stravaService services.StravaServiceInterface, log zerolog.Logger) *controllers.ActivitiesController {
	return controllers.NewActivitiesController(stravaService, log)
}

func providePoisController(poiService services.POIServiceInterface, log zerolog.Logger) *controllers.POIsController {
	return controllers.NewPOIsController(poiService, log)
}
