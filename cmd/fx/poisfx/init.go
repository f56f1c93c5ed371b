package poisfx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"googlemaps.github.io/maps"

	"routediscovery/internal/services"
	"routediscovery/pkg/config"
)

var Module = fx.Provide(
	providePlacesClient, providePoiService)

func providePlacesClient(cfg *config.Config) (services.PlacesClientInterface, error) {
	client, err := maps.NewClient(maps.WithAPIKey(cfg.GoogleMapsAPIKey))
	if err != nil {
		return nil, err
	}
	return client, nil
}

func providePoiService(places services.PlacesClientInterface, cfg *config.Config, log zerolog.Logger) services.POIServiceInterface {
	return services.NewPOIService(places, cfg.POISearchRadius, cfg.POISamplingDistance, log)
}
