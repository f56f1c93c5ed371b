package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"googlemaps.github.io/maps"

	"routediscovery/internal/models/response_models"
	"routediscovery/pkg/utils"
)

// poiTypes are the place categories the proximity search is scoped to. They
// also drive labeling: a result typed outside the set falls back to
// point_of_interest.
var poiTypes = []string{
	"cafe", "restaurant", "bar", "tourist_attraction",
	"museum", "park", "art_gallery", "viewpoint",
}

var labelCaser = cases.Title(language.English)

// PlacesClientInterface is the slice of the Google Maps client the resolver
// needs.
type PlacesClientInterface interface {
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
}

type POIServiceInterface interface {
	FindPoisForRoute(ctx context.Context, route [][]float64) ([]response_models.POI, error)
}

// POIService resolves points of interest near a route by sampling the route
// and issuing one proximity search per sample point and category (the Places
// API accepts a single type per request). Results are deduplicated by place
// id; per-search failures are logged and skipped, so partial results are
// expected rather than fatal.
type POIService struct {
	places           PlacesClientInterface
	searchRadius     int
	samplingDistance int
	logger           zerolog.Logger
}

func NewPOIService(places PlacesClientInterface, searchRadius, samplingDistance int, logger zerolog.Logger) POIServiceInterface {
	return &POIService{
		places:           places,
		searchRadius:     searchRadius,
		samplingDistance: samplingDistance,
		logger:           logger,
	}
}

// FindPoisForRoute takes the route as [lng, lat] pairs. Result ordering is
// not stable across calls; callers treat the slice as a set.
func (s *POIService) FindPoisForRoute(ctx context.Context, route [][]float64) ([]response_models.POI, error) {
	if err := validateRoute(route); err != nil {
		return nil, err
	}

	samples := s.sampleRoutePoints(route)
	s.logger.Info().Int("samples", len(samples)).Msg("searching pois along route")

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		found    = make(map[string]response_models.POI)
		failures int
	)

	// The searches are independent reads merged by key, so they run
	// concurrently, one goroutine per sample point and category.
	for _, sample := range samples {
		for _, category := range poiTypes {
			wg.Add(1)
			go func(loc maps.LatLng, category string) {
				defer wg.Done()

				resp, err := s.places.NearbySearch(ctx, &maps.NearbySearchRequest{
					Location: &loc,
					Radius:   uint(s.searchRadius),
					Type:     maps.PlaceType(category),
				})
				if err != nil {
					s.logger.Error().Err(err).
						Float64("lat", loc.Lat).
						Float64("lng", loc.Lng).
						Str("category", category).
						Msg("places search failed, skipping")
					mu.Lock()
					failures++
					mu.Unlock()
					return
				}

				mu.Lock()
				for _, place := range resp.Results {
					if _, ok := found[place.PlaceID]; ok {
						continue
					}
					found[place.PlaceID] = toPOI(place)
				}
				mu.Unlock()
			}(sample, category)
		}
	}
	wg.Wait()

	searches := len(samples) * len(poiTypes)
	if failures == searches && searches > 0 {
		return nil, fmt.Errorf("%w: all %d proximity searches failed", utils.ErrPoiResolution, searches)
	}

	pois := make([]response_models.POI, 0, len(found))
	for _, poi := range found {
		pois = append(pois, poi)
	}
	s.logger.Info().Int("count", len(pois)).Msg("found unique pois")
	return pois, nil
}

func validateRoute(route [][]float64) error {
	if len(route) < 2 {
		return fmt.Errorf("%w: route must contain at least 2 coordinate pairs", utils.ErrInvalidRoute)
	}
	for i, pair := range route {
		if len(pair) != 2 {
			return fmt.Errorf("%w: coordinate %d must be a [lng, lat] pair", utils.ErrInvalidRoute, i)
		}
	}
	return nil
}

// sampleRoutePoints downsamples the route with a simple stride, targeting one
// sample per samplingDistance meters of approximate length. Coordinates come
// in [lng, lat] and leave as provider LatLng.
func (s *POIService) sampleRoutePoints(route [][]float64) []maps.LatLng {
	points := make([]maps.LatLng, 0, len(route))
	if len(route) <= 2 {
		for _, c := range route {
			points = append(points, maps.LatLng{Lat: c[1], Lng: c[0]})
		}
		return points
	}

	step := 1
	if d := len(route) * 100 / s.samplingDistance; d > 0 {
		if st := len(route) / d; st > 1 {
			step = st
		}
	}
	for i := 0; i < len(route); i += step {
		points = append(points, maps.LatLng{Lat: route[i][1], Lng: route[i][0]})
	}
	return points
}

func toPOI(place maps.PlacesSearchResult) response_models.POI {
	placeType := "point_of_interest"
	for _, t := range place.Types {
		if slices.Contains(poiTypes, t) {
			placeType = t
			break
		}
	}

	name := place.Name
	if name == "" {
		name = "Unknown"
	}

	poi := response_models.POI{
		Name:   name,
		Type:   labelCaser.String(strings.ReplaceAll(placeType, "_", " ")),
		Coords: []float64{place.Geometry.Location.Lat, place.Geometry.Location.Lng},
	}
	// Google ratings start at 1.0, so zero means the place carries none. The
	// client decodes an absent price_level as 0 too, which makes "free"
	// indistinguishable from unknown here.
	if place.Rating > 0 {
		rating := place.Rating
		poi.Rating = &rating
	}
	if place.PriceLevel > 0 {
		priceLevel := place.PriceLevel
		poi.PriceLevel = &priceLevel
	}
	return poi
}
