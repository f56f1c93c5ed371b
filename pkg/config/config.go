package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything read from the environment at startup. Services get
// their settings from here at construction time, never from os.Getenv.
type Config struct {
	StravaClientID     string
	StravaClientSecret string
	GoogleMapsAPIKey   string

	SessionSecret string

	// POISearchRadius is the proximity-search radius in meters around each
	// route sample point.
	POISearchRadius int
	// POISamplingDistance is the target distance in meters between route
	// sample points.
	POISamplingDistance int

	FrontendURL string
	Port        string
	Debug       bool
}

func Load() *Config {
	return &Config{
		StravaClientID:      os.Getenv("STRAVA_CLIENT_ID"),
		StravaClientSecret:  os.Getenv("STRAVA_CLIENT_SECRET"),
		GoogleMapsAPIKey:    os.Getenv("GOOGLE_MAPS_API_KEY"),
		SessionSecret:       envOr("SESSION_SECRET", "dev-secret-key"),
		POISearchRadius:     envIntOr("POI_SEARCH_RADIUS", 100),
		POISamplingDistance: envIntOr("POI_ROUTE_SAMPLING_DISTANCE", 500),
		FrontendURL:         envOr("FRONTEND_URL", "http://localhost:5173"),
		Port:                envOr("PORT", "8080"),
		Debug:               envBool("DEBUG"),
	}
}

// Validate reports every missing required variable at once so a broken
// deployment is fixed in one pass.
func (c *Config) Validate() error {
	var missing []string
	if c.StravaClientID == "" {
		missing = append(missing, "STRAVA_CLIENT_ID")
	}
	if c.StravaClientSecret == "" {
		missing = append(missing, "STRAVA_CLIENT_SECRET")
	}
	if c.GoogleMapsAPIKey == "" {
		missing = append(missing, "GOOGLE_MAPS_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if c.POISearchRadius <= 0 {
		return fmt.Errorf("POI_SEARCH_RADIUS must be positive, got %d", c.POISearchRadius)
	}
	if c.POISamplingDistance <= 0 {
		return fmt.Errorf("POI_ROUTE_SAMPLING_DISTANCE must be positive, got %d", c.POISamplingDistance)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}
