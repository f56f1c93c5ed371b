package response_models

// POI is a point of interest near a route. Coords is [lat, lng]. Rating and
// PriceLevel are omitted when the provider has no value for them.
type POI struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Coords     []float64 `json:"coords"`
	Rating     *float32  `json:"rating,omitempty"`
	PriceLevel *int      `json:"price_level,omitempty"`
}
