package response_models

// Activity is the client-facing projection of a Strava activity that carries
// GPS data.
type Activity struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Distance  float64 `json:"distance"`
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"`
}

type StreamResponse struct {
	Stream [][]float64 `json:"stream"`
}

type GPXResponse struct {
	GPX string `json:"gpx"`
}
