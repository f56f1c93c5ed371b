package request_models

// FindPoisRequest carries the route to search along, as [lat, lng] pairs.
type FindPoisRequest struct {
	Route [][]float64 `json:"route" binding:"required,min=2,dive,len=2"`
}
