package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"routediscovery/internal/models/response_models"
	"routediscovery/pkg/utils"
)

const (
	stravaAPIURL = "https://www.strava.com/api/v3"

	// Strava caps per_page at 200.
	maxActivitiesPerPage = 200

	activitiesTimeout = 10 * time.Second
	streamTimeout     = 15 * time.Second
)

// RawActivity is the upstream activity record as Strava returns it.
// SummaryPolyline is a pointer so an absent key is distinguishable from an
// empty polyline string.
type RawActivity struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Distance       float64 `json:"distance"`
	Type           string  `json:"type"`
	StartDateLocal string  `json:"start_date_local"`
	Map            struct {
		SummaryPolyline *string `json:"summary_polyline"`
	} `json:"map"`
}

type StravaServiceInterface interface {
	ListActivities(ctx context.Context, accessToken string, page, perPage int) ([]RawActivity, error)
	GetActivityStream(ctx context.Context, activityID int64, accessToken string) ([][]float64, error)
}

// StravaService issues authenticated reads against the Strava REST API. The
// access token is an input on every call; token lifecycle is not its concern.
type StravaService struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

func NewStravaService(logger zerolog.Logger) StravaServiceInterface {
	return &StravaService{
		baseURL: stravaAPIURL,
		client:  &http.Client{},
		logger:  logger,
	}
}

func (s *StravaService) ListActivities(ctx context.Context, accessToken string, page, perPage int) ([]RawActivity, error) {
	if perPage > maxActivitiesPerPage {
		perPage = maxActivitiesPerPage
	}

	ctx, cancel := context.WithTimeout(ctx, activitiesTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var activities []RawActivity
	if err := s.getJSON(ctx, "/athlete/activities", q, accessToken, &activities); err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch activities")
		return nil, fmt.Errorf("%w: fetching activities: %v", utils.ErrUpstreamAPI, err)
	}
	return activities, nil
}

// GetActivityStream returns the activity's [lat, lng] stream. An activity
// without GPS data yields an empty stream and a nil error; only transport and
// non-2xx failures are errors.
func (s *StravaService) GetActivityStream(ctx context.Context, activityID int64, accessToken string) ([][]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, streamTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("keys", "latlng")
	q.Set("key_by_type", "true")

	var payload struct {
		Latlng struct {
			Data [][]float64 `json:"data"`
		} `json:"latlng"`
	}
	path := fmt.Sprintf("/activities/%d/streams", activityID)
	if err := s.getJSON(ctx, path, q, accessToken, &payload); err != nil {
		s.logger.Error().Err(err).Int64("activity_id", activityID).Msg("failed to fetch activity stream")
		return nil, fmt.Errorf("%w: fetching stream for activity %d: %v", utils.ErrUpstreamAPI, activityID, err)
	}
	return payload.Latlng.Data, nil
}

func (s *StravaService) getJSON(ctx context.Context, path string, q url.Values, accessToken string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("bad status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// BuildActivitySummaries filters raw records down to those carrying a
// summary_polyline key (an empty polyline still counts as present) and
// reshapes them for the client.
func BuildActivitySummaries(raw []RawActivity) []response_models.Activity {
	summaries := make([]response_models.Activity, 0, len(raw))
	for _, act := range raw {
		if act.Map.SummaryPolyline == nil {
			continue
		}
		summaries = append(summaries, response_models.Activity{
			ID:        act.ID,
			Name:      act.Name,
			Distance:  math.Round(act.Distance*100) / 100,
			Type:      act.Type,
			StartDate: act.StartDateLocal,
		})
	}
	return summaries
}
