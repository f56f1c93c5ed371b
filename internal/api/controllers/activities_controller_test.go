package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"routediscovery/internal/services"
	"routediscovery/pkg/middleware"
	"routediscovery/pkg/utils"
)

type fakeStravaService struct {
	activities []services.RawActivity
	stream     [][]float64
	listErr    error
	streamErr  error

	gotToken      string
	gotActivityID int64
}

func (f *fakeStravaService) ListActivities(ctx context.Context, accessToken string, page, perPage int) ([]services.RawActivity, error) {
	f.gotToken = accessToken
	return f.activities, f.listErr
}

func (f *fakeStravaService) GetActivityStream(ctx context.Context, activityID int64, accessToken string) ([][]float64, error) {
	f.gotActivityID = activityID
	f.gotToken = accessToken
	return f.stream, f.streamErr
}

// newActivitiesEngine wires the controller behind a stand-in for the session
// gate that injects a fixed access token.
func newActivitiesEngine(svc *fakeStravaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextAccessTokenKey, "gate-token")
	})

	ctrl := NewActivitiesController(svc, zerolog.Nop())
	r.GET("/api/activities", ctrl.ListActivities)
	r.GET("/api/activities/:id/stream", ctrl.GetStream)
	r.GET("/api/activities/:id/gpx", ctrl.GetGPX)
	return r
}

func TestListActivitiesEndpoint(t *testing.T) {
	polyline := "abc"
	svc := &fakeStravaService{
		activities: []services.RawActivity{
			{ID: 1, Name: "No GPS", Distance: 100, Type: "Run", StartDateLocal: "2026-08-28T07:00:00Z"},
			{ID: 2, Name: "With GPS", Distance: 5432.187, Type: "Run", StartDateLocal: "2026-08-30T07:00:00Z"},
		},
	}
	svc.activities[1].Map.SummaryPolyline = &polyline
	r := newActivitiesEngine(svc)

	w := do(r, http.MethodGet, "/api/activities", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.gotToken != "gate-token" {
		t.Errorf("service saw token %q, want the gate-resolved token", svc.gotToken)
	}

	var got []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d activities, want 1 (records without polyline are filtered)", len(got))
	}
	if got[0]["distance"] != 5432.19 {
		t.Errorf("distance = %v, want 5432.19", got[0]["distance"])
	}
	if got[0]["start_date"] != "2026-08-30T07:00:00Z" {
		t.Errorf("start_date = %v, want the start_date_local value", got[0]["start_date"])
	}
}

func TestListActivitiesUpstreamFailureEndpoint(t *testing.T) {
	r := newActivitiesEngine(&fakeStravaService{listErr: utils.ErrUpstreamAPI})

	w := do(r, http.MethodGet, "/api/activities", nil)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "upstream") {
		t.Errorf("body %q should not expose upstream detail", w.Body.String())
	}
}

func TestGetStreamEndpoint(t *testing.T) {
	svc := &fakeStravaService{stream: [][]float64{{45.0, -122.0}, {45.1, -122.1}}}
	r := newActivitiesEngine(svc)

	w := do(r, http.MethodGet, "/api/activities/42/stream", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.gotActivityID != 42 {
		t.Errorf("activity id = %d, want 42", svc.gotActivityID)
	}
	var body struct {
		Stream [][]float64 `json:"stream"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(body.Stream) != 2 {
		t.Errorf("stream has %d points, want 2", len(body.Stream))
	}
}

func TestGetStreamEmptyIs404(t *testing.T) {
	r := newActivitiesEngine(&fakeStravaService{stream: nil})

	w := do(r, http.MethodGet, "/api/activities/42/stream", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for an activity without GPS data", w.Code)
	}
}

func TestGetStreamUpstreamFailureIs500(t *testing.T) {
	r := newActivitiesEngine(&fakeStravaService{streamErr: utils.ErrUpstreamAPI})

	w := do(r, http.MethodGet, "/api/activities/42/stream", nil)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 for an upstream failure", w.Code)
	}
}

func TestGetStreamBadID(t *testing.T) {
	r := newActivitiesEngine(&fakeStravaService{})

	w := do(r, http.MethodGet, "/api/activities/not-a-number/stream", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetGPXEndpoint(t *testing.T) {
	svc := &fakeStravaService{stream: [][]float64{{45.0, -122.0}, {45.1, -122.1}}}
	r := newActivitiesEngine(svc)

	w := do(r, http.MethodGet, "/api/activities/123/gpx", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		GPX string `json:"gpx"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !strings.Contains(body.GPX, "<gpx") {
		t.Error("gpx field should contain a GPX document")
	}
	if !strings.Contains(body.GPX, "<name>Activity 123</name>") {
		t.Errorf("gpx should name the activity by id, got: %s", body.GPX)
	}
}

func TestGetGPXEmptyIs404(t *testing.T) {
	r := newActivitiesEngine(&fakeStravaService{stream: nil})

	w := do(r, http.MethodGet, "/api/activities/123/gpx", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
