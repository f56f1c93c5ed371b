package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"routediscovery/internal/models/response_models"
	"routediscovery/pkg/utils"
)

type fakePOIService struct {
	pois     []response_models.POI
	err      error
	gotRoute [][]float64
}

func (f *fakePOIService) FindPoisForRoute(ctx context.Context, route [][]float64) ([]response_models.POI, error) {
	f.gotRoute = route
	return f.pois, f.err
}

func newPoisEngine(svc *fakePOIService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/pois", NewPOIsController(svc, zerolog.Nop()).FindPois)
	return r
}

func postPois(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pois", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestFindPoisEndpoint(t *testing.T) {
	rating := float32(4.5)
	svc := &fakePOIService{
		pois: []response_models.POI{
			{Name: "Cafe", Type: "Cafe", Coords: []float64{45.05, -122.05}, Rating: &rating},
			{Name: "Park", Type: "Park", Coords: []float64{45.06, -122.06}},
		},
	}
	r := newPoisEngine(svc)

	w := postPois(r, `{"route": [[45.0, -122.0], [45.1, -122.1]]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	// The controller hands the service [lng, lat] pairs.
	if len(svc.gotRoute) != 2 {
		t.Fatalf("service saw %d pairs, want 2", len(svc.gotRoute))
	}
	if svc.gotRoute[0][0] != -122.0 || svc.gotRoute[0][1] != 45.0 {
		t.Errorf("service saw %v, want [lng lat] = [-122 45]", svc.gotRoute[0])
	}

	var got []map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("body = %s, want both resolved POIs", w.Body.String())
	}
	if string(got[0]["rating"]) != "4.5" {
		t.Errorf("rated POI serialized rating %s, want 4.5", got[0]["rating"])
	}
	if _, ok := got[1]["rating"]; ok {
		t.Error("POI without a rating must omit the field entirely")
	}
	if _, ok := got[1]["price_level"]; ok {
		t.Error("POI without pricing must omit the field entirely")
	}
}

func TestFindPoisEndpointBodyValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing route", `{}`},
		{"not json", `route=please`},
		{"too short", `{"route": [[45.0, -122.0]]}`},
		{"malformed pair", `{"route": [[45.0, -122.0], [45.1]]}`},
		{"non-numeric pair", `{"route": [[45.0, -122.0], ["a", "b"]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePOIService{}
			r := newPoisEngine(svc)

			w := postPois(r, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if svc.gotRoute != nil {
				t.Error("service must not be called for invalid input")
			}
		})
	}
}

func TestFindPoisEndpointResolverFailure(t *testing.T) {
	r := newPoisEngine(&fakePOIService{err: utils.ErrPoiResolution})

	w := postPois(r, `{"route": [[45.0, -122.0], [45.1, -122.1]]}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestFindPoisEndpointEmptyResult(t *testing.T) {
	r := newPoisEngine(&fakePOIService{pois: []response_models.POI{}})

	w := postPois(r, `{"route": [[45.0, -122.0], [45.1, -122.1]]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for a valid route with no matches", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %q, want an empty JSON array", body)
	}
}
