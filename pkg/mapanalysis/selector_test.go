package mapanalysis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guidepost/pkg/cache"
	"guidepost/pkg/classifier"
	"guidepost/pkg/config"
	"guidepost/pkg/geo"
	"guidepost/pkg/geocode"
	"guidepost/pkg/model"
	"guidepost/pkg/places"
	"guidepost/pkg/request"
)

const degPerMeter = 1.0 / 111320.0

type fakeProvider struct {
	responses map[string]string
}

func (f *fakeProvider) GenerateText(_ context.Context, name, _ string) (string, error) {
	return f.responses[name], nil
}

func (f *fakeProvider) GenerateJSON(_ context.Context, name, _ string, target any) error {
	resp, ok := f.responses[name]
	if !ok {
		return fmt.Errorf("no canned response for %q", name)
	}
	return json.Unmarshal([]byte(resp), target)
}

func (f *fakeProvider) HealthCheck(_ context.Context) error { return nil }

// testBackend serves places text search, nearby search and geocoding from
// one handler, routed by path.
func testBackend(t *testing.T, textJSON, nearbyJSON, geocodeJSON string) (*places.Client, *geocode.Client) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/textsearch/"):
			w.Write([]byte(textJSON))
		case strings.Contains(r.URL.Path, "/nearbysearch/"):
			w.Write([]byte(nearbyJSON))
		default:
			w.Write([]byte(geocodeJSON))
		}
	}))
	t.Cleanup(srv.Close)

	rc := request.New(config.RequestConfig{
		Retries: 1,
		Timeout: config.Duration(5 * time.Second),
		Stagger: config.Duration(time.Millisecond),
	}, cache.NewMemory(time.Minute), nil)

	p := places.New(config.PlacesConfig{Key: "k", BaseURL: srv.URL + "/place"}, rc)
	g := geocode.New(config.GeocodingConfig{Key: "k", BaseURL: srv.URL + "/geocode"}, rc)
	return p, g
}

func testCfg() config.MapAnalysisConfig {
	return config.MapAnalysisConfig{
		Rings:        []config.Distance{500, 1000, 2000},
		TypeFilters:  []string{"tourist_attraction"},
		CandidateCap: 25,
	}
}

func TestAnalyzeSelectsHintedFacility(t *testing.T) {
	estimate := geo.Point{Lat: 35.3606, Lng: 138.7274}

	textJSON := fmt.Sprintf(`{"status":"OK","results":[{
		"place_id":"pid-site","name":"Mount Fuji",
		"geometry":{"location":{"lat":%f,"lng":%f}},
		"types":["natural_feature"],"rating":4.8,"user_ratings_total":90000}]}`,
		estimate.Lat, estimate.Lng)

	nearbyJSON := fmt.Sprintf(`{"status":"OK","results":[
		{"place_id":"pid-shop","name":"Gift Shop",
		 "geometry":{"location":{"lat":%f,"lng":%f}},"types":["store"]},
		{"place_id":"pid-cable","name":"Cable Car Station",
		 "geometry":{"location":{"lat":%f,"lng":%f}},
		 "types":["transit_station"],"rating":4.3,"user_ratings_total":2000}]}`,
		estimate.Lat+100*degPerMeter, estimate.Lng,
		estimate.Lat+300*degPerMeter, estimate.Lng)

	geocodeJSON := `{"status":"ZERO_RESULTS","results":[]}`

	p, g := testBackend(t, textJSON, nearbyJSON, geocodeJSON)
	cls := classifier.New(&fakeProvider{responses: map[string]string{
		"select": `{"index":0,"confidence":0.85,"reasoning":"description mentions the cable car"}`,
	}})

	s := New(testCfg(), p, g, cls)

	a, err := s.Analyze(context.Background(), "Mount Fuji", "ride the cable car up the mountain", estimate)
	require.NoError(t, err)
	assert.Equal(t, StateDone, a.State)
	assert.Equal(t, "places", a.AnchorSource)
	assert.Equal(t, "pid-cable", a.Selected.PlaceID)
	assert.InDelta(t, 0.85, a.Confidence, 1e-9)
	assert.Equal(t, 2, a.Candidates)
}

func TestAnalyzeFallsBackWithoutAI(t *testing.T) {
	estimate := geo.Point{Lat: 35.0, Lng: 135.7}

	nearbyJSON := fmt.Sprintf(`{"status":"OK","results":[
		{"place_id":"pid-a","name":"Temple Main Hall",
		 "geometry":{"location":{"lat":%f,"lng":%f}},
		 "types":["place_of_worship"],"rating":4.6,"user_ratings_total":9000},
		{"place_id":"pid-b","name":"Vending Machine Corner",
		 "geometry":{"location":{"lat":%f,"lng":%f}},"types":["store"]}]}`,
		estimate.Lat+50*degPerMeter, estimate.Lng,
		estimate.Lat+400*degPerMeter, estimate.Lng)

	p, g := testBackend(t,
		`{"status":"ZERO_RESULTS","results":[]}`,
		nearbyJSON,
		`{"status":"ZERO_RESULTS","results":[]}`)
	// No canned "select" response: every AI call errors.
	cls := classifier.New(&fakeProvider{responses: map[string]string{}})

	s := New(testCfg(), p, g, cls)

	a, err := s.Analyze(context.Background(), "Temple Main Hall", "", estimate)
	require.NoError(t, err)
	assert.Equal(t, "estimate", a.AnchorSource)
	assert.Equal(t, "pid-a", a.Selected.PlaceID)
	assert.InDelta(t, fallbackConfidence, a.Confidence, 1e-9)
	assert.Contains(t, a.Reasoning, "top-ranked")
}

func TestAnalyzePrefersPreciseGeocode(t *testing.T) {
	estimate := geo.Point{Lat: 48.858, Lng: 2.294}
	rooftop := geo.Point{Lat: 48.8584, Lng: 2.2945}

	geocodeJSON := fmt.Sprintf(`{"status":"OK","results":[{
		"formatted_address":"Champ de Mars, Paris",
		"geometry":{"location":{"lat":%f,"lng":%f},"location_type":"ROOFTOP"},
		"types":["premise"]}]}`, rooftop.Lat, rooftop.Lng)

	nearbyJSON := fmt.Sprintf(`{"status":"OK","results":[{
		"place_id":"pid-x","name":"Eiffel Tower",
		"geometry":{"location":{"lat":%f,"lng":%f}},
		"types":["tourist_attraction"],"rating":4.7,"user_ratings_total":300000}]}`,
		rooftop.Lat, rooftop.Lng)

	p, g := testBackend(t, `{"status":"ZERO_RESULTS","results":[]}`, nearbyJSON, geocodeJSON)
	cls := classifier.New(&fakeProvider{responses: map[string]string{
		"select": `{"index":0,"confidence":0.95,"reasoning":"exact name match"}`,
	}})

	s := New(testCfg(), p, g, cls)

	a, err := s.Analyze(context.Background(), "Eiffel Tower", "", estimate)
	require.NoError(t, err)
	assert.Equal(t, "geocode", a.AnchorSource)
	assert.InDelta(t, rooftop.Lat, a.Anchor.Lat, 1e-9)
}

func TestAnalyzeNoFacilities(t *testing.T) {
	p, g := testBackend(t,
		`{"status":"ZERO_RESULTS","results":[]}`,
		`{"status":"ZERO_RESULTS","results":[]}`,
		`{"status":"ZERO_RESULTS","results":[]}`)
	cls := classifier.New(&fakeProvider{responses: map[string]string{}})

	s := New(testCfg(), p, g, cls)

	a, err := s.Analyze(context.Background(), "Nowhere", "", geo.Point{Lat: 1, Lng: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, StateFailed, a.State)
}

func TestAnalyzeInvalidEstimate(t *testing.T) {
	s := New(testCfg(), nil, nil, nil)
	_, err := s.Analyze(context.Background(), "x", "", geo.Point{Lat: 100, Lng: 0})
	assert.ErrorIs(t, err, model.ErrInvalidCoordinate)
}

func TestExtractHints(t *testing.T) {
	hints := extractHints("Enter through the North Gate, then take the cable car to the viewpoint.")
	assert.Contains(t, hints, "north gate")
	assert.Contains(t, hints, "cable car")
	assert.Contains(t, hints, "viewpoint")
	assert.Empty(t, extractHints("a plain description"))
}
