package resolver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guidepost/pkg/ambiguity"
	"guidepost/pkg/cache"
	"guidepost/pkg/classifier"
	"guidepost/pkg/config"
	"guidepost/pkg/gazetteer"
	"guidepost/pkg/geo"
	"guidepost/pkg/geocode"
	"guidepost/pkg/mapanalysis"
	"guidepost/pkg/model"
	"guidepost/pkg/places"
	"guidepost/pkg/request"
	"guidepost/pkg/search"
	"guidepost/pkg/validate"
	"guidepost/pkg/waypoint"
)

const degPerMeter = 1.0 / 111320.0

// kinkakuji is the anchor used by the enhancement tests.
var kinkakuji = geo.Point{Lat: 35.0394, Lng: 135.7292}

// newEnhanceResolver wires a resolver against one httptest backend that
// serves all three map endpoints.
func newEnhanceResolver(t *testing.T, handler http.HandlerFunc, provider *fakeProvider) *Resolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rc := request.New(config.RequestConfig{
		Retries: 1,
		Timeout: config.Duration(5 * time.Second),
		Stagger: config.Duration(time.Millisecond),
	}, cache.NewMemory(time.Minute), nil)

	p := places.New(config.PlacesConfig{Key: "k", BaseURL: srv.URL + "/place"}, rc)
	g := geocode.New(config.GeocodingConfig{Key: "k", BaseURL: srv.URL + "/geocode"}, rc)
	cls := classifier.New(provider)
	def := config.DefaultConfig()

	return New(def.Resolver, Deps{
		Gazetteer:   gazetteer.New(def.Resolver.FuzzyThreshold),
		Catalog:     ambiguity.New(def.Resolver.Context),
		Classifier:  cls,
		Aggregator:  search.New(def.Search, p, nil),
		Places:      p,
		Corrector:   validate.New(def.Validator, p, cls),
		Selector:    mapanalysis.New(def.MapAnalysis, p, g, cls),
		Synthesizer: waypoint.New(def.Waypoint),
	})
}

// guideBackend serves a small fixed neighborhood around kinkakuji.
func guideBackend(t *testing.T) http.HandlerFunc {
	t.Helper()
	templeLat := kinkakuji.Lat + 5*degPerMeter
	gardenLat := kinkakuji.Lat + 200*degPerMeter

	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/textsearch/"):
			q := r.URL.Query().Get("query")
			if strings.Contains(strings.ToLower(q), "garden") {
				fmt.Fprintf(w, `{"status":"OK","results":[{
					"place_id":"pid-garden","name":"Temple Garden",
					"geometry":{"location":{"lat":%f,"lng":%f}},
					"types":["park"],"rating":4.4,"user_ratings_total":800}]}`,
					gardenLat, kinkakuji.Lng)
				return
			}
			w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		case strings.Contains(r.URL.Path, "/nearbysearch/"):
			fmt.Fprintf(w, `{"status":"OK","results":[{
				"place_id":"pid-temple","name":"Kinkaku-ji",
				"geometry":{"location":{"lat":%f,"lng":%f}},
				"types":["place_of_worship","tourist_attraction"],
				"rating":4.6,"user_ratings_total":60000,
				"business_status":"OPERATIONAL"}]}`, templeLat, kinkakuji.Lng)
		default:
			w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		}
	}
}

func TestEnhanceCoordinatesValidatesExisting(t *testing.T) {
	p := &fakeProvider{responses: map[string]string{}}
	r := newEnhanceResolver(t, guideBackend(t), p)

	// Matching facility 5m away: accepted as-is without an AI call.
	res, err := r.EnhanceCoordinates(context.Background(), "Kinkaku-ji", "golden pavilion", &kinkakuji)
	require.NoError(t, err)

	assert.Equal(t, model.MethodSelfValidation, res.Method)
	assert.Equal(t, kinkakuji, res.Corrected)
	assert.InDelta(t, 0, res.ImprovementM, 1e-6)
}

func TestEnhanceCoordinatesFromScratch(t *testing.T) {
	p := &fakeProvider{responses: map[string]string{
		"select": `{"index":0,"confidence":0.9,"reasoning":"exact match"}`,
	}}
	r := newEnhanceResolver(t, guideBackend(t), p)

	// No original coordinate: the gazetteer estimate seeds a neighborhood
	// analysis that snaps to the temple facility.
	res, err := r.EnhanceCoordinates(context.Background(), "Kinkaku-ji", "", nil)
	require.NoError(t, err)

	assert.Equal(t, model.MethodMapAnalysis, res.Method)
	assert.Nil(t, res.Original)
	assert.Less(t, geo.Distance(res.Corrected, kinkakuji), 50.0)
}

func TestEnhanceGuideCoordinates(t *testing.T) {
	p := &fakeProvider{responses: map[string]string{
		"select": `{"index":0,"confidence":0.9,"reasoning":"exact match"}`,
	}}
	r := newEnhanceResolver(t, guideBackend(t), p)

	guide := &model.Guide{
		Name:     "Kinkaku-ji Walking Tour",
		Language: "en",
		Chapters: []model.Chapter{
			{Title: "Kinkaku-ji", Description: "the golden pavilion", Coord: &kinkakuji},
			{Title: "Temple Garden", Description: "strolling garden"},
			{Title: "Quiet Corner", Description: "a spot with no map presence"},
		},
	}

	enhanced, report, err := r.EnhanceGuideCoordinates(context.Background(), "Kinkaku-ji", guide)
	require.NoError(t, err)

	// Input untouched.
	assert.Nil(t, guide.Chapters[1].Coord)
	assert.Equal(t, kinkakuji, *guide.Chapters[0].Coord)

	// Every chapter got a coordinate.
	for i, ch := range enhanced.Chapters {
		require.NotNil(t, ch.Coord, "chapter %d", i)
	}

	require.Len(t, report.Results, 3)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, 1, report.OriginalCount)
	assert.Equal(t, "Kinkaku-ji", report.LocationName)

	// Anchor validated in place.
	assert.Equal(t, model.MethodSelfValidation, report.Results[0].Method)

	// Garden found by text search near the anchor.
	assert.Equal(t, model.MethodAPIEnhancement, report.Results[1].Method)
	assert.Less(t, geo.Distance(*enhanced.Chapters[1].Coord, kinkakuji), 300.0)

	// Unfindable chapter got a synthesized waypoint near the anchor.
	assert.Equal(t, model.MethodFallback, report.Results[2].Method)
	d := geo.Distance(*enhanced.Chapters[2].Coord, kinkakuji)
	assert.Greater(t, d, 1.0)
	assert.LessOrEqual(t, d, 51.0)
}

func TestEnhanceGuideEmpty(t *testing.T) {
	r := newTestResolver(&fakeProvider{}, nil)
	_, _, err := r.EnhanceGuideCoordinates(context.Background(), "x", &model.Guide{})
	assert.Error(t, err)
}
