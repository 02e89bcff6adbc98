package search

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guidepost/pkg/cache"
	"guidepost/pkg/config"
	"guidepost/pkg/model"
	"guidepost/pkg/places"
	"guidepost/pkg/request"
)

func testConfig() config.SearchConfig {
	return config.SearchConfig{
		MaxVariants:   8,
		Stagger:       config.Duration(time.Millisecond),
		BranchTimeout: config.Duration(5 * time.Second),
	}
}

func testPlaces(t *testing.T, handler http.HandlerFunc) *places.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	rc := request.New(config.RequestConfig{
		Retries: 1,
		Timeout: config.Duration(5 * time.Second),
		Stagger: config.Duration(time.Millisecond),
	}, cache.NewMemory(time.Minute), nil)
	return places.New(config.PlacesConfig{Key: "k", BaseURL: srv.URL}, rc)
}

func TestBuildVariants(t *testing.T) {
	a := New(testConfig(), nil, nil)

	t.Run("bare name first", func(t *testing.T) {
		v := a.buildVariants("Kinkaku-ji", "")
		require.NotEmpty(t, v)
		assert.Equal(t, "Kinkaku-ji", v[0])
	})

	t.Run("region hint variants", func(t *testing.T) {
		v := a.buildVariants("Alhambra", "Granada")
		assert.Contains(t, v, "Alhambra Granada")
		assert.Contains(t, v, "Granada Alhambra")
	})

	t.Run("keyword hints", func(t *testing.T) {
		v := a.buildVariants("Fushimi Inari Shrine", "Kyoto")
		assert.Contains(t, v, "Fushimi Inari Shrine shinto shrine")
	})

	t.Run("cjk keyword hints", func(t *testing.T) {
		v := a.buildVariants("金閣寺", "")
		assert.Contains(t, v, "金閣寺 buddhist temple")
	})

	t.Run("cap respected", func(t *testing.T) {
		v := a.buildVariants("Temple Shrine Castle Tower Bridge Museum", "Kyoto Japan")
		assert.LessOrEqual(t, len(v), 8)
	})

	t.Run("no duplicates", func(t *testing.T) {
		v := a.buildVariants("Park", "park")
		seen := map[string]bool{}
		for _, q := range v {
			assert.False(t, seen[q], "duplicate variant %q", q)
			seen[q] = true
		}
	})

	t.Run("empty name", func(t *testing.T) {
		assert.Nil(t, a.buildVariants("  ", "Kyoto"))
	})
}

func TestSearchMergesAndRanks(t *testing.T) {
	var mu sync.Mutex
	queries := []string{}

	p := testPlaces(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("query")
		mu.Lock()
		queries = append(queries, q)
		mu.Unlock()

		// Every variant returns the same strong match plus one weak extra,
		// exercising dedupe across branches.
		resp := map[string]any{
			"status": "OK",
			"results": []map[string]any{
				{
					"place_id": "pid-main", "name": "Fushimi Inari Taisha",
					"geometry": map[string]any{"location": map[string]float64{"lat": 34.9671, "lng": 135.7727}},
					"types":    []string{"tourist_attraction"},
					"rating":   4.7, "user_ratings_total": 80000,
					"business_status": "OPERATIONAL",
				},
				{
					"place_id": "pid-cafe", "name": "Inari Cafe",
					"geometry": map[string]any{"location": map[string]float64{"lat": 34.9660, "lng": 135.7730}},
					"types":    []string{"cafe"},
					"rating":   4.0, "user_ratings_total": 50,
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	})

	a := New(testConfig(), p, nil)

	hits, err := a.Search(context.Background(), "Fushimi Inari Taisha", "Kyoto")
	require.NoError(t, err)
	require.Len(t, hits, 2)

	assert.Equal(t, "pid-main", hits[0].Place.PlaceID)
	assert.InDelta(t, 1.0, hits[0].Confidence, 1e-9)
	assert.Greater(t, hits[0].Popularity, hits[1].Popularity)

	mu.Lock()
	launched := len(queries)
	mu.Unlock()
	assert.GreaterOrEqual(t, launched, 2)
	assert.LessOrEqual(t, launched, 8)
}

func TestSearchNotFound(t *testing.T) {
	p := testPlaces(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	})

	a := New(testConfig(), p, nil)

	_, err := a.Search(context.Background(), "Atlantis", "")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSearchUnavailable(t *testing.T) {
	a := New(testConfig(), nil, nil)
	_, err := a.Search(context.Background(), "anything", "")
	assert.ErrorIs(t, err, model.ErrProviderUnavailable)
}

func TestSearchPartialFailure(t *testing.T) {
	var logBuf bytes.Buffer
	saved := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, nil)))
	defer slog.SetDefault(saved)

	var calls sync.Map
	p := testPlaces(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("query")
		if _, loaded := calls.LoadOrStore(q, true); !loaded && q != "Alhambra" {
			// Non-bare variants fail; the bare query still succeeds.
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"status":"OK","results":[{
			"place_id":"pid-alhambra","name":"Alhambra",
			"geometry":{"location":{"lat":37.176,"lng":-3.5881}},
			"types":["tourist_attraction"],"rating":4.8,"user_ratings_total":150000,
			"business_status":"OPERATIONAL"}]}`))
	})

	a := New(testConfig(), p, nil)

	hits, err := a.Search(context.Background(), "Alhambra", "Granada")
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "pid-alhambra", hits[0].Place.PlaceID)
	assert.Contains(t, logBuf.String(), "search variant failed",
		"failed branches should be logged")
}
