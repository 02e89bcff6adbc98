package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guidepost/pkg/cache"
	"guidepost/pkg/config"
	"guidepost/pkg/geo"
	"guidepost/pkg/model"
	"guidepost/pkg/request"
)

func testRequestClient() *request.Client {
	cfg := config.RequestConfig{
		Retries: 1,
		Timeout: config.Duration(5 * time.Second),
		Stagger: config.Duration(time.Millisecond),
	}
	return request.New(cfg, cache.NewMemory(time.Minute), nil)
}

func TestTextSearch(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Contains(t, r.URL.Path, "/textsearch/json")
		assert.Equal(t, "Seville Cathedral", r.URL.Query().Get("query"))
		w.Write([]byte(`{"status":"OK","results":[{
			"place_id":"pid1","name":"Seville Cathedral",
			"geometry":{"location":{"lat":37.3859,"lng":-5.9933}},
			"types":["church","tourist_attraction"],
			"rating":4.7,"user_ratings_total":98000,
			"photos":[{"photo_reference":"a"},{"photo_reference":"b"}],
			"business_status":"OPERATIONAL"}]}`))
	}))
	defer srv.Close()

	c := New(config.PlacesConfig{Key: "k", BaseURL: srv.URL, Language: "en"}, testRequestClient())

	results, err := c.TextSearch(context.Background(), "Seville Cathedral")
	require.NoError(t, err)
	require.Len(t, results, 1)

	p := results[0]
	assert.Equal(t, "pid1", p.PlaceID)
	assert.InDelta(t, 37.3859, p.Lat, 1e-6)
	assert.Equal(t, 98000, p.UserRatingsTotal)
	assert.Equal(t, 2, p.PhotoCount)
	assert.Equal(t, "OPERATIONAL", p.BusinessStatus)

	// Second identical query is served from cache.
	_, err = c.TextSearch(context.Background(), "Seville Cathedral")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNearbySearchZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/nearbysearch/json")
		assert.Equal(t, "transit_station", r.URL.Query().Get("type"))
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	c := New(config.PlacesConfig{Key: "k", BaseURL: srv.URL}, testRequestClient())

	results, err := c.NearbySearch(context.Background(), geo.Point{Lat: 35.0, Lng: 135.7}, 500, "transit_station")
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"key invalid"}`))
	}))
	defer srv.Close()

	c := New(config.PlacesConfig{Key: "k", BaseURL: srv.URL}, testRequestClient())

	_, err := c.TextSearch(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestUnavailableWithoutKey(t *testing.T) {
	c := New(config.PlacesConfig{}, testRequestClient())
	assert.False(t, c.Available())

	_, err := c.TextSearch(context.Background(), "x")
	assert.ErrorIs(t, err, model.ErrProviderUnavailable)

	_, err = c.NearbySearch(context.Background(), geo.Point{}, 100, "")
	assert.ErrorIs(t, err, model.ErrProviderUnavailable)
}

func TestEmptyQuery(t *testing.T) {
	c := New(config.PlacesConfig{Key: "k"}, testRequestClient())
	results, err := c.TextSearch(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, results)
}
