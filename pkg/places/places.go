// Package places wraps the Google Places web service for text and nearby
// search. Responses are cached through the request layer; nearby searches use
// geohash-bucketed keys so close anchors share cache entries.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	geohash "github.com/TomiHiltunen/geohash-golang"

	"guidepost/pkg/config"
	"guidepost/pkg/geo"
	"guidepost/pkg/model"
	"guidepost/pkg/request"
)

// Nearby anchors within the same precision-8 geohash cell (~38m) share a
// cache entry.
const nearbyGeohashPrecision = 8

// Place is one result from the Places API.
type Place struct {
	PlaceID          string
	Name             string
	Lat              float64
	Lng              float64
	Types            []string
	Rating           float64
	UserRatingsTotal int
	PhotoCount       int
	BusinessStatus   string
}

// Coord returns the place location as a geo.Point.
func (p *Place) Coord() geo.Point {
	return geo.Point{Lat: p.Lat, Lng: p.Lng}
}

// Client queries the Places API.
type Client struct {
	http     *request.Client
	key      string
	baseURL  string
	language string
}

// New creates a places client. With an empty key the client is disabled and
// every call returns model.ErrProviderUnavailable.
func New(cfg config.PlacesConfig, http *request.Client) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api/place"
	}
	language := cfg.Language
	if language == "" {
		language = "en"
	}
	return &Client{http: http, key: cfg.Key, baseURL: baseURL, language: language}
}

// Available reports whether the client has an API key.
func (c *Client) Available() bool { return c.key != "" }

// apiResponse is the wire shape shared by text and nearby search.
type apiResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Results      []apiResult `json:"results"`
}

type apiResult struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Types            []string `json:"types"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Photos           []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
	BusinessStatus string `json:"business_status"`
}

// TextSearch runs a free-text place query. An empty result set is returned
// as a nil slice with no error.
func (c *Client) TextSearch(ctx context.Context, query string) ([]Place, error) {
	if !c.Available() {
		return nil, fmt.Errorf("places: %w", model.ErrProviderUnavailable)
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("language", c.language)
	params.Set("key", c.key)

	u := fmt.Sprintf("%s/textsearch/json?%s", c.baseURL, params.Encode())
	cacheKey := "places:text:" + geo.Normalize(query) + ":" + c.language

	return c.fetch(ctx, u, cacheKey)
}

// NearbySearch finds places of the given type around a point. typeFilter may
// be empty to search all types.
func (c *Client) NearbySearch(ctx context.Context, center geo.Point, radiusM float64, typeFilter string) ([]Place, error) {
	if !c.Available() {
		return nil, fmt.Errorf("places: %w", model.ErrProviderUnavailable)
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%.6f,%.6f", center.Lat, center.Lng))
	params.Set("radius", fmt.Sprintf("%.0f", radiusM))
	if typeFilter != "" {
		params.Set("type", typeFilter)
	}
	params.Set("language", c.language)
	params.Set("key", c.key)

	u := fmt.Sprintf("%s/nearbysearch/json?%s", c.baseURL, params.Encode())
	cell := geohash.EncodeWithPrecision(center.Lat, center.Lng, nearbyGeohashPrecision)
	cacheKey := fmt.Sprintf("places:nearby:%s:%.0f:%s", cell, radiusM, typeFilter)

	return c.fetch(ctx, u, cacheKey)
}

func (c *Client) fetch(ctx context.Context, u, cacheKey string) ([]Place, error) {
	body, err := c.http.Get(ctx, u, cacheKey)
	if err != nil {
		return nil, fmt.Errorf("places request: %w", err)
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("places response: %w", err)
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, fmt.Errorf("places status %s: %s", resp.Status, resp.ErrorMessage)
	}

	out := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, Place{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			Lat:              r.Geometry.Location.Lat,
			Lng:              r.Geometry.Location.Lng,
			Types:            r.Types,
			Rating:           r.Rating,
			UserRatingsTotal: r.UserRatingsTotal,
			PhotoCount:       len(r.Photos),
			BusinessStatus:   r.BusinessStatus,
		})
	}
	return out, nil
}
