// Package geocode wraps the Google Geocoding web service. Each result carries
// a precision tier so callers can weigh a rooftop fix differently from an
// area centroid.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"guidepost/pkg/config"
	"guidepost/pkg/geo"
	"guidepost/pkg/model"
	"guidepost/pkg/request"
)

// Precision orders the provider's location types from most to least exact.
type Precision int

const (
	PrecisionUnknown Precision = iota
	PrecisionApproximate
	PrecisionGeometricCenter
	PrecisionRangeInterpolated
	PrecisionRooftop
)

// String returns the provider's name for the precision tier.
func (p Precision) String() string {
	switch p {
	case PrecisionRooftop:
		return "ROOFTOP"
	case PrecisionRangeInterpolated:
		return "RANGE_INTERPOLATED"
	case PrecisionGeometricCenter:
		return "GEOMETRIC_CENTER"
	case PrecisionApproximate:
		return "APPROXIMATE"
	}
	return "UNKNOWN"
}

func parsePrecision(s string) Precision {
	switch s {
	case "ROOFTOP":
		return PrecisionRooftop
	case "RANGE_INTERPOLATED":
		return PrecisionRangeInterpolated
	case "GEOMETRIC_CENTER":
		return PrecisionGeometricCenter
	case "APPROXIMATE":
		return PrecisionApproximate
	}
	return PrecisionUnknown
}

// Result is one geocoding hit.
type Result struct {
	FormattedAddress string
	Coord            geo.Point
	Precision        Precision
	Types            []string
}

// Client queries the Geocoding API.
type Client struct {
	http    *request.Client
	key     string
	baseURL string
}

// New creates a geocoding client. With an empty key the client is disabled
// and every call returns model.ErrProviderUnavailable.
func New(cfg config.GeocodingConfig, http *request.Client) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api/geocode"
	}
	return &Client{http: http, key: cfg.Key, baseURL: baseURL}
}

// Available reports whether the client has an API key.
func (c *Client) Available() bool { return c.key != "" }

type apiResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
			LocationType string `json:"location_type"`
		} `json:"geometry"`
		Types []string `json:"types"`
	} `json:"results"`
}

// Geocode resolves an address or place name to coordinates, best precision
// first. An empty result set comes back as a nil slice with no error.
func (c *Client) Geocode(ctx context.Context, address string) ([]Result, error) {
	if !c.Available() {
		return nil, fmt.Errorf("geocode: %w", model.ErrProviderUnavailable)
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.key)

	u := fmt.Sprintf("%s/json?%s", c.baseURL, params.Encode())
	cacheKey := "geocode:" + geo.Normalize(address)

	body, err := c.http.Get(ctx, u, cacheKey)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("geocode response: %w", err)
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, fmt.Errorf("geocode status %s: %s", resp.Status, resp.ErrorMessage)
	}

	out := make([]Result, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, Result{
			FormattedAddress: r.FormattedAddress,
			Coord:            geo.Point{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
			Precision:        parsePrecision(r.Geometry.LocationType),
			Types:            r.Types,
		})
	}

	// Provider order is mostly relevance; precision matters more here.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Precision > out[j-1].Precision; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

// Best returns the single most precise result for an address.
func (c *Client) Best(ctx context.Context, address string) (*Result, error) {
	results, err := c.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("geocode %q: %w", address, model.ErrNotFound)
	}
	return &results[0], nil
}
