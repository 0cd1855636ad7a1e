// Package geocode resolves street addresses to coordinates using the U.S.
// Census Bureau geocoder, which needs no API key.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
)

const defaultBaseURL = "https://geocoding.geo.census.gov"

// ErrNotFound indicates the address could not be resolved to a location
var ErrNotFound = errors.New("geocode: address not found")

// Config defines geocoder client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client queries the Census one-line-address geocoder
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Result is a resolved address
type Result struct {
	Lat   float64
	Lng   float64
	State string // two-letter postal code
}

type geocodeResponse struct {
	Result struct {
		AddressMatches []struct {
			Coordinates struct {
				X float64 `json:"x"` // longitude
				Y float64 `json:"y"` // latitude
			} `json:"coordinates"`
			AddressComponents struct {
				State string `json:"state"`
			} `json:"addressComponents"`
		} `json:"addressMatches"`
	} `json:"result"`
}

// NewClient instantiates a Census geocoder client
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Geocode resolves a free-form address. Returns ErrNotFound when the geocoder
// has no match.
func (c *Client) Geocode(ctx context.Context, address string) (Result, error) {
	if address == "" {
		return Result{}, fmt.Errorf("geocode: address is required")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return Result{}, fmt.Errorf("geocode: parse base url: %w", err)
	}
	u.Path = path.Join(u.Path, "geocoder", "locations", "onelineaddress")

	values := url.Values{}
	values.Set("address", address)
	values.Set("benchmark", "Public_AR_Current")
	values.Set("format", "json")
	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{}, fmt.Errorf("geocode: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Result{}, fmt.Errorf("geocode: decode response: %w", err)
	}

	if len(payload.Result.AddressMatches) == 0 {
		return Result{}, ErrNotFound
	}

	match := payload.Result.AddressMatches[0]
	return Result{
		Lat:   match.Coordinates.Y,
		Lng:   match.Coordinates.X,
		State: match.AddressComponents.State,
	}, nil
}
