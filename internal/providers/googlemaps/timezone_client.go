package googlemaps

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://developers.google.com/maps/documentation/timezone
// Sample request: https://maps.googleapis.com/maps/api/timezone/json?location=52.5,13.3&timestamp=1704110400&key=...
const (
	timezoneBaseURL = "https://maps.googleapis.com/maps/api/timezone/json"
)

type TimezoneClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewTimezoneClient(apiKey string) *TimezoneClient {
	return &TimezoneClient{
		httpClient: &http.Client{},
		baseURL:    timezoneBaseURL,
		apiKey:     apiKey,
	}
}

// Lookup resolves the UTC offsets in effect at the given coordinates for the
// given instant. The timestamp matters: the DST offset depends on it.
func (c *TimezoneClient) Lookup(latitude, longitude float64, at time.Time) (*TimezoneAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("location", fmt.Sprintf("%f,%f", latitude, longitude))
	q.Set("timestamp", fmt.Sprintf("%d", at.Unix()))
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	// Make the HTTP request
	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp TimezoneAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
