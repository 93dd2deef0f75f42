package googlemaps

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// API Docs: https://developers.google.com/maps/documentation/geocoding
// Sample request: https://maps.googleapis.com/maps/api/geocode/json?address=Berlin&key=...
const (
	geocodeBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
)

type GeocodeClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewGeocodeClient(apiKey string) *GeocodeClient {
	return &GeocodeClient{
		httpClient: &http.Client{},
		baseURL:    geocodeBaseURL,
		apiKey:     apiKey,
	}
}

// Geocode resolves a free-text place name. A non-"OK" status is returned in
// the response body, not as an error; callers decide what to do with it.
func (c *GeocodeClient) Geocode(query string) (*GeocodeAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("address", query)
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
	var apiResp GeocodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
