package googlemaps

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocodeClient(server *httptest.Server) *GeocodeClient {
	return &GeocodeClient{
		httpClient: server.Client(),
		baseURL:    server.URL,
		apiKey:     "test-key",
	}
}

func TestGeocodeClientDecodesResponse(t *testing.T) {
	var gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("address")
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"formatted_address": "Berlin, Germany",
					"geometry": {"location": {"lat": 52.52, "lng": 13.405}}
				}
			]
		}`))
	}))
	defer server.Close()

	resp, err := newTestGeocodeClient(server).Geocode("Berlin")
	require.NoError(t, err)

	assert.Equal(t, "Berlin", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "OK", resp.Status)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Berlin, Germany", resp.Results[0].FormattedAddress)
	assert.Equal(t, 52.52, resp.Results[0].Geometry.Location.Lat)
	assert.Equal(t, 13.405, resp.Results[0].Geometry.Location.Lng)
}

func TestGeocodeClientPassesThroughAPIStatus(t *testing.T) {
	// A non-OK API status is data, not a transport error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	resp, err := newTestGeocodeClient(server).Geocode("xyzzy")
	require.NoError(t, err)
	assert.Equal(t, "ZERO_RESULTS", resp.Status)
	assert.Empty(t, resp.Results)
}

func TestGeocodeClientHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestGeocodeClient(server).Geocode("Berlin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGeocodeClientBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestGeocodeClient(server).Geocode("Berlin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}
