package localtime

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"timebot/internal/metrics"
	"timebot/internal/providers/googlemaps"
	"timebot/internal/types"
)

// Service resolves place names and coordinates to UTC offsets
type Service interface {
	// Resolve turns a free-text place name into a Location
	Resolve(query string) (*types.Location, error)
	// Offset returns the total UTC offset in seconds at a location for the given instant
	Offset(loc *types.Location, now time.Time) (int, error)
	// DefaultTimes resolves every default-table entry concurrently
	DefaultTimes(now time.Time) []Entry
}

// GeocodeProvider defines the interface for place-name resolution providers
type GeocodeProvider interface {
	Geocode(query string) (*googlemaps.GeocodeAPIResponse, error)
}

// TimezoneProvider defines the interface for coordinate-to-offset providers
type TimezoneProvider interface {
	Lookup(latitude, longitude float64, at time.Time) (*googlemaps.TimezoneAPIResponse, error)
}

// Entry is one settled default-table lookup: either an offset or the error
// that sank it. Entries come back in table-definition order.
type Entry struct {
	Label  string
	Offset int
	Err    error
}

// localTimeService implements the Service interface
type localTimeService struct {
	geocoder GeocodeProvider
	timezone TimezoneProvider
	logger   *slog.Logger
}

// NewService creates a new local-time service backed by the Google Maps web services
func NewService(apiKey string, logger *slog.Logger) Service {
	return &localTimeService{
		geocoder: googlemaps.NewGeocodeClient(apiKey),
		timezone: googlemaps.NewTimezoneClient(apiKey),
		logger:   logger,
	}
}

// NewServiceWithProviders creates a new local-time service with custom providers
// This is useful for testing with mock providers
func NewServiceWithProviders(
	geocoder GeocodeProvider,
	timezone TimezoneProvider,
	logger *slog.Logger,
) Service {
	return &localTimeService{
		geocoder: geocoder,
		timezone: timezone,
		logger:   logger,
	}
}

// Resolve turns a free-text place name into a Location. Default-table labels
// short-circuit to their hardcoded coordinates without a network call.
func (s *localTimeService) Resolve(query string) (*types.Location, error) {
	if coords, ok := lookupDefault(query); ok {
		return &types.Location{
			Query:       query,
			Coordinates: coords,
			Address:     query,
		}, nil
	}

	resp, err := s.geocoder.Geocode(query)
	if err != nil {
		metrics.LookupFailures.WithLabelValues("geocoding").Inc()
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}
	if resp.Status != "OK" {
		metrics.LookupFailures.WithLabelValues("geocoding").Inc()
		return nil, fmt.Errorf("geocoding failed: %s", resp.Status)
	}
	if len(resp.Results) == 0 {
		metrics.LookupFailures.WithLabelValues("geocoding").Inc()
		return nil, errors.New("geocoding returned no results")
	}

	// First result wins
	result := resp.Results[0]
	return &types.Location{
		Query:       query,
		Coordinates: types.NewCoords(result.Geometry.Location.Lat, result.Geometry.Location.Lng),
		Address:     result.FormattedAddress,
	}, nil
}

// Offset returns the total UTC offset (raw plus DST) in seconds at the
// location for the given instant.
func (s *localTimeService) Offset(loc *types.Location, now time.Time) (int, error) {
	resp, err := s.timezone.Lookup(loc.Coordinates.Latitude, loc.Coordinates.Longitude, now)
	if err != nil {
		metrics.LookupFailures.WithLabelValues("timezone").Inc()
		return 0, fmt.Errorf("failed to look up timezone: %w", err)
	}
	if resp.Status != "OK" {
		metrics.LookupFailures.WithLabelValues("timezone").Inc()
		return 0, fmt.Errorf("timezone lookup failed: %s", resp.Status)
	}

	info := types.TimezoneInfo{
		RawOffset: int(resp.RawOffset),
		DstOffset: int(resp.DstOffset),
	}
	return info.TotalOffset(), nil
}

// DefaultTimes runs the resolve+offset pipeline concurrently for every
// default-table entry. Each entry settles independently; one failed lookup
// does not sink the others.
func (s *localTimeService) DefaultTimes(now time.Time) []Entry {
	var wg sync.WaitGroup
	entries := make([]Entry, len(defaultTable))

	wg.Add(len(defaultTable))
	for i, def := range defaultTable {
		go func(i int, def defaultEntry) {
			defer wg.Done()
			entries[i].Label = def.Label

			loc, err := s.Resolve(def.Label)
			if err != nil {
				entries[i].Err = err
				return
			}
			offset, err := s.Offset(loc, now)
			if err != nil {
				entries[i].Err = err
				return
			}
			entries[i].Offset = offset
		}(i, def)
	}

	// Wait for all lookups to settle
	wg.Wait()

	for _, e := range entries {
		if e.Err != nil {
			s.logger.Warn("default-table lookup failed", "label", e.Label, "error", e.Err)
		}
	}
	return entries
}
