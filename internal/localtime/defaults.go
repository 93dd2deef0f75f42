package localtime

import "timebot/internal/types"

// defaultEntry pairs a short label with hardcoded coordinates so the usual
// suspects skip the geocoder entirely.
type defaultEntry struct {
	Label  string
	Coords types.Coords
}

// defaultTable is the fixed fan-out list for the bare "time" command. Order
// here is reply order. Labels double as lookup keys; matching is exact and
// case-sensitive.
var defaultTable = []defaultEntry{
	{Label: "Pacific", Coords: types.NewCoords(47.6062, -122.3321)},
	{Label: "Eastern", Coords: types.NewCoords(40.7143, -74.0060)},
	{Label: "London", Coords: types.NewCoords(51.5072, -0.1275)},
	{Label: "Berlin", Coords: types.NewCoords(52.5167, 13.3833)},
	{Label: "Tokyo", Coords: types.NewCoords(35.6895, 139.6917)},
}

// lookupDefault returns the hardcoded coordinates for a default-table label.
func lookupDefault(query string) (types.Coords, bool) {
	for _, e := range defaultTable {
		if e.Label == query {
			return e.Coords, true
		}
	}
	return types.Coords{}, false
}
