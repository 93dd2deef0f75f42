package types

// Location is a resolved place: the text that was asked for, where it is,
// and a display string for replies. Built per lookup, never stored.
type Location struct {
	Query       string
	Coordinates Coords
	Address     string
}
