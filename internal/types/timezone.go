package types

// TimezoneInfo holds the UTC offsets for a coordinate, both in seconds.
type TimezoneInfo struct {
	RawOffset int
	DstOffset int
}

// TotalOffset returns the combined offset to apply to a UTC instant.
func (t TimezoneInfo) TotalOffset() int {
	return t.RawOffset + t.DstOffset
}
