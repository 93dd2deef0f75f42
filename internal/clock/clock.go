// Package clock renders a UTC instant shifted by a timezone offset as a
// wall-clock string. No timezone database is consulted; the offset is
// whatever the upstream service or the user's profile supplied.
package clock

import "time"

// FormatOffset returns the local time of day as zero-padded 24-hour "HH:MM"
// for the given instant shifted by offsetSeconds. The shifted instant's UTC
// clock fields are read as the local time.
func FormatOffset(offsetSeconds int, now time.Time) string {
	local := time.Unix(now.Unix()+int64(offsetSeconds), 0).UTC()
	return local.Format("15:04")
}
