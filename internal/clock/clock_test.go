package clock

import (
	"regexp"
	"testing"
	"time"
)

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		now      time.Time
		expected string
	}{
		{
			name:     "zero offset at midnight",
			offset:   0,
			now:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "00:00",
		},
		{
			name:     "berlin winter offset",
			offset:   3600,
			now:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: "13:00",
		},
		{
			name:     "negative offset wraps to previous day",
			offset:   -28800,
			now:      time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC),
			expected: "19:00",
		},
		{
			name:     "positive offset wraps past midnight",
			offset:   36000,
			now:      time.Date(2024, 1, 1, 20, 30, 0, 0, time.UTC),
			expected: "06:30",
		},
		{
			name:     "half hour offset",
			offset:   19800,
			now:      time.Date(2024, 6, 15, 9, 4, 0, 0, time.UTC),
			expected: "14:34",
		},
		{
			name:     "single digit hour and minute are padded",
			offset:   0,
			now:      time.Date(2024, 3, 3, 7, 5, 0, 0, time.UTC),
			expected: "07:05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatOffset(tt.offset, tt.now)
			if result != tt.expected {
				t.Errorf("FormatOffset(%d, %v) = %q, want %q", tt.offset, tt.now, result, tt.expected)
			}
		})
	}
}

func TestFormatOffsetZeroMatchesUTC(t *testing.T) {
	now := time.Now()
	result := FormatOffset(0, now)
	expected := now.UTC().Format("15:04")
	if result != expected {
		t.Errorf("FormatOffset(0, now) = %q, want UTC clock time %q", result, expected)
	}
}

func TestFormatOffsetPeriodicOverDay(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	offsets := []int{0, 3600, -3600, 19800, -43200, 50400}

	for _, offset := range offsets {
		base := FormatOffset(offset, now)
		shifted := FormatOffset(offset+86400, now)
		if base != shifted {
			t.Errorf("FormatOffset(%d) = %q but FormatOffset(%d) = %q, want equal", offset, base, offset+86400, shifted)
		}
		shiftedNow := FormatOffset(offset, now.Add(-86400*time.Second))
		if base != shiftedNow {
			t.Errorf("shifting the instant by a day changed %q to %q for offset %d", base, shiftedNow, offset)
		}
	}
}

func TestFormatOffsetAlwaysWellFormed(t *testing.T) {
	wellFormed := regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	now := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)

	for offset := -50400; offset <= 50400; offset += 900 {
		result := FormatOffset(offset, now)
		if !wellFormed.MatchString(result) {
			t.Errorf("FormatOffset(%d) = %q, not a zero-padded HH:MM", offset, result)
		}
	}
}
