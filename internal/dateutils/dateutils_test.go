package dateutils

import (
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"ISO", "2026-01-05", "2026-01-05", true},
		{"ISO with spaces", "  2026-01-05 ", "2026-01-05", true},
		{"US padded", "01/06/2026", "2026-01-06", true},
		{"US unpadded", "1/6/2026", "2026-01-06", true},
		{"US mixed padding", "12/3/2025", "2025-12-03", true},
		{"Leap day", "2/29/2028", "2028-02-29", true},
		{"Empty", "", "", false},
		{"Whitespace", "   ", "", false},
		{"European dotted", "06.01.2026", "", false},
		{"Two digit year", "1/6/26", "", false},
		{"ISO single digit month", "2026-1-05", "", false},
		{"Timestamp", "2026-01-05T10:00:00Z", "", false},
		{"Impossible day", "2026-02-30", "", false},
		{"Impossible month", "13/01/2026", "", false},
		{"Not a leap year", "2/29/2026", "", false},
		{"Text", "yesterday", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := ParseFlexibleDate(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, ToISODate(d))
			} else {
				assert.Equal(t, civil.Date{}, d)
			}
		})
	}
}

func TestParseFlexibleDate_RoundTripsBothForms(t *testing.T) {
	start := MustParse("2024-01-01")
	for i := 0; i < 800; i += 7 {
		d := OffsetDate(start, i)

		iso, ok := ParseFlexibleDate(ToISODate(d))
		require.True(t, ok)
		assert.Equal(t, d, iso)

		us, ok := ParseFlexibleDate(fmt.Sprintf("%d/%d/%d", int(d.Month), d.Day, d.Year))
		require.True(t, ok)
		assert.Equal(t, d, us)

		padded, ok := ParseFlexibleDate(fmt.Sprintf("%02d/%02d/%04d", int(d.Month), d.Day, d.Year))
		require.True(t, ok)
		assert.Equal(t, d, padded)
	}
}

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		delta    int
		expected string
	}{
		{"Elk lead time", "2026-09-01", -60, "2026-07-03"},
		{"Turkey lead time", "2026-04-15", -30, "2026-03-16"},
		{"Default lead time", "2026-11-01", -45, "2026-09-17"},
		{"Year rollback", "2026-01-10", -45, "2025-11-26"},
		{"Year rollover", "2025-12-20", 15, "2026-01-04"},
		{"Leap year February", "2028-03-01", -1, "2028-02-29"},
		{"Across US DST change", "2026-03-09", -1, "2026-03-08"},
		{"Zero", "2026-05-05", 0, "2026-05-05"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToISODate(OffsetDate(MustParse(tc.date), tc.delta)))
		})
	}
}

func TestOffsetDate_IgnoresLocalTimeZone(t *testing.T) {
	loc, err := time.LoadLocation("America/Denver")
	if err != nil {
		t.Skip("tz database not available")
	}
	// Local midnight on the day clocks spring forward.
	now := time.Date(2026, 3, 8, 0, 30, 0, 0, loc)
	today := Today(now)
	assert.Equal(t, "2026-03-08", ToISODate(today))
	assert.Equal(t, "2026-03-09", ToISODate(OffsetDate(today, 1)))
}

func TestTimeConversions(t *testing.T) {
	d := MustParse("2026-07-03")
	stored := ToTime(d)
	assert.Equal(t, time.UTC, stored.Location())
	assert.Equal(t, 0, stored.Hour())
	assert.Equal(t, d, FromTime(stored))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("07/03/2026") })
}
