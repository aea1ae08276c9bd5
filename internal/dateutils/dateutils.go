// Package dateutils parses and shifts calendar dates. All values are
// civil.Date: there is no time of day and no time zone, so day arithmetic is
// unaffected by daylight saving.
package dateutils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// DateLayoutISO is the canonical storage and display layout.
const DateLayoutISO = "2006-01-02"

var (
	isoPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	usPattern  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// ParseFlexibleDate accepts "YYYY-MM-DD", "M/D/YYYY" and "MM/DD/YYYY".
// Any other shape, empty input or an impossible date such as 2026-02-30
// returns false.
func ParseFlexibleDate(dateStr string) (civil.Date, bool) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return civil.Date{}, false
	}

	if m := isoPattern.FindStringSubmatch(s); m != nil {
		return buildDate(m[1], m[2], m[3])
	}
	if m := usPattern.FindStringSubmatch(s); m != nil {
		return buildDate(m[3], m[1], m[2])
	}
	return civil.Date{}, false
}

func buildDate(year, month, day string) (civil.Date, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return civil.Date{}, false
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return civil.Date{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return civil.Date{}, false
	}

	date := civil.Date{Year: y, Month: time.Month(m), Day: d}
	if !date.IsValid() {
		return civil.Date{}, false
	}
	return date, true
}

// MustParse parses an ISO date and panics on failure. Intended for tests and
// constants.
func MustParse(dateStr string) civil.Date {
	d, err := civil.ParseDate(dateStr)
	if err != nil {
		panic(err)
	}
	return d
}

// OffsetDate adds deltaDays (negative to subtract) to date, rolling over
// months and years as needed.
func OffsetDate(date civil.Date, deltaDays int) civil.Date {
	return date.AddDays(deltaDays)
}

// Today returns the calendar date of now in now's own location.
func Today(now time.Time) civil.Date {
	return civil.DateOf(now)
}

// ToTime returns midnight UTC on date, the representation used for storage.
func ToTime(date civil.Date) time.Time {
	return date.In(time.UTC)
}

// FromTime returns the calendar date of a stored midnight-UTC value.
func FromTime(t time.Time) civil.Date {
	return civil.DateOf(t.UTC())
}

// ToISODate formats date as YYYY-MM-DD.
func ToISODate(date civil.Date) string {
	return date.String()
}
