// Package dates provides date-only helpers shared by the store slices.
//
// Trading data is keyed by calendar date. To keep equality predicates
// identical across storage engines, every date crossing a repository
// boundary is normalized to midnight UTC.
package dates

import "time"

// Layout is the wire format for dates in the HTTP API and the calendar CSV.
const Layout = "2006-01-02"

// Normalize truncates t to midnight UTC.
func Normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parse parses a YYYY-MM-DD string into a normalized date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Normalize(t), nil
}

// Format renders a normalized date as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
