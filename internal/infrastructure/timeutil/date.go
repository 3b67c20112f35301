// Package timeutil covers the two shapes of time the optimizer deals
// with: calendar dates on the wire and an injectable clock.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// rangeSeparator splits an inclusive date range spec such as
// "2026-02-05:2026-02-10".
const rangeSeparator = ":"

// ParseDate parses a YYYY-MM-DD string into a UTC-midnight time.Time.
// Itinerary dates are calendar dates with no time-of-day component, so
// every date in the system is normalized to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// MustParseDate parses a YYYY-MM-DD string or panics.
// For use in tests and package-level fixtures only.
func MustParseDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeDate truncates a time to midnight UTC of its calendar date.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days after t.
func AddDays(t time.Time, n int) time.Time {
	return NormalizeDate(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from one date to another.
// The result is negative when to precedes from. Both arguments are
// normalized to their calendar dates first, so time-of-day never skews
// the count.
func DaysBetween(from, to time.Time) int {
	f := NormalizeDate(from)
	t := NormalizeDate(to)
	return int(t.Sub(f).Hours() / 24)
}

// ExpandDateSpec expands a single date spec into concrete dates.
// A spec is either a plain date ("2026-02-05") or an inclusive range
// ("2026-02-05:2026-02-10"). Range bounds must be ordered.
func ExpandDateSpec(spec string) ([]time.Time, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("empty date spec")
	}

	if !strings.Contains(spec, rangeSeparator) {
		d, err := ParseDate(spec)
		if err != nil {
			return nil, err
		}
		return []time.Time{d}, nil
	}

	parts := strings.SplitN(spec, rangeSeparator, 2)
	start, err := ParseDate(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid range start in %q: %w", spec, err)
	}
	end, err := ParseDate(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid range end in %q: %w", spec, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("range %q ends before it starts", spec)
	}

	dates := make([]time.Time, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = AddDays(d, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}

// ExpandDateSpecs expands a list of date specs, preserving order and
// dropping duplicates.
func ExpandDateSpecs(specs []string) ([]time.Time, error) {
	seen := make(map[time.Time]struct{})
	var dates []time.Time
	for _, spec := range specs {
		expanded, err := ExpandDateSpec(spec)
		if err != nil {
			return nil, err
		}
		for _, d := range expanded {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
	}
	return dates, nil
}
