// Package booking implements the availability calendar of the vehicle
// detail page: blocked days, two-click range selection and pricing.
package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDay = errors.New("invalid day")

const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// Day truncates t to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthOf returns the first day of t's month.
func MonthOf(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in month's month.
func DaysIn(month time.Time) int {
	return MonthOf(month).AddDate(0, 1, -1).Day()
}

// DayKey formats a day as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD key.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return t, nil
}

// ParseMonth parses a YYYY-MM month.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month %q", ErrInvalidDay, s)
	}
	return t, nil
}

// daysBetween counts whole days from a to b; both must be midnight UTC.
// time.Duration saturates after ~292 years, so this works on Unix seconds.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
