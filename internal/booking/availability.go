package booking

import (
	"context"
	"time"
)

// DaySet is a set of YYYY-MM-DD keys.
type DaySet map[string]struct{}

// NewDaySet builds a set from keys.
func NewDaySet(keys ...string) DaySet {
	s := make(DaySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether day is in the set.
func (s DaySet) Has(day time.Time) bool {
	_, ok := s[DayKey(day)]
	return ok
}

// Availability answers which days of a month are booked for a vehicle.
type Availability interface {
	BlockedDays(ctx context.Context, vehicleID string, month time.Time) (DaySet, error)
}

// DemoBookedDays are the days of every month the fixture marks as booked.
var DemoBookedDays = []int{5, 6, 7, 12, 13, 19, 20, 21}

// FixedAvailability blocks the same days of the month for every vehicle.
type FixedAvailability struct {
	Days []int
}

// NewFixedAvailability returns the demo availability.
func NewFixedAvailability() *FixedAvailability {
	return &FixedAvailability{Days: DemoBookedDays}
}

// BlockedDays clamps the configured days to the month length.
func (f *FixedAvailability) BlockedDays(_ context.Context, _ string, month time.Time) (DaySet, error) {
	first := MonthOf(month)
	n := DaysIn(first)
	set := make(DaySet, len(f.Days))
	for _, d := range f.Days {
		if d >= 1 && d <= n {
			set[DayKey(first.AddDate(0, 0, d-1))] = struct{}{}
		}
	}
	return set, nil
}
