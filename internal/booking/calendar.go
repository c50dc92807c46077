package booking

import (
	"time"
)

// WeekdayLabels heads the Monday-first calendar grid.
var WeekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Cell is one day of the month grid.
type Cell struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	Booked   bool   `json:"booked"`
	Selected bool   `json:"selected"`
	InRange  bool   `json:"in_range"`
}

// MonthView is a rendered calendar month.
type MonthView struct {
	Month       string         `json:"month"`
	Title       string         `json:"title"`
	Weekdays    []string       `json:"weekdays"`
	Offset      int            `json:"offset"`
	Cells       []Cell         `json:"cells"`
	CanGoPrev   bool           `json:"can_go_prev"`
	PrevMonth   string         `json:"prev_month,omitempty"`
	NextMonth   string         `json:"next_month"`
	Selection   SelectionState `json:"selection"`
	Description string         `json:"description,omitempty"`
}

// Navigator moves the displayed month, never before today's month.
type Navigator struct {
	current time.Time
	floor   time.Time
}

// NewNavigator starts on today's month.
func NewNavigator(today time.Time) Navigator {
	m := MonthOf(today)
	return Navigator{current: m, floor: m}
}

// NavigatorAt starts on month, clamped to the floor.
func NavigatorAt(today, month time.Time) Navigator {
	n := NewNavigator(today)
	if m := MonthOf(month); m.After(n.floor) {
		n.current = m
	}
	return n
}

func (n Navigator) Month() time.Time { return n.current }

// CanGoPrev reports whether an earlier month may be shown.
func (n Navigator) CanGoPrev() bool { return n.current.After(n.floor) }

// Prev moves back one month unless already at the floor.
func (n Navigator) Prev() Navigator {
	if n.CanGoPrev() {
		n.current = n.current.AddDate(0, -1, 0)
	}
	return n
}

// Next always moves forward one month.
func (n Navigator) Next() Navigator {
	n.current = n.current.AddDate(0, 1, 0)
	return n
}

// BuildMonth renders the navigator's month with its blocked days and the
// current selection.
func BuildMonth(nav Navigator, blocked DaySet, sel Selection) MonthView {
	first := nav.Month()
	// ISO weekday: Monday=1 .. Sunday=7
	iso := int(first.Weekday())
	if iso == 0 {
		iso = 7
	}
	n := DaysIn(first)
	view := MonthView{
		Month:     first.Format(MonthLayout),
		Title:     first.Format("January 2006"),
		Weekdays:  WeekdayLabels,
		Offset:    iso - 1,
		Cells:     make([]Cell, 0, n),
		CanGoPrev: nav.CanGoPrev(),
		NextMonth: nav.Next().Month().Format(MonthLayout),
		Selection: sel.State(),
	}
	if view.CanGoPrev {
		view.PrevMonth = nav.Prev().Month().Format(MonthLayout)
	}
	for i := 0; i < n; i++ {
		d := first.AddDate(0, 0, i)
		booked := blocked.Has(d)
		view.Cells = append(view.Cells, Cell{
			Date:     DayKey(d),
			Day:      i + 1,
			Booked:   booked,
			Selected: !booked && sel.IsEndpoint(d),
			InRange:  !booked && sel.Contains(d),
		})
	}
	view.Description = Describe(sel)
	return view
}

// Describe is the one-line summary under the calendar.
func Describe(sel Selection) string {
	start, ok := sel.Start()
	if !ok {
		return ""
	}
	out := start.Format("Jan 2, 2006")
	if end, ok := sel.End(); ok {
		return out + " - " + end.Format("Jan 2, 2006")
	}
	return out + " (click another date for range)"
}
