package booking

import (
	"fmt"
	"time"
)

// Phase is the state of a two-click range selection.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseStartOnly
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseStartOnly:
		return "start_only"
	case PhaseComplete:
		return "complete"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Selection is a booking draft. In PhaseComplete start <= end always holds.
// The zero value is the empty selection.
type Selection struct {
	phase Phase
	start time.Time
	end   time.Time
}

// Empty returns a selection with no endpoints.
func Empty() Selection { return Selection{} }

// StartOnly returns a selection with a single endpoint.
func StartOnly(day time.Time) Selection {
	return Selection{phase: PhaseStartOnly, start: Day(day)}
}

// Complete returns a normalised two-endpoint selection.
func Complete(a, b time.Time) Selection {
	a, b = Day(a), Day(b)
	if b.Before(a) {
		a, b = b, a
	}
	return Selection{phase: PhaseComplete, start: a, end: b}
}

func (s Selection) Phase() Phase { return s.phase }

// Start returns the first endpoint, if any.
func (s Selection) Start() (time.Time, bool) {
	return s.start, s.phase != PhaseEmpty
}

// End returns the second endpoint, if any.
func (s Selection) End() (time.Time, bool) {
	return s.end, s.phase == PhaseComplete
}

// Click applies a click on day. Blocked days leave the selection unchanged.
// A click on a complete selection starts a new one.
func (s Selection) Click(day time.Time, blocked DaySet) Selection {
	d := Day(day)
	if blocked.Has(d) {
		return s
	}
	switch s.phase {
	case PhaseStartOnly:
		return Complete(s.start, d)
	default:
		return StartOnly(d)
	}
}

// IsEndpoint reports whether day is the start or end.
func (s Selection) IsEndpoint(day time.Time) bool {
	d := Day(day)
	if s.phase == PhaseEmpty {
		return false
	}
	return d.Equal(s.start) || (s.phase == PhaseComplete && d.Equal(s.end))
}

// Contains reports whether day lies inside a complete range.
func (s Selection) Contains(day time.Time) bool {
	if s.phase != PhaseComplete {
		return false
	}
	d := Day(day)
	return !d.Before(s.start) && !d.After(s.end)
}

// SelectionState is the wire form of a Selection.
type SelectionState struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	Phase string `json:"phase"`
}

// State returns the wire form.
func (s Selection) State() SelectionState {
	st := SelectionState{Phase: s.phase.String()}
	if s.phase != PhaseEmpty {
		st.Start = DayKey(s.start)
	}
	if s.phase == PhaseComplete {
		st.End = DayKey(s.end)
	}
	return st
}

// ParseSelection rebuilds a selection from optional start and end keys.
// An end without a start is rejected.
func ParseSelection(start, end string) (Selection, error) {
	switch {
	case start == "" && end == "":
		return Empty(), nil
	case start == "":
		return Selection{}, fmt.Errorf("%w: end %q without start", ErrInvalidDay, end)
	}
	s, err := ParseDay(start)
	if err != nil {
		return Selection{}, err
	}
	if end == "" {
		return StartOnly(s), nil
	}
	e, err := ParseDay(end)
	if err != nil {
		return Selection{}, err
	}
	return Complete(s, e), nil
}
