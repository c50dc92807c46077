package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_FloorAtCurrentMonth(t *testing.T) {
	nav := NewNavigator(day("2026-10-19"))
	assert.Equal(t, day("2026-10-01"), nav.Month())
	assert.False(t, nav.CanGoPrev())

	assert.Equal(t, nav, nav.Prev())

	nav = nav.Next().Next()
	assert.Equal(t, day("2026-12-01"), nav.Month())
	assert.True(t, nav.CanGoPrev())

	nav = nav.Prev().Prev().Prev()
	assert.Equal(t, day("2026-10-01"), nav.Month())
}

func TestNavigatorAt_ClampsPastMonths(t *testing.T) {
	today := day("2026-10-19")
	assert.Equal(t, day("2026-10-01"), NavigatorAt(today, day("2025-01-01")).Month())
	assert.Equal(t, day("2027-03-01"), NavigatorAt(today, day("2027-03-09")).Month())
}

func TestBuildMonth(t *testing.T) {
	nav := NavigatorAt(day("2026-10-19"), day("2026-11-01"))
	blocked, _ := NewFixedAvailability().BlockedDays(context.Background(), "", nav.Month())
	sel := Complete(day("2026-11-08"), day("2026-11-11"))

	view := BuildMonth(nav, blocked, sel)

	assert.Equal(t, "2026-11", view.Month)
	assert.Equal(t, "November 2026", view.Title)
	// 1 November 2026 is a Sunday
	assert.Equal(t, 6, view.Offset)
	require.Len(t, view.Cells, 30)
	assert.True(t, view.CanGoPrev)
	assert.Equal(t, "2026-10", view.PrevMonth)
	assert.Equal(t, "2026-12", view.NextMonth)

	assert.True(t, view.Cells[4].Booked)
	assert.True(t, view.Cells[7].Selected)
	assert.True(t, view.Cells[9].InRange)
	assert.False(t, view.Cells[9].Selected)
	assert.True(t, view.Cells[10].Selected)
	assert.False(t, view.Cells[11].InRange)
	assert.Equal(t, "Nov 8, 2026 - Nov 11, 2026", view.Description)
}

func TestBuildMonth_CurrentMonth(t *testing.T) {
	nav := NewNavigator(day("2026-06-10"))
	view := BuildMonth(nav, nil, Empty())
	// 1 June 2026 is a Monday
	assert.Equal(t, 0, view.Offset)
	assert.False(t, view.CanGoPrev)
	assert.Empty(t, view.PrevMonth)
	assert.Equal(t, "empty", view.Selection.Phase)
	assert.Empty(t, view.Description)
}

func TestNavigationKeepsSelection(t *testing.T) {
	sel := StartOnly(day("2026-10-28"))
	nav := NewNavigator(day("2026-10-19")).Next()
	view := BuildMonth(nav, nil, sel)
	assert.Equal(t, "2026-10-28", view.Selection.Start)
	assert.Equal(t, "Oct 28, 2026 (click another date for range)", view.Description)
}
