package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedAvailability(t *testing.T) {
	a := NewFixedAvailability()

	set, err := a.BlockedDays(context.Background(), "any", day("2026-02-17"))
	require.NoError(t, err)
	assert.Len(t, set, len(DemoBookedDays))
	assert.True(t, set.Has(day("2026-02-05")))
	assert.True(t, set.Has(day("2026-02-21")))
	assert.False(t, set.Has(day("2026-02-22")))
	assert.False(t, set.Has(day("2026-03-05")))
}

func TestFixedAvailability_ClampsToMonthLength(t *testing.T) {
	a := &FixedAvailability{Days: []int{0, 15, 29, 30, 31}}

	feb, _ := a.BlockedDays(context.Background(), "", day("2026-02-01"))
	assert.Equal(t, NewDaySet("2026-02-15"), feb)

	leap, _ := a.BlockedDays(context.Background(), "", day("2028-02-01"))
	assert.Equal(t, NewDaySet("2028-02-15", "2028-02-29"), leap)

	oct, _ := a.BlockedDays(context.Background(), "", day("2026-10-01"))
	assert.Equal(t, NewDaySet("2026-10-15", "2026-10-29", "2026-10-30", "2026-10-31"), oct)
}

func TestDaySet_NilHasNothing(t *testing.T) {
	var s DaySet
	assert.False(t, s.Has(day("2026-10-01")))
}
