package catalog

import (
	"testing"

	"github.com/rentx-lk/rentx-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort_OrdersByKey(t *testing.T) {
	tests := []struct {
		key     SortKey
		inOrder func(a, b models.Vehicle) bool
	}{
		{SortPriceAsc, func(a, b models.Vehicle) bool { return a.PricePerDay <= b.PricePerDay }},
		{SortPriceDesc, func(a, b models.Vehicle) bool { return a.PricePerDay >= b.PricePerDay }},
		{SortRating, func(a, b models.Vehicle) bool { return a.Rating >= b.Rating }},
		{SortNewest, func(a, b models.Vehicle) bool { return a.Year >= b.Year }},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := Sort(Fixture, tt.key)
			require.Len(t, got, len(Fixture))
			assert.ElementsMatch(t, Fixture, got)
			for i := 1; i < len(got); i++ {
				assert.True(t, tt.inOrder(got[i-1], got[i]), "%s before %s", got[i-1].ID, got[i].ID)
			}
		})
	}
}

func TestSort_LeavesInputAlone(t *testing.T) {
	in := append([]models.Vehicle(nil), Fixture...)
	Sort(in, SortPriceAsc)
	assert.Equal(t, Fixture, in)
}

func TestSort_IsStable(t *testing.T) {
	in := []models.Vehicle{
		{ID: "a", PricePerDay: 10},
		{ID: "b", PricePerDay: 5},
		{ID: "c", PricePerDay: 10},
	}
	got := Sort(in, SortPriceAsc)
	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
}

func ids(vs []models.Vehicle) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortRating, k)

	k, err = ParseSortKey("newest")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, k)

	_, err = ParseSortKey("cheapest")
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}

func TestStore_Query(t *testing.T) {
	s := MustNew(Fixture)
	got := s.Query(Criteria{Types: []models.VehicleType{models.TypeSUV}}, SortPriceAsc)
	require.NotEmpty(t, got)
	assert.Equal(t, "honda-vezel-2021", got[0].ID)
	for _, v := range got {
		assert.Equal(t, models.TypeSUV, v.Type)
	}
}
