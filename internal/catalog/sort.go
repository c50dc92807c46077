package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rentx-lk/rentx-api/internal/models"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey selects the result ordering.
type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// DefaultSort is the ordering on page load.
const DefaultSort = SortRating

// SortOption is a labelled sort key for the sort dropdown.
type SortOption struct {
	Label string  `json:"label"`
	Value SortKey `json:"value"`
}

var SortOptions = []SortOption{
	{Label: "Price: Low to High", Value: SortPriceAsc},
	{Label: "Price: High to Low", Value: SortPriceDesc},
	{Label: "Rating", Value: SortRating},
	{Label: "Newest", Value: SortNewest},
}

// ParseSortKey maps a query value to a key; empty means DefaultSort.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return DefaultSort, nil
	case SortPriceAsc, SortPriceDesc, SortRating, SortNewest:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// Sort returns a new slice ordered by key. The input is left untouched.
func Sort(vehicles []models.Vehicle, key SortKey) []models.Vehicle {
	out := append([]models.Vehicle(nil), vehicles...)
	var less func(a, b models.Vehicle) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b models.Vehicle) bool { return a.PricePerDay < b.PricePerDay }
	case SortPriceDesc:
		less = func(a, b models.Vehicle) bool { return a.PricePerDay > b.PricePerDay }
	case SortRating:
		less = func(a, b models.Vehicle) bool { return a.Rating > b.Rating }
	default:
		less = func(a, b models.Vehicle) bool { return a.Year > b.Year }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Query runs the search page pipeline: filter, then sort.
func (s *Store) Query(c Criteria, key SortKey) []models.Vehicle {
	return Sort(Filter(s.vehicles, c), key)
}

// QuickSearch runs the navbar search over the whole fixture.
func (s *Store) QuickSearch(query string) []models.Vehicle {
	return QuickSearch(s.vehicles, query)
}
