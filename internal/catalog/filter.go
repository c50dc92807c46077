package catalog

import (
	"strings"

	"github.com/rentx-lk/rentx-api/internal/models"
)

// Search page slider bounds and defaults.
const (
	DefaultMaxPrice = 200
	MinPriceSlider  = 10
	MaxPriceSlider  = 250
	PriceStep       = 5
	DefaultMinSeats = 1
	MaxSeatsSlider  = 14
)

// QuickSearchLimit caps navbar quick search results.
const QuickSearchLimit = 8

// Criteria is the search page filter state. A zero or empty field adds no
// constraint.
type Criteria struct {
	Types          []models.VehicleType `json:"types,omitempty"`
	Province       string               `json:"province,omitempty"`
	MaxPrice       float64              `json:"max_price,omitempty"`
	MinSeats       int                  `json:"min_seats,omitempty"`
	DriverRequired bool                 `json:"driver_required,omitempty"`
	Transmission   models.Transmission  `json:"transmission,omitempty"`
}

// DefaultCriteria is the filter state on page load.
func DefaultCriteria() Criteria {
	return Criteria{MaxPrice: DefaultMaxPrice, MinSeats: DefaultMinSeats}
}

// ToggleType adds t to the selected types, or removes it when already selected.
func (c Criteria) ToggleType(t models.VehicleType) Criteria {
	out := make([]models.VehicleType, 0, len(c.Types)+1)
	found := false
	for _, sel := range c.Types {
		if sel == t {
			found = true
			continue
		}
		out = append(out, sel)
	}
	if !found {
		out = append(out, t)
	}
	c.Types = out
	return c
}

// Matches reports whether v satisfies every active constraint.
func (c Criteria) Matches(v models.Vehicle) bool {
	if len(c.Types) > 0 && !containsType(c.Types, v.Type) {
		return false
	}
	if c.Province != "" && v.Province != c.Province {
		return false
	}
	if c.MaxPrice > 0 && v.PricePerDay > c.MaxPrice {
		return false
	}
	if v.Seats < c.MinSeats {
		return false
	}
	if c.DriverRequired && !v.HasDriverOption {
		return false
	}
	if c.Transmission != "" && v.Transmission != c.Transmission {
		return false
	}
	return true
}

func containsType(types []models.VehicleType, t models.VehicleType) bool {
	for _, sel := range types {
		if sel == t {
			return true
		}
	}
	return false
}

// Filter returns the vehicles matching c in input order.
func Filter(vehicles []models.Vehicle, c Criteria) []models.Vehicle {
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if c.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

// QuickSearch matches query case-insensitively against name, type, location
// and province. An empty query yields nothing.
func QuickSearch(vehicles []models.Vehicle, query string) []models.Vehicle {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Vehicle{}
	}
	out := make([]models.Vehicle, 0, QuickSearchLimit)
	for _, v := range vehicles {
		if len(out) == QuickSearchLimit {
			break
		}
		if strings.Contains(strings.ToLower(v.Name), q) ||
			strings.Contains(strings.ToLower(string(v.Type)), q) ||
			strings.Contains(strings.ToLower(v.Location), q) ||
			strings.Contains(strings.ToLower(v.Province), q) {
			out = append(out, v)
		}
	}
	return out
}

// ByLocation keeps vehicles whose city equals location. Empty keeps all.
func ByLocation(vehicles []models.Vehicle, location string) []models.Vehicle {
	if location == "" {
		return append([]models.Vehicle(nil), vehicles...)
	}
	out := make([]models.Vehicle, 0)
	for _, v := range vehicles {
		if v.Location == location {
			out = append(out, v)
		}
	}
	return out
}
