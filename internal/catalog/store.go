// Package catalog holds the immutable vehicle fixture and the search page
// query engine built on top of it.
package catalog

import (
	"errors"
	"fmt"

	"github.com/rentx-lk/rentx-api/internal/models"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrInvalidVehicle  = errors.New("invalid vehicle")
)

// FeaturedCount is how many vehicles the home page shows.
const FeaturedCount = 6

// Store is a read-only view over the vehicle fixture.
type Store struct {
	vehicles  []models.Vehicle
	byID      map[string]int
	types     []models.VehicleType
	provinces []string
}

// New validates the records and builds the lookup tables.
func New(vehicles []models.Vehicle) (*Store, error) {
	s := &Store{
		vehicles:  make([]models.Vehicle, len(vehicles)),
		byID:      make(map[string]int, len(vehicles)),
		types:     append([]models.VehicleType(nil), models.VehicleTypes...),
		provinces: append([]string(nil), models.Provinces...),
	}
	for i, v := range vehicles {
		if err := validate(v); err != nil {
			return nil, err
		}
		if _, dup := s.byID[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidVehicle, v.ID)
		}
		v.Images = append([]string(nil), v.Images...)
		s.vehicles[i] = v
		s.byID[v.ID] = i
	}
	return s, nil
}

// MustNew is New for fixtures known to be valid.
func MustNew(vehicles []models.Vehicle) *Store {
	s, err := New(vehicles)
	if err != nil {
		panic(err)
	}
	return s
}

func validate(v models.Vehicle) error {
	switch {
	case v.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidVehicle)
	case v.Seats <= 0:
		return fmt.Errorf("%w: %s has %d seats", ErrInvalidVehicle, v.ID, v.Seats)
	case v.PricePerDay <= 0:
		return fmt.Errorf("%w: %s has price %.2f", ErrInvalidVehicle, v.ID, v.PricePerDay)
	case v.Rating < 0 || v.Rating > 5:
		return fmt.Errorf("%w: %s has rating %.1f", ErrInvalidVehicle, v.ID, v.Rating)
	case v.ReviewCount < 0:
		return fmt.Errorf("%w: %s has negative review count", ErrInvalidVehicle, v.ID)
	case !models.IsValidTransmission(v.Transmission):
		return fmt.Errorf("%w: %s has transmission %q", ErrInvalidVehicle, v.ID, v.Transmission)
	}
	return nil
}

// All returns every vehicle in fixture order. The slice is a copy.
func (s *Store) All() []models.Vehicle {
	out := make([]models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// ByID looks up a vehicle by its identifier.
func (s *Store) ByID(id string) (models.Vehicle, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Vehicle{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, id)
	}
	return s.vehicles[i], nil
}

// IndexOf returns the fixture position of a vehicle, or -1.
func (s *Store) IndexOf(id string) int {
	if i, ok := s.byID[id]; ok {
		return i
	}
	return -1
}

// Featured returns the first n vehicles.
func (s *Store) Featured(n int) []models.Vehicle {
	if n > len(s.vehicles) {
		n = len(s.vehicles)
	}
	if n < 0 {
		n = 0
	}
	out := make([]models.Vehicle, n)
	copy(out, s.vehicles[:n])
	return out
}

func (s *Store) Types() []models.VehicleType {
	return append([]models.VehicleType(nil), s.types...)
}

func (s *Store) Provinces() []string {
	return append([]string(nil), s.provinces...)
}

func (s *Store) Len() int { return len(s.vehicles) }
