package catalog

import (
	"testing"

	"github.com/rentx-lk/rentx-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureIsValid(t *testing.T) {
	s, err := New(Fixture)
	require.NoError(t, err)
	assert.Equal(t, len(Fixture), s.Len())
}

func TestNew_RejectsInvalidVehicles(t *testing.T) {
	good := models.Vehicle{ID: "a", Seats: 4, PricePerDay: 10, Rating: 4, Transmission: models.TransmissionManual}

	tests := []struct {
		name   string
		mutate func(v *models.Vehicle)
	}{
		{"empty id", func(v *models.Vehicle) { v.ID = "" }},
		{"zero seats", func(v *models.Vehicle) { v.Seats = 0 }},
		{"zero price", func(v *models.Vehicle) { v.PricePerDay = 0 }},
		{"rating above five", func(v *models.Vehicle) { v.Rating = 5.1 }},
		{"negative reviews", func(v *models.Vehicle) { v.ReviewCount = -1 }},
		{"unknown transmission", func(v *models.Vehicle) { v.Transmission = "cvt" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := good
			tt.mutate(&v)
			_, err := New([]models.Vehicle{v})
			assert.ErrorIs(t, err, ErrInvalidVehicle)
		})
	}

	t.Run("duplicate id", func(t *testing.T) {
		_, err := New([]models.Vehicle{good, good})
		assert.ErrorIs(t, err, ErrInvalidVehicle)
	})
}

func TestStore_ByID(t *testing.T) {
	s := MustNew(Fixture)

	v, err := s.ByID("toyota-prius-2021")
	require.NoError(t, err)
	assert.Equal(t, "Toyota Prius", v.Name)
	assert.Equal(t, 0, s.IndexOf("toyota-prius-2021"))

	_, err = s.ByID("nope")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
	assert.Equal(t, -1, s.IndexOf("nope"))
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := MustNew(Fixture)

	all := s.All()
	all[0].Name = "changed"

	v, _ := s.ByID(all[0].ID)
	assert.Equal(t, "Toyota Prius", v.Name)

	types := s.Types()
	types[0] = "changed"
	assert.Equal(t, models.TypeSedan, s.Types()[0])
}

func TestStore_Featured(t *testing.T) {
	s := MustNew(Fixture)

	featured := s.Featured(FeaturedCount)
	require.Len(t, featured, FeaturedCount)
	assert.Equal(t, Fixture[0].ID, featured[0].ID)
	assert.Equal(t, Fixture[5].ID, featured[5].ID)

	assert.Len(t, s.Featured(1000), len(Fixture))
	assert.Empty(t, s.Featured(-1))
}

func TestStore_Enumerations(t *testing.T) {
	s := MustNew(nil)
	assert.Contains(t, s.Types(), models.TypeSUV)
	assert.Len(t, s.Provinces(), 9)
	assert.Equal(t, "Western", s.Provinces()[0])
}
