package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/rentx-lk/rentx-api/internal/catalog"
	"github.com/rentx-lk/rentx-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleHandler_List(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, "GET", "/api/vehicles?types=SUV&sort=price-asc", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp vehicleListResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Vehicles)
	assert.Equal(t, "honda-vezel-2021", resp.Vehicles[0].ID)
	assert.Equal(t, len(resp.Vehicles), resp.Count)
	assert.Equal(t, catalog.SortPriceAsc, resp.Sort)
	for i, v := range resp.Vehicles {
		assert.Equal(t, models.TypeSUV, v.Type)
		if i > 0 {
			assert.LessOrEqual(t, resp.Vehicles[i-1].PricePerDay, v.PricePerDay)
		}
	}
}

func TestVehicleHandler_ListDefaultsToEverythingByRating(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, "GET", "/api/vehicles", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp vehicleListResponse
	decode(t, w, &resp)
	assert.Equal(t, len(catalog.Fixture), resp.Count)
	assert.Equal(t, catalog.SortRating, resp.Sort)
	for i := 1; i < len(resp.Vehicles); i++ {
		assert.GreaterOrEqual(t, resp.Vehicles[i-1].Rating, resp.Vehicles[i].Rating)
	}
}

func TestVehicleHandler_ListCombinedConstraints(t *testing.T) {
	s := newTestServer(t)

	q := url.Values{}
	q.Add("types", "sedan,suv")
	q.Add("types", "Luxury")
	q.Set("province", "Western")
	q.Set("max_price", "100")
	q.Set("min_seats", "5")
	q.Set("driver", "true")
	q.Set("transmission", "automatic")

	w := s.do(t, "GET", "/api/vehicles?"+q.Encode(), "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp vehicleListResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Vehicles)
	assert.Len(t, resp.Criteria.Types, 3)
	for _, v := range resp.Vehicles {
		assert.Contains(t, []models.VehicleType{models.TypeSedan, models.TypeSUV, models.TypeLuxury}, v.Type)
		assert.Equal(t, "Western", v.Province)
		assert.LessOrEqual(t, v.PricePerDay, 100.0)
		assert.GreaterOrEqual(t, v.Seats, 5)
		assert.True(t, v.HasDriverOption)
		assert.Equal(t, models.TransmissionAutomatic, v.Transmission)
	}
}

func TestVehicleHandler_ListRejectsBadQuery(t *testing.T) {
	s := newTestServer(t)

	tests := map[string]string{
		"types=Truck":       "invalid_query",
		"max_price=cheap":   "invalid_query",
		"max_price=-5":      "invalid_query",
		"min_seats=two":     "invalid_query",
		"driver=maybe":      "invalid_query",
		"transmission=cvt":  "invalid_query",
		"sort=alphabetical": "unknown_sort",
	}
	for query, code := range tests {
		w := s.do(t, "GET", "/api/vehicles?"+query, "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		assert.Equal(t, code, errorCode(t, w), query)
	}
}

func TestVehicleHandler_FeaturedAndDetail(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, "GET", "/api/vehicles/featured", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var featured []models.Vehicle
	decode(t, w, &featured)
	require.Len(t, featured, catalog.FeaturedCount)
	assert.Equal(t, "toyota-prius-2021", featured[0].ID)

	w = s.do(t, "GET", "/api/vehicles/honda-vezel-2021", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var v models.Vehicle
	decode(t, w, &v)
	assert.Equal(t, "Honda Vezel", v.Name)

	w = s.do(t, "GET", "/api/vehicles/flying-carpet", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "vehicle_not_found", errorCode(t, w))
}

func TestVehicleHandler_Search(t *testing.T) {
	s := newTestServer(t)

	var resp struct {
		Query   string           `json:"query"`
		Results []models.Vehicle `json:"results"`
	}

	w := s.do(t, "GET", "/api/search?q=%20GALLE%20", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.Equal(t, "GALLE", resp.Query)
	assert.Len(t, resp.Results, 2)

	w = s.do(t, "GET", "/api/search?q=", "", "")
	decode(t, w, &resp)
	assert.Empty(t, resp.Results)

	w = s.do(t, "GET", "/api/search?q=o", "", "")
	decode(t, w, &resp)
	assert.Len(t, resp.Results, catalog.QuickSearchLimit)
}

func TestVehicleHandler_Catalog(t *testing.T) {
	s := newTestServer(t)

	var types []models.VehicleType
	decode(t, s.do(t, "GET", "/api/catalog/types", "", ""), &types)
	assert.Equal(t, models.VehicleTypes, types)

	var provinces []string
	decode(t, s.do(t, "GET", "/api/catalog/provinces", "", ""), &provinces)
	assert.Equal(t, models.Provinces, provinces)

	var filters filterOptionsResponse
	decode(t, s.do(t, "GET", "/api/catalog/filters", "", ""), &filters)
	assert.Equal(t, float64(catalog.DefaultMaxPrice), filters.Price.Default)
	assert.Equal(t, float64(catalog.MaxSeatsSlider), filters.Seats.Max)
	assert.Equal(t, catalog.DefaultSort, filters.DefaultSort)
	assert.Len(t, filters.SortOptions, 4)
}
