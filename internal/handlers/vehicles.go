package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rentx-lk/rentx-api/internal/catalog"
	"github.com/rentx-lk/rentx-api/internal/httpjson"
	"github.com/rentx-lk/rentx-api/internal/models"
)

// VehicleHandler serves the read-only catalog.
type VehicleHandler struct {
	store *catalog.Store
}

func NewVehicleHandler(store *catalog.Store) *VehicleHandler {
	return &VehicleHandler{store: store}
}

type vehicleListResponse struct {
	Vehicles []models.Vehicle `json:"vehicles"`
	Count    int              `json:"count"`
	Criteria catalog.Criteria `json:"criteria"`
	Sort     catalog.SortKey  `json:"sort"`
}

type rangeInfo struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

type filterOptionsResponse struct {
	Types       []models.VehicleType `json:"types"`
	Provinces   []string             `json:"provinces"`
	Price       rangeInfo            `json:"price"`
	Seats       rangeInfo            `json:"seats"`
	SortOptions []catalog.SortOption `json:"sort_options"`
	DefaultSort catalog.SortKey      `json:"default_sort"`
}

// List filters and sorts the catalog from query parameters.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria, err := parseCriteria(q)
	if err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, httpjson.CodeInvalidQuery, err.Error())
		return
	}

	key, err := catalog.ParseSortKey(q.Get("sort"))
	if err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, httpjson.CodeUnknownSort, err.Error())
		return
	}

	vehicles := h.store.Query(criteria, key)
	httpjson.WriteJSON(w, http.StatusOK, vehicleListResponse{
		Vehicles: vehicles,
		Count:    len(vehicles),
		Criteria: criteria,
		Sort:     key,
	})
}

// parseCriteria reads types (repeated or comma separated), province,
// max_price, min_seats, driver and transmission. Absent parameters add no
// constraint.
func parseCriteria(q url.Values) (catalog.Criteria, error) {
	var c catalog.Criteria

	for _, raw := range q["types"] {
		for _, part := range strings.Split(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			t, ok := models.ParseVehicleType(part)
			if !ok {
				return c, fmt.Errorf("unknown vehicle type %q", part)
			}
			if !slices.Contains(c.Types, t) {
				c.Types = append(c.Types, t)
			}
		}
	}

	c.Province = strings.TrimSpace(q.Get("province"))

	if v := q.Get("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return c, fmt.Errorf("max_price must be a non-negative number")
		}
		c.MaxPrice = price
	}

	if v := q.Get("min_seats"); v != "" {
		seats, err := strconv.Atoi(v)
		if err != nil || seats < 0 {
			return c, fmt.Errorf("min_seats must be a non-negative integer")
		}
		c.MinSeats = seats
	}

	if v := q.Get("driver"); v != "" {
		driver, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("driver must be true or false")
		}
		c.DriverRequired = driver
	}

	if v := q.Get("transmission"); v != "" {
		t := models.Transmission(strings.ToLower(v))
		if !models.IsValidTransmission(t) {
			return c, fmt.Errorf("unknown transmission %q", v)
		}
		c.Transmission = t
	}

	return c, nil
}

// Featured returns the home page selection.
func (h *VehicleHandler) Featured(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteJSON(w, http.StatusOK, h.store.Featured(catalog.FeaturedCount))
}

// Search is the navbar quick search.
func (h *VehicleHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	httpjson.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"query":   strings.TrimSpace(query),
		"results": h.store.QuickSearch(query),
	})
}

// Get returns a single vehicle.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, ok := h.lookup(w, r)
	if !ok {
		return
	}
	httpjson.WriteJSON(w, http.StatusOK, v)
}

// lookup resolves the {id} path variable, writing a 404 when unknown.
func (h *VehicleHandler) lookup(w http.ResponseWriter, r *http.Request) (models.Vehicle, bool) {
	v, err := h.store.ByID(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, catalog.ErrVehicleNotFound) {
			httpjson.WriteError(w, http.StatusNotFound, httpjson.CodeVehicleNotFound, "vehicle not found")
			return models.Vehicle{}, false
		}
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to load vehicle")
		return models.Vehicle{}, false
	}
	return v, true
}

func (h *VehicleHandler) Types(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteJSON(w, http.StatusOK, h.store.Types())
}

func (h *VehicleHandler) Provinces(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteJSON(w, http.StatusOK, h.store.Provinces())
}

// FilterOptions describes the search page controls and their defaults.
func (h *VehicleHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteJSON(w, http.StatusOK, filterOptionsResponse{
		Types:     h.store.Types(),
		Provinces: h.store.Provinces(),
		Price: rangeInfo{
			Min:     catalog.MinPriceSlider,
			Max:     catalog.MaxPriceSlider,
			Step:    catalog.PriceStep,
			Default: catalog.DefaultMaxPrice,
		},
		Seats: rangeInfo{
			Min:     1,
			Max:     catalog.MaxSeatsSlider,
			Step:    1,
			Default: catalog.DefaultMinSeats,
		},
		SortOptions: catalog.SortOptions,
		DefaultSort: catalog.DefaultSort,
	})
}
