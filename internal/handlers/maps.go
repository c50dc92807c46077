package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rentx-lk/rentx-api/internal/catalog"
	"github.com/rentx-lk/rentx-api/internal/geo"
	"github.com/rentx-lk/rentx-api/internal/httpjson"
	"github.com/rentx-lk/rentx-api/internal/models"
)

// MapHandler serves the map view data.
type MapHandler struct {
	store *catalog.Store
}

func NewMapHandler(store *catalog.Store) *MapHandler {
	return &MapHandler{store: store}
}

type mapVehiclesResponse struct {
	Location string           `json:"location,omitempty"`
	Markers  []geo.Marker     `json:"markers"`
	Vehicles []models.Vehicle `json:"vehicles"`
	Count    int              `json:"count"`
}

// Locations suggests location names for the map search box.
func (h *MapHandler) Locations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	httpjson.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"query":     strings.TrimSpace(q),
		"locations": geo.Suggest(q),
	})
}

// Vehicles returns markers and the side list, filtered by ?location.
func (h *MapHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	location := strings.TrimSpace(r.URL.Query().Get("location"))
	all := h.store.All()
	vehicles := catalog.ByLocation(all, location)

	httpjson.WriteJSON(w, http.StatusOK, mapVehiclesResponse{
		Location: location,
		Markers:  geo.Markers(all, location),
		Vehicles: vehicles,
		Count:    len(vehicles),
	})
}

// Center picks the initial map view from an optional ?lat and ?lng.
func (h *MapHandler) Center(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	latStr, lngStr := q.Get("lat"), q.Get("lng")
	if latStr == "" && lngStr == "" {
		httpjson.WriteJSON(w, http.StatusOK, geo.CenterFor(nil))
		return
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	pos := models.Location{Lat: lat, Lng: lng}
	if errLat != nil || errLng != nil || !pos.Valid() {
		httpjson.WriteError(w, http.StatusBadRequest, httpjson.CodeInvalidQuery, "lat and lng must be valid coordinates")
		return
	}

	httpjson.WriteJSON(w, http.StatusOK, geo.CenterFor(&pos))
}
