// Package geo holds the map view data: known city coordinates, marker
// placement and the initial map centre.
package geo

import (
	"sort"
	"strings"

	"github.com/rentx-lk/rentx-api/internal/models"
)

// SuggestionLimit caps location suggestions.
const SuggestionLimit = 8

// Zoom levels used by the map view.
const (
	DefaultZoom  = 8
	UserZoom     = 10
	SearchZoom   = 12
	VehicleZoom  = 14
	markerSpread = 0.008
)

// Center is the default map centre.
var Center = models.Location{Lat: 7.8, Lng: 80.6}

// Bounds is a rough lat/lng box around Sri Lanka.
var Bounds = struct{ LatMin, LatMax, LngMin, LngMax float64 }{5.9, 9.9, 79.5, 82.0}

var cityCoords = map[string]models.Location{
	"Colombo":      {Lat: 6.9271, Lng: 79.8612},
	"Kandy":        {Lat: 7.2906, Lng: 80.6337},
	"Galle":        {Lat: 6.0531, Lng: 80.221},
	"Negombo":      {Lat: 7.2088, Lng: 79.8358},
	"Nuwara Eliya": {Lat: 6.9497, Lng: 80.7891},
	"Mirissa":      {Lat: 5.9495, Lng: 80.4572},
	"Anuradhapura": {Lat: 8.3114, Lng: 80.4037},
	"Jaffna":       {Lat: 9.6615, Lng: 80.0255},
	"Ella":         {Lat: 6.8667, Lng: 81.0462},
	"Trincomalee":  {Lat: 8.5874, Lng: 81.2152},
}

var cityNames = func() []string {
	names := make([]string, 0, len(cityCoords))
	for name := range cityCoords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// Coords returns the coordinates of a known city.
func Coords(city string) (models.Location, bool) {
	loc, ok := cityCoords[city]
	return loc, ok
}

// Cities returns every known city, sorted.
func Cities() []string {
	return append([]string(nil), cityNames...)
}

// CoordsForVehicle places a marker near its city, nudged by index so
// vehicles in the same city don't stack. Unknown cities use Center.
func CoordsForVehicle(city string, index int) models.Location {
	base, ok := cityCoords[city]
	if !ok {
		base = Center
	}
	offset := float64(index) * markerSpread
	return base.Offset(offset*0.5, offset*0.3)
}

// Suggest returns up to SuggestionLimit city names containing query.
func Suggest(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]string, 0, SuggestionLimit)
	for _, name := range cityNames {
		if len(out) == SuggestionLimit {
			break
		}
		if q == "" || strings.Contains(strings.ToLower(name), q) {
			out = append(out, name)
		}
	}
	return out
}

// InBounds reports whether loc lies inside Bounds.
func InBounds(loc models.Location) bool {
	return loc.Lat >= Bounds.LatMin && loc.Lat <= Bounds.LatMax &&
		loc.Lng >= Bounds.LngMin && loc.Lng <= Bounds.LngMax
}

// Status strings shown next to the map title.
const (
	StatusHere        = "You are here"
	StatusUnavailable = "Your location unavailable"
	StatusAbroad      = "Outside Sri Lanka"
)

// View is the initial map position.
type View struct {
	Center models.Location  `json:"center"`
	Zoom   int              `json:"zoom"`
	User   *models.Location `json:"user,omitempty"`
	Status string           `json:"status"`
}

// CenterFor picks the initial view. A user position inside Bounds is flown
// to; anything else keeps the default view.
func CenterFor(user *models.Location) View {
	if user == nil {
		return View{Center: Center, Zoom: DefaultZoom, Status: StatusUnavailable}
	}
	if !InBounds(*user) {
		return View{Center: Center, Zoom: DefaultZoom, User: user, Status: StatusAbroad}
	}
	return View{Center: *user, Zoom: UserZoom, User: user, Status: StatusHere}
}

// Marker pins a vehicle on the map.
type Marker struct {
	Vehicle  models.Vehicle  `json:"vehicle"`
	Position models.Location `json:"position"`
}

// Markers places every vehicle by its fixture index, then keeps those in
// location (all when empty).
func Markers(vehicles []models.Vehicle, location string) []Marker {
	out := make([]Marker, 0, len(vehicles))
	for i, v := range vehicles {
		if location != "" && v.Location != location {
			continue
		}
		out = append(out, Marker{Vehicle: v, Position: CoordsForVehicle(v.Location, i)})
	}
	return out
}
