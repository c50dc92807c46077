package models

// Location is a point on the map in decimal degrees.
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Valid reports whether the point is a real coordinate.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Offset moves the point by the given deltas.
func (l Location) Offset(dLat, dLng float64) Location {
	return Location{Lat: l.Lat + dLat, Lng: l.Lng + dLng}
}
