package models

import "strings"

// VehicleType is one of the catalog categories.
type VehicleType string

const (
	TypeSedan     VehicleType = "Sedan"
	TypeSUV       VehicleType = "SUV"
	TypeVan       VehicleType = "Van"
	TypeHatchback VehicleType = "Hatchback"
	TypeTukTuk    VehicleType = "Tuk-Tuk"
	TypeMotorbike VehicleType = "Motorbike"
	TypeLuxury    VehicleType = "Luxury"
	TypeMinibus   VehicleType = "Minibus"
)

// VehicleTypes lists every category in display order.
var VehicleTypes = []VehicleType{
	TypeSedan, TypeSUV, TypeVan, TypeHatchback,
	TypeTukTuk, TypeMotorbike, TypeLuxury, TypeMinibus,
}

// ParseVehicleType matches s case-insensitively against VehicleTypes.
func ParseVehicleType(s string) (VehicleType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range VehicleTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// Transmission is "automatic" or "manual".
type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

// IsValidTransmission checks if a transmission value is known
func IsValidTransmission(t Transmission) bool {
	return t == TransmissionAutomatic || t == TransmissionManual
}

// Provinces lists the nine provinces of Sri Lanka in display order.
var Provinces = []string{
	"Western",
	"Central",
	"Southern",
	"Northern",
	"Eastern",
	"North Western",
	"North Central",
	"Uva",
	"Sabaragamuwa",
}

// Vehicle represents a rentable vehicle listed in the catalog.
type Vehicle struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Type            VehicleType  `json:"type"`
	Transmission    Transmission `json:"transmission"`
	Fuel            string       `json:"fuel"`
	Seats           int          `json:"seats"`
	Year            int          `json:"year"`
	PricePerDay     float64      `json:"price_per_day"`
	Location        string       `json:"location"`
	Province        string       `json:"province"`
	Rating          float64      `json:"rating"`
	ReviewCount     int          `json:"review_count"`
	HasDriverOption bool         `json:"has_driver_option"`
	Images          []string     `json:"images"`
	Description     string       `json:"description"`
}
