package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReservationStatus tracks a reservation request. Requests are never confirmed.
type ReservationStatus string

const (
	ReservationRequested ReservationStatus = "requested"
)

// Reservation is a recorded "Reserve Now" request for a vehicle.
type Reservation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID  string             `bson:"vehicle_id" json:"vehicle_id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	StartDate  string             `bson:"start_date" json:"start_date"`
	EndDate    string             `bson:"end_date" json:"end_date"`
	Days       int                `bson:"days" json:"days"`
	DailyRate  float64            `bson:"daily_rate" json:"daily_rate"`
	Subtotal   float64            `bson:"subtotal" json:"subtotal"`
	ServiceFee float64            `bson:"service_fee" json:"service_fee"`
	Total      float64            `bson:"total" json:"total"`
	Status     ReservationStatus  `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// ReservationRequest is the body of a reservation request.
// EndDate may be empty for a one-day rental.
type ReservationRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}
