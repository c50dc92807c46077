package db

import (
	"context"
	"errors"

	"github.com/rentx-lk/rentx-api/internal/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// UserCollection defines the interface for user database operations
type UserCollection interface {
	InsertUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	SetPassword(ctx context.Context, id, hash string) error
	UpdateLastLogin(ctx context.Context, id string) error
}

// ReservationCollection defines the interface for reservation request storage
type ReservationCollection interface {
	InsertReservation(ctx context.Context, r models.Reservation) error
	FindReservations(ctx context.Context, vehicleID string) ([]models.Reservation, error)
}
