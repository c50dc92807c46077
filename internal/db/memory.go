package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rentx-lk/rentx-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserCollection is a process-local UserCollection used when no
// MongoDB is configured.
type MemoryUserCollection struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserCollection() *MemoryUserCollection {
	return &MemoryUserCollection{users: make(map[primitive.ObjectID]models.User)}
}

func (c *MemoryUserCollection) InsertUser(_ context.Context, user models.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	user.Email = models.NormalizeEmail(user.Email)
	for _, u := range c.users {
		if u.Email == user.Email {
			return ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt, user.IsActive = now, now, true
	c.users[user.ID] = user
	return nil
}

func (c *MemoryUserCollection) FindUserByID(_ context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.users[oid]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (c *MemoryUserCollection) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	email = models.NormalizeEmail(email)
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (c *MemoryUserCollection) SetPassword(_ context.Context, id, hash string) error {
	return c.update(id, func(u *models.User) { u.PasswordHash = hash })
}

func (c *MemoryUserCollection) UpdateLastLogin(_ context.Context, id string) error {
	now := time.Now().UTC()
	return c.update(id, func(u *models.User) { u.LastLogin = &now })
}

func (c *MemoryUserCollection) update(id string, apply func(*models.User)) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	u, ok := c.users[oid]
	if !ok {
		return ErrNotFound
	}
	apply(&u)
	u.UpdatedAt = time.Now().UTC()
	c.users[oid] = u
	return nil
}

// MemoryReservationCollection keeps reservation requests in memory.
type MemoryReservationCollection struct {
	mu           sync.RWMutex
	reservations []models.Reservation
}

func NewMemoryReservationCollection() *MemoryReservationCollection {
	return &MemoryReservationCollection{}
}

func (c *MemoryReservationCollection) InsertReservation(_ context.Context, r models.Reservation) error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	c.mu.Lock()
	c.reservations = append(c.reservations, r)
	c.mu.Unlock()
	return nil
}

func (c *MemoryReservationCollection) FindReservations(_ context.Context, vehicleID string) ([]models.Reservation, error) {
	c.mu.RLock()
	out := make([]models.Reservation, 0, len(c.reservations))
	for _, r := range c.reservations {
		if vehicleID == "" || r.VehicleID == vehicleID {
			out = append(out, r)
		}
	}
	c.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
