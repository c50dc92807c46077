package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rentx-lk/rentx-api/internal/booking"
)

// availabilityKeyPrefix namespaces the per-vehicle, per-month blocked sets.
const availabilityKeyPrefix = "availability"

// setReader is the part of the redis client RedisAvailability needs.
type setReader interface {
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

// RedisAvailability reads blocked days from Redis sets keyed by vehicle and
// month, e.g. availability:toyota-prius-2021:2026-10 -> {"2026-10-05", ...}.
type RedisAvailability struct {
	client setReader
}

func NewRedisAvailability(client setReader) *RedisAvailability {
	return &RedisAvailability{client: client}
}

// AvailabilityKey returns the set key for a vehicle and month.
func AvailabilityKey(vehicleID string, month time.Time) string {
	return fmt.Sprintf("%s:%s:%s", availabilityKeyPrefix, vehicleID, booking.MonthOf(month).Format(booking.MonthLayout))
}

// BlockedDays returns the set members that fall inside month. Malformed
// members are skipped.
func (a *RedisAvailability) BlockedDays(ctx context.Context, vehicleID string, month time.Time) (booking.DaySet, error) {
	members, err := a.client.SMembers(ctx, AvailabilityKey(vehicleID, month)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read availability: %w", err)
	}

	first := booking.MonthOf(month)
	set := make(booking.DaySet, len(members))
	for _, m := range members {
		d, err := booking.ParseDay(m)
		if err != nil || !booking.MonthOf(d).Equal(first) {
			continue
		}
		set[booking.DayKey(d)] = struct{}{}
	}
	return set, nil
}

// ConnectRedis opens a client and pings it.
func ConnectRedis(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}
