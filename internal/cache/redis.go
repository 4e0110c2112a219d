package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/skybooking/config"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// AcquireSeatHolds takes a short-lived hold on every requested seat, all or
// nothing. A partial acquisition is rolled back before returning false.
// Holds are best-effort: the database transaction stays authoritative.
func (c *RedisCache) AcquireSeatHolds(ctx context.Context, flightID uuid.UUID, seats []string, ttl time.Duration) (bool, error) {
	var held []string
	for _, seat := range seats {
		ok, err := c.client.SetNX(ctx, seatHoldKey(flightID, seat), "held", ttl).Result()
		if err != nil {
			_ = c.releaseSeats(ctx, flightID, held)
			return false, err
		}
		if !ok {
			_ = c.releaseSeats(ctx, flightID, held)
			return false, nil
		}
		held = append(held, seat)
	}
	return true, nil
}

func (c *RedisCache) ReleaseSeatHolds(ctx context.Context, flightID uuid.UUID, seats []string) error {
	return c.releaseSeats(ctx, flightID, seats)
}

func (c *RedisCache) releaseSeats(ctx context.Context, flightID uuid.UUID, seats []string) error {
	if len(seats) == 0 {
		return nil
	}
	keys := make([]string, 0, len(seats))
	for _, seat := range seats {
		keys = append(keys, seatHoldKey(flightID, seat))
	}
	return c.client.Del(ctx, keys...).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func seatHoldKey(flightID uuid.UUID, seat string) string {
	return fmt.Sprintf("hold:flight:%s:seat:%s", flightID, seat)
}
