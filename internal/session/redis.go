package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olegmenkov/access-finder/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a session store backed by redis, for running several finder
// instances behind one chat front-end. Entries expire after the configured TTL
// so abandoned conversations clean themselves up.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// SaveOrigin stores the origin coordinate for the chat.
func (rs *RedisStore) SaveOrigin(ctx context.Context, chatID int64, origin models.GeoPoint) error {
	value := strconv.FormatFloat(origin.Latitude, 'f', -1, 64) +
		"," + strconv.FormatFloat(origin.Longitude, 'f', -1, 64)

	if err := rs.client.Set(ctx, originKey(chatID), value, rs.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session origin: %w", err)
	}

	return nil
}

// Origin returns the stored origin coordinate, or ErrNoSession if none is stored.
func (rs *RedisStore) Origin(ctx context.Context, chatID int64) (*models.GeoPoint, error) {
	value, err := rs.client.Get(ctx, originKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session origin: %w", err)
	}

	latPart, lonPart, ok := strings.Cut(value, ",")
	if !ok {
		return nil, fmt.Errorf("malformed session origin value: %q", value)
	}

	lat, err := strconv.ParseFloat(latPart, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed session origin latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(lonPart, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed session origin longitude: %w", err)
	}

	return &models.GeoPoint{Latitude: lat, Longitude: lon}, nil
}

// SetState stores the conversation state for the chat.
func (rs *RedisStore) SetState(ctx context.Context, chatID int64, state State) error {
	if err := rs.client.Set(ctx, stateKey(chatID), int(state), rs.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session state: %w", err)
	}

	return nil
}

// State returns the stored conversation state; missing or expired entries read as StateIdle.
func (rs *RedisStore) State(ctx context.Context, chatID int64) (State, error) {
	value, err := rs.client.Get(ctx, stateKey(chatID)).Int()
	if errors.Is(err, redis.Nil) {
		return StateIdle, nil
	}
	if err != nil {
		return StateIdle, fmt.Errorf("failed to read session state: %w", err)
	}

	return State(value), nil
}

func originKey(chatID int64) string {
	return fmt.Sprintf("session:%d:origin", chatID)
}

func stateKey(chatID int64) string {
	return fmt.Sprintf("session:%d:state", chatID)
}
