package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"englishquest/internal/models"
)

// RedisStore persists player snapshots as JSON values in Redis.
// Snapshots never expire; the key is derived from the player ID.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a snapshot store backed by Redis
func NewRedisStore(addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

func snapshotKey(playerID int64) string {
	return fmt.Sprintf("player:%d:state", playerID)
}

func (s *RedisStore) Load(ctx context.Context, playerID int64) (*models.PlayerState, error) {
	raw, err := s.client.Get(ctx, snapshotKey(playerID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot for player %d: %w", playerID, err)
	}

	var state models.PlayerState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log.Printf("Corrupt snapshot for player %d, resetting to defaults: %v", playerID, err)
		return models.NewPlayerState(), nil
	}
	state.RecalculateLevel()
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, playerID int64, state *models.PlayerState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for player %d: %w", playerID, err)
	}
	if err := s.client.Set(ctx, snapshotKey(playerID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot for player %d: %w", playerID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, playerID int64) error {
	if err := s.client.Del(ctx, snapshotKey(playerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot for player %d: %w", playerID, err)
	}
	return nil
}

// Close releases the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
