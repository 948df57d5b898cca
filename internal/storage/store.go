package storage

import (
	"context"
	"errors"

	"englishquest/internal/models"
)

// ErrSnapshotNotFound is returned when no snapshot exists for a player
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists the full progression state of a player as a
// single JSON snapshot. Implementations must treat a missing snapshot
// as ErrSnapshotNotFound so callers can fall back to a fresh state.
type SnapshotStore interface {
	Load(ctx context.Context, playerID int64) (*models.PlayerState, error)
	Save(ctx context.Context, playerID int64, state *models.PlayerState) error
	Delete(ctx context.Context, playerID int64) error
}

// LoadOrDefault loads a player's snapshot, returning a fresh default
// state when none exists yet.
func LoadOrDefault(ctx context.Context, store SnapshotStore, playerID int64) (*models.PlayerState, error) {
	state, err := store.Load(ctx, playerID)
	if errors.Is(err, ErrSnapshotNotFound) {
		return models.NewPlayerState(), nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}
