package storage

import (
	"context"
	"encoding/json"
	"sync"

	"englishquest/internal/models"
)

// MemoryStore keeps snapshots in process memory. Intended for tests
// and for running the server without any persistence configured.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[int64][]byte
}

// NewMemoryStore creates an empty in-memory snapshot store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[int64][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, playerID int64) (*models.PlayerState, error) {
	s.mu.RLock()
	raw, ok := s.items[playerID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSnapshotNotFound
	}

	var state models.PlayerState
	if err := json.Unmarshal(raw, &state); err != nil {
		return models.NewPlayerState(), nil
	}
	state.RecalculateLevel()
	return &state, nil
}

func (s *MemoryStore) Save(ctx context.Context, playerID int64, state *models.PlayerState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items[playerID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, playerID int64) error {
	s.mu.Lock()
	delete(s.items, playerID)
	s.mu.Unlock()
	return nil
}
