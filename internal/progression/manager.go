package progression

import (
	"context"
	"sync"

	"englishquest/internal/storage"
)

// Manager hands out one Store per player, constructing it lazily on
// first use. Streak reconciliation runs when the store is built and
// again inside UpdateStreak, so a store cached for days still applies
// the gap rules.
type Manager struct {
	mu        sync.Mutex
	snapshots storage.SnapshotStore
	clock     Clock
	stores    map[int64]*Store
}

// NewManager creates a manager over the given snapshot store
func NewManager(snapshots storage.SnapshotStore, clock Clock) *Manager {
	if clock == nil {
		clock = NewRealClock()
	}
	return &Manager{
		snapshots: snapshots,
		clock:     clock,
		stores:    make(map[int64]*Store),
	}
}

// ForPlayer returns the player's store, loading it on first access
func (m *Manager) ForPlayer(ctx context.Context, playerID int64) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[playerID]; ok {
		return store, nil
	}
	store, err := NewStore(ctx, m.snapshots, playerID, m.clock)
	if err != nil {
		return nil, err
	}
	m.stores[playerID] = store
	return store, nil
}
