package storage

import (
	"context"
	"testing"

	"englishquest/internal/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state := models.NewPlayerState()
	state.XP = 250
	state.Coins = 175
	state.WordsLearned = []string{"apple", "banana"}

	if err := store.Save(ctx, 1, state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load(ctx, 1)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.XP != 250 {
		t.Errorf("loaded XP = %d, want 250", loaded.XP)
	}
	if loaded.Level != 3 {
		t.Errorf("loaded Level = %d, want 3 (recalculated from XP)", loaded.Level)
	}
	if loaded.Coins != 175 {
		t.Errorf("loaded Coins = %d, want 175", loaded.Coins)
	}
	if len(loaded.WordsLearned) != 2 {
		t.Errorf("loaded WordsLearned length = %d, want 2", len(loaded.WordsLearned))
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background(), 42)
	if err != ErrSnapshotNotFound {
		t.Errorf("Load() error = %v, want ErrSnapshotNotFound", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, 7, models.NewPlayerState()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Delete(ctx, 7); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Load(ctx, 7); err != ErrSnapshotNotFound {
		t.Errorf("Load() after Delete() error = %v, want ErrSnapshotNotFound", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state, err := LoadOrDefault(ctx, store, 99)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if state.XP != 0 || state.Level != 1 || state.Coins != 100 {
		t.Errorf("default state = xp %d level %d coins %d, want 0/1/100", state.XP, state.Level, state.Coins)
	}
	if state.Inventory.StreakFreeze != 1 || state.Inventory.Hints != 3 {
		t.Errorf("default inventory = %+v, want 1 streak freeze and 3 hints", state.Inventory)
	}

	state.XP = 50
	if err := store.Save(ctx, 99, state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := LoadOrDefault(ctx, store, 99)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if loaded.XP != 50 {
		t.Errorf("loaded XP = %d, want 50", loaded.XP)
	}
}
