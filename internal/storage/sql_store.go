package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"englishquest/internal/database"
	"englishquest/internal/models"
)

// SQLStore persists player snapshots in the player_states table
type SQLStore struct {
	db database.DBTX
}

// NewSQLStore creates a snapshot store backed by the relational database
func NewSQLStore(db database.DBTX) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Load(ctx context.Context, playerID int64) (*models.PlayerState, error) {
	var raw string
	query := "SELECT state_json FROM player_states WHERE player_id = ?"
	err := s.db.QueryRow(query, playerID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot for player %d: %w", playerID, err)
	}

	var state models.PlayerState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// A corrupt snapshot must not lock the player out of the game
		log.Printf("Corrupt snapshot for player %d, resetting to defaults: %v", playerID, err)
		return models.NewPlayerState(), nil
	}
	state.RecalculateLevel()
	return &state, nil
}

func (s *SQLStore) Save(ctx context.Context, playerID int64, state *models.PlayerState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for player %d: %w", playerID, err)
	}

	query := s.db.GetDialect().UpsertSnapshotQuery()
	if _, err := s.db.Exec(query, playerID, string(raw)); err != nil {
		return fmt.Errorf("failed to save snapshot for player %d: %w", playerID, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, playerID int64) error {
	query := "DELETE FROM player_states WHERE player_id = ?"
	if _, err := s.db.Exec(query, playerID); err != nil {
		return fmt.Errorf("failed to delete snapshot for player %d: %w", playerID, err)
	}
	return nil
}
