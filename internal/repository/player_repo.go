package repository

import (
	"database/sql"
	"fmt"
	"time"

	"englishquest/internal/database"
	"englishquest/internal/models"
)

// PlayerRepository handles database operations for player accounts
type PlayerRepository struct {
	db database.DBTX
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db database.DBTX) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts a new player account
func (r *PlayerRepository) CreatePlayer(email, passwordHash, name string) (*models.Player, error) {
	query := `
		INSERT INTO players (email, password_hash, name)
		VALUES (?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, email, passwordHash, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	player := &models.Player{
		ID:           id,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	return player, nil
}

// GetPlayerByEmail retrieves a player by email address
func (r *PlayerRepository) GetPlayerByEmail(email string) (*models.Player, error) {
	query := `
		SELECT id, email, name, password_hash, COALESCE(oauth_subject, ''), created_at, updated_at
		FROM players
		WHERE email = ?
	`
	return r.scanPlayer(r.db.QueryRow(query, email))
}

// GetPlayerByID retrieves a player by ID
func (r *PlayerRepository) GetPlayerByID(id int64) (*models.Player, error) {
	query := `
		SELECT id, email, name, password_hash, COALESCE(oauth_subject, ''), created_at, updated_at
		FROM players
		WHERE id = ?
	`
	return r.scanPlayer(r.db.QueryRow(query, id))
}

// GetPlayerByOAuthSubject retrieves a player by their OAuth subject identifier
func (r *PlayerRepository) GetPlayerByOAuthSubject(subject string) (*models.Player, error) {
	query := `
		SELECT id, email, name, password_hash, COALESCE(oauth_subject, ''), created_at, updated_at
		FROM players
		WHERE oauth_subject = ?
	`
	return r.scanPlayer(r.db.QueryRow(query, subject))
}

// LinkOAuthSubject links an existing player to an OAuth identity.
// Fails if the player is already linked to a different subject.
func (r *PlayerRepository) LinkOAuthSubject(playerID int64, subject string) error {
	query := `
		UPDATE players
		SET oauth_subject = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		AND (oauth_subject IS NULL OR oauth_subject = '')
	`
	result, err := r.db.Exec(query, subject, playerID)
	if err != nil {
		return fmt.Errorf("failed to link oauth subject: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read link result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("oauth identity already linked")
	}

	return nil
}

// UpdateName changes a player's display name
func (r *PlayerRepository) UpdateName(playerID int64, name string) error {
	query := `
		UPDATE players
		SET name = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, name, playerID)
	if err != nil {
		return fmt.Errorf("failed to update player name: %w", err)
	}
	return nil
}

// DeletePlayer deletes a player and, via the foreign key cascade, their state
func (r *PlayerRepository) DeletePlayer(id int64) error {
	query := "DELETE FROM players WHERE id = ?"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

// GetAllPlayers retrieves all player accounts, newest first
func (r *PlayerRepository) GetAllPlayers() ([]models.Player, error) {
	query := `
		SELECT id, email, name, password_hash, COALESCE(oauth_subject, ''), created_at, updated_at
		FROM players
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(
			&p.ID,
			&p.Email,
			&p.Name,
			&p.PasswordHash,
			&p.OAuthSubject,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}

	return players, rows.Err()
}

func (r *PlayerRepository) scanPlayer(row *sql.Row) (*models.Player, error) {
	player := &models.Player{}
	err := row.Scan(
		&player.ID,
		&player.Email,
		&player.Name,
		&player.PasswordHash,
		&player.OAuthSubject,
		&player.CreatedAt,
		&player.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}
