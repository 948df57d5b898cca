package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"englishquest/internal/database"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version      string           `json:"version"`
	ExportedAt   time.Time        `json:"exported_at"`
	DatabaseType string           `json:"database_type"`
	Players      []PlayerBackup   `json:"players"`
	Snapshots    []SnapshotBackup `json:"snapshots"`
}

// PlayerBackup represents a player account record for backup
type PlayerBackup struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	OAuthSubject string    `json:"oauth_subject"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SnapshotBackup represents a player progress snapshot for backup.
// StateJSON is carried opaquely so backups survive state format additions.
type SnapshotBackup struct {
	PlayerID  int64           `json:"player_id"`
	StateJSON json.RawMessage `json:"state"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Database export completed: %s", outputPath)
	return nil
}

// ExportToWriter writes a complete backup to the given writer
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup := &BackupData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		DatabaseType: s.db.Dialect.DriverName(),
	}

	if err := s.exportPlayers(backup); err != nil {
		return fmt.Errorf("failed to export players: %w", err)
	}
	if err := s.exportSnapshots(backup); err != nil {
		return fmt.Errorf("failed to export snapshots: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Exported %d players and %d snapshots", len(backup.Players), len(backup.Snapshots))
	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup reader
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	log.Println("Starting database import...")

	var backup BackupData
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Players first, snapshots reference them
	if err := s.importPlayers(backup.Players); err != nil {
		return fmt.Errorf("failed to import players: %w", err)
	}
	if err := s.importSnapshots(backup.Snapshots); err != nil {
		return fmt.Errorf("failed to import snapshots: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportPlayers(backup *BackupData) error {
	query := "SELECT id, email, name, password_hash, COALESCE(oauth_subject, ''), created_at, updated_at FROM players ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p PlayerBackup
		if err := rows.Scan(&p.ID, &p.Email, &p.Name, &p.PasswordHash, &p.OAuthSubject, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}
		backup.Players = append(backup.Players, p)
	}
	return rows.Err()
}

func (s *BackupService) exportSnapshots(backup *BackupData) error {
	query := "SELECT player_id, state_json, updated_at FROM player_states ORDER BY player_id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var snap SnapshotBackup
		var stateJSON string
		if err := rows.Scan(&snap.PlayerID, &stateJSON, &snap.UpdatedAt); err != nil {
			return err
		}
		snap.StateJSON = json.RawMessage(stateJSON)
		backup.Snapshots = append(backup.Snapshots, snap)
	}
	return rows.Err()
}

func (s *BackupService) importPlayers(players []PlayerBackup) error {
	for _, p := range players {
		query := `
			INSERT INTO players (id, email, name, password_hash, oauth_subject, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`
		if _, err := s.db.Exec(query, p.ID, p.Email, p.Name, p.PasswordHash, p.OAuthSubject, p.CreatedAt, p.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import player %d: %w", p.ID, err)
		}
	}
	log.Printf("Imported %d players", len(players))
	return nil
}

func (s *BackupService) importSnapshots(snapshots []SnapshotBackup) error {
	for _, snap := range snapshots {
		query := s.db.Dialect.UpsertSnapshotQuery()
		if _, err := s.db.Exec(query, snap.PlayerID, string(snap.StateJSON)); err != nil {
			return fmt.Errorf("failed to import snapshot for player %d: %w", snap.PlayerID, err)
		}
	}
	log.Printf("Imported %d snapshots", len(snapshots))
	return nil
}
