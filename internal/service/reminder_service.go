package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"englishquest/internal/models"
	"englishquest/internal/repository"
	"englishquest/internal/storage"
)

// ReminderService emails players whose streak will break if they skip
// today. A player qualifies when their streak is positive and their
// last played date was yesterday; each player is reminded at most once
// per calendar day.
type ReminderService struct {
	players   *repository.PlayerRepository
	snapshots storage.SnapshotStore
	email     *EmailService

	mu       sync.Mutex
	reminded map[int64]string // playerID -> date last reminded
}

// NewReminderService creates a streak reminder service
func NewReminderService(players *repository.PlayerRepository, snapshots storage.SnapshotStore, email *EmailService) *ReminderService {
	return &ReminderService{
		players:   players,
		snapshots: snapshots,
		email:     email,
		reminded:  make(map[int64]string),
	}
}

// Run sweeps hourly until ctx is cancelled. Intended to be started as
// a goroutine from main.
func (s *ReminderService) Run(ctx context.Context) {
	if !s.email.IsEnabled() {
		log.Println("Streak reminders disabled (email service not configured)")
		return
	}

	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				log.Printf("Error running streak reminder sweep: %v", err)
			}
		}
	}
}

// Sweep checks every player once and sends reminders to those at risk
func (s *ReminderService) Sweep(ctx context.Context) error {
	players, err := s.players.GetAllPlayers()
	if err != nil {
		return err
	}

	now := time.Now()
	today := now.Format(models.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(models.DateLayout)

	sent := 0
	for _, player := range players {
		if s.alreadyReminded(player.ID, today) {
			continue
		}

		state, err := s.snapshots.Load(ctx, player.ID)
		if err != nil {
			if errors.Is(err, storage.ErrSnapshotNotFound) {
				continue
			}
			log.Printf("Error loading snapshot for player %d during reminder sweep: %v", player.ID, err)
			continue
		}

		if state.Streak == 0 || state.LastPlayedDate != yesterday {
			continue
		}

		if err := s.email.SendStreakReminderEmail(ctx, player.Email, player.Name, state.Streak); err != nil {
			log.Printf("Error sending streak reminder to %s: %v", player.Email, err)
			continue
		}
		s.markReminded(player.ID, today)
		sent++
	}

	if sent > 0 {
		log.Printf("Streak reminder sweep complete: %d reminder(s) sent", sent)
	}
	return nil
}

func (s *ReminderService) alreadyReminded(playerID int64, today string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reminded[playerID] == today
}

func (s *ReminderService) markReminded(playerID int64, today string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop stale entries so the map doesn't grow unbounded
	for id, date := range s.reminded {
		if date != today {
			delete(s.reminded, id)
		}
	}
	s.reminded[playerID] = today
}
