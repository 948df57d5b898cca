package game

import (
	"context"
	"errors"
	"log"

	"englishquest/internal/models"
	"englishquest/internal/progression"
)

// State is the lifecycle phase of a minigame session. Every genre
// moves ready -> playing -> ended; some pass through result (answer
// review), feedback (pronunciation verdict), or listening (awaiting a
// speech capture) in between.
type State string

const (
	StateReady     State = "ready"
	StatePlaying   State = "playing"
	StateResult    State = "result"
	StateListening State = "listening"
	StateFeedback  State = "feedback"
	StateEnded     State = "ended"
)

// Session is the manager-facing contract every minigame implements.
// Close tears down any timers the session owns; it grants no rewards
// and is safe to call multiple times.
type Session interface {
	SessionID() string
	Close()
}

var (
	// ErrSessionNotActive is returned when an operation arrives in a
	// state that does not accept it.
	ErrSessionNotActive = errors.New("session is not active")

	// ErrSpeechUnavailable is returned when the speech capability is
	// not available; the pronunciation game refuses to start rather
	// than partially working.
	ErrSpeechUnavailable = errors.New("speech capture is not available")
)

// maybePerfectGame unlocks the perfect-game achievement after a
// completed session with at least one answer and no mistakes.
func maybePerfectGame(ctx context.Context, store *progression.Store, correct, incorrect int) {
	if correct > 0 && incorrect == 0 {
		if err := store.UnlockAchievement(ctx, models.AchievementPerfectGame); err != nil {
			log.Printf("Failed to unlock perfect game achievement: %v", err)
		}
	}
}

// grantRewards converts a finished session's score into XP and coins
func grantRewards(ctx context.Context, store *progression.Store, xp, coins int) {
	if err := store.AddXP(ctx, xp); err != nil {
		log.Printf("Failed to grant XP reward: %v", err)
	}
	if err := store.AddCoins(ctx, coins); err != nil {
		log.Printf("Failed to grant coin reward: %v", err)
	}
}
