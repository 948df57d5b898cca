package progression

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"

	"englishquest/internal/models"
	"englishquest/internal/storage"
)

// Item prices for the coin shop
const (
	PriceStreakFreeze = 50
	PriceXPBoost      = 30
	PriceHints        = 25
)

// Shop item identifiers
const (
	ItemStreakFreeze = "streakFreeze"
	ItemXPBoost      = "xpBoost"
	ItemHints        = "hints"
)

// Store owns the progression state of a single player. All mutations
// are serialized through its mutex and the full state is persisted to
// the snapshot store after every mutating operation.
type Store struct {
	mu        sync.Mutex
	playerID  int64
	state     *models.PlayerState
	snapshots storage.SnapshotStore
	clock     Clock
}

// NewStore loads a player's state from the snapshot store, applies
// streak reconciliation, and returns a ready-to-use store.
func NewStore(ctx context.Context, snapshots storage.SnapshotStore, playerID int64, clock Clock) (*Store, error) {
	state, err := storage.LoadOrDefault(ctx, snapshots, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state for player %d: %w", playerID, err)
	}

	s := &Store{
		playerID:  playerID,
		state:     state,
		snapshots: snapshots,
		clock:     clock,
	}

	if s.reconcileStreakLocked() {
		if err := s.persistLocked(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// State returns a copy of the current player state
func (s *Store) State() models.PlayerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// AddXP grants experience points. An available XP boost is consumed to
// multiply the amount by 1.5 (floored); at most one boost per call.
func (s *Store) AddXP(ctx context.Context, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Inventory.XPBoost > 0 {
		amount = int(math.Floor(float64(amount) * 1.5))
		s.state.Inventory.XPBoost--
	}
	s.state.XP += amount
	s.state.RecalculateLevel()
	return s.persistLocked(ctx)
}

// AddCoins grants coins
func (s *Store) AddCoins(ctx context.Context, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Coins += amount
	return s.persistLocked(ctx)
}

// SpendCoins deducts coins if the balance covers the amount. It
// reports whether the spend happened; an insufficient balance leaves
// the state untouched.
func (s *Store) SpendCoins(ctx context.Context, amount int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Coins < amount {
		return false, nil
	}
	s.state.Coins -= amount
	return true, s.persistLocked(ctx)
}

// LearnWord records a word as learned. Repeated calls for the same
// word are no-ops; achievements are re-evaluated only when the word is
// newly added.
func (s *Store) LearnWord(ctx context.Context, word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.HasLearned(word) {
		return nil
	}
	s.state.WordsLearned = append(s.state.WordsLearned, word)
	s.evaluateAchievementsLocked()
	return s.persistLocked(ctx)
}

// MasterWord records a word as mastered. Idempotent.
func (s *Store) MasterWord(ctx context.Context, word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.HasMastered(word) {
		return nil
	}
	s.state.MasteredWords = append(s.state.MasteredWords, word)
	return s.persistLocked(ctx)
}

// UpdateStreak increments the daily streak if no session has been
// played today yet. Safe to call on every session start; it fires at
// most once per calendar day. The gap rules run again here because a
// store can stay cached across many days: a multi-day absence must
// reset the streak (or consume a freeze) before today counts as day
// one, not extend it.
func (s *Store) UpdateStreak(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.clock.Now().Format(models.DateLayout)
	if s.state.LastPlayedDate == today {
		return nil
	}
	s.reconcileStreakLocked()
	s.state.Streak++
	s.state.LastPlayedDate = today
	if s.state.Streak > s.state.Stats.BestStreak {
		s.state.Stats.BestStreak = s.state.Streak
	}
	s.evaluateAchievementsLocked()
	return s.persistLocked(ctx)
}

// AddCorrectAnswer increments the cumulative correct-answer counter
func (s *Store) AddCorrectAnswer(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Stats.TotalCorrect++
	return s.persistLocked(ctx)
}

// AddIncorrectAnswer increments the cumulative incorrect-answer counter
func (s *Store) AddIncorrectAnswer(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Stats.TotalIncorrect++
	return s.persistLocked(ctx)
}

// IncrementGamesPlayed bumps the completed-session counter
func (s *Store) IncrementGamesPlayed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.GamesPlayed++
	return s.persistLocked(ctx)
}

// AddTimeSpent accumulates play time in seconds
func (s *Store) AddTimeSpent(ctx context.Context, seconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Stats.TimeSpent += seconds
	return s.persistLocked(ctx)
}

// ItemPrice returns the catalog price for a shop item, or false for an
// unknown item id.
func ItemPrice(itemID string) (int, bool) {
	switch itemID {
	case ItemStreakFreeze:
		return PriceStreakFreeze, true
	case ItemXPBoost:
		return PriceXPBoost, true
	case ItemHints:
		return PriceHints, true
	}
	return 0, false
}

// PurchaseItem spends coins and adds the item to the inventory. The
// purchase is all-or-nothing: if the balance is insufficient the
// inventory is untouched and false is returned.
func (s *Store) PurchaseItem(ctx context.Context, itemID string) (bool, error) {
	price, ok := ItemPrice(itemID)
	if !ok {
		return false, fmt.Errorf("unknown item: %s", itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Coins < price {
		return false, nil
	}
	s.state.Coins -= price

	switch itemID {
	case ItemStreakFreeze:
		s.state.Inventory.StreakFreeze++
	case ItemXPBoost:
		s.state.Inventory.XPBoost++
	case ItemHints:
		s.state.Inventory.Hints++
	}
	return true, s.persistLocked(ctx)
}

// UseHint consumes one hint if any remain, reporting whether a hint
// was actually consumed.
func (s *Store) UseHint(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Inventory.Hints <= 0 {
		return false, nil
	}
	s.state.Inventory.Hints--
	return true, s.persistLocked(ctx)
}

// SettingsPatch carries the settings fields a caller wants to change.
// Nil fields are left untouched.
type SettingsPatch struct {
	SoundEnabled *bool              `json:"soundEnabled,omitempty"`
	SpeechRate   *float64           `json:"speechRate,omitempty"`
	Difficulty   *models.Difficulty `json:"difficulty,omitempty"`
}

// UpdateSettings shallow-merges the provided fields into the player's settings
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.SoundEnabled != nil {
		s.state.Settings.SoundEnabled = *patch.SoundEnabled
	}
	if patch.SpeechRate != nil {
		s.state.Settings.SpeechRate = *patch.SpeechRate
	}
	if patch.Difficulty != nil {
		s.state.Settings.Difficulty = *patch.Difficulty
	}
	return s.persistLocked(ctx)
}

// ResetProgress replaces the player's state with a fresh default and
// removes the persisted snapshot.
func (s *Store) ResetProgress(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = models.NewPlayerState()
	if err := s.snapshots.Delete(ctx, s.playerID); err != nil {
		return fmt.Errorf("failed to clear snapshot for player %d: %w", s.playerID, err)
	}
	return nil
}

// UnlockAchievement directly unlocks a catalog achievement and grants
// its XP reward. Used for achievements tied to session-local
// conditions that the threshold evaluator cannot see. Idempotent.
func (s *Store) UnlockAchievement(ctx context.Context, id string) error {
	ach, ok := models.AchievementByID(id)
	if !ok {
		return fmt.Errorf("unknown achievement: %s", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.HasAchievement(id) {
		return nil
	}
	s.state.Achievements = append(s.state.Achievements, id)
	s.state.XP += ach.XPReward
	s.state.RecalculateLevel()
	return s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	if err := s.snapshots.Save(ctx, s.playerID, s.state); err != nil {
		log.Printf("Failed to persist state for player %d: %v", s.playerID, err)
		return err
	}
	return nil
}
