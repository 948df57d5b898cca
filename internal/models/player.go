package models

import (
	"slices"
	"time"
)

// XPPerLevel is the amount of XP needed to advance one level.
const XPPerLevel = 100

// DateLayout is the calendar-date format used for streak bookkeeping.
// Streaks compare whole days, never timestamps.
const DateLayout = "2006-01-02"

// Difficulty is a player-selectable content difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Level converts the difficulty to the numeric level used by content tables.
func (d Difficulty) Level() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Settings holds per-player preferences.
type Settings struct {
	SoundEnabled bool       `json:"soundEnabled"`
	SpeechRate   float64    `json:"speechRate"`
	Difficulty   Difficulty `json:"difficulty"`
}

// Inventory tracks consumable item counts. Counts never go negative.
type Inventory struct {
	StreakFreeze int `json:"streakFreeze"`
	XPBoost      int `json:"xpBoost"`
	Hints        int `json:"hints"`
}

// Stats holds lifetime answer counters for a player.
type Stats struct {
	TotalCorrect   int `json:"totalCorrect"`
	TotalIncorrect int `json:"totalIncorrect"`
	BestStreak     int `json:"bestStreak"`
	TimeSpent      int `json:"timeSpent"`
}

// PlayerState is the full progression aggregate for one player. It is
// serialized as a single snapshot and rewritten after every mutation.
// Level is derived from XP and must never drift from it.
type PlayerState struct {
	XP             int       `json:"xp"`
	Level          int       `json:"level"`
	Coins          int       `json:"coins"`
	Streak         int       `json:"streak"`
	LastPlayedDate string    `json:"lastPlayedDate,omitempty"`
	GamesPlayed    int       `json:"gamesPlayed"`
	WordsLearned   []string  `json:"wordsLearned"`
	MasteredWords  []string  `json:"masteredWords"`
	Achievements   []string  `json:"achievements"`
	Settings       Settings  `json:"settings"`
	Inventory      Inventory `json:"inventory"`
	Stats          Stats     `json:"stats"`
}

// NewPlayerState returns the initial state for a fresh player.
func NewPlayerState() *PlayerState {
	return &PlayerState{
		XP:            0,
		Level:         1,
		Coins:         100,
		Streak:        0,
		GamesPlayed:   0,
		WordsLearned:  []string{},
		MasteredWords: []string{},
		Achievements:  []string{},
		Settings: Settings{
			SoundEnabled: true,
			SpeechRate:   1.0,
			Difficulty:   DifficultyMedium,
		},
		Inventory: Inventory{
			StreakFreeze: 1,
			XPBoost:      0,
			Hints:        3,
		},
	}
}

// LevelForXP derives the level for an XP total.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// RecalculateLevel rederives the level from the current XP.
func (s *PlayerState) RecalculateLevel() {
	s.Level = LevelForXP(s.XP)
}

// Clone returns a deep copy safe to hand out while the original keeps mutating.
func (s *PlayerState) Clone() PlayerState {
	out := *s
	out.WordsLearned = slices.Clone(s.WordsLearned)
	out.MasteredWords = slices.Clone(s.MasteredWords)
	out.Achievements = slices.Clone(s.Achievements)
	return out
}

// HasLearned reports whether the word is in the learned set.
func (s *PlayerState) HasLearned(word string) bool {
	return slices.Contains(s.WordsLearned, word)
}

// HasMastered reports whether the word is in the mastered set.
func (s *PlayerState) HasMastered(word string) bool {
	return slices.Contains(s.MasteredWords, word)
}

// HasAchievement reports whether the achievement id is unlocked.
func (s *PlayerState) HasAchievement(id string) bool {
	return slices.Contains(s.Achievements, id)
}

// Player is a registered account. Progression state is stored separately
// as a PlayerState snapshot keyed by the player ID.
type Player struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	OAuthSubject string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
