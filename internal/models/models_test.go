package models

import (
	"encoding/json"
	"testing"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want int
	}{
		{
			name: "zero xp is level 1",
			xp:   0,
			want: 1,
		},
		{
			name: "just below first threshold",
			xp:   99,
			want: 1,
		},
		{
			name: "exactly one level",
			xp:   100,
			want: 2,
		},
		{
			name: "mid level",
			xp:   250,
			want: 3,
		},
		{
			name: "high xp",
			xp:   1000,
			want: 11,
		},
		{
			name: "negative xp clamps to level 1",
			xp:   -5,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelForXP(tt.xp); got != tt.want {
				t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
			}
		})
	}
}

func TestNewPlayerStateDefaults(t *testing.T) {
	s := NewPlayerState()

	if s.XP != 0 || s.Level != 1 {
		t.Errorf("new state xp=%d level=%d, want 0 and 1", s.XP, s.Level)
	}
	if s.Coins != 100 {
		t.Errorf("new state coins = %d, want 100", s.Coins)
	}
	if s.Inventory.StreakFreeze != 1 || s.Inventory.XPBoost != 0 || s.Inventory.Hints != 3 {
		t.Errorf("new state inventory = %+v, want 1 freeze, 0 boosts, 3 hints", s.Inventory)
	}
	if !s.Settings.SoundEnabled || s.Settings.SpeechRate != 1.0 || s.Settings.Difficulty != DifficultyMedium {
		t.Errorf("new state settings = %+v", s.Settings)
	}
	if s.LastPlayedDate != "" {
		t.Errorf("new state lastPlayedDate = %q, want empty", s.LastPlayedDate)
	}
}

func TestPlayerStateSnapshotRoundTrip(t *testing.T) {
	s := NewPlayerState()
	s.XP = 230
	s.RecalculateLevel()
	s.WordsLearned = append(s.WordsLearned, "breakfast", "deadline")
	s.Achievements = append(s.Achievements, "first_word")

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored PlayerState
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.Level != 3 {
		t.Errorf("restored level = %d, want 3", restored.Level)
	}
	if !restored.HasLearned("deadline") {
		t.Error("restored state lost learned word")
	}
	if !restored.HasAchievement("first_word") {
		t.Error("restored state lost achievement")
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name       string
		difficulty Difficulty
		want       int
	}{
		{name: "easy", difficulty: DifficultyEasy, want: 1},
		{name: "medium", difficulty: DifficultyMedium, want: 2},
		{name: "hard", difficulty: DifficultyHard, want: 3},
		{name: "unknown falls back to medium", difficulty: Difficulty("extreme"), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.difficulty.Level(); got != tt.want {
				t.Errorf("%q.Level() = %d, want %d", tt.difficulty, got, tt.want)
			}
		})
	}
}

func TestAchievementCatalog(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range AchievementCatalog() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true

		if a.XPReward <= 0 {
			t.Errorf("achievement %q has non-positive reward %d", a.ID, a.XPReward)
		}
	}

	if _, ok := AchievementByID("first_word"); !ok {
		t.Error("first_word missing from catalog")
	}
	if _, ok := AchievementByID("no_such_id"); ok {
		t.Error("lookup of unknown id should fail")
	}
}
