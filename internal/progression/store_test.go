package progression

import (
	"context"
	"testing"
	"time"

	"englishquest/internal/models"
	"englishquest/internal/storage"
)

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore, *fixedClock) {
	t.Helper()
	snapshots := storage.NewMemoryStore()
	clock := &fixedClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	store, err := NewStore(context.Background(), snapshots, 1, clock)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store, snapshots, clock
}

func TestAddXPLevelInvariant(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	amounts := []int{10, 95, 1, 250, 44}
	for _, amount := range amounts {
		if err := store.AddXP(ctx, amount); err != nil {
			t.Fatalf("AddXP(%d) error = %v", amount, err)
		}
		state := store.State()
		want := state.XP/models.XPPerLevel + 1
		if state.Level != want {
			t.Errorf("after AddXP(%d): level = %d, want %d (xp=%d)", amount, state.Level, want, state.XP)
		}
	}
}

func TestAddXPConsumesBoost(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	if ok, err := store.SpendCoins(ctx, 70); err != nil || !ok {
		t.Fatalf("SpendCoins(70) = %v, %v", ok, err)
	}
	if ok, err := store.PurchaseItem(ctx, ItemXPBoost); err != nil || !ok {
		t.Fatalf("PurchaseItem(xpBoost) = %v, %v", ok, err)
	}

	if err := store.AddXP(ctx, 25); err != nil {
		t.Fatalf("AddXP() error = %v", err)
	}
	state := store.State()
	if state.XP != 37 {
		t.Errorf("boosted XP = %d, want 37 (floor of 25*1.5)", state.XP)
	}
	if state.Inventory.XPBoost != 0 {
		t.Errorf("XPBoost = %d, want 0 after consumption", state.Inventory.XPBoost)
	}

	// Next grant is unboosted
	if err := store.AddXP(ctx, 10); err != nil {
		t.Fatalf("AddXP() error = %v", err)
	}
	if got := store.State().XP; got != 47 {
		t.Errorf("XP = %d, want 47", got)
	}
}

func TestSpendCoins(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	ok, err := store.SpendCoins(ctx, 150)
	if err != nil {
		t.Fatalf("SpendCoins() error = %v", err)
	}
	if ok {
		t.Error("SpendCoins(150) with 100 coins should fail")
	}
	if got := store.State().Coins; got != 100 {
		t.Errorf("Coins = %d, want 100 unchanged after failed spend", got)
	}

	ok, err = store.SpendCoins(ctx, 40)
	if err != nil {
		t.Fatalf("SpendCoins() error = %v", err)
	}
	if !ok {
		t.Error("SpendCoins(40) with 100 coins should succeed")
	}
	if got := store.State().Coins; got != 60 {
		t.Errorf("Coins = %d, want 60", got)
	}
}

func TestLearnWordIdempotent(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.LearnWord(ctx, "serendipity"); err != nil {
		t.Fatalf("LearnWord() error = %v", err)
	}
	if err := store.LearnWord(ctx, "serendipity"); err != nil {
		t.Fatalf("LearnWord() error = %v", err)
	}

	state := store.State()
	count := 0
	for _, w := range state.WordsLearned {
		if w == "serendipity" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("word appears %d times, want 1", count)
	}
	// first_word unlocked exactly once, +50 XP
	if !state.HasAchievement("first_word") {
		t.Error("first_word achievement not unlocked")
	}
	if state.XP != 50 {
		t.Errorf("XP = %d, want 50 from first_word reward", state.XP)
	}
}

func TestAchievementUnlockAtomic(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	words := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for _, w := range words {
		if err := store.LearnWord(ctx, w); err != nil {
			t.Fatalf("LearnWord(%s) error = %v", w, err)
		}
	}

	state := store.State()
	if !state.HasAchievement("first_word") || !state.HasAchievement("ten_words") {
		t.Errorf("achievements = %v, want first_word and ten_words", state.Achievements)
	}
	// 50 (first_word) + 100 (ten_words)
	if state.XP != 150 {
		t.Errorf("XP = %d, want 150", state.XP)
	}
	if state.Level != 2 {
		t.Errorf("Level = %d, want 2", state.Level)
	}

	seen := map[string]int{}
	for _, id := range state.Achievements {
		seen[id]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("achievement %s appears %d times", id, n)
		}
	}
}

func seedState(t *testing.T, snapshots *storage.MemoryStore, state *models.PlayerState) {
	t.Helper()
	if err := snapshots.Save(context.Background(), 1, state); err != nil {
		t.Fatalf("seed Save() error = %v", err)
	}
}

func TestStreakReconciliation(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		lastPlayed  string
		streak      int
		freezes     int
		wantStreak  int
		wantFreezes int
	}{
		{"played yesterday", "2026-03-09", 5, 1, 5, 1},
		{"played today", "2026-03-10", 5, 1, 5, 1},
		{"two day gap with freeze", "2026-03-08", 5, 1, 5, 0},
		{"two day gap without freeze", "2026-03-08", 5, 0, 0, 0},
		{"three day gap with freeze", "2026-03-07", 5, 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshots := storage.NewMemoryStore()
			state := models.NewPlayerState()
			state.Streak = tt.streak
			state.LastPlayedDate = tt.lastPlayed
			state.Inventory.StreakFreeze = tt.freezes
			seedState(t, snapshots, state)

			store, err := NewStore(context.Background(), snapshots, 1, &fixedClock{t: now})
			if err != nil {
				t.Fatalf("NewStore() error = %v", err)
			}

			got := store.State()
			if got.Streak != tt.wantStreak {
				t.Errorf("Streak = %d, want %d", got.Streak, tt.wantStreak)
			}
			if got.Inventory.StreakFreeze != tt.wantFreezes {
				t.Errorf("StreakFreeze = %d, want %d", got.Inventory.StreakFreeze, tt.wantFreezes)
			}
		})
	}
}

func TestUpdateStreakOncePerDay(t *testing.T) {
	store, _, clock := newTestStore(t)
	ctx := context.Background()

	if err := store.UpdateStreak(ctx); err != nil {
		t.Fatalf("UpdateStreak() error = %v", err)
	}
	if err := store.UpdateStreak(ctx); err != nil {
		t.Fatalf("UpdateStreak() error = %v", err)
	}

	state := store.State()
	if state.Streak != 1 {
		t.Errorf("Streak = %d, want 1 after two same-day updates", state.Streak)
	}
	if state.LastPlayedDate != clock.t.Format(models.DateLayout) {
		t.Errorf("LastPlayedDate = %s, want today", state.LastPlayedDate)
	}
	if state.Stats.BestStreak != 1 {
		t.Errorf("BestStreak = %d, want 1", state.Stats.BestStreak)
	}

	// Next day increments again
	clock.t = clock.t.Add(24 * time.Hour)
	if err := store.UpdateStreak(ctx); err != nil {
		t.Fatalf("UpdateStreak() error = %v", err)
	}
	if got := store.State().Streak; got != 2 {
		t.Errorf("Streak = %d, want 2", got)
	}
}

func TestUpdateStreakAfterGapOnCachedStore(t *testing.T) {
	store, _, clock := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.UpdateStreak(ctx); err != nil {
			t.Fatalf("UpdateStreak() error = %v", err)
		}
		clock.t = clock.t.Add(24 * time.Hour)
	}
	if got := store.State().Streak; got != 3 {
		t.Fatalf("Streak = %d, want 3 before the gap", got)
	}

	// The store stays in memory across a multi-day absence; the gap
	// rules must still apply when the player comes back.
	clock.t = clock.t.Add(4 * 24 * time.Hour)
	if err := store.UpdateStreak(ctx); err != nil {
		t.Fatalf("UpdateStreak() error = %v", err)
	}
	if got := store.State().Streak; got != 1 {
		t.Errorf("Streak = %d, want 1 after a multi-day gap", got)
	}
}

func TestUpdateStreakFreezeBridgesGapOnCachedStore(t *testing.T) {
	store, _, clock := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := store.UpdateStreak(ctx); err != nil {
			t.Fatalf("UpdateStreak() error = %v", err)
		}
		clock.t = clock.t.Add(24 * time.Hour)
	}

	// Skip one full day: two calendar days since the last session,
	// bridged by the starting streak freeze.
	clock.t = clock.t.Add(24 * time.Hour)
	if err := store.UpdateStreak(ctx); err != nil {
		t.Fatalf("UpdateStreak() error = %v", err)
	}

	state := store.State()
	if state.Streak != 3 {
		t.Errorf("Streak = %d, want 3 with freeze bridging the gap", state.Streak)
	}
	if state.Inventory.StreakFreeze != 0 {
		t.Errorf("StreakFreeze = %d, want 0 after consuming it", state.Inventory.StreakFreeze)
	}
}

func TestStreakAchievements(t *testing.T) {
	store, _, clock := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.UpdateStreak(ctx); err != nil {
			t.Fatalf("UpdateStreak() error = %v", err)
		}
		clock.t = clock.t.Add(24 * time.Hour)
	}

	state := store.State()
	if !state.HasAchievement("streak_3") {
		t.Errorf("achievements = %v, want streak_3", state.Achievements)
	}
	if state.XP != 75 {
		t.Errorf("XP = %d, want 75 from streak_3 reward", state.XP)
	}
}

func TestPurchaseItem(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	ok, err := store.PurchaseItem(ctx, ItemStreakFreeze)
	if err != nil {
		t.Fatalf("PurchaseItem() error = %v", err)
	}
	if !ok {
		t.Error("PurchaseItem(streakFreeze) with 100 coins should succeed")
	}
	state := store.State()
	if state.Coins != 50 {
		t.Errorf("Coins = %d, want 50", state.Coins)
	}
	if state.Inventory.StreakFreeze != 2 {
		t.Errorf("StreakFreeze = %d, want 2", state.Inventory.StreakFreeze)
	}

	// 50 coins left: a second freeze succeeds, a third fails untouched
	if ok, _ := store.PurchaseItem(ctx, ItemStreakFreeze); !ok {
		t.Error("second purchase should succeed")
	}
	ok, err = store.PurchaseItem(ctx, ItemStreakFreeze)
	if err != nil {
		t.Fatalf("PurchaseItem() error = %v", err)
	}
	if ok {
		t.Error("purchase with 0 coins should fail")
	}
	state = store.State()
	if state.Coins != 0 || state.Inventory.StreakFreeze != 3 {
		t.Errorf("coins = %d inventory = %d, want 0 and 3 after failed purchase", state.Coins, state.Inventory.StreakFreeze)
	}

	if _, err := store.PurchaseItem(ctx, "jetpack"); err == nil {
		t.Error("PurchaseItem with unknown item should error")
	}
}

func TestUseHint(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := store.UseHint(ctx)
		if err != nil {
			t.Fatalf("UseHint() error = %v", err)
		}
		if !ok {
			t.Errorf("UseHint() #%d = false, want true", i+1)
		}
	}
	ok, err := store.UseHint(ctx)
	if err != nil {
		t.Fatalf("UseHint() error = %v", err)
	}
	if ok {
		t.Error("UseHint() with 0 hints should report false")
	}
	if got := store.State().Inventory.Hints; got != 0 {
		t.Errorf("Hints = %d, want 0", got)
	}
}

func TestUpdateSettingsPartialMerge(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	rate := 1.25
	if err := store.UpdateSettings(ctx, SettingsPatch{SpeechRate: &rate}); err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}

	settings := store.State().Settings
	if settings.SpeechRate != 1.25 {
		t.Errorf("SpeechRate = %v, want 1.25", settings.SpeechRate)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled should be untouched by partial update")
	}
	if settings.Difficulty != models.DifficultyMedium {
		t.Errorf("Difficulty = %s, want medium untouched", settings.Difficulty)
	}
}

func TestResetProgress(t *testing.T) {
	store, snapshots, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.AddXP(ctx, 500); err != nil {
		t.Fatalf("AddXP() error = %v", err)
	}
	if err := store.ResetProgress(ctx); err != nil {
		t.Fatalf("ResetProgress() error = %v", err)
	}

	state := store.State()
	if state.XP != 0 || state.Level != 1 || state.Coins != 100 {
		t.Errorf("state after reset = xp %d level %d coins %d, want defaults", state.XP, state.Level, state.Coins)
	}
	if _, err := snapshots.Load(ctx, 1); err != storage.ErrSnapshotNotFound {
		t.Errorf("snapshot Load() after reset error = %v, want ErrSnapshotNotFound", err)
	}
}

func TestUnlockAchievementIdempotent(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.UnlockAchievement(ctx, models.AchievementPerfectGame); err != nil {
		t.Fatalf("UnlockAchievement() error = %v", err)
	}
	if err := store.UnlockAchievement(ctx, models.AchievementPerfectGame); err != nil {
		t.Fatalf("UnlockAchievement() error = %v", err)
	}

	state := store.State()
	if state.XP != 150 {
		t.Errorf("XP = %d, want 150 granted once", state.XP)
	}
	if len(state.Achievements) != 1 {
		t.Errorf("achievements = %v, want exactly one entry", state.Achievements)
	}

	if err := store.UnlockAchievement(ctx, "nonexistent"); err == nil {
		t.Error("UnlockAchievement with unknown id should error")
	}
}

func TestManagerReusesStores(t *testing.T) {
	snapshots := storage.NewMemoryStore()
	manager := NewManager(snapshots, &fixedClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)})
	ctx := context.Background()

	a, err := manager.ForPlayer(ctx, 1)
	if err != nil {
		t.Fatalf("ForPlayer() error = %v", err)
	}
	b, err := manager.ForPlayer(ctx, 1)
	if err != nil {
		t.Fatalf("ForPlayer() error = %v", err)
	}
	if a != b {
		t.Error("ForPlayer should return the same store for the same player")
	}
}
