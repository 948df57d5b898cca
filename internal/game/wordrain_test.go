package game

import (
	"context"
	"testing"
	"time"

	"englishquest/internal/models"
	"englishquest/internal/progression"
	"englishquest/internal/storage"
)

func newTestProgression(t *testing.T) *progression.Store {
	t.Helper()
	store, err := progression.NewStore(context.Background(), storage.NewMemoryStore(), 1, progression.NewRealClock())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

// newPlayingWordRain builds a word-rain session already in the playing
// state with direct control over the falling set, bypassing the timers.
func newPlayingWordRain(store *progression.Store) *WordRain {
	g := NewWordRain(store)
	g.state = StatePlaying
	g.lives = wordRainLives
	g.timeLeft = wordRainDuration
	return g
}

func fallingAt(id int64, word string, age time.Duration) *fallingWord {
	return &fallingWord{
		VocabWord: models.VocabWord{Word: word, Definition: "def of " + word},
		ID:        id,
		X:         50,
		SpawnedAt: time.Now().Add(-age),
	}
}

func TestWordRainExpiryCountsMissOnce(t *testing.T) {
	store := newTestProgression(t)
	g := newPlayingWordRain(store)
	g.falling = []*fallingWord{
		fallingAt(1, "luggage", 10*time.Second),
		fallingAt(2, "passport", time.Second),
	}

	g.sweepExpired()

	if len(g.falling) != 1 || g.falling[0].Word != "passport" {
		t.Fatalf("falling = %v, want only the fresh word", g.falling)
	}
	if g.lives != wordRainLives-1 {
		t.Errorf("lives = %d, want %d", g.lives, wordRainLives-1)
	}
	if got := store.State().Stats.TotalIncorrect; got != 1 {
		t.Errorf("TotalIncorrect = %d, want 1", got)
	}

	// Sweeping again must not double-count the expired word
	g.sweepExpired()
	if g.lives != wordRainLives-1 {
		t.Errorf("lives = %d after second sweep, want %d", g.lives, wordRainLives-1)
	}
}

func TestWordRainMatchBeatsExpiry(t *testing.T) {
	store := newTestProgression(t)
	g := newPlayingWordRain(store)
	g.falling = []*fallingWord{fallingAt(1, "luggage", 10*time.Second)}

	// Matched first: the later sweep sees the word already gone
	match, err := g.Submit(context.Background(), "  Luggage ")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !match.Matched || match.Points != 10 {
		t.Errorf("match = %+v, want matched with 10 points", match)
	}

	g.sweepExpired()
	if g.lives != wordRainLives {
		t.Errorf("lives = %d, want %d: matched word must never count as a miss", g.lives, wordRainLives)
	}
	state := store.State()
	if state.Stats.TotalCorrect != 1 || state.Stats.TotalIncorrect != 0 {
		t.Errorf("stats = %+v, want one correct, zero incorrect", state.Stats)
	}
	if !state.HasLearned("luggage") {
		t.Error("matched word should be recorded as learned")
	}
}

func TestWordRainExpiryBeatsMatch(t *testing.T) {
	store := newTestProgression(t)
	g := newPlayingWordRain(store)
	g.falling = []*fallingWord{fallingAt(1, "luggage", 10*time.Second)}

	g.sweepExpired()

	match, err := g.Submit(context.Background(), "luggage")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if match.Matched {
		t.Error("expired word must not be matchable")
	}
	if match.Combo != 0 {
		t.Errorf("combo = %d, want 0 after failed match", match.Combo)
	}
}

func TestWordRainComboScoring(t *testing.T) {
	store := newTestProgression(t)
	g := newPlayingWordRain(store)
	ctx := context.Background()

	words := []string{"a", "b", "c", "d", "e", "f", "g"}
	wantPoints := []int{10, 12, 14, 16, 18, 20, 20} // combo bonus caps at 5
	for i, w := range words {
		g.falling = []*fallingWord{fallingAt(int64(i), w, time.Second)}
		match, err := g.Submit(ctx, w)
		if err != nil {
			t.Fatalf("Submit(%s) error = %v", w, err)
		}
		if match.Points != wantPoints[i] {
			t.Errorf("points for match %d = %d, want %d", i+1, match.Points, wantPoints[i])
		}
	}
}

func TestWordRainLivesExhaustedEndsSession(t *testing.T) {
	store := newTestProgression(t)
	g := newPlayingWordRain(store)
	g.lives = 1
	g.score = 20
	g.correct = 2
	g.falling = []*fallingWord{fallingAt(1, "luggage", 10*time.Second)}

	g.sweepExpired()

	if g.state != StateEnded {
		t.Fatalf("state = %s, want ended", g.state)
	}
	state := store.State()
	// 20 score -> 40 XP, 10 coins on top of the starting 100
	if state.XP != 40 {
		t.Errorf("XP = %d, want 40", state.XP)
	}
	if state.Coins != 110 {
		t.Errorf("Coins = %d, want 110", state.Coins)
	}
	if state.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", state.GamesPlayed)
	}
}

func TestWordRainCountdownEndsSession(t *testing.T) {
	store := newTestProgression(t)
	g := newPlayingWordRain(store)
	g.timeLeft = 1

	g.tickSecond()

	if g.state != StateEnded {
		t.Errorf("state = %s, want ended when the clock reaches zero", g.state)
	}
	if g.timeLeft != 0 {
		t.Errorf("timeLeft = %d, want 0", g.timeLeft)
	}
}

func TestWordRainRewardsGrantedOnce(t *testing.T) {
	store := newTestProgression(t)
	g := newPlayingWordRain(store)
	g.score = 10
	g.correct = 1

	g.timeLeft = 1
	g.tickSecond()
	g.tickSecond() // ended state: must be a no-op
	g.Close()      // closing after end must not grant again

	state := store.State()
	// 10 score -> 20 XP plus the perfect game reward (1 correct, 0 missed)
	if state.XP != 20+150 {
		t.Errorf("XP = %d, want 170", state.XP)
	}
	if !state.HasAchievement(models.AchievementPerfectGame) {
		t.Error("flawless session should unlock the perfect game achievement")
	}
}

func TestWordRainStartAndTeardown(t *testing.T) {
	store := newTestProgression(t)
	g := NewWordRain(store)
	g.spawnEvery = 5 * time.Millisecond
	g.sweepEvery = time.Millisecond

	if err := g.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := g.Start(context.Background()); err != ErrSessionNotActive {
		t.Errorf("second Start() error = %v, want ErrSessionNotActive", err)
	}

	// Spawner should populate the falling set
	deadline := time.After(time.Second)
	for {
		if len(g.Snapshot().Falling) > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("no words spawned before deadline")
		case <-time.After(time.Millisecond):
		}
	}

	g.Close()
	if got := g.Snapshot().State; got != StateEnded {
		t.Errorf("state after Close() = %s, want ended", got)
	}
	// Start must have recorded today's streak
	if got := store.State().Streak; got != 1 {
		t.Errorf("Streak = %d, want 1 after session start", got)
	}
}
