package game

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"englishquest/internal/content"
	"englishquest/internal/models"
	"englishquest/internal/progression"
)

// Word-rain tuning. A session lasts a fixed minute; definitions fall
// for six seconds each and the player types the matching word before
// it lands.
const (
	wordRainDuration   = 60 // seconds
	wordRainPoolSize   = 30
	wordRainMaxFalling = 5
	wordRainLives      = 3
	wordRainFall       = 6 * time.Second
	wordRainSpawnEvery = 2 * time.Second
	wordRainSweepEvery = 100 * time.Millisecond
)

// fallingWord is one on-screen challenge. It is destroyed either by a
// correct submission or by expiry, never both.
type fallingWord struct {
	models.VocabWord
	ID        int64     `json:"id"`
	X         float64   `json:"x"`
	SpawnedAt time.Time `json:"-"`
}

// WordRain runs the falling-word session: a spawn scheduler, an
// expiry sweeper, and a countdown clock all mutate the same session
// state, serialized through one mutex so a word is never counted as
// both matched and missed.
type WordRain struct {
	mu    sync.Mutex
	id    string
	state State
	store *progression.Store

	pool    []models.VocabWord
	falling []*fallingWord
	nextID  int64

	score    int
	lives    int
	combo    int
	timeLeft int

	correct   int
	incorrect int

	stop     chan struct{}
	stopOnce sync.Once

	// Overridable in tests
	fallDuration time.Duration
	spawnEvery   time.Duration
	sweepEvery   time.Duration
}

// NewWordRain creates an unstarted word-rain session
func NewWordRain(store *progression.Store) *WordRain {
	return &WordRain{
		id:           uuid.NewString(),
		state:        StateReady,
		store:        store,
		stop:         make(chan struct{}),
		fallDuration: wordRainFall,
		spawnEvery:   wordRainSpawnEvery,
		sweepEvery:   wordRainSweepEvery,
	}
}

func (g *WordRain) SessionID() string {
	return g.id
}

// Start builds the word pool, bumps the daily streak, and launches
// the three periodic processes.
func (g *WordRain) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateReady {
		return ErrSessionNotActive
	}

	level := g.store.State().Settings.Difficulty.Level()
	g.pool = content.RandomWords(wordRainPoolSize, level)
	g.falling = nil
	g.score = 0
	g.lives = wordRainLives
	g.combo = 0
	g.timeLeft = wordRainDuration
	g.state = StatePlaying

	if err := g.store.UpdateStreak(ctx); err != nil {
		log.Printf("Failed to update streak: %v", err)
	}

	go g.spawnLoop()
	go g.sweepLoop()
	go g.countdownLoop()
	return nil
}

func (g *WordRain) spawnLoop() {
	ticker := time.NewTicker(g.spawnEvery)
	defer ticker.Stop()
	for {
		select {
		case <-g.stop:
			return
		case <-ticker.C:
			g.spawnOne()
		}
	}
}

func (g *WordRain) spawnOne() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying || len(g.pool) == 0 || len(g.falling) >= wordRainMaxFalling {
		return
	}
	word := g.pool[0]
	g.pool = g.pool[1:]
	g.nextID++
	g.falling = append(g.falling, &fallingWord{
		VocabWord: word,
		ID:        g.nextID,
		X:         rand.Float64()*70 + 15,
		SpawnedAt: time.Now(),
	})
}

func (g *WordRain) sweepLoop() {
	ticker := time.NewTicker(g.sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-g.stop:
			return
		case <-ticker.C:
			g.sweepExpired()
		}
	}
}

// sweepExpired removes every challenge older than the fall duration.
// A sweep with one or more misses costs a single life and resets the
// combo, matching the one-life-per-tick rule.
func (g *WordRain) sweepExpired() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return
	}

	now := time.Now()
	missed := 0
	remaining := g.falling[:0]
	for _, w := range g.falling {
		if now.Sub(w.SpawnedAt) >= g.fallDuration {
			missed++
		} else {
			remaining = append(remaining, w)
		}
	}
	g.falling = remaining

	if missed == 0 {
		return
	}

	ctx := context.Background()
	for i := 0; i < missed; i++ {
		g.incorrect++
		if err := g.store.AddIncorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record missed word: %v", err)
		}
	}
	g.lives--
	g.combo = 0
	if g.lives <= 0 {
		g.endLocked(ctx)
	}
}

func (g *WordRain) countdownLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-g.stop:
			return
		case <-ticker.C:
			g.tickSecond()
		}
	}
}

func (g *WordRain) tickSecond() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return
	}
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.endLocked(context.Background())
	}
}

// WordRainMatch is the outcome of one typed submission
type WordRainMatch struct {
	Matched bool   `json:"matched"`
	Word    string `json:"word,omitempty"`
	Points  int    `json:"points"`
	Score   int    `json:"score"`
	Combo   int    `json:"combo"`
}

// Submit checks the typed text against the active challenges,
// case-insensitively and exact. The first writer wins: a word already
// removed by the expiry sweep cannot be matched, and a matched word
// can no longer expire.
func (g *WordRain) Submit(ctx context.Context, text string) (*WordRainMatch, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return nil, ErrSessionNotActive
	}

	guess := strings.ToLower(strings.TrimSpace(text))
	if guess == "" {
		return &WordRainMatch{Score: g.score, Combo: g.combo}, nil
	}

	for i, w := range g.falling {
		if strings.ToLower(w.Word) != guess {
			continue
		}
		g.falling = append(g.falling[:i], g.falling[i+1:]...)

		comboBonus := g.combo
		if comboBonus > 5 {
			comboBonus = 5
		}
		points := 10 + comboBonus*2
		g.score += points
		g.combo++
		g.correct++

		if err := g.store.LearnWord(ctx, w.Word); err != nil {
			log.Printf("Failed to record learned word: %v", err)
		}
		if err := g.store.AddCorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record correct answer: %v", err)
		}
		return &WordRainMatch{Matched: true, Word: w.Word, Points: points, Score: g.score, Combo: g.combo}, nil
	}

	g.combo = 0
	return &WordRainMatch{Score: g.score, Combo: 0}, nil
}

// endLocked finishes the session, stops the timers, and converts the
// score into rewards exactly once. Caller must hold the mutex.
func (g *WordRain) endLocked(ctx context.Context) {
	if g.state == StateEnded {
		return
	}
	g.state = StateEnded
	g.stopOnce.Do(func() { close(g.stop) })

	grantRewards(ctx, g.store, g.score*2, g.score/2)
	if err := g.store.IncrementGamesPlayed(ctx); err != nil {
		log.Printf("Failed to record played game: %v", err)
	}
	if err := g.store.AddTimeSpent(ctx, wordRainDuration-g.timeLeft); err != nil {
		log.Printf("Failed to record time spent: %v", err)
	}
	maybePerfectGame(ctx, g.store, g.correct, g.incorrect)
}

// Close stops the periodic processes without granting rewards. Used
// when the player abandons the session.
func (g *WordRain) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateEnded {
		g.state = StateEnded
	}
	g.stopOnce.Do(func() { close(g.stop) })
}

// FallingWordView is the client-visible part of a falling challenge.
// The target word stays server-side.
type FallingWordView struct {
	ID         int64   `json:"id"`
	Definition string  `json:"definition"`
	X          float64 `json:"x"`
	AgeMs      int64   `json:"ageMs"`
}

// WordRainSnapshot is a point-in-time view of the session
type WordRainSnapshot struct {
	State    State             `json:"state"`
	Score    int               `json:"score"`
	Lives    int               `json:"lives"`
	Combo    int               `json:"combo"`
	TimeLeft int               `json:"timeLeft"`
	Falling  []FallingWordView `json:"falling"`
}

// Snapshot returns a consistent view of the session state
func (g *WordRain) Snapshot() WordRainSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	falling := make([]FallingWordView, 0, len(g.falling))
	for _, w := range g.falling {
		falling = append(falling, FallingWordView{
			ID:         w.ID,
			Definition: w.Definition,
			X:          w.X,
			AgeMs:      now.Sub(w.SpawnedAt).Milliseconds(),
		})
	}
	return WordRainSnapshot{
		State:    g.state,
		Score:    g.score,
		Lives:    g.lives,
		Combo:    g.combo,
		TimeLeft: g.timeLeft,
		Falling:  falling,
	}
}
