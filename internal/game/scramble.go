package game

import (
	"context"
	"log"
	"math/rand"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"englishquest/internal/content"
	"englishquest/internal/models"
	"englishquest/internal/progression"
)

const sentencesPerGame = 5

// SentenceScramble is the word-reordering session. Each round scores
// 10 points minus 2 per hint used in that round; hints consume the
// player's hint inventory and move one word into place.
type SentenceScramble struct {
	mu    sync.Mutex
	id    string
	state State
	store *progression.Store

	sentences  []models.Sentence
	index      int
	scrambled  []string
	roundHints int

	score     int
	correct   int
	incorrect int
}

// NewSentenceScramble creates an unstarted scramble session
func NewSentenceScramble(store *progression.Store) *SentenceScramble {
	return &SentenceScramble{
		id:    uuid.NewString(),
		state: StateReady,
		store: store,
	}
}

func (g *SentenceScramble) SessionID() string {
	return g.id
}

// Start picks the sentences at the player's difficulty and scrambles
// the first one.
func (g *SentenceScramble) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateReady {
		return ErrSessionNotActive
	}

	level := g.store.State().Settings.Difficulty.Level()
	g.sentences = content.RandomSentences(sentencesPerGame, level)
	if len(g.sentences) == 0 {
		return ErrSessionNotActive
	}

	g.index = 0
	g.score = 0
	g.scrambleCurrent()
	g.state = StatePlaying
	if err := g.store.UpdateStreak(ctx); err != nil {
		log.Printf("Failed to update streak: %v", err)
	}
	return nil
}

// scrambleCurrent shuffles the current sentence's words, retrying a
// few times so the puzzle does not start already solved.
func (g *SentenceScramble) scrambleCurrent() {
	words := slices.Clone(g.sentences[g.index].Words)
	for attempt := 0; attempt < 10; attempt++ {
		rand.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})
		if !slices.Equal(words, g.sentences[g.index].Words) {
			break
		}
	}
	g.scrambled = words
	g.roundHints = 0
}

// Scrambled returns the current word order the player is arranging
func (g *SentenceScramble) Scrambled() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.scrambled)
}

// ScrambleResult is the verdict for one submitted arrangement
type ScrambleResult struct {
	Correct  bool   `json:"correct"`
	Sentence string `json:"sentence"`
	Points   int    `json:"points"`
	Score    int    `json:"score"`
	State    State  `json:"state"`
}

// Submit checks the player's arrangement against the target sentence
// and moves the session into the result state.
func (g *SentenceScramble) Submit(ctx context.Context, arrangement []string) (*ScrambleResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return nil, ErrSessionNotActive
	}

	target := g.sentences[g.index]
	answer := strings.Join(arrangement, " ")
	result := &ScrambleResult{Sentence: target.Sentence}

	if answer == target.Sentence {
		points := 10 - g.roundHints*2
		if points < 0 {
			points = 0
		}
		g.score += points
		g.correct++
		result.Correct = true
		result.Points = points
		if err := g.store.AddCorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record correct answer: %v", err)
		}
	} else {
		g.incorrect++
		if err := g.store.AddIncorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record incorrect answer: %v", err)
		}
	}

	g.state = StateResult
	result.Score = g.score
	result.State = g.state
	return result, nil
}

// Hint consumes one hint from the inventory and moves the first
// misplaced word into its correct slot. Returns the updated order and
// whether a hint was actually consumed.
func (g *SentenceScramble) Hint(ctx context.Context) ([]string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return nil, false, ErrSessionNotActive
	}

	used, err := g.store.UseHint(ctx)
	if err != nil {
		return nil, false, err
	}
	if !used {
		return slices.Clone(g.scrambled), false, nil
	}
	g.roundHints++

	correct := g.sentences[g.index].Words
	for i := range correct {
		if g.scrambled[i] == correct[i] {
			continue
		}
		from := slices.Index(g.scrambled[i:], correct[i]) + i
		word := g.scrambled[from]
		g.scrambled = slices.Delete(g.scrambled, from, from+1)
		g.scrambled = slices.Insert(g.scrambled, i, word)
		break
	}
	return slices.Clone(g.scrambled), true, nil
}

// Advance moves to the next sentence, or ends the session after the
// last one.
func (g *SentenceScramble) Advance(ctx context.Context) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateResult {
		return g.state, ErrSessionNotActive
	}

	g.index++
	if g.index >= len(g.sentences) {
		g.endLocked(ctx)
		return g.state, nil
	}
	g.scrambleCurrent()
	g.state = StatePlaying
	return g.state, nil
}

func (g *SentenceScramble) endLocked(ctx context.Context) {
	if g.state == StateEnded {
		return
	}
	g.state = StateEnded
	grantRewards(ctx, g.store, g.score*3, g.score/2)
	maybePerfectGame(ctx, g.store, g.correct, g.incorrect)
}

func (g *SentenceScramble) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateEnded
}
