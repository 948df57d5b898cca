package game

import (
	"context"
	"fmt"
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

const (
	drillRounds       = 10
	drillQuestionTime = 15 * time.Second
	speedDemonLimit   = 30 * time.Second
)

// Fixed distractor pools for non-vocabulary rounds
var (
	drillFillerWords = []string{"always", "never", "quickly", "very", "just", "really"}
	drillWrongMeanings = []string{
		"To be very happy",
		"To work very hard",
		"To be confused",
		"To give up easily",
		"To start something new",
	}
)

// DrillChallenge is one multiple-choice round of the mixed drill
type DrillChallenge struct {
	Type     string   `json:"type"` // vocabulary, fillBlank, idiom
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Extra    string   `json:"extra,omitempty"`

	answer string
	word   string
}

// DailyDrill is the mixed rapid-fire session: ten multiple-choice
// rounds drawn from vocabulary, sentence completion, and idioms, each
// with a fifteen-second answer window.
type DailyDrill struct {
	mu    sync.Mutex
	id    string
	state State
	store *progression.Store

	challenges []DrillChallenge
	index      int
	score      int
	combo      int
	answered   int

	correct   int
	incorrect int

	startedAt     time.Time
	questionStart time.Time

	now func() time.Time
}

// NewDailyDrill creates an unstarted drill session
func NewDailyDrill(store *progression.Store) *DailyDrill {
	return &DailyDrill{
		id:    uuid.NewString(),
		state: StateReady,
		store: store,
		now:   time.Now,
	}
}

func (g *DailyDrill) SessionID() string {
	return g.id
}

// Start generates the challenge mix at the player's difficulty
func (g *DailyDrill) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateReady {
		return ErrSessionNotActive
	}

	level := g.store.State().Settings.Difficulty.Level()
	g.challenges = generateDrillChallenges(level)
	if len(g.challenges) == 0 {
		return ErrSessionNotActive
	}

	g.index = 0
	g.score = 0
	g.combo = 0
	g.state = StatePlaying
	g.startedAt = g.now()
	g.questionStart = g.startedAt

	if err := g.store.UpdateStreak(ctx); err != nil {
		log.Printf("Failed to update streak: %v", err)
	}
	return nil
}

// generateDrillChallenges mixes vocabulary, fill-in-the-blank, and
// idiom rounds, then shuffles and caps at the round count.
func generateDrillChallenges(level int) []DrillChallenge {
	var list []DrillChallenge

	for _, word := range content.RandomWords(4, level) {
		pool := content.AllWords()
		list = append(list, DrillChallenge{
			Type:     "vocabulary",
			Question: fmt.Sprintf("What does %q mean?", word.Word),
			Options:  content.DefinitionOptions(word, pool),
			answer:   word.Definition,
			word:     word.Word,
		})
	}

	for _, s := range content.RandomSentences(3, level) {
		if len(s.Words) < 2 {
			continue
		}
		removeIndex := rand.Intn(len(s.Words)-1) + 1
		removed := s.Words[removeIndex]
		blanked := make([]string, len(s.Words))
		copy(blanked, s.Words)
		blanked[removeIndex] = "______"

		var wrong []string
		for _, w := range drillFillerWords {
			if w != removed {
				wrong = append(wrong, w)
			}
		}
		list = append(list, DrillChallenge{
			Type:     "fillBlank",
			Question: fmt.Sprintf("Complete: %q", strings.Join(blanked, " ")),
			Options:  content.Options(removed, wrong),
			answer:   removed,
		})
	}

	for _, idiom := range content.RandomIdioms(3) {
		var wrong []string
		for _, m := range drillWrongMeanings {
			if m != idiom.Meaning {
				wrong = append(wrong, m)
			}
		}
		list = append(list, DrillChallenge{
			Type:     "idiom",
			Question: fmt.Sprintf("What does %q mean?", idiom.Idiom),
			Options:  content.Options(idiom.Meaning, wrong),
			answer:   idiom.Meaning,
			Extra:    idiom.Example,
		})
	}

	rand.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
	if len(list) > drillRounds {
		list = list[:drillRounds]
	}
	return list
}

// Current returns the active challenge
func (g *DailyDrill) Current() (DrillChallenge, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying || g.index >= len(g.challenges) {
		return DrillChallenge{}, false
	}
	return g.challenges[g.index], true
}

// DrillResult is the verdict for one answered round
type DrillResult struct {
	Correct  bool   `json:"correct"`
	TimedOut bool   `json:"timedOut"`
	Answer   string `json:"answer"`
	Points   int    `json:"points"`
	Score    int    `json:"score"`
	Combo    int    `json:"combo"`
	State    State  `json:"state"`
}

// Submit grades the given answer against the active challenge. An
// answer arriving after the fifteen-second window counts as a timeout
// and is graded incorrect regardless of its content. Points are base
// 10 plus a time bonus and a capped combo bonus.
func (g *DailyDrill) Submit(ctx context.Context, answer string) (*DrillResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return nil, ErrSessionNotActive
	}

	challenge := g.challenges[g.index]
	elapsed := g.now().Sub(g.questionStart)
	timeLeft := drillQuestionTime - elapsed

	result := &DrillResult{Answer: challenge.answer}
	g.answered++

	if timeLeft <= 0 {
		result.TimedOut = true
		g.combo = 0
		g.incorrect++
		if err := g.store.AddIncorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record timeout: %v", err)
		}
	} else if answer == challenge.answer {
		timeBonus := int(timeLeft.Seconds()) / 3
		comboBonus := g.combo
		if comboBonus > 5 {
			comboBonus = 5
		}
		points := 10 + timeBonus + comboBonus
		g.score += points
		g.combo++
		g.correct++
		result.Correct = true
		result.Points = points

		if err := g.store.AddCorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record correct answer: %v", err)
		}
		if challenge.word != "" {
			if err := g.store.LearnWord(ctx, challenge.word); err != nil {
				log.Printf("Failed to record learned word: %v", err)
			}
		}
	} else {
		g.combo = 0
		g.incorrect++
		if err := g.store.AddIncorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record incorrect answer: %v", err)
		}
	}

	g.state = StateResult
	result.Score = g.score
	result.Combo = g.combo
	result.State = g.state
	return result, nil
}

// Advance moves to the next round, or ends the session after the last
func (g *DailyDrill) Advance(ctx context.Context) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateResult {
		return g.state, ErrSessionNotActive
	}

	g.index++
	if g.index >= len(g.challenges) {
		g.endLocked(ctx)
		return g.state, nil
	}
	g.state = StatePlaying
	g.questionStart = g.now()
	return g.state, nil
}

func (g *DailyDrill) endLocked(ctx context.Context) {
	if g.state == StateEnded {
		return
	}
	g.state = StateEnded

	grantRewards(ctx, g.store, g.score*2, g.score/3)
	if err := g.store.IncrementGamesPlayed(ctx); err != nil {
		log.Printf("Failed to record played game: %v", err)
	}

	elapsed := g.now().Sub(g.startedAt)
	if err := g.store.AddTimeSpent(ctx, int(elapsed.Seconds())); err != nil {
		log.Printf("Failed to record time spent: %v", err)
	}
	if g.answered == len(g.challenges) && elapsed < speedDemonLimit {
		if err := g.store.UnlockAchievement(ctx, models.AchievementSpeedDemon); err != nil {
			log.Printf("Failed to unlock speed achievement: %v", err)
		}
	}
	maybePerfectGame(ctx, g.store, g.correct, g.incorrect)
}

func (g *DailyDrill) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateEnded
}
