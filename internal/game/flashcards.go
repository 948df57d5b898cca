package game

import (
	"context"
	"log"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"englishquest/internal/content"
	"englishquest/internal/models"
	"englishquest/internal/progression"
)

const cardsPerSession = 10

// FlashCards is the card-review session: the player sees a word, flips
// the card, and reports whether they knew it. Three same-session
// "knew it" responses for a word mark it mastered.
type FlashCards struct {
	mu    sync.Mutex
	id    string
	state State
	store *progression.Store

	cards     []models.VocabWord
	index     int
	correct   int
	incorrect int
	knewCount map[string]int
}

// NewFlashCards creates an unstarted flashcard session
func NewFlashCards(store *progression.Store) *FlashCards {
	return &FlashCards{
		id:        uuid.NewString(),
		state:     StateReady,
		store:     store,
		knewCount: make(map[string]int),
	}
}

func (g *FlashCards) SessionID() string {
	return g.id
}

// Start deals the cards, from a single topic when one is given or the
// full pool otherwise.
func (g *FlashCards) Start(ctx context.Context, topic string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateReady {
		return ErrSessionNotActive
	}

	if topic == "" {
		g.cards = content.RandomWords(cardsPerSession, 0)
	} else {
		pool := content.WordsByTopic(topic)
		rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		if len(pool) > cardsPerSession {
			pool = pool[:cardsPerSession]
		}
		g.cards = pool
	}
	if len(g.cards) == 0 {
		return ErrSessionNotActive
	}

	g.index = 0
	g.state = StatePlaying
	if err := g.store.UpdateStreak(ctx); err != nil {
		log.Printf("Failed to update streak: %v", err)
	}
	return nil
}

// FlashCardsProgress reports where the session stands after a response
type FlashCardsProgress struct {
	State     State `json:"state"`
	Index     int   `json:"index"`
	Total     int   `json:"total"`
	Correct   int   `json:"correct"`
	Incorrect int   `json:"incorrect"`
}

// Respond records the player's self-assessment for the current card
// and advances, ending the session after the last card.
func (g *FlashCards) Respond(ctx context.Context, knew bool) (*FlashCardsProgress, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return nil, ErrSessionNotActive
	}

	card := g.cards[g.index]
	if knew {
		g.correct++
		g.knewCount[card.Word]++
		if err := g.store.AddCorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record correct answer: %v", err)
		}
		if err := g.store.LearnWord(ctx, card.Word); err != nil {
			log.Printf("Failed to record learned word: %v", err)
		}
		if g.knewCount[card.Word] >= 3 {
			if err := g.store.MasterWord(ctx, card.Word); err != nil {
				log.Printf("Failed to record mastered word: %v", err)
			}
		}
	} else {
		g.incorrect++
		if err := g.store.AddIncorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record incorrect answer: %v", err)
		}
	}

	g.index++
	if g.index >= len(g.cards) {
		g.endLocked(ctx)
	}

	return &FlashCardsProgress{
		State:     g.state,
		Index:     g.index,
		Total:     len(g.cards),
		Correct:   g.correct,
		Incorrect: g.incorrect,
	}, nil
}

// Current returns the card under review
func (g *FlashCards) Current() (models.VocabWord, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying || g.index >= len(g.cards) {
		return models.VocabWord{}, false
	}
	return g.cards[g.index], true
}

func (g *FlashCards) endLocked(ctx context.Context) {
	if g.state == StateEnded {
		return
	}
	g.state = StateEnded
	grantRewards(ctx, g.store, g.correct*10, g.correct*2)
	maybePerfectGame(ctx, g.store, g.correct, g.incorrect)
}

func (g *FlashCards) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateEnded
}
