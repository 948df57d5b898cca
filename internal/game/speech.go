package game

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"englishquest/internal/content"
	"englishquest/internal/models"
	"englishquest/internal/progression"
)

const speechWordsPerSession = 8

// SpeechLab is the pronunciation session. The actual capture happens
// in an external capability; the session only consumes its event
// stream: start -> interim transcripts -> final transcript or error.
// When the capability is absent the whole game is unavailable rather
// than partially working.
type SpeechLab struct {
	mu    sync.Mutex
	id    string
	state State
	store *progression.Store

	supported bool

	words      []models.VocabWord
	index      int
	transcript string

	correct   int
	incorrect int

	lastVerdict *SpeechVerdict
}

// NewSpeechLab creates an unstarted pronunciation session. The caller
// reports whether speech capture is available in its environment.
func NewSpeechLab(store *progression.Store, supported bool) *SpeechLab {
	return &SpeechLab{
		id:        uuid.NewString(),
		state:     StateReady,
		store:     store,
		supported: supported,
	}
}

func (g *SpeechLab) SessionID() string {
	return g.id
}

// Start deals the words to pronounce. Fails up front when speech
// capture is unavailable.
func (g *SpeechLab) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.supported {
		return ErrSpeechUnavailable
	}
	if g.state != StateReady {
		return ErrSessionNotActive
	}

	level := g.store.State().Settings.Difficulty.Level()
	g.words = content.RandomWords(speechWordsPerSession, level)
	if len(g.words) == 0 {
		return ErrSessionNotActive
	}

	g.index = 0
	g.state = StatePlaying
	if err := g.store.UpdateStreak(ctx); err != nil {
		log.Printf("Failed to update streak: %v", err)
	}
	return nil
}

// Words returns the text of every word dealt to the session
func (g *SpeechLab) Words() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	words := make([]string, len(g.words))
	for i, w := range g.words {
		words[i] = w.Word
	}
	return words
}

// Current returns the word being practiced
func (g *SpeechLab) Current() (models.VocabWord, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.index >= len(g.words) || g.state == StateEnded {
		return models.VocabWord{}, false
	}
	return g.words[g.index], true
}

// BeginCapture moves the session into the listening state while the
// external capability records the player.
func (g *SpeechLab) BeginCapture() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return ErrSessionNotActive
	}
	g.state = StateListening
	g.transcript = ""
	return nil
}

// Interim records a partial transcript while listening
func (g *SpeechLab) Interim(transcript string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateListening {
		return ErrSessionNotActive
	}
	g.transcript = transcript
	return nil
}

// SpeechVerdict is the outcome of one pronunciation attempt
type SpeechVerdict struct {
	Correct    bool   `json:"correct"`
	Word       string `json:"word"`
	Transcript string `json:"transcript"`
	Err        string `json:"error,omitempty"`
	State      State  `json:"state"`
}

// Finalize grades the final transcript. A spoken word counts as
// correct when it equals or contains the target, or the target
// contains it, compared case-insensitively.
func (g *SpeechLab) Finalize(ctx context.Context, transcript string) (*SpeechVerdict, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateListening {
		return nil, ErrSessionNotActive
	}

	g.transcript = transcript
	word := g.words[g.index]
	spoken := strings.ToLower(strings.TrimSpace(transcript))
	target := strings.ToLower(word.Word)

	correct := spoken == target ||
		strings.Contains(spoken, target) ||
		(spoken != "" && strings.Contains(target, spoken))

	if correct {
		g.correct++
		if err := g.store.AddCorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record correct answer: %v", err)
		}
		if err := g.store.LearnWord(ctx, word.Word); err != nil {
			log.Printf("Failed to record learned word: %v", err)
		}
	} else {
		g.incorrect++
		if err := g.store.AddIncorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record incorrect answer: %v", err)
		}
	}

	g.state = StateFeedback
	g.lastVerdict = &SpeechVerdict{
		Correct:    correct,
		Word:       word.Word,
		Transcript: transcript,
		State:      g.state,
	}
	return g.lastVerdict, nil
}

// CaptureError records an external capture failure. The session moves
// to feedback with a retry affordance; a capture error is never fatal.
func (g *SpeechLab) CaptureError(message string) (*SpeechVerdict, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateListening {
		return nil, ErrSessionNotActive
	}

	g.state = StateFeedback
	g.lastVerdict = &SpeechVerdict{
		Word:  g.words[g.index].Word,
		Err:   message,
		State: g.state,
	}
	return g.lastVerdict, nil
}

// Retry returns to the playing state for another attempt at the same
// word. Only valid from feedback.
func (g *SpeechLab) Retry() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateFeedback {
		return ErrSessionNotActive
	}
	g.state = StatePlaying
	g.transcript = ""
	g.lastVerdict = nil
	return nil
}

// Advance moves to the next word, or ends the session after the last
func (g *SpeechLab) Advance(ctx context.Context) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateFeedback {
		return g.state, ErrSessionNotActive
	}

	g.index++
	g.transcript = ""
	g.lastVerdict = nil
	if g.index >= len(g.words) {
		g.endLocked(ctx)
		return g.state, nil
	}
	g.state = StatePlaying
	return g.state, nil
}

func (g *SpeechLab) endLocked(ctx context.Context) {
	if g.state == StateEnded {
		return
	}
	g.state = StateEnded
	grantRewards(ctx, g.store, g.correct*15, g.correct*3)
	maybePerfectGame(ctx, g.store, g.correct, g.incorrect)
}

func (g *SpeechLab) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateEnded
}
