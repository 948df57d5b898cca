package game

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"englishquest/internal/content"
	"englishquest/internal/models"
	"englishquest/internal/progression"
)

// DialogueMessage is one line of the running conversation
type DialogueMessage struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Correct *bool  `json:"correct,omitempty"`
}

// DialoguePractice walks the player through a scripted conversation.
// NPC turns play automatically; player turns present response options
// and the chosen option determines the NPC's reply.
type DialoguePractice struct {
	mu    sync.Mutex
	id    string
	state State
	store *progression.Store

	scenario *models.DialogueScenario
	index    int
	messages []DialogueMessage

	correct int
	total   int
}

// NewDialoguePractice creates an unstarted dialogue session
func NewDialoguePractice(store *progression.Store) *DialoguePractice {
	return &DialoguePractice{
		id:    uuid.NewString(),
		state: StateReady,
		store: store,
	}
}

func (g *DialoguePractice) SessionID() string {
	return g.id
}

// Start loads the scenario and plays the leading NPC turns
func (g *DialoguePractice) Start(ctx context.Context, scenarioID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateReady {
		return ErrSessionNotActive
	}

	scenario := content.ScenarioByID(scenarioID)
	if scenario == nil {
		return fmt.Errorf("unknown scenario: %s", scenarioID)
	}

	g.scenario = scenario
	g.index = 0
	g.state = StatePlaying
	g.playNPCTurnsLocked()

	if err := g.store.UpdateStreak(ctx); err != nil {
		log.Printf("Failed to update streak: %v", err)
	}
	return nil
}

// playNPCTurnsLocked appends consecutive NPC lines until the next
// player turn or the end of the script.
func (g *DialoguePractice) playNPCTurnsLocked() {
	for g.index < len(g.scenario.Dialogue) {
		turn := g.scenario.Dialogue[g.index]
		if turn.IsPlayerTurn() {
			return
		}
		g.messages = append(g.messages, DialogueMessage{Speaker: turn.Speaker, Text: turn.Text})
		g.index++
	}
}

// CurrentOptions returns the response options for the active player turn
func (g *DialoguePractice) CurrentOptions() ([]models.DialogueOption, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying || g.index >= len(g.scenario.Dialogue) {
		return nil, false
	}
	turn := g.scenario.Dialogue[g.index]
	if !turn.IsPlayerTurn() {
		return nil, false
	}
	return turn.Options, true
}

// DialogueOutcome reports the result of one chosen response
type DialogueOutcome struct {
	Correct      bool   `json:"correct"`
	Response     string `json:"response"`
	State        State  `json:"state"`
	CorrectCount int    `json:"correctCount"`
	TotalCount   int    `json:"totalCount"`
}

// Choose records the player's selected option, appends the NPC's
// scripted reply, and advances the conversation. The session ends
// after the final turn.
func (g *DialoguePractice) Choose(ctx context.Context, optionIndex int) (*DialogueOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying || g.index >= len(g.scenario.Dialogue) {
		return nil, ErrSessionNotActive
	}
	turn := g.scenario.Dialogue[g.index]
	if !turn.IsPlayerTurn() {
		return nil, ErrSessionNotActive
	}
	if optionIndex < 0 || optionIndex >= len(turn.Options) {
		return nil, fmt.Errorf("option index %d out of range", optionIndex)
	}

	option := turn.Options[optionIndex]
	chosen := option.Correct
	g.messages = append(g.messages, DialogueMessage{Speaker: models.PlayerSpeaker, Text: option.Text, Correct: &chosen})

	g.total++
	if option.Correct {
		g.correct++
		if err := g.store.AddCorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record correct answer: %v", err)
		}
	} else {
		if err := g.store.AddIncorrectAnswer(ctx); err != nil {
			log.Printf("Failed to record incorrect answer: %v", err)
		}
	}

	if option.Response != "" {
		g.messages = append(g.messages, DialogueMessage{Speaker: g.scenario.Dialogue[0].Speaker, Text: option.Response})
	}

	g.index++
	g.playNPCTurnsLocked()
	if g.index >= len(g.scenario.Dialogue) {
		g.endLocked(ctx)
	}

	return &DialogueOutcome{
		Correct:      option.Correct,
		Response:     option.Response,
		State:        g.state,
		CorrectCount: g.correct,
		TotalCount:   g.total,
	}, nil
}

// Messages returns the conversation so far
func (g *DialoguePractice) Messages() []DialogueMessage {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]DialogueMessage, len(g.messages))
	copy(out, g.messages)
	return out
}

func (g *DialoguePractice) endLocked(ctx context.Context) {
	if g.state == StateEnded {
		return
	}
	g.state = StateEnded
	grantRewards(ctx, g.store, g.correct*20, g.correct*5)
	maybePerfectGame(ctx, g.store, g.correct, g.total-g.correct)
}

func (g *DialoguePractice) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateEnded
}
