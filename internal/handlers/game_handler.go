package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"englishquest/internal/audio"
	"englishquest/internal/game"
	"englishquest/internal/progression"
)

// GameHandler starts and drives minigame sessions. Sessions stay
// registered until the client deletes them, so a finished session's
// state can still be read.
type GameHandler struct {
	progress        *progression.Manager
	sessions        *game.Manager
	tts             *audio.TTSService
	speechSupported bool

	mu     sync.Mutex
	owners map[string]int64
}

// NewGameHandler creates a new game handler. tts may be nil in tests.
func NewGameHandler(progress *progression.Manager, sessions *game.Manager, tts *audio.TTSService, speechSupported bool) *GameHandler {
	return &GameHandler{
		progress:        progress,
		sessions:        sessions,
		tts:             tts,
		speechSupported: speechSupported,
		owners:          make(map[string]int64),
	}
}

func (h *GameHandler) register(s game.Session, playerID int64) {
	h.sessions.Put(s)
	h.mu.Lock()
	h.owners[s.SessionID()] = playerID
	h.mu.Unlock()
}

func (h *GameHandler) storeFor(w http.ResponseWriter, r *http.Request) (*progression.Store, int64) {
	player := GetPlayerFromContext(r.Context())
	if player == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "", nil)
		return nil, 0
	}
	store, err := h.progress.ForPlayer(r.Context(), player.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load progress", "progress load failed", err)
		return nil, 0
	}
	return store, player.ID
}

// lookup fetches the session at {id} and verifies the caller owns it
func (h *GameHandler) lookup(w http.ResponseWriter, r *http.Request) game.Session {
	player := GetPlayerFromContext(r.Context())
	if player == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "", nil)
		return nil
	}

	id := r.PathValue("id")
	s, err := h.sessions.Get(id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Session not found", "", nil)
		return nil
	}

	h.mu.Lock()
	owner := h.owners[id]
	h.mu.Unlock()
	if owner != player.ID {
		respondWithError(w, http.StatusForbidden, "Not your session", "", nil)
		return nil
	}

	return s
}

func handleGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrSessionNotActive):
		respondWithError(w, http.StatusConflict, "Session is not in a state that accepts this action", "", nil)
	case errors.Is(err, game.ErrSpeechUnavailable):
		respondWithError(w, http.StatusBadRequest, "Speech capture is not available", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Game action failed", "game action failed", err)
	}
}

type startResponse struct {
	SessionID string `json:"sessionId"`
}

// Abandon handles DELETE /api/games/{id}. It tears the session down
// without granting rewards.
func (h *GameHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}

	s.Close()
	h.sessions.Remove(s.SessionID())
	h.mu.Lock()
	delete(h.owners, s.SessionID())
	h.mu.Unlock()

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

// --- Word Rain ---

// StartWordRain handles POST /api/games/wordrain
func (h *GameHandler) StartWordRain(w http.ResponseWriter, r *http.Request) {
	store, playerID := h.storeFor(w, r)
	if store == nil {
		return
	}

	s := game.NewWordRain(store)
	if err := s.Start(r.Context()); err != nil {
		handleGameError(w, err)
		return
	}
	h.register(s, playerID)

	respondWithJSON(w, http.StatusCreated, startResponse{SessionID: s.SessionID()})
}

// WordRainState handles GET /api/games/wordrain/{id}
func (h *GameHandler) WordRainState(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	rain, ok := s.(*game.WordRain)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a word rain session", "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, rain.Snapshot())
}

type guessRequest struct {
	Text string `json:"text"`
}

// WordRainGuess handles POST /api/games/wordrain/{id}/guess
func (h *GameHandler) WordRainGuess(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	rain, ok := s.(*game.WordRain)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a word rain session", "", nil)
		return
	}

	var req guessRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	match, err := rain.Submit(r.Context(), req.Text)
	if err != nil {
		handleGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, match)
}

// --- Flash Cards ---

type startFlashCardsRequest struct {
	Topic string `json:"topic"`
}

// StartFlashCards handles POST /api/games/flashcards
func (h *GameHandler) StartFlashCards(w http.ResponseWriter, r *http.Request) {
	store, playerID := h.storeFor(w, r)
	if store == nil {
		return
	}

	var req startFlashCardsRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
			return
		}
	}

	s := game.NewFlashCards(store)
	if err := s.Start(r.Context(), req.Topic); err != nil {
		handleGameError(w, err)
		return
	}
	h.register(s, playerID)

	respondWithJSON(w, http.StatusCreated, startResponse{SessionID: s.SessionID()})
}

// FlashCardsCurrent handles GET /api/games/flashcards/{id}
func (h *GameHandler) FlashCardsCurrent(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	cards, ok := s.(*game.FlashCards)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a flash cards session", "", nil)
		return
	}

	card, active := cards.Current()
	if !active {
		respondWithJSON(w, http.StatusOK, map[string]any{"state": game.StateEnded})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"state": game.StatePlaying, "card": card})
}

type respondRequest struct {
	Knew bool `json:"knew"`
}

// FlashCardsRespond handles POST /api/games/flashcards/{id}/respond
func (h *GameHandler) FlashCardsRespond(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	cards, ok := s.(*game.FlashCards)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a flash cards session", "", nil)
		return
	}

	var req respondRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	progress, err := cards.Respond(r.Context(), req.Knew)
	if err != nil {
		handleGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, progress)
}

// --- Sentence Scramble ---

// StartScramble handles POST /api/games/scramble
func (h *GameHandler) StartScramble(w http.ResponseWriter, r *http.Request) {
	store, playerID := h.storeFor(w, r)
	if store == nil {
		return
	}

	s := game.NewSentenceScramble(store)
	if err := s.Start(r.Context()); err != nil {
		handleGameError(w, err)
		return
	}
	h.register(s, playerID)

	respondWithJSON(w, http.StatusCreated, map[string]any{
		"sessionId": s.SessionID(),
		"scrambled": s.Scrambled(),
	})
}

// ScrambleState handles GET /api/games/scramble/{id}
func (h *GameHandler) ScrambleState(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	scramble, ok := s.(*game.SentenceScramble)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a scramble session", "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"scrambled": scramble.Scrambled()})
}

type arrangementRequest struct {
	Arrangement []string `json:"arrangement"`
}

// ScrambleSubmit handles POST /api/games/scramble/{id}/submit
func (h *GameHandler) ScrambleSubmit(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	scramble, ok := s.(*game.SentenceScramble)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a scramble session", "", nil)
		return
	}

	var req arrangementRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	result, err := scramble.Submit(r.Context(), req.Arrangement)
	if err != nil {
		handleGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// ScrambleHint handles POST /api/games/scramble/{id}/hint
func (h *GameHandler) ScrambleHint(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	scramble, ok := s.(*game.SentenceScramble)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a scramble session", "", nil)
		return
	}

	arrangement, used, err := scramble.Hint(r.Context())
	if err != nil {
		handleGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"scrambled": arrangement, "hintUsed": used})
}

// ScrambleNext handles POST /api/games/scramble/{id}/next
func (h *GameHandler) ScrambleNext(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	scramble, ok := s.(*game.SentenceScramble)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a scramble session", "", nil)
		return
	}

	state, err := scramble.Advance(r.Context())
	if err != nil {
		handleGameError(w, err)
		return
	}
	payload := map[string]any{"state": state}
	if state == game.StatePlaying {
		payload["scrambled"] = scramble.Scrambled()
	}
	respondWithJSON(w, http.StatusOK, payload)
}

// --- Daily Drill ---

// StartDrill handles POST /api/games/drill
func (h *GameHandler) StartDrill(w http.ResponseWriter, r *http.Request) {
	store, playerID := h.storeFor(w, r)
	if store == nil {
		return
	}

	s := game.NewDailyDrill(store)
	if err := s.Start(r.Context()); err != nil {
		handleGameError(w, err)
		return
	}
	h.register(s, playerID)

	challenge, _ := s.Current()
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"sessionId": s.SessionID(),
		"challenge": challenge,
	})
}

// DrillCurrent handles GET /api/games/drill/{id}
func (h *GameHandler) DrillCurrent(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	drill, ok := s.(*game.DailyDrill)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a drill session", "", nil)
		return
	}

	challenge, active := drill.Current()
	if !active {
		respondWithJSON(w, http.StatusOK, map[string]any{"state": game.StateEnded})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"state": game.StatePlaying, "challenge": challenge})
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// DrillAnswer handles POST /api/games/drill/{id}/answer
func (h *GameHandler) DrillAnswer(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	drill, ok := s.(*game.DailyDrill)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a drill session", "", nil)
		return
	}

	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	result, err := drill.Submit(r.Context(), req.Answer)
	if err != nil {
		handleGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// DrillNext handles POST /api/games/drill/{id}/next
func (h *GameHandler) DrillNext(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	drill, ok := s.(*game.DailyDrill)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a drill session", "", nil)
		return
	}

	state, err := drill.Advance(r.Context())
	if err != nil {
		handleGameError(w, err)
		return
	}
	payload := map[string]any{"state": state}
	if state == game.StatePlaying {
		challenge, _ := drill.Current()
		payload["challenge"] = challenge
	}
	respondWithJSON(w, http.StatusOK, payload)
}

// --- Speech Lab ---

// StartSpeech handles POST /api/games/speech
func (h *GameHandler) StartSpeech(w http.ResponseWriter, r *http.Request) {
	store, playerID := h.storeFor(w, r)
	if store == nil {
		return
	}

	s := game.NewSpeechLab(store, h.speechSupported)
	if err := s.Start(r.Context()); err != nil {
		handleGameError(w, err)
		return
	}
	h.register(s, playerID)

	// Warm the audio cache so playback does not stall mid-session.
	// Outlives the request on purpose.
	if h.tts != nil {
		words := s.Words()
		rate := store.State().Settings.SpeechRate
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if _, err := h.tts.PrefetchWords(ctx, words, "", rate); err != nil {
				log.Printf("Failed to prefetch speech audio: %v", err)
			}
		}()
	}

	word, _ := s.Current()
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"sessionId": s.SessionID(),
		"word":      word,
	})
}

func (h *GameHandler) speechSession(w http.ResponseWriter, r *http.Request) *game.SpeechLab {
	s := h.lookup(w, r)
	if s == nil {
		return nil
	}
	lab, ok := s.(*game.SpeechLab)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a speech session", "", nil)
		return nil
	}
	return lab
}

// SpeechCurrent handles GET /api/games/speech/{id}
func (h *GameHandler) SpeechCurrent(w http.ResponseWriter, r *http.Request) {
	lab := h.speechSession(w, r)
	if lab == nil {
		return
	}

	word, active := lab.Current()
	if !active {
		respondWithJSON(w, http.StatusOK, map[string]any{"state": game.StateEnded})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"word": word})
}

// SpeechCapture handles POST /api/games/speech/{id}/capture
func (h *GameHandler) SpeechCapture(w http.ResponseWriter, r *http.Request) {
	lab := h.speechSession(w, r)
	if lab == nil {
		return
	}
	if err := lab.BeginCapture(); err != nil {
		handleGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"state": game.StateListening})
}

type transcriptRequest struct {
	Transcript string `json:"transcript"`
}

// SpeechInterim handles POST /api/games/speech/{id}/interim
func (h *GameHandler) SpeechInterim(w http.ResponseWriter, r *http.Request) {
	lab := h.speechSession(w, r)
	if lab == nil {
		return
	}

	var req transcriptRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if err := lab.Interim(req.Transcript); err != nil {
		handleGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"state": game.StateListening})
}

// SpeechFinal handles POST /api/games/speech/{id}/final
func (h *GameHandler) SpeechFinal(w http.ResponseWriter, r *http.Request) {
	lab := h.speechSession(w, r)
	if lab == nil {
		return
	}

	var req transcriptRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	verdict, err := lab.Finalize(r.Context(), req.Transcript)
	if err != nil {
		handleGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, verdict)
}

type captureErrorRequest struct {
	Message string `json:"message"`
}

// SpeechError handles POST /api/games/speech/{id}/error
func (h *GameHandler) SpeechError(w http.ResponseWriter, r *http.Request) {
	lab := h.speechSession(w, r)
	if lab == nil {
		return
	}

	var req captureErrorRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	verdict, err := lab.CaptureError(req.Message)
	if err != nil {
		handleGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, verdict)
}

// SpeechRetry handles POST /api/games/speech/{id}/retry
func (h *GameHandler) SpeechRetry(w http.ResponseWriter, r *http.Request) {
	lab := h.speechSession(w, r)
	if lab == nil {
		return
	}
	if err := lab.Retry(); err != nil {
		handleGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"state": game.StatePlaying})
}

// SpeechNext handles POST /api/games/speech/{id}/next
func (h *GameHandler) SpeechNext(w http.ResponseWriter, r *http.Request) {
	lab := h.speechSession(w, r)
	if lab == nil {
		return
	}

	state, err := lab.Advance(r.Context())
	if err != nil {
		handleGameError(w, err)
		return
	}
	payload := map[string]any{"state": state}
	if state == game.StatePlaying {
		word, _ := lab.Current()
		payload["word"] = word
	}
	respondWithJSON(w, http.StatusOK, payload)
}

// --- Dialogue Practice ---

type startDialogueRequest struct {
	ScenarioID string `json:"scenarioId"`
}

// StartDialogue handles POST /api/games/dialogue
func (h *GameHandler) StartDialogue(w http.ResponseWriter, r *http.Request) {
	store, playerID := h.storeFor(w, r)
	if store == nil {
		return
	}

	var req startDialogueRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	s := game.NewDialoguePractice(store)
	if err := s.Start(r.Context(), req.ScenarioID); err != nil {
		if errors.Is(err, game.ErrSessionNotActive) {
			handleGameError(w, err)
		} else {
			respondWithError(w, http.StatusNotFound, "Scenario not found", "", err)
		}
		return
	}
	h.register(s, playerID)

	h.respondDialogue(w, http.StatusCreated, s, nil)
}

// DialogueState handles GET /api/games/dialogue/{id}
func (h *GameHandler) DialogueState(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	dialogue, ok := s.(*game.DialoguePractice)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a dialogue session", "", nil)
		return
	}
	h.respondDialogue(w, http.StatusOK, dialogue, nil)
}

type chooseRequest struct {
	Option int `json:"option"`
}

// DialogueChoose handles POST /api/games/dialogue/{id}/choose
func (h *GameHandler) DialogueChoose(w http.ResponseWriter, r *http.Request) {
	s := h.lookup(w, r)
	if s == nil {
		return
	}
	dialogue, ok := s.(*game.DialoguePractice)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not a dialogue session", "", nil)
		return
	}

	var req chooseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	outcome, err := dialogue.Choose(r.Context(), req.Option)
	if err != nil {
		handleGameError(w, err)
		return
	}
	h.respondDialogue(w, http.StatusOK, dialogue, outcome)
}

func (h *GameHandler) respondDialogue(w http.ResponseWriter, status int, dialogue *game.DialoguePractice, outcome *game.DialogueOutcome) {
	payload := map[string]any{
		"sessionId": dialogue.SessionID(),
		"messages":  dialogue.Messages(),
	}
	if options, waiting := dialogue.CurrentOptions(); waiting {
		payload["options"] = options
	}
	if outcome != nil {
		payload["outcome"] = outcome
	}
	respondWithJSON(w, status, payload)
}
