package handlers

import (
	"net/http"
	"strconv"

	"englishquest/internal/audio"
	"englishquest/internal/content"
)

// ContentHandler serves the vocabulary catalog and dialogue scenarios
type ContentHandler struct {
	tts *audio.TTSService
}

// NewContentHandler creates a new content handler
func NewContentHandler(tts *audio.TTSService) *ContentHandler {
	return &ContentHandler{tts: tts}
}

// Topics handles GET /api/content/topics
func (h *ContentHandler) Topics(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, content.Topics())
}

// Words handles GET /api/content/words with optional topic and
// difficulty filters
func (h *ContentHandler) Words(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")
	if topic != "" {
		respondWithJSON(w, http.StatusOK, content.WordsByTopic(topic))
		return
	}

	if raw := r.URL.Query().Get("difficulty"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil || level < 1 || level > 3 {
			respondWithError(w, http.StatusBadRequest, "Invalid difficulty", "", nil)
			return
		}
		respondWithJSON(w, http.StatusOK, content.WordsByDifficulty(level))
		return
	}

	respondWithJSON(w, http.StatusOK, content.AllWords())
}

// Scenarios handles GET /api/content/scenarios
func (h *ContentHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, content.Scenarios())
}

// Scenario handles GET /api/content/scenarios/{id}
func (h *ContentHandler) Scenario(w http.ResponseWriter, r *http.Request) {
	scenario := content.ScenarioByID(r.PathValue("id"))
	if scenario == nil {
		respondWithError(w, http.StatusNotFound, "Scenario not found", "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, scenario)
}

// Speak handles GET /api/content/speak?text=...&lang=...&rate=... and
// returns the cached audio filename for the requested text. lang defaults
// to English.
func (h *ContentHandler) Speak(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		respondWithError(w, http.StatusBadRequest, "Missing text", "", nil)
		return
	}
	lang := r.URL.Query().Get("lang")

	rate := 1.0
	if raw := r.URL.Query().Get("rate"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid rate", "", nil)
			return
		}
		rate = parsed
	}

	filename, err := h.tts.Synthesize(r.Context(), text, lang, rate)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Failed to synthesize audio", "tts failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"file": "/static/audio/" + filename})
}
