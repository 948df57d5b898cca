package handlers

import (
	"net/http"

	"englishquest/internal/models"
	"englishquest/internal/progression"
	"englishquest/internal/validation"
)

// PlayerHandler serves progress, shop, settings and achievements
type PlayerHandler struct {
	progress *progression.Manager
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(progress *progression.Manager) *PlayerHandler {
	return &PlayerHandler{progress: progress}
}

func (h *PlayerHandler) storeFor(w http.ResponseWriter, r *http.Request) *progression.Store {
	player := GetPlayerFromContext(r.Context())
	if player == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "", nil)
		return nil
	}
	store, err := h.progress.ForPlayer(r.Context(), player.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load progress", "progress load failed", err)
		return nil
	}
	return store
}

// Progress handles GET /api/progress
func (h *PlayerHandler) Progress(w http.ResponseWriter, r *http.Request) {
	store := h.storeFor(w, r)
	if store == nil {
		return
	}
	respondWithJSON(w, http.StatusOK, store.State())
}

type achievementView struct {
	models.Achievement
	Unlocked bool `json:"unlocked"`
}

// Achievements handles GET /api/achievements
func (h *PlayerHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	store := h.storeFor(w, r)
	if store == nil {
		return
	}

	state := store.State()
	catalog := models.AchievementCatalog()
	views := make([]achievementView, 0, len(catalog))
	for _, a := range catalog {
		views = append(views, achievementView{
			Achievement: a,
			Unlocked:    state.HasAchievement(a.ID),
		})
	}
	respondWithJSON(w, http.StatusOK, views)
}

type purchaseRequest struct {
	ItemID string `json:"itemId"`
}

// Purchase handles POST /api/shop/purchase
func (h *PlayerHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	store := h.storeFor(w, r)
	if store == nil {
		return
	}

	var req purchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if _, ok := progression.ItemPrice(req.ItemID); !ok {
		respondWithError(w, http.StatusBadRequest, "Unknown item", "", nil)
		return
	}

	ok, err := store.PurchaseItem(r.Context(), req.ItemID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Purchase failed", "purchase failed", err)
		return
	}
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Not enough coins", "", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, store.State())
}

// UseHint handles POST /api/hints/use
func (h *PlayerHandler) UseHint(w http.ResponseWriter, r *http.Request) {
	store := h.storeFor(w, r)
	if store == nil {
		return
	}

	ok, err := store.UseHint(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to use hint", "hint failed", err)
		return
	}
	if !ok {
		respondWithError(w, http.StatusBadRequest, "No hints left", "", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, store.State())
}

type settingsRequest struct {
	SoundEnabled *bool    `json:"soundEnabled"`
	SpeechRate   *float64 `json:"speechRate"`
	Difficulty   *string  `json:"difficulty"`
}

// UpdateSettings handles PATCH /api/settings. Absent fields keep their
// current values.
func (h *PlayerHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	store := h.storeFor(w, r)
	if store == nil {
		return
	}

	var req settingsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	patch := progression.SettingsPatch{SoundEnabled: req.SoundEnabled}
	if req.SpeechRate != nil {
		if err := validation.ValidateSpeechRate(*req.SpeechRate); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		patch.SpeechRate = req.SpeechRate
	}
	if req.Difficulty != nil {
		d := models.Difficulty(*req.Difficulty)
		if err := validation.ValidateDifficulty(d); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		patch.Difficulty = &d
	}

	if err := store.UpdateSettings(r.Context(), patch); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update settings", "settings update failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, store.State())
}

// ResetProgress handles POST /api/progress/reset
func (h *PlayerHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	store := h.storeFor(w, r)
	if store == nil {
		return
	}

	if err := store.ResetProgress(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reset progress", "reset failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, store.State())
}
