package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wordkingdom/internal/engine"
	"wordkingdom/internal/models"
	"wordkingdom/internal/service"
	"wordkingdom/internal/session"
	"wordkingdom/internal/storage"
	"wordkingdom/internal/store"
)

// PlayHandler drives the question-and-answer game loop over HTTP
type PlayHandler struct {
	kv       storage.KV
	profiles *store.ProfileStore
	bank     session.QuestionSource
	registry *SessionRegistry
}

// NewPlayHandler creates a new play handler
func NewPlayHandler(kv storage.KV, profiles *store.ProfileStore, bank session.QuestionSource, registry *SessionRegistry) *PlayHandler {
	return &PlayHandler{
		kv:       kv,
		profiles: profiles,
		bank:     bank,
		registry: registry,
	}
}

// StartWorld begins a play session for a world. Starting while another
// session is live abandons the old one, matching a player who backs out
// to the map mid-world.
func (h *PlayHandler) StartWorld(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceFromContext(r.Context())
	worldKey := models.WorldKey(r.PathValue("world"))
	if _, known := models.WorldNames[worldKey]; !known {
		respondWithError(w, http.StatusNotFound, "Unknown world", "", nil)
		return
	}

	profile := h.profiles.Load(deviceID)
	ctrl, err := session.Start(profile, h.bank, worldKey)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrWorldLocked):
			respondWithError(w, http.StatusForbidden, "World is locked", "", nil)
		case errors.Is(err, session.ErrNoQuestions):
			respondWithError(w, http.StatusNotFound, "World has no questions", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to start session", "Error starting session", err)
		}
		return
	}

	h.registry.Put(deviceID, ctrl)
	respondWithJSON(w, http.StatusCreated, newSessionView(ctrl))
}

// CurrentQuestion returns the live session state
func (h *PlayHandler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.activeSession(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, newSessionView(ctrl))
}

// SubmitAnswer scores a multiple-choice answer
func (h *PlayHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.activeSession(w, r)
	if !ok {
		return
	}

	var req struct {
		SelectedIndex int `json:"selectedIndex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	result, err := ctrl.SubmitAnswer(req.SelectedIndex)
	if err != nil {
		respondWithError(w, http.StatusConflict, "Answer not accepted in this state", "", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"correct":      result.Correct,
		"correctIndex": result.CorrectIndex,
		"reward":       result.Reward,
		"score":        result.Score,
		"lastQuestion": result.LastQuestion,
	})
}

// RequestHint reveals the current question's hint for a score penalty
func (h *PlayHandler) RequestHint(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.activeSession(w, r)
	if !ok {
		return
	}

	hint, penalty, err := ctrl.RequestHint()
	if err != nil {
		respondWithError(w, http.StatusConflict, "Hint not available in this state", "", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hint":      hint,
		"penalty":   penalty,
		"score":     ctrl.Score(),
		"hintsUsed": ctrl.HintsUsed(),
	})
}

// SkipQuestion moves past the current question without scoring it
func (h *PlayHandler) SkipQuestion(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.activeSession(w, r)
	if !ok {
		return
	}

	skipped := ctrl.Skip()
	view := newSessionView(ctrl)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"skipped": skipped,
		"session": view,
	})
}

// Advance moves from answer feedback to the next question, or commits
// the completed session when the world is done
func (h *PlayHandler) Advance(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.activeSession(w, r)
	if !ok {
		return
	}

	phase, err := ctrl.Advance()
	if err != nil {
		respondWithError(w, http.StatusConflict, "Nothing to advance from", "", nil)
		return
	}

	if phase == session.PhaseFinished {
		h.commitSession(w, r, ctrl)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"finished": false,
		"session":  newSessionView(ctrl),
	})
}

// SubmitStory scores the creative-writing submission and commits the
// session, since the story is always the world's final question
func (h *PlayHandler) SubmitStory(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.activeSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	result, err := ctrl.SubmitStory(req.Text)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrEmptyStory):
			respondWithError(w, http.StatusBadRequest, "Story must not be empty", "", nil)
		default:
			respondWithError(w, http.StatusConflict, "Story not accepted in this state", "", nil)
		}
		return
	}

	h.commitSessionWith(w, r, ctrl, map[string]interface{}{
		"storyScore": result.Score,
		"storyCoins": result.Coins,
	})
}

// QuitSession abandons the live session without any profile change
func (h *PlayHandler) QuitSession(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceFromContext(r.Context())
	h.registry.Remove(deviceID)
	respondWithJSON(w, http.StatusOK, map[string]bool{"quit": true})
}

// activeSession fetches the device's live session or writes a 404
func (h *PlayHandler) activeSession(w http.ResponseWriter, r *http.Request) (*session.Controller, bool) {
	deviceID := GetDeviceFromContext(r.Context())
	ctrl, ok := h.registry.Get(deviceID)
	if !ok {
		respondWithError(w, http.StatusNotFound, "No active session", "", nil)
		return nil, false
	}
	return ctrl, true
}

// commitSession finalizes the session and applies it to the profile
func (h *PlayHandler) commitSession(w http.ResponseWriter, r *http.Request, ctrl *session.Controller) {
	h.commitSessionWith(w, r, ctrl, nil)
}

func (h *PlayHandler) commitSessionWith(w http.ResponseWriter, r *http.Request, ctrl *session.Controller, extra map[string]interface{}) {
	deviceID := GetDeviceFromContext(r.Context())

	result, err := ctrl.Finish()
	if err != nil {
		respondWithError(w, http.StatusConflict, "Session is not finished", "", nil)
		return
	}

	// Fresh store with a per-request collector so the unlock and level-up
	// notifications land on this response
	collector := &notificationCollector{}
	profiles := store.NewProfileStore(h.kv, collector)
	profile, err := profiles.ApplyCompletion(deviceID, result)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save progress", "Error applying completion", err)
		return
	}

	h.registry.Remove(deviceID)

	payload := map[string]interface{}{
		"finished":      true,
		"completion":    result,
		"profile":       profile,
		"levelInfo":     engine.LevelForExperience(profile.Experience),
		"shareText":     service.ShareText(profile),
		"notifications": collector.Messages(),
	}
	for k, v := range extra {
		payload[k] = v
	}
	respondWithJSON(w, http.StatusOK, payload)
}
