package handlers

import (
	"net/http"

	"wordkingdom/internal/storage"
	"wordkingdom/internal/store"
)

// LeaderboardHandler serves the hall of fame
type LeaderboardHandler struct {
	kv       storage.KV
	profiles *store.ProfileStore
	board    *store.LeaderboardStore
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(kv storage.KV, profiles *store.ProfileStore, board *store.LeaderboardStore) *LeaderboardHandler {
	return &LeaderboardHandler{kv: kv, profiles: profiles, board: board}
}

// List returns all leaderboard entries, best first
func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.board.List())
}

// Submit snapshots the requesting player's totals onto the leaderboard
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceFromContext(r.Context())
	profile := h.profiles.Load(deviceID)

	collector := &notificationCollector{}
	board := store.NewLeaderboardStore(h.kv, collector)
	entry, err := board.Submit(profile)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to submit score", "Error submitting to leaderboard", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"entry":         entry,
		"notifications": collector.Messages(),
	})
}
