package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"wordkingdom/internal/engine"
	"wordkingdom/internal/models"
	"wordkingdom/internal/service"
	"wordkingdom/internal/store"
)

// ProfileHandler serves the player profile, settings and the world map
type ProfileHandler struct {
	profiles *store.ProfileStore
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *store.ProfileStore) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile returns the player profile with derived level progress
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceFromContext(r.Context())
	profile := h.profiles.Load(deviceID)

	respondWithJSON(w, http.StatusOK, ProfileView{
		Profile:   profile,
		LevelInfo: engine.LevelForExperience(profile.Experience),
		ShareText: service.ShareText(profile),
	})
}

// Rename updates the player name
func (h *ProfileHandler) Rename(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceFromContext(r.Context())

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len([]rune(name)) > maxPlayerNameLength {
		respondWithError(w, http.StatusBadRequest, "Invalid player name", "", nil)
		return
	}

	profile, err := h.profiles.Rename(deviceID, name)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to rename player", "Error renaming player", err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// UpdateSettings replaces the player settings
func (h *ProfileHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceFromContext(r.Context())

	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}
	if settings.Theme != "light" && settings.Theme != "dark" {
		respondWithError(w, http.StatusBadRequest, "Invalid theme", "", nil)
		return
	}

	profile, err := h.profiles.UpdateSettings(deviceID, settings)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save settings", "Error saving settings", err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile.Settings)
}

// GetWorlds returns the kingdom map with per-world progress
func (h *ProfileHandler) GetWorlds(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceFromContext(r.Context())
	profile := h.profiles.Load(deviceID)
	respondWithJSON(w, http.StatusOK, worldViews(profile))
}
