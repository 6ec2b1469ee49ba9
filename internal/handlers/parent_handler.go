package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"wordkingdom/internal/security"
	"wordkingdom/internal/service"
	"wordkingdom/internal/store"
)

// ParentHandler implements the PIN-gated parent area: progress reports
// and report delivery by email
type ParentHandler struct {
	profiles *store.ProfileStore
	parental *store.ParentalStore
	gate     *security.ParentGate
	limiter  *security.RateLimiter
	reports  *service.ReportService
}

// NewParentHandler creates a new parent handler
func NewParentHandler(profiles *store.ProfileStore, parental *store.ParentalStore, gate *security.ParentGate, reports *service.ReportService) *ParentHandler {
	return &ParentHandler{
		profiles: profiles,
		parental: parental,
		gate:     gate,
		limiter:  security.NewRateLimiter(pinAttemptLimit, pinAttemptWindow),
		reports:  reports,
	}
}

// SetPIN sets the parental PIN. Changing an existing PIN requires the
// parent area to be unlocked first, so a child cannot overwrite it.
func (h *ParentHandler) SetPIN(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceFromContext(r.Context())

	var req struct {
		PIN         string `json:"pin"`
		ReportEmail string `json:"reportEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	settings, err := h.parental.Load(deviceID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load parental settings", "Error loading parental settings", err)
		return
	}

	if settings.PINHash != "" {
		cookie, err := r.Cookie(ParentCookieName)
		if err != nil || h.gate.ValidateToken(cookie.Value, deviceID) != nil {
			respondWithError(w, http.StatusUnauthorized, "Unlock the parent area to change the PIN", "", nil)
			return
		}
	}

	hash, err := security.HashPIN(req.PIN)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "PIN must be at least 4 digits", "", nil)
		return
	}

	settings.PINHash = hash
	if email := strings.TrimSpace(req.ReportEmail); email != "" {
		settings.ReportEmail = email
	}
	if err := h.parental.Save(deviceID, settings); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save parental settings", "Error saving parental settings", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"pinSet": true})
}

// Unlock verifies the PIN and issues the parent token cookie. Attempts
// are rate limited per client IP.
func (h *ParentHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceFromContext(r.Context())

	if !h.limiter.Allow(security.GetClientIP(r)) {
		respondWithError(w, http.StatusTooManyRequests, "Too many attempts, try again later", "", nil)
		return
	}

	var req struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	settings, err := h.parental.Load(deviceID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load parental settings", "Error loading parental settings", err)
		return
	}
	if settings.PINHash == "" {
		respondWithError(w, http.StatusConflict, "No parental PIN is set", "", nil)
		return
	}

	if err := security.VerifyPIN(settings.PINHash, req.PIN); err != nil {
		respondWithError(w, http.StatusUnauthorized, "Incorrect PIN", "", nil)
		return
	}

	token, expiresAt, err := h.gate.IssueToken(deviceID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to unlock parent area", "Error issuing parent token", err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, ParentCookieName, token, expiresAt))
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"unlocked":  true,
		"expiresAt": expiresAt.Format(time.RFC3339),
	})
}

// Lock clears the parent token cookie
func (h *ParentHandler) Lock(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, security.CreateDeleteCookie(r, ParentCookieName))
	respondWithJSON(w, http.StatusOK, map[string]bool{"locked": true})
}

// GetReport returns the progress report as JSON
func (h *ParentHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceFromContext(r.Context())
	profile := h.profiles.Load(deviceID)
	respondWithJSON(w, http.StatusOK, h.reports.BuildReport(profile))
}

// EmailReport sends the progress report to the parent's email address.
// The body address wins over the stored one.
func (h *ParentHandler) EmailReport(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceFromContext(r.Context())

	// The body is optional; a missing address falls back to the stored one
	var req struct {
		Email string `json:"email"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	toEmail := strings.TrimSpace(req.Email)
	if toEmail == "" {
		settings, err := h.parental.Load(deviceID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load parental settings", "Error loading parental settings", err)
			return
		}
		toEmail = settings.ReportEmail
	}
	if toEmail == "" {
		respondWithError(w, http.StatusBadRequest, "No report email address configured", "", nil)
		return
	}

	profile := h.profiles.Load(deviceID)
	report := h.reports.BuildReport(profile)
	if err := h.reports.EmailReport(r.Context(), toEmail, report); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to send report", "Error sending report email", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"sent": true})
}
