package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"wordkingdom/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const DeviceContextKey ContextKey = "device"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	gate *security.ParentGate
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(gate *security.ParentGate) *Middleware {
	return &Middleware{gate: gate}
}

// WithDevice ensures the request carries a device identity cookie,
// minting one on first contact, and puts the device ID in the context.
func (m *Middleware) WithDevice(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := ""
		if cookie, err := r.Cookie(DeviceCookieName); err == nil && cookie.Value != "" {
			deviceID = cookie.Value
		}
		if deviceID == "" {
			deviceID = security.GenerateDeviceID()
			http.SetCookie(w, security.CreateSessionCookie(r, DeviceCookieName, deviceID,
				time.Now().Add(deviceCookieLifetime)))
		}

		ctx := context.WithValue(r.Context(), DeviceContextKey, deviceID)
		next(w, r.WithContext(ctx))
	}
}

// RequireParent is middleware that requires a valid parent token for the
// requesting device. It wraps WithDevice handlers, so the device ID is
// already in the context.
func (m *Middleware) RequireParent(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := GetDeviceFromContext(r.Context())
		if deviceID == "" {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "", nil)
			return
		}

		cookie, err := r.Cookie(ParentCookieName)
		if err != nil || cookie.Value == "" {
			respondWithError(w, http.StatusUnauthorized, "Parent area is locked", "", nil)
			return
		}
		if err := m.gate.ValidateToken(cookie.Value, deviceID); err != nil {
			http.SetCookie(w, security.CreateDeleteCookie(r, ParentCookieName))
			respondWithError(w, http.StatusUnauthorized, "Parent area is locked", "", nil)
			return
		}

		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetDeviceFromContext retrieves the device ID from the request context
func GetDeviceFromContext(ctx context.Context) string {
	deviceID, ok := ctx.Value(DeviceContextKey).(string)
	if !ok {
		return ""
	}
	return deviceID
}
