package handlers

import (
	"sync"

	"wordkingdom/internal/session"
)

// SessionRegistry holds the live play session per device. Sessions are
// ephemeral; a server restart abandons them and the player simply starts
// the world again.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session.Controller
}

// NewSessionRegistry creates an empty registry
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*session.Controller)}
}

// Get returns the device's active session, if any
func (r *SessionRegistry) Get(deviceID string) (*session.Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ctrl, ok := r.sessions[deviceID]
	return ctrl, ok
}

// Put stores the device's active session, replacing any abandoned one
func (r *SessionRegistry) Put(deviceID string, ctrl *session.Controller) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[deviceID] = ctrl
}

// Remove drops the device's active session
func (r *SessionRegistry) Remove(deviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, deviceID)
}
