package store

import (
	"encoding/json"
	"fmt"

	"wordkingdom/internal/storage"
)

// ParentalSettings is device-level parental-control data. It lives under
// its own key so the child-facing profile payload never carries the PIN
// hash or the parent's email address.
type ParentalSettings struct {
	PINHash     string `json:"pinHash"`
	ReportEmail string `json:"reportEmail,omitempty"`
}

// ParentalStore persists parental-control data per device
type ParentalStore struct {
	kv storage.KV
}

// NewParentalStore creates a parental settings store
func NewParentalStore(kv storage.KV) *ParentalStore {
	return &ParentalStore{kv: kv}
}

// Load returns the parental settings for a device, zero-valued when unset
func (s *ParentalStore) Load(deviceID string) (ParentalSettings, error) {
	raw, ok, err := s.kv.Get(storage.SettingsKey(deviceID))
	if err != nil {
		return ParentalSettings{}, fmt.Errorf("failed to load parental settings: %w", err)
	}
	if !ok {
		return ParentalSettings{}, nil
	}

	var settings ParentalSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return ParentalSettings{}, fmt.Errorf("corrupted parental settings: %w", err)
	}
	return settings, nil
}

// Save persists the parental settings for a device
func (s *ParentalStore) Save(deviceID string, settings ParentalSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize parental settings: %w", err)
	}
	if err := s.kv.Set(storage.SettingsKey(deviceID), string(raw)); err != nil {
		return fmt.Errorf("failed to persist parental settings: %w", err)
	}
	return nil
}
