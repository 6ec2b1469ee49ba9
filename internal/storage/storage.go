// Package storage defines the key-value persistence interface the game
// state is stored behind, plus the fixed logical keys.
package storage

import "fmt"

// KV is the persistence interface consumed by the stores. Get reports
// whether the key existed; a missing key is not an error.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

const (
	profileKeyPrefix  = "kingdom:player:"
	settingsKeyPrefix = "kingdom:settings:"

	// LeaderboardKey holds the serialized leaderboard, shared by all devices
	LeaderboardKey = "kingdom:leaderboard"
)

// ProfileKey returns the storage key for a device's player profile
func ProfileKey(deviceID string) string {
	return fmt.Sprintf("%s%s", profileKeyPrefix, deviceID)
}

// SettingsKey returns the storage key for a device's parental-control settings
func SettingsKey(deviceID string) string {
	return fmt.Sprintf("%s%s", settingsKeyPrefix, deviceID)
}
