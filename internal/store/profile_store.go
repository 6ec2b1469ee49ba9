package store

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"wordkingdom/internal/engine"
	"wordkingdom/internal/models"
	"wordkingdom/internal/storage"
)

// ProfileStore owns the persisted player aggregate. All reads go through
// Load and all writes through Save or ApplyCompletion, so a profile is
// never visible in a half-updated state.
type ProfileStore struct {
	kv       storage.KV
	notifier Notifier
}

// NewProfileStore creates a profile store over the given persistence
func NewProfileStore(kv storage.KV, notifier Notifier) *ProfileStore {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &ProfileStore{kv: kv, notifier: notifier}
}

// Load returns the profile for a device. A missing key (first run) or a
// corrupted stored value falls back to the default profile; corruption is
// logged but never surfaced to the player.
func (s *ProfileStore) Load(deviceID string) *models.PlayerProfile {
	raw, ok, err := s.kv.Get(storage.ProfileKey(deviceID))
	if err != nil {
		log.Printf("Error loading profile for device %s: %v", deviceID, err)
		return NewDefaultProfile()
	}
	if !ok {
		return NewDefaultProfile()
	}

	var profile models.PlayerProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		log.Printf("Corrupted profile for device %s, resetting to defaults: %v", deviceID, err)
		return NewDefaultProfile()
	}

	normalizeProfile(&profile)
	return &profile
}

// Save serializes and persists the profile
func (s *ProfileStore) Save(deviceID string, profile *models.PlayerProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	if err := s.kv.Set(storage.ProfileKey(deviceID), string(raw)); err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	return nil
}

// Rename updates the player name
func (s *ProfileStore) Rename(deviceID, name string) (*models.PlayerProfile, error) {
	profile := s.Load(deviceID)
	profile.Name = name
	if err := s.Save(deviceID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateSettings replaces the player settings
func (s *ProfileStore) UpdateSettings(deviceID string, settings models.Settings) (*models.PlayerProfile, error) {
	profile := s.Load(deviceID)
	profile.Settings = settings
	if err := s.Save(deviceID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ApplyCompletion commits the outcome of a finished world session as one
// logical transaction: world progress, difficulty, analytics, points,
// experience, coins and the next-world unlock all land together or not
// at all. Stars and best score never decrease on a replay.
func (s *ProfileStore) ApplyCompletion(deviceID string, result models.CompletionResult) (*models.PlayerProfile, error) {
	if result.StarsEarned < 0 || result.StarsEarned > 3 {
		return nil, fmt.Errorf("invalid stars earned: %d", result.StarsEarned)
	}
	if result.Accuracy < 0 || result.Accuracy > 1 {
		return nil, fmt.Errorf("invalid accuracy: %v", result.Accuracy)
	}

	profile := s.Load(deviceID)
	world := profile.World(result.WorldKey)
	if world == nil {
		return nil, fmt.Errorf("unknown world: %s", result.WorldKey)
	}

	now := time.Now()
	world.Completed = true
	if result.StarsEarned > world.Stars {
		world.Stars = result.StarsEarned
	}
	if result.FinalScore > world.BestScore {
		world.BestScore = result.FinalScore
	}
	world.Mastery = result.Accuracy
	world.LastPlayed = &now
	world.ProgressHistory = append(world.ProgressHistory, models.ProgressRecord{
		Date:     now,
		Accuracy: result.Accuracy,
		Stars:    result.StarsEarned,
		Score:    result.FinalScore,
	})
	world.Difficulty = result.NewDifficulty

	profile.Analytics = engine.UpdateAnalytics(profile.Analytics, result.Accuracy, result.WorldKey)
	profile.Analytics.TotalPlayTime += result.DurationSeconds

	profile.SpellingPoints += result.SpellingPoints
	profile.ImaginationPoints += result.ImaginationPoints
	profile.Coins += result.CoinsEarned

	oldLevel := profile.Level
	profile.Experience += result.ExpEarned
	profile.Level = engine.LevelForExperience(profile.Experience).Level

	unlockedWorld := s.unlockNextWorld(profile, result.WorldKey)

	if err := s.Save(deviceID, profile); err != nil {
		return nil, err
	}

	// Notifications go out only after the commit has landed
	if profile.Level > oldLevel {
		s.notifier.Notify(fmt.Sprintf("🎉 مبروك! لقد وصلت للمستوى %d", profile.Level))
	}
	if unlockedWorld != "" {
		s.notifier.Notify(fmt.Sprintf("✨ تم فتح العالم الجديد: %s", models.WorldNames[unlockedWorld]))
	}

	return profile, nil
}

// unlockNextWorld unlocks the world after the completed one. Returns the
// unlocked key, or "" when there is no next world or it was already open.
func (s *ProfileStore) unlockNextWorld(profile *models.PlayerProfile, completed models.WorldKey) models.WorldKey {
	nextKey := models.NextWorld(completed)
	if nextKey == "" {
		return ""
	}
	next := profile.World(nextKey)
	if next == nil || next.Unlocked {
		return ""
	}
	next.Unlocked = true
	return nextKey
}
