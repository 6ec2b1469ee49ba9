package store

import (
	"wordkingdom/internal/engine"
	"wordkingdom/internal/models"
)

// DefaultPlayerName is the name new explorers start with
const DefaultPlayerName = "المستكشف"

// NewDefaultProfile builds the profile a fresh device starts from: level
// one, no points, only the first world unlocked, adaptive difficulty on.
func NewDefaultProfile() *models.PlayerProfile {
	worlds := make(map[models.WorldKey]*models.WorldProgress, len(models.WorldOrder))
	for i, key := range models.WorldOrder {
		worlds[key] = &models.WorldProgress{
			Name:            models.WorldNames[key],
			Unlocked:        i == 0,
			Difficulty:      models.DifficultyEasy,
			WeakAreas:       []string{},
			ProgressHistory: []models.ProgressRecord{},
		}
	}

	return &models.PlayerProfile{
		Name:       DefaultPlayerName,
		Level:      1,
		Experience: 0,
		Worlds:     worlds,
		Settings: models.Settings{
			Sound:              true,
			Music:              true,
			AdaptiveDifficulty: true,
			ParentalMode:       false,
			Theme:              "light",
		},
		Analytics: models.Analytics{
			StrengthAreas: []models.WorldKey{},
			FocusAreas:    []models.WorldKey{},
		},
	}
}

// normalizeProfile repairs a loaded profile so partial or legacy data
// cannot leave the aggregate in an unusable shape.
func normalizeProfile(p *models.PlayerProfile) {
	if p.Name == "" {
		p.Name = DefaultPlayerName
	}
	if p.Worlds == nil {
		p.Worlds = make(map[models.WorldKey]*models.WorldProgress, len(models.WorldOrder))
	}
	for i, key := range models.WorldOrder {
		w := p.Worlds[key]
		if w == nil {
			w = &models.WorldProgress{Unlocked: i == 0}
			p.Worlds[key] = w
		}
		if w.Name == "" {
			w.Name = models.WorldNames[key]
		}
		if !w.Difficulty.Valid() {
			w.Difficulty = models.DifficultyEasy
		}
		if w.WeakAreas == nil {
			w.WeakAreas = []string{}
		}
		if w.ProgressHistory == nil {
			w.ProgressHistory = []models.ProgressRecord{}
		}
	}
	if p.Settings.Theme == "" {
		p.Settings.Theme = "light"
	}
	if p.Analytics.StrengthAreas == nil {
		p.Analytics.StrengthAreas = []models.WorldKey{}
	}
	if p.Analytics.FocusAreas == nil {
		p.Analytics.FocusAreas = []models.WorldKey{}
	}
	if p.Experience < 0 {
		p.Experience = 0
	}
	// Level is derived state; recompute it so a stored value that drifted
	// from the experience total cannot survive a load.
	p.Level = engine.LevelForExperience(p.Experience).Level
}
