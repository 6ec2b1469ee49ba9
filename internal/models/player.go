package models

// Settings holds the player-controlled preferences
type Settings struct {
	Sound              bool   `json:"sound"`
	Music              bool   `json:"music"`
	AdaptiveDifficulty bool   `json:"adaptiveDifficulty"`
	ParentalMode       bool   `json:"parentalMode"`
	Theme              string `json:"theme"` // "light" or "dark"
}

// Analytics accumulates cross-session learning statistics
type Analytics struct {
	TotalPlayTime   int        `json:"totalPlayTime"` // seconds
	SessionsCount   int        `json:"sessionsCount"`
	AverageAccuracy float64    `json:"averageAccuracy"`
	ImprovementRate float64    `json:"improvementRate"`
	StrengthAreas   []WorldKey `json:"strengthAreas"`
	FocusAreas      []WorldKey `json:"focusAreas"`
}

// PlayerProfile is the persisted player aggregate, one per device
type PlayerProfile struct {
	Name              string                       `json:"name"`
	Level             int                          `json:"level"`
	Experience        int                          `json:"experience"`
	SpellingPoints    int                          `json:"spellingPoints"`
	ImaginationPoints int                          `json:"imaginationPoints"`
	Coins             int                          `json:"coins"`
	Worlds            map[WorldKey]*WorldProgress  `json:"worlds"`
	Settings          Settings                     `json:"settings"`
	Analytics         Analytics                    `json:"analytics"`
}

// TotalPoints is the sum of both point pools
func (p *PlayerProfile) TotalPoints() int {
	return p.SpellingPoints + p.ImaginationPoints
}

// TotalStars sums the stars earned across all worlds
func (p *PlayerProfile) TotalStars() int {
	total := 0
	for _, w := range p.Worlds {
		if w != nil {
			total += w.Stars
		}
	}
	return total
}

// World returns the progress entry for a world key, or nil if unknown
func (p *PlayerProfile) World(key WorldKey) *WorldProgress {
	return p.Worlds[key]
}
