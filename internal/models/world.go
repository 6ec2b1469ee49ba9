package models

import "time"

// WorldKey identifies one of the fixed game worlds
type WorldKey string

const (
	WorldHamzat      WorldKey = "hamzat"
	WorldTaa         WorldKey = "taa"
	WorldAlif        WorldKey = "alif"
	WorldPunctuation WorldKey = "punctuation"
	WorldCreative    WorldKey = "creative"
)

// WorldOrder is the canonical unlock order of the worlds
var WorldOrder = []WorldKey{
	WorldHamzat,
	WorldTaa,
	WorldAlif,
	WorldPunctuation,
	WorldCreative,
}

// WorldNames maps world keys to their Arabic display names
var WorldNames = map[WorldKey]string{
	WorldHamzat:      "وادي الهمزات",
	WorldTaa:         "غابة التاءات",
	WorldAlif:        "جبل الألف اللينة",
	WorldPunctuation: "بحيرة علامات الترقيم",
	WorldCreative:    "قصر الخيال الإبداعي",
}

// NextWorld returns the world that follows the given one in canonical
// order, or "" if the key is unknown or already the last world.
func NextWorld(key WorldKey) WorldKey {
	for i, k := range WorldOrder {
		if k == key && i < len(WorldOrder)-1 {
			return WorldOrder[i+1]
		}
	}
	return ""
}

// ProgressRecord is one append-only entry in a world's progress history
type ProgressRecord struct {
	Date     time.Time `json:"date"`
	Accuracy float64   `json:"accuracy"`
	Stars    int       `json:"stars"`
	Score    int       `json:"score"`
}

// WorldProgress tracks a player's state for a single world
type WorldProgress struct {
	Name            string           `json:"name"`
	Unlocked        bool             `json:"unlocked"`
	Completed       bool             `json:"completed"`
	Stars           int              `json:"stars"`
	BestScore       int              `json:"bestScore"`
	Difficulty      Difficulty       `json:"difficulty"`
	Mastery         float64          `json:"mastery"`
	WeakAreas       []string         `json:"weakAreas"`
	ProgressHistory []ProgressRecord `json:"progressHistory"`
	LastPlayed      *time.Time       `json:"lastPlayed"`
}
