package models

// CompletionResult is the atomic outcome of a finished world session,
// assembled by the session controller and committed by the profile store
// in one transaction. Point-pool deltas accumulated during the session
// ride along so that the profile is only ever mutated at commit time.
type CompletionResult struct {
	WorldKey          WorldKey   `json:"worldKey"`
	StarsEarned       int        `json:"starsEarned"`
	FinalScore        int        `json:"finalScore"`
	Accuracy          float64    `json:"accuracy"`
	ExpEarned         int        `json:"expEarned"`
	CoinsEarned       int        `json:"coinsEarned"`
	SpellingPoints    int        `json:"spellingPoints"`
	ImaginationPoints int        `json:"imaginationPoints"`
	DurationSeconds   int        `json:"durationSeconds"`
	NewDifficulty     Difficulty `json:"newDifficulty"`
}
