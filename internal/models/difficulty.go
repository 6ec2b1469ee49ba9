package models

// Difficulty is an adaptive difficulty tier for a world
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// DifficultyOrder lists tiers from easiest to hardest
var DifficultyOrder = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// DifficultyParams holds the tuning values attached to a difficulty tier
type DifficultyParams struct {
	TimeLimitSeconds int
	HintPenalty      int
	ScoreMultiplier  float64
}

var difficultyParams = map[Difficulty]DifficultyParams{
	DifficultyEasy:   {TimeLimitSeconds: 180, HintPenalty: 5, ScoreMultiplier: 1},
	DifficultyMedium: {TimeLimitSeconds: 120, HintPenalty: 10, ScoreMultiplier: 1.5},
	DifficultyHard:   {TimeLimitSeconds: 90, HintPenalty: 15, ScoreMultiplier: 2},
}

// Params returns the tuning values for the tier. Unknown tiers fall back
// to EASY, matching how the original data treated missing difficulty.
func (d Difficulty) Params() DifficultyParams {
	if p, ok := difficultyParams[d]; ok {
		return p
	}
	return difficultyParams[DifficultyEasy]
}

// Valid reports whether d is one of the known tiers
func (d Difficulty) Valid() bool {
	_, ok := difficultyParams[d]
	return ok
}
