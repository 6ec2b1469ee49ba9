package engine

import (
	"math"

	"wordkingdom/internal/models"
)

// Reward and threshold constants for the progression rules
const (
	CorrectAnswerReward = 10
	PerfectScoreBonus   = 50
	PerfectCoinBonus    = 25
	StarCoinReward      = 10 // coins per star on completion
	StoryCoinBonus      = 10 // flat coins for a creative story

	Star1Threshold = 0.6
	Star2Threshold = 0.8
	Star3Threshold = 0.95

	MasteryThreshold  = 0.8
	WeaknessThreshold = 0.4

	XPPerStar    = 20
	XPPerLevel   = 100
	ScorePerXP   = 10 // one XP per 10 points of final score
)

// Policy bundles the adaptive difficulty inputs for a session so the
// reward and penalty functions read them from one place instead of
// consulting global settings.
type Policy struct {
	Adaptive   bool
	Difficulty models.Difficulty
}

// Multiplier returns the score multiplier the policy applies to rewards.
// With adaptive difficulty off every answer is worth its base value.
func (p Policy) Multiplier() float64 {
	if !p.Adaptive {
		return 1
	}
	return p.Difficulty.Params().ScoreMultiplier
}

// PointPool names which profile point category a reward credits
type PointPool int

const (
	PoolNone PointPool = iota
	PoolSpelling
	PoolImagination
)

// RewardDelta is the outcome of scoring a single answer
type RewardDelta struct {
	Score int
	Pool  PointPool
}

// AnswerReward computes the reward for an answered multiple-choice
// question. Incorrect answers earn nothing and touch no point pool.
// Grammar questions credit the spelling pool; they exercise the same
// written-mechanics skills as spelling items.
func AnswerReward(qType models.QuestionType, isCorrect bool, policy Policy) RewardDelta {
	if !isCorrect {
		return RewardDelta{}
	}

	score := int(math.Round(CorrectAnswerReward * policy.Multiplier()))

	pool := PoolNone
	switch qType {
	case models.QuestionSpelling, models.QuestionGrammar:
		pool = PoolSpelling
	case models.QuestionImagination:
		pool = PoolImagination
	}

	return RewardDelta{Score: score, Pool: pool}
}

// HintPenalty returns the score cost of revealing a hint. Hints are free
// when adaptive difficulty is disabled.
func HintPenalty(policy Policy) int {
	if !policy.Adaptive {
		return 0
	}
	return policy.Difficulty.Params().HintPenalty
}

// StarsEarned converts a session accuracy in [0,1] to a 0-3 star rating
func StarsEarned(accuracy float64) int {
	switch {
	case accuracy >= Star3Threshold:
		return 3
	case accuracy >= Star2Threshold:
		return 2
	case accuracy >= Star1Threshold:
		return 1
	default:
		return 0
	}
}

// PerfectBonus returns the extra score and coins for a three-star run
func PerfectBonus(starsEarned int) (scoreBonus, coinBonus int) {
	if starsEarned == 3 {
		return PerfectScoreBonus, PerfectCoinBonus
	}
	return 0, 0
}

// NextDifficulty promotes or demotes a world's difficulty tier based on
// session accuracy. Mastery is checked before weakness; the two
// thresholds cannot both match for a single accuracy value.
func NextDifficulty(current models.Difficulty, accuracy float64) models.Difficulty {
	idx := difficultyIndex(current)
	if accuracy >= MasteryThreshold && idx < len(models.DifficultyOrder)-1 {
		return models.DifficultyOrder[idx+1]
	}
	if accuracy <= WeaknessThreshold && idx > 0 {
		return models.DifficultyOrder[idx-1]
	}
	return models.DifficultyOrder[idx]
}

func difficultyIndex(d models.Difficulty) int {
	for i, tier := range models.DifficultyOrder {
		if tier == d {
			return i
		}
	}
	return 0
}

// UpdateAnalytics folds one session's accuracy into the running
// analytics snapshot. The improvement rate compares the new accuracy to
// the average before this session; the first session reports zero.
func UpdateAnalytics(prev models.Analytics, accuracy float64, worldKey models.WorldKey) models.Analytics {
	next := prev
	next.StrengthAreas = append([]models.WorldKey(nil), prev.StrengthAreas...)
	next.FocusAreas = append([]models.WorldKey(nil), prev.FocusAreas...)

	next.SessionsCount = prev.SessionsCount + 1
	next.AverageAccuracy = (prev.AverageAccuracy*float64(prev.SessionsCount) + accuracy) / float64(next.SessionsCount)
	if prev.SessionsCount > 0 {
		next.ImprovementRate = accuracy - prev.AverageAccuracy
	} else {
		next.ImprovementRate = 0
	}

	if accuracy >= MasteryThreshold {
		next.StrengthAreas = appendUnique(next.StrengthAreas, worldKey)
		next.FocusAreas = removeKey(next.FocusAreas, worldKey)
	} else if accuracy <= WeaknessThreshold {
		next.FocusAreas = appendUnique(next.FocusAreas, worldKey)
	}

	return next
}

func appendUnique(keys []models.WorldKey, key models.WorldKey) []models.WorldKey {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}

func removeKey(keys []models.WorldKey, key models.WorldKey) []models.WorldKey {
	filtered := keys[:0]
	for _, k := range keys {
		if k != key {
			filtered = append(filtered, k)
		}
	}
	return filtered
}

// ExperienceForCompletion returns the XP granted for a finished world
func ExperienceForCompletion(starsEarned, finalScore int) int {
	return starsEarned*XPPerStar + finalScore/ScorePerXP
}

// LevelInfo describes a player level derived from total experience
type LevelInfo struct {
	Level            int     `json:"level"`
	ProgressFraction float64 `json:"progressFraction"`
}

// LevelForExperience maps total XP to a level and the fractional
// progress toward the next one. Level 1 starts at zero XP.
func LevelForExperience(totalXP int) LevelInfo {
	return LevelInfo{
		Level:            totalXP/XPPerLevel + 1,
		ProgressFraction: float64(totalXP%XPPerLevel) / float64(XPPerLevel),
	}
}
