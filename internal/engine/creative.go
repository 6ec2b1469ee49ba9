package engine

import (
	"errors"
	"strings"
)

// ErrEmptyStory is returned when a creative submission contains no text
var ErrEmptyStory = errors.New("story text is empty")

// CreativeKeywords are the bonus words a story is rewarded for using
var CreativeKeywords = []string{"خيال", "مغامرة", "ملك", "كنز", "سحر"}

const (
	storyLengthDivisor = 10
	storyLengthCap     = 20
	keywordBonus       = 5
)

// CreativeScore rates a free-text story: one point per ten characters up
// to twenty, plus five for each distinct bonus keyword it contains. The
// fractional value is kept; callers floor it when crediting points.
func CreativeScore(storyText string, bonusKeywords []string) (float64, error) {
	if strings.TrimSpace(storyText) == "" {
		return 0, ErrEmptyStory
	}

	score := float64(len([]rune(storyText))) / storyLengthDivisor
	if score > storyLengthCap {
		score = storyLengthCap
	}

	for _, keyword := range bonusKeywords {
		if strings.Contains(storyText, keyword) {
			score += keywordBonus
		}
	}

	return score, nil
}
