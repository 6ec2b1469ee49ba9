// Package questionbank provides the static, authored question sequences
// for each world. Content is read-only; order is the authored order.
package questionbank

import (
	"fmt"

	"wordkingdom/internal/models"
)

// Bank serves ordered question sequences per world
type Bank struct {
	questions map[models.WorldKey][]models.Question
}

// New builds the bank from the authored content
func New() *Bank {
	questions := make(map[models.WorldKey][]models.Question, len(worldQuestions))
	for key, items := range worldQuestions {
		qs := make([]models.Question, len(items))
		for i, q := range items {
			q.ID = fmt.Sprintf("%s-%d", key, i+1)
			qs[i] = q
		}
		questions[key] = qs
	}
	return &Bank{questions: questions}
}

// GetQuestions returns the ordered question sequence for a world.
// Unknown keys yield an empty sequence.
func (b *Bank) GetQuestions(worldKey models.WorldKey) []models.Question {
	qs := b.questions[worldKey]
	out := make([]models.Question, len(qs))
	copy(out, qs)
	return out
}
