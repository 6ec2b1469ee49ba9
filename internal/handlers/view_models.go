package handlers

import (
	"wordkingdom/internal/engine"
	"wordkingdom/internal/models"
	"wordkingdom/internal/session"
)

// QuestionView is the client-facing shape of a question. The correct
// index and the hint never ride along; hints are paid for explicitly.
type QuestionView struct {
	ID      string              `json:"id"`
	Text    string              `json:"text"`
	Options []string            `json:"options,omitempty"`
	Type    models.QuestionType `json:"type"`
}

func newQuestionView(q models.Question) QuestionView {
	return QuestionView{
		ID:      q.ID,
		Text:    q.Text,
		Options: q.Options,
		Type:    q.Type,
	}
}

// SessionView describes the live session state for the client
type SessionView struct {
	SessionID        string       `json:"sessionId"`
	World            string       `json:"world"`
	Question         QuestionView `json:"question"`
	QuestionNumber   int          `json:"questionNumber"`
	TotalQuestions   int          `json:"totalQuestions"`
	Score            int          `json:"score"`
	TimeLimitSeconds int          `json:"timeLimitSeconds"`
}

func newSessionView(ctrl *session.Controller) SessionView {
	current, total := ctrl.Progress()
	return SessionView{
		SessionID:        ctrl.ID,
		World:            string(ctrl.WorldKey),
		Question:         newQuestionView(ctrl.Current()),
		QuestionNumber:   current,
		TotalQuestions:   total,
		Score:            ctrl.Score(),
		TimeLimitSeconds: int(ctrl.TimeLimit().Seconds()),
	}
}

// WorldView is one entry of the kingdom map
type WorldView struct {
	Key        models.WorldKey   `json:"key"`
	Name       string            `json:"name"`
	Unlocked   bool              `json:"unlocked"`
	Completed  bool              `json:"completed"`
	Stars      int               `json:"stars"`
	BestScore  int               `json:"bestScore"`
	Difficulty models.Difficulty `json:"difficulty"`
}

func worldViews(profile *models.PlayerProfile) []WorldView {
	views := make([]WorldView, 0, len(models.WorldOrder))
	for _, key := range models.WorldOrder {
		world := profile.World(key)
		if world == nil {
			continue
		}
		views = append(views, WorldView{
			Key:        key,
			Name:       models.WorldNames[key],
			Unlocked:   world.Unlocked,
			Completed:  world.Completed,
			Stars:      world.Stars,
			BestScore:  world.BestScore,
			Difficulty: world.Difficulty,
		})
	}
	return views
}

// ProfileView bundles the profile with derived level progress
type ProfileView struct {
	Profile   *models.PlayerProfile `json:"profile"`
	LevelInfo engine.LevelInfo      `json:"levelInfo"`
	ShareText string                `json:"shareText"`
}
