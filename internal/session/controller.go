// Package session drives a single play-through of a world: question
// progression, running score, hints and the one-shot completion commit.
package session

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"wordkingdom/internal/engine"
	"wordkingdom/internal/models"
)

// Session error taxonomy. Locked worlds and empty stories are user
// recoverable; invalid state means a caller protocol bug.
var (
	ErrWorldLocked  = errors.New("world is locked")
	ErrNoQuestions  = errors.New("world has no questions")
	ErrInvalidState = errors.New("invalid session state for this action")
)

// Phase is the controller's position in its state machine
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota
	PhaseFeedback
	PhaseFinished
)

// QuestionSource provides the ordered question sequence for a world
type QuestionSource interface {
	GetQuestions(worldKey models.WorldKey) []models.Question
}

// Controller is the ephemeral state machine for one world attempt. It is
// created on start, discarded on finish or abandonment, and never touches
// the profile itself; the completion result is the only output. Methods
// are safe for concurrent use: the same device can fire overlapping
// requests, and only one may win each transition.
type Controller struct {
	ID       string
	WorldKey models.WorldKey

	mu             sync.Mutex
	questions      []models.Question
	index          int
	score          int
	correctAnswers int
	hintsUsed      int
	hintShown      bool
	phase          Phase
	committed      bool

	// point-pool deltas accumulated for the commit
	spellingPoints    int
	imaginationPoints int
	storyCoins        int

	policy    engine.Policy
	startedAt time.Time
}

// Start begins a session for a world. The world must be unlocked and
// must have questions; counters begin at zero, order is as authored.
func Start(profile *models.PlayerProfile, source QuestionSource, worldKey models.WorldKey) (*Controller, error) {
	world := profile.World(worldKey)
	if world == nil || !world.Unlocked {
		return nil, ErrWorldLocked
	}

	questions := source.GetQuestions(worldKey)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	return &Controller{
		ID:        uuid.New().String(),
		WorldKey:  worldKey,
		questions: questions,
		phase:     PhaseAwaitingAnswer,
		policy: engine.Policy{
			Adaptive:   profile.Settings.AdaptiveDifficulty,
			Difficulty: world.Difficulty,
		},
		startedAt: time.Now(),
	}, nil
}

// Current returns the question the session is on
func (c *Controller) Current() models.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current()
}

// current expects c.mu to be held
func (c *Controller) current() models.Question {
	return c.questions[c.index]
}

// Phase returns the controller's current phase
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Score returns the running session score
func (c *Controller) Score() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.score
}

// Progress reports the 1-based question number and the total count
func (c *Controller) Progress() (current, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index + 1, len(c.questions)
}

// HintsUsed returns how many hints were charged this session
func (c *Controller) HintsUsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hintsUsed
}

// TimeLimit returns the per-question time limit for the active policy.
// The controller does not enforce it; timing belongs to the client.
func (c *Controller) TimeLimit() time.Duration {
	return time.Duration(c.policy.Difficulty.Params().TimeLimitSeconds) * time.Second
}

// AnswerResult describes the outcome of a submitted answer
type AnswerResult struct {
	Correct      bool
	CorrectIndex int
	Reward       int
	Score        int
	LastQuestion bool
}

// SubmitAnswer scores a multiple-choice answer and moves to feedback.
// Submitting twice without advancing, or answering the creative writing
// question this way, is a protocol violation.
func (c *Controller) SubmitAnswer(selectedIndex int) (AnswerResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseAwaitingAnswer {
		return AnswerResult{}, ErrInvalidState
	}
	question := c.current()
	if question.IsCreative() {
		return AnswerResult{}, ErrInvalidState
	}

	isCorrect := selectedIndex == question.CorrectIndex
	reward := engine.AnswerReward(question.Type, isCorrect, c.policy)
	if isCorrect {
		c.correctAnswers++
		c.score += reward.Score
		switch reward.Pool {
		case engine.PoolSpelling:
			c.spellingPoints += reward.Score
		case engine.PoolImagination:
			c.imaginationPoints += reward.Score
		}
	}

	c.phase = PhaseFeedback
	return AnswerResult{
		Correct:      isCorrect,
		CorrectIndex: question.CorrectIndex,
		Reward:       reward.Score,
		Score:        c.score,
		LastQuestion: c.index == len(c.questions)-1,
	}, nil
}

// RequestHint reveals the current question's hint, charging the policy's
// penalty exactly once per question. Repeat calls return the hint again
// without charging (idempotent, not an error).
func (c *Controller) RequestHint() (hint string, penalty int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseAwaitingAnswer {
		return "", 0, ErrInvalidState
	}

	question := c.current()
	if c.hintShown {
		return question.Hint, 0, nil
	}

	c.hintShown = true
	c.hintsUsed++
	penalty = engine.HintPenalty(c.policy)
	c.score -= penalty
	if c.score < 0 {
		c.score = 0
	}
	return question.Hint, penalty, nil
}

// Skip moves to the next question without scoring. On the final question
// it is a no-op, matching the client-side guard in the original game.
func (c *Controller) Skip() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseAwaitingAnswer || c.index >= len(c.questions)-1 {
		return false
	}
	c.index++
	c.hintShown = false
	return true
}

// Advance moves from feedback to the next question, or to Finished after
// the last one. The caller decides when (UI-controlled delay).
func (c *Controller) Advance() (Phase, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseFeedback {
		return c.phase, ErrInvalidState
	}
	if c.index >= len(c.questions)-1 {
		c.phase = PhaseFinished
		return c.phase, nil
	}
	c.index++
	c.hintShown = false
	c.phase = PhaseAwaitingAnswer
	return c.phase, nil
}

// StoryResult describes a scored creative story
type StoryResult struct {
	Score int
	Coins int
}

// SubmitStory scores a creative-writing submission, credits imagination
// points and the flat coin bonus, and ends the session immediately;
// creative questions are the final item of their world by content design.
func (c *Controller) SubmitStory(text string) (StoryResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseAwaitingAnswer {
		return StoryResult{}, ErrInvalidState
	}
	if !c.current().IsCreative() {
		return StoryResult{}, ErrInvalidState
	}

	raw, err := engine.CreativeScore(text, engine.CreativeKeywords)
	if err != nil {
		return StoryResult{}, err
	}

	storyScore := int(math.Floor(raw))
	c.correctAnswers++
	c.score += storyScore
	c.imaginationPoints += storyScore
	c.storyCoins = engine.StoryCoinBonus
	c.phase = PhaseFinished

	return StoryResult{Score: storyScore, Coins: engine.StoryCoinBonus}, nil
}

// Finish assembles the atomic completion result. Valid exactly once, in
// the Finished phase; a second call fails so a duplicate request can
// never commit the same completion twice. Committing the result to the
// profile is the caller's job.
func (c *Controller) Finish() (models.CompletionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseFinished || c.committed {
		return models.CompletionResult{}, ErrInvalidState
	}
	c.committed = true

	accuracy := 0.0
	if len(c.questions) > 0 {
		accuracy = float64(c.correctAnswers) / float64(len(c.questions))
	}

	starsEarned := engine.StarsEarned(accuracy)
	scoreBonus, coinBonus := engine.PerfectBonus(starsEarned)
	finalScore := c.score + scoreBonus

	// The difficulty tier only moves while adaptive difficulty is on
	newDifficulty := c.policy.Difficulty
	if c.policy.Adaptive {
		newDifficulty = engine.NextDifficulty(c.policy.Difficulty, accuracy)
	}

	return models.CompletionResult{
		WorldKey:          c.WorldKey,
		StarsEarned:       starsEarned,
		FinalScore:        finalScore,
		Accuracy:          accuracy,
		ExpEarned:         engine.ExperienceForCompletion(starsEarned, finalScore),
		CoinsEarned:       coinBonus + starsEarned*engine.StarCoinReward + c.storyCoins,
		SpellingPoints:    c.spellingPoints,
		ImaginationPoints: c.imaginationPoints,
		DurationSeconds:   int(time.Since(c.startedAt).Seconds()),
		NewDifficulty:     newDifficulty,
	}, nil
}
