package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"wordkingdom/internal/models"
	"wordkingdom/internal/store"
)

// stubSource serves a fixed question list for any world key
type stubSource struct {
	questions []models.Question
}

func (s stubSource) GetQuestions(models.WorldKey) []models.Question {
	return s.questions
}

func spellingQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			ID:           "q",
			Text:         "اختر الإجابة",
			Options:      []string{"أ", "ب"},
			CorrectIndex: 0,
			Hint:         "تلميح",
			Type:         models.QuestionSpelling,
		}
	}
	return questions
}

func newTestProfile() *models.PlayerProfile {
	return store.NewDefaultProfile()
}

func TestStartLockedWorld(t *testing.T) {
	profile := newTestProfile()

	ctrl, err := Start(profile, stubSource{questions: spellingQuestions(5)}, models.WorldTaa)
	if !errors.Is(err, ErrWorldLocked) {
		t.Fatalf("Start(locked world) error = %v, want ErrWorldLocked", err)
	}
	if ctrl != nil {
		t.Fatal("Start(locked world) returned a controller")
	}
}

func TestStartEmptyWorld(t *testing.T) {
	profile := newTestProfile()

	_, err := Start(profile, stubSource{}, models.WorldHamzat)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("Start(empty world) error = %v, want ErrNoQuestions", err)
	}
}

func TestPerfectRunWithoutAdaptive(t *testing.T) {
	profile := newTestProfile()
	profile.Settings.AdaptiveDifficulty = false

	ctrl, err := Start(profile, stubSource{questions: spellingQuestions(10)}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	for i := 0; i < 10; i++ {
		result, err := ctrl.SubmitAnswer(0)
		if err != nil {
			t.Fatalf("SubmitAnswer(question %d) error: %v", i, err)
		}
		if !result.Correct {
			t.Fatalf("SubmitAnswer(question %d) marked incorrect", i)
		}
		if _, err := ctrl.Advance(); err != nil {
			t.Fatalf("Advance(question %d) error: %v", i, err)
		}
	}

	if ctrl.Phase() != PhaseFinished {
		t.Fatalf("phase = %v, want finished", ctrl.Phase())
	}

	completion, err := ctrl.Finish()
	if err != nil {
		t.Fatalf("Finish() error: %v", err)
	}

	if completion.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", completion.Accuracy)
	}
	if completion.StarsEarned != 3 {
		t.Errorf("stars = %d, want 3", completion.StarsEarned)
	}
	// 100 base score plus the 50 perfect bonus
	if completion.FinalScore != 150 {
		t.Errorf("final score = %d, want 150", completion.FinalScore)
	}
	// 25 perfect coins plus 10 per star
	if completion.CoinsEarned != 55 {
		t.Errorf("coins = %d, want 55", completion.CoinsEarned)
	}
	if completion.SpellingPoints != 100 {
		t.Errorf("spelling points = %d, want 100", completion.SpellingPoints)
	}
	// adaptive difficulty is off, so the tier must not move
	if completion.NewDifficulty != models.DifficultyEasy {
		t.Errorf("new difficulty = %s, want EASY", completion.NewDifficulty)
	}
}

func TestHardDifficultyDoublesReward(t *testing.T) {
	profile := newTestProfile()
	profile.Worlds[models.WorldHamzat].Difficulty = models.DifficultyHard

	ctrl, err := Start(profile, stubSource{questions: spellingQuestions(3)}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	result, err := ctrl.SubmitAnswer(0)
	if err != nil {
		t.Fatalf("SubmitAnswer() error: %v", err)
	}
	if result.Reward != 20 {
		t.Errorf("reward = %d, want 20", result.Reward)
	}
}

func TestDoubleSubmitIsProtocolViolation(t *testing.T) {
	profile := newTestProfile()
	ctrl, err := Start(profile, stubSource{questions: spellingQuestions(3)}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if _, err := ctrl.SubmitAnswer(0); err != nil {
		t.Fatalf("first SubmitAnswer() error: %v", err)
	}
	if _, err := ctrl.SubmitAnswer(1); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("second SubmitAnswer() error = %v, want ErrInvalidState", err)
	}
}

func TestHintIdempotence(t *testing.T) {
	profile := newTestProfile()
	profile.Worlds[models.WorldHamzat].Difficulty = models.DifficultyMedium

	ctrl, err := Start(profile, stubSource{questions: spellingQuestions(3)}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	// Earn some score first so the penalty is visible
	if _, err := ctrl.SubmitAnswer(0); err != nil {
		t.Fatalf("SubmitAnswer() error: %v", err)
	}
	if _, err := ctrl.Advance(); err != nil {
		t.Fatalf("Advance() error: %v", err)
	}

	hint, penalty, err := ctrl.RequestHint()
	if err != nil {
		t.Fatalf("RequestHint() error: %v", err)
	}
	if hint == "" {
		t.Error("RequestHint() returned empty hint")
	}
	if penalty != 10 {
		t.Errorf("penalty = %d, want 10", penalty)
	}
	scoreAfterFirst := ctrl.Score()

	_, penalty, err = ctrl.RequestHint()
	if err != nil {
		t.Fatalf("repeat RequestHint() error: %v", err)
	}
	if penalty != 0 {
		t.Errorf("repeat penalty = %d, want 0", penalty)
	}
	if ctrl.Score() != scoreAfterFirst {
		t.Errorf("score changed on repeat hint: %d -> %d", scoreAfterFirst, ctrl.Score())
	}
	if ctrl.HintsUsed() != 1 {
		t.Errorf("hints used = %d, want 1", ctrl.HintsUsed())
	}
}

func TestHintResetsOnAdvance(t *testing.T) {
	profile := newTestProfile()
	ctrl, err := Start(profile, stubSource{questions: spellingQuestions(3)}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if _, _, err := ctrl.RequestHint(); err != nil {
		t.Fatalf("RequestHint() error: %v", err)
	}
	if _, err := ctrl.SubmitAnswer(0); err != nil {
		t.Fatalf("SubmitAnswer() error: %v", err)
	}
	if _, err := ctrl.Advance(); err != nil {
		t.Fatalf("Advance() error: %v", err)
	}

	// New question, hint may be charged again
	_, penalty, err := ctrl.RequestHint()
	if err != nil {
		t.Fatalf("RequestHint() on next question error: %v", err)
	}
	if penalty == 0 {
		t.Error("penalty on next question = 0, want charged")
	}
	if ctrl.HintsUsed() != 2 {
		t.Errorf("hints used = %d, want 2", ctrl.HintsUsed())
	}
}

func TestScoreNeverGoesNegative(t *testing.T) {
	profile := newTestProfile()
	ctrl, err := Start(profile, stubSource{questions: spellingQuestions(2)}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if _, _, err := ctrl.RequestHint(); err != nil {
		t.Fatalf("RequestHint() error: %v", err)
	}
	if ctrl.Score() != 0 {
		t.Errorf("score = %d, want clamped to 0", ctrl.Score())
	}
}

func TestSkipGuardsOnFinalQuestion(t *testing.T) {
	profile := newTestProfile()
	ctrl, err := Start(profile, stubSource{questions: spellingQuestions(2)}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if !ctrl.Skip() {
		t.Fatal("Skip() on first question = false, want true")
	}
	if ctrl.Skip() {
		t.Fatal("Skip() on final question = true, want no-op")
	}

	current, total := ctrl.Progress()
	if current != 2 || total != 2 {
		t.Errorf("progress = %d/%d, want 2/2", current, total)
	}
}

func TestCreativeStoryFlow(t *testing.T) {
	questions := spellingQuestions(1)
	questions = append(questions, models.Question{
		ID:   "story",
		Text: "أخبرني قصة",
		Hint: "استخدم خيالك",
		Type: models.QuestionCreative,
	})

	profile := newTestProfile()
	ctrl, err := Start(profile, stubSource{questions: questions}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if _, err := ctrl.SubmitAnswer(0); err != nil {
		t.Fatalf("SubmitAnswer() error: %v", err)
	}
	if _, err := ctrl.Advance(); err != nil {
		t.Fatalf("Advance() error: %v", err)
	}

	// Multiple-choice submission against a creative question is a bug
	if _, err := ctrl.SubmitAnswer(0); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("SubmitAnswer(creative) error = %v, want ErrInvalidState", err)
	}

	result, err := ctrl.SubmitStory("ذهب الملك في مغامرة بحثًا عن كنز مخبأ خلف جبل السحر البعيد")
	if err != nil {
		t.Fatalf("SubmitStory() error: %v", err)
	}
	if result.Coins != 10 {
		t.Errorf("story coins = %d, want 10", result.Coins)
	}
	if result.Score <= 0 {
		t.Errorf("story score = %d, want positive", result.Score)
	}
	if ctrl.Phase() != PhaseFinished {
		t.Errorf("phase after story = %v, want finished", ctrl.Phase())
	}

	completion, err := ctrl.Finish()
	if err != nil {
		t.Fatalf("Finish() error: %v", err)
	}
	if completion.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", completion.Accuracy)
	}
	if completion.ImaginationPoints != result.Score {
		t.Errorf("imagination points = %d, want %d", completion.ImaginationPoints, result.Score)
	}
	if completion.CoinsEarned < 10 {
		t.Errorf("coins = %d, want at least the story bonus", completion.CoinsEarned)
	}
}

func TestEmptyStoryRejectedWithoutStateChange(t *testing.T) {
	questions := []models.Question{{
		ID:   "story",
		Text: "أخبرني قصة",
		Type: models.QuestionCreative,
	}}

	profile := newTestProfile()
	ctrl, err := Start(profile, stubSource{questions: questions}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if _, err := ctrl.SubmitStory("   "); err == nil {
		t.Fatal("SubmitStory(blank) error = nil, want rejection")
	}
	if ctrl.Phase() != PhaseAwaitingAnswer {
		t.Errorf("phase after rejected story = %v, want awaiting answer", ctrl.Phase())
	}
	if ctrl.Score() != 0 {
		t.Errorf("score after rejected story = %d, want 0", ctrl.Score())
	}
}

func TestFinishRequiresFinishedPhase(t *testing.T) {
	profile := newTestProfile()
	ctrl, err := Start(profile, stubSource{questions: spellingQuestions(2)}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if _, err := ctrl.Finish(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Finish() mid-session error = %v, want ErrInvalidState", err)
	}
}

func TestFinishIsOneShot(t *testing.T) {
	profile := newTestProfile()
	ctrl, err := Start(profile, stubSource{questions: spellingQuestions(1)}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if _, err := ctrl.SubmitAnswer(0); err != nil {
		t.Fatalf("SubmitAnswer() error: %v", err)
	}
	if _, err := ctrl.Advance(); err != nil {
		t.Fatalf("Advance() error: %v", err)
	}

	if _, err := ctrl.Finish(); err != nil {
		t.Fatalf("first Finish() error: %v", err)
	}
	if _, err := ctrl.Finish(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("second Finish() error = %v, want ErrInvalidState", err)
	}
}

func TestDuplicateAdvanceRequestsCompleteOnce(t *testing.T) {
	profile := newTestProfile()
	ctrl, err := Start(profile, stubSource{questions: spellingQuestions(1)}, models.WorldHamzat)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if _, err := ctrl.SubmitAnswer(0); err != nil {
		t.Fatalf("SubmitAnswer() error: %v", err)
	}

	// A double-fired advance request races both goroutines through the
	// feedback-to-finished transition; only one may win, and only one may
	// walk away with a completion result.
	const requests = 16
	var advanced, finished int64
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ctrl.Advance(); err == nil {
				atomic.AddInt64(&advanced, 1)
			}
			if _, err := ctrl.Finish(); err == nil {
				atomic.AddInt64(&finished, 1)
			}
		}()
	}
	wg.Wait()

	if advanced != 1 {
		t.Errorf("successful Advance() calls = %d, want 1", advanced)
	}
	if finished != 1 {
		t.Errorf("successful Finish() calls = %d, want 1", finished)
	}
	if ctrl.Phase() != PhaseFinished {
		t.Errorf("phase = %v, want finished", ctrl.Phase())
	}
}
