package models

// QuestionType distinguishes the kinds of questions a world can contain
type QuestionType string

const (
	QuestionSpelling    QuestionType = "spelling"
	QuestionGrammar     QuestionType = "grammar"
	QuestionImagination QuestionType = "imagination"
	QuestionCreative    QuestionType = "creative_writing"
)

// Question is an immutable quiz item. Multiple-choice questions carry
// Options and CorrectIndex; creative writing questions carry neither and
// are answered with free text.
type Question struct {
	ID           string
	Text         string
	Options      []string
	CorrectIndex int
	Hint         string
	Type         QuestionType
}

// IsCreative reports whether the question is answered with free text
// rather than an option index.
func (q Question) IsCreative() bool {
	return q.Type == QuestionCreative
}
