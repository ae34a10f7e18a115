package session

import (
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
)

// AnswerEvent records the single scoring event for one question. It is
// created when the user first commits an answer and never mutated;
// revisiting a question cannot produce a second event.
type AnswerEvent struct {
	QuestionIndex int
	ChosenLabel   quiz.Label
	IsCorrect     bool
}

// QuestionOutcome is the per-question projection carried in a Result.
type QuestionOutcome struct {
	Index        int
	Prompt       string
	CorrectLabel quiz.Label
	ChosenLabel  quiz.Label
	IsCorrect    bool
}

// Result is the immutable record of one completed session, consumed by the
// performance ledger. Total is the full batch length even when the session
// was finished early; Answered counts the questions actually answered.
// Accuracy is Score/Total, so an abandoned quiz cannot reach 1.0.
type Result struct {
	ID          string
	Topic       string
	Difficulty  quiz.Difficulty
	Score       int
	Total       int
	Answered    int
	Accuracy    float64
	Timestamp   time.Time
	PerQuestion []QuestionOutcome
}
