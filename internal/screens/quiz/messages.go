package quiz

import (
	qz "github.com/quizforge/quizforge/internal/quiz"
	sess "github.com/quizforge/quizforge/internal/session"
)

// batchReadyMsg carries the generated question batch, or the generation
// failure.
type batchReadyMsg struct {
	Batch *qz.QuestionBatch
	Err   error
}

// resultPersistedMsg reports the outcome of writing the finished quiz to
// the event store.
type resultPersistedMsg struct {
	Result sess.Result
	Err    error
}
