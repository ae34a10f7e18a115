package quizgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/session"
)

// Question count bounds for a single batch.
const (
	MinQuestions = 3
	MaxQuestions = 10
)

// Params describes one batch generation request.
type Params struct {
	Topic      string
	Difficulty quiz.Difficulty
	Count      int

	// History is prior performance for this user, serialized into the
	// prompt so the model can bias toward weak areas. Advisory only.
	History []session.Result
}

// Validate checks the request bounds before any service call is made.
// Invalid parameters fail fast rather than being clamped.
func (p Params) Validate() error {
	if strings.TrimSpace(p.Topic) == "" {
		return generationErr("topic must not be empty", nil)
	}
	if !p.Difficulty.Valid() {
		return generationErr(fmt.Sprintf("unknown difficulty %q", p.Difficulty), nil)
	}
	if p.Count < MinQuestions || p.Count > MaxQuestions {
		return generationErr(fmt.Sprintf("count %d out of range [%d, %d]", p.Count, MinQuestions, MaxQuestions), nil)
	}
	return nil
}

// Generator produces validated question batches.
type Generator interface {
	GenerateBatch(ctx context.Context, p Params) (quiz.QuestionBatch, error)
}
