package app

import (
	"context"
	"fmt"

	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/session"
	"github.com/quizforge/quizforge/internal/store"
)

// HydrateLedger rebuilds the in-memory performance ledger from persisted
// quiz events, preserving their sequence order.
func HydrateLedger(ctx context.Context, repo store.EventRepo) (*ledger.Ledger, error) {
	records, err := repo.QuizHistory(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}

	l := ledger.New()
	for _, rec := range records {
		l.Append(resultFromRecord(rec))
	}
	return l, nil
}

func resultFromRecord(rec store.QuizRecord) session.Result {
	outcomes := make([]session.QuestionOutcome, 0, len(rec.Answers))
	for _, a := range rec.Answers {
		outcomes = append(outcomes, session.QuestionOutcome{
			Index:        a.QuestionIndex,
			Prompt:       a.Prompt,
			CorrectLabel: quiz.Label(a.CorrectLabel),
			ChosenLabel:  quiz.Label(a.ChosenLabel),
			IsCorrect:    a.Correct,
		})
	}
	return session.Result{
		ID:          rec.SessionID,
		Topic:       rec.Topic,
		Difficulty:  quiz.Difficulty(rec.Difficulty),
		Score:       rec.Score,
		Total:       rec.Total,
		Answered:    rec.Answered,
		Accuracy:    rec.Accuracy,
		Timestamp:   rec.Timestamp,
		PerQuestion: outcomes,
	}
}
