package app

import (
	"testing"
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/store"
)

func TestResultFromRecord(t *testing.T) {
	ts := time.Now()
	rec := store.QuizRecord{
		Sequence:  7,
		Timestamp: ts,
		QuizEventData: store.QuizEventData{
			SessionID:  "abc",
			Topic:      "physics",
			Difficulty: "Hard",
			Score:      3,
			Total:      5,
			Answered:   4,
			Accuracy:   0.6,
			Answers: []store.AnswerData{
				{QuestionIndex: 0, Prompt: "p0", CorrectLabel: "A", ChosenLabel: "A", Correct: true},
				{QuestionIndex: 1, Prompt: "p1", CorrectLabel: "B", ChosenLabel: "C", Correct: false},
			},
		},
	}

	r := resultFromRecord(rec)

	if r.ID != "abc" || r.Topic != "physics" {
		t.Errorf("identity fields = %q/%q, want abc/physics", r.ID, r.Topic)
	}
	if r.Difficulty != quiz.Hard {
		t.Errorf("Difficulty = %s, want %s", r.Difficulty, quiz.Hard)
	}
	if r.Score != 3 || r.Total != 5 || r.Answered != 4 || r.Accuracy != 0.6 {
		t.Errorf("metrics = %d/%d answered %d acc %v", r.Score, r.Total, r.Answered, r.Accuracy)
	}
	if !r.Timestamp.Equal(ts) {
		t.Error("expected stored timestamp to be preserved")
	}
	if len(r.PerQuestion) != 2 {
		t.Fatalf("PerQuestion len = %d, want 2", len(r.PerQuestion))
	}
	if r.PerQuestion[1].ChosenLabel != quiz.LabelC || r.PerQuestion[1].IsCorrect {
		t.Errorf("unexpected second outcome: %+v", r.PerQuestion[1])
	}
}
