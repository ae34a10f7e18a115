package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/session"
)

func TestGenerateBatch_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validReply})
	gen := NewLLMGenerator(mock)

	batch, err := gen.GenerateBatch(context.Background(), Params{
		Topic:      "Geography",
		Difficulty: quiz.Medium,
		Count:      3,
	})
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}

	if batch.Topic != "Geography" || batch.Difficulty != quiz.Medium {
		t.Errorf("batch metadata = %q/%s", batch.Topic, batch.Difficulty)
	}
	if batch.Len() != 3 {
		t.Errorf("len = %d, want 3", batch.Len())
	}
	for i, q := range batch.Questions {
		if q.Prompt == "" {
			t.Errorf("question %d has empty prompt", i)
		}
		if q.CorrectOption() == "" {
			t.Errorf("question %d has no correct option", i)
		}
	}
}

func TestGenerateBatch_InvalidParams(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := NewLLMGenerator(mock)

	cases := []struct {
		name string
		p    Params
	}{
		{"empty topic", Params{Topic: "  ", Difficulty: quiz.Medium, Count: 5}},
		{"bad difficulty", Params{Topic: "Math", Difficulty: "Extreme", Count: 5}},
		{"count too low", Params{Topic: "Math", Difficulty: quiz.Medium, Count: 2}},
		{"count too high", Params{Topic: "Math", Difficulty: quiz.Medium, Count: 11}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gen.GenerateBatch(context.Background(), tc.p)
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("error = %v, want GenerationError", err)
			}
		})
	}

	// Validation failures never reach the provider.
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}

func TestGenerateBatch_ServiceError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	gen := NewLLMGenerator(mock)

	_, err := gen.GenerateBatch(context.Background(), Params{
		Topic:      "History",
		Difficulty: quiz.Easy,
		Count:      5,
	})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want GenerationError", err)
	}
	// The underlying provider error is preserved in the chain.
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("provider error not wrapped: %v", err)
	}
}

func TestGenerateBatch_PromptCarriesRequest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validReply})
	gen := NewLLMGenerator(mock)

	history := []session.Result{{
		Topic:      "Geography",
		Difficulty: quiz.Easy,
		Score:      2,
		Total:      5,
		Accuracy:   0.4,
		Timestamp:  time.Now(),
	}}

	_, err := gen.GenerateBatch(context.Background(), Params{
		Topic:      "Geography",
		Difficulty: quiz.Medium,
		Count:      3,
		History:    history,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]

	for _, want := range []string{"Geography", "Medium", "performance history"} {
		if !strings.Contains(req.System, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("messages = %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[0].Content, "3 multiple-choice questions") {
		t.Errorf("user prompt = %q", req.Messages[0].Content)
	}
}

func TestGenerateBatch_ShortReplyAccepted(t *testing.T) {
	// Fewer questions than requested is legitimate; callers handle it.
	short := `[["Q1?", "a", "b", "c", "d", "A", ""]]`
	mock := llm.NewMockProvider(llm.MockResponse{Text: short})
	gen := NewLLMGenerator(mock)

	batch, err := gen.GenerateBatch(context.Background(), Params{
		Topic:      "Math",
		Difficulty: quiz.Hard,
		Count:      5,
	})
	if err != nil {
		t.Fatal(err)
	}
	if batch.Len() != 1 {
		t.Errorf("len = %d, want 1", batch.Len())
	}
}
