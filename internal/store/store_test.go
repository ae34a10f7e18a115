package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleQuiz(sessionID, topic string) QuizEventData {
	return QuizEventData{
		SessionID:  sessionID,
		Topic:      topic,
		Difficulty: "Medium",
		Score:      3,
		Total:      5,
		Answered:   5,
		Accuracy:   0.6,
		Answers: []AnswerData{
			{QuestionIndex: 0, Prompt: "Q1?", CorrectLabel: "A", ChosenLabel: "A", Correct: true},
			{QuestionIndex: 1, Prompt: "Q2?", CorrectLabel: "B", ChosenLabel: "C", Correct: false},
		},
	}
}

func TestQuizAppendAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendQuizResult(ctx, sampleQuiz("s1", "Calculus")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendQuizResult(ctx, sampleQuiz("s2", "Biology")); err != nil {
		t.Fatalf("append: %v", err)
	}

	history, err := repo.QuizHistory(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].Topic != "Calculus" || history[1].Topic != "Biology" {
		t.Error("history not in append order")
	}
	if history[0].Sequence >= history[1].Sequence {
		t.Error("sequences not increasing")
	}
	if len(history[0].Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(history[0].Answers))
	}
	if history[0].Answers[1].ChosenLabel != "C" || history[0].Answers[1].Correct {
		t.Errorf("answer round-trip broken: %+v", history[0].Answers[1])
	}
}

func TestLatestQuizForTopic(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	none, err := repo.LatestQuizForTopic(ctx, "Calculus")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if none != nil {
		t.Fatal("expected nil for unseen topic")
	}

	first := sampleQuiz("s1", "Calculus")
	if err := repo.AppendQuizResult(ctx, first); err != nil {
		t.Fatal(err)
	}
	second := sampleQuiz("s2", "calculus")
	second.Score = 5
	second.Accuracy = 1.0
	if err := repo.AppendQuizResult(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := repo.LatestQuizForTopic(ctx, "CALCULUS")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a match")
	}
	if got.SessionID != "s2" || got.Score != 5 {
		t.Errorf("got session %s score %d, want the most recent", got.SessionID, got.Score)
	}
}

func TestQuizHistoryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s3"} {
		if err := repo.AppendQuizResult(ctx, sampleQuiz(id, "Math")); err != nil {
			t.Fatal(err)
		}
	}

	history, err := repo.QuizHistory(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Errorf("limited history length = %d, want 2", len(history))
	}
}

func TestLLMRequestAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "quiz_generation",
		InputTokens:  500,
		OutputTokens: 1200,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "[system]\nprompt",
		ResponseBody: "[[...]]",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	reqs, err := repo.LLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("requests = %d, want 1", len(reqs))
	}
	if reqs[0].Purpose != "quiz_generation" || reqs[0].OutputTokens != 1200 {
		t.Errorf("record round-trip broken: %+v", reqs[0])
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for range 2 {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "anthropic", Model: "model-a",
			InputTokens: 100, OutputTokens: 200, Success: true,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "model-b",
		InputTokens: 50, OutputTokens: 60, Success: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(usage) != 2 {
		t.Fatalf("models = %d, want 2", len(usage))
	}
	// Sorted by model name.
	if usage[0].Model != "model-a" || usage[0].Requests != 2 || usage[0].InputTokens != 200 {
		t.Errorf("model-a usage = %+v", usage[0])
	}
	if usage[1].Model != "model-b" || usage[1].OutputTokens != 60 {
		t.Errorf("model-b usage = %+v", usage[1])
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := range 5 {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if i > 0 && seq != last+1 {
			t.Errorf("sequence jumped from %d to %d", last, seq)
		}
		last = seq
	}
}
