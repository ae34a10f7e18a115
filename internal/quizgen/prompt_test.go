package quizgen

import (
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/session"
)

func TestBuildSystemPrompt_NoHistory(t *testing.T) {
	p := Params{Topic: "Photosynthesis", Difficulty: quiz.Hard, Count: 7}
	got := buildSystemPrompt(p)

	for _, want := range []string{
		"TOPIC: Photosynthesis",
		"DIFFICULTY: Hard",
		"NUMBER OF QUESTIONS: 7",
		"JSON array",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if strings.Contains(got, "performance history") {
		t.Error("empty history should not appear in the prompt")
	}
}

func TestHistoryContext(t *testing.T) {
	if got := historyContext(nil); got != "" {
		t.Errorf("historyContext(nil) = %q, want empty", got)
	}

	history := []session.Result{
		{Topic: "Algebra", Difficulty: quiz.Medium, Score: 3, Total: 5, Accuracy: 0.6},
		{Topic: "Geometry", Difficulty: quiz.Easy, Score: 5, Total: 5, Accuracy: 1.0},
	}
	got := historyContext(history)
	for _, want := range []string{"Algebra", "Geometry", "score=3/5", "accuracy=1.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("history context missing %q:\n%s", want, got)
		}
	}
}

func TestBuildUserPrompt(t *testing.T) {
	p := Params{Topic: "World War II", Difficulty: quiz.Easy, Count: 4}
	got := buildUserPrompt(p)
	want := "Generate 4 multiple-choice questions about World War II with Easy difficulty level."
	if got != want {
		t.Errorf("user prompt = %q", got)
	}
}
