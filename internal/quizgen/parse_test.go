package quizgen

import (
	"errors"
	"testing"

	"github.com/quizforge/quizforge/internal/quiz"
)

const validReply = `[
    ["What is the capital of France?", "London", "Berlin", "Paris", "Madrid", "C", "Paris is the capital city of France."],
    ["Which planet is closest to the sun?", "Earth", "Mercury", "Venus", "Mars", "B", "Mercury is the closest planet."],
    ["What is 2+2?", "3", "4", "5", "6", "B", "Basic arithmetic."]
]`

func TestParseBatch_CleanReply(t *testing.T) {
	batch, err := parseBatch(validReply, "General", quiz.Medium, 3)
	if err != nil {
		t.Fatalf("parseBatch: %v", err)
	}
	if batch.Len() != 3 {
		t.Fatalf("len = %d, want 3", batch.Len())
	}

	q := batch.Questions[0]
	if q.Prompt != "What is the capital of France?" {
		t.Errorf("prompt = %q", q.Prompt)
	}
	if q.CorrectLabel != quiz.LabelC {
		t.Errorf("correct label = %s, want C", q.CorrectLabel)
	}
	if q.CorrectOption() != "Paris" {
		t.Errorf("correct option = %q, want Paris", q.CorrectOption())
	}
}

func TestParseBatch_CodeFenced(t *testing.T) {
	fenced := "```json\n" + validReply + "\n```"
	batch, err := parseBatch(fenced, "General", quiz.Easy, 3)
	if err != nil {
		t.Fatalf("parseBatch: %v", err)
	}
	if batch.Len() != 3 {
		t.Errorf("len = %d, want 3", batch.Len())
	}
}

func TestParseBatch_EmbeddedInCommentary(t *testing.T) {
	wrapped := "Sure! Here are your questions:\n" + validReply + "\nLet me know if you need more."
	batch, err := parseBatch(wrapped, "General", quiz.Easy, 3)
	if err != nil {
		t.Fatalf("parseBatch: %v", err)
	}
	if batch.Len() != 3 {
		t.Errorf("len = %d, want 3", batch.Len())
	}
}

func TestParseBatch_TruncatesToCount(t *testing.T) {
	batch, err := parseBatch(validReply, "General", quiz.Medium, 3)
	if err != nil {
		t.Fatal(err)
	}
	if batch.Len() != 3 {
		t.Fatal("fixture broken")
	}

	// Asking for fewer than the reply contains drops the extras.
	// Count 3 is the floor, so extend the fixture instead.
	extended := `[
        ["Q1?", "a", "b", "c", "d", "A", ""],
        ["Q2?", "a", "b", "c", "d", "B", ""],
        ["Q3?", "a", "b", "c", "d", "C", ""],
        ["Q4?", "a", "b", "c", "d", "D", ""],
        ["Q5?", "a", "b", "c", "d", "A", ""]
    ]`
	batch, err = parseBatch(extended, "General", quiz.Medium, 3)
	if err != nil {
		t.Fatal(err)
	}
	if batch.Len() != 3 {
		t.Errorf("len = %d, want 3 after truncation", batch.Len())
	}
	if batch.Questions[2].Prompt != "Q3?" {
		t.Errorf("truncation kept the wrong entries: %q", batch.Questions[2].Prompt)
	}
}

func TestParseBatch_MalformedEntryFailsWholeBatch(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"six fields", `[["Q?", "a", "b", "c", "d", "A"]]`},
		{"eight fields", `[["Q?", "a", "b", "c", "d", "A", "x", "extra"]]`},
		{"non-string field", `[["Q?", "a", "b", "c", "d", 1, "x"]]`},
		{"entry not an array", `[{"prompt": "Q?"}]`},
		{"top level not an array of arrays", `["just", "strings"]`},
		{"bad label", `[["Q?", "a", "b", "c", "d", "E", "x"]]`},
		{"empty option", `[["Q?", "a", "", "c", "d", "A", "x"]]`},
		{"not json", `[this is not json]`},
		{"no brackets", `there is nothing here`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseBatch(tc.reply, "General", quiz.Medium, 5)
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("error = %v, want GenerationError", err)
			}
		})
	}
}

func TestParseBatch_OneBadEntryAmongGood(t *testing.T) {
	mixed := `[
        ["Q1?", "a", "b", "c", "d", "A", ""],
        ["broken", "a", "b"],
        ["Q3?", "a", "b", "c", "d", "C", ""]
    ]`
	_, err := parseBatch(mixed, "General", quiz.Medium, 3)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want GenerationError (no partial batches)", err)
	}
}

func TestExtractArray(t *testing.T) {
	got, err := extractArray("noise [1, 2] more noise")
	if err != nil || got != "[1, 2]" {
		t.Errorf("got %q, %v", got, err)
	}

	if _, err := extractArray("no array here"); err == nil {
		t.Error("expected error for missing brackets")
	}
}
