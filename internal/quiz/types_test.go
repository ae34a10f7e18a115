package quiz

import "testing"

func validOptions() [OptionCount]string {
	return [OptionCount]string{"London", "Berlin", "Paris", "Madrid"}
}

func TestNewQuestionRecord_Valid(t *testing.T) {
	q, err := NewQuestionRecord("What is the capital of France?", validOptions(), LabelC, "Paris is the capital of France.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CorrectOption() != "Paris" {
		t.Errorf("CorrectOption() = %q, want Paris", q.CorrectOption())
	}
}

func TestNewQuestionRecord_EmptyExplanationAllowed(t *testing.T) {
	if _, err := NewQuestionRecord("Q?", validOptions(), LabelA, ""); err != nil {
		t.Errorf("empty explanation should be allowed: %v", err)
	}
}

func TestNewQuestionRecord_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		options [OptionCount]string
		label   Label
	}{
		{"empty prompt", "", validOptions(), LabelA},
		{"empty option", "Q?", [OptionCount]string{"a", "", "c", "d"}, LabelA},
		{"bad label", "Q?", validOptions(), Label("E")},
		{"lowercase label", "Q?", validOptions(), Label("a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewQuestionRecord(tt.prompt, tt.options, tt.label, "x"); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLabelIndexMapping(t *testing.T) {
	for i, l := range Labels {
		if l.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", l, l.Index(), i)
		}
		if LabelAt(i) != l {
			t.Errorf("LabelAt(%d) = %s, want %s", i, LabelAt(i), l)
		}
	}
	if LabelAt(4) != "" {
		t.Error("LabelAt(4) should be empty")
	}
	if Label("X").Index() != -1 {
		t.Error("invalid label should map to -1")
	}
}

func TestBatchLen(t *testing.T) {
	var nilBatch *QuestionBatch
	if nilBatch.Len() != 0 {
		t.Error("nil batch should have length 0")
	}

	q, _ := NewQuestionRecord("Q?", validOptions(), LabelA, "")
	b := &QuestionBatch{Topic: "geography", Difficulty: Medium, Questions: []QuestionRecord{q}}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}
