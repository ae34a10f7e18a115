package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/router"
	"github.com/quizforge/quizforge/internal/session"
)

func testResult() session.Result {
	return session.Result{
		ID:         "test-session",
		Topic:      "astronomy",
		Difficulty: quiz.Medium,
		Score:      2,
		Total:      4,
		Answered:   3,
		Accuracy:   0.5,
		Timestamp:  time.Now(),
		PerQuestion: []session.QuestionOutcome{
			{Index: 0, Prompt: "Which planet is largest?", CorrectLabel: quiz.LabelA, ChosenLabel: quiz.LabelA, IsCorrect: true},
			{Index: 1, Prompt: "What is a light year?", CorrectLabel: quiz.LabelB, ChosenLabel: quiz.LabelC, IsCorrect: false},
			{Index: 2, Prompt: "Which star is closest?", CorrectLabel: quiz.LabelD, ChosenLabel: quiz.LabelD, IsCorrect: true},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult(), "")
	if s.Title() != "Quiz Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult(), "")
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "2/4") {
		t.Error("expected score in summary view")
	}
}

func TestSummaryScreen_ShowsSaveError(t *testing.T) {
	s := New(testResult(), "disk full")
	view := s.View(80, 24)
	if !strings.Contains(view, "disk full") {
		t.Error("expected save error in summary view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult(), "")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Fatalf("expected PopToRootMsg, got %T", cmd())
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testResult(), "")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc")
	}
}
