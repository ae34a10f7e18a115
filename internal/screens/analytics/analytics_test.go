package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/session"
)

func testLedger() *ledger.Ledger {
	l := ledger.New()
	l.Append(session.Result{
		Topic:      "biology",
		Difficulty: quiz.Easy,
		Score:      4,
		Total:      5,
		Answered:   5,
		Accuracy:   0.8,
		Timestamp:  time.Now().Add(-time.Hour),
	})
	l.Append(session.Result{
		Topic:      "history",
		Difficulty: quiz.Hard,
		Score:      2,
		Total:      5,
		Answered:   5,
		Accuracy:   0.4,
		Timestamp:  time.Now(),
	})
	return l
}

func TestAnalyticsScreen_Title(t *testing.T) {
	s := New(ledger.New())
	if s.Title() != "Analytics" {
		t.Errorf("Title = %q, want %q", s.Title(), "Analytics")
	}
}

func TestAnalyticsScreen_EmptyState(t *testing.T) {
	s := New(ledger.New())
	view := s.View(80, 24)
	if !strings.Contains(view, "No quizzes yet") {
		t.Error("expected empty-state message")
	}
}

func TestAnalyticsScreen_ShowsTopics(t *testing.T) {
	s := New(testLedger())
	view := s.View(100, 40)
	if !strings.Contains(view, "biology") {
		t.Error("expected biology in by-topic table")
	}
	if !strings.Contains(view, "history") {
		t.Error("expected history in by-topic table")
	}
	if !strings.Contains(view, "2 quizzes") {
		t.Error("expected overall quiz count")
	}
}
