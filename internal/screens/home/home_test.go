package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/router"
	"github.com/quizforge/quizforge/internal/screen"
)

// stubGenerator satisfies quizgen.Generator without producing anything.
type stubGenerator struct{}

func (stubGenerator) GenerateBatch(context.Context, quizgen.Params) (quiz.QuestionBatch, error) {
	return quiz.QuestionBatch{}, nil
}

func TestHomeScreen_Title(t *testing.T) {
	s := New(stubGenerator{}, nil, ledger.New())
	if s.Title() != "Home" {
		t.Errorf("Title = %q, want %q", s.Title(), "Home")
	}
}

func TestHomeScreen_View(t *testing.T) {
	s := New(stubGenerator{}, nil, ledger.New())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty home view")
	}
}

func TestHomeScreen_StartDisabledWithoutGenerator(t *testing.T) {
	s := New(nil, nil, ledger.New())

	// With Start disabled the first selectable item is Analytics.
	var scr screen.Screen = s
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from the menu")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "API key") {
		t.Error("expected hint about missing API key")
	}
}

func TestHomeScreen_StartPushesSetup(t *testing.T) {
	s := New(stubGenerator{}, nil, ledger.New())

	var scr screen.Screen = s
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from the menu")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestHomeScreen_QuitItem(t *testing.T) {
	s := New(stubGenerator{}, nil, ledger.New())

	var scr screen.Screen = s
	scr, _ = scr.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	scr, _ = scr.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
