package setup

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/router"
	"github.com/quizforge/quizforge/internal/screen"
	"github.com/quizforge/quizforge/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeText(scr screen.Screen, text string) screen.Screen {
	for _, r := range text {
		scr, _ = scr.Update(keyPress(r))
	}
	return scr
}

func tab() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab}
}

func testSetupScreen(l *ledger.Ledger) *SetupScreen {
	if l == nil {
		l = ledger.New()
	}
	return New(nil, nil, l)
}

func TestSetupScreen_Title(t *testing.T) {
	s := testSetupScreen(nil)
	if s.Title() != "New Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "New Quiz")
	}
}

func TestSetupScreen_DefaultDifficultyIsMedium(t *testing.T) {
	s := testSetupScreen(nil)
	if got := quiz.Difficulties[s.difficulty]; got != quiz.Medium {
		t.Errorf("default difficulty = %s, want %s", got, quiz.Medium)
	}
}

func TestSetupScreen_RecommendsFromHistory(t *testing.T) {
	l := ledger.New()
	l.Append(session.Result{
		Topic:      "chemistry",
		Difficulty: quiz.Medium,
		Score:      9,
		Total:      10,
		Accuracy:   0.9,
		Timestamp:  time.Now(),
	})

	s := testSetupScreen(l)
	var scr screen.Screen = s
	scr = typeText(scr, "chemistry")
	scr, _ = scr.Update(tab())
	ss := scr.(*SetupScreen)

	if got := quiz.Difficulties[ss.difficulty]; got != quiz.Hard {
		t.Errorf("recommended difficulty = %s, want %s after 90%% on Medium", got, quiz.Hard)
	}
}

func TestSetupScreen_NoHistoryRecommendsMedium(t *testing.T) {
	s := testSetupScreen(nil)
	var scr screen.Screen = s
	scr = typeText(scr, "philosophy")
	scr, _ = scr.Update(tab())
	ss := scr.(*SetupScreen)

	if got := quiz.Difficulties[ss.difficulty]; got != quiz.Medium {
		t.Errorf("recommended difficulty = %s, want %s", got, quiz.Medium)
	}
}

func TestSetupScreen_DifficultySelection(t *testing.T) {
	s := testSetupScreen(nil)
	var scr screen.Screen = s
	scr = typeText(scr, "math")
	scr, _ = scr.Update(tab())
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	ss := scr.(*SetupScreen)

	if got := quiz.Difficulties[ss.difficulty]; got != quiz.Hard {
		t.Errorf("difficulty = %s, want %s after right arrow", got, quiz.Hard)
	}
}

func TestSetupScreen_StartRejectsEmptyTopic(t *testing.T) {
	s := testSetupScreen(nil)
	if cmd := s.start(); cmd != nil {
		t.Fatal("expected no command for an empty topic")
	}
	if s.errMsg == "" {
		t.Error("expected a validation error message")
	}
}

func TestSetupScreen_StartRejectsBadCount(t *testing.T) {
	s := testSetupScreen(nil)
	var scr screen.Screen = s
	scr = typeText(scr, "math")
	scr, _ = scr.Update(tab()) // difficulty
	scr, _ = scr.Update(tab()) // count
	scr = typeText(scr, "2")
	ss := scr.(*SetupScreen)

	if cmd := ss.start(); cmd != nil {
		t.Fatal("expected no command for an out-of-range count")
	}
	if ss.errMsg == "" {
		t.Error("expected a validation error message")
	}
}

func TestSetupScreen_StartPushesQuizScreen(t *testing.T) {
	s := testSetupScreen(nil)
	var scr screen.Screen = s
	scr = typeText(scr, "math")
	scr, _ = scr.Update(tab()) // difficulty
	scr, _ = scr.Update(tab()) // count
	scr = typeText(scr, "5")
	ss := scr.(*SetupScreen)

	cmd := ss.start()
	if cmd == nil {
		t.Fatalf("expected a push command, validation error: %q", ss.errMsg)
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
}
