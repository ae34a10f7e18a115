package quiz

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quizforge/quizforge/internal/ledger"
	qz "github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/router"
	"github.com/quizforge/quizforge/internal/screen"
	sess "github.com/quizforge/quizforge/internal/session"
	"github.com/quizforge/quizforge/internal/store"
)

// mockGenerator implements quizgen.Generator for testing.
type mockGenerator struct {
	batch qz.QuestionBatch
	err   error
}

func (m *mockGenerator) GenerateBatch(_ context.Context, _ quizgen.Params) (qz.QuestionBatch, error) {
	if m.err != nil {
		return qz.QuestionBatch{}, m.err
	}
	return m.batch, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	quizEvents []store.QuizEventData
	appendErr  error
}

func (m *mockEventRepo) AppendQuizResult(_ context.Context, data store.QuizEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) QuizHistory(_ context.Context, _ store.QueryOpts) ([]store.QuizRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestQuizForTopic(_ context.Context, _ string) (*store.QuizRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) LLMRequests(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMRequest(_ context.Context, _ int64) (*store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsage(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testBatch(n int) qz.QuestionBatch {
	questions := make([]qz.QuestionRecord, 0, n)
	for i := 0; i < n; i++ {
		q, err := qz.NewQuestionRecord(
			"What is the capital of France?",
			[qz.OptionCount]string{"Paris", "Lyon", "Nice", "Lille"},
			qz.LabelA,
			"Paris has been the capital since 508.",
		)
		if err != nil {
			panic(err)
		}
		questions = append(questions, q)
	}
	return qz.QuestionBatch{
		Topic:      "geography",
		Difficulty: qz.Easy,
		Questions:  questions,
	}
}

func testQuizScreen(n int) (*QuizScreen, *mockEventRepo) {
	gen := &mockGenerator{batch: testBatch(n)}
	repo := &mockEventRepo{}
	params := quizgen.Params{Topic: "geography", Difficulty: qz.Easy, Count: n}
	return New(gen, repo, ledger.New(), params), repo
}

// loadBatch runs the Init command and feeds its message back in.
func loadBatch(t *testing.T, s *QuizScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a generation command from Init")
	}
	msg, ok := cmd().(batchReadyMsg)
	if !ok {
		t.Fatalf("expected batchReadyMsg, got %T", cmd())
	}
	s.Update(msg)
	if s.session == nil {
		t.Fatal("expected session after batch load")
	}
}

func TestQuizScreen_Title(t *testing.T) {
	s, _ := testQuizScreen(3)
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestQuizScreen_View_Generating(t *testing.T) {
	s, _ := testQuizScreen(3)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view while generating")
	}
}

func TestQuizScreen_GenerationError(t *testing.T) {
	gen := &mockGenerator{err: errors.New("provider down")}
	params := quizgen.Params{Topic: "geography", Difficulty: qz.Easy, Count: 3}
	s := New(gen, &mockEventRepo{}, ledger.New(), params)

	msg := s.Init()().(batchReadyMsg)
	if msg.Err == nil {
		t.Fatal("expected generation error")
	}
	s.Update(msg)

	if s.errMsg == "" {
		t.Error("expected error message to be shown")
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty error view")
	}
}

func TestQuizScreen_AnswerShowsFeedback(t *testing.T) {
	s, _ := testQuizScreen(3)
	loadBatch(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if !qs.showFeedback {
		t.Error("expected feedback after answering")
	}
	if qs.session.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount = %d, want 1", qs.session.AnsweredCount())
	}
	if qs.session.Score() != 1 {
		t.Errorf("Score = %d, want 1 for correct answer", qs.session.Score())
	}
}

func TestQuizScreen_FeedbackDismissAdvances(t *testing.T) {
	s, _ := testQuizScreen(3)
	loadBatch(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))
	qs := scr.(*QuizScreen)

	if qs.showFeedback {
		t.Error("expected feedback to be dismissed")
	}
	if qs.session.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex = %d, want 1", qs.session.CurrentIndex())
	}
	if qs.mc.Submitted {
		t.Error("expected fresh multichoice for next question")
	}
}

func TestQuizScreen_NavigateBackShowsRecordedAnswer(t *testing.T) {
	s, _ := testQuizScreen(3)
	loadBatch(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))
	scr, _ = scr.Update(specialKey(tea.KeyLeft))
	qs := scr.(*QuizScreen)

	if qs.session.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", qs.session.CurrentIndex())
	}
	if !qs.mc.Submitted {
		t.Error("expected answered question to render as submitted")
	}

	// A second Enter on an answered question must not re-score.
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)
	if qs.session.Score() != 1 {
		t.Errorf("Score = %d, want 1 after revisiting", qs.session.Score())
	}
}

func TestQuizScreen_NavigateForwardBlockedAtFrontier(t *testing.T) {
	s, _ := testQuizScreen(3)
	loadBatch(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	qs := scr.(*QuizScreen)

	if qs.session.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0 past the frontier", qs.session.CurrentIndex())
	}
}

func TestQuizScreen_CompletionPersists(t *testing.T) {
	s, repo := testQuizScreen(2)
	loadBatch(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	// Dismissing the final feedback triggers persistence.
	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a persist command after the final answer")
	}
	msg, ok := cmd().(resultPersistedMsg)
	if !ok {
		t.Fatalf("expected resultPersistedMsg, got %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("unexpected persist error: %v", msg.Err)
	}

	if len(repo.quizEvents) != 1 {
		t.Fatalf("expected 1 persisted quiz event, got %d", len(repo.quizEvents))
	}
	ev := repo.quizEvents[0]
	if ev.Score != 2 || ev.Total != 2 || ev.Answered != 2 {
		t.Errorf("persisted event = %+v, want score 2/2 with 2 answered", ev)
	}
	if len(ev.Answers) != 2 {
		t.Errorf("expected 2 persisted answers, got %d", len(ev.Answers))
	}
}

func TestQuizScreen_FinishEarly(t *testing.T) {
	s, _ := testQuizScreen(4)
	loadBatch(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))
	_, cmd := scr.Update(keyPress('f'))
	if cmd == nil {
		t.Fatal("expected a persist command after finishing early")
	}

	msg := cmd().(resultPersistedMsg)
	if msg.Result.Answered != 1 {
		t.Errorf("Answered = %d, want 1", msg.Result.Answered)
	}
	if msg.Result.Total != 4 {
		t.Errorf("Total = %d, want full batch length 4", msg.Result.Total)
	}
	if msg.Result.Accuracy != 0.25 {
		t.Errorf("Accuracy = %v, want 0.25 of the full batch", msg.Result.Accuracy)
	}
}

func TestQuizScreen_LedgerAppendedOnCompletion(t *testing.T) {
	gen := &mockGenerator{batch: testBatch(2)}
	l := ledger.New()
	params := quizgen.Params{Topic: "geography", Difficulty: qz.Easy, Count: 2}
	s := New(gen, &mockEventRepo{}, l, params)
	loadBatch(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr.Update(keyPress(' '))

	if l.Len() != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", l.Len())
	}
	r, ok := l.LatestForTopic("GEOGRAPHY")
	if !ok {
		t.Fatal("expected case-insensitive topic lookup to find the result")
	}
	if r.Score != 2 {
		t.Errorf("Score = %d, want 2", r.Score)
	}
}

func TestQuizScreen_ReplacesWithSummary(t *testing.T) {
	s, _ := testQuizScreen(2)
	loadBatch(t, s)

	result := sess.Result{Topic: "geography", Score: 1, Total: 2}
	_, cmd := s.Update(resultPersistedMsg{Result: result})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
}
