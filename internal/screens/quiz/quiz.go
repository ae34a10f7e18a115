package quiz

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/quizforge/quizforge/internal/ledger"
	qz "github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/router"
	"github.com/quizforge/quizforge/internal/screen"
	"github.com/quizforge/quizforge/internal/screens/summary"
	sess "github.com/quizforge/quizforge/internal/session"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/quizforge/quizforge/internal/ui/components"
	"github.com/quizforge/quizforge/internal/ui/layout"
)

// QuizScreen runs one quiz session from generation through completion.
type QuizScreen struct {
	generator quizgen.Generator
	eventRepo store.EventRepo
	ledger    *ledger.Ledger
	params    quizgen.Params

	session  *sess.Session
	batch    *qz.QuestionBatch
	question qz.QuestionRecord
	mc       components.MultiChoice

	showFeedback bool
	persisting   bool
	errMsg       string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the given generation parameters.
func New(generator quizgen.Generator, eventRepo store.EventRepo, ledger *ledger.Ledger, params quizgen.Params) *QuizScreen {
	return &QuizScreen{
		generator: generator,
		eventRepo: eventRepo,
		ledger:    ledger,
		params:    params,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.generate()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	case s.batch == nil:
		return nil
	case s.showFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←→", Description: "Navigate"},
			{Key: "F", Description: "Finish early"},
		}
	}
}

// generate calls the generator off the Bubble Tea event loop.
func (s *QuizScreen) generate() tea.Cmd {
	return func() tea.Msg {
		batch, err := s.generator.GenerateBatch(context.Background(), s.params)
		if err != nil {
			return batchReadyMsg{Err: err}
		}
		return batchReadyMsg{Batch: &batch}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		return s.handleBatchReady(msg)

	case resultPersistedMsg:
		saveErr := ""
		if msg.Err != nil {
			saveErr = msg.Err.Error()
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(msg.Result, saveErr),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleBatchReady(msg batchReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	session := sess.New()
	if err := session.Load(msg.Batch); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.session = session
	s.batch = msg.Batch
	s.syncQuestion()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" || s.session == nil || s.persisting {
		return s, nil
	}

	if s.showFeedback {
		s.showFeedback = false
		if s.session.State() == sess.StateCompleted {
			return s, s.persist()
		}
		s.syncQuestion()
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		if err := s.session.Navigate(-1); err == nil {
			s.syncQuestion()
		}
		return s, nil
	case "right", "l":
		if err := s.session.Navigate(1); err == nil {
			s.syncQuestion()
		}
		return s, nil
	case "f":
		if err := s.session.Finish(); err != nil {
			return s, nil
		}
		return s, s.persist()
	}

	wasSubmitted := s.mc.Submitted
	s.mc, _ = s.mc.Update(msg)
	if s.mc.Submitted && !wasSubmitted {
		return s.submitCurrent()
	}
	return s, nil
}

// submitCurrent records the choice made in the multichoice component.
func (s *QuizScreen) submitCurrent() (screen.Screen, tea.Cmd) {
	label := qz.LabelAt(s.mc.ChosenIndex)
	if err := s.session.SubmitAnswer(label); err != nil {
		var already *sess.AlreadyAnsweredError
		if !errors.As(err, &already) {
			s.errMsg = err.Error()
		}
		return s, nil
	}
	s.showFeedback = true
	return s, nil
}

// syncQuestion rebuilds the multichoice component for the session's
// current index, restoring submitted state for answered questions.
func (s *QuizScreen) syncQuestion() {
	q, err := s.session.CurrentQuestion()
	if err != nil {
		return
	}
	s.question = q
	mc := components.NewMultiChoice(q.Prompt, q.Options[:], q.CorrectLabel.Index())
	if ev, ok := s.session.AnswerFor(s.session.CurrentIndex()); ok {
		mc.Submitted = true
		mc.ChosenIndex = ev.ChosenLabel.Index()
		mc.Selected = mc.ChosenIndex
	}
	s.mc = mc
}

// persist writes the finished session to the event store and the
// in-memory ledger.
func (s *QuizScreen) persist() tea.Cmd {
	s.persisting = true
	result, err := s.session.Result()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	s.ledger.Append(result)

	return func() tea.Msg {
		answers := make([]store.AnswerData, 0, len(result.PerQuestion))
		for _, oc := range result.PerQuestion {
			answers = append(answers, store.AnswerData{
				QuestionIndex: oc.Index,
				Prompt:        oc.Prompt,
				CorrectLabel:  string(oc.CorrectLabel),
				ChosenLabel:   string(oc.ChosenLabel),
				Correct:       oc.IsCorrect,
			})
		}
		data := store.QuizEventData{
			SessionID:  result.ID,
			Topic:      result.Topic,
			Difficulty: string(result.Difficulty),
			Score:      result.Score,
			Total:      result.Total,
			Answered:   result.Answered,
			Accuracy:   result.Accuracy,
			Answers:    answers,
		}
		err := s.eventRepo.AppendQuizResult(context.Background(), data)
		return resultPersistedMsg{Result: result, Err: err}
	}
}
