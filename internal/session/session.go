// Package session implements the quiz session state machine: progression
// through a question batch, answer scoring, backward/forward navigation
// after answers are locked in, and projection of the final result.
//
// A Session is owned by exactly one caller at a time and provides no
// internal locking. All misuse errors (wrong state, double answer,
// navigation past the frontier) leave the session unchanged.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/quiz"
)

// State is the lifecycle phase of a session.
type State int

const (
	// StateEmpty means no batch has been loaded yet.
	StateEmpty State = iota
	// StateInProgress means a batch is loaded and questions remain unanswered.
	StateInProgress
	// StateCompleted means the session is finished and Result is available.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateInProgress:
		return "InProgress"
	case StateCompleted:
		return "Completed"
	}
	return "Unknown"
}

// Session is the quiz session state machine. The zero value is an empty
// session ready for Load.
type Session struct {
	id      string
	state   State
	batch   *quiz.QuestionBatch
	current int
	score   int
	answers []AnswerEvent
	started time.Time
	result  *Result
}

// New returns an empty session.
func New() *Session {
	return &Session{state: StateEmpty}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// ID returns the session UUID. Empty until a batch is loaded.
func (s *Session) ID() string { return s.id }

// CurrentIndex returns the index of the question currently in view.
func (s *Session) CurrentIndex() int { return s.current }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Total returns the number of questions in the loaded batch.
func (s *Session) Total() int { return s.batch.Len() }

// AnsweredCount returns the number of questions answered so far.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// Started returns when the batch was loaded.
func (s *Session) Started() time.Time { return s.started }

// Load starts the session with a batch, resetting position, score, and
// answer history. Loading a zero-length batch fails with *EmptyBatchError
// and leaves the session in StateEmpty.
func (s *Session) Load(batch *quiz.QuestionBatch) error {
	if batch.Len() == 0 {
		topic := ""
		if batch != nil {
			topic = batch.Topic
		}
		return &EmptyBatchError{Topic: topic}
	}

	s.id = uuid.NewString()
	s.batch = batch
	s.current = 0
	s.score = 0
	s.answers = nil
	s.started = time.Now()
	s.result = nil
	s.state = StateInProgress
	return nil
}

// CurrentQuestion returns the question at the current index.
// Valid only while the session is in progress.
func (s *Session) CurrentQuestion() (quiz.QuestionRecord, error) {
	if s.state != StateInProgress {
		return quiz.QuestionRecord{}, &StateError{Op: "current question", Expected: StateInProgress, Actual: s.state}
	}
	return s.batch.Questions[s.current], nil
}

// AnswerFor returns the recorded answer for a question index, if any.
func (s *Session) AnswerFor(index int) (AnswerEvent, bool) {
	if index < 0 || index >= len(s.answers) {
		return AnswerEvent{}, false
	}
	return s.answers[index], true
}

// SubmitAnswer commits the user's answer for the question at the current
// index. Exactly one scoring event is recorded per question: a second
// submission for an already-answered index fails with
// *AlreadyAnsweredError and changes nothing. On success the session
// advances to the next question, or to StateCompleted when this was the
// final question.
func (s *Session) SubmitAnswer(label quiz.Label) error {
	if s.state != StateInProgress {
		return &StateError{Op: "submit answer", Expected: StateInProgress, Actual: s.state}
	}
	if _, err := quiz.ParseLabel(string(label)); err != nil {
		return err
	}
	if s.current < len(s.answers) {
		return &AlreadyAnsweredError{Index: s.current}
	}

	// Answers are only ever appended at the frontier, so events are
	// recorded in strictly increasing index order.
	q := s.batch.Questions[s.current]
	ev := AnswerEvent{
		QuestionIndex: s.current,
		ChosenLabel:   label,
		IsCorrect:     label == q.CorrectLabel,
	}
	s.answers = append(s.answers, ev)
	if ev.IsCorrect {
		s.score++
	}

	if s.current == s.batch.Len()-1 {
		s.complete()
		return nil
	}
	s.current++
	return nil
}

// Navigate moves the current index by delta. Only answered questions and
// the next unanswered question are reachable; anything beyond the frontier
// fails with *NavigationError and leaves the index unchanged. Navigation
// never re-scores an answer.
func (s *Session) Navigate(delta int) error {
	if s.state != StateInProgress {
		return &StateError{Op: "navigate", Expected: StateInProgress, Actual: s.state}
	}

	target := s.current + delta
	max := len(s.answers)
	if max > s.batch.Len()-1 {
		max = s.batch.Len() - 1
	}
	if target < 0 || target > max {
		return &NavigationError{From: s.current, To: target, Max: max}
	}
	s.current = target
	return nil
}

// Finish ends the session early, producing a result from the questions
// answered so far. Total still reflects the full batch length.
func (s *Session) Finish() error {
	if s.state != StateInProgress {
		return &StateError{Op: "finish", Expected: StateInProgress, Actual: s.state}
	}
	s.complete()
	return nil
}

// Result returns the completed session's result. Valid only once the
// session has completed.
func (s *Session) Result() (Result, error) {
	if s.state != StateCompleted {
		return Result{}, &StateError{Op: "result", Expected: StateCompleted, Actual: s.state}
	}
	return *s.result, nil
}

// complete builds the result projection and transitions to StateCompleted.
func (s *Session) complete() {
	total := s.batch.Len()

	perQuestion := make([]QuestionOutcome, len(s.answers))
	for i, ev := range s.answers {
		q := s.batch.Questions[ev.QuestionIndex]
		perQuestion[i] = QuestionOutcome{
			Index:        ev.QuestionIndex,
			Prompt:       q.Prompt,
			CorrectLabel: q.CorrectLabel,
			ChosenLabel:  ev.ChosenLabel,
			IsCorrect:    ev.IsCorrect,
		}
	}

	accuracy := 0.0
	if total > 0 {
		accuracy = float64(s.score) / float64(total)
	}

	s.result = &Result{
		ID:          s.id,
		Topic:       s.batch.Topic,
		Difficulty:  s.batch.Difficulty,
		Score:       s.score,
		Total:       total,
		Answered:    len(s.answers),
		Accuracy:    accuracy,
		Timestamp:   time.Now(),
		PerQuestion: perQuestion,
	}
	s.state = StateCompleted
}
