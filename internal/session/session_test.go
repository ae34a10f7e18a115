package session

import (
	"errors"
	"testing"

	"github.com/quizforge/quizforge/internal/quiz"
)

func testBatch(n int) *quiz.QuestionBatch {
	questions := make([]quiz.QuestionRecord, n)
	for i := range questions {
		q, err := quiz.NewQuestionRecord(
			"Question "+string(rune('1'+i))+"?",
			[quiz.OptionCount]string{"one", "two", "three", "four"},
			quiz.LabelB,
			"two is correct",
		)
		if err != nil {
			panic(err)
		}
		questions[i] = q
	}
	return &quiz.QuestionBatch{
		Topic:      "Photosynthesis",
		Difficulty: quiz.Medium,
		Questions:  questions,
	}
}

func loadedSession(t *testing.T, n int) *Session {
	t.Helper()
	s := New()
	if err := s.Load(testBatch(n)); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestLoad_EmptyBatch(t *testing.T) {
	s := New()
	err := s.Load(&quiz.QuestionBatch{Topic: "empty"})

	var emptyErr *EmptyBatchError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyBatchError, got %v", err)
	}
	if s.State() != StateEmpty {
		t.Errorf("state = %s, want Empty", s.State())
	}
}

func TestLoad_ResetsCounters(t *testing.T) {
	s := loadedSession(t, 3)
	if err := s.SubmitAnswer(quiz.LabelB); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := s.Load(testBatch(2)); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if s.Score() != 0 || s.CurrentIndex() != 0 || s.AnsweredCount() != 0 {
		t.Errorf("reload did not reset: score=%d index=%d answered=%d",
			s.Score(), s.CurrentIndex(), s.AnsweredCount())
	}
	if s.State() != StateInProgress {
		t.Errorf("state = %s, want InProgress", s.State())
	}
}

func TestSubmitAnswer_CompletesAfterAll(t *testing.T) {
	const n = 4
	s := loadedSession(t, n)

	for i := 0; i < n; i++ {
		if s.State() != StateInProgress {
			t.Fatalf("question %d: state = %s, want InProgress", i, s.State())
		}
		if err := s.SubmitAnswer(quiz.LabelB); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	if s.State() != StateCompleted {
		t.Fatalf("state = %s, want Completed after %d answers", s.State(), n)
	}
	res, err := s.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if res.Total != n || res.Score != n || res.Answered != n {
		t.Errorf("result = score %d / total %d (answered %d), want %d/%d/%d",
			res.Score, res.Total, res.Answered, n, n, n)
	}
	if res.Accuracy != 1.0 {
		t.Errorf("accuracy = %f, want 1.0", res.Accuracy)
	}
}

func TestSubmitAnswer_ScoresOnlyCorrect(t *testing.T) {
	s := loadedSession(t, 5)

	// 3 correct (B), 2 wrong (A).
	labels := []quiz.Label{quiz.LabelB, quiz.LabelA, quiz.LabelB, quiz.LabelA, quiz.LabelB}
	for i, l := range labels {
		if err := s.SubmitAnswer(l); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	res, err := s.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if res.Score != 3 {
		t.Errorf("score = %d, want 3", res.Score)
	}
	if res.Accuracy != 0.6 {
		t.Errorf("accuracy = %f, want 0.6", res.Accuracy)
	}

	correct := 0
	for _, o := range res.PerQuestion {
		if o.IsCorrect {
			correct++
		}
	}
	if correct != res.Score {
		t.Errorf("per-question correct count %d != score %d", correct, res.Score)
	}
}

func TestSubmitAnswer_DoubleSubmissionRejected(t *testing.T) {
	s := loadedSession(t, 3)
	if err := s.SubmitAnswer(quiz.LabelB); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	// Go back to the answered question and try again.
	if err := s.Navigate(-1); err != nil {
		t.Fatalf("navigate back: %v", err)
	}

	scoreBefore, answeredBefore := s.Score(), s.AnsweredCount()
	err := s.SubmitAnswer(quiz.LabelB)

	var dupErr *AlreadyAnsweredError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected AlreadyAnsweredError, got %v", err)
	}
	if dupErr.Index != 0 {
		t.Errorf("error index = %d, want 0", dupErr.Index)
	}
	if s.Score() != scoreBefore || s.AnsweredCount() != answeredBefore {
		t.Errorf("rejected submission changed state: score %d→%d, answered %d→%d",
			scoreBefore, s.Score(), answeredBefore, s.AnsweredCount())
	}
}

func TestSubmitAnswer_InvalidLabel(t *testing.T) {
	s := loadedSession(t, 2)
	if err := s.SubmitAnswer(quiz.Label("E")); err == nil {
		t.Error("expected error for invalid label")
	}
	if s.AnsweredCount() != 0 {
		t.Error("invalid label must not record an answer")
	}
}

func TestNavigate_WithinAnsweredRange(t *testing.T) {
	s := loadedSession(t, 4)
	_ = s.SubmitAnswer(quiz.LabelB)
	_ = s.SubmitAnswer(quiz.LabelA)
	// Current index is now 2, answers recorded for 0 and 1.

	if err := s.Navigate(-2); err != nil {
		t.Fatalf("navigate to first answered: %v", err)
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("index = %d, want 0", s.CurrentIndex())
	}
	if err := s.Navigate(+2); err != nil {
		t.Fatalf("navigate to frontier: %v", err)
	}
	if s.CurrentIndex() != 2 {
		t.Errorf("index = %d, want 2", s.CurrentIndex())
	}
}

func TestNavigate_BeyondFrontierRejected(t *testing.T) {
	s := loadedSession(t, 4)
	_ = s.SubmitAnswer(quiz.LabelB) // frontier is now index 1

	err := s.Navigate(+2) // index 3: past the next unanswered question
	var navErr *NavigationError
	if !errors.As(err, &navErr) {
		t.Fatalf("expected NavigationError, got %v", err)
	}
	if s.CurrentIndex() != 1 {
		t.Errorf("rejected navigation moved index to %d", s.CurrentIndex())
	}
}

func TestNavigate_OutOfRangeRejected(t *testing.T) {
	s := loadedSession(t, 3)
	if err := s.Navigate(-1); err == nil {
		t.Error("expected NavigationError below 0")
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("index = %d, want 0", s.CurrentIndex())
	}
}

func TestFinish_Early(t *testing.T) {
	s := loadedSession(t, 5)
	_ = s.SubmitAnswer(quiz.LabelB)
	_ = s.SubmitAnswer(quiz.LabelB)

	if err := s.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}

	res, err := s.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if res.Total != 5 {
		t.Errorf("total = %d, want full batch length 5", res.Total)
	}
	if res.Answered != 2 || res.Score != 2 {
		t.Errorf("answered/score = %d/%d, want 2/2", res.Answered, res.Score)
	}
	// Accuracy uses the full batch length, so an early finish caps it.
	if res.Accuracy != 0.4 {
		t.Errorf("accuracy = %f, want 0.4", res.Accuracy)
	}
	if len(res.PerQuestion) != 2 {
		t.Errorf("per-question entries = %d, want 2", len(res.PerQuestion))
	}
}

func TestStateErrors(t *testing.T) {
	s := New()

	assertStateError := func(t *testing.T, err error) {
		t.Helper()
		var stateErr *StateError
		if !errors.As(err, &stateErr) {
			t.Fatalf("expected StateError, got %v", err)
		}
	}

	_, err := s.CurrentQuestion()
	assertStateError(t, err)
	assertStateError(t, s.SubmitAnswer(quiz.LabelA))
	assertStateError(t, s.Navigate(1))
	assertStateError(t, s.Finish())
	_, err = s.Result()
	assertStateError(t, err)

	// Completed sessions reject in-progress operations too.
	s = loadedSession(t, 1)
	_ = s.SubmitAnswer(quiz.LabelB)
	assertStateError(t, s.SubmitAnswer(quiz.LabelB))
	assertStateError(t, s.Navigate(-1))
	assertStateError(t, s.Finish())
}

func TestResult_Deterministic(t *testing.T) {
	s := loadedSession(t, 2)
	_ = s.SubmitAnswer(quiz.LabelB)
	_ = s.SubmitAnswer(quiz.LabelC)

	r1, err := s.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	r2, _ := s.Result()
	if r1.Timestamp != r2.Timestamp || r1.Score != r2.Score {
		t.Error("Result() should return the same projection on every call")
	}
	if r1.ID == "" {
		t.Error("result should carry the session ID")
	}
}
