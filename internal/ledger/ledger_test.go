package ledger

import (
	"testing"
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/session"
)

func result(topic string, difficulty quiz.Difficulty, score, total int) session.Result {
	accuracy := 0.0
	if total > 0 {
		accuracy = float64(score) / float64(total)
	}
	return session.Result{
		Topic:      topic,
		Difficulty: difficulty,
		Score:      score,
		Total:      total,
		Answered:   total,
		Accuracy:   accuracy,
		Timestamp:  time.Now(),
	}
}

func TestAppendAndHistory_InsertionOrder(t *testing.T) {
	l := New()
	l.Append(result("Calculus", quiz.Medium, 3, 5))
	l.Append(result("World War II", quiz.Easy, 4, 5))
	l.Append(result("Calculus", quiz.Hard, 2, 5))

	h := l.History()
	if len(h) != 3 {
		t.Fatalf("history length = %d, want 3", len(h))
	}
	if h[0].Topic != "Calculus" || h[1].Topic != "World War II" || h[2].Difficulty != quiz.Hard {
		t.Error("history is not in insertion order")
	}

	// The returned slice is a copy.
	h[0].Topic = "mutated"
	if l.History()[0].Topic != "Calculus" {
		t.Error("mutating the returned history affected the ledger")
	}
}

func TestLatestForTopic_CaseInsensitive(t *testing.T) {
	l := New()
	l.Append(result("Calculus", quiz.Medium, 2, 5))
	l.Append(result("calculus", quiz.Hard, 5, 5))

	r, ok := l.LatestForTopic("CALCULUS")
	if !ok {
		t.Fatal("expected a match")
	}
	if r.Difficulty != quiz.Hard || r.Score != 5 {
		t.Errorf("got %s/%d, want the most recent entry", r.Difficulty, r.Score)
	}

	if _, ok := l.LatestForTopic("Biology"); ok {
		t.Error("expected no match for unseen topic")
	}
}

func TestRoundTrip_NoMutationInTransit(t *testing.T) {
	r := result("Photosynthesis", quiz.Medium, 3, 5)
	r.PerQuestion = []session.QuestionOutcome{
		{Index: 0, Prompt: "Q1?", CorrectLabel: quiz.LabelB, ChosenLabel: quiz.LabelB, IsCorrect: true},
		{Index: 1, Prompt: "Q2?", CorrectLabel: quiz.LabelA, ChosenLabel: quiz.LabelC, IsCorrect: false},
	}

	l := New()
	l.Append(r)

	got, ok := l.LatestForTopic("photosynthesis")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Score != r.Score || got.Total != r.Total || got.Accuracy != r.Accuracy ||
		got.Timestamp != r.Timestamp || len(got.PerQuestion) != 2 {
		t.Errorf("round-trip changed the result: %+v", got)
	}
	if got.PerQuestion[1].ChosenLabel != quiz.LabelC {
		t.Error("per-question data lost in transit")
	}
}

func TestSummarize(t *testing.T) {
	if got := Summarize(nil); got.Quizzes != 0 {
		t.Error("empty history should produce a zero summary")
	}

	history := []session.Result{
		result("Calculus", quiz.Medium, 4, 5),  // 0.8
		result("calculus", quiz.Hard, 2, 5),    // 0.4
		result("Biology", quiz.Easy, 3, 5),     // 0.6
	}
	got := Summarize(history)
	if got.Quizzes != 3 {
		t.Errorf("quizzes = %d, want 3", got.Quizzes)
	}
	if got.TopicsCovered != 2 {
		t.Errorf("topics = %d, want 2 (case-insensitive)", got.TopicsCovered)
	}
	if got.MeanAccuracy < 0.599 || got.MeanAccuracy > 0.601 {
		t.Errorf("mean accuracy = %f, want 0.6", got.MeanAccuracy)
	}
}

func TestByTopic(t *testing.T) {
	history := []session.Result{
		result("Calculus", quiz.Medium, 4, 5),
		result("calculus", quiz.Hard, 2, 5),
		result("Biology", quiz.Easy, 5, 5),
	}
	got := ByTopic(history)
	if len(got) != 2 {
		t.Fatalf("groups = %d, want 2", len(got))
	}
	// Biology (1.0) sorts before Calculus (0.6).
	if got[0].Topic != "Biology" {
		t.Errorf("first group = %s, want Biology", got[0].Topic)
	}
	calc := got[1]
	if calc.Quizzes != 2 || calc.Score != 6 || calc.Total != 10 {
		t.Errorf("calculus aggregate = %+v", calc)
	}
}

func TestDifficultyCounts(t *testing.T) {
	history := []session.Result{
		result("a", quiz.Easy, 1, 3),
		result("b", quiz.Medium, 1, 3),
		result("c", quiz.Medium, 1, 3),
	}
	counts := DifficultyCounts(history)
	if counts[quiz.Easy] != 1 || counts[quiz.Medium] != 2 || counts[quiz.Hard] != 0 {
		t.Errorf("counts = %v", counts)
	}
}

func TestSplitQuestions(t *testing.T) {
	r := session.Result{
		PerQuestion: []session.QuestionOutcome{
			{Index: 0, IsCorrect: true},
			{Index: 1, IsCorrect: false},
			{Index: 2, IsCorrect: true},
		},
	}
	split := SplitQuestions(r)
	if len(split.Strengths) != 2 || len(split.Weak) != 1 {
		t.Errorf("split = %d strengths / %d weak", len(split.Strengths), len(split.Weak))
	}
}

func TestRecommendations_Bands(t *testing.T) {
	high := result("t", quiz.Medium, 9, 10)
	recs := Recommendations(high)
	if len(recs) == 0 {
		t.Fatal("expected recommendations for high accuracy")
	}

	low := result("t", quiz.Medium, 2, 10)
	recs = Recommendations(low)
	found := false
	for _, r := range recs {
		if r == "Try studying this topic more or attempt an easier difficulty." {
			found = true
		}
	}
	if !found {
		t.Error("low accuracy should suggest an easier difficulty")
	}
}
