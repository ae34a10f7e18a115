package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/session"
)

// Overall summarizes the whole history for the analytics header cards.
type Overall struct {
	Quizzes       int
	MeanAccuracy  float64
	TopicsCovered int
}

// TopicSummary aggregates all sessions for one topic.
type TopicSummary struct {
	Topic        string
	Quizzes      int
	Score        int
	Total        int
	MeanAccuracy float64
}

// TrendPoint is one session's accuracy on the time axis.
type TrendPoint struct {
	Timestamp time.Time
	Topic     string
	Accuracy  float64
}

// QuestionSplit separates the latest quiz's questions into strengths
// (answered correctly) and areas to improve.
type QuestionSplit struct {
	Strengths []session.QuestionOutcome
	Weak      []session.QuestionOutcome
}

// The aggregation functions below take a history slice rather than a
// *Ledger so the stats command can reuse them on results loaded from the
// store.

// Summarize computes the overall metrics for a history.
func Summarize(history []session.Result) Overall {
	if len(history) == 0 {
		return Overall{}
	}

	topics := make(map[string]struct{})
	sum := 0.0
	for _, r := range history {
		topics[strings.ToLower(r.Topic)] = struct{}{}
		sum += r.Accuracy
	}
	return Overall{
		Quizzes:       len(history),
		MeanAccuracy:  sum / float64(len(history)),
		TopicsCovered: len(topics),
	}
}

// ByTopic groups the history by topic (case-insensitive) and returns one
// summary per topic, ordered by descending mean accuracy then topic name.
func ByTopic(history []session.Result) []TopicSummary {
	type agg struct {
		display string
		quizzes int
		score   int
		total   int
		accSum  float64
	}
	groups := make(map[string]*agg)

	for _, r := range history {
		key := strings.ToLower(r.Topic)
		g := groups[key]
		if g == nil {
			g = &agg{display: r.Topic}
			groups[key] = g
		}
		g.quizzes++
		g.score += r.Score
		g.total += r.Total
		g.accSum += r.Accuracy
	}

	out := make([]TopicSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, TopicSummary{
			Topic:        g.display,
			Quizzes:      g.quizzes,
			Score:        g.score,
			Total:        g.total,
			MeanAccuracy: g.accSum / float64(g.quizzes),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanAccuracy != out[j].MeanAccuracy {
			return out[i].MeanAccuracy > out[j].MeanAccuracy
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}

// DifficultyCounts returns how many quizzes were taken at each level.
func DifficultyCounts(history []session.Result) map[quiz.Difficulty]int {
	counts := make(map[quiz.Difficulty]int, len(quiz.Difficulties))
	for _, r := range history {
		counts[r.Difficulty]++
	}
	return counts
}

// Trend returns one point per session, in insertion (chronological) order.
func Trend(history []session.Result) []TrendPoint {
	out := make([]TrendPoint, len(history))
	for i, r := range history {
		out[i] = TrendPoint{Timestamp: r.Timestamp, Topic: r.Topic, Accuracy: r.Accuracy}
	}
	return out
}

// SplitQuestions buckets a result's questions into strengths and
// areas to improve for the recent-quiz breakdown.
func SplitQuestions(r session.Result) QuestionSplit {
	var split QuestionSplit
	for _, o := range r.PerQuestion {
		if o.IsCorrect {
			split.Strengths = append(split.Strengths, o)
		} else {
			split.Weak = append(split.Weak, o)
		}
	}
	return split
}

// Recommendations produces the study suggestions shown after a quiz,
// driven by the accuracy bands of the latest result.
func Recommendations(r session.Result) []string {
	var recs []string
	if r.Accuracy > 0.8 {
		recs = append(recs, "Consider moving to a harder difficulty for this topic.")
	}
	if r.Accuracy >= 0.6 && r.Accuracy <= 0.8 {
		recs = append(recs, "You're doing well! Continue practicing at the current difficulty.")
	}
	if r.Accuracy < 0.6 {
		recs = append(recs, "Try studying this topic more or attempt an easier difficulty.")
	}
	if r.Answered > r.Score {
		recs = append(recs, "Focus on reviewing the questions you answered incorrectly.")
	}
	if r.Accuracy > 0.7 {
		recs = append(recs, "Try a new related topic to expand your knowledge.")
	}
	return recs
}
