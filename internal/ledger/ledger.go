// Package ledger keeps the append-only history of completed quiz sessions
// and the aggregation queries that analytics and adaptive seeding read.
package ledger

import (
	"strings"

	"github.com/quizforge/quizforge/internal/session"
)

// Ledger is the append-only session history. It is designed for a single
// owner (one caller at a time) and carries no locking; a hosting
// environment serving many users must give each its own Ledger.
type Ledger struct {
	entries []session.Result
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Append records a completed session result. Results are retained in
// insertion order and never removed.
func (l *Ledger) Append(r session.Result) {
	l.entries = append(l.entries, r)
}

// History returns all recorded results in insertion order. The returned
// slice is a copy; mutating it does not affect the ledger.
func (l *Ledger) History() []session.Result {
	out := make([]session.Result, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded results.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// LatestForTopic returns the most recent result for a topic, matched
// case-insensitively. Used to seed the difficulty controller when the
// user returns to a topic they have seen before.
func (l *Ledger) LatestForTopic(topic string) (session.Result, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if strings.EqualFold(l.entries[i].Topic, topic) {
			return l.entries[i], true
		}
	}
	return session.Result{}, false
}

// Latest returns the most recently appended result.
func (l *Ledger) Latest() (session.Result, bool) {
	if len(l.entries) == 0 {
		return session.Result{}, false
	}
	return l.entries[len(l.entries)-1], true
}
