package session

import "fmt"

// EmptyBatchError indicates an attempt to load a zero-length batch.
// The session stays in StateEmpty.
type EmptyBatchError struct {
	Topic string
}

func (e *EmptyBatchError) Error() string {
	if e.Topic != "" {
		return fmt.Sprintf("cannot load empty question batch for topic %q", e.Topic)
	}
	return "cannot load empty question batch"
}

// AlreadyAnsweredError indicates a second answer submission for a question
// index that has already been scored. The rejected call is a no-op.
type AlreadyAnsweredError struct {
	Index int
}

func (e *AlreadyAnsweredError) Error() string {
	return fmt.Sprintf("question %d has already been answered", e.Index)
}

// NavigationError indicates a move to an index that is out of range or
// ahead of the next unanswered question. The rejected call is a no-op.
type NavigationError struct {
	From int
	To   int
	Max  int // highest reachable index
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("cannot navigate from question %d to %d (reachable range 0-%d)", e.From, e.To, e.Max)
}

// StateError indicates an operation invoked while the session is in the
// wrong state. Its occurrence is a caller bug, not a user-facing condition.
type StateError struct {
	Op       string
	Expected State
	Actual   State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s requires session state %s, but session is %s", e.Op, e.Expected, e.Actual)
}
