package quizgen

import "fmt"

// GenerationError wraps any failure to produce a question batch, from
// service errors to unparseable replies. Cause is the human-readable
// summary shown to callers.
type GenerationError struct {
	Cause string
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("quiz generation failed: %s: %v", e.Cause, e.Err)
	}
	return fmt.Sprintf("quiz generation failed: %s", e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func generationErr(cause string, err error) *GenerationError {
	return &GenerationError{Cause: cause, Err: err}
}
