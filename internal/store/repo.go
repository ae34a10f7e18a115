package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AnswerData is one answered question within a quiz session.
type AnswerData struct {
	QuestionIndex int
	Prompt        string
	CorrectLabel  string
	ChosenLabel   string
	Correct       bool
}

// QuizEventData captures one completed quiz session for persistence.
type QuizEventData struct {
	SessionID  string
	Topic      string
	Difficulty string
	Score      int
	Total      int
	Answered   int
	Accuracy   float64
	Answers    []AnswerData
}

// QuizRecord is a stored quiz session read back from the database.
type QuizRecord struct {
	Sequence  int64
	Timestamp time.Time
	QuizEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request read back from the database.
type LLMRequestRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// ModelUsage aggregates token consumption for one model.
type ModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendQuizResult records a completed quiz session and its answers.
	AppendQuizResult(ctx context.Context, data QuizEventData) error

	// QuizHistory returns stored quiz sessions in sequence order.
	QuizHistory(ctx context.Context, opts QueryOpts) ([]QuizRecord, error)

	// LatestQuizForTopic returns the most recent quiz for a topic,
	// matched case-insensitively, or nil if none exists.
	LatestQuizForTopic(ctx context.Context, topic string) (*QuizRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMRequests returns stored LLM request events in sequence order.
	LLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// GetLLMRequest returns one LLM request event by sequence number,
	// or nil if no such event exists.
	GetLLMRequest(ctx context.Context, sequence int64) (*LLMRequestRecord, error)

	// LLMUsage aggregates token consumption grouped by model.
	LLMUsage(ctx context.Context) ([]ModelUsage, error)
}
