// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quizforge/quizforge/ent/answerevent"
	"github.com/quizforge/quizforge/ent/llmrequestevent"
	"github.com/quizforge/quizforge/ent/quizevent"
	"github.com/quizforge/quizforge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[2].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescCorrectLabel is the schema descriptor for correct_label field.
	answereventDescCorrectLabel := answereventFields[3].Descriptor()
	// answerevent.CorrectLabelValidator is a validator for the "correct_label" field. It is called by the builders before save.
	answerevent.CorrectLabelValidator = answereventDescCorrectLabel.Validators[0].(func(string) error)
	// answereventDescChosenLabel is the schema descriptor for chosen_label field.
	answereventDescChosenLabel := answereventFields[4].Descriptor()
	// answerevent.ChosenLabelValidator is a validator for the "chosen_label" field. It is called by the builders before save.
	answerevent.ChosenLabelValidator = answereventDescChosenLabel.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[0].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	// quizeventDescTopic is the schema descriptor for topic field.
	quizeventDescTopic := quizeventFields[1].Descriptor()
	// quizevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizevent.TopicValidator = quizeventDescTopic.Validators[0].(func(string) error)
	// quizeventDescDifficulty is the schema descriptor for difficulty field.
	quizeventDescDifficulty := quizeventFields[2].Descriptor()
	// quizevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	quizevent.DifficultyValidator = quizeventDescDifficulty.Validators[0].(func(string) error)
}
