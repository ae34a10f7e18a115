package quizgen

import (
	"context"

	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
)

const (
	// generationMaxTokens leaves headroom for ten questions with
	// detailed explanations.
	generationMaxTokens = 4096

	// generationTemperature keeps some variety between batches on the
	// same topic without drifting from the format contract.
	generationTemperature = 0.7
)

// LLMGenerator is the Provider-backed Generator. It performs no retries
// of its own; wrap the Provider with llm.WithRetry for that.
type LLMGenerator struct {
	provider llm.Provider
}

// NewLLMGenerator creates a Generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider) *LLMGenerator {
	return &LLMGenerator{provider: provider}
}

// GenerateBatch requests count questions from the model and parses the
// reply into a QuestionBatch. All failures surface as GenerationError.
func (g *LLMGenerator) GenerateBatch(ctx context.Context, p Params) (quiz.QuestionBatch, error) {
	if err := p.Validate(); err != nil {
		return quiz.QuestionBatch{}, err
	}

	ctx = llm.WithPurpose(ctx, "quiz_generation")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: buildSystemPrompt(p),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserPrompt(p)},
		},
		MaxTokens:   generationMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		return quiz.QuestionBatch{}, generationErr("text generation service call failed", err)
	}

	return parseBatch(resp.Text, p.Topic, p.Difficulty, p.Count)
}
