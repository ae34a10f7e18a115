package quizgen

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/session"
)

const systemPromptTemplate = `You are an expert educational assessment generator specialized in creating high-quality multiple-choice questions (MCQs) for adaptive learning systems.

TOPIC: %s
DIFFICULTY: %s
NUMBER OF QUESTIONS: %d
%s
Create exactly %d multiple-choice questions on the topic "%s" with %s difficulty.

Follow these requirements strictly:
1. Each question must be clear, concise, and directly relevant to the topic
2. Match the difficulty level accurately:
   - Easy: Basic understanding and recall questions
   - Medium: Application and comprehension questions
   - Hard: Analysis and evaluation questions
3. Provide exactly 4 answer choices labeled A, B, C, D for each question
4. Only ONE answer should be correct
5. The other answers must be plausible distractors that seem reasonable but are incorrect
6. Include a detailed explanation that teaches why the correct answer is right

Format your response as a valid JSON array of arrays ONLY, where each inner array contains EXACTLY:
[question_text, option_A, option_B, option_C, option_D, correct_answer_letter, explanation]

Example format:
[
    ["What is the capital of France?", "London", "Berlin", "Paris", "Madrid", "C", "Paris is the capital city of France."],
    ["Which planet is closest to the sun?", "Earth", "Mercury", "Venus", "Mars", "B", "Mercury is the closest planet to the sun in our solar system."]
]

The output MUST be valid JSON - nothing else.
DO NOT include any text, explanations, or markdown formatting before or after the array.`

// buildSystemPrompt renders the full generation instruction for the model.
func buildSystemPrompt(p Params) string {
	return fmt.Sprintf(systemPromptTemplate,
		p.Topic, p.Difficulty, p.Count,
		historyContext(p.History),
		p.Count, p.Topic, p.Difficulty)
}

// buildUserPrompt restates the request as the user-role message.
func buildUserPrompt(p Params) string {
	return fmt.Sprintf("Generate %d multiple-choice questions about %s with %s difficulty level.",
		p.Count, p.Topic, p.Difficulty)
}

// historyContext serializes prior performance compactly so the model can
// bias new questions toward areas the user struggled with.
func historyContext(history []session.Result) string {
	if len(history) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("User performance history:\n")
	for _, r := range history {
		fmt.Fprintf(&b, "- topic=%q difficulty=%s score=%d/%d accuracy=%.2f\n",
			r.Topic, r.Difficulty, r.Score, r.Total, r.Accuracy)
	}
	return b.String()
}
