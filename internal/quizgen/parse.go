package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

// fieldsPerEntry is the shape of one reply entry:
// prompt, 4 options, correct label, explanation.
const fieldsPerEntry = 7

// extractArray isolates the bracketed array from a model reply that may
// be wrapped in code fences or surrounded by commentary. Returns the
// substring from the first '[' to the last ']'.
func extractArray(text string) (string, error) {
	text = strings.TrimSpace(text)

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return "", generationErr("no bracketed array found in reply", nil)
	}
	return text[start : end+1], nil
}

// parseBatch turns a raw model reply into a QuestionBatch. The reply is
// decoded into a generic tree, structurally validated, then converted
// entry by entry. Any malformed entry fails the whole batch; extra
// entries beyond count are dropped.
func parseBatch(text, topic string, difficulty quiz.Difficulty, count int) (quiz.QuestionBatch, error) {
	extracted, err := extractArray(text)
	if err != nil {
		return quiz.QuestionBatch{}, err
	}

	var tree any
	if err := json.Unmarshal([]byte(extracted), &tree); err != nil {
		return quiz.QuestionBatch{}, generationErr("reply is not valid JSON", err)
	}

	if err := validateBatchShape(tree); err != nil {
		return quiz.QuestionBatch{}, err
	}

	entries := tree.([]any)
	if len(entries) > count {
		entries = entries[:count]
	}

	questions := make([]quiz.QuestionRecord, 0, len(entries))
	for i, entry := range entries {
		record, err := recordFromEntry(entry.([]any))
		if err != nil {
			return quiz.QuestionBatch{}, generationErr(fmt.Sprintf("entry %d is malformed", i), err)
		}
		questions = append(questions, record)
	}

	return quiz.QuestionBatch{
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  questions,
	}, nil
}

// recordFromEntry converts one validated 7-element entry into a
// QuestionRecord. The schema guarantees element count and types, so the
// assertions here cannot fail; NewQuestionRecord still checks content
// invariants like non-empty options and a known label.
func recordFromEntry(entry []any) (quiz.QuestionRecord, error) {
	fields := make([]string, fieldsPerEntry)
	for i, v := range entry {
		fields[i] = v.(string)
	}

	var options [quiz.OptionCount]string
	copy(options[:], fields[1:5])

	label, err := quiz.ParseLabel(strings.TrimSpace(fields[5]))
	if err != nil {
		return quiz.QuestionRecord{}, err
	}

	return quiz.NewQuestionRecord(fields[0], options, label, fields[6])
}
