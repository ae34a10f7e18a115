package quiz

import "fmt"

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Label identifies one of the four answer options by position.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels lists all valid option labels in display order.
var Labels = []Label{LabelA, LabelB, LabelC, LabelD}

// ParseLabel converts a string to a Label.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case LabelA, LabelB, LabelC, LabelD:
		return Label(s), nil
	}
	return "", fmt.Errorf("invalid option label %q (want A, B, C, or D)", s)
}

// Index returns the option position for this label (A=0 .. D=3).
func (l Label) Index() int {
	switch l {
	case LabelA:
		return 0
	case LabelB:
		return 1
	case LabelC:
		return 2
	case LabelD:
		return 3
	}
	return -1
}

// LabelAt returns the label for an option position (0=A .. 3=D).
func LabelAt(i int) Label {
	if i < 0 || i >= OptionCount {
		return ""
	}
	return Labels[i]
}

// QuestionRecord is a single multiple-choice question.
// Records are immutable once built; construct them with NewQuestionRecord.
type QuestionRecord struct {
	// Prompt is the question text shown to the user.
	Prompt string

	// Options holds exactly 4 answer choices, positions 0-3 labeled A-D.
	Options [OptionCount]string

	// CorrectLabel names the option that is correct.
	CorrectLabel Label

	// Explanation is the rationale shown after answering. May be empty.
	Explanation string
}

// NewQuestionRecord builds a QuestionRecord, enforcing the structural
// invariants: non-empty prompt, 4 non-empty options, valid correct label.
func NewQuestionRecord(prompt string, options [OptionCount]string, correctLabel Label, explanation string) (QuestionRecord, error) {
	q := QuestionRecord{
		Prompt:       prompt,
		Options:      options,
		CorrectLabel: correctLabel,
		Explanation:  explanation,
	}
	if err := q.validate(); err != nil {
		return QuestionRecord{}, err
	}
	return q, nil
}

func (q QuestionRecord) validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("question prompt is empty")
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("option %s is empty", LabelAt(i))
		}
	}
	if q.CorrectLabel.Index() < 0 {
		return fmt.Errorf("invalid correct label %q", string(q.CorrectLabel))
	}
	return nil
}

// CorrectOption returns the text of the correct answer.
func (q QuestionRecord) CorrectOption() string {
	return q.Options[q.CorrectLabel.Index()]
}

// QuestionBatch is the full set of questions returned for one generation
// request. A batch is created once by the generation gateway, is immutable,
// and is owned by the session that consumes it. It may hold fewer questions
// than requested when the generator returned fewer valid items.
type QuestionBatch struct {
	Topic      string
	Difficulty Difficulty
	Questions  []QuestionRecord
}

// Len returns the number of questions in the batch.
func (b *QuestionBatch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Questions)
}
