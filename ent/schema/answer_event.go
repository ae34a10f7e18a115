package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a quiz session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to QuizEvent"),
		field.Int("question_index").
			Comment("Position within the batch"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.String("correct_label").
			NotEmpty().
			Comment("A, B, C, or D"),
		field.String("chosen_label").
			NotEmpty().
			Comment("The label the user picked"),
		field.Bool("correct").
			Comment("Whether chosen matched correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
