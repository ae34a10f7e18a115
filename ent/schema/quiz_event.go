package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one completed quiz session.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID linking the per-question AnswerEvents"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the quiz was generated for"),
		field.String("difficulty").
			NotEmpty().
			Comment("Easy, Medium, or Hard"),
		field.Int("score").
			Comment("Correct answers"),
		field.Int("total").
			Comment("Questions in the batch"),
		field.Int("answered").
			Comment("Questions actually answered (may be < total on early finish)"),
		field.Float("accuracy").
			Comment("score / total"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
		index.Fields("difficulty"),
	}
}
