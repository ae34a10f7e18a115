// Code generated by ent, DO NOT EDIT.

package quizevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quizforge/quizforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSessionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTopic, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldScore, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTotal, v))
}

// Answered applies equality check predicate on the "answered" field. It's identical to AnsweredEQ.
func Answered(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldAnswered, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldAccuracy, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldTopic, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldScore, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldTotal, v))
}

// AnsweredEQ applies the EQ predicate on the "answered" field.
func AnsweredEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldAnswered, v))
}

// AnsweredNEQ applies the NEQ predicate on the "answered" field.
func AnsweredNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldAnswered, v))
}

// AnsweredIn applies the In predicate on the "answered" field.
func AnsweredIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldAnswered, vs...))
}

// AnsweredNotIn applies the NotIn predicate on the "answered" field.
func AnsweredNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldAnswered, vs...))
}

// AnsweredGT applies the GT predicate on the "answered" field.
func AnsweredGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldAnswered, v))
}

// AnsweredGTE applies the GTE predicate on the "answered" field.
func AnsweredGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldAnswered, v))
}

// AnsweredLT applies the LT predicate on the "answered" field.
func AnsweredLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldAnswered, v))
}

// AnsweredLTE applies the LTE predicate on the "answered" field.
func AnsweredLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldAnswered, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldAccuracy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.NotPredicates(p))
}
