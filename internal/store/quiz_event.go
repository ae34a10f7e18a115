package store

import (
	"context"
	"fmt"

	"github.com/quizforge/quizforge/ent"
	"github.com/quizforge/quizforge/ent/answerevent"
	"github.com/quizforge/quizforge/ent/quizevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetAnswered(data.Answered).
		SetAccuracy(data.Accuracy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}

	// Answers get their own sequence numbers so cross-type ordering holds.
	for _, a := range data.Answers {
		answerSeq, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		_, err = r.client.AnswerEvent.Create().
			SetSequence(answerSeq).
			SetSessionID(data.SessionID).
			SetQuestionIndex(a.QuestionIndex).
			SetPrompt(a.Prompt).
			SetCorrectLabel(a.CorrectLabel).
			SetChosenLabel(a.ChosenLabel).
			SetCorrect(a.Correct).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save answer event: %w", err)
		}
	}

	return nil
}

func (r *eventRepo) QuizHistory(ctx context.Context, opts QueryOpts) ([]QuizRecord, error) {
	q := r.client.QuizEvent.Query().
		Order(ent.Asc(quizevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(quizevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(quizevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(quizevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}

	records := make([]QuizRecord, 0, len(events))
	for _, e := range events {
		rec, err := r.toQuizRecord(ctx, e)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *eventRepo) LatestQuizForTopic(ctx context.Context, topic string) (*QuizRecord, error) {
	e, err := r.client.QuizEvent.Query().
		Where(quizevent.TopicEqualFold(topic)).
		Order(ent.Desc(quizevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest quiz for topic: %w", err)
	}

	rec, err := r.toQuizRecord(ctx, e)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// toQuizRecord rebuilds a stored quiz with its per-question answers.
func (r *eventRepo) toQuizRecord(ctx context.Context, e *ent.QuizEvent) (QuizRecord, error) {
	answers, err := r.client.AnswerEvent.Query().
		Where(answerevent.SessionID(e.SessionID)).
		Order(ent.Asc(answerevent.FieldQuestionIndex)).
		All(ctx)
	if err != nil {
		return QuizRecord{}, fmt.Errorf("query answers for session %s: %w", e.SessionID, err)
	}

	rec := QuizRecord{
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		QuizEventData: QuizEventData{
			SessionID:  e.SessionID,
			Topic:      e.Topic,
			Difficulty: e.Difficulty,
			Score:      e.Score,
			Total:      e.Total,
			Answered:   e.Answered,
			Accuracy:   e.Accuracy,
		},
	}
	for _, a := range answers {
		rec.Answers = append(rec.Answers, AnswerData{
			QuestionIndex: a.QuestionIndex,
			Prompt:        a.Prompt,
			CorrectLabel:  a.CorrectLabel,
			ChosenLabel:   a.ChosenLabel,
			Correct:       a.Correct,
		})
	}
	return rec, nil
}
