package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/quizforge/quizforge/ent"
	"github.com/quizforge/quizforge/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) LLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM requests: %w", err)
	}

	records := make([]LLMRequestRecord, 0, len(events))
	for _, e := range events {
		records = append(records, LLMRequestRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
				RequestBody:  e.RequestBody,
				ResponseBody: e.ResponseBody,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) GetLLMRequest(ctx context.Context, sequence int64) (*LLMRequestRecord, error) {
	e, err := r.client.LLMRequestEvent.Query().
		Where(llmrequestevent.Sequence(sequence)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM request %d: %w", sequence, err)
	}

	return &LLMRequestRecord{
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}, nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]ModelUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	byModel := make(map[string]*ModelUsage)
	for _, e := range events {
		u, ok := byModel[e.Model]
		if !ok {
			u = &ModelUsage{Model: e.Model}
			byModel[e.Model] = u
		}
		u.Requests++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	out := make([]ModelUsage, 0, len(byModel))
	for _, u := range byModel {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}
