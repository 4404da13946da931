package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studium/ent"
	"github.com/abhisek/studium/ent/airequestlog"
)

// aiRequestRepo implements AIRequestRepo backed by ent.
type aiRequestRepo struct {
	client *ent.Client
}

func (r *aiRequestRepo) Append(ctx context.Context, in AIRequestInput) error {
	_, err := r.client.AIRequestLog.Create().
		SetProvider(in.Provider).
		SetModel(in.Model).
		SetPurpose(in.Purpose).
		SetInputTokens(in.InputTokens).
		SetOutputTokens(in.OutputTokens).
		SetLatencyMs(in.LatencyMS).
		SetSuccess(in.Success).
		SetErrorMessage(in.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save AI request log: %w", err)
	}
	return nil
}

func (r *aiRequestRepo) Recent(ctx context.Context, limit int) ([]*AIRequest, error) {
	q := r.client.AIRequestLog.Query().
		Order(ent.Desc(airequestlog.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent AI requests: %w", err)
	}
	out := make([]*AIRequest, len(rows))
	for i, a := range rows {
		out[i] = &AIRequest{
			ID:           a.ID,
			Provider:     a.Provider,
			Model:        a.Model,
			Purpose:      a.Purpose,
			InputTokens:  a.InputTokens,
			OutputTokens: a.OutputTokens,
			LatencyMS:    a.LatencyMs,
			Success:      a.Success,
			ErrorMessage: a.ErrorMessage,
			CreatedAt:    a.CreatedAt,
		}
	}
	return out, nil
}

func (r *aiRequestRepo) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.client.AIRequestLog.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AI request log: %w", err)
	}

	byPurpose := make(map[string]*PurposeUsage)
	order := make([]string, 0)
	for _, a := range rows {
		u, ok := byPurpose[a.Purpose]
		if !ok {
			u = &PurposeUsage{Purpose: a.Purpose}
			byPurpose[a.Purpose] = u
			order = append(order, a.Purpose)
		}
		u.Requests++
		if !a.Success {
			u.Failures++
		}
		u.InputTokens += a.InputTokens
		u.OutputTokens += a.OutputTokens
	}

	out := make([]PurposeUsage, len(order))
	for i, p := range order {
		out[i] = *byPurpose[p]
	}
	return out, nil
}
