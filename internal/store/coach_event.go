package store

import (
	"context"
	"fmt"

	"github.com/abhisek/limitz/ent"
	"github.com/abhisek/limitz/ent/coachrequestevent"
)

func (r *eventRepo) AppendCoachRequest(ctx context.Context, data CoachRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CoachRequestEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetCoefficientA(data.CoefficientA).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save coach request event: %w", err)
	}
	return nil
}

func (r *eventRepo) CoachUsageByProvider(ctx context.Context) ([]CoachUsage, error) {
	events, err := r.client.CoachRequestEvent.Query().
		Order(ent.Asc(coachrequestevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query coach events: %w", err)
	}

	byProvider := make(map[string]*CoachUsage)
	var order []string
	for _, e := range events {
		u, ok := byProvider[e.Provider]
		if !ok {
			u = &CoachUsage{Provider: e.Provider}
			byProvider[e.Provider] = u
			order = append(order, e.Provider)
		}
		u.Requests++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		if !e.Success {
			u.Failures++
		}
	}

	usage := make([]CoachUsage, 0, len(order))
	for _, p := range order {
		usage = append(usage, *byProvider[p])
	}
	return usage, nil
}
