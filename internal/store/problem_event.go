package store

import (
	"context"
	"fmt"

	"github.com/abhisek/limitz/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendProblem(ctx context.Context, data ProblemEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProblemEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCoefficientA(data.CoefficientA).
		SetCoefficientC(data.CoefficientC).
		SetCoefficientB(data.CoefficientB).
		SetTarget(data.Target).
		SetSource(data.Source).
		SetShareCode(data.ShareCode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save problem event: %w", err)
	}
	return nil
}
