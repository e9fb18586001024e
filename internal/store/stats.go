package store

import (
	"context"
	"fmt"

	"github.com/abhisek/limitz/ent/attemptevent"
	"github.com/abhisek/limitz/ent/sessionevent"
)

func (r *eventRepo) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{SolvedByA: make(map[int]int)}

	total, err := r.client.ProblemEvent.Query().Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count problems: %w", err)
	}
	stats.TotalProblems = total

	attempts, err := r.client.AttemptEvent.Query().
		Where(attemptevent.Replayed(false)).
		All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("query attempts: %w", err)
	}
	for _, a := range attempts {
		switch a.Verdict {
		case "parse_error":
			stats.ParseErrors++
		case "correct":
			stats.TotalAttempts++
			stats.CorrectAttempts++
			stats.TotalSolved++
			stats.SolvedByA[a.CoefficientA]++
		default:
			stats.TotalAttempts++
		}
	}

	hints, err := r.client.HintEvent.Query().Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count hints: %w", err)
	}
	stats.HintsUsed = hints

	// Best streak is carried on every session event; take the max.
	sessions, err := r.client.SessionEvent.Query().
		Select(sessionevent.FieldBestStreak).
		All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("query sessions: %w", err)
	}
	for _, s := range sessions {
		if s.BestStreak > stats.BestStreak {
			stats.BestStreak = s.BestStreak
		}
	}

	return stats, nil
}
