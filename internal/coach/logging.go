package coach

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/limitz/internal/store"
)

type contextKey string

const sessionKey contextKey = "coach_session"

// WithSession attaches a session ID to the context for event logging.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}

// SessionFrom extracts the session ID from the context, empty if unset.
func SessionFrom(ctx context.Context) string {
	if v, ok := ctx.Value(sessionKey).(string); ok {
		return v
	}
	return ""
}

// LoggingProvider is a decorator that records every coach request as an event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Complete(ctx context.Context, req Request) (*Reply, error) {
	start := time.Now()

	reply, err := l.inner.Complete(ctx, req)

	data := store.CoachRequestEventData{
		SessionID:    SessionFrom(ctx),
		Provider:     l.inner.Name(),
		Model:        l.inner.Model(),
		CoefficientA: req.CoefficientA,
		LatencyMs:    time.Since(start).Milliseconds(),
		Success:      err == nil,
	}

	if reply != nil {
		data.InputTokens = reply.InputTokens
		data.OutputTokens = reply.OutputTokens
		data.Model = reply.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendCoachRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log coach request event: %v\n", logErr)
	}

	return reply, err
}

func (l *LoggingProvider) Name() string { return l.inner.Name() }

func (l *LoggingProvider) Model() string { return l.inner.Model() }
