package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the student's aggregate progress at a point in time.
type SnapshotData struct {
	Version       int `json:"version"`
	TotalProblems int `json:"total_problems"`
	TotalSolved   int `json:"total_solved"`
	TotalAttempts int `json:"total_attempts"`
	BestStreak    int `json:"best_streak"`
	HintsUsed     int `json:"hints_used"`
}

// Snapshot represents a point-in-time capture of aggregate progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ProblemEventData captures a limit exercise being served.
type ProblemEventData struct {
	SessionID    string
	CoefficientA int
	CoefficientC int
	CoefficientB int
	Target       string
	Source       string // "generated" or "shared"
	ShareCode    string
}

// AttemptEventData captures a submitted answer and its verdict.
type AttemptEventData struct {
	SessionID    string
	CoefficientA int
	RawInput     string
	ParsedValue  string
	Verdict      string
	HintTier     int
	Replayed     bool
	TimeMs       int64
}

// HintEventData captures a hint tier being unlocked.
type HintEventData struct {
	SessionID    string
	CoefficientA int
	Tier         int
}

// SessionEventData captures a session lifecycle change.
type SessionEventData struct {
	SessionID   string
	EventType   string // "started", "solved", "abandoned", "exhausted", "ended"
	Streak      int
	BestStreak  int
	TotalSolved int
}

// CoachRequestEventData captures a single AI coach API call.
type CoachRequestEventData struct {
	SessionID    string
	Provider     string
	Model        string
	CoefficientA int
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// Stats aggregates lifetime practice metrics across all sessions.
type Stats struct {
	TotalProblems   int
	TotalSolved     int
	TotalAttempts   int
	CorrectAttempts int
	ParseErrors     int
	HintsUsed       int
	BestStreak      int
	SolvedByA       map[int]int
}

// Accuracy returns correct attempts over scored attempts, 0 when empty.
func (s Stats) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.CorrectAttempts) / float64(s.TotalAttempts)
}

// CoachUsage aggregates coach requests per provider.
type CoachUsage struct {
	Provider     string
	Requests     int
	InputTokens  int
	OutputTokens int
	Failures     int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendProblem records that a problem was served.
	AppendProblem(ctx context.Context, data ProblemEventData) error

	// AppendAttempt records a submitted answer.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendHint records a hint tier unlock.
	AppendHint(ctx context.Context, data HintEventData) error

	// AppendSession records a session lifecycle event.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendCoachRequest records an AI coach API call.
	AppendCoachRequest(ctx context.Context, data CoachRequestEventData) error

	// Stats computes lifetime practice metrics from the event log.
	Stats(ctx context.Context) (Stats, error)

	// CoachUsageByProvider aggregates coach requests per provider.
	CoachUsageByProvider(ctx context.Context) ([]CoachUsage, error)
}
