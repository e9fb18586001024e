package session

import "time"

// SessionSummary is the end-of-session rollup for the summary screen
// and the session-end event.
type SessionSummary struct {
	SessionID     string
	TotalProblems int
	TotalSolved   int
	TotalAttempts int
	BestStreak    int
	HintsUsed     int
	Duration      time.Duration
}

// Summarize builds the rollup from the final state.
func Summarize(s *SessionState) *SessionSummary {
	return &SessionSummary{
		SessionID:     s.SessionID,
		TotalProblems: s.TotalProblems,
		TotalSolved:   s.TotalSolved,
		TotalAttempts: s.TotalAttempts,
		BestStreak:    s.BestStreak,
		HintsUsed:     s.HintsUsed,
		Duration:      time.Since(s.StartTime),
	}
}

// Accuracy is solved problems over problems served.
func (s *SessionSummary) Accuracy() float64 {
	if s.TotalProblems == 0 {
		return 0
	}
	return float64(s.TotalSolved) / float64(s.TotalProblems)
}
