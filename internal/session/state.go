package session

import (
	"time"

	"github.com/abhisek/limitz/internal/evaluate"
	"github.com/abhisek/limitz/internal/problem"
)

// HintTier is the scaffolding escalation level for the current problem.
// It only ever moves forward within a problem; a new problem resets it.
type HintTier int

const (
	TierNone     HintTier = iota // no hint shown
	TierStrategy                 // name the 0/0 form, suggest factoring
	TierAlgebra                  // point at the (x+1) common factor
)

func (t HintTier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierStrategy:
		return "strategy"
	case TierAlgebra:
		return "algebra"
	}
	return "unknown"
}

// Config controls the attempt/hint policy.
type Config struct {
	// FreeAttemptsPerTier is how many wrong (parseable) answers the
	// student gets at a hint tier before the next tier is revealed.
	FreeAttemptsPerTier int

	// ParseErrorCostsAttempt makes malformed input count toward hint
	// escalation and break the streak. Off by default: a typo is
	// re-promptable for free, only a wrong value costs anything.
	ParseErrorCostsAttempt bool

	// MaxWrongAttempts is how many wrong (parseable) answers a
	// problem allows before it locks unsolved with the solution
	// shown. Zero means unlimited.
	MaxWrongAttempts int
}

// DefaultConfig matches the original app: one wrong answer per tier,
// three wrong answers before the problem locks unsolved.
func DefaultConfig() Config {
	return Config{
		FreeAttemptsPerTier:    1,
		ParseErrorCostsAttempt: false,
		MaxWrongAttempts:       3,
	}
}

// SessionState is the explicit per-session state. Every transition
// goes through the functions in this package; nothing here is a
// process-wide singleton, so sessions are isolated by construction and
// tests build states directly.
type SessionState struct {
	// SessionID groups persisted events for this session.
	SessionID string

	// Config is the attempt/hint policy for this session.
	Config Config

	// Generator supplies problems for NextProblem.
	Generator *problem.Generator

	// Current is the active problem; nil before the first one.
	Current *problem.Problem

	// Attempts is the ordered attempt history for the current problem.
	Attempts []evaluate.Attempt

	// HintTier is monotone within a problem; reset only by a new problem.
	HintTier HintTier

	// Streak counts consecutive problems solved without any hint.
	Streak int

	// BestStreak is the session's high-water mark.
	BestStreak int

	// TotalSolved counts problems solved (locked correct) this session.
	TotalSolved int

	// TotalProblems counts problems served this session.
	TotalProblems int

	// TotalAttempts counts evaluated submissions this session
	// (replays after a lock do not count).
	TotalAttempts int

	// HintsUsed counts tier reveals this session.
	HintsUsed int

	// LockedCorrect latches once a Correct verdict is recorded for the
	// current problem. While set, further submissions are no-ops: the
	// recorded outcome for this problem can never change.
	LockedCorrect bool

	// Abandoned is set when the student gives up on the current
	// problem; it unlocks NextProblem and reveals the solution.
	Abandoned bool

	// Exhausted is set when the wrong-attempt cap runs out on the
	// current problem. Like Abandoned it unlocks NextProblem and
	// reveals the solution; the problem stays unsolved.
	Exhausted bool

	// WrongAtTier counts wrong answers since the last tier change.
	WrongAtTier int

	// StartTime is when the session began.
	StartTime time.Time
}

// NewState creates a session with no active problem.
func NewState(sessionID string, gen *problem.Generator, cfg Config) *SessionState {
	if cfg.FreeAttemptsPerTier <= 0 {
		cfg.FreeAttemptsPerTier = 1
	}
	return &SessionState{
		SessionID: sessionID,
		Config:    cfg,
		Generator: gen,
		StartTime: time.Now(),
	}
}

// SolutionVisible reports whether the worked solution may be shown:
// only after the current problem is locked (solved, given up, or out
// of attempts).
func (s *SessionState) SolutionVisible() bool {
	return s.Current != nil && resolved(s)
}
