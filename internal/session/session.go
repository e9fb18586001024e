// Package session implements the attempt/hint state machine around the
// evaluator. All transitions are total: malformed input, repeated
// submissions after a solve, and give-ups are ordinary results, never
// faults.
package session

import (
	"errors"

	"github.com/abhisek/limitz/internal/evaluate"
	"github.com/abhisek/limitz/internal/problem"
)

// ErrProblemActive is returned by NextProblem while the current
// problem is still open (not solved, not abandoned).
var ErrProblemActive = errors.New("current problem is still active")

// ErrNoProblem is returned by Submit before any problem is served.
var ErrNoProblem = errors.New("no active problem")

// SubmitResult is what one submission did to the session.
type SubmitResult struct {
	// Attempt is the evaluated attempt. For a replay after the
	// problem is locked, this is the original correct attempt.
	Attempt evaluate.Attempt

	// HintTier is the tier after this submission; the caller shows
	// the matching hint text.
	HintTier HintTier

	// TierAdvanced is set when this submission revealed a new tier.
	TierAdvanced bool

	// Replayed is set when the problem was already locked and the
	// submission was ignored (anti-cheat: once the outcome for a
	// problem is recorded it cannot change).
	Replayed bool

	// Exhausted is set when this submission used the last allowed
	// wrong attempt and the problem locked unsolved.
	Exhausted bool

	// Streak is the streak after this submission.
	Streak int
}

// Submit runs one answer through the evaluator and applies the
// scoring/hint policy.
//
// Streak policy (documented, tested): solving with no hint revealed
// increments the streak; solving after any hint resets it to zero; a
// wrong (parseable) answer resets it immediately. Parse errors neither
// reset the streak nor advance hints unless ParseErrorCostsAttempt is
// set. Once MaxWrongAttempts wrong answers are recorded the problem
// locks unsolved and the solution becomes visible.
func Submit(s *SessionState, raw string) (SubmitResult, error) {
	if s.Current == nil {
		return SubmitResult{}, ErrNoProblem
	}

	// Lock invariant: once the problem is resolved (solved, given up,
	// or out of attempts), later submissions are no-ops that report
	// the prior attempt without scoring. Typing the revealed answer
	// after a give-up must not count as a solve.
	if resolved(s) {
		return SubmitResult{
			Attempt:  lastAttempt(s),
			HintTier: s.HintTier,
			Replayed: true,
			Streak:   s.Streak,
		}, nil
	}

	att := evaluate.Evaluate(*s.Current, raw)
	s.Attempts = append(s.Attempts, att)
	s.TotalAttempts++

	res := SubmitResult{Attempt: att, HintTier: s.HintTier}

	switch att.Verdict {
	case evaluate.VerdictCorrect:
		s.LockedCorrect = true
		s.TotalSolved++
		if s.HintTier == TierNone {
			s.Streak++
			if s.Streak > s.BestStreak {
				s.BestStreak = s.Streak
			}
		} else {
			// Hints reduce the reward: the solve counts, the
			// streak does not survive.
			s.Streak = 0
		}

	case evaluate.VerdictIncorrect:
		s.Streak = 0
		res.TierAdvanced = escalate(s)
		res.Exhausted = exhaust(s)

	case evaluate.VerdictParseError:
		if s.Config.ParseErrorCostsAttempt {
			s.Streak = 0
			res.TierAdvanced = escalate(s)
			res.Exhausted = exhaust(s)
		}
	}

	res.HintTier = s.HintTier
	res.Streak = s.Streak
	return res, nil
}

// escalate counts a failed attempt and advances the hint tier by at
// most one step, clamped at TierAlgebra. Reports whether it advanced.
func escalate(s *SessionState) bool {
	s.WrongAtTier++
	if s.WrongAtTier < s.Config.FreeAttemptsPerTier {
		return false
	}
	s.WrongAtTier = 0
	if s.HintTier >= TierAlgebra {
		return false
	}
	s.HintTier++
	s.HintsUsed++
	return true
}

// exhaust locks the problem unsolved once the wrong-attempt cap is
// reached. Reports whether this call tripped the cap.
func exhaust(s *SessionState) bool {
	limit := s.Config.MaxWrongAttempts
	if limit <= 0 || s.Exhausted {
		return false
	}
	wrong := 0
	for _, a := range s.Attempts {
		switch a.Verdict {
		case evaluate.VerdictIncorrect:
			wrong++
		case evaluate.VerdictParseError:
			if s.Config.ParseErrorCostsAttempt {
				wrong++
			}
		}
	}
	if wrong < limit {
		return false
	}
	s.Exhausted = true
	return true
}

// Abandon gives up on the current problem: the solution becomes
// visible, the streak breaks, and NextProblem unlocks. Abandoning a
// resolved problem is a no-op.
func Abandon(s *SessionState) {
	if s.Current == nil || resolved(s) {
		return
	}
	s.Abandoned = true
	s.Streak = 0
}

// NextProblem replaces the current problem with a freshly generated
// one. Only legal when the current problem is resolved (locked correct
// or abandoned) or when no problem has been served yet.
func NextProblem(s *SessionState) (*problem.Problem, error) {
	if s.Current != nil && !resolved(s) {
		return nil, ErrProblemActive
	}
	p, err := s.Generator.Generate()
	if err != nil {
		return nil, err
	}
	install(s, p)
	return s.Current, nil
}

// UseProblem installs a specific problem (decoded from a share code)
// under the same resolution rule as NextProblem.
func UseProblem(s *SessionState, p problem.Problem) error {
	if s.Current != nil && !resolved(s) {
		return ErrProblemActive
	}
	install(s, p)
	return nil
}

// install swaps the problem in and resets per-problem state. Problems
// are replaced, never mutated.
func install(s *SessionState, p problem.Problem) {
	s.Current = &p
	s.Attempts = nil
	s.HintTier = TierNone
	s.LockedCorrect = false
	s.Abandoned = false
	s.Exhausted = false
	s.WrongAtTier = 0
	s.TotalProblems++
}

// resolved reports whether the current problem is finished, one way
// or another, so its outcome is frozen and a new one may be installed.
func resolved(s *SessionState) bool {
	return s.LockedCorrect || s.Abandoned || s.Exhausted
}

// lastAttempt returns the attempt that resolved the current problem;
// for a solved problem that is the correct one. Zero when the problem
// was given up without any attempt.
func lastAttempt(s *SessionState) evaluate.Attempt {
	if len(s.Attempts) == 0 {
		return evaluate.Attempt{}
	}
	return s.Attempts[len(s.Attempts)-1]
}
