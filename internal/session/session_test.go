package session

import (
	"testing"

	"github.com/abhisek/limitz/internal/evaluate"
	"github.com/abhisek/limitz/internal/problem"
)

// testState returns a session with a = 3 (target 1/3) installed as
// the current problem.
func testState(t *testing.T) *SessionState {
	t.Helper()
	gen, err := problem.NewSeededGenerator(problem.DefaultConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}
	s := NewState("test-session-id", gen, DefaultConfig())
	p, err := problem.New(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := UseProblem(s, p); err != nil {
		t.Fatal(err)
	}
	return s
}

func submit(t *testing.T, s *SessionState, raw string) SubmitResult {
	t.Helper()
	res, err := Submit(s, raw)
	if err != nil {
		t.Fatalf("Submit(%q): %v", raw, err)
	}
	return res
}

func TestSubmit_CorrectFirstTry(t *testing.T) {
	s := testState(t)

	res := submit(t, s, "1/3")
	if res.Attempt.Verdict != evaluate.VerdictCorrect {
		t.Fatalf("verdict = %s, want correct", res.Attempt.Verdict)
	}
	if !s.LockedCorrect {
		t.Error("LockedCorrect not set after correct answer")
	}
	if s.Streak != 1 {
		t.Errorf("Streak = %d, want 1", s.Streak)
	}
	if s.TotalSolved != 1 {
		t.Errorf("TotalSolved = %d, want 1", s.TotalSolved)
	}
	if s.HintTier != TierNone {
		t.Errorf("HintTier = %s, want none", s.HintTier)
	}
}

func TestSubmit_NoProblem(t *testing.T) {
	gen, err := problem.NewGenerator(problem.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s := NewState("id", gen, DefaultConfig())
	if _, err := Submit(s, "1/3"); err != ErrNoProblem {
		t.Errorf("Submit before first problem: err = %v, want ErrNoProblem", err)
	}
}

func TestSubmit_LockInvariant(t *testing.T) {
	// Once Correct is recorded, no later submission may change
	// locked_correct, streak, or hint_tier.
	s := testState(t)
	submit(t, s, "1/3")

	for _, raw := range []string{"1/4", "garbage", "1/3", ""} {
		res := submit(t, s, raw)
		if !res.Replayed {
			t.Errorf("submit(%q) after lock: Replayed = false", raw)
		}
		if res.Attempt.Verdict != evaluate.VerdictCorrect {
			t.Errorf("submit(%q) after lock: verdict = %s, want the prior correct verdict", raw, res.Attempt.Verdict)
		}
		if !s.LockedCorrect || s.Streak != 1 || s.HintTier != TierNone {
			t.Errorf("submit(%q) after lock mutated state: locked=%v streak=%d tier=%s",
				raw, s.LockedCorrect, s.Streak, s.HintTier)
		}
		if len(s.Attempts) != 1 {
			t.Errorf("submit(%q) after lock appended to history", raw)
		}
	}
}

func TestSubmit_HintEscalation(t *testing.T) {
	// One wrong parseable answer per tier: 0 → 1 → 2, clamped at 2,
	// never more than one step per failed attempt.
	s := testState(t)

	res := submit(t, s, "1/2")
	if !res.TierAdvanced || s.HintTier != TierStrategy {
		t.Fatalf("after 1st wrong: tier = %s (advanced=%v), want strategy", s.HintTier, res.TierAdvanced)
	}

	res = submit(t, s, "1/4")
	if !res.TierAdvanced || s.HintTier != TierAlgebra {
		t.Fatalf("after 2nd wrong: tier = %s (advanced=%v), want algebra", s.HintTier, res.TierAdvanced)
	}

	res = submit(t, s, "1/5")
	if res.TierAdvanced || s.HintTier != TierAlgebra {
		t.Fatalf("after 3rd wrong: tier = %s (advanced=%v), want clamped at algebra", s.HintTier, res.TierAdvanced)
	}

	if s.HintsUsed != 2 {
		t.Errorf("HintsUsed = %d, want 2", s.HintsUsed)
	}
}

func TestSubmit_HintMonotone(t *testing.T) {
	s := testState(t)
	seen := s.HintTier
	for _, raw := range []string{"1/2", "oops(", "1/4", "1/3"} {
		submit(t, s, raw)
		if s.HintTier < seen {
			t.Fatalf("hint tier decreased from %s to %s within a problem", seen, s.HintTier)
		}
		seen = s.HintTier
	}
}

func TestSubmit_CorrectAfterHintResetsStreak(t *testing.T) {
	s := testState(t)
	s.Streak = 4
	s.BestStreak = 4

	submit(t, s, "1/2") // wrong: streak breaks, tier 1
	if s.Streak != 0 {
		t.Fatalf("Streak = %d after wrong answer, want 0", s.Streak)
	}

	res := submit(t, s, "1/3") // correct, but with a hint showing
	if res.Attempt.Verdict != evaluate.VerdictCorrect {
		t.Fatal("expected correct verdict")
	}
	if s.Streak != 0 {
		t.Errorf("Streak = %d after hinted solve, want 0", s.Streak)
	}
	if s.TotalSolved != 1 {
		t.Errorf("TotalSolved = %d, want 1 (hinted solves still count)", s.TotalSolved)
	}
	if s.BestStreak != 4 {
		t.Errorf("BestStreak = %d, want 4 preserved", s.BestStreak)
	}
}

func TestSubmit_ParseErrorIsFree(t *testing.T) {
	// Default policy: malformed input neither breaks the streak nor
	// advances the hint tier, and can be resubmitted indefinitely.
	s := testState(t)
	s.Streak = 3

	for i := 0; i < 5; i++ {
		res := submit(t, s, "sqrt(")
		if res.Attempt.Verdict != evaluate.VerdictParseError {
			t.Fatalf("verdict = %s, want parse_error", res.Attempt.Verdict)
		}
		if res.TierAdvanced {
			t.Fatal("parse error advanced the hint tier")
		}
	}
	if s.Streak != 3 {
		t.Errorf("Streak = %d after parse errors, want 3", s.Streak)
	}
	if s.HintTier != TierNone {
		t.Errorf("HintTier = %s after parse errors, want none", s.HintTier)
	}
}

func TestSubmit_ParseErrorCostsAttemptPolicy(t *testing.T) {
	s := testState(t)
	s.Config.ParseErrorCostsAttempt = true
	s.Streak = 3

	submit(t, s, "sqrt(")
	if s.Streak != 0 {
		t.Errorf("Streak = %d, want 0 under the costly policy", s.Streak)
	}
	if s.HintTier != TierStrategy {
		t.Errorf("HintTier = %s, want strategy under the costly policy", s.HintTier)
	}
}

func TestSubmit_StreakResetOnIncorrect(t *testing.T) {
	s := testState(t)
	s.Streak = 9
	submit(t, s, "0.33") // truncated decimal: parses, wrong value
	if s.Streak != 0 {
		t.Errorf("Streak = %d, want 0 regardless of prior length", s.Streak)
	}
}

func TestNextProblem_OnlyWhenResolved(t *testing.T) {
	s := testState(t)

	if _, err := NextProblem(s); err != ErrProblemActive {
		t.Fatalf("NextProblem on open problem: err = %v, want ErrProblemActive", err)
	}

	submit(t, s, "1/3")
	p, err := NextProblem(s)
	if err != nil {
		t.Fatalf("NextProblem after solve: %v", err)
	}
	if p == nil || p.A < problem.MinA {
		t.Fatal("NextProblem returned no problem")
	}
}

func TestNextProblem_ResetsPerProblemState(t *testing.T) {
	s := testState(t)
	submit(t, s, "1/2")
	submit(t, s, "1/4")
	submit(t, s, "1/3")

	if s.HintTier != TierAlgebra || !s.LockedCorrect {
		t.Fatal("setup: expected tier 2 and a lock")
	}

	if _, err := NextProblem(s); err != nil {
		t.Fatal(err)
	}
	if s.HintTier != TierNone {
		t.Errorf("HintTier = %s after NextProblem, want none", s.HintTier)
	}
	if s.LockedCorrect {
		t.Error("LockedCorrect still set after NextProblem")
	}
	if s.Abandoned {
		t.Error("Abandoned still set after NextProblem")
	}
	if len(s.Attempts) != 0 {
		t.Errorf("Attempts not cleared: %d left", len(s.Attempts))
	}
	if s.TotalProblems != 2 {
		t.Errorf("TotalProblems = %d, want 2", s.TotalProblems)
	}
}

func TestAbandon_UnlocksNextAndBreaksStreak(t *testing.T) {
	s := testState(t)
	s.Streak = 2

	Abandon(s)
	if !s.Abandoned {
		t.Fatal("Abandoned not set")
	}
	if s.Streak != 0 {
		t.Errorf("Streak = %d after abandon, want 0", s.Streak)
	}
	if !s.SolutionVisible() {
		t.Error("solution not visible after abandon")
	}
	if _, err := NextProblem(s); err != nil {
		t.Errorf("NextProblem after abandon: %v", err)
	}
}

func TestSubmit_AbandonedProblemStaysUnsolved(t *testing.T) {
	// The worked solution is on screen after a give-up; typing it back
	// in must not record a solve or revive the streak.
	s := testState(t)
	Abandon(s)

	res := submit(t, s, "1/3")
	if !res.Replayed {
		t.Error("submit after abandon: Replayed = false")
	}
	if s.LockedCorrect {
		t.Error("LockedCorrect set by a submission after abandon")
	}
	if s.TotalSolved != 0 {
		t.Errorf("TotalSolved = %d after abandon, want 0", s.TotalSolved)
	}
	if s.Streak != 0 {
		t.Errorf("Streak = %d after abandon, want 0", s.Streak)
	}
	if len(s.Attempts) != 0 {
		t.Error("submission after abandon appended to history")
	}
}

func TestSubmit_ExhaustsAfterMaxWrongAttempts(t *testing.T) {
	// Three wrong answers lock the problem unsolved: the solution
	// shows, NextProblem unlocks, and the missed answer no longer
	// scores.
	s := testState(t)

	submit(t, s, "1/2")
	submit(t, s, "1/4")
	res := submit(t, s, "1/5")
	if !res.Exhausted {
		t.Fatal("third wrong answer did not report exhaustion")
	}
	if !s.Exhausted {
		t.Fatal("Exhausted not set after the cap")
	}
	if !s.SolutionVisible() {
		t.Error("solution not visible after exhaustion")
	}

	res = submit(t, s, "1/3")
	if !res.Replayed {
		t.Error("submit after exhaustion: Replayed = false")
	}
	if s.LockedCorrect || s.TotalSolved != 0 {
		t.Errorf("submission after exhaustion scored: locked=%v solved=%d",
			s.LockedCorrect, s.TotalSolved)
	}

	if _, err := NextProblem(s); err != nil {
		t.Errorf("NextProblem after exhaustion: %v", err)
	}
	if s.Exhausted {
		t.Error("Exhausted still set after NextProblem")
	}
}

func TestSubmit_UnlimitedAttemptsWhenCapDisabled(t *testing.T) {
	s := testState(t)
	s.Config.MaxWrongAttempts = 0

	for i := 0; i < 6; i++ {
		res := submit(t, s, "1/2")
		if res.Exhausted || s.Exhausted {
			t.Fatalf("wrong answer %d exhausted with the cap disabled", i+1)
		}
	}
	res := submit(t, s, "1/3")
	if res.Attempt.Verdict != evaluate.VerdictCorrect || !s.LockedCorrect {
		t.Error("correct answer did not lock with the cap disabled")
	}
}

func TestSubmit_ParseErrorsDoNotExhaustByDefault(t *testing.T) {
	s := testState(t)
	for i := 0; i < 5; i++ {
		submit(t, s, "sqrt(")
	}
	if s.Exhausted {
		t.Error("parse errors counted toward the wrong-attempt cap")
	}
}

func TestAbandon_AfterSolveIsNoOp(t *testing.T) {
	s := testState(t)
	submit(t, s, "1/3")
	Abandon(s)
	if s.Abandoned {
		t.Error("abandon after solve should be a no-op")
	}
	if s.Streak != 1 {
		t.Errorf("Streak = %d, want 1", s.Streak)
	}
}

func TestUseProblem_SharedProblemReplacesCurrent(t *testing.T) {
	s := testState(t)
	submit(t, s, "1/3")

	shared, err := problem.New(7)
	if err != nil {
		t.Fatal(err)
	}
	if err := UseProblem(s, shared); err != nil {
		t.Fatal(err)
	}
	if s.Current.A != 7 {
		t.Errorf("Current.A = %d, want 7", s.Current.A)
	}
	res := submit(t, s, "1/7")
	if res.Attempt.Verdict != evaluate.VerdictCorrect {
		t.Errorf("verdict = %s, want correct against the shared problem", res.Attempt.Verdict)
	}
}

func TestSummarize(t *testing.T) {
	s := testState(t)
	submit(t, s, "1/2")
	submit(t, s, "1/3")
	if _, err := NextProblem(s); err != nil {
		t.Fatal(err)
	}

	sum := Summarize(s)
	if sum.TotalProblems != 2 {
		t.Errorf("TotalProblems = %d, want 2", sum.TotalProblems)
	}
	if sum.TotalSolved != 1 {
		t.Errorf("TotalSolved = %d, want 1", sum.TotalSolved)
	}
	if sum.TotalAttempts != 2 {
		t.Errorf("TotalAttempts = %d, want 2", sum.TotalAttempts)
	}
	if sum.HintsUsed != 1 {
		t.Errorf("HintsUsed = %d, want 1", sum.HintsUsed)
	}
	if sum.Accuracy() != 0.5 {
		t.Errorf("Accuracy = %f, want 0.5", sum.Accuracy())
	}
}
