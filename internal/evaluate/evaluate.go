// Package evaluate judges a submitted answer against a problem's
// canonical value. Evaluation is a pure function of (problem, input):
// no session state, no side effects.
package evaluate

import (
	"strings"

	"github.com/abhisek/limitz/internal/exact"
	"github.com/abhisek/limitz/internal/problem"
)

// Verdict classifies one submission.
type Verdict string

const (
	// VerdictCorrect: the parsed value equals the target exactly.
	VerdictCorrect Verdict = "correct"

	// VerdictIncorrect: the input parsed fine but names a different
	// value (includes truncated decimals like "0.33" for 1/3).
	VerdictIncorrect Verdict = "incorrect"

	// VerdictParseError: the input could not be read as an exact
	// value. Recoverable; the student resubmits.
	VerdictParseError Verdict = "parse_error"
)

// Attempt is the evaluated record of a single submission.
type Attempt struct {
	// RawInput is the literal string the student submitted.
	RawInput string

	// Value is the parsed exact value; nil when Verdict is
	// VerdictParseError.
	Value *exact.Value

	// Verdict is the classification of this attempt.
	Verdict Verdict

	// Detail carries the parse failure message for feedback display.
	// Empty unless Verdict is VerdictParseError.
	Detail string
}

// Evaluate parses raw and compares it to p's target with exact
// rational/radical equality. Decimal approximations are never compared
// with a tolerance; the exact package's documented snap policy is the
// only place a decimal is reinterpreted.
func Evaluate(p problem.Problem, raw string) Attempt {
	att := Attempt{RawInput: raw}

	v, err := exact.Parse(strings.TrimSpace(raw))
	if err != nil {
		att.Verdict = VerdictParseError
		att.Detail = err.Error()
		return att
	}

	att.Value = v
	if v.Equal(exact.FromRat(p.Target)) {
		att.Verdict = VerdictCorrect
	} else {
		att.Verdict = VerdictIncorrect
	}
	return att
}
