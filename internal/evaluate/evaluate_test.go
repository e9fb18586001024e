package evaluate

import (
	"testing"

	"github.com/abhisek/limitz/internal/problem"
)

func problemFor(t *testing.T, a int) problem.Problem {
	t.Helper()
	p, err := problem.New(a)
	if err != nil {
		t.Fatalf("New(%d): %v", a, err)
	}
	return p
}

func TestEvaluate_EquivalenceAcceptance(t *testing.T) {
	// a = 3, target 1/3: every exact rendering of 1/3 is Correct,
	// a truncated decimal is Incorrect, garbage is a ParseError.
	p := problemFor(t, 3)

	cases := []struct {
		input string
		want  Verdict
	}{
		{"1/3", VerdictCorrect},
		{"0.3333333333333333", VerdictCorrect},
		{"sqrt(1)/3", VerdictCorrect},
		{"√(1/9)", VerdictCorrect},
		{"2/6", VerdictCorrect},
		{"  1/3  ", VerdictCorrect},
		{"0.33", VerdictIncorrect},
		{"0.3", VerdictIncorrect},
		{"1/4", VerdictIncorrect},
		{"-1/3", VerdictIncorrect},
		{"3", VerdictIncorrect},
		{"sqrt(2)/3", VerdictIncorrect},
		{"", VerdictParseError},
		{"one third", VerdictParseError},
		{"1/", VerdictParseError},
		{"1/0", VerdictParseError},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			att := Evaluate(p, tc.input)
			if att.Verdict != tc.want {
				t.Errorf("Evaluate(%q) = %s, want %s", tc.input, att.Verdict, tc.want)
			}
			if att.RawInput != tc.input {
				t.Errorf("RawInput = %q, want %q", att.RawInput, tc.input)
			}
		})
	}
}

func TestEvaluate_ReportsParsedValue(t *testing.T) {
	p := problemFor(t, 5)

	att := Evaluate(p, "3/15")
	if att.Verdict != VerdictCorrect {
		t.Fatalf("verdict = %s, want correct", att.Verdict)
	}
	if att.Value == nil || att.Value.String() != "1/5" {
		t.Errorf("parsed value = %v, want 1/5", att.Value)
	}

	att = Evaluate(p, "1/4")
	if att.Verdict != VerdictIncorrect {
		t.Fatalf("verdict = %s, want incorrect", att.Verdict)
	}
	if att.Value == nil || att.Value.String() != "1/4" {
		t.Errorf("parsed value = %v, want 1/4 for feedback", att.Value)
	}
}

func TestEvaluate_ParseErrorDetail(t *testing.T) {
	p := problemFor(t, 2)
	att := Evaluate(p, "sqrt(")
	if att.Verdict != VerdictParseError {
		t.Fatalf("verdict = %s, want parse_error", att.Verdict)
	}
	if att.Detail == "" {
		t.Error("expected a parse failure message for feedback")
	}
	if att.Value != nil {
		t.Error("parse failures must not carry a value")
	}
}

func TestEvaluate_IsPure(t *testing.T) {
	p := problemFor(t, 7)
	first := Evaluate(p, "1/7")
	second := Evaluate(p, "1/7")
	if first.Verdict != second.Verdict {
		t.Error("same input produced different verdicts")
	}
	if p.Target.RatString() != "1/7" {
		t.Error("Evaluate mutated the problem target")
	}
}
