package problem

import (
	"math/big"
	"strings"
	"testing"
)

func TestNew_Derivation(t *testing.T) {
	// x² + (a²+2)x + (a²+1) must factor as (x+1)(x+a²+1) for every a
	// the generator or decoder can produce.
	for a := MinA; a <= 100; a++ {
		p, err := New(a)
		if err != nil {
			t.Fatalf("New(%d) returned error: %v", a, err)
		}
		if err := p.CheckDerivation(); err != nil {
			t.Errorf("a=%d: %v", a, err)
		}
		// Expand (x+1)(x+k) and compare coefficient by coefficient.
		_, k := p.Factors()
		if got, want := k+1, p.C; got != want {
			t.Errorf("a=%d: linear coefficient (x+1)(x+%d) = %d, problem has %d", a, k, got, want)
		}
		if got, want := k, p.B; got != want {
			t.Errorf("a=%d: constant coefficient (x+1)(x+%d) = %d, problem has %d", a, k, got, want)
		}
		if p.Target.Cmp(big.NewRat(1, int64(a))) != 0 {
			t.Errorf("a=%d: target = %s, want 1/%d", a, p.Target.RatString(), a)
		}
	}
}

func TestNew_RejectsInvalidA(t *testing.T) {
	for _, a := range []int{0, 1, -1, -5, MaxShared + 1} {
		if _, err := New(a); err == nil {
			t.Errorf("New(%d) succeeded, want error", a)
		}
	}
}

func TestShareCode_RoundTrip(t *testing.T) {
	for a := MinA; a <= MaxA; a++ {
		p, err := New(a)
		if err != nil {
			t.Fatalf("New(%d): %v", a, err)
		}
		code := EncodeShareCode(p)
		got, err := DecodeShareCode(code)
		if err != nil {
			t.Fatalf("DecodeShareCode(%q): %v", code, err)
		}
		if got.A != p.A || got.C != p.C || got.B != p.B {
			t.Errorf("a=%d: round trip gave a=%d c=%d b=%d", a, got.A, got.C, got.B)
		}
		if got.Target.Cmp(p.Target) != 0 {
			t.Errorf("a=%d: round trip target %s, want %s", a, got.Target.RatString(), p.Target.RatString())
		}
	}
}

func TestDecodeShareCode_Tampered(t *testing.T) {
	cases := []struct {
		name string
		code string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"not a number", "aGVsbG8="}, // "hello"
		{"zero", "MA=="},             // "0"
		{"one", "MQ=="},              // "1"
		{"negative", "LTU="},         // "-5"
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeShareCode(tc.code); err == nil {
				t.Errorf("DecodeShareCode(%q) succeeded, want error", tc.code)
			}
		})
	}
}

func TestGenerator_StaysInRange(t *testing.T) {
	g, err := NewGenerator(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		p, err := g.Generate()
		if err != nil {
			t.Fatal(err)
		}
		if p.A < MinA || p.A > MaxA {
			t.Fatalf("generated a=%d outside [%d, %d]", p.A, MinA, MaxA)
		}
	}
}

func TestGenerator_SeededReproducible(t *testing.T) {
	g1, err := NewSeededGenerator(DefaultConfig(), 42)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := NewSeededGenerator(DefaultConfig(), 42)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		p1, err1 := g1.Generate()
		p2, err2 := g2.Generate()
		if err1 != nil || err2 != nil {
			t.Fatal(err1, err2)
		}
		if p1.A != p2.A {
			t.Fatalf("step %d: seeded generators diverged (%d vs %d)", i, p1.A, p2.A)
		}
	}
}

func TestNewGenerator_RejectsBadRange(t *testing.T) {
	for _, cfg := range []Config{
		{MinA: 0, MaxA: 12},
		{MinA: 5, MaxA: 4},
		{MinA: 2, MaxA: MaxShared + 1},
	} {
		if _, err := NewGenerator(cfg); err == nil {
			t.Errorf("NewGenerator(%+v) succeeded, want error", cfg)
		}
	}
}

func TestPrompt_ShowsDerivedCoefficients(t *testing.T) {
	p, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	got := Prompt(p)
	for _, want := range []string{"11x", "+ 10", "x + 1", "√"} {
		if !strings.Contains(got, want) {
			t.Errorf("Prompt = %q, missing %q", got, want)
		}
	}
}

func TestSolutionSteps_EndsAtTarget(t *testing.T) {
	p, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	steps := SolutionSteps(p)
	if len(steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(steps))
	}
	if !strings.Contains(steps[0], "(x + 1)(x + 26)") {
		t.Errorf("step 1 = %q, missing factorization", steps[0])
	}
	if !strings.Contains(steps[3], "1/5") {
		t.Errorf("step 4 = %q, missing final answer 1/5", steps[3])
	}
}

func TestStrategyHint_NamesDenominator(t *testing.T) {
	// The tier-1 cue quotes this problem's denominator, not a stock
	// phrase.
	p, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	if got := StrategyHint(p); !strings.Contains(got, Denominator(p)) {
		t.Errorf("StrategyHint = %q, missing %q", got, Denominator(p))
	}
}

func TestAlgebraHint_NamesCommonFactor(t *testing.T) {
	p, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	if got := AlgebraHint(p); !strings.Contains(got, "(x + 1)") {
		t.Errorf("AlgebraHint = %q, missing (x + 1)", got)
	}
}
