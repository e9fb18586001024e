package problem

import (
	"fmt"
	"math/big"
)

// Coefficient bounds for a. The original range is 2-12; the decoder
// accepts anything in [MinA, MaxShared] so that shared problems built
// by newer configs still load.
const (
	MinA = 2
	MaxA = 12

	// MaxShared caps a for decoded share codes. Keeps c = a²+2 small
	// enough for display and plotting.
	MaxShared = 9999
)

// Problem is one limit exercise:
//
//	lim_{x→-1} √( (x+1) / (x² + c·x + b) )
//
// with c = a²+2 and b = c−1. The denominator factors as
// (x+1)(x+a²+1), so the inner fraction tends to 1/a² and the limit is
// 1/a. Immutable once created; advancing to the next exercise replaces
// the Problem rather than mutating it.
type Problem struct {
	// A determines the whole problem. The canonical limit is 1/A.
	A int

	// C and B are the denominator coefficients, derived from A.
	C int
	B int

	// Target is the exact limit 1/A. Never a float.
	Target *big.Rat
}

// ErrInvalidA reports a coefficient that cannot produce a valid
// problem (reachable through tampered share codes).
type ErrInvalidA struct {
	A int
}

func (e *ErrInvalidA) Error() string {
	return fmt.Sprintf("invalid problem coefficient a=%d: must be in [%d, %d]", e.A, MinA, MaxShared)
}

// New derives a Problem from a. Negative a is rejected along with 0
// and 1: the √ in the displayed expression makes the limit 1/|a|, so
// only positive a keeps target = 1/a true.
func New(a int) (Problem, error) {
	if a < MinA || a > MaxShared {
		return Problem{}, &ErrInvalidA{A: a}
	}
	c := a*a + 2
	return Problem{
		A:      a,
		C:      c,
		B:      c - 1,
		Target: big.NewRat(1, int64(a)),
	}, nil
}

// Factors returns the roots structure of the denominator:
// x² + c·x + b = (x + 1)(x + k) with k = a²+1.
func (p Problem) Factors() (one, k int) {
	return 1, p.A*p.A + 1
}

// CheckDerivation verifies the factorization identity
// x² + c·x + b = (x+1)(x + a²+1) by expanding the right side.
// The derivation guarantees this structurally; generation asserts it
// anyway so a future change to the formulas cannot ship a problem
// whose solution steps are wrong.
func (p Problem) CheckDerivation() error {
	k := p.A*p.A + 1
	// (x+1)(x+k) = x² + (k+1)x + k
	if p.C != k+1 {
		return fmt.Errorf("coefficient c=%d does not match k+1=%d", p.C, k+1)
	}
	if p.B != k {
		return fmt.Errorf("coefficient b=%d does not match k=%d", p.B, k)
	}
	if p.Target == nil || p.Target.Cmp(big.NewRat(1, int64(p.A))) != 0 {
		return fmt.Errorf("target %v does not equal 1/%d", p.Target, p.A)
	}
	return nil
}

// TargetString renders the canonical answer as "1/a".
func (p Problem) TargetString() string {
	return p.Target.RatString()
}
