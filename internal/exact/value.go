// Package exact implements the exact arithmetic used to judge student
// answers. A Value is a finite sum of rational multiples of square
// roots of squarefree integers; every answer form the drill accepts
// (integers, decimals, fractions, sqrt expressions) normalizes into
// this shape, so equality is exact term-by-term comparison and never a
// float tolerance.
package exact

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// maxRadicand bounds the integers we factor for squarefree
// normalization. Trial division stays cheap below this.
const maxRadicand = 1_000_000_000_000

// Value is an exact number: a map from squarefree radicand to rational
// coefficient. The rational part is the coefficient of radicand 1.
// The zero map represents 0. Values are immutable; operations return
// new Values.
type Value struct {
	terms map[int64]*big.Rat
}

// ErrUnsupported reports an operation the exact algebra cannot express
// (nested radicals, division by a long radical sum, huge radicands).
// The evaluator surfaces it to the student as a parse failure.
type ErrUnsupported struct {
	Op     string
	Detail string
}

func (e *ErrUnsupported) Error() string {
	return fmt.Sprintf("unsupported %s: %s", e.Op, e.Detail)
}

func newValue() *Value {
	return &Value{terms: make(map[int64]*big.Rat)}
}

// FromRat builds a rational Value.
func FromRat(r *big.Rat) *Value {
	v := newValue()
	if r.Sign() != 0 {
		v.terms[1] = new(big.Rat).Set(r)
	}
	return v
}

// FromInt builds an integer Value.
func FromInt(n int64) *Value {
	return FromRat(big.NewRat(n, 1))
}

func (v *Value) addTerm(radicand int64, coef *big.Rat) {
	if coef.Sign() == 0 {
		return
	}
	if cur, ok := v.terms[radicand]; ok {
		cur.Add(cur, coef)
		if cur.Sign() == 0 {
			delete(v.terms, radicand)
		}
		return
	}
	v.terms[radicand] = new(big.Rat).Set(coef)
}

// Add returns v + w.
func (v *Value) Add(w *Value) *Value {
	out := newValue()
	for m, c := range v.terms {
		out.addTerm(m, c)
	}
	for m, c := range w.terms {
		out.addTerm(m, c)
	}
	return out
}

// Neg returns -v.
func (v *Value) Neg() *Value {
	out := newValue()
	minusOne := big.NewRat(-1, 1)
	for m, c := range v.terms {
		out.addTerm(m, new(big.Rat).Mul(c, minusOne))
	}
	return out
}

// Sub returns v - w.
func (v *Value) Sub(w *Value) *Value {
	return v.Add(w.Neg())
}

// Mul returns v * w. √m1·√m2 normalizes to g·√m' where g = gcd(m1,m2)
// and m' = m1·m2/g² (both radicands are already squarefree).
func (v *Value) Mul(w *Value) (*Value, error) {
	out := newValue()
	for m1, c1 := range v.terms {
		for m2, c2 := range w.terms {
			g := gcd64(m1, m2)
			f1, f2 := m1/g, m2/g
			// Reject before multiplying: the product can wrap int64
			// and a wrapped value may slip under the cap.
			if f2 != 0 && f1 > maxRadicand/f2 {
				return nil, &ErrUnsupported{Op: "multiplication", Detail: fmt.Sprintf("radicand %d*%d too large", f1, f2)}
			}
			rad := f1 * f2
			coef := new(big.Rat).Mul(c1, c2)
			coef.Mul(coef, big.NewRat(g, 1))
			out.addTerm(rad, coef)
		}
	}
	return out, nil
}

// Div returns v / w.
func (v *Value) Div(w *Value) (*Value, error) {
	inv, err := w.inverse()
	if err != nil {
		return nil, err
	}
	return v.Mul(inv)
}

// inverse returns 1/v. Single radical terms invert directly; two-term
// sums invert through the conjugate. Longer sums would need repeated
// conjugation and never show up in answers to this problem family.
func (v *Value) inverse() (*Value, error) {
	switch len(v.terms) {
	case 0:
		return nil, &ErrUnsupported{Op: "division", Detail: "division by zero"}

	case 1:
		// 1/(c·√m) = √m/(c·m)
		out := newValue()
		for m, c := range v.terms {
			den := new(big.Rat).Mul(c, big.NewRat(m, 1))
			out.addTerm(m, new(big.Rat).Inv(den))
		}
		return out, nil

	case 2:
		// 1/(x√m1 + y√m2) = (x√m1 − y√m2) / (x²m1 − y²m2).
		// The denominator is rational and nonzero: distinct squarefree
		// radicands cannot satisfy x²m1 = y²m2 with x, y nonzero.
		rads := make([]int64, 0, 2)
		for m := range v.terms {
			rads = append(rads, m)
		}
		m1, m2 := rads[0], rads[1]
		x, y := v.terms[m1], v.terms[m2]

		den := new(big.Rat).Mul(x, x)
		den.Mul(den, big.NewRat(m1, 1))
		t := new(big.Rat).Mul(y, y)
		t.Mul(t, big.NewRat(m2, 1))
		den.Sub(den, t)

		out := newValue()
		out.addTerm(m1, new(big.Rat).Quo(x, den))
		out.addTerm(m2, new(big.Rat).Quo(new(big.Rat).Neg(y), den))
		return out, nil

	default:
		return nil, &ErrUnsupported{Op: "division", Detail: "divisor mixes too many radicals"}
	}
}

// Sqrt returns √v for a nonnegative rational v: √(p/q) = √(p·q)/q,
// with the square part of p·q factored out of the radical.
func (v *Value) Sqrt() (*Value, error) {
	r, ok := v.Rat()
	if !ok {
		return nil, &ErrUnsupported{Op: "sqrt", Detail: "nested radicals"}
	}
	if r.Sign() < 0 {
		return nil, &ErrUnsupported{Op: "sqrt", Detail: "negative radicand"}
	}
	if r.Sign() == 0 {
		return newValue(), nil
	}
	p := new(big.Int).Set(r.Num())
	q := new(big.Int).Set(r.Denom())
	pq := new(big.Int).Mul(p, q)
	if !pq.IsInt64() || pq.Int64() > maxRadicand {
		return nil, &ErrUnsupported{Op: "sqrt", Detail: "radicand too large"}
	}

	square, rad := splitSquare(pq.Int64())
	out := newValue()
	coef := new(big.Rat).SetFrac(big.NewInt(square), q)
	out.addTerm(rad, coef)
	return out, nil
}

// Pow returns v^exp for integer exponents with |exp| ≤ 8.
func (v *Value) Pow(exp int) (*Value, error) {
	if exp < -8 || exp > 8 {
		return nil, &ErrUnsupported{Op: "exponent", Detail: fmt.Sprintf("%d out of range", exp)}
	}
	if exp < 0 {
		inv, err := v.inverse()
		if err != nil {
			return nil, err
		}
		return inv.Pow(-exp)
	}
	out := FromInt(1)
	var err error
	for i := 0; i < exp; i++ {
		out, err = out.Mul(v)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Equal reports exact mathematical equality.
func (v *Value) Equal(w *Value) bool {
	if len(v.terms) != len(w.terms) {
		return false
	}
	for m, c := range v.terms {
		wc, ok := w.terms[m]
		if !ok || c.Cmp(wc) != 0 {
			return false
		}
	}
	return true
}

// IsRational reports whether v has no radical part.
func (v *Value) IsRational() bool {
	_, ok := v.Rat()
	return ok
}

// Rat returns the rational value and true when v is rational.
func (v *Value) Rat() (*big.Rat, bool) {
	switch len(v.terms) {
	case 0:
		return new(big.Rat), true
	case 1:
		if c, ok := v.terms[1]; ok {
			return new(big.Rat).Set(c), true
		}
	}
	return nil, false
}

// String renders the canonical form, e.g. "1/3", "2·√2", "1/2 + 3/4·√5".
func (v *Value) String() string {
	if len(v.terms) == 0 {
		return "0"
	}
	rads := make([]int64, 0, len(v.terms))
	for m := range v.terms {
		rads = append(rads, m)
	}
	sort.Slice(rads, func(i, j int) bool { return rads[i] < rads[j] })

	var b strings.Builder
	for i, m := range rads {
		c := v.terms[m]
		if i > 0 {
			if c.Sign() >= 0 {
				b.WriteString(" + ")
			} else {
				b.WriteString(" - ")
				c = new(big.Rat).Neg(c)
			}
		}
		if m == 1 {
			b.WriteString(c.RatString())
			continue
		}
		if c.Cmp(big.NewRat(1, 1)) != 0 {
			b.WriteString(c.RatString())
			b.WriteString("·")
		}
		fmt.Fprintf(&b, "√%d", m)
	}
	return b.String()
}

// gcd64 returns the positive gcd of a and b.
func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// splitSquare factors n > 0 as s²·m with m squarefree, returning (s, m).
func splitSquare(n int64) (s, m int64) {
	s, m = 1, 1
	for f := int64(2); f*f <= n; f++ {
		exp := 0
		for n%f == 0 {
			n /= f
			exp++
		}
		for ; exp >= 2; exp -= 2 {
			s *= f
		}
		if exp == 1 {
			m *= f
		}
	}
	m *= n // remaining prime factor, if any
	return s, m
}
