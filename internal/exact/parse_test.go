package exact

import (
	"math/big"
	"testing"
)

func mustParse(t *testing.T, input string) *Value {
	t.Helper()
	v, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return v
}

func TestParse_EquivalentFormsOfOneThird(t *testing.T) {
	// Every accepted rendering of 1/3 must normalize to the same Value.
	third := FromRat(big.NewRat(1, 3))
	cases := []string{
		"1/3",
		" 1 / 3 ",
		"2/6",
		"0.3333333333333333",
		"0.33333333333333333333",
		"sqrt(1)/3",
		"sqrt(1/9)",
		"√(1/9)",
		"1/sqrt(9)",
		"SQRT(4)/6",
		"(1/3)",
		"3^-1",
		"3^(-1)",
		"1/3 + 0",
		"2/3 - 1/3",
		"(1/6)*2",
		"1 ÷ 3",
	}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			v := mustParse(t, input)
			if !v.Equal(third) {
				t.Errorf("Parse(%q) = %s, want 1/3", input, v)
			}
		})
	}
}

func TestParse_TruncatedDecimalStaysExact(t *testing.T) {
	// Short decimals are exact literals, not repeating renderings.
	cases := []struct {
		input string
		num   int64
		den   int64
	}{
		{"0.33", 33, 100},
		{"0.333", 333, 1000},
		{"0.3", 3, 10},
		{"0.25", 1, 4},
	}
	for _, tc := range cases {
		v := mustParse(t, tc.input)
		want := FromRat(big.NewRat(tc.num, tc.den))
		if !v.Equal(want) {
			t.Errorf("Parse(%q) = %s, want %d/%d", tc.input, v, tc.num, tc.den)
		}
	}
}

func TestParse_RoundedRepeatingDecimalSnaps(t *testing.T) {
	// The final digit of a repeating decimal is often rounded up by
	// whatever produced it; the snap still recovers the rational.
	cases := []struct {
		input string
		num   int64
		den   int64
	}{
		{"0.6666666666666667", 2, 3},
		{"0.1666666666666667", 1, 6},
		{"0.0833333333333333", 1, 12},
		{"0.1428571428571429", 1, 7},
	}
	for _, tc := range cases {
		v := mustParse(t, tc.input)
		want := FromRat(big.NewRat(tc.num, tc.den))
		if !v.Equal(want) {
			t.Errorf("Parse(%q) = %s, want %d/%d", tc.input, v, tc.num, tc.den)
		}
	}
}

func TestParse_Radicals(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"sqrt(2)", "√2"},
		{"sqrt(8)", "2·√2"},
		{"sqrt(2)*sqrt(2)", "2"},
		{"sqrt(12)/2", "√3"},
		{"sqrt(2) + sqrt(2)", "2·√2"},
		{"1/(1+sqrt(2))", "-1 + √2"},
		{"sqrt(9/4)", "3/2"},
		{"-sqrt(4)", "-2"},
		{"sqrt(2)^2", "2"},
	}
	for _, tc := range cases {
		v := mustParse(t, tc.input)
		if got := v.String(); got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"1/",
		"abc",
		"1//3",
		"sqrt",
		"sqrt(",
		"sqrt()",
		"(1/3",
		"1..3",
		".",
		"1/3 extra",
		"x+1",
		"1^x",
	}
	for _, input := range cases {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		} else if _, ok := err.(*ParseError); !ok {
			t.Errorf("Parse(%q) error type %T, want *ParseError", input, err)
		}
	}
}

func TestParse_UnsupportedOperations(t *testing.T) {
	// Domain errors surface as ParseError too: recoverable, the
	// student just writes the answer differently.
	cases := []string{
		"1/0",
		"sqrt(-1)",
		"sqrt(sqrt(2))",
		"2^100",
		"1/(sqrt(2)+sqrt(3)+sqrt(5))",
	}
	for _, input := range cases {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		}
	}
}

func TestValue_MulRejectsHugeRadicands(t *testing.T) {
	// The product of two in-range radicands can wrap int64; it must
	// surface as an unsupported operation, never as a garbage radicand
	// that slipped under the cap.
	a := mustParse(t, "sqrt(999999999989)")
	b := mustParse(t, "sqrt(931560613)")
	if got, err := a.Mul(b); err == nil {
		t.Fatalf("Mul = %s, want radicand-too-large error", got)
	} else if _, ok := err.(*ErrUnsupported); !ok {
		t.Errorf("error type %T, want *ErrUnsupported", err)
	}

	// Just past the cap without wrapping is rejected the same way.
	if _, err := a.Mul(mustParse(t, "sqrt(3)")); err == nil {
		t.Fatal("Mul past the radicand cap succeeded")
	}
}

func TestValue_Equality(t *testing.T) {
	a := mustParse(t, "1/2 + sqrt(3)")
	b := mustParse(t, "sqrt(3) + 0.5")
	c := mustParse(t, "1/2 + sqrt(2)")
	if !a.Equal(b) {
		t.Errorf("%s != %s, want equal", a, b)
	}
	if a.Equal(c) {
		t.Errorf("%s == %s, want unequal", a, c)
	}
}

func TestValue_RationalAccessors(t *testing.T) {
	v := mustParse(t, "2/4")
	r, ok := v.Rat()
	if !ok {
		t.Fatal("expected rational")
	}
	if r.RatString() != "1/2" {
		t.Errorf("Rat = %s, want 1/2", r.RatString())
	}
	if !v.IsRational() {
		t.Error("IsRational = false, want true")
	}

	w := mustParse(t, "sqrt(2)")
	if w.IsRational() {
		t.Error("sqrt(2) reported rational")
	}
}

func TestSplitSquare(t *testing.T) {
	cases := []struct {
		n, s, m int64
	}{
		{1, 1, 1},
		{2, 1, 2},
		{4, 2, 1},
		{8, 2, 2},
		{12, 2, 3},
		{36, 6, 1},
		{45, 3, 5},
		{97, 1, 97},
	}
	for _, tc := range cases {
		s, m := splitSquare(tc.n)
		if s != tc.s || m != tc.m {
			t.Errorf("splitSquare(%d) = (%d, %d), want (%d, %d)", tc.n, s, m, tc.s, tc.m)
		}
	}
}
