package plot

import (
	"math"
	"testing"

	"github.com/abhisek/limitz/internal/problem"
)

func testProblem(t *testing.T, a int) problem.Problem {
	t.Helper()
	p, err := problem.New(a)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSample_MasksHole(t *testing.T) {
	curve := Sample(testProblem(t, 3))
	for _, pt := range curve.Points {
		if math.Abs(pt.X+1) <= holeRadius {
			t.Fatalf("point at x=%f inside the hole neighborhood", pt.X)
		}
		if pt.X < WindowMin || pt.X > WindowMax {
			t.Fatalf("point at x=%f outside window", pt.X)
		}
		if math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
			t.Fatalf("non-finite sample at x=%f", pt.X)
		}
	}
}

func TestSample_HoleSitsAtLimit(t *testing.T) {
	// The hollow marker is at (−1, 1/a): the value the function never
	// takes but the limit reaches.
	for _, a := range []int{2, 3, 7, 12} {
		curve := Sample(testProblem(t, a))
		if curve.Hole.X != -1 {
			t.Errorf("a=%d: hole at x=%f, want -1", a, curve.Hole.X)
		}
		want := 1 / float64(a)
		if math.Abs(curve.Hole.Y-want) > 1e-12 {
			t.Errorf("a=%d: hole at y=%f, want %f", a, curve.Hole.Y, want)
		}
	}
}

func TestSample_ApproachesLimitNearHole(t *testing.T) {
	p := testProblem(t, 4)
	curve := Sample(p)
	limit := 1 / float64(p.A)
	for _, pt := range curve.Points {
		if math.Abs(pt.X+1) < 0.1 {
			if math.Abs(pt.Y-limit) > 0.01 {
				t.Errorf("f(%f) = %f, expected within 0.01 of limit %f", pt.X, pt.Y, limit)
			}
		}
	}
}

func TestCache_Memoizes(t *testing.T) {
	cache := NewCache()
	p := testProblem(t, 5)

	first := cache.Curve(p)
	second := cache.Curve(p)
	if len(first.Points) != len(second.Points) {
		t.Fatal("memoized curve differs from first sample")
	}
	if cache.Len() != 1 {
		t.Errorf("cache holds %d curves, want 1", cache.Len())
	}

	cache.Curve(testProblem(t, 6))
	if cache.Len() != 2 {
		t.Errorf("cache holds %d curves, want 2", cache.Len())
	}
}
