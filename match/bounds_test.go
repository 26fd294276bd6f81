package match

import (
	"math"
	"testing"
)

// TestNewTransform_Classification checks that every bound form lands on
// the transform kind its interval implies, including NaN sides.
func TestNewTransform_Classification(t *testing.T) {
	cases := []struct {
		name string
		b    Bound
		want transformKind
	}{
		{"unbounded", Unbounded(), transformIdentity},
		{"lower only", AtLeast(2), transformLower},
		{"upper only", AtMost(3), transformUpper},
		{"both sides", Between(1, 5), transformBoth},
		{"pinned", Fixed(4), transformFixed},
		{"nan min is open", Bound{Min: math.NaN(), Max: 3}, transformUpper},
		{"nan max is open", Bound{Min: 1, Max: math.NaN()}, transformLower},
		{"nan both is open", Bound{Min: math.NaN(), Max: math.NaN()}, transformIdentity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := newTransform(tc.b).kind; got != tc.want {
				t.Fatalf("kind = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestTransform_RoundTrip verifies external(internal(x)) ≈ x for in-box
// points of every transform kind.
func TestTransform_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		b    Bound
		xs   []float64
	}{
		{"both", Between(-2, 6), []float64{-2, -1.999, 0, 3.7, 6}},
		{"lower", AtLeast(5), []float64{5, 5.001, 42, 123456}},
		{"upper", AtMost(3), []float64{3, 2.5, -7, -1000}},
		{"identity", Unbounded(), []float64{-1e10, -1, 0, 42, 1e10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTransform(tc.b)
			for _, x := range tc.xs {
				got := tr.external(tr.internal(x))
				tol := 1e-9 * math.Max(1, math.Abs(x))
				if math.Abs(got-x) > tol {
					t.Fatalf("round trip %v -> %v, off by %v", x, got, got-x)
				}
			}
		})
	}
}

// TestTransform_ClampsOutOfBox checks that infeasible external values
// project to the nearest box edge, exactly.
func TestTransform_ClampsOutOfBox(t *testing.T) {
	both := newTransform(Between(0, 1))
	if got := both.external(both.internal(-5)); got != 0 {
		t.Fatalf("below box: got %v, want 0", got)
	}
	if got := both.external(both.internal(7)); got != 1 {
		t.Fatalf("above box: got %v, want 1", got)
	}

	lower := newTransform(AtLeast(2))
	if got := lower.external(lower.internal(-100)); got != 2 {
		t.Fatalf("below lower bound: got %v, want 2", got)
	}

	upper := newTransform(AtMost(-3))
	if got := upper.external(upper.internal(9)); got != -3 {
		t.Fatalf("above upper bound: got %v, want -3", got)
	}
}

// TestTransform_ExternalAlwaysInBox sweeps wild internal coordinates
// and requires the external value to stay inside the interval. This is
// the property the optimizer relies on.
func TestTransform_ExternalAlwaysInBox(t *testing.T) {
	us := []float64{-1e8, -999, -17.3, -math.Pi, -1, 0, 0.5, 3, 999, 1e8}
	cases := []struct {
		name     string
		b        Bound
		min, max float64
	}{
		{"both", Between(-1, 4), -1, 4},
		{"lower", AtLeast(10), 10, math.Inf(1)},
		{"upper", AtMost(-2), math.Inf(-1), -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTransform(tc.b)
			for _, u := range us {
				x := tr.external(u)
				if x < tc.min || x > tc.max {
					t.Fatalf("external(%v) = %v escapes [%v, %v]", u, x, tc.min, tc.max)
				}
			}
		})
	}
}

// TestBoxMap_FixedExcluded checks that pinned parameters never reach
// the internal space and always come back with their pinned value.
func TestBoxMap_FixedExcluded(t *testing.T) {
	m := newBoxMap([]Bound{Fixed(2), Between(0, 1), Unbounded()})
	if got := m.freeDims(); got != 2 {
		t.Fatalf("freeDims = %d, want 2", got)
	}

	u := m.toInternal([]float64{99, 0.5, -3})
	if len(u) != 2 {
		t.Fatalf("internal length = %d, want 2", len(u))
	}

	x := m.toExternal(u)
	if len(x) != 3 {
		t.Fatalf("external length = %d, want 3", len(x))
	}
	if x[0] != 2 {
		t.Fatalf("pinned parameter = %v, want 2", x[0])
	}
	if math.Abs(x[1]-0.5) > 1e-12 || math.Abs(x[2]-(-3)) > 1e-12 {
		t.Fatalf("free parameters = %v, want [_, 0.5, -3]", x)
	}
}

// TestBoxMap_ClampAll checks per-entry projection of a full vector.
func TestBoxMap_ClampAll(t *testing.T) {
	m := newBoxMap([]Bound{Between(0, 1), AtLeast(5), Unbounded(), Fixed(7)})
	got := m.clampAll([]float64{3, -2, -1e9, 123})
	want := []float64{1, 5, -1e9, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("clampAll[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
