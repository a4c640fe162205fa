package nn

import (
	"testing"

	"github.com/modnn-ml/modnn/field"
)

// checkOutput compares a flat result against expected signed values.
func checkOutput(t *testing.T, op string, got []field.Element, want []int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %d elements, got %d", op, len(want), len(got))
	}
	for i, w := range want {
		e := field.FromInt64(w)
		if !got[i].Equal(&e) {
			t.Errorf("%s[%d]: expected %d, got %s", op, i, w, got[i].String())
		}
	}
}

// mustPanic asserts fn hits a precondition panic.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

// TestDense tests the forward pass with known values:
// out[0] = 10 + 4*1+5*2+6*3 = 42, out[1] = 11 + 7*1+8*2+9*3 = 61.
func TestDense(t *testing.T) {
	x := field.Slice(1, 2, 3)
	w := field.Slice(4, 5, 6, 7, 8, 9)
	b := field.Slice(10, 11)

	got := Dense(x, w, b, 3, 2)
	checkOutput(t, "Dense", got, []int64{42, 61})
}

// TestDense_SignedWeights tests accumulation across the sign boundary.
func TestDense_SignedWeights(t *testing.T) {
	x := field.Slice(2, -3)
	w := field.Slice(-1, 4, 5, -6)
	b := field.Slice(0, 7)

	// out[0] = -2 - 12 = -14, out[1] = 10 + 18 + 7 = 35
	got := Dense(x, w, b, 2, 2)
	checkOutput(t, "Dense", got, []int64{-14, 35})
}

// TestDense_BadShapes verifies every declared-vs-actual length check.
func TestDense_BadShapes(t *testing.T) {
	x := field.Slice(1, 2, 3)
	w := field.Slice(4, 5, 6, 7, 8, 9)
	b := field.Slice(10, 11)

	mustPanic(t, "short input", func() { Dense(x[:2], w, b, 3, 2) })
	mustPanic(t, "short weights", func() { Dense(x, w[:5], b, 3, 2) })
	mustPanic(t, "short bias", func() { Dense(x, w, b[:1], 3, 2) })
	mustPanic(t, "zero out", func() { Dense(x, w, b, 3, 0) })
}
