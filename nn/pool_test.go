package nn

import (
	"testing"

	"github.com/modnn-ml/modnn/field"
)

// TestMaxPool1D tests two channels of four elements with kernel 2.
func TestMaxPool1D(t *testing.T) {
	x := field.Slice(1, 2, 3, 4, 5, 6, 7, 8)
	got := MaxPool1D(x, 4, 2, 2)
	checkOutput(t, "MaxPool1D", got, []int64{2, 4, 6, 8})
}

// TestMaxPool1D_Signed verifies the reduction uses the signed order: a
// negative value near the modulus must not beat a small positive one.
func TestMaxPool1D_Signed(t *testing.T) {
	x := field.Slice(-5, -2, 3, -7)
	got := MaxPool1D(x, 4, 1, 2)
	checkOutput(t, "MaxPool1D", got, []int64{-2, 3})
}

// TestMaxPool1D_Truncation tests the floor-division contract: with in_size=5
// and kernel 2 the fifth element is silently dropped.
func TestMaxPool1D_Truncation(t *testing.T) {
	x := field.Slice(1, 2, 3, 4, 100)
	got := MaxPool1D(x, 5, 1, 2)
	checkOutput(t, "MaxPool1D", got, []int64{2, 4})
}

// TestAvgPool1D tests exact integer averages across two channels.
func TestAvgPool1D(t *testing.T) {
	x := field.Slice(1, 3, 2, 4, 5, 7, 6, 8)
	got := AvgPool1D(x, 4, 2, 2)
	checkOutput(t, "AvgPool1D", got, []int64{2, 3, 6, 7})
}

// TestAvgPool1D_FieldDivision verifies the non-divisible case is exact field
// division: avg * area recovers the window sum.
func TestAvgPool1D_FieldDivision(t *testing.T) {
	x := field.Slice(1, 2)
	got := AvgPool1D(x, 2, 1, 2)

	var back field.Element
	two := field.FromInt64(2)
	back.Mul(&got[0], &two)

	sum := field.FromInt64(3)
	if !back.Equal(&sum) {
		t.Errorf("avg*area: expected %s, got %s", sum.String(), back.String())
	}
}

// TestSumPool1D tests window sums with truncation of a trailing element.
func TestSumPool1D(t *testing.T) {
	x := field.Slice(1, 2, 3, 4, 5)
	got := SumPool1D(x, 5, 1, 2)
	checkOutput(t, "SumPool1D", got, []int64{3, 7})
}

// TestMaxPool2D tests a 4x4 channel with 2x2 windows.
func TestMaxPool2D(t *testing.T) {
	x := field.Slice(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16)
	got := MaxPool2D(x, 4, 1, 2)
	checkOutput(t, "MaxPool2D", got, []int64{6, 8, 14, 16})
}

// TestMaxPool2D_Truncation tests that a 3x3 input with kernel 2 keeps only
// the single full window.
func TestMaxPool2D_Truncation(t *testing.T) {
	x := field.Slice(
		1, 2, 50,
		3, 4, 60,
		70, 80, 90)
	got := MaxPool2D(x, 3, 1, 2)
	checkOutput(t, "MaxPool2D", got, []int64{4})
}

// TestMaxPool2DNonSquare tests a 2x4 channel with 2x2 windows and negatives.
func TestMaxPool2DNonSquare(t *testing.T) {
	x := field.Slice(
		-1, -6, 2, 3,
		-8, -4, 0, 1)
	got := MaxPool2DNonSquare(x, 2, 4, 1, 2, 2)
	checkOutput(t, "MaxPool2DNonSquare", got, []int64{-1, 3})
}

// TestAvgPool2D tests 2x2 windows whose sums are multiples of the area.
func TestAvgPool2D(t *testing.T) {
	x := field.Slice(
		1, 3, 1, 3,
		5, 7, 5, 7,
		1, 3, 1, 3,
		5, 7, 5, 7)
	got := AvgPool2D(x, 4, 1, 2)
	checkOutput(t, "AvgPool2D", got, []int64{4, 4, 4, 4})
}

// TestSumPool2DNonSquare tests 1x2 windows over a 2x4 channel.
func TestSumPool2DNonSquare(t *testing.T) {
	x := field.Slice(
		1, 2, 3, 4,
		5, 6, 7, 8)
	got := SumPool2DNonSquare(x, 2, 4, 1, 1, 2)
	checkOutput(t, "SumPool2DNonSquare", got, []int64{3, 7, 11, 15})
}

// TestSumPool2D_MultiChannel tests channel-major indexing across channels.
func TestSumPool2D_MultiChannel(t *testing.T) {
	x := field.Slice(
		1, 2, 3, 4, // channel 0, 2x2
		10, 20, 30, 40) // channel 1, 2x2
	got := SumPool2D(x, 2, 2, 2)
	checkOutput(t, "SumPool2D", got, []int64{10, 100})
}

// TestGlobalMaxPool2D tests whole-extent reduction per channel.
func TestGlobalMaxPool2D(t *testing.T) {
	x := field.Slice(
		1, 9, 3, 4, // channel 0
		-5, -1, -8, -2) // channel 1
	got := GlobalMaxPool2D(x, 2, 2)
	checkOutput(t, "GlobalMaxPool2D", got, []int64{9, -1})
}

// TestGlobalMaxPool2DNonSquare tests a 2x3 extent.
func TestGlobalMaxPool2DNonSquare(t *testing.T) {
	x := field.Slice(
		-1, -2, -3,
		-4, 0, -6)
	got := GlobalMaxPool2DNonSquare(x, 2, 3, 1)
	checkOutput(t, "GlobalMaxPool2DNonSquare", got, []int64{0})
}

// TestPool_BadShapes verifies fail-fast checks across the family.
func TestPool_BadShapes(t *testing.T) {
	x := field.Slice(1, 2, 3, 4)

	mustPanic(t, "1d short input", func() { MaxPool1D(x[:3], 4, 1, 2) })
	mustPanic(t, "1d kernel too large", func() { AvgPool1D(x, 4, 1, 5) })
	mustPanic(t, "1d zero channels", func() { SumPool1D(x, 4, 0, 2) })
	mustPanic(t, "2d short input", func() { MaxPool2D(x[:3], 2, 1, 2) })
	mustPanic(t, "2d kernel too wide", func() { SumPool2DNonSquare(x, 2, 2, 1, 1, 3) })
	mustPanic(t, "global short input", func() { GlobalMaxPool2D(x[:3], 2, 1) })
}
