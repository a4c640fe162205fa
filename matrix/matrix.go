// Copyright 2025 ModNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dimension-tagged matrices of field elements and
// the vector/matrix products the layer operations are built from.
package matrix

import (
	"fmt"

	"github.com/modnn-ml/modnn/field"
)

// Matrix is a (rows, cols)-tagged matrix over a flat row-major buffer.
//
// The invariant len(Data) == Rows*Cols is established by New and preserved by
// every operation; code that builds a Matrix by hand takes on that obligation
// itself.
type Matrix struct {
	Rows int
	Cols int
	Data []field.Element
}

// New constructs a matrix and asserts the dimension invariant.
//
// Panics unless rows and cols are positive and len(data) == rows*cols.
func New(rows, cols int, data []field.Element) Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", rows, cols))
	}
	if len(data) != rows*cols {
		panic(fmt.Sprintf("matrix: %dx%d needs %d elements, got %d", rows, cols, rows*cols, len(data)))
	}
	return Matrix{Rows: rows, Cols: cols, Data: data}
}

// At returns the element at row r, column c.
func (m Matrix) At(r, c int) field.Element {
	if r < 0 || r >= m.Rows || c < 0 || c >= m.Cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", r, c, m.Rows, m.Cols))
	}
	return m.Data[r*m.Cols+c]
}

// Transpose returns a new matrix with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	out := make([]field.Element, len(m.Data))
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			out[c*m.Rows+r] = m.Data[r*m.Cols+c]
		}
	}
	return Matrix{Rows: m.Cols, Cols: m.Rows, Data: out}
}

// MulVec multiplies a rows×cols matrix, given as a flat row-major buffer m,
// by a length-cols vector v, producing a length-rows vector:
//
//	out[i] = Σⱼ m[i*cols+j] * v[j]
//
// Panics unless len(m) == rows*cols and len(v) == cols.
func MulVec(m, v []field.Element, rows, cols int) []field.Element {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", rows, cols))
	}
	if len(m) != rows*cols {
		panic(fmt.Sprintf("matrix: mulvec %dx%d needs %d elements, got %d", rows, cols, rows*cols, len(m)))
	}
	if len(v) != cols {
		panic(fmt.Sprintf("matrix: mulvec vector length %d, want %d", len(v), cols))
	}

	out := make([]field.Element, rows)
	var t field.Element
	for i := 0; i < rows; i++ {
		var sum field.Element
		for j := 0; j < cols; j++ {
			t.Mul(&m[i*cols+j], &v[j])
			sum.Add(&sum, &t)
		}
		out[i] = sum
	}
	return out
}

// MulVec multiplies m by the length-Cols vector v.
func (m Matrix) MulVec(v []field.Element) []field.Element {
	return MulVec(m.Data, v, m.Rows, m.Cols)
}

// Mul returns the matrix product x @ y, tagged (x.Rows, y.Cols).
//
// Panics unless x.Cols == y.Rows.
func Mul(x, y Matrix) Matrix {
	if x.Cols != y.Rows {
		panic(fmt.Sprintf("matrix: mul shape mismatch %dx%d @ %dx%d", x.Rows, x.Cols, y.Rows, y.Cols))
	}

	out := make([]field.Element, x.Rows*y.Cols)
	var t field.Element
	for i := 0; i < x.Rows; i++ {
		for j := 0; j < y.Cols; j++ {
			var sum field.Element
			for k := 0; k < x.Cols; k++ {
				t.Mul(&x.Data[i*x.Cols+k], &y.Data[k*y.Cols+j])
				sum.Add(&sum, &t)
			}
			out[i*y.Cols+j] = sum
		}
	}
	return Matrix{Rows: x.Rows, Cols: y.Cols, Data: out}
}
