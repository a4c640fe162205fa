// Copyright 2025 ModNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides elementwise and length-changing operations over
// fixed-length sequences of field elements.
//
// Sequences are fixed-shape values: every operation validates its length
// contract before computing, returns a freshly allocated result, and never
// mutates an input. Length mismatches are programming errors and panic.
package array

import (
	"fmt"

	"github.com/modnn-ml/modnn/field"
)

// Add returns the elementwise sum of x and y.
//
// Panics unless len(x) == len(y).
func Add(x, y []field.Element) []field.Element {
	if len(x) != len(y) {
		panic(fmt.Sprintf("array: add length mismatch %d vs %d", len(x), len(y)))
	}

	out := make([]field.Element, len(x))
	for i := range x {
		out[i].Add(&x[i], &y[i])
	}
	return out
}

// Dot returns the dot product of x and y: the sum of elementwise products.
//
// Panics unless len(x) == len(y).
func Dot(x, y []field.Element) field.Element {
	if len(x) != len(y) {
		panic(fmt.Sprintf("array: dot length mismatch %d vs %d", len(x), len(y)))
	}

	var sum, t field.Element
	for i := range x {
		t.Mul(&x[i], &y[i])
		sum.Add(&sum, &t)
	}
	return sum
}

// Prune returns a copy of the first n elements of x.
//
// Panics if len(x) < n: a shorter source cannot produce a length-n result.
func Prune(x []field.Element, n int) []field.Element {
	if n < 0 {
		panic(fmt.Sprintf("array: prune to negative length %d", n))
	}
	if len(x) < n {
		panic(fmt.Sprintf("array: prune to %d from length %d", n, len(x)))
	}

	out := make([]field.Element, n)
	copy(out, x[:n])
	return out
}

// Pad returns a length-max sequence equal to x for its first len(x) elements
// and zero thereafter.
//
// Panics if len(x) > max.
func Pad(x []field.Element, max int) []field.Element {
	if len(x) > max {
		panic(fmt.Sprintf("array: pad length %d exceeds max %d", len(x), max))
	}

	out := make([]field.Element, max)
	copy(out, x)
	return out
}
