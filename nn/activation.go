// Copyright 2025 ModNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/modnn-ml/modnn/field"
)

// ReLU applies the rectifier elementwise under the signed interpretation:
// out[i] is values[i] when field.IsPositive(values[i]), zero otherwise.
// Zero and the half-modulus boundary both pass through unchanged.
func ReLU(values []field.Element) []field.Element {
	out := make([]field.Element, len(values))
	for i := range values {
		if field.IsPositive(values[i]) {
			out[i] = values[i]
		}
	}
	return out
}

// Poly applies the polynomial activation elementwise:
//
//	out[i] = values[i]² + scale*values[i]
//
// It is a cheap smooth nonlinearity needing only two multiplications per
// element — a distinct operation in its own right, not an approximation of
// ReLU or any other standard activation.
func Poly(values []field.Element, scale field.Element) []field.Element {
	out := make([]field.Element, len(values))
	var sq, sc field.Element
	for i := range values {
		sq.Square(&values[i])
		sc.Mul(&scale, &values[i])
		out[i].Add(&sq, &sc)
	}
	return out
}
