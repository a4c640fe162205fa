// Copyright 2025 ModNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a BN254 scalar field element, the sole numeric type in ModNN.
//
// The zero value is the field's zero. Elements are values: copying one copies
// the number, and no operation in this library mutates its inputs.
type Element = fr.Element

// Bytes is the length of an element's canonical big-endian encoding.
const Bytes = fr.Bytes

// Modulus returns the field modulus q as a fresh big integer.
func Modulus() *big.Int {
	return fr.Modulus()
}

// NewElement returns the field element representing v.
func NewElement(v uint64) Element {
	return fr.NewElement(v)
}

// One returns the field element 1.
func One() Element {
	return fr.One()
}

// FromInt64 returns the field element representing the signed integer v.
// Negative values wrap into the top of the field, so the result satisfies
// IsNegative exactly when v < 0.
func FromInt64(v int64) Element {
	var e Element
	e.SetInt64(v)
	return e
}

// ToBigInt returns the signed integer that v represents under the
// half-modulus interpretation: v itself if IsPositive(v), v-q otherwise.
// It is the inverse of FromInt64 for all int64 inputs.
func ToBigInt(v Element) *big.Int {
	var b big.Int
	v.BigInt(&b)
	if IsNegative(v) {
		b.Sub(&b, fr.Modulus())
	}
	return &b
}

// Slice returns the field elements representing the given signed integers.
// It is a convenience for building test vectors and small models:
//
//	x := field.Slice(1, -2, 3)
func Slice(vs ...int64) []Element {
	out := make([]Element, len(vs))
	for i, v := range vs {
		out[i].SetInt64(v)
	}
	return out
}
