// Copyright 2025 ModNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// halfModulus is the boundary (q-1)/2 separating positive from negative
// representations. It is derived from the modulus at startup so that
// retargeting the library to a different field only means changing the
// fr import.
var (
	halfModulus      Element
	halfModulusBytes [Bytes]byte
)

func init() {
	q := fr.Modulus()
	half := new(big.Int).Rsh(new(big.Int).Sub(q, big.NewInt(1)), 1)
	halfModulus.SetBigInt(half)
	halfModulusBytes = halfModulus.Bytes()
}

// HalfModulus returns the boundary constant (q-1)/2. Elements at or below it
// are positive; elements above it are negative.
func HalfModulus() Element {
	return halfModulus
}

// IsPositive reports whether v represents a non-negative integer: its
// canonical big-endian bytes are lexicographically at most the boundary's.
// The comparison walks from the most significant byte; the first differing
// byte decides. The boundary itself and zero are both positive.
func IsPositive(v Element) bool {
	b := v.Bytes()
	for i := 0; i < Bytes; i++ {
		if b[i] != halfModulusBytes[i] {
			return b[i] < halfModulusBytes[i]
		}
	}
	// All bytes equal: v is the boundary, which counts as positive.
	return true
}

// IsNegative reports whether v represents a negative integer: its canonical
// bytes are lexicographically strictly greater than the boundary's.
//
// This is deliberately not !IsPositive: both predicates are defined
// independently and agree everywhere except that the boundary value is
// positive and not negative.
func IsNegative(v Element) bool {
	b := v.Bytes()
	for i := 0; i < Bytes; i++ {
		if b[i] != halfModulusBytes[i] {
			return b[i] > halfModulusBytes[i]
		}
	}
	return false
}

// GreaterThan reports whether a's canonical bytes are lexicographically
// strictly greater than b's, ignoring sign. It orders elements correctly
// only when both lie on the same side of the boundary; GreaterThanSigned
// handles the general case.
func GreaterThan(a, b Element) bool {
	ab := a.Bytes()
	bb := b.Bytes()
	for i := 0; i < Bytes; i++ {
		if ab[i] != bb[i] {
			return ab[i] > bb[i]
		}
	}
	return false
}

// GreaterThanSigned reports whether a > b under the signed interpretation.
// Operands on the same side of the boundary compare by magnitude encoding;
// otherwise the positive operand wins. The resulting order matches comparing
// the integers the elements represent, like two's-complement comparison.
func GreaterThanSigned(a, b Element) bool {
	ap := IsPositive(a)
	if ap == IsPositive(b) {
		return GreaterThan(a, b)
	}
	return ap
}

// ArgMax returns the index of the maximum element of values under the signed
// order. The scan runs left to right and replaces the running maximum only on
// strict improvement, so ties keep the earliest index.
//
// Panics if values is empty.
func ArgMax(values []Element) int {
	if len(values) == 0 {
		panic("field: arg_max of empty sequence")
	}
	best := 0
	for i := 1; i < len(values); i++ {
		if GreaterThanSigned(values[i], values[best]) {
			best = i
		}
	}
	return best
}
