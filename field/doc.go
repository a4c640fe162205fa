// Copyright 2025 ModNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package field defines the scalar type for all ModNN computation and the
// derived signed ordering over it.
//
// Every value in ModNN — inputs, weights, biases, activations — is an element
// of the BN254 scalar field. Field elements carry no native sign or order:
// the field is a circular modular space, so subtraction-based comparisons are
// meaningless. This package recovers a signed-integer interpretation by
// pivoting on the half-modulus boundary (q-1)/2:
//
//   - elements in [0, (q-1)/2] represent the non-negative integers 0..(q-1)/2
//   - elements in ((q-1)/2, q) represent the negative integers -(q-1)/2..-1,
//     exactly as two's-complement wraps negatives into the top of the range
//
// IsPositive, IsNegative, GreaterThanSigned, and ArgMax realize this
// interpretation by comparing canonical big-endian byte representations
// against the boundary. Every max-style reduction in the layer packages
// (max pooling, ReLU) is built on these primitives, so their exactness is
// load-bearing for the whole library.
package field
