// Copyright 2025 ModNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn implements neural-network forward operations over field
// elements: fully-connected layers, 1D/2D convolution, pooling, and
// activations, all in exact modular arithmetic.
//
// Tensors have no type of their own. Multi-dimensional data travels as a
// flat []field.Element plus explicit dimension parameters, flattened
// channel-major then row-major within each channel:
//
//	index(c, r, col) = c*height*width + r*width + col
//
// Callers and this package must agree on that layout; downstream consumers
// such as a proof-generation backend must honor it too.
//
// Every operation validates all dimension relations against every declared
// buffer length before computing its first output element. A violated
// precondition panics with the expected and actual sizes: shape mismatch is
// a programming error, and computing on mismatched shapes would be unsound.
//
// All operations are pure. Inputs are never mutated, results are freshly
// allocated, and every output element is independent of the others.
package nn
