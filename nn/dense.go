// Copyright 2025 ModNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"

	"github.com/modnn-ml/modnn/field"
)

// Dense computes a fully-connected layer forward pass:
//
//	out[i] = b[i] + Σⱼ w[i*nIn+j] * x[j]
//
// w holds the weight matrix row-major, one row of nIn weights per output.
//
// Panics unless len(x) == nIn, len(w) == nIn*nOut, and len(b) == nOut.
func Dense(x, w, b []field.Element, nIn, nOut int) []field.Element {
	if nIn <= 0 || nOut <= 0 {
		panic(fmt.Sprintf("dense: invalid dimensions in=%d, out=%d", nIn, nOut))
	}
	if len(x) != nIn {
		panic(fmt.Sprintf("dense: input length %d, want %d", len(x), nIn))
	}
	if len(w) != nIn*nOut {
		panic(fmt.Sprintf("dense: weight length %d, want in*out=%d", len(w), nIn*nOut))
	}
	if len(b) != nOut {
		panic(fmt.Sprintf("dense: bias length %d, want %d", len(b), nOut))
	}

	out := make([]field.Element, nOut)
	var t field.Element
	for i := 0; i < nOut; i++ {
		sum := b[i]
		for j := 0; j < nIn; j++ {
			t.Mul(&w[i*nIn+j], &x[j])
			sum.Add(&sum, &t)
		}
		out[i] = sum
	}
	return out
}
