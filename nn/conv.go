// Copyright 2025 ModNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"

	"github.com/modnn-ml/modnn/field"
)

// Conv1D computes a 1D cross-correlation (the ML convention: no kernel flip)
// over a channel-major-flattened input.
//
// Input layout:  x[c*inSize + p] for channel c, position p
// Weight layout: w[(co*inChannels + ci)*kernelSize + k]
// Output layout: out[co*outSize + j], where
//
//	outSize = (inSize - kernelSize)/stride + 1
//	out[co*outSize+j] = b[co] + Σ_ci Σ_k w[...] * x[ci*inSize + j*stride + k]
//
// Panics unless every declared dimension matches its buffer length.
func Conv1D(x, w, b []field.Element, inSize, inChannels, outChannels, kernelSize, stride int) []field.Element {
	if inSize <= 0 || inChannels <= 0 || outChannels <= 0 {
		panic(fmt.Sprintf("conv1d: invalid dimensions in_size=%d, in_channels=%d, out_channels=%d",
			inSize, inChannels, outChannels))
	}
	if kernelSize <= 0 || kernelSize > inSize {
		panic(fmt.Sprintf("conv1d: kernel size %d out of range for input size %d", kernelSize, inSize))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("conv1d: invalid stride %d", stride))
	}
	if len(x) != inChannels*inSize {
		panic(fmt.Sprintf("conv1d: input length %d, want in_channels*in_size=%d", len(x), inChannels*inSize))
	}
	if len(w) != outChannels*inChannels*kernelSize {
		panic(fmt.Sprintf("conv1d: weight length %d, want out*in*kernel=%d",
			len(w), outChannels*inChannels*kernelSize))
	}
	if len(b) != outChannels {
		panic(fmt.Sprintf("conv1d: bias length %d, want %d", len(b), outChannels))
	}

	outSize := (inSize-kernelSize)/stride + 1

	out := make([]field.Element, outChannels*outSize)
	var t field.Element
	for co := 0; co < outChannels; co++ {
		for j := 0; j < outSize; j++ {
			sum := b[co]
			for ci := 0; ci < inChannels; ci++ {
				for k := 0; k < kernelSize; k++ {
					t.Mul(&w[(co*inChannels+ci)*kernelSize+k], &x[ci*inSize+j*stride+k])
					sum.Add(&sum, &t)
				}
			}
			out[co*outSize+j] = sum
		}
	}
	return out
}

// Conv2DNonSquare computes a 2D cross-correlation with independent kernel
// height and width over a channel-major, row-major-within-channel input.
//
// Input layout:  x[ci*inH*inW + r*inW + c]
// Weight layout: w[((co*inChannels + ci)*kernelH + kr)*kernelW + kc]
// Output layout: out[co*outH*outW + i*outW + j], where
//
//	outH = (inH - kernelH)/stride + 1
//	outW = (inW - kernelW)/stride + 1
//
// Panics unless every declared dimension matches its buffer length.
func Conv2DNonSquare(x, w, b []field.Element, inH, inW, inChannels, outChannels, kernelH, kernelW, stride int) []field.Element {
	if inH <= 0 || inW <= 0 || inChannels <= 0 || outChannels <= 0 {
		panic(fmt.Sprintf("conv2d: invalid dimensions h=%d, w=%d, in_channels=%d, out_channels=%d",
			inH, inW, inChannels, outChannels))
	}
	if kernelH <= 0 || kernelH > inH || kernelW <= 0 || kernelW > inW {
		panic(fmt.Sprintf("conv2d: kernel %dx%d out of range for input %dx%d", kernelH, kernelW, inH, inW))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("conv2d: invalid stride %d", stride))
	}
	if len(x) != inChannels*inH*inW {
		panic(fmt.Sprintf("conv2d: input length %d, want in_channels*h*w=%d", len(x), inChannels*inH*inW))
	}
	if len(w) != outChannels*inChannels*kernelH*kernelW {
		panic(fmt.Sprintf("conv2d: weight length %d, want out*in*kh*kw=%d",
			len(w), outChannels*inChannels*kernelH*kernelW))
	}
	if len(b) != outChannels {
		panic(fmt.Sprintf("conv2d: bias length %d, want %d", len(b), outChannels))
	}

	outH := (inH-kernelH)/stride + 1
	outW := (inW-kernelW)/stride + 1

	out := make([]field.Element, outChannels*outH*outW)
	var t field.Element
	for co := 0; co < outChannels; co++ {
		for i := 0; i < outH; i++ {
			for j := 0; j < outW; j++ {
				sum := b[co]
				for ci := 0; ci < inChannels; ci++ {
					for kr := 0; kr < kernelH; kr++ {
						for kc := 0; kc < kernelW; kc++ {
							t.Mul(&w[((co*inChannels+ci)*kernelH+kr)*kernelW+kc],
								&x[ci*inH*inW+(i*stride+kr)*inW+(j*stride+kc)])
							sum.Add(&sum, &t)
						}
					}
				}
				out[co*outH*outW+i*outW+j] = sum
			}
		}
	}
	return out
}

// Conv2D is the square-input, square-kernel specialization of
// Conv2DNonSquare.
func Conv2D(x, w, b []field.Element, inSize, inChannels, outChannels, kernelSize, stride int) []field.Element {
	return Conv2DNonSquare(x, w, b, inSize, inSize, inChannels, outChannels, kernelSize, kernelSize, stride)
}
