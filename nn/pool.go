// Copyright 2025 ModNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"

	"github.com/modnn-ml/modnn/field"
)

// Pooling partitions each channel's spatial extent into non-overlapping
// windows of the kernel size and reduces each window to one output element.
//
// Output sizes use integer floor division:
//
//	outSize = inSize / kernelSize
//
// When the kernel size does not evenly divide the input size, the trailing
// elements past the last full window are silently excluded from the output.
// This truncation is deliberate, observable behavior, not an error: a
// 5-element channel max-pooled with kernel 2 yields 2 outputs and the fifth
// element never participates.
//
// Max variants reduce under the signed order (field.GreaterThanSigned).
// Avg variants sum the window then divide by the window area — exact field
// division by the inverse of the area, which reproduces integer averaging
// whenever the sum is divisible by the area. Sum variants only sum.

// checkPool1D validates the shared 1D pooling preconditions.
func checkPool1D(op string, x []field.Element, inSize, channels, kernelSize int) {
	if inSize <= 0 || channels <= 0 {
		panic(fmt.Sprintf("%s: invalid dimensions in_size=%d, channels=%d", op, inSize, channels))
	}
	if kernelSize <= 0 || kernelSize > inSize {
		panic(fmt.Sprintf("%s: kernel size %d out of range for input size %d", op, kernelSize, inSize))
	}
	if len(x) != channels*inSize {
		panic(fmt.Sprintf("%s: input length %d, want channels*in_size=%d", op, len(x), channels*inSize))
	}
}

// checkPool2D validates the shared 2D pooling preconditions.
func checkPool2D(op string, x []field.Element, inH, inW, channels, kernelH, kernelW int) {
	if inH <= 0 || inW <= 0 || channels <= 0 {
		panic(fmt.Sprintf("%s: invalid dimensions h=%d, w=%d, channels=%d", op, inH, inW, channels))
	}
	if kernelH <= 0 || kernelH > inH || kernelW <= 0 || kernelW > inW {
		panic(fmt.Sprintf("%s: kernel %dx%d out of range for input %dx%d", op, kernelH, kernelW, inH, inW))
	}
	if len(x) != channels*inH*inW {
		panic(fmt.Sprintf("%s: input length %d, want channels*h*w=%d", op, len(x), channels*inH*inW))
	}
}

// inverseOf returns 1/n in the field. Window areas are small positive
// integers, so n never reduces to zero.
func inverseOf(n int) field.Element {
	var inv field.Element
	inv.SetUint64(uint64(n))
	inv.Inverse(&inv)
	return inv
}

// MaxPool1D reduces each non-overlapping length-kernelSize window to its
// signed maximum. Output length is channels * (inSize/kernelSize).
func MaxPool1D(x []field.Element, inSize, channels, kernelSize int) []field.Element {
	checkPool1D("max_pool_1d", x, inSize, channels, kernelSize)

	outSize := inSize / kernelSize
	out := make([]field.Element, channels*outSize)
	for c := 0; c < channels; c++ {
		for j := 0; j < outSize; j++ {
			max := x[c*inSize+j*kernelSize]
			for k := 1; k < kernelSize; k++ {
				if v := x[c*inSize+j*kernelSize+k]; field.GreaterThanSigned(v, max) {
					max = v
				}
			}
			out[c*outSize+j] = max
		}
	}
	return out
}

// SumPool1D reduces each non-overlapping window to the sum of its elements.
func SumPool1D(x []field.Element, inSize, channels, kernelSize int) []field.Element {
	checkPool1D("sum_pool_1d", x, inSize, channels, kernelSize)

	outSize := inSize / kernelSize
	out := make([]field.Element, channels*outSize)
	for c := 0; c < channels; c++ {
		for j := 0; j < outSize; j++ {
			var sum field.Element
			for k := 0; k < kernelSize; k++ {
				sum.Add(&sum, &x[c*inSize+j*kernelSize+k])
			}
			out[c*outSize+j] = sum
		}
	}
	return out
}

// AvgPool1D reduces each non-overlapping window to its field average: the
// window sum times the inverse of the kernel size.
func AvgPool1D(x []field.Element, inSize, channels, kernelSize int) []field.Element {
	checkPool1D("avg_pool_1d", x, inSize, channels, kernelSize)

	out := SumPool1D(x, inSize, channels, kernelSize)
	inv := inverseOf(kernelSize)
	for i := range out {
		out[i].Mul(&out[i], &inv)
	}
	return out
}

// MaxPool2DNonSquare reduces each non-overlapping kernelH×kernelW window to
// its signed maximum. Output is channels * (inH/kernelH) * (inW/kernelW)
// elements; remainder rows and columns past the last full window are
// excluded.
func MaxPool2DNonSquare(x []field.Element, inH, inW, channels, kernelH, kernelW int) []field.Element {
	checkPool2D("max_pool_2d", x, inH, inW, channels, kernelH, kernelW)

	outH := inH / kernelH
	outW := inW / kernelW
	out := make([]field.Element, channels*outH*outW)
	for c := 0; c < channels; c++ {
		for i := 0; i < outH; i++ {
			for j := 0; j < outW; j++ {
				max := x[c*inH*inW+i*kernelH*inW+j*kernelW]
				for kr := 0; kr < kernelH; kr++ {
					for kc := 0; kc < kernelW; kc++ {
						if kr == 0 && kc == 0 {
							continue
						}
						v := x[c*inH*inW+(i*kernelH+kr)*inW+j*kernelW+kc]
						if field.GreaterThanSigned(v, max) {
							max = v
						}
					}
				}
				out[c*outH*outW+i*outW+j] = max
			}
		}
	}
	return out
}

// MaxPool2D is the square specialization of MaxPool2DNonSquare.
func MaxPool2D(x []field.Element, inSize, channels, kernelSize int) []field.Element {
	return MaxPool2DNonSquare(x, inSize, inSize, channels, kernelSize, kernelSize)
}

// SumPool2DNonSquare reduces each non-overlapping kernelH×kernelW window to
// the sum of its elements.
func SumPool2DNonSquare(x []field.Element, inH, inW, channels, kernelH, kernelW int) []field.Element {
	checkPool2D("sum_pool_2d", x, inH, inW, channels, kernelH, kernelW)

	outH := inH / kernelH
	outW := inW / kernelW
	out := make([]field.Element, channels*outH*outW)
	for c := 0; c < channels; c++ {
		for i := 0; i < outH; i++ {
			for j := 0; j < outW; j++ {
				var sum field.Element
				for kr := 0; kr < kernelH; kr++ {
					for kc := 0; kc < kernelW; kc++ {
						sum.Add(&sum, &x[c*inH*inW+(i*kernelH+kr)*inW+j*kernelW+kc])
					}
				}
				out[c*outH*outW+i*outW+j] = sum
			}
		}
	}
	return out
}

// SumPool2D is the square specialization of SumPool2DNonSquare.
func SumPool2D(x []field.Element, inSize, channels, kernelSize int) []field.Element {
	return SumPool2DNonSquare(x, inSize, inSize, channels, kernelSize, kernelSize)
}

// AvgPool2DNonSquare reduces each non-overlapping kernelH×kernelW window to
// its field average over the window area.
func AvgPool2DNonSquare(x []field.Element, inH, inW, channels, kernelH, kernelW int) []field.Element {
	checkPool2D("avg_pool_2d", x, inH, inW, channels, kernelH, kernelW)

	out := SumPool2DNonSquare(x, inH, inW, channels, kernelH, kernelW)
	inv := inverseOf(kernelH * kernelW)
	for i := range out {
		out[i].Mul(&out[i], &inv)
	}
	return out
}

// AvgPool2D is the square specialization of AvgPool2DNonSquare.
func AvgPool2D(x []field.Element, inSize, channels, kernelSize int) []field.Element {
	return AvgPool2DNonSquare(x, inSize, inSize, channels, kernelSize, kernelSize)
}

// GlobalMaxPool2DNonSquare reduces each channel's entire inH×inW extent to a
// single signed maximum. The window covers everything, so no truncation can
// occur. Output length is channels.
func GlobalMaxPool2DNonSquare(x []field.Element, inH, inW, channels int) []field.Element {
	checkPool2D("global_max_pool_2d", x, inH, inW, channels, inH, inW)

	area := inH * inW
	out := make([]field.Element, channels)
	for c := 0; c < channels; c++ {
		max := x[c*area]
		for p := 1; p < area; p++ {
			if v := x[c*area+p]; field.GreaterThanSigned(v, max) {
				max = v
			}
		}
		out[c] = max
	}
	return out
}

// GlobalMaxPool2D is the square specialization of GlobalMaxPool2DNonSquare.
func GlobalMaxPool2D(x []field.Element, inSize, channels int) []field.Element {
	return GlobalMaxPool2DNonSquare(x, inSize, inSize, channels)
}
