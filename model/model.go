// Package model provides composable forward-pass modules over the nn
// operations, for assembling fixed-shape inference networks.
//
// A Module maps one flat activation vector to the next. Modules hold their
// shapes and parameters, validated once at construction, so a composed
// network fails at build time rather than mid-forward:
//
//	net := model.NewSequential(
//	    model.NewLinear(w1, b1, 784, 128),
//	    model.ReLU{},
//	    model.NewLinear(w2, b2, 128, 10),
//	    model.ArgMax{},
//	)
//	class := net.Forward(input) // one element: the winning index
package model

import (
	"fmt"

	"github.com/modnn-ml/modnn/field"
	"github.com/modnn-ml/modnn/nn"
)

// Module is a forward-only network component: a pure function from one flat
// activation vector to the next.
type Module interface {
	Forward(input []field.Element) []field.Element
}

// Linear is a fully-connected layer with fixed weights and biases.
type Linear struct {
	weights []field.Element // nOut rows of nIn weights, row-major
	biases  []field.Element // nOut elements
	nIn     int
	nOut    int
}

// NewLinear creates a fully-connected layer, validating parameter lengths
// once so Forward can rely on them.
func NewLinear(weights, biases []field.Element, nIn, nOut int) *Linear {
	if nIn <= 0 || nOut <= 0 {
		panic(fmt.Sprintf("model: linear invalid dimensions in=%d, out=%d", nIn, nOut))
	}
	if len(weights) != nIn*nOut {
		panic(fmt.Sprintf("model: linear weight length %d, want in*out=%d", len(weights), nIn*nOut))
	}
	if len(biases) != nOut {
		panic(fmt.Sprintf("model: linear bias length %d, want %d", len(biases), nOut))
	}
	return &Linear{weights: weights, biases: biases, nIn: nIn, nOut: nOut}
}

// Forward computes the fully-connected forward pass.
func (l *Linear) Forward(input []field.Element) []field.Element {
	return nn.Dense(input, l.weights, l.biases, l.nIn, l.nOut)
}

// InFeatures returns the expected input length.
func (l *Linear) InFeatures() int { return l.nIn }

// OutFeatures returns the output length.
func (l *Linear) OutFeatures() int { return l.nOut }

// ReLU is the rectifier activation module.
type ReLU struct{}

// Forward applies nn.ReLU elementwise.
func (ReLU) Forward(input []field.Element) []field.Element {
	return nn.ReLU(input)
}

// Poly is the polynomial activation module x² + Scale*x.
type Poly struct {
	Scale field.Element
}

// Forward applies nn.Poly elementwise.
func (p Poly) Forward(input []field.Element) []field.Element {
	return nn.Poly(input, p.Scale)
}

// ArgMax is the terminal classification module: it reduces the activation
// vector to a single element holding the index of the signed maximum.
type ArgMax struct{}

// Forward returns a one-element slice with the winning index.
func (ArgMax) Forward(input []field.Element) []field.Element {
	return []field.Element{field.NewElement(uint64(field.ArgMax(input)))}
}

// Sequential chains modules: each module's output feeds the next.
type Sequential struct {
	modules []Module
}

// NewSequential creates a Sequential from the given modules.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Add appends a module, for building networks incrementally.
func (s *Sequential) Add(m Module) *Sequential {
	s.modules = append(s.modules, m)
	return s
}

// Forward applies all modules in order.
func (s *Sequential) Forward(input []field.Element) []field.Element {
	output := input
	for _, m := range s.modules {
		output = m.Forward(output)
	}
	return output
}

// Classifier builds the standard dense classifier stack: every layer but the
// last is followed by ReLU, and the last is followed by ArgMax. Layer i maps
// len(weights[i])/len(biases[i]) inputs to len(biases[i]) outputs.
//
// Panics if no layers are given, if weights and biases disagree in count, or
// if any layer's parameter lengths are inconsistent.
func Classifier(weights, biases [][]field.Element) *Sequential {
	if len(weights) == 0 {
		panic("model: classifier needs at least one layer")
	}
	if len(weights) != len(biases) {
		panic(fmt.Sprintf("model: classifier has %d weight sets but %d bias sets", len(weights), len(biases)))
	}

	s := NewSequential()
	for i := range weights {
		nOut := len(biases[i])
		if nOut == 0 || len(weights[i])%nOut != 0 {
			panic(fmt.Sprintf("model: classifier layer %d weight length %d not divisible by bias length %d",
				i, len(weights[i]), nOut))
		}
		nIn := len(weights[i]) / nOut

		s.Add(NewLinear(weights[i], biases[i], nIn, nOut))
		if i < len(weights)-1 {
			s.Add(ReLU{})
		} else {
			s.Add(ArgMax{})
		}
	}
	return s
}
