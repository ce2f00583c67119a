// Copyright 2025 The neuralnet-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kkingsbe/neuralnet-go/internal/nn"
)

// Activations

// Activation selects a Dense layer's nonlinearity.
type Activation = nn.Activation

// Available activations.
const (
	ReLU    Activation = nn.ReLU
	Softmax Activation = nn.Softmax
)

// Layers

// Dense is a fully connected layer with fixed neuron count and fan-in.
type Dense = nn.Dense

// NewDense creates a Dense layer with neurons outputs, each receiving
// fanIn inputs.
//
// Example:
//
//	hidden := nn.NewDense(3, 2, nn.ReLU)
func NewDense(neurons, fanIn int, activation Activation) *Dense {
	return nn.NewDense(neurons, fanIn, activation)
}

// NewDenseSeeded is NewDense with a deterministic weight initialization
// seed.
func NewDenseSeeded(neurons, fanIn int, activation Activation, seed uint64) *Dense {
	return nn.NewDenseSeeded(neurons, fanIn, activation, seed)
}

// Sequential chains Dense layers.
type Sequential = nn.Sequential

// NewSequential creates a Sequential, rejecting adjacent layers whose
// widths disagree.
//
// Example:
//
//	model, err := nn.NewSequential(
//	    nn.NewDense(3, 2, nn.ReLU),
//	    nn.NewDense(3, 3, nn.Softmax),
//	)
func NewSequential(layers ...*Dense) (*Sequential, error) {
	return nn.NewSequential(layers...)
}

// Loss

// LossKind selects the scoring function a Loss applies.
type LossKind = nn.LossKind

// CrossEntropy scores per-class probabilities as the negative log of the
// true-class confidence.
const CrossEntropy LossKind = nn.CrossEntropy

// Loss scores predictions against labeled targets.
type Loss = nn.Loss

// NewLoss creates a Loss for the given kind.
func NewLoss(kind LossKind) Loss {
	return nn.NewLoss(kind)
}

// Targets

// Target is labeled data in either of the two supported encodings.
type Target = nn.Target

// OneHot encodes targets as indicator rows, one per example.
type OneHot = nn.OneHot

// NewOneHot wraps a one-hot target matrix.
func NewOneHot(classes *mat.Dense) OneHot {
	return nn.NewOneHot(classes)
}

// Sparse encodes targets as one class index per example.
type Sparse = nn.Sparse

// NewSparse wraps a slice of class indices.
func NewSparse(classes []int) Sparse {
	return nn.NewSparse(classes)
}

// Errors

// DimensionError reports a shape that disagrees with a layer's fixed
// dimensions.
type DimensionError = nn.DimensionError

// Metrics

// Accuracy reports the fraction of examples whose highest-scoring class
// matches the true class.
func Accuracy(predictions *mat.Dense, target Target) float64 {
	return nn.Accuracy(predictions, target)
}
