// Package nn implements a forward-only neural network engine:
//   - Dense: fully connected layer with fixed neuron count and fan-in
//   - Activation: ReLU and Softmax nonlinearities
//   - Loss / Target: cross-entropy scoring against one-hot or sparse labels
//   - Sequential: layer chaining with construction-time shape checks
//
// All operations are pure, synchronous computations over gonum matrices.
// The package performs forward inference and loss evaluation only; there
// is no gradient computation and no training loop.
package nn

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// weightScale shrinks the initial Gaussian draws so early activations stay
// small regardless of fan-in.
const weightScale = 0.01

// Dense is a fully connected layer.
//
// Performs y = x·W + b followed by the layer's activation, where
//   - x is the input with shape [examples, fanIn]
//   - W is the weight matrix with shape [fanIn, neurons], one column per neuron
//   - b is the bias vector with length neurons
//   - y is the output with shape [examples, neurons]
//
// Both dimensions are fixed at construction and never change for the life
// of the layer. Weights start as 0.01-scaled draws from a standard normal
// distribution; biases start at zero.
//
// Example:
//
//	hidden := nn.NewDense(3, 2, nn.ReLU)
//	output := hidden.Forward(features) // shape: [examples, 3]
type Dense struct {
	neurons    int
	fanIn      int
	weights    *mat.Dense    // [fanIn, neurons]
	biases     *mat.VecDense // [neurons]
	activation Activation
}

// NewDense creates a Dense layer with neurons outputs, each receiving
// fanIn inputs, using the process-global random source for weight
// initialization.
func NewDense(neurons, fanIn int, activation Activation) *Dense {
	return newDense(neurons, fanIn, activation, distuv.Normal{Mu: 0, Sigma: 1})
}

// NewDenseSeeded is NewDense with a deterministic weight initialization
// seed, for reproducible runs.
func NewDenseSeeded(neurons, fanIn int, activation Activation, seed uint64) *Dense {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed)}
	return newDense(neurons, fanIn, activation, normal)
}

func newDense(neurons, fanIn int, activation Activation, normal distuv.Normal) *Dense {
	if neurons <= 0 || fanIn <= 0 {
		panic(fmt.Sprintf("nn: NewDense: dimensions must be positive, got neurons=%d fanIn=%d", neurons, fanIn))
	}

	weights := mat.NewDense(fanIn, neurons, nil)
	for i := 0; i < fanIn; i++ {
		for j := 0; j < neurons; j++ {
			weights.Set(i, j, weightScale*normal.Rand())
		}
	}

	return &Dense{
		neurons:    neurons,
		fanIn:      fanIn,
		weights:    weights,
		biases:     mat.NewVecDense(neurons, nil),
		activation: activation,
	}
}

// Forward computes the layer output for a batch of examples.
//
// Input shape: [examples, fanIn]. Output shape: [examples, neurons].
// Forward is a pure function of the current weights, biases and
// activation; it mutates neither the layer nor the input. It panics if
// the input width does not match the layer's fan-in.
func (d *Dense) Forward(input *mat.Dense) *mat.Dense {
	rows, cols := input.Dims()
	if cols != d.fanIn {
		panic(fmt.Sprintf("nn: Dense.Forward: expected input with %d features, got %d", d.fanIn, cols))
	}

	var out mat.Dense
	out.Mul(input, d.weights)

	// Broadcast the bias vector across rows.
	for i := 0; i < rows; i++ {
		row := out.RawRowView(i)
		for j := range row {
			row[j] += d.biases.AtVec(j)
		}
	}

	return d.activation.Forward(&out)
}

// SetWeights replaces the layer's weights.
//
// The matrix must have one row per neuron and one column per input, i.e.
// shape [neurons, fanIn]; it is copied (transposed into the layer's
// column-per-neuron storage), so the caller keeps ownership of w. On
// shape mismatch a *DimensionError is returned and the existing weights
// are left untouched.
func (d *Dense) SetWeights(w *mat.Dense) error {
	rows, cols := w.Dims()
	if rows != d.neurons {
		return &DimensionError{What: "weight rows (one per neuron)", Expected: d.neurons, Actual: rows}
	}
	if cols != d.fanIn {
		return &DimensionError{What: "weights per neuron", Expected: d.fanIn, Actual: cols}
	}

	var weights mat.Dense
	weights.CloneFrom(w.T())
	d.weights = &weights
	return nil
}

// SetBiases replaces the layer's biases.
//
// The vector must have exactly one entry per neuron; it is copied. On
// length mismatch a *DimensionError is returned and the existing biases
// are left untouched.
func (d *Dense) SetBiases(b *mat.VecDense) error {
	if b.Len() != d.neurons {
		return &DimensionError{What: "biases (one per neuron)", Expected: d.neurons, Actual: b.Len()}
	}

	var biases mat.VecDense
	biases.CloneFromVec(b)
	d.biases = &biases
	return nil
}

// Neurons returns the layer's output width.
func (d *Dense) Neurons() int { return d.neurons }

// FanIn returns the number of inputs each neuron receives.
func (d *Dense) FanIn() int { return d.fanIn }

// Activation returns the activation bound at construction.
func (d *Dense) Activation() Activation { return d.activation }

// Weights returns a copy of the weight matrix in [fanIn, neurons] storage
// order.
func (d *Dense) Weights() *mat.Dense {
	var weights mat.Dense
	weights.CloneFrom(d.weights)
	return &weights
}

// Biases returns a copy of the bias vector.
func (d *Dense) Biases() *mat.VecDense {
	var biases mat.VecDense
	biases.CloneFromVec(d.biases)
	return &biases
}
