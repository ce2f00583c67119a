package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LossKind selects the scoring function a Loss applies. The set of
// implementations is fixed and known at compile time; there is no plugin
// extensibility.
type LossKind int

// CrossEntropy scores a matrix of per-class probabilities against the
// true classes as the negative log of the confidence assigned to each
// true class.
const CrossEntropy LossKind = iota

// String returns the loss kind's name.
func (k LossKind) String() string {
	switch k {
	case CrossEntropy:
		return "cross-entropy"
	default:
		return fmt.Sprintf("LossKind(%d)", int(k))
	}
}

// Loss scores predictions against labeled targets. The underlying
// calculation is bound at construction; a Loss is stateless thereafter.
type Loss struct {
	kind LossKind
}

// NewLoss creates a Loss for the given kind.
func NewLoss(kind LossKind) Loss {
	return Loss{kind: kind}
}

// Calculate reduces the per-example losses of predictions against target
// to their arithmetic mean.
//
// Predictions have one row per example and one column per class; the
// target may use either encoding. An empty batch yields 0.0 rather than
// failing. If the target covers a different number of examples than the
// predictions, Calculate returns a *DimensionError instead of pairing the
// rows it can.
func (l Loss) Calculate(predictions *mat.Dense, target Target) (float64, error) {
	rows, _ := predictions.Dims()
	if target.Len() != rows {
		return 0, &DimensionError{What: "target examples", Expected: rows, Actual: target.Len()}
	}

	var losses []float64
	switch t := target.(type) {
	case OneHot:
		losses = l.forwardOneHot(predictions, t.Matrix())
	case Sparse:
		losses = l.forwardSparse(predictions, t.Classes())
	default:
		panic(fmt.Sprintf("nn: Loss.Calculate: unknown target encoding %T", target))
	}

	if len(losses) == 0 {
		return 0, nil
	}
	return floats.Sum(losses) / float64(len(losses)), nil
}

func (l Loss) forwardOneHot(predictions, classes *mat.Dense) []float64 {
	switch l.kind {
	case CrossEntropy:
		return crossEntropyOneHot(predictions, classes)
	default:
		panic(fmt.Sprintf("nn: unknown loss kind %d", int(l.kind)))
	}
}

func (l Loss) forwardSparse(predictions *mat.Dense, classes []int) []float64 {
	switch l.kind {
	case CrossEntropy:
		return crossEntropySparse(predictions, classes)
	default:
		panic(fmt.Sprintf("nn: unknown loss kind %d", int(l.kind)))
	}
}
