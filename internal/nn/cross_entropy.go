package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// clipEpsilon bounds predictions away from 0 and 1 before taking logs.
// The lower bound keeps -ln(confidence) finite; clipping symmetrically at
// the top keeps the mean loss unbiased when predictions approach 1.
const clipEpsilon = 1e-7

func clip(v float64) float64 {
	return math.Min(math.Max(v, clipEpsilon), 1-clipEpsilon)
}

// crossEntropyOneHot returns the per-example cross-entropy of predictions
// against a one-hot target matrix. The true-class confidence of each row
// is recovered by multiplying it elementwise with its target row and
// summing, which selects the indicated column without indexing. Rows that
// do not sum to 1 are not validated; they yield a distorted loss.
func crossEntropyOneHot(predictions, classes *mat.Dense) []float64 {
	rows, cols := predictions.Dims()

	losses := make([]float64, rows)
	for i := 0; i < rows; i++ {
		var confidence float64
		for j := 0; j < cols; j++ {
			confidence += clip(predictions.At(i, j)) * classes.At(i, j)
		}
		losses[i] = -math.Log(confidence)
	}
	return losses
}

// crossEntropySparse returns the per-example cross-entropy of predictions
// against integer class indices. It panics if an index falls outside the
// prediction columns; an out-of-range class is a programmer error, not a
// data error.
func crossEntropySparse(predictions *mat.Dense, classes []int) []float64 {
	_, cols := predictions.Dims()

	losses := make([]float64, len(classes))
	for i, class := range classes {
		if class < 0 || class >= cols {
			panic(fmt.Sprintf("nn: cross-entropy: class index %d out of range [0, %d)", class, cols))
		}
		losses[i] = -math.Log(clip(predictions.At(i, class)))
	}
	return losses
}
