package nn

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Accuracy reports the fraction of examples whose highest-scoring class
// matches the true class, as a value in [0, 1]. One-hot targets are
// reduced to class indices by row argmax. An empty batch yields 0.
func Accuracy(predictions *mat.Dense, target Target) float64 {
	rows, _ := predictions.Dims()
	if rows == 0 || target.Len() != rows {
		return 0
	}

	var classes []int
	switch t := target.(type) {
	case Sparse:
		classes = t.Classes()
	case OneHot:
		classes = make([]int, rows)
		for i := 0; i < rows; i++ {
			classes[i] = floats.MaxIdx(t.Matrix().RawRowView(i))
		}
	default:
		return 0
	}

	correct := 0
	for i := 0; i < rows; i++ {
		if floats.MaxIdx(predictions.RawRowView(i)) == classes[i] {
			correct++
		}
	}
	return float64(correct) / float64(rows)
}
