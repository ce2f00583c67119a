package nn

import "gonum.org/v1/gonum/mat"

// Target is the labeled data a prediction matrix is scored against.
//
// It is a closed sum type with exactly two implementations, OneHot and
// Sparse. Each variant carries only its own payload, so reading a target
// through the wrong encoding is impossible by construction; loss
// calculation dispatches on the concrete type.
type Target interface {
	// Len reports the number of labeled examples.
	Len() int

	isTarget()
}

// OneHot encodes targets as a matrix with one row per example, each row
// an indicator vector with a 1 at the true class index and 0 elsewhere.
type OneHot struct {
	classes *mat.Dense
}

// NewOneHot wraps a one-hot target matrix. The matrix is not copied.
func NewOneHot(classes *mat.Dense) OneHot {
	return OneHot{classes: classes}
}

// Matrix returns the underlying one-hot matrix.
func (t OneHot) Matrix() *mat.Dense { return t.classes }

// Len reports the number of labeled examples.
func (t OneHot) Len() int {
	rows, _ := t.classes.Dims()
	return rows
}

func (OneHot) isTarget() {}

// Sparse encodes targets as one non-negative class index per example.
type Sparse struct {
	classes []int
}

// NewSparse wraps a slice of class indices. The slice is not copied.
func NewSparse(classes []int) Sparse {
	return Sparse{classes: classes}
}

// Classes returns the underlying class indices.
func (t Sparse) Classes() []int { return t.classes }

// Len reports the number of labeled examples.
func (t Sparse) Len() int { return len(t.classes) }

func (Sparse) isTarget() {}
