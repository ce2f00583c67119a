package nn

import "fmt"

// DimensionError reports a shape that disagrees with a layer's fixed
// dimensions. It is returned by the weight and bias setters, by
// Sequential construction, and by loss calculation when predictions and
// targets cover different numbers of examples. The receiving value is
// left unchanged whenever it is returned.
type DimensionError struct {
	What     string // the quantity that was mis-sized, e.g. "weight rows (one per neuron)"
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("nn: incorrect dimension: expected %d %s, got %d", e.Expected, e.What, e.Actual)
}
