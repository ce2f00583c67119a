package nn

import "gonum.org/v1/gonum/mat"

// Sequential chains Dense layers so that each layer's output feeds the
// next layer's input.
//
// Example:
//
//	model, err := nn.NewSequential(
//	    nn.NewDense(3, 2, nn.ReLU),
//	    nn.NewDense(3, 3, nn.Softmax),
//	)
type Sequential struct {
	layers []*Dense
}

// NewSequential creates a Sequential from the given layers.
//
// Adjacent layers must agree on width: each layer's fan-in has to equal
// the previous layer's neuron count. A mismatch is reported here as a
// *DimensionError, before any Forward can run into it.
func NewSequential(layers ...*Dense) (*Sequential, error) {
	for i := 1; i < len(layers); i++ {
		if layers[i].FanIn() != layers[i-1].Neurons() {
			return nil, &DimensionError{
				What:     "fan-in inputs (neuron count of the preceding layer)",
				Expected: layers[i-1].Neurons(),
				Actual:   layers[i].FanIn(),
			}
		}
	}
	return &Sequential{layers: layers}, nil
}

// Forward pipes input through every layer in order and returns the last
// layer's output. A Sequential with no layers returns its input.
func (s *Sequential) Forward(input *mat.Dense) *mat.Dense {
	output := input
	for _, layer := range s.layers {
		output = layer.Forward(output)
	}
	return output
}

// Layers returns the chained layers in forward order.
func (s *Sequential) Layers() []*Dense { return s.layers }
