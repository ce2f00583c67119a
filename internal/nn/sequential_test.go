package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kkingsbe/neuralnet-go/internal/nn"
)

// TestNewSequential_RejectsWidthMismatch tests that chaining layers with
// disagreeing widths fails at construction, not at Forward.
func TestNewSequential_RejectsWidthMismatch(t *testing.T) {
	_, err := nn.NewSequential(
		nn.NewDense(3, 2, nn.ReLU),
		nn.NewDense(3, 4, nn.Softmax), // fan-in 4 != 3 neurons upstream
	)
	require.Error(t, err)

	var dimErr *nn.DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 3, dimErr.Expected)
	assert.Equal(t, 4, dimErr.Actual)
}

// TestSequential_EndToEnd tests a 2-feature batch through a ReLU hidden
// layer into a Softmax output layer.
func TestSequential_EndToEnd(t *testing.T) {
	hidden := nn.NewDenseSeeded(3, 2, nn.ReLU, 7)
	output := nn.NewDenseSeeded(3, 3, nn.Softmax, 8)

	model, err := nn.NewSequential(hidden, output)
	require.NoError(t, err)

	input := mat.NewDense(3, 2, []float64{
		0.5, -0.25,
		-1, 2,
		0, 0,
	})

	hiddenOut := hidden.Forward(input)
	rows, cols := hiddenOut.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.GreaterOrEqual(t, hiddenOut.At(i, j), 0.0, "ReLU output must be non-negative")
		}
	}

	probs := model.Forward(input)
	rows, cols = probs.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			sum += probs.At(i, j)
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "row %d", i)
	}
}

// TestSequential_Empty tests that a layerless model is the identity.
func TestSequential_Empty(t *testing.T) {
	model, err := nn.NewSequential()
	require.NoError(t, err)

	input := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.True(t, mat.Equal(input, model.Forward(input)))
}

// TestSequential_Layers tests the layer accessor order.
func TestSequential_Layers(t *testing.T) {
	hidden := nn.NewDense(4, 2, nn.ReLU)
	output := nn.NewDense(2, 4, nn.Softmax)

	model, err := nn.NewSequential(hidden, output)
	require.NoError(t, err)

	layers := model.Layers()
	require.Len(t, layers, 2)
	assert.Same(t, hidden, layers[0])
	assert.Same(t, output, layers[1])
}
