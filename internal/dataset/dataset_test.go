package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkingsbe/neuralnet-go/internal/dataset"
)

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spiral.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// TestLoad tests loading a well-formed dataset file.
func TestLoad(t *testing.T) {
	path := writeFixture(t, `{
		"data": [
			{"x": 0.1, "y": -0.2, "class": 0},
			{"x": -0.3, "y": 0.4, "class": 1},
			{"x": 0.5, "y": 0.6, "class": 2}
		]
	}`)

	set, err := dataset.Load(path)
	require.NoError(t, err)
	require.Len(t, set.Points, 3)

	features := set.Features()
	rows, cols := features.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.InDelta(t, 0.1, features.At(0, 0), 1e-12)
	assert.InDelta(t, -0.2, features.At(0, 1), 1e-12)
	assert.InDelta(t, 0.4, features.At(1, 1), 1e-12)

	assert.Equal(t, []int{0, 1, 2}, set.Classes())
	assert.Equal(t, 3, set.NumClasses())
}

// TestLoad_MissingFile tests the open error path.
func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

// TestLoad_MalformedJSON tests the decode error path.
func TestLoad_MalformedJSON(t *testing.T) {
	path := writeFixture(t, `{"data": [{"x": }`)

	_, err := dataset.Load(path)
	assert.Error(t, err)
}

// TestLoad_NegativeClass tests that negative class indices are rejected.
func TestLoad_NegativeClass(t *testing.T) {
	path := writeFixture(t, `{"data": [{"x": 0, "y": 0, "class": -1}]}`)

	_, err := dataset.Load(path)
	assert.Error(t, err)
}

// TestSet_Empty tests the accessors on an empty set.
func TestSet_Empty(t *testing.T) {
	path := writeFixture(t, `{"data": []}`)

	set, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Empty(t, set.Classes())
	assert.Zero(t, set.NumClasses())
}
