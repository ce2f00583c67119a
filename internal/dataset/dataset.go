// Package dataset loads the spiral classification dataset from its JSON
// file and presents it as the matrices the network engine consumes.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Point is one labeled example: a 2-D coordinate and its class index.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Class int     `json:"class"`
}

// Set is a loaded dataset.
type Set struct {
	Points []Point
}

type file struct {
	Data []Point `json:"data"`
}

// Load reads a dataset of the form
//
//	{"data": [{"x": 0.1, "y": -0.2, "class": 0}, ...]}
//
// from path.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	var parsed file
	if err := json.NewDecoder(f).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("dataset: decode %s: %w", path, err)
	}

	for i, p := range parsed.Data {
		if p.Class < 0 {
			return nil, fmt.Errorf("dataset: %s: record %d: negative class %d", path, i, p.Class)
		}
	}

	return &Set{Points: parsed.Data}, nil
}

// Features returns the examples as a [len(Points), 2] matrix of (x, y)
// rows.
func (s *Set) Features() *mat.Dense {
	features := mat.NewDense(len(s.Points), 2, nil)
	for i, p := range s.Points {
		features.Set(i, 0, p.X)
		features.Set(i, 1, p.Y)
	}
	return features
}

// Classes returns the class index of every example, in order.
func (s *Set) Classes() []int {
	classes := make([]int, len(s.Points))
	for i, p := range s.Points {
		classes[i] = p.Class
	}
	return classes
}

// NumClasses returns one more than the largest class index, or 0 for an
// empty set.
func (s *Set) NumClasses() int {
	n := 0
	for _, p := range s.Points {
		if p.Class+1 > n {
			n = p.Class + 1
		}
	}
	return n
}
