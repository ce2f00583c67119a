package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/kkingsbe/neuralnet-go/internal/dataset"
)

// plotScatter renders the dataset as a scatter plot, one series per
// class, to path. The output format follows the file extension; the
// default is SVG.
func plotScatter(set *dataset.Set, path string) error {
	p := plot.New()
	p.Title.Text = "Spiral Data"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = -1, 1
	p.Y.Min, p.Y.Max = -1, 1

	for class := 0; class < set.NumClasses(); class++ {
		var pts plotter.XYs
		for _, point := range set.Points {
			if point.Class == class {
				pts = append(pts, plotter.XY{X: point.X, Y: point.Y})
			}
		}

		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("plot: class %d: %w", class, err)
		}
		s.GlyphStyle.Color = plotutil.Color(class)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("class %d", class), s)
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}
	return nil
}
