// Command spiralnet runs the spiral dataset through a two-layer
// classifier and reports the untrained network's loss and accuracy.
// Optionally it renders the dataset to an SVG scatter plot.
package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/kkingsbe/neuralnet-go/internal/dataset"
	"github.com/kkingsbe/neuralnet-go/nn"
)

func main() {
	dataPath := flag.String("data", "datasets/spiral.json", "path to the spiral dataset JSON file")
	plotPath := flag.String("plot", "scatter.svg", "path for the SVG scatter plot (empty to skip)")
	seed := flag.Uint64("seed", 42, "weight initialization seed")
	flag.Parse()

	set, err := dataset.Load(*dataPath)
	if err != nil {
		log.Fatal(err)
	}
	features := set.Features()
	classes := set.Classes()
	fmt.Printf("loaded %d examples, %d classes\n", len(set.Points), set.NumClasses())

	hidden := nn.NewDenseSeeded(3, 2, nn.ReLU, *seed)
	output := nn.NewDenseSeeded(3, 3, nn.Softmax, *seed+1)
	model, err := nn.NewSequential(hidden, output)
	if err != nil {
		log.Fatal(err)
	}

	hiddenOut := hidden.Forward(features)
	fmt.Println("hidden layer output (first rows):")
	printHead(hiddenOut)

	probs := model.Forward(features)
	fmt.Println("output probabilities (first rows):")
	printHead(probs)

	loss := nn.NewLoss(nn.CrossEntropy)
	mean, err := loss.Calculate(probs, nn.NewSparse(classes))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("cross-entropy loss: %.6f\n", mean)
	fmt.Printf("accuracy: %.4f\n", nn.Accuracy(probs, nn.NewSparse(classes)))

	if *plotPath != "" {
		if err := plotScatter(set, *plotPath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", *plotPath)
	}
}

// printHead prints up to the first five rows of m.
func printHead(m *mat.Dense) {
	rows, cols := m.Dims()
	if rows > 5 {
		rows = 5
	}
	head := m.Slice(0, rows, 0, cols)
	fmt.Printf("%.4f\n", mat.Formatted(head, mat.Prefix("")))
}
