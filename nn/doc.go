// Copyright 2025 The neuralnet-go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn is the public API of the neuralnet-go forward-inference
// engine.
//
// # Overview
//
// The engine computes the forward pass of a feed-forward classifier and
// scores its output:
//   - Dense: affine transform (x·W + b) followed by an activation
//   - Activation: ReLU and Softmax
//   - Loss: cross-entropy against one-hot or sparse targets
//   - Sequential: layer chaining with construction-time shape checks
//
// There is no backward pass and no training loop; weights are either the
// random initialization or whatever the caller installs with SetWeights.
//
// # Basic Usage
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/kkingsbe/neuralnet-go/nn"
//	)
//
//	func main() {
//	    model, err := nn.NewSequential(
//	        nn.NewDense(3, 2, nn.ReLU),
//	        nn.NewDense(3, 3, nn.Softmax),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    probs := model.Forward(features) // [examples, 3] probabilities
//
//	    loss := nn.NewLoss(nn.CrossEntropy)
//	    mean, err := loss.Calculate(probs, nn.NewSparse(classes))
//	}
//
// # Target Encodings
//
// Labels can be supplied either as a one-hot matrix (one indicator row
// per example) or as a sparse vector of class indices. The two encodings
// of the same labels produce identical losses:
//
//	onehot := nn.NewOneHot(mat.NewDense(3, 3, []float64{
//	    1, 0, 0,
//	    0, 1, 0,
//	    0, 1, 0,
//	}))
//	sparse := nn.NewSparse([]int{0, 1, 1})
//
// # Error Handling
//
// Replacing weights or biases with a mis-shaped matrix returns a
// *DimensionError and leaves the layer unchanged. Calling Forward with an
// input whose width does not match the layer's fan-in is a contract
// violation and panics.
package nn
