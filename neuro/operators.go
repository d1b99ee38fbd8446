package neuro

import (
	"fmt"
	"math/rand/v2"
)

// DefaultMixProb is the crossover probability of keeping a value from the
// first parent.
const DefaultMixProb = 0.5

// Clone returns a deep copy of src. The copy shares no backing storage with
// src, so either can be mutated independently. Clone(nil) returns nil.
func Clone(src *NetworkParams) *NetworkParams {
	if src == nil {
		return nil
	}
	dst := &NetworkParams{Layers: make([]LayerParams, len(src.Layers))}
	for i, sl := range src.Layers {
		dst.Layers[i] = LayerParams{
			InputSize:  sl.InputSize,
			OutputSize: sl.OutputSize,
			Activation: sl.Activation,
			Weights:    append([]float64(nil), sl.Weights...),
			Biases:     append([]float64(nil), sl.Biases...),
		}
	}
	return dst
}

// Crossover creates a child by uniform gene-level crossover of two parents
// with identical topology. Every weight and every bias is an independent
// crossover site: a uniform draw in [0, 1) below mixProb keeps the value from
// a, otherwise the value from b is taken. Weights are visited before biases
// within each layer.
//
// The parents are not modified. ErrTopologyMismatch is returned if their
// layer shapes or activations differ.
func Crossover(a, b *NetworkParams, mixProb float64, rng *rand.Rand) (*NetworkParams, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil parent", ErrTopologyMismatch)
	}
	if !a.SameTopology(b) {
		return nil, fmt.Errorf("%w: %s vs %s", ErrTopologyMismatch, a, b)
	}
	rng = ensureRNG(rng)

	child := Clone(a)
	for l := range child.Layers {
		ca := &a.Layers[l]
		cb := &b.Layers[l]
		cc := &child.Layers[l]

		for i := range cc.Weights {
			if rng.Float64() < mixProb {
				cc.Weights[i] = ca.Weights[i]
			} else {
				cc.Weights[i] = cb.Weights[i]
			}
		}
		for i := range cc.Biases {
			if rng.Float64() < mixProb {
				cc.Biases[i] = ca.Biases[i]
			} else {
				cc.Biases[i] = cb.Biases[i]
			}
		}
	}
	return child, nil
}

// Mutate perturbs params in place. Each weight and each bias independently
// receives Gaussian noise with mean 0 and standard deviation mutationStdDev
// when a uniform draw in [0, 1) falls below mutationRate. Weights are visited
// before biases within each layer.
//
// Unlike Clone and Crossover, Mutate modifies its argument; clone first to
// keep the original.
func Mutate(params *NetworkParams, mutationRate, mutationStdDev float64, rng *rand.Rand) {
	if params == nil {
		return
	}
	rng = ensureRNG(rng)

	for l := range params.Layers {
		layer := &params.Layers[l]

		for i := range layer.Weights {
			if rng.Float64() < mutationRate {
				layer.Weights[i] += NextGaussian(rng) * mutationStdDev
			}
		}
		for i := range layer.Biases {
			if rng.Float64() < mutationRate {
				layer.Biases[i] += NextGaussian(rng) * mutationStdDev
			}
		}
	}
}
