package nn

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/baldhumanity/neuroevo-go/neuro"
)

// Ranges of the default random initializer.
const (
	WeightInitMin = -1.0
	WeightInitMax = 1.0
	BiasInitMin   = -0.5
	BiasInitMax   = 0.5
)

// Network is a live feedforward network: an ordered stack of dense layers.
//
// The declared dimensions are only used by Initialize. A network built from a
// snapshot takes its shape from the snapshot.
type Network struct {
	InputSize        int
	OutputSize       int
	HiddenLayerCount int
	HiddenLayerSize  int

	source *neuro.NetworkParams // set by InitializeFrom
	layers []*Layer
}

// NewNetwork creates an uninitialized network with the given dimensions.
// Call Initialize or Build before Forward.
func NewNetwork(inputSize, outputSize, hiddenLayerCount, hiddenLayerSize int) *Network {
	n := &Network{}
	n.SetupDimensions(inputSize, outputSize, hiddenLayerCount, hiddenLayerSize)
	return n
}

// FromConfig creates an uninitialized network with the dimensions in cfg.
func FromConfig(cfg neuro.NetworkConfig) *Network {
	return NewNetwork(cfg.InputSize, cfg.OutputSize, cfg.HiddenLayerCount, cfg.HiddenLayerSize)
}

// SetupDimensions sets the dimensions used by the next Initialize call.
// Existing layers are left untouched.
func (n *Network) SetupDimensions(inputSize, outputSize, hiddenLayerCount, hiddenLayerSize int) {
	n.InputSize = inputSize
	n.OutputSize = outputSize
	n.HiddenLayerCount = hiddenLayerCount
	n.HiddenLayerSize = hiddenLayerSize
}

// Initialize replaces the network's layers with freshly randomized ones built
// from the declared dimensions:
//
//   - HiddenLayerCount <= 0: input -> output (sigmoid)
//   - HiddenLayerCount == 1: input -> hidden (relu), hidden -> output (sigmoid)
//   - HiddenLayerCount  > 1: input -> hidden (relu), HiddenLayerCount-1 hidden -> hidden (relu),
//     hidden -> output (sigmoid)
//
// Weights are drawn uniformly from [-1, 1] and biases from [-0.5, 0.5] using
// rng. A nil rng uses a freshly seeded generator.
func (n *Network) Initialize(rng *rand.Rand) error {
	if n.InputSize <= 0 || n.OutputSize <= 0 {
		return fmt.Errorf("%w: input and output sizes must be positive (input %d, output %d)",
			neuro.ErrInvalidTopology, n.InputSize, n.OutputSize)
	}
	if n.HiddenLayerCount > 0 && n.HiddenLayerSize <= 0 {
		return fmt.Errorf("%w: hidden layer size must be positive, got %d", neuro.ErrInvalidTopology, n.HiddenLayerSize)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	ri := newRandomInit(rng)
	var layers []*Layer
	switch {
	case n.HiddenLayerCount <= 0:
		layers = []*Layer{
			ri.layer(n.InputSize, n.OutputSize, neuro.Sigmoid),
		}
	case n.HiddenLayerCount == 1:
		layers = []*Layer{
			ri.layer(n.InputSize, n.HiddenLayerSize, neuro.ReLU),
			ri.layer(n.HiddenLayerSize, n.OutputSize, neuro.Sigmoid),
		}
	default:
		layers = make([]*Layer, n.HiddenLayerCount+1)
		layers[0] = ri.layer(n.InputSize, n.HiddenLayerSize, neuro.ReLU)
		for l := 1; l < n.HiddenLayerCount; l++ {
			layers[l] = ri.layer(n.HiddenLayerSize, n.HiddenLayerSize, neuro.ReLU)
		}
		layers[n.HiddenLayerCount] = ri.layer(n.HiddenLayerSize, n.OutputSize, neuro.Sigmoid)
	}

	n.source = nil
	n.layers = layers
	return nil
}

// InitializeFrom builds the network from a pregenerated snapshot and remembers
// a private copy of it as the network's source for Reinitialize.
func (n *Network) InitializeFrom(params *neuro.NetworkParams) error {
	if err := n.Build(params); err != nil {
		return err
	}
	n.source = neuro.Clone(params)
	return nil
}

// Reinitialize rebuilds the network the way it was last initialized: from the
// source snapshot if InitializeFrom was used, otherwise randomly.
func (n *Network) Reinitialize(rng *rand.Rand) error {
	if n.source != nil {
		return n.Build(n.source)
	}
	return n.Initialize(rng)
}

// Build validates params and replaces the network's layers with ones built
// directly from its buffers. On error the current layers are kept.
func (n *Network) Build(params *neuro.NetworkParams) error {
	layers, err := BuildLayers(params)
	if err != nil {
		return err
	}
	n.layers = layers
	return nil
}

// BuildLayers validates params and constructs one live layer per snapshot layer.
func BuildLayers(params *neuro.NetworkParams) ([]*Layer, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build network: %w", err)
	}
	layers := make([]*Layer, len(params.Layers))
	for i, ld := range params.Layers {
		layer, err := NewLayerFromParams(ld)
		if err != nil {
			return nil, fmt.Errorf("failed to build layer %d: %w", i, err)
		}
		layers[i] = layer
	}
	return layers, nil
}

// Forward feeds input through every layer in order and returns the output of
// the last one.
func (n *Network) Forward(input []float64) ([]float64, error) {
	if len(n.layers) == 0 {
		return nil, neuro.ErrNotInitialized
	}
	if want := n.layers[0].InputSize(); len(input) != want {
		return nil, fmt.Errorf("%w: expected %d inputs, got %d", neuro.ErrShapeMismatch, want, len(input))
	}

	x := input
	for i, layer := range n.layers {
		out, err := layer.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		x = out
	}
	return x, nil
}

// ToData exports the current layers as a snapshot. Weights and biases are
// copied out in the same row-major order they were built from.
func (n *Network) ToData() (*neuro.NetworkParams, error) {
	if len(n.layers) == 0 {
		return nil, neuro.ErrNotInitialized
	}
	data := &neuro.NetworkParams{Layers: make([]neuro.LayerParams, len(n.layers))}
	for i, layer := range n.layers {
		data.Layers[i] = layer.Params()
	}
	return data, nil
}

// Initialized reports whether the network has any layers.
func (n *Network) Initialized() bool {
	return len(n.layers) > 0
}

// Layers returns the live layers. The slice must not be modified.
func (n *Network) Layers() []*Layer {
	return n.layers
}

// randomInit draws layer parameters for Initialize.
type randomInit struct {
	weight distuv.Uniform
	bias   distuv.Uniform
}

func newRandomInit(rng *rand.Rand) *randomInit {
	return &randomInit{
		weight: distuv.Uniform{Min: WeightInitMin, Max: WeightInitMax, Src: rng},
		bias:   distuv.Uniform{Min: BiasInitMin, Max: BiasInitMax, Src: rng},
	}
}

// layer draws one random layer. Each output unit's bias is drawn before its
// weights.
func (ri *randomInit) layer(inputSize, outputSize int, act neuro.Activation) *Layer {
	biases := make([]float64, outputSize)
	weights := make([]float64, outputSize*inputSize)

	for o := 0; o < outputSize; o++ {
		biases[o] = ri.bias.Rand()
		for i := 0; i < inputSize; i++ {
			weights[o*inputSize+i] = ri.weight.Rand()
		}
	}

	layer, err := NewLayer(inputSize, outputSize, weights, biases, act)
	if err != nil {
		// Sizes are checked by Initialize.
		panic(fmt.Sprintf("random layer %dx%d: %v", outputSize, inputSize, err))
	}
	return layer
}
