package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/baldhumanity/neuroevo-go/neuro"
)

// Layer is a live dense layer: y = act(W·x + b).
// Its parameters are fixed at construction; rebuild a layer to change them.
type Layer struct {
	inputSize  int
	outputSize int
	weights    *mat.Dense    // outputSize x inputSize
	biases     *mat.VecDense // outputSize
	activation neuro.Activation
}

// NewLayer builds a layer from flat row-major weights and a bias vector.
// The buffers are copied; the layer never aliases caller storage.
func NewLayer(inputSize, outputSize int, weights, biases []float64, act neuro.Activation) (*Layer, error) {
	if inputSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("%w: sizes must be positive (input %d, output %d)", neuro.ErrInvalidTopology, inputSize, outputSize)
	}
	if len(weights) != outputSize*inputSize {
		return nil, fmt.Errorf("%w: wrong weights length: expected %d, got %d", neuro.ErrInvalidTopology, outputSize*inputSize, len(weights))
	}
	if len(biases) != outputSize {
		return nil, fmt.Errorf("%w: wrong biases length: expected %d, got %d", neuro.ErrInvalidTopology, outputSize, len(biases))
	}

	w := make([]float64, len(weights))
	copy(w, weights)
	b := make([]float64, len(biases))
	copy(b, biases)

	return &Layer{
		inputSize:  inputSize,
		outputSize: outputSize,
		weights:    mat.NewDense(outputSize, inputSize, w),
		biases:     mat.NewVecDense(outputSize, b),
		activation: act,
	}, nil
}

// NewLayerFromParams builds a layer from a LayerParams snapshot.
func NewLayerFromParams(lp neuro.LayerParams) (*Layer, error) {
	return NewLayer(lp.InputSize, lp.OutputSize, lp.Weights, lp.Biases, lp.Activation)
}

// Forward computes the layer output for one input vector. The input is not
// modified and the returned slice is newly allocated.
func (l *Layer) Forward(input []float64) ([]float64, error) {
	if len(input) != l.inputSize {
		return nil, fmt.Errorf("%w: layer expects %d inputs, got %d", neuro.ErrShapeMismatch, l.inputSize, len(input))
	}

	// MulVec only reads x, so the caller's slice can back it directly.
	x := mat.NewVecDense(l.inputSize, input)
	z := mat.NewVecDense(l.outputSize, nil)
	z.MulVec(l.weights, x)
	z.AddVec(z, l.biases)

	out := z.RawVector().Data
	if err := neuro.Activate(l.activation, out); err != nil {
		return nil, err
	}
	return out, nil
}

// InputSize returns the number of inputs the layer accepts.
func (l *Layer) InputSize() int { return l.inputSize }

// OutputSize returns the number of outputs the layer produces.
func (l *Layer) OutputSize() int { return l.outputSize }

// Activation returns the layer's activation tag.
func (l *Layer) Activation() neuro.Activation { return l.activation }

// Weights returns a row-major copy of the weight matrix.
func (l *Layer) Weights() []float64 {
	arr := make([]float64, 0, l.outputSize*l.inputSize)
	for k := 0; k < l.outputSize; k++ {
		arr = append(arr, l.weights.RawRowView(k)...)
	}
	return arr
}

// Biases returns a copy of the bias vector.
func (l *Layer) Biases() []float64 {
	arr := make([]float64, l.outputSize)
	for k := range arr {
		arr[k] = l.biases.AtVec(k)
	}
	return arr
}

// Params exports the layer as a LayerParams snapshot.
func (l *Layer) Params() neuro.LayerParams {
	return neuro.LayerParams{
		InputSize:  l.inputSize,
		OutputSize: l.outputSize,
		Activation: l.activation,
		Weights:    l.Weights(),
		Biases:     l.Biases(),
	}
}
