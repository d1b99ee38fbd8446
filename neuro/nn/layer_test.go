package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/baldhumanity/neuroevo-go/neuro"
)

func TestLayerForwardSigmoidExample(t *testing.T) {
	layer, err := NewLayer(2, 1, []float64{1, 1}, []float64{0}, neuro.Sigmoid)
	require.NoError(t, err)

	out, err := layer.Forward([]float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, out)

	out, err = layer.Forward([]float64{1, 1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 0.8808, out[0], 1e-4)
	assert.InDelta(t, 1/(1+math.Exp(-2)), out[0], 1e-15)
}

func TestLayerForwardRowMajor(t *testing.T) {
	// Output k reads weights[k*3 : k*3+3].
	weights := []float64{
		1, 2, 3,
		-1, 0, 4,
	}
	layer, err := NewLayer(3, 2, weights, []float64{0.5, -10}, neuro.ReLU)
	require.NoError(t, err)

	out, err := layer.Forward([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{6.5, 0}, out)

	out, err = layer.Forward([]float64{0, 0, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{9.5, 2}, out)
}

func TestLayerForwardZeroInputReturnsActivatedBias(t *testing.T) {
	biases := []float64{-1.5, 0, 0.75}
	weights := []float64{0.3, -2, 5, 1, -0.1, 9}
	for _, act := range []neuro.Activation{neuro.Sigmoid, neuro.Tanh, neuro.ReLU, neuro.Softmax} {
		t.Run(act.String(), func(t *testing.T) {
			layer, err := NewLayer(2, 3, weights, biases, act)
			require.NoError(t, err)

			out, err := layer.Forward([]float64{0, 0})
			require.NoError(t, err)

			want := append([]float64(nil), biases...)
			require.NoError(t, neuro.Activate(act, want))
			assert.Equal(t, want, out)
		})
	}
}

func TestLayerForwardSoftmaxSumsToOne(t *testing.T) {
	layer, err := NewLayer(2, 4, []float64{1, -1, 2, 0.5, -3, 1, 0, 0}, []float64{0, 1, 2, 3}, neuro.Softmax)
	require.NoError(t, err)

	out, err := layer.Forward([]float64{0.7, -1.1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, floats.Sum(out), 1e-12)
}

func TestLayerForwardShapeMismatch(t *testing.T) {
	layer, err := NewLayer(2, 1, []float64{1, 1}, []float64{0}, neuro.Sigmoid)
	require.NoError(t, err)

	_, err = layer.Forward([]float64{1, 2, 3})
	require.ErrorIs(t, err, neuro.ErrShapeMismatch)

	_, err = layer.Forward(nil)
	require.ErrorIs(t, err, neuro.ErrShapeMismatch)
}

func TestLayerForwardUnsupportedActivation(t *testing.T) {
	layer, err := NewLayer(1, 1, []float64{1}, []float64{0}, neuro.Activation(99))
	require.NoError(t, err)

	_, err = layer.Forward([]float64{1})
	require.ErrorIs(t, err, neuro.ErrUnsupportedActivation)
}

func TestLayerForwardDoesNotModifyInput(t *testing.T) {
	layer, err := NewLayer(2, 2, []float64{1, 2, 3, 4}, []float64{0, 0}, neuro.ReLU)
	require.NoError(t, err)

	in := []float64{-1, 1}
	_, err = layer.Forward(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 1}, in)
}

func TestNewLayerRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name            string
		in, out         int
		weights, biases []float64
	}{
		{"zero input", 0, 1, nil, []float64{0}},
		{"zero output", 1, 0, nil, nil},
		{"short weights", 2, 2, []float64{1, 2, 3}, []float64{0, 0}},
		{"long biases", 1, 1, []float64{1}, []float64{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLayer(tt.in, tt.out, tt.weights, tt.biases, neuro.ReLU)
			require.ErrorIs(t, err, neuro.ErrInvalidTopology)
		})
	}
}

func TestLayerOwnsItsBuffers(t *testing.T) {
	weights := []float64{1, 2}
	biases := []float64{3}
	layer, err := NewLayer(2, 1, weights, biases, neuro.ReLU)
	require.NoError(t, err)

	weights[0] = 100
	biases[0] = 100
	assert.Equal(t, []float64{1, 2}, layer.Weights())
	assert.Equal(t, []float64{3}, layer.Biases())

	exported := layer.Weights()
	exported[1] = -7
	assert.Equal(t, []float64{1, 2}, layer.Weights())
}

func TestLayerParams(t *testing.T) {
	lp := neuro.LayerParams{
		InputSize:  3,
		OutputSize: 2,
		Activation: neuro.Tanh,
		Weights:    []float64{1, 2, 3, 4, 5, 6},
		Biases:     []float64{-1, 1},
	}
	layer, err := NewLayerFromParams(lp)
	require.NoError(t, err)

	assert.Equal(t, 3, layer.InputSize())
	assert.Equal(t, 2, layer.OutputSize())
	assert.Equal(t, neuro.Tanh, layer.Activation())
	assert.Equal(t, lp, layer.Params())
}
