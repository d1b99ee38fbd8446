package neuro

import (
	"fmt"
	"strings"
)

// LayerParams holds one dense layer's parameters.
//
// Weights are stored row-major: the weight from input unit n to output unit k
// is at Weights[k*InputSize+n].
type LayerParams struct {
	InputSize  int
	OutputSize int
	Activation Activation
	Weights    []float64 // OutputSize*InputSize values
	Biases     []float64 // OutputSize values
}

// NetworkParams is the engine-independent parameter snapshot of a whole
// network: its dense layers in evaluation order.
type NetworkParams struct {
	Layers []LayerParams
}

// Validate checks the shape invariants of a single layer.
func (lp *LayerParams) Validate() error {
	if lp.InputSize <= 0 || lp.OutputSize <= 0 {
		return fmt.Errorf("%w: sizes must be positive (input %d, output %d)", ErrInvalidTopology, lp.InputSize, lp.OutputSize)
	}
	if len(lp.Weights) != lp.OutputSize*lp.InputSize {
		return fmt.Errorf("%w: expected %d weights, got %d", ErrInvalidTopology, lp.OutputSize*lp.InputSize, len(lp.Weights))
	}
	if len(lp.Biases) != lp.OutputSize {
		return fmt.Errorf("%w: expected %d biases, got %d", ErrInvalidTopology, lp.OutputSize, len(lp.Biases))
	}
	if !lp.Activation.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedActivation, lp.Activation)
	}
	return nil
}

// Weight returns the weight from input unit n to output unit k.
func (lp *LayerParams) Weight(k, n int) float64 {
	return lp.Weights[k*lp.InputSize+n]
}

// SetWeight sets the weight from input unit n to output unit k.
func (lp *LayerParams) SetWeight(k, n int, val float64) {
	lp.Weights[k*lp.InputSize+n] = val
}

// ParamCount returns the number of scalar parameters (weights plus biases).
func (lp *LayerParams) ParamCount() int {
	return len(lp.Weights) + len(lp.Biases)
}

// sameShape reports whether two layers have identical sizes, activation and
// buffer lengths.
func (lp *LayerParams) sameShape(other *LayerParams) bool {
	return lp.InputSize == other.InputSize &&
		lp.OutputSize == other.OutputSize &&
		lp.Activation == other.Activation &&
		len(lp.Weights) == len(other.Weights) &&
		len(lp.Biases) == len(other.Biases)
}

// Validate checks every layer's shape and the chain consistency between
// adjacent layers. A snapshot without layers is invalid.
func (np *NetworkParams) Validate() error {
	if np == nil || len(np.Layers) == 0 {
		return fmt.Errorf("%w: network has no layers", ErrInvalidTopology)
	}
	for i := range np.Layers {
		if err := np.Layers[i].Validate(); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		if i > 0 && np.Layers[i-1].OutputSize != np.Layers[i].InputSize {
			return fmt.Errorf("layer %d: %w: input size %d does not match previous output size %d",
				i, ErrInvalidTopology, np.Layers[i].InputSize, np.Layers[i-1].OutputSize)
		}
	}
	return nil
}

// SameTopology reports whether np and other have the same number of layers
// and, layer by layer, the same sizes and activations.
func (np *NetworkParams) SameTopology(other *NetworkParams) bool {
	if np == nil || other == nil {
		return np == other
	}
	if len(np.Layers) != len(other.Layers) {
		return false
	}
	for i := range np.Layers {
		if !np.Layers[i].sameShape(&other.Layers[i]) {
			return false
		}
	}
	return true
}

// InputSize returns the first layer's input size, or 0 if there are no layers.
func (np *NetworkParams) InputSize() int {
	if np == nil || len(np.Layers) == 0 {
		return 0
	}
	return np.Layers[0].InputSize
}

// OutputSize returns the last layer's output size, or 0 if there are no layers.
func (np *NetworkParams) OutputSize() int {
	if np == nil || len(np.Layers) == 0 {
		return 0
	}
	return np.Layers[len(np.Layers)-1].OutputSize
}

// ParamCount returns the total number of scalar parameters in the network.
func (np *NetworkParams) ParamCount() int {
	if np == nil {
		return 0
	}
	total := 0
	for i := range np.Layers {
		total += np.Layers[i].ParamCount()
	}
	return total
}

// String returns a compact description of the topology, e.g. "2-4(relu)-1(sigmoid)".
func (np *NetworkParams) String() string {
	if np == nil || len(np.Layers) == 0 {
		return "NetworkParams(empty)"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", np.Layers[0].InputSize)
	for _, l := range np.Layers {
		fmt.Fprintf(&sb, "-%d(%s)", l.OutputSize, l.Activation)
	}
	return sb.String()
}
