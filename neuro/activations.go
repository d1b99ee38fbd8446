package neuro

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Activation identifies the nonlinearity applied after a layer's affine
// transform. The set is closed; values outside it are rejected.
type Activation int

const (
	Sigmoid Activation = iota
	Tanh
	ReLU
	Softmax
)

// activationNames maps configuration names to activation tags.
var activationNames = map[string]Activation{
	"sigmoid": Sigmoid,
	"tanh":    Tanh,
	"relu":    ReLU,
	"softmax": Softmax,
}

// ParseActivation looks up an activation by name (case-insensitive).
func ParseActivation(name string) (Activation, error) {
	if act, ok := activationNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return act, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedActivation, name)
}

// Valid reports whether a is one of the known activations.
func (a Activation) Valid() bool {
	return a >= Sigmoid && a <= Softmax
}

// String returns the configuration name of the activation.
func (a Activation) String() string {
	switch a {
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	case Softmax:
		return "softmax"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// Activate applies act to the pre-activation vector z in place. Softmax is
// applied to the whole vector; the others are applied elementwise.
func Activate(act Activation, z []float64) error {
	switch act {
	case Sigmoid:
		for i, v := range z {
			z[i] = SigmoidFn(v)
		}
	case Tanh:
		for i, v := range z {
			z[i] = TanhFn(v)
		}
	case ReLU:
		for i, v := range z {
			z[i] = ReLUFn(v)
		}
	case Softmax:
		SoftmaxInPlace(z)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedActivation, act)
	}
	return nil
}

// --- Activation Function Implementations ---

// SigmoidFn computes 1 / (1 + exp(-x)).
func SigmoidFn(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// TanhFn computes (exp(2x) - 1) / (exp(2x) + 1).
// For large x exp(2x) overflows to +Inf and the ratio would be NaN; the limit
// 1 is returned instead.
func TanhFn(x float64) float64 {
	e := math.Exp(2 * x)
	if math.IsInf(e, 1) {
		return 1.0
	}
	return (e - 1.0) / (e + 1.0)
}

// ReLUFn computes max(0, x).
func ReLUFn(x float64) float64 {
	return math.Max(0, x)
}

// Softmax returns the softmax of v as a new slice. The maximum is subtracted
// before exponentiating, so the result is unchanged by adding a constant to
// every component. An empty input yields an empty output.
func Softmax(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	SoftmaxInPlace(out)
	return out
}

// SoftmaxInPlace overwrites v with its softmax.
func SoftmaxInPlace(v []float64) {
	if len(v) == 0 {
		return
	}
	maxVal := floats.Max(v)
	for i, x := range v {
		v[i] = math.Exp(x - maxVal)
	}
	// The max element contributes exp(0) = 1, so the sum is at least 1.
	floats.Scale(1/floats.Sum(v), v)
}
