package neuro

import "errors"

// Error kinds reported by the core. They are always returned wrapped with
// context, so compare with errors.Is.
var (
	// ErrShapeMismatch is returned when an input vector has the wrong length
	// for a layer or network.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidTopology is returned when parameters are malformed or the
	// layers do not chain.
	ErrInvalidTopology = errors.New("invalid topology")
	// ErrTopologyMismatch is returned when crossover parents differ in shape
	// or activation.
	ErrTopologyMismatch = errors.New("topology mismatch")
	// ErrUnsupportedActivation is returned for an activation tag outside the
	// known set.
	ErrUnsupportedActivation = errors.New("unsupported activation")
	// ErrNotInitialized is returned when a network is used before any layer
	// has been built.
	ErrNotInitialized = errors.New("neural network not initialized")
)
