package nn

import "errors"

var (
	// ErrInvalidArchitecture is returned when an architecture has fewer than two
	// entries or a non-positive layer size.
	ErrInvalidArchitecture = errors.New("invalid architecture")
	// ErrInvalidOptions is returned for unusable construction options.
	ErrInvalidOptions = errors.New("invalid network options")
	// ErrUnknownActivation is returned when an activation name is not registered.
	ErrUnknownActivation = errors.New("unknown activation function")
	// ErrInputSize is returned when a forward pass input does not match the layer input size.
	ErrInputSize = errors.New("input size mismatch")
	// ErrEmptyOutput is returned when the final layer produced no values.
	ErrEmptyOutput = errors.New("network produced no output")
	// ErrShapeMismatch is returned when weights are copied between incompatible networks.
	ErrShapeMismatch = errors.New("network shape mismatch")
	// ErrInvalidMutation is returned for out-of-range or non-finite mutation parameters.
	ErrInvalidMutation = errors.New("invalid mutation parameters")
	// ErrNilRand is returned when an operation needing randomness gets no source.
	ErrNilRand = errors.New("random source is required")
)
