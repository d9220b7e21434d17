package nn

import (
	"fmt"
	"math"
	"math/rand"
)

// initUniformWeight draws a value uniformly from [-initRange, initRange).
func initUniformWeight(rng *rand.Rand, initRange float64) float64 {
	return (rng.Float64()*2 - 1) * initRange
}

// mutateWeight perturbs value with N(0, sigma) noise with probability prob.
// The second return value reports whether the weight was flagged for mutation.
// The Gaussian is only drawn for flagged weights, so prob == 0 consumes one
// uniform draw per weight and nothing else.
func mutateWeight(rng *rand.Rand, value, sigma, prob float64) (float64, bool) {
	if rng.Float64() < prob {
		return value + rng.NormFloat64()*sigma, true
	}
	return value, false
}

// ValidateMutation checks the per-weight mutation parameters.
// prob must lie in [0, 1] and sigma must be finite and non-negative.
func ValidateMutation(sigma, prob float64) error {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return fmt.Errorf("%w: sigma %v must be finite and >= 0", ErrInvalidMutation, sigma)
	}
	if math.IsNaN(prob) || prob < 0 || prob > 1 {
		return fmt.Errorf("%w: probability %v must be within [0, 1]", ErrInvalidMutation, prob)
	}
	return nil
}

// ValidateArchitecture checks that an architecture describes at least an input
// and an output layer and that every layer has a positive size.
func ValidateArchitecture(architecture []int) error {
	if len(architecture) < 2 {
		return fmt.Errorf("%w: need at least 2 layer sizes, got %d", ErrInvalidArchitecture, len(architecture))
	}
	for i, size := range architecture {
		if size <= 0 {
			return fmt.Errorf("%w: layer %d has size %d", ErrInvalidArchitecture, i, size)
		}
	}
	return nil
}
