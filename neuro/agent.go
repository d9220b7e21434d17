package neuro

import (
	"fmt"
	"math/rand"

	"github.com/baldhumanity/neuroray/neuro/nn"
)

// Agent pairs a network with the fitness of its latest episode.
type Agent struct {
	Network *nn.Network
	Fitness float64
}

// NewAgent builds an agent whose network has the architecture
// [inputCount, cfg.HiddenLayers..., 1] and random initial weights drawn from rng.
func NewAgent(rng *rand.Rand, inputCount int, cfg NetworkConfig) (*Agent, error) {
	cfg.NumInputs = inputCount
	net, err := nn.NewWithOptions(rng, cfg.Architecture(), nn.Options{
		Activation: cfg.Activation,
		InitRange:  cfg.WeightInitRange,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build agent network: %w", err)
	}
	return &Agent{Network: net}, nil
}

// Clone returns a new agent with a deep copy of the network and zero fitness.
// No randomness is consumed.
func (a *Agent) Clone() *Agent {
	return &Agent{Network: a.Network.Clone()}
}

// Forward delegates to the agent's network.
func (a *Agent) Forward(input []float64) (float64, error) {
	return a.Network.Forward(input)
}

// Decide delegates to the agent's network.
func (a *Agent) Decide(input []float64) (bool, error) {
	return a.Network.Decide(input)
}
