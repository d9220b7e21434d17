package nn

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultInitRange bounds the uniform distribution used for initial weights.
const DefaultInitRange = 0.5

// Neuron holds the incoming weights of a single unit.
// The final element of Weights is the bias.
type Neuron struct {
	Weights []float64
}

// Bias returns the bias term of the neuron.
func (n *Neuron) Bias() float64 {
	return n.Weights[len(n.Weights)-1]
}

// InputSize is the number of inputs the neuron expects.
func (n *Neuron) InputSize() int {
	return len(n.Weights) - 1
}

func (n *Neuron) activate(inputs []float64, act ActivationType) float64 {
	s := n.Weights[len(n.Weights)-1]
	for i, x := range inputs {
		s += n.Weights[i] * x
	}
	return act(s)
}

// Layer is an ordered set of neurons sharing one input size.
type Layer struct {
	InputSize int
	Neurons   []Neuron
}

// Forward evaluates every neuron of the layer on inputs.
func (l *Layer) Forward(inputs []float64, act ActivationType) ([]float64, error) {
	if len(inputs) != l.InputSize {
		return nil, fmt.Errorf("%w: layer expects %d inputs, got %d", ErrInputSize, l.InputSize, len(inputs))
	}
	outputs := make([]float64, len(l.Neurons))
	for i := range l.Neurons {
		outputs[i] = l.Neurons[i].activate(inputs, act)
	}
	return outputs, nil
}

// Options tunes network construction. The zero value selects tanh and DefaultInitRange.
type Options struct {
	Activation string
	InitRange  float64
}

func (o Options) withDefaults() Options {
	if o.Activation == "" {
		o.Activation = DefaultActivation
	}
	if o.InitRange == 0 {
		o.InitRange = DefaultInitRange
	}
	return o
}

// Network is a fully connected feedforward network with a fixed architecture.
// The architecture [inputSize, h1, ..., outputSize] never changes after construction;
// only the weight values do.
type Network struct {
	Layers []Layer

	architecture []int
	activation   string
	act          ActivationType
}

// New builds a tanh network with weights drawn uniformly from
// [-DefaultInitRange, DefaultInitRange) using rng.
func New(rng *rand.Rand, architecture []int) (*Network, error) {
	return NewWithOptions(rng, architecture, Options{})
}

// NewWithOptions builds a network and initializes every weight and bias from rng.
// Weights are drawn layer by layer, neuron by neuron, so the same stream always
// produces the same network.
func NewWithOptions(rng *rand.Rand, architecture []int, opts Options) (*Network, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	opts = opts.withDefaults()
	if math.IsNaN(opts.InitRange) || math.IsInf(opts.InitRange, 0) || opts.InitRange < 0 {
		return nil, fmt.Errorf("%w: init range %v", ErrInvalidOptions, opts.InitRange)
	}
	net, err := newZero(architecture, opts.Activation)
	if err != nil {
		return nil, err
	}
	for l := range net.Layers {
		for n := range net.Layers[l].Neurons {
			w := net.Layers[l].Neurons[n].Weights
			for k := range w {
				w[k] = initUniformWeight(rng, opts.InitRange)
			}
		}
	}
	return net, nil
}

// newZero allocates a network of the given shape with all weights set to zero.
func newZero(architecture []int, activation string) (*Network, error) {
	if err := ValidateArchitecture(architecture); err != nil {
		return nil, err
	}
	act, err := GetActivation(activation)
	if err != nil {
		return nil, err
	}

	arch := make([]int, len(architecture))
	copy(arch, architecture)

	layers := make([]Layer, len(arch)-1)
	for l := range layers {
		inSize := arch[l]
		outSize := arch[l+1]
		neurons := make([]Neuron, outSize)
		for n := range neurons {
			neurons[n].Weights = make([]float64, inSize+1) // +1 for bias
		}
		layers[l] = Layer{InputSize: inSize, Neurons: neurons}
	}

	return &Network{
		Layers:       layers,
		architecture: arch,
		activation:   activation,
		act:          act,
	}, nil
}

// Architecture returns a copy of the layer sizes, input size first.
func (net *Network) Architecture() []int {
	arch := make([]int, len(net.architecture))
	copy(arch, net.architecture)
	return arch
}

// InputSize is the length of the vector Forward expects.
func (net *Network) InputSize() int {
	return net.architecture[0]
}

// Activation returns the name of the activation function.
func (net *Network) Activation() string {
	return net.activation
}

// Activate runs a forward pass and returns the whole output vector.
func (net *Network) Activate(input []float64) ([]float64, error) {
	if len(input) != net.InputSize() {
		return nil, fmt.Errorf("%w: network expects %d inputs, got %d", ErrInputSize, net.InputSize(), len(input))
	}
	x := input
	for l := range net.Layers {
		out, err := net.Layers[l].Forward(x, net.act)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", l, err)
		}
		x = out
	}
	return x, nil
}

// Forward runs a forward pass and returns the first output value.
// It has no side effects; identical weights and input give identical results.
func (net *Network) Forward(input []float64) (float64, error) {
	out, err := net.Activate(input)
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, ErrEmptyOutput
	}
	return out[0], nil
}

// Decide reports whether the first output is positive.
func (net *Network) Decide(input []float64) (bool, error) {
	out, err := net.Forward(input)
	if err != nil {
		return false, err
	}
	return out > 0, nil
}

// Mutate perturbs weights in place. Each weight, biases included, is independently
// flagged with probability prob and receives N(0, sigma) noise.
// It returns the number of flagged weights. Invalid parameters leave the network untouched.
func (net *Network) Mutate(rng *rand.Rand, sigma, prob float64) (int, error) {
	if rng == nil {
		return 0, ErrNilRand
	}
	if err := ValidateMutation(sigma, prob); err != nil {
		return 0, err
	}
	mutated := 0
	for l := range net.Layers {
		for n := range net.Layers[l].Neurons {
			w := net.Layers[l].Neurons[n].Weights
			for k := range w {
				var flagged bool
				w[k], flagged = mutateWeight(rng, w[k], sigma, prob)
				if flagged {
					mutated++
				}
			}
		}
	}
	return mutated, nil
}

// SameShape reports whether other has the same architecture and activation.
func (net *Network) SameShape(other *Network) bool {
	if other == nil || net.activation != other.activation {
		return false
	}
	if len(net.Layers) != len(other.Layers) {
		return false
	}
	for l := range net.Layers {
		if len(net.Layers[l].Neurons) != len(other.Layers[l].Neurons) {
			return false
		}
		for n := range net.Layers[l].Neurons {
			if len(net.Layers[l].Neurons[n].Weights) != len(other.Layers[l].Neurons[n].Weights) {
				return false
			}
		}
	}
	return true
}

// CopyWeightsFrom overwrites every weight and bias with the values of other.
// Storage is copied, never shared. Nothing is written when the shapes differ.
func (net *Network) CopyWeightsFrom(other *Network) error {
	if !net.SameShape(other) {
		return fmt.Errorf("%w: cannot copy %v/%s into %v/%s", ErrShapeMismatch,
			shapeOf(other), activationOf(other), net.architecture, net.activation)
	}
	for l := range net.Layers {
		for n := range net.Layers[l].Neurons {
			copy(net.Layers[l].Neurons[n].Weights, other.Layers[l].Neurons[n].Weights)
		}
	}
	return nil
}

// Clone returns a deep copy of the network.
func (net *Network) Clone() *Network {
	c, err := newZero(net.architecture, net.activation)
	if err != nil {
		// net was built through the same validation, so its shape is always valid.
		panic(fmt.Sprintf("nn: clone of invalid network: %v", err))
	}
	for l := range c.Layers {
		for n := range c.Layers[l].Neurons {
			copy(c.Layers[l].Neurons[n].Weights, net.Layers[l].Neurons[n].Weights)
		}
	}
	return c
}

// NumWeights counts all weights and biases.
func (net *Network) NumWeights() int {
	total := 0
	for l := range net.Layers {
		for n := range net.Layers[l].Neurons {
			total += len(net.Layers[l].Neurons[n].Weights)
		}
	}
	return total
}

// Weights returns a flattened copy of all weights in layer, neuron, weight order.
func (net *Network) Weights() []float64 {
	flat := make([]float64, 0, net.NumWeights())
	for l := range net.Layers {
		for n := range net.Layers[l].Neurons {
			flat = append(flat, net.Layers[l].Neurons[n].Weights...)
		}
	}
	return flat
}

// Validate checks the shape invariant: every neuron of layer i carries
// architecture[i]+1 weights and layer i has architecture[i+1] neurons.
func (net *Network) Validate() error {
	if len(net.Layers) != len(net.architecture)-1 {
		return fmt.Errorf("%w: %d layers for architecture %v", ErrShapeMismatch, len(net.Layers), net.architecture)
	}
	for l := range net.Layers {
		layer := &net.Layers[l]
		if layer.InputSize != net.architecture[l] {
			return fmt.Errorf("%w: layer %d input size %d, want %d", ErrShapeMismatch, l, layer.InputSize, net.architecture[l])
		}
		if len(layer.Neurons) != net.architecture[l+1] {
			return fmt.Errorf("%w: layer %d has %d neurons, want %d", ErrShapeMismatch, l, len(layer.Neurons), net.architecture[l+1])
		}
		for n := range layer.Neurons {
			if got := len(layer.Neurons[n].Weights); got != layer.InputSize+1 {
				return fmt.Errorf("%w: layer %d neuron %d has %d weights, want %d", ErrShapeMismatch, l, n, got, layer.InputSize+1)
			}
		}
	}
	return nil
}

func shapeOf(net *Network) []int {
	if net == nil {
		return nil
	}
	return net.architecture
}

func activationOf(net *Network) string {
	if net == nil {
		return "<nil>"
	}
	return net.activation
}
