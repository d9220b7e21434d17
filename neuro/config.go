package neuro

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/baldhumanity/neuroray/neuro/nn"
)

// Config stores the configuration parameters for a training run.
type Config struct {
	Evolution EvolutionConfig
	Network   NetworkConfig
}

// EvolutionConfig holds the population and reproduction parameters.
type EvolutionConfig struct {
	PopSize       int     `ini:"pop_size"`
	EliteCount    int     `ini:"elite_count"`
	MutationProb  float64 `ini:"mutation_prob"`  // per-weight chance of perturbation
	MutationSigma float64 `ini:"mutation_sigma"` // stdev of the Gaussian perturbation
	// Seed is for the application to build its random source from. The engine never reads it.
	Seed                 int64   `ini:"seed"`
	FitnessThreshold     float64 `ini:"fitness_threshold"`
	NoFitnessTermination bool    `ini:"no_fitness_termination"`
	MaxStagnation        int     `ini:"max_stagnation"` // 0 disables stagnation handling
	ResetOnStagnation    bool    `ini:"reset_on_stagnation"`
}

// NetworkConfig describes the architecture every agent of a population shares.
type NetworkConfig struct {
	NumInputs       int     `ini:"num_inputs"`
	HiddenLayers    []int   `ini:"hidden_layers" delim:" "` // space-separated sizes
	Activation      string  `ini:"activation"`
	WeightInitRange float64 `ini:"weight_init_range"`
}

// Architecture returns [NumInputs, HiddenLayers..., 1].
func (nc NetworkConfig) Architecture() []int {
	arch := make([]int, 0, len(nc.HiddenLayers)+2)
	arch = append(arch, nc.NumInputs)
	arch = append(arch, nc.HiddenLayers...)
	return append(arch, 1)
}

// Params returns the reproduction settings Evolve takes.
func (ec EvolutionConfig) Params() EvolveParams {
	return EvolveParams{
		EliteCount:    ec.EliteCount,
		MutationSigma: ec.MutationSigma,
		MutationProb:  ec.MutationProb,
	}
}

// DefaultConfig returns the settings used for the cave runner.
func DefaultConfig() *Config {
	return &Config{
		Evolution: EvolutionConfig{
			PopSize:              50,
			EliteCount:           5,
			MutationProb:         0.1,
			MutationSigma:        0.2,
			Seed:                 42,
			NoFitnessTermination: true,
		},
		Network: NetworkConfig{
			NumInputs:       9,
			HiddenLayers:    []int{16, 8},
			Activation:      nn.DefaultActivation,
			WeightInitRange: nn.DefaultInitRange,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
// Keys missing from the file keep their DefaultConfig values.
func LoadConfig(filePath string) (*Config, error) {
	config, err := ParseConfig(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return config, nil
}

// ParseConfig reads configuration from any source ini.Load accepts:
// a file name, []byte or io.Reader.
func ParseConfig(source interface{}) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, source)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if cfg.HasSection("Network") && cfg.Section("Network").HasKey("hidden_layers") {
		// An explicit empty value means no hidden layers.
		config.Network.HiddenLayers = nil
	}

	if err := cfg.Section("Evolution").StrictMapTo(&config.Evolution); err != nil {
		return nil, fmt.Errorf("failed to map [Evolution] section: %w", err)
	}
	if err := cfg.Section("Network").StrictMapTo(&config.Network); err != nil {
		return nil, fmt.Errorf("failed to map [Network] section: %w", err)
	}
	config.Network.Activation = strings.ToLower(cleanIniString(config.Network.Activation))

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the engine cannot run with. Nothing is clamped.
func (c *Config) Validate() error {
	ev := c.Evolution
	if ev.PopSize < 1 {
		return fmt.Errorf("%w: pop_size must be positive", ErrInvalidConfig)
	}
	if ev.EliteCount < 1 || ev.EliteCount > ev.PopSize {
		return fmt.Errorf("%w: elite_count must be between 1 and pop_size (%d)", ErrInvalidConfig, ev.PopSize)
	}
	if err := nn.ValidateMutation(ev.MutationSigma, ev.MutationProb); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if math.IsNaN(ev.FitnessThreshold) {
		return fmt.Errorf("%w: fitness_threshold must be a number", ErrInvalidConfig)
	}
	if ev.MaxStagnation < 0 {
		return fmt.Errorf("%w: max_stagnation cannot be negative", ErrInvalidConfig)
	}

	net := c.Network
	if net.NumInputs < 1 {
		return fmt.Errorf("%w: num_inputs must be positive", ErrInvalidConfig)
	}
	for i, h := range net.HiddenLayers {
		if h < 1 {
			return fmt.Errorf("%w: hidden layer %d has size %d", ErrInvalidConfig, i, h)
		}
	}
	if _, err := nn.GetActivation(net.Activation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if math.IsNaN(net.WeightInitRange) || math.IsInf(net.WeightInitRange, 0) || net.WeightInitRange <= 0 {
		return fmt.Errorf("%w: weight_init_range must be finite and positive", ErrInvalidConfig)
	}
	return nil
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
