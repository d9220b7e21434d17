package neuro

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/neuroray/neuro/nn"
)

const testConfig = `
[Evolution]
pop_size = 20
elite_count = 2
mutation_prob = 0.25
mutation_sigma = 0.3
seed = 7
fitness_threshold = 500
no_fitness_termination = false
max_stagnation = 15
reset_on_stagnation = true

[Network]
num_inputs = 5
hidden_layers = 6 4
activation = Sigmoid # inline comment
weight_init_range = 1.0
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(testConfig))
	require.NoError(t, err)

	assert.Equal(t, EvolutionConfig{
		PopSize:              20,
		EliteCount:           2,
		MutationProb:         0.25,
		MutationSigma:        0.3,
		Seed:                 7,
		FitnessThreshold:     500,
		NoFitnessTermination: false,
		MaxStagnation:        15,
		ResetOnStagnation:    true,
	}, cfg.Evolution)
	assert.Equal(t, 5, cfg.Network.NumInputs)
	assert.Equal(t, []int{6, 4}, cfg.Network.HiddenLayers)
	assert.Equal(t, "sigmoid", cfg.Network.Activation)
	assert.Equal(t, 1.0, cfg.Network.WeightInitRange)
	assert.Equal(t, []int{5, 6, 4, 1}, cfg.Network.Architecture())
	assert.Equal(t, EvolveParams{EliteCount: 2, MutationSigma: 0.3, MutationProb: 0.25}, cfg.Evolution.Params())
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("[Evolution]\npop_size = 12\n"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, 12, cfg.Evolution.PopSize)
	assert.Equal(t, def.Evolution.EliteCount, cfg.Evolution.EliteCount)
	assert.Equal(t, def.Network, cfg.Network)
	assert.Equal(t, []int{9, 16, 8, 1}, cfg.Network.Architecture())
}

func TestParseConfigEmptyHiddenLayers(t *testing.T) {
	cfg, err := ParseConfig([]byte("[Network]\nhidden_layers =\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Network.HiddenLayers)
	assert.Equal(t, []int{9, 1}, cfg.Network.Architecture())
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"pop size":       "[Evolution]\npop_size = 0\n",
		"zero elites":    "[Evolution]\nelite_count = 0\n",
		"too many elite": "[Evolution]\npop_size = 4\nelite_count = 5\n",
		"prob high":      "[Evolution]\nmutation_prob = 1.5\n",
		"sigma negative": "[Evolution]\nmutation_sigma = -1\n",
		"stagnation":     "[Evolution]\nmax_stagnation = -2\n",
		"inputs":         "[Network]\nnum_inputs = 0\n",
		"hidden":         "[Network]\nhidden_layers = 4 0\n",
		"activation":     "[Network]\nactivation = softmax\n",
		"init range":     "[Network]\nweight_init_range = 0\n",
	}
	for name, src := range cases {
		_, err := ParseConfig([]byte(src))
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}

	_, err := ParseConfig([]byte("[Evolution]\npop_size = many\n"))
	assert.Error(t, err)
}

func TestValidateWrapsMutationError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Evolution.MutationProb = -0.5
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, nn.ErrInvalidMutation)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cave-config")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Evolution.PopSize)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
