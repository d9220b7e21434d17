package neuro

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/baldhumanity/neuroray/neuro/nn"
)

// EvolveParams are the per-generation reproduction settings.
type EvolveParams struct {
	EliteCount    int
	MutationSigma float64
	MutationProb  float64
}

// TrainingState carries the counters that survive from one generation to the next.
type TrainingState struct {
	Generation int
	// BestFitness is the best fitness seen so far. It never decreases.
	BestFitness float64
	// LastImproved is the Generation value right after the Evolve call that
	// last raised BestFitness.
	LastImproved int
	// Champion is a copy of the agent that set BestFitness, with its fitness kept.
	Champion *Agent
}

// NewTrainingState returns a state at generation 0 with no best fitness yet.
func NewTrainingState() *TrainingState {
	return &TrainingState{BestFitness: math.Inf(-1)}
}

// Evolve produces the next generation from an evaluated population.
//
// The population is ranked once by fitness, best first. The top EliteCount agents
// are copied unchanged into the next generation. The remaining slots are filled
// with mutated copies of parents chosen by roulette selection over the top half of
// the ranking, or uniformly among the elites when that half has no positive fitness.
// Every agent of the returned generation has fitness 0.
//
// The input slice is never reordered or modified. On error the population and
// state are left as they were.
func Evolve(rng *rand.Rand, population []*Agent, params EvolveParams, state *TrainingState) ([]*Agent, GenerationStats, error) {
	if err := validateEvolve(rng, population, params, state); err != nil {
		return nil, GenerationStats{}, err
	}
	start := time.Now()

	// Rank once; elitism, the breeding pool and the fallback all read this view.
	ranked := make([]*Agent, len(population))
	copy(ranked, population)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness > ranked[j].Fitness
	})

	improved := ranked[0].Fitness > state.BestFitness
	if improved {
		state.BestFitness = ranked[0].Fitness
		champion := ranked[0].Clone()
		champion.Fitness = ranked[0].Fitness
		state.Champion = champion
	}

	stats := GenerationStats{
		Generation: state.Generation,
		BestEver:   state.BestFitness,
		Offspring:  make(map[int]int),
	}
	stats.Best, stats.Mean, stats.Worst, stats.Stdev = fitnessStats(fitnessesOf(ranked))

	next := make([]*Agent, 0, len(ranked))
	for i := 0; i < params.EliteCount; i++ {
		next = append(next, ranked[i].Clone())
	}

	pool := newBreedingPool(ranked, params.EliteCount)
	stats.Fallback = pool.fallback()
	for len(next) < len(ranked) {
		parentIdx := pool.pickParent(rng)
		child := ranked[parentIdx].Clone()
		if _, err := child.Network.Mutate(rng, params.MutationSigma, params.MutationProb); err != nil {
			// Parameters were validated above.
			return nil, GenerationStats{}, fmt.Errorf("failed to mutate offspring: %w", err)
		}
		next = append(next, child)
		stats.Offspring[parentIdx]++
	}

	state.Generation++
	if improved {
		state.LastImproved = state.Generation
	}
	stats.Elapsed = time.Since(start)
	return next, stats, nil
}

func validateEvolve(rng *rand.Rand, population []*Agent, params EvolveParams, state *TrainingState) error {
	if rng == nil {
		return nn.ErrNilRand
	}
	if state == nil {
		return ErrNilState
	}
	if len(population) == 0 {
		return ErrEmptyPopulation
	}
	if params.EliteCount < 1 || params.EliteCount > len(population) {
		return fmt.Errorf("%w: %d not within [1, %d]", ErrInvalidEliteCount, params.EliteCount, len(population))
	}
	if err := nn.ValidateMutation(params.MutationSigma, params.MutationProb); err != nil {
		return err
	}

	first := population[0]
	for i, a := range population {
		if a == nil || a.Network == nil {
			return fmt.Errorf("%w: agent %d has no network", ErrArchitectureMismatch, i)
		}
		if math.IsNaN(a.Fitness) || math.IsInf(a.Fitness, 0) {
			return fmt.Errorf("%w: agent %d has fitness %v", ErrInvalidFitness, i, a.Fitness)
		}
		if !a.Network.SameShape(first.Network) {
			return fmt.Errorf("%w: agent %d has %v, agent 0 has %v", ErrArchitectureMismatch,
				i, a.Network.Architecture(), first.Network.Architecture())
		}
	}
	return nil
}
