package neuro

import (
	"math"
	"math/rand"
)

// breedingPool is the top half of a ranked population together with the total of
// its clamped fitness. Negative fitness counts as zero weight.
type breedingPool struct {
	ranked     []*Agent
	size       int
	fitnessSum float64
	eliteCount int
}

func newBreedingPool(ranked []*Agent, eliteCount int) breedingPool {
	size := len(ranked) / 2
	sum := 0.0
	for i := 0; i < size; i++ {
		sum += math.Max(0, ranked[i].Fitness)
	}
	return breedingPool{ranked: ranked, size: size, fitnessSum: sum, eliteCount: eliteCount}
}

// fallback reports whether the pool carries no fitness signal.
func (p breedingPool) fallback() bool {
	return !(p.fitnessSum > 0)
}

// pickParent returns the ranked index of the next parent.
// With positive pool fitness it spins a roulette wheel over the pool; otherwise
// it picks uniformly among the first eliteCount ranked agents.
func (p breedingPool) pickParent(rng *rand.Rand) int {
	if p.fallback() {
		return rng.Intn(p.eliteCount)
	}

	pick := rng.Float64() * p.fitnessSum
	cumulative := 0.0
	last := 0
	for i := 0; i < p.size; i++ {
		w := math.Max(0, p.ranked[i].Fitness)
		if w == 0 {
			continue
		}
		cumulative += w
		last = i
		if cumulative >= pick {
			return i
		}
	}
	// Rounding can leave cumulative a hair under pick; the last weighted member wins.
	return last
}
