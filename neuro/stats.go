package neuro

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarises the fitness of a generation that just finished.
// It is diagnostic only and has no effect on selection.
type GenerationStats struct {
	Generation int
	Best       float64
	Mean       float64
	Worst      float64
	Stdev      float64
	BestEver   float64
	// Offspring counts the children produced per ranked parent index.
	Offspring map[int]int
	// Fallback is true when the breeding pool had no positive fitness and
	// parents were drawn from the elites instead.
	Fallback bool
	Elapsed  time.Duration
}

func (s GenerationStats) String() string {
	return fmt.Sprintf("Gen %d: Best=%.1f, Avg=%.1f, Worst=%.1f", s.Generation, s.Best, s.Mean, s.Worst)
}

// fitnessStats computes best, mean, worst and the sample standard deviation.
// fitnesses must not be empty.
func fitnessStats(fitnesses []float64) (best, mean, worst, stdev float64) {
	best = floats.Max(fitnesses)
	worst = floats.Min(fitnesses)
	mean = stat.Mean(fitnesses, nil)
	if len(fitnesses) > 1 {
		stdev = stat.StdDev(fitnesses, nil)
	}
	return best, mean, worst, stdev
}

func fitnessesOf(agents []*Agent) []float64 {
	out := make([]float64, len(agents))
	for i, a := range agents {
		out[i] = a.Fitness
	}
	return out
}
