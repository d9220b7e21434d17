package neuro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitnessStats(t *testing.T) {
	best, mean, worst, stdev := fitnessStats([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 9.0, best)
	assert.Equal(t, 5.0, mean)
	assert.Equal(t, 2.0, worst)
	assert.InDelta(t, 2.13809, stdev, 1e-5)

	best, mean, worst, stdev = fitnessStats([]float64{-3})
	assert.Equal(t, -3.0, best)
	assert.Equal(t, -3.0, mean)
	assert.Equal(t, -3.0, worst)
	assert.Zero(t, stdev)
}

func TestBreedingPool(t *testing.T) {
	ranked := []*Agent{{Fitness: 5}, {Fitness: 3}, {Fitness: -1}, {Fitness: -4}, {Fitness: -9}}
	pool := newBreedingPool(ranked, 1)
	assert.Equal(t, 2, pool.size)
	assert.Equal(t, 8.0, pool.fitnessSum)
	assert.False(t, pool.fallback())

	ranked = []*Agent{{Fitness: 0}, {Fitness: -1}, {Fitness: -2}}
	pool = newBreedingPool(ranked, 2)
	assert.Equal(t, 1, pool.size)
	assert.Zero(t, pool.fitnessSum)
	assert.True(t, pool.fallback())
}
