package neuro

// Stagnation decides when a run has stopped improving.
type Stagnation struct {
	MaxStagnation int
	Reset         bool
}

// NewStagnation creates a stagnation manager from the evolution config.
func NewStagnation(config *EvolutionConfig) *Stagnation {
	return &Stagnation{
		MaxStagnation: config.MaxStagnation,
		Reset:         config.ResetOnStagnation,
	}
}

// SinceImproved returns how many generations have passed since the best fitness last rose.
func (s *Stagnation) SinceImproved(state *TrainingState) int {
	return state.Generation - state.LastImproved
}

// IsStagnant reports whether the run hit the stagnation limit. A zero limit disables the check.
func (s *Stagnation) IsStagnant(state *TrainingState) bool {
	if s.MaxStagnation <= 0 {
		return false
	}
	return s.SinceImproved(state) >= s.MaxStagnation
}
