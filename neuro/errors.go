package neuro

import "errors"

var (
	ErrEmptyPopulation      = errors.New("population is empty")
	ErrInvalidEliteCount    = errors.New("invalid elite count")
	ErrArchitectureMismatch = errors.New("agents do not share an architecture")
	ErrInvalidFitness       = errors.New("fitness must be finite")
	ErrNilState             = errors.New("training state is required")
	ErrInvalidConfig        = errors.New("config error")
	// ErrStagnated is returned by Session.RunGeneration when the best fitness has not
	// improved for max_stagnation generations and reset_on_stagnation is off.
	ErrStagnated = errors.New("evolution stagnated")
)
