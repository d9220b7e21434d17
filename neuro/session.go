package neuro

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/baldhumanity/neuroray/neuro/nn"
)

// FitnessFunc is the type for the function provided by the user to evaluate agents.
// It runs one episode per agent and should set each agent's Fitness field.
type FitnessFunc func(agents []*Agent) error

// Session holds the state of one training run.
type Session struct {
	Config     *Config
	RunID      uuid.UUID
	Agents     []*Agent // current generation, always Config.Evolution.PopSize long
	State      *TrainingState
	Stagnation *Stagnation
	Reporters  ReporterSet

	rng *rand.Rand
}

// NewSession creates the first generation of random agents from rng.
// The caller owns rng and decides how it is seeded.
func NewSession(config *Config, rng *rand.Rand) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("failed to create session: %w", nn.ErrNilRand)
	}

	s := &Session{
		Config:     config,
		RunID:      uuid.New(),
		State:      NewTrainingState(),
		Stagnation: NewStagnation(&config.Evolution),
		rng:        rng,
	}
	agents, err := s.newPopulation()
	if err != nil {
		return nil, err
	}
	s.Agents = agents
	return s, nil
}

func (s *Session) newPopulation() ([]*Agent, error) {
	agents := make([]*Agent, s.Config.Evolution.PopSize)
	for i := range agents {
		a, err := NewAgent(s.rng, s.Config.Network.NumInputs, s.Config.Network)
		if err != nil {
			return nil, fmt.Errorf("failed to create agent %d: %w", i, err)
		}
		agents[i] = a
	}
	return agents, nil
}

// AddReporter registers a reporter for progress events.
func (s *Session) AddReporter(r Reporter) {
	s.Reporters.Add(r)
}

// Evolve replaces the current generation with the next one. The current
// generation is kept when evolution fails.
func (s *Session) Evolve() (GenerationStats, error) {
	best := s.State.BestFitness
	next, stats, err := Evolve(s.rng, s.Agents, s.Config.Evolution.Params(), s.State)
	if err != nil {
		return GenerationStats{}, fmt.Errorf("evolution failed in generation %d: %w", s.State.Generation, err)
	}
	s.Agents = next
	if s.State.BestFitness > best {
		s.Reporters.NewBest(stats.Generation, s.State.BestFitness)
	}
	return stats, nil
}

// RunGeneration evaluates the current generation and breeds the next one.
// It returns the champion once the fitness threshold is met, otherwise nil.
func (s *Session) RunGeneration(fitnessFunc FitnessFunc) (*Agent, error) {
	generation := s.State.Generation
	s.Reporters.StartGeneration(generation)

	for _, a := range s.Agents {
		a.Fitness = 0
	}
	if err := fitnessFunc(s.Agents); err != nil {
		return nil, fmt.Errorf("fitness evaluation failed in generation %d: %w", generation, err)
	}

	stats, err := s.Evolve()
	if err != nil {
		return nil, err
	}
	s.Reporters.EndGeneration(stats)

	ev := s.Config.Evolution
	if !ev.NoFitnessTermination && s.State.BestFitness >= ev.FitnessThreshold {
		return s.State.Champion, nil
	}

	if s.Stagnation.IsStagnant(s.State) {
		since := s.Stagnation.SinceImproved(s.State)
		s.Reporters.Stagnated(s.State.Generation, since, s.Stagnation.Reset)
		if !s.Stagnation.Reset {
			return nil, fmt.Errorf("%w: no improvement for %d generations", ErrStagnated, since)
		}
		agents, err := s.newPopulation()
		if err != nil {
			return nil, err
		}
		s.Agents = agents
		s.State.LastImproved = s.State.Generation
	}
	return nil, nil
}
