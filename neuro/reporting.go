package neuro

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Reporter receives progress events from a Session.
type Reporter interface {
	StartGeneration(generation int)
	EndGeneration(stats GenerationStats)
	NewBest(generation int, fitness float64)
	Stagnated(generation, sinceImproved int, reset bool)
}

// ReporterSet fans events out to every registered reporter.
type ReporterSet struct {
	reporters []Reporter
}

// Add registers a reporter.
func (rs *ReporterSet) Add(r Reporter) {
	rs.reporters = append(rs.reporters, r)
}

// Len returns the number of registered reporters.
func (rs *ReporterSet) Len() int {
	return len(rs.reporters)
}

func (rs *ReporterSet) StartGeneration(generation int) {
	for _, r := range rs.reporters {
		r.StartGeneration(generation)
	}
}

func (rs *ReporterSet) EndGeneration(stats GenerationStats) {
	for _, r := range rs.reporters {
		r.EndGeneration(stats)
	}
}

func (rs *ReporterSet) NewBest(generation int, fitness float64) {
	for _, r := range rs.reporters {
		r.NewBest(generation, fitness)
	}
}

func (rs *ReporterSet) Stagnated(generation, sinceImproved int, reset bool) {
	for _, r := range rs.reporters {
		r.Stagnated(generation, sinceImproved, reset)
	}
}

// StdOutReporter prints one line per event.
type StdOutReporter struct {
	Out    io.Writer
	RunID  uuid.UUID
	Timing bool // append generation wall time to the summary line
}

// NewStdOutReporter returns a reporter writing to os.Stdout.
func NewStdOutReporter(runID uuid.UUID) *StdOutReporter {
	return &StdOutReporter{Out: os.Stdout, RunID: runID}
}

func (r *StdOutReporter) StartGeneration(generation int) {
	fmt.Fprintf(r.Out, "****** Run %s, generation %d ******\n", r.RunID, generation)
}

func (r *StdOutReporter) EndGeneration(stats GenerationStats) {
	line := stats.String()
	if stats.Fallback {
		line += " (no positive fitness, parents drawn from elites)"
	}
	if r.Timing {
		line += fmt.Sprintf(" in %s", stats.Elapsed)
	}
	fmt.Fprintln(r.Out, line)
}

func (r *StdOutReporter) NewBest(generation int, fitness float64) {
	fmt.Fprintf(r.Out, " New best fitness %.4f in generation %d\n", fitness, generation)
}

func (r *StdOutReporter) Stagnated(generation, sinceImproved int, reset bool) {
	if reset {
		fmt.Fprintf(r.Out, " No improvement for %d generations, resetting population at generation %d\n", sinceImproved, generation)
		return
	}
	fmt.Fprintf(r.Out, " No improvement for %d generations at generation %d\n", sinceImproved, generation)
}
