package ccp

import (
	"fmt"

	"github.com/gitrdm/ccpsat/internal/satsolver"
)

// Options configures a solve. The zero value uses sensible defaults: the
// Gini-backed SAT solver, timeline-compactness canonicalization enabled,
// and a no-op logger.
type Options struct {
	// NewSolver builds a fresh SAT backend for one GenSolution call.
	// Defaults to satsolver.NewGini. A solver Adapter accumulates state
	// across AddClause/Solve, so an Options value shared across multiple
	// GenSolution calls (as FindDuration's [L,U] scan does) must mint a new
	// Adapter per call rather than hand back one stateful instance —
	// otherwise each successive T's clauses pile onto the previous T's
	// under a Registry that has also restarted its ids from 1, conflating
	// unrelated variable ids and clause sets. To pick the DPLL backend, set
	// NewSolver: func() satsolver.Adapter { return satsolver.NewDPLL() }.
	NewSolver func() satsolver.Adapter

	// Canonicalize enables the timeline compactness clauses (spec.md
	// invariant 13). They prune the search space but are not required for
	// soundness; spec.md §9 asks that tests pass with or without them.
	// Defaults to true.
	Canonicalize *bool

	// Log receives builder/driver progress. Defaults to NopLogger.
	Log Logger
}

func (o Options) newSolver() satsolver.Adapter {
	if o.NewSolver != nil {
		return o.NewSolver()
	}
	return satsolver.NewGini()
}

func (o Options) canonicalize() bool {
	if o.Canonicalize != nil {
		return *o.Canonicalize
	}
	return true
}

func (o Options) logger() Logger {
	if o.Log != nil {
		return o.Log
	}
	return NopLogger{}
}

// GenSolution decides whether all chickens can be ferried from bank A to
// bank B within T time units, and if so returns a concrete schedule.
//
// durations must be positive integers, one per chicken (1-based index in
// the returned schedule). c is the boat capacity. T is the time budget.
//
// On n=0 (no chickens) it returns an empty schedule. On c≤0 or T<0, or if
// T is smaller than the slowest single crossing, it returns ErrNoSolution
// without invoking the solver (spec.md §4.2 early-exit preconditions).
func GenSolution(durations []int, c, T int, opts ...Options) (Schedule, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	if len(durations) == 0 {
		return Schedule{}, nil
	}
	if c <= 0 || T < 0 {
		return nil, ErrNoSolution
	}
	if maxInt(durations) > T {
		return nil, ErrNoSolution
	}

	b := NewBuilder(durations, c, T, o.logger())
	b.Build(o.canonicalize())

	solver := o.newSolver()
	solver.NumVars(b.NumVars())
	for _, cl := range b.Clauses() {
		solver.AddClause(cl)
	}

	model, sat, err := solver.Solve()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolverFailed, err)
	}
	if !sat {
		return nil, ErrNoSolution
	}

	return Decode(b.Registry(), model, len(durations), T), nil
}
