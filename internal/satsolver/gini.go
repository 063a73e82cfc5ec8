package satsolver

import (
	"fmt"

	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// Gini adapts github.com/irifrance/gini, a pure-Go CDCL SAT solver, to the
// Adapter interface. Clauses are handed to gini one literal at a time,
// terminated by the null literal, exactly as DIMACS CNF does — the same
// convention spec.md uses for signed-integer clauses, via z.Dimacs2Lit.
type Gini struct {
	g      *gini.Gini
	maxVar int
}

// NewGini returns a fresh Gini-backed adapter.
func NewGini() *Gini {
	return &Gini{g: gini.New()}
}

// AddClause implements Adapter.
func (s *Gini) AddClause(c Clause) {
	for _, lit := range c {
		if v := lit.Var(); v > s.maxVar {
			s.maxVar = v
		}
		s.g.Add(z.Dimacs2Lit(int(lit)))
	}
	s.g.Add(z.LitNull)
}

// NumVars implements Adapter. Track the declared count as an upper bound
// on the ids the model needs to cover; gini itself grows its variable set
// lazily as literals referencing higher ids are added, so there is nothing
// to pre-size on the solver side.
func (s *Gini) NumVars(n int) {
	if n > s.maxVar {
		s.maxVar = n
	}
}

// Solve implements Adapter.
func (s *Gini) Solve() (*Model, bool, error) {
	switch s.g.Solve() {
	case 1:
		return s.extractModel(), true, nil
	case -1:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("satsolver: gini returned an indeterminate result")
	}
}

func (s *Gini) extractModel() *Model {
	m := &Model{Value: make(map[int]bool, s.maxVar)}
	for v := 1; v <= s.maxVar; v++ {
		m.Value[v] = s.g.Value(z.Dimacs2Lit(v))
	}
	return m
}
