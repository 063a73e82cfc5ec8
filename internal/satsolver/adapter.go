// Package satsolver hides the concrete SAT solver behind a small adapter
// interface, per spec.md §4.4 and the re-architecture guidance in §9: "The
// adapter hides the concrete solver behind a trait/interface ... Multiple
// solver backends ... should be interchangeable."
//
// Two backends are provided: Gini, which wraps the real third-party CDCL
// solver github.com/irifrance/gini, and DPLL, a small dependency-free
// recursive solver used as a reference oracle in tests and as a backend
// that needs nothing beyond the standard library.
package satsolver

import "github.com/gitrdm/ccpsat/internal/cnf"

// Lit and Clause alias the shared CNF primitives.
type Lit = cnf.Lit
type Clause = cnf.Clause

// Model is a complete truth assignment: Value[v] reports the truth value
// of variable id v. Model is read-only once returned from Solve.
type Model struct {
	Value map[int]bool
}

// Holds reports the truth value of a literal under this model.
func (m *Model) Holds(l Lit) bool {
	v := m.Value[l.Var()]
	if l.Positive() {
		return v
	}
	return !v
}

// Adapter is the contract every SAT solver backend satisfies: accumulate
// clauses, then solve once. No incrementality is required (spec.md §1
// Non-goals).
type Adapter interface {
	// AddClause appends one clause to the solver's working set.
	AddClause(c Clause)

	// NumVars tells the adapter how many variable ids are in play, so
	// backends that pre-size internal storage (gini) can do so up front.
	// It is safe to call Solve without calling NumVars; backends that
	// don't need it ignore the call.
	NumVars(n int)

	// Solve returns the model if the accumulated clauses are satisfiable,
	// or ok=false if they are unsatisfiable. err is non-nil only when the
	// backend itself failed to determine an answer (spec.md's
	// ErrSolverFailed case), as opposed to proving unsatisfiability.
	Solve() (model *Model, ok bool, err error)
}
