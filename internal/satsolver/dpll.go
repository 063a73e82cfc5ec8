package satsolver

// DPLL is a small, dependency-free recursive DPLL solver: unit propagation
// plus chronological backtracking. It exists as an interchangeable second
// Adapter backend (spec.md §9 asks for backends to be swappable) and is the
// backend the builder tests and the DPLL-backed API tests solve with,
// independent of gini's search heuristics.
type DPLL struct {
	clauses []Clause
	numVars int
}

// NewDPLL returns a fresh DPLL-backed adapter.
func NewDPLL() *DPLL {
	return &DPLL{}
}

// AddClause implements Adapter.
func (s *DPLL) AddClause(c Clause) {
	clause := make(Clause, len(c))
	copy(clause, c)
	s.clauses = append(s.clauses, clause)
	for _, lit := range clause {
		if v := lit.Var(); v > s.numVars {
			s.numVars = v
		}
	}
}

// NumVars implements Adapter.
func (s *DPLL) NumVars(n int) {
	if n > s.numVars {
		s.numVars = n
	}
}

// Solve implements Adapter. It never returns a non-nil error: the
// recursive search is exhaustive and always terminates with a definite
// sat/unsat answer.
func (s *DPLL) Solve() (*Model, bool, error) {
	assign := make(map[int]bool, s.numVars)
	if solve(s.clauses, assign, s.numVars) {
		// Unassigned variables (pure don't-cares) default to false.
		for v := 1; v <= s.numVars; v++ {
			if _, ok := assign[v]; !ok {
				assign[v] = false
			}
		}
		return &Model{Value: assign}, true, nil
	}
	return nil, false, nil
}

// solve mutates assign in place, trying to extend it to a full satisfying
// assignment. On failure it restores assign to exactly the state it had on
// entry, including variables it bound via unit propagation, so a caller
// higher up the recursion can safely try the opposite branch.
func solve(clauses []Clause, assign map[int]bool, numVars int) bool {
	var bound []int // variables this call (including unit propagation) assigned

	undo := func() {
		for _, v := range bound {
			delete(assign, v)
		}
	}

	for {
		_, lit, ok := findUnit(clauses, assign)
		if !ok {
			break
		}
		assign[lit.Var()] = lit.Positive()
		bound = append(bound, lit.Var())
		status := evalAll(clauses, assign)
		if status == statusFalse {
			undo()
			return false
		}
		if status == statusTrue {
			return true
		}
	}

	v := pickUnassigned(clauses, assign, numVars)
	if v == 0 {
		ok := evalAll(clauses, assign) != statusFalse
		if !ok {
			undo()
		}
		return ok
	}

	for _, val := range []bool{true, false} {
		assign[v] = val
		status := evalAll(clauses, assign)
		if status == statusFalse {
			delete(assign, v)
			continue
		}
		if status == statusTrue {
			return true
		}
		if solve(clauses, assign, numVars) {
			return true
		}
		delete(assign, v)
	}
	undo()
	return false
}

type clauseStatus int

const (
	statusUnknown clauseStatus = iota
	statusTrue
	statusFalse
)

// evalAll reports statusFalse if some clause is already violated under the
// partial assignment, statusTrue if every clause is already satisfied, and
// statusUnknown otherwise.
func evalAll(clauses []Clause, assign map[int]bool) clauseStatus {
	allSatisfied := true
	for _, c := range clauses {
		satisfied := false
		hasUnassigned := false
		for _, lit := range c {
			v, ok := assign[lit.Var()]
			if !ok {
				hasUnassigned = true
				continue
			}
			if v == lit.Positive() {
				satisfied = true
				break
			}
		}
		if satisfied {
			continue
		}
		if !hasUnassigned {
			return statusFalse
		}
		allSatisfied = false
	}
	if allSatisfied {
		return statusTrue
	}
	return statusUnknown
}

// findUnit looks for a clause with exactly one unassigned literal and all
// other literals false, and returns that literal for unit propagation.
func findUnit(clauses []Clause, assign map[int]bool) (Clause, Lit, bool) {
	for _, c := range clauses {
		var unassigned Lit
		unassignedCount := 0
		satisfied := false
		for _, lit := range c {
			v, ok := assign[lit.Var()]
			if !ok {
				unassigned = lit
				unassignedCount++
				continue
			}
			if v == lit.Positive() {
				satisfied = true
				break
			}
		}
		if satisfied || unassignedCount != 1 {
			continue
		}
		return c, unassigned, true
	}
	return nil, 0, false
}

func pickUnassigned(clauses []Clause, assign map[int]bool, numVars int) int {
	for _, c := range clauses {
		for _, lit := range c {
			if _, ok := assign[lit.Var()]; !ok {
				return lit.Var()
			}
		}
	}
	_ = numVars
	return 0
}
