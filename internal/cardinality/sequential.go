// Package cardinality implements the cardinality-constraint encoder that
// spec.md §4.3 treats as an external collaborator: at_most(lits, k) and
// equals(lits, k), both returning plain CNF clauses (allocating fresh
// auxiliary variables through a FreshAllocator when needed). No particular
// encoding scheme is mandated by the spec; this package uses the
// sequential-counter encoding (Sinz 2005), the simplest one that stays
// linear in clause count, matching the "a sequential counter or similar is
// sufficient" guidance.
package cardinality

import "github.com/gitrdm/ccpsat/internal/cnf"

// Lit and Clause alias the shared CNF primitives so callers don't need to
// import internal/cnf directly.
type Lit = cnf.Lit
type Clause = cnf.Clause

// FreshAllocator mints fresh auxiliary variable ids.
type FreshAllocator = cnf.FreshAllocator

// AtMost returns clauses enforcing that at most k of lits are true. It is
// sound for any k ≥ 0; if k ≥ len(lits) the constraint is trivially
// satisfied and no clauses are emitted.
func AtMost(alloc FreshAllocator, lits []Lit, k int) []Clause {
	n := len(lits)
	if k < 0 {
		k = 0
	}
	if k >= n {
		return nil
	}
	if k == 0 {
		clauses := make([]Clause, 0, n)
		for _, l := range lits {
			clauses = append(clauses, Clause{l.Not()})
		}
		return clauses
	}

	// s[i][j] (1-indexed i in 1..n-1, j in 1..k) means "at least j of
	// lits[0..i-1] (1-indexed lits[1..i]) are true".
	s := make([][]Lit, n)
	for i := 1; i <= n-1; i++ {
		s[i] = make([]Lit, k+1)
		for j := 1; j <= k; j++ {
			s[i][j] = Lit(alloc.Fresh())
		}
	}

	var clauses []Clause
	add := func(lits ...Lit) {
		c := make(Clause, len(lits))
		copy(c, lits)
		clauses = append(clauses, c)
	}

	x := func(i int) Lit { return lits[i-1] } // 1-indexed accessor

	if n >= 1 {
		// ¬x1 ∨ s[1][1]
		if k >= 1 {
			add(x(1).Not(), s[1][1])
		}
		for j := 2; j <= k; j++ {
			add(s[1][j].Not())
		}
	}

	for i := 2; i <= n-1; i++ {
		add(x(i).Not(), s[i][1])
		add(s[i-1][1].Not(), s[i][1])
		for j := 2; j <= k; j++ {
			add(x(i).Not(), s[i-1][j-1].Not(), s[i][j])
			add(s[i-1][j].Not(), s[i][j])
		}
		add(x(i).Not(), s[i-1][k].Not())
	}

	if n >= 2 {
		add(x(n).Not(), s[n-1][k].Not())
	}

	return clauses
}

// Equals returns clauses enforcing that exactly k of lits are true.
func Equals(alloc FreshAllocator, lits []Lit, k int) []Clause {
	n := len(lits)
	if k < 0 || k > n {
		// Unsatisfiable by construction: emit a trivially false unit pair.
		aux := Lit(alloc.Fresh())
		return []Clause{{aux}, {aux.Not()}}
	}

	clauses := AtMost(alloc, lits, k)

	// At-least-k(lits) == at-most-(n-k)(¬lits).
	negated := make([]Lit, n)
	for i, l := range lits {
		negated[i] = l.Not()
	}
	clauses = append(clauses, AtMost(alloc, negated, n-k)...)
	return clauses
}
