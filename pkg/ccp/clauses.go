package ccp

import "github.com/gitrdm/ccpsat/internal/cnf"

// Lit and Clause are aliases of the shared primitives in internal/cnf, so
// that the cardinality encoder and the SAT solver adapter operate on the
// exact same literal currency as the builder without importing pkg/ccp
// themselves (which would create an import cycle, since this package
// imports both of them).
type Lit = cnf.Lit
type Clause = cnf.Clause

// ClauseBuffer is an append-only collection of clauses built during CNF
// encoding. It is mutated only by Builder; a SAT solver adapter reads it
// exactly once, after encoding completes.
type ClauseBuffer struct {
	clauses []Clause
}

// NewClauseBuffer returns an empty buffer, pre-sized to reduce reallocation
// for the clause counts typical of this encoding (see spec.md §5: clause
// count grows as O(T·(n+D) + T²·n)).
func NewClauseBuffer(sizeHint int) *ClauseBuffer {
	if sizeHint < 16 {
		sizeHint = 16
	}
	return &ClauseBuffer{clauses: make([]Clause, 0, sizeHint)}
}

// Add appends a clause built from the given literals.
func (b *ClauseBuffer) Add(lits ...Lit) {
	clause := make(Clause, len(lits))
	copy(clause, lits)
	b.clauses = append(b.clauses, clause)
}

// AddUnit appends a one-literal clause, i.e. asserts lit unconditionally.
func (b *ClauseBuffer) AddUnit(lit Lit) { b.Add(lit) }

// AddIff emits the two clauses encoding the biconditional a ↔ b:
// (¬a ∨ b) and (a ∨ ¬b).
func (b *ClauseBuffer) AddIff(a, b2 Lit) {
	b.Add(a.Not(), b2)
	b.Add(a, b2.Not())
}

// AddImpliesAll emits `antecedent → consequent` for every consequent given,
// i.e. one binary clause per consequent: (¬antecedent ∨ consequent_i).
func (b *ClauseBuffer) AddImpliesAll(antecedent Lit, consequents ...Lit) {
	for _, c := range consequents {
		b.Add(antecedent.Not(), c)
	}
}

// AddImpliesOr emits `antecedent → (c1 ∨ c2 ∨ ... ∨ cn)` as a single clause
// (¬antecedent ∨ c1 ∨ ... ∨ cn).
func (b *ClauseBuffer) AddImpliesOr(antecedent Lit, consequents ...Lit) {
	lits := make([]Lit, 0, len(consequents)+1)
	lits = append(lits, antecedent.Not())
	lits = append(lits, consequents...)
	b.Add(lits...)
}

// Clauses returns the accumulated clause set. The returned slice must not
// be mutated by the caller.
func (b *ClauseBuffer) Clauses() []Clause { return b.clauses }

// Len returns the number of clauses accumulated so far.
func (b *ClauseBuffer) Len() int { return len(b.clauses) }
