// Package cnf defines the literal and clause primitives shared by the CNF
// builder, the cardinality encoder, and the SAT solver adapter. Keeping
// these in their own package lets all three depend on the same currency
// without internal/cardinality or internal/satsolver needing to import
// pkg/ccp (which imports both of them).
package cnf

// Lit is a signed, non-zero literal: a positive variable id asserts the
// variable true, a negative one asserts it false.
type Lit int

// Not returns the negation of l.
func (l Lit) Not() Lit { return -l }

// Var returns the underlying variable id, always positive.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Positive returns true if l asserts its variable true.
func (l Lit) Positive() bool { return l > 0 }

// Clause is a disjunction of literals.
type Clause []Lit

// FreshAllocator is the minimal capability the cardinality encoder needs
// from a variable registry: the ability to mint ids for auxiliary
// variables that have no symbolic key of their own.
type FreshAllocator interface {
	Fresh() int
}
