package ccp

import "fmt"

// varKind tags the logical family a propositional variable belongs to.
// Keeping the tag as a small integer (rather than a string, as a naive
// port of a dynamically-typed source might) lets the registry key on a
// plain struct instead of paying for structural hashing of heterogeneous
// tuples.
type varKind uint8

const (
	kindA varKind = iota
	kindSide
	kindDEP
	kindDep
	kindDur
	kindARR
	kindMove
	kindALL
	kindLink
)

func (k varKind) String() string {
	switch k {
	case kindA:
		return "A"
	case kindSide:
		return "side"
	case kindDEP:
		return "DEP"
	case kindDep:
		return "dep"
	case kindDur:
		return "dur"
	case kindARR:
		return "ARR"
	case kindMove:
		return "move"
	case kindALL:
		return "ALL"
	case kindLink:
		return "link"
	default:
		return "?"
	}
}

// varKey is the symbolic identity of a propositional variable: a kind tag
// plus up to three integer indices (t, p, d — unused slots left at zero).
// Every variable family in spec.md §3 fits in at most three indices, so a
// fixed-size struct is enough; no need for a variadic tuple.
type varKey struct {
	kind    varKind
	t, p, d int
}

// Registry maps symbolic variable keys to unique positive integer ids,
// stable within one CNF build. Ids start at 1; 0 is reserved by convention
// for "no literal" and is never allocated.
//
// The registry also exposes Fresh, an allocator for auxiliary variables
// that have no symbolic key of their own — the cardinality encoder uses it
// to mint ids that cannot collide with any symbolic variable.
type Registry struct {
	ids    map[varKey]int
	nextID int
}

// NewRegistry returns an empty registry. Ids are allocated starting at 1.
func NewRegistry() *Registry {
	return &Registry{
		ids:    make(map[varKey]int),
		nextID: 1,
	}
}

// id returns the id for key, allocating a fresh one on first lookup.
func (r *Registry) id(key varKey) int {
	if id, ok := r.ids[key]; ok {
		return id
	}
	id := r.nextID
	r.nextID++
	r.ids[key] = id
	return id
}

// Fresh allocates and returns a new id with no symbolic key, for use by
// auxiliary-variable-introducing collaborators such as the cardinality
// encoder.
func (r *Registry) Fresh() int {
	id := r.nextID
	r.nextID++
	return id
}

// NumVars reports the number of ids allocated so far (the highest id, since
// allocation is dense and starts at 1).
func (r *Registry) NumVars() int {
	return r.nextID - 1
}

// A returns the id of A(p,t): chicken p is on bank A at instant t.
func (r *Registry) A(p, t int) int { return r.id(varKey{kind: kindA, p: p, t: t}) }

// Side returns the id of side(t): the boat is on bank A at instant t.
func (r *Registry) Side(t int) int { return r.id(varKey{kind: kindSide, t: t}) }

// DEP returns the id of DEP(t): a departure event occurs at instant t.
func (r *Registry) DEP(t int) int { return r.id(varKey{kind: kindDEP, t: t}) }

// Dep returns the id of dep(t,p): chicken p boards the trip departing at t.
func (r *Registry) Dep(t, p int) int { return r.id(varKey{kind: kindDep, t: t, p: p}) }

// Dur returns the id of dur(t,d): the trip departing at t has duration d.
func (r *Registry) Dur(t, d int) int { return r.id(varKey{kind: kindDur, t: t, d: d}) }

// ARR returns the id of ARR(t): a trip arrives at instant t.
func (r *Registry) ARR(t int) int { return r.id(varKey{kind: kindARR, t: t}) }

// Move returns the id of move(t,p): chicken p disembarks (flips banks) at t.
func (r *Registry) Move(t, p int) int { return r.id(varKey{kind: kindMove, t: t, p: p}) }

// ALL returns the id of ALL(t): every chicken is on bank B at instant t.
func (r *Registry) ALL(t int) int { return r.id(varKey{kind: kindALL, t: t}) }

// Link returns the id of link(t,d,p): dep(t,p) ∧ dur(t,d).
func (r *Registry) Link(t, d, p int) int { return r.id(varKey{kind: kindLink, t: t, p: p, d: d}) }

// String renders a key for debugging; not used by the builder itself.
func (k varKey) String() string {
	switch k.kind {
	case kindA:
		return fmt.Sprintf("A(%d,%d)", k.p, k.t)
	case kindSide:
		return fmt.Sprintf("side(%d)", k.t)
	case kindDEP:
		return fmt.Sprintf("DEP(%d)", k.t)
	case kindDep:
		return fmt.Sprintf("dep(%d,%d)", k.t, k.p)
	case kindDur:
		return fmt.Sprintf("dur(%d,%d)", k.t, k.d)
	case kindARR:
		return fmt.Sprintf("ARR(%d)", k.t)
	case kindMove:
		return fmt.Sprintf("move(%d,%d)", k.t, k.p)
	case kindALL:
		return fmt.Sprintf("ALL(%d)", k.t)
	case kindLink:
		return fmt.Sprintf("link(%d,%d,%d)", k.t, k.d, k.p)
	default:
		return "?"
	}
}
