package ccp

import "github.com/gitrdm/ccpsat/internal/cardinality"

// Builder emits the full CCP encoding (spec.md §3, §4.2) into a
// ClauseBuffer. After Build completes, any model of the accumulated
// clauses is a valid schedule of length ≤ T, and any valid schedule of
// length ≤ T corresponds to at least one model.
//
// A Builder is owned by exactly one GenSolution call; it is not reused
// across different T values (the Feasibility Driver constructs a fresh
// Builder per candidate T).
type Builder struct {
	durations []int // 1-indexed by chicken p; durations[p-1] = duration(p)
	n         int
	c         int
	T         int
	D         int // max(durations), 0 if n == 0

	reg *Registry
	buf *ClauseBuffer
	log Logger
}

// NewBuilder constructs a Builder for n ≥ 1 chickens, capacity c ≥ 1, and
// budget T ≥ max(durations). Callers (pkg/ccp/api.go) are responsible for
// handling the n=0, c≤0, T<0, and max(durations)>T early-exit cases before
// ever constructing a Builder — those are structural preconditions, not
// encoding concerns.
func NewBuilder(durations []int, c, T int, log Logger) *Builder {
	if log == nil {
		log = NopLogger{}
	}
	n := len(durations)
	D := maxInt(durations)
	// Clause count is O(T·(n+D) + T²·n); pre-size generously but cheaply.
	sizeHint := (T+1)*(n+D+1) + (T+1)*(T+1)*max1(n)/4
	return &Builder{
		durations: durations,
		n:         n,
		c:         c,
		T:         T,
		D:         D,
		reg:       NewRegistry(),
		buf:       NewClauseBuffer(sizeHint),
		log:       log,
	}
}

func max1(x int) int {
	if x < 1 {
		return 1
	}
	return x
}

// Registry exposes the variable registry used during this build, needed by
// the Model Decoder to translate ids back into symbolic meaning.
func (b *Builder) Registry() *Registry { return b.reg }

// Clauses exposes the accumulated clause set for handoff to a solver
// adapter.
func (b *Builder) Clauses() []Clause { return b.buf.Clauses() }

// NumVars reports how many variable ids were allocated.
func (b *Builder) NumVars() int { return b.reg.NumVars() }

// Build emits every invariant from spec.md §3 into the clause buffer, in
// the emission order of §4.2 (the order is for clarity only; it does not
// affect solver correctness). canonicalize controls whether the timeline
// compactness clauses (step 9, spec.md §3 invariant 13) are emitted — they
// are a pruning optimization, not a soundness requirement (spec.md §9).
func (b *Builder) Build(canonicalize bool) {
	b.emitInitialState()
	b.emitAllOnB()
	b.emitDepartureAndCapacity()
	b.emitTripDuration()
	b.emitSlowestPassenger()
	b.emitSideAtDeparture()
	b.emitAtomicity()
	b.emitArrival()
	if canonicalize {
		b.emitTimelineCompactness()
	}
	b.emitBoatToggle()
	b.emitLink()
	b.emitMove()
	b.emitBankEvolution()
	b.emitObjective()

	b.log.Debugf("ccp: built %d clauses over %d variables (n=%d c=%d T=%d D=%d)",
		b.buf.Len(), b.reg.NumVars(), b.n, b.c, b.T, b.D)
}

// 1. Initial state: A(p,0) for all p; side(0).
func (b *Builder) emitInitialState() {
	for p := 1; p <= b.n; p++ {
		b.buf.AddUnit(Lit(b.reg.A(p, 0)))
	}
	b.buf.AddUnit(Lit(b.reg.Side(0)))
}

// 2. All-on-B predicate: ALL(t) → ¬A(p,t) for every p; ALL(t) ∨ A(1,t) ∨
// … ∨ A(n,t).
func (b *Builder) emitAllOnB() {
	for t := 0; t <= b.T; t++ {
		all := Lit(b.reg.ALL(t))
		or := make([]Lit, 0, b.n+1)
		or = append(or, all)
		for p := 1; p <= b.n; p++ {
			a := Lit(b.reg.A(p, t))
			b.buf.AddImpliesAll(all, a.Not())
			or = append(or, a)
		}
		b.buf.Add(or...)
	}
}

// 3. Departure predicate and capacity: dep(t,p) → DEP(t); DEP(t) →
// ∨_p dep(t,p); at_most({dep(t,p)}_p, c). At t=T, forbid DEP(T) and every
// dep(T,p).
func (b *Builder) emitDepartureAndCapacity() {
	for t := 0; t <= b.T; t++ {
		dep := Lit(b.reg.DEP(t))
		lits := make([]Lit, 0, b.n)
		for p := 1; p <= b.n; p++ {
			d := Lit(b.reg.Dep(t, p))
			lits = append(lits, d)
			b.buf.AddImpliesAll(d, dep)
		}
		b.buf.AddImpliesOr(dep, lits...)

		if t == b.T {
			b.buf.AddUnit(dep.Not())
			for _, d := range lits {
				b.buf.AddUnit(d.Not())
			}
			continue
		}

		for _, cl := range cardinality.AtMost(b.reg, lits, b.c) {
			b.buf.Add(cl...)
		}
	}
}

// 4. Trip duration: equals({dur(t,d)}_{d=0..D}, 1); dur(t,0) ↔ ¬DEP(t);
// for d≥1 with t+d>T, forbid dur(t,d).
func (b *Builder) emitTripDuration() {
	for t := 0; t <= b.T; t++ {
		durs := make([]Lit, 0, b.D+1)
		for d := 0; d <= b.D; d++ {
			durs = append(durs, Lit(b.reg.Dur(t, d)))
		}
		for _, cl := range cardinality.Equals(b.reg, durs, 1) {
			b.buf.Add(cl...)
		}

		b.buf.AddIff(Lit(b.reg.Dur(t, 0)), Lit(b.reg.DEP(t)).Not())

		for d := 1; d <= b.D; d++ {
			if t+d > b.T {
				b.buf.AddUnit(Lit(b.reg.Dur(t, d)).Not())
			}
		}
	}
}

// 5. Slowest-passenger rule, per (t<T, d≥1): forbid dep(t,p) for
// duration(p)>d; require ∨_{p: duration(p)=d} dep(t,p) (or forbid dur(t,d)
// if no such p); per p, dep(t,p) → ∨_{d=duration(p)..D} dur(t,d).
func (b *Builder) emitSlowestPassenger() {
	for t := 0; t < b.T; t++ {
		for d := 1; d <= b.D; d++ {
			durTD := Lit(b.reg.Dur(t, d))
			var exact []Lit
			for p := 1; p <= b.n; p++ {
				dp := b.durations[p-1]
				dep := Lit(b.reg.Dep(t, p))
				if dp > d {
					b.buf.AddImpliesAll(durTD, dep.Not())
				}
				if dp == d {
					exact = append(exact, dep)
				}
			}
			if len(exact) == 0 {
				b.buf.AddUnit(durTD.Not())
			} else {
				b.buf.AddImpliesOr(durTD, exact...)
			}
		}
		for p := 1; p <= b.n; p++ {
			dep := Lit(b.reg.Dep(t, p))
			dp := b.durations[p-1]
			durs := make([]Lit, 0, b.D-dp+1)
			for d := dp; d <= b.D; d++ {
				durs = append(durs, Lit(b.reg.Dur(t, d)))
			}
			b.buf.AddImpliesOr(dep, durs...)
		}
	}
}

// 6. Side-at-departure: dep(t,p) → (side(t) ↔ A(p,t)).
func (b *Builder) emitSideAtDeparture() {
	for t := 0; t < b.T; t++ {
		side := Lit(b.reg.Side(t))
		for p := 1; p <= b.n; p++ {
			dep := Lit(b.reg.Dep(t, p))
			a := Lit(b.reg.A(p, t))
			// dep → (side ↔ a): (¬dep ∨ ¬side ∨ a) ∧ (¬dep ∨ side ∨ ¬a)
			b.buf.Add(dep.Not(), side.Not(), a)
			b.buf.Add(dep.Not(), side, a.Not())
		}
	}
}

// 7. Atomicity: for every (t, d≥1) with t+d≤T, and every t' ∈ (t, t+d):
// dur(t,d) → ¬DEP(t').
func (b *Builder) emitAtomicity() {
	for t := 0; t <= b.T; t++ {
		for d := 1; d <= b.D; d++ {
			if t+d > b.T {
				continue
			}
			durTD := Lit(b.reg.Dur(t, d))
			for tp := t + 1; tp < t+d; tp++ {
				b.buf.AddImpliesAll(durTD, Lit(b.reg.DEP(tp)).Not())
			}
		}
	}
}

// 8. Arrival: ARR(0) forbidden; dur(t,d) → ARR(t+d); ARR(t) →
// ∨_{t'<t, d=t−t', 1≤d≤D} dur(t',d).
func (b *Builder) emitArrival() {
	b.buf.AddUnit(Lit(b.reg.ARR(0)).Not())

	for t := 0; t <= b.T; t++ {
		for d := 1; d <= b.D; d++ {
			if t+d > b.T {
				continue
			}
			b.buf.AddImpliesAll(Lit(b.reg.Dur(t, d)), Lit(b.reg.ARR(t+d)))
		}
	}

	for t := 1; t <= b.T; t++ {
		var options []Lit
		for d := 1; d <= b.D && d <= t; d++ {
			tp := t - d
			options = append(options, Lit(b.reg.Dur(tp, d)))
		}
		b.buf.AddImpliesOr(Lit(b.reg.ARR(t)), options...)
	}
}

// 9. Timeline compactness (optimization, spec.md invariant 13): ALL(0) ∨
// DEP(0); DEP(t>0) → ARR(t); ARR(t) ∧ ¬ALL(t) → DEP(t) for t<T; and
// ALL(t) → ¬DEP(t), so no trip departs once every chicken is on bank B.
func (b *Builder) emitTimelineCompactness() {
	b.buf.Add(Lit(b.reg.ALL(0)), Lit(b.reg.DEP(0)))

	for t := 0; t < b.T; t++ {
		b.buf.AddImpliesAll(Lit(b.reg.ALL(t)), Lit(b.reg.DEP(t)).Not())
	}

	for t := 1; t <= b.T; t++ {
		b.buf.AddImpliesAll(Lit(b.reg.DEP(t)), Lit(b.reg.ARR(t)))
	}

	for t := 1; t < b.T; t++ {
		arr := Lit(b.reg.ARR(t))
		all := Lit(b.reg.ALL(t))
		dep := Lit(b.reg.DEP(t))
		// (arr ∧ ¬all) → dep  ≡  ¬arr ∨ all ∨ dep
		b.buf.Add(arr.Not(), all, dep)
	}
}

// 10. Boat side toggle: the four clauses per t≥1 encoding
// side(t) XOR side(t−1) ↔ ARR(t).
func (b *Builder) emitBoatToggle() {
	for t := 1; t <= b.T; t++ {
		st := Lit(b.reg.Side(t))
		stm1 := Lit(b.reg.Side(t - 1))
		arr := Lit(b.reg.ARR(t))

		// arr → (st ↔ ¬stm1): (¬arr ∨ ¬st ∨ ¬stm1) ∧ (¬arr ∨ st ∨ stm1)
		b.buf.Add(arr.Not(), st.Not(), stm1.Not())
		b.buf.Add(arr.Not(), st, stm1)
		// ¬arr → (st ↔ stm1): (arr ∨ ¬st ∨ stm1) ∧ (arr ∨ st ∨ ¬stm1)
		b.buf.Add(arr, st.Not(), stm1)
		b.buf.Add(arr, st, stm1.Not())
	}
}

// 11. link(t,d,p) ↔ dep(t,p) ∧ dur(t,d), as three clauses.
func (b *Builder) emitLink() {
	for t := 0; t < b.T; t++ {
		for d := 1; d <= b.D; d++ {
			if t+d > b.T {
				continue
			}
			dur := Lit(b.reg.Dur(t, d))
			for p := 1; p <= b.n; p++ {
				dep := Lit(b.reg.Dep(t, p))
				link := Lit(b.reg.Link(t, d, p))
				// link ↔ dep ∧ dur
				b.buf.Add(link.Not(), dep)
				b.buf.Add(link.Not(), dur)
				b.buf.Add(link, dep.Not(), dur.Not())
			}
		}
	}
}

// 12. move(t,p) ↔ ∨_{t'<t} link(t', t−t', p), bounded by t−t'≤D.
func (b *Builder) emitMove() {
	for t := 1; t <= b.T; t++ {
		for p := 1; p <= b.n; p++ {
			move := Lit(b.reg.Move(t, p))
			var options []Lit
			for d := 1; d <= b.D && d <= t; d++ {
				tp := t - d
				options = append(options, Lit(b.reg.Link(tp, d, p)))
			}
			// move → ∨ options
			b.buf.AddImpliesOr(move, options...)
			// each option → move
			for _, o := range options {
				b.buf.AddImpliesAll(o, move)
			}
		}
	}
}

// 13. Bank evolution, six clauses per (t≥1, p):
// ¬ARR(t) → (A(p,t) ↔ A(p,t−1))
// ARR(t) → (A(p,t) ↔ A(p,t−1) XOR move(t,p))
func (b *Builder) emitBankEvolution() {
	for t := 1; t <= b.T; t++ {
		arr := Lit(b.reg.ARR(t))
		for p := 1; p <= b.n; p++ {
			apt := Lit(b.reg.A(p, t))
			apt1 := Lit(b.reg.A(p, t-1))
			move := Lit(b.reg.Move(t, p))

			// ¬arr → (apt ↔ apt1)
			b.buf.Add(arr, apt.Not(), apt1)
			b.buf.Add(arr, apt, apt1.Not())

			// arr → (apt ↔ (apt1 XOR move))
			// apt1 XOR move true means apt1 ≠ move.
			// apt ↔ (apt1 ≠ move):
			//   ¬arr-guarded clauses below are guarded by arr instead.
			b.buf.Add(arr.Not(), apt.Not(), apt1.Not(), move.Not())
			b.buf.Add(arr.Not(), apt.Not(), apt1, move)
			b.buf.Add(arr.Not(), apt, apt1.Not(), move)
			b.buf.Add(arr.Not(), apt, apt1, move.Not())
		}
	}
}

// 14. Objective: ALL(T).
func (b *Builder) emitObjective() {
	b.buf.AddUnit(Lit(b.reg.ALL(b.T)))
}
