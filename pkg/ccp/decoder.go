package ccp

import "github.com/gitrdm/ccpsat/internal/satsolver"

// Decode walks the timeline t=0..T-1 (departures at t=T are forbidden by
// construction), testing DEP(t) in the model; whenever it holds, the
// boarding chickens {p : dep(t,p)} are collected in ascending order and
// appended as an Entry. This is deterministic in chicken order, per
// spec.md §4.5.
func Decode(reg *Registry, model *satsolver.Model, n, T int) Schedule {
	var sched Schedule
	for t := 0; t < T; t++ {
		if !model.Holds(Lit(reg.DEP(t))) {
			continue
		}
		var passengers []int
		for p := 1; p <= n; p++ {
			if model.Holds(Lit(reg.Dep(t, p))) {
				passengers = append(passengers, p)
			}
		}
		sortInts(passengers)
		sched = append(sched, Entry{T: t, Passengers: passengers})
	}
	return sched
}
