// Package ccp solves the Chicken Crossing Problem: given n chickens each
// with an individual crossing duration, a boat of capacity c, and a time
// budget T, decide whether every chicken can be ferried from bank A to
// bank B within T time units, and if so produce a concrete schedule of
// departures.
//
// The puzzle is compiled into conjunctive normal form (CNF), handed to an
// external SAT solver (internal/satsolver), and a satisfying assignment is
// decoded back into a schedule. A secondary entry point, FindDuration,
// searches for the minimum feasible T.
//
// This package is single-threaded and sequential: a Builder, its Registry,
// and its ClauseBuffer are owned by exactly one GenSolution call and are
// not safe for concurrent reuse. Successive calls from FindDuration build
// fresh instances.
package ccp
