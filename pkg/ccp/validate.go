package ccp

import "fmt"

// Simulate replays a Schedule against the rules of spec.md §3 starting
// from all-on-A at t=0, and reports an error if any rule is violated. It
// is the canonical oracle referenced by spec.md §8: "a simulator that
// re-plays the schedule and checks the rules", used both by this
// package's own tests and available to callers that want to double-check
// a schedule returned by GenSolution (e.g. one supplied by a different
// solver backend).
//
// It returns nil when every trip is legal and every chicken ends on bank B.
func Simulate(durations []int, c, T int, sched Schedule) error {
	n := len(durations)
	onA := make([]bool, n+1) // 1-indexed; onA[p] true means chicken p is on bank A
	for p := 1; p <= n; p++ {
		onA[p] = true
	}
	boatOnA := true

	prevT := -1
	busyUntil := -1 // instant the boat becomes available again

	for _, e := range sched {
		if e.T <= prevT {
			return fmt.Errorf("ccp: schedule not strictly increasing at t=%d", e.T)
		}
		if e.T < busyUntil {
			return fmt.Errorf("ccp: departure at t=%d during an in-flight trip (busy until %d)", e.T, busyUntil)
		}
		if len(e.Passengers) == 0 {
			return fmt.Errorf("ccp: empty passenger list at t=%d", e.T)
		}
		if len(e.Passengers) > c {
			return fmt.Errorf("ccp: %d passengers at t=%d exceeds capacity %d", len(e.Passengers), e.T, c)
		}

		tripDuration := 0
		seen := make(map[int]bool, len(e.Passengers))
		for _, p := range e.Passengers {
			if p < 1 || p > n {
				return fmt.Errorf("ccp: passenger %d out of range at t=%d", p, e.T)
			}
			if seen[p] {
				return fmt.Errorf("ccp: passenger %d repeated at t=%d", p, e.T)
			}
			seen[p] = true
			if onA[p] != boatOnA {
				return fmt.Errorf("ccp: chicken %d boards at t=%d from the wrong bank", p, e.T)
			}
			if d := durations[p-1]; d > tripDuration {
				tripDuration = d
			}
		}

		if e.T+tripDuration > T {
			return fmt.Errorf("ccp: trip departing t=%d (duration %d) exceeds budget %d", e.T, tripDuration, T)
		}

		for _, p := range e.Passengers {
			onA[p] = !onA[p]
		}
		boatOnA = !boatOnA

		prevT = e.T
		busyUntil = e.T + tripDuration
	}

	for p := 1; p <= n; p++ {
		if onA[p] {
			return fmt.Errorf("ccp: chicken %d never reaches bank B", p)
		}
	}
	return nil
}
