package ccp

// FindDuration computes the minimum T for which GenSolution yields a
// schedule, searching T ∈ [L, U] per spec.md §4.6:
//
//	L = max(durations)                     (the slowest single crossing)
//	U = 2·sum(durations) − min(durations)  (shuttle-with-fastest-returner)
//
// It scans linearly rather than bisecting: spec.md §9 open question 3
// keeps this as the deterministic reference oracle, with
// FindDurationBisection offered as the performance-oriented variant that
// relies on monotonicity (spec.md §8 property 3).
//
// On n=0 or c≤0 it returns 0. If no T in [L, U] is feasible it returns U.
func FindDuration(durations []int, c int, opts ...Options) int {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	if len(durations) == 0 || c <= 0 {
		return 0
	}

	L := maxInt(durations)
	U := 2*sumInt(durations) - minInt(durations)

	feasible := func(T int) bool {
		_, err := GenSolution(durations, c, T, o)
		return err == nil
	}

	for T := L; T <= U; T++ {
		if feasible(T) {
			o.logger().Infof("ccp: find_duration found T=%d feasible", T)
			return T
		}
	}
	o.logger().Infof("ccp: find_duration exhausted [%d,%d], returning U", L, U)
	return U
}

// FindDurationBisection binary searches [L, U] instead of scanning
// linearly, relying on feasibility being monotone in T: any schedule of
// length T extends to T+1 by padding with a no-op trip. Prefer this for
// performance once an instance's monotonicity isn't in question;
// FindDuration remains the reference oracle.
func FindDurationBisection(durations []int, c int, opts ...Options) int {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	if len(durations) == 0 || c <= 0 {
		return 0
	}

	L := maxInt(durations)
	U := 2*sumInt(durations) - minInt(durations)

	feasible := func(T int) bool {
		_, err := GenSolution(durations, c, T, o)
		return err == nil
	}

	if !feasible(U) {
		o.logger().Infof("ccp: find_duration_bisection: U=%d infeasible, returning U", U)
		return U
	}

	lo, hi := L, U
	for lo < hi {
		mid := lo + (hi-lo)/2
		if feasible(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
