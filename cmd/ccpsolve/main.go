// Command ccpsolve is the command-line driver for the Chicken Crossing
// Problem solver: it reads durations, a boat capacity, and either a fixed
// time budget or a request to search for the minimum one, and prints the
// resulting schedule (or "no solution").
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gitrdm/ccpsat/pkg/ccp"
)

// cliLogger routes ccp.Logger calls through the standard library logger,
// keeping the core package itself free of any logging dependency
// (spec.md §9 open question 4).
type cliLogger struct{ *log.Logger }

func (l cliLogger) Debugf(format string, args ...any) { l.Printf("debug: "+format, args...) }
func (l cliLogger) Infof(format string, args ...any)  { l.Printf(format, args...) }

func main() {
	durationsFlag := flag.String("durations", "", "comma-separated crossing durations, one per chicken")
	capacity := flag.Int("capacity", 2, "boat capacity")
	budget := flag.Int("budget", -1, "time budget T; omit to search for the minimum feasible T")
	verbose := flag.Bool("v", false, "log search progress")
	flag.Parse()

	durations, err := parseDurations(*durationsFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ccpsolve:", err)
		os.Exit(2)
	}

	var opts ccp.Options
	if *verbose {
		opts.Log = cliLogger{log.New(os.Stderr, "", 0)}
	}

	if *budget < 0 {
		T := ccp.FindDuration(durations, *capacity, opts)
		fmt.Printf("minimum feasible T = %d\n", T)
		*budget = T
	}

	sched, err := ccp.GenSolution(durations, *capacity, *budget, opts)
	if err != nil {
		fmt.Println("no solution")
		return
	}

	fmt.Printf("schedule (T=%d, capacity=%d):\n", *budget, *capacity)
	for _, e := range sched {
		fmt.Printf("  t=%-3d depart %v\n", e.T, e.Passengers)
	}
}

func parseDurations(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	durations := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		durations = append(durations, v)
	}
	return durations, nil
}
