// ════════════════════════════════════════════════════════════════════════════════════════════════
// Copy-on-Write Ownership Benchmark - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Driver
//
// Description:
//   Measures what it costs to hand a piece of owned text to a billion call sites that
//   sometimes write to it, under three ownership models: deep copy, plain reference count,
//   atomic reference count.
//
// Architecture:
//   - Phase 0: memory mode, argument validation, optional diagnostics
//   - Phase 1: pin the driver to one OS thread / CPU
//   - Phase 2: Clone → Rc → Arc, each on a fresh payload, each timed alone
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"cowbench/alloc"
	"cowbench/bench"
	"cowbench/constants"
	"cowbench/debug"
	"cowbench/oracle"
	"cowbench/pin"
	"cowbench/timing"
	"cowbench/utils"
)

// exitUsage is the status for a bad command line.
const exitUsage = 2

var errUsage = errors.New("usage: cowbench <denominator>")

func main() {
	// PHASE 0: configuration
	alloc.Setup()

	denom, err := parseArgs(os.Args[1:])
	if err != nil {
		debug.DropError("CONFIG", err)
		os.Exit(exitUsage)
	}

	stopDiag := startDiagnostics()

	// PHASE 1: keep the scheduler out of the numbers
	cpu := pin.Current()
	debug.Trace("PIN", "cpu "+utils.Itoa(cpu))

	// PHASE 2: benchmarks
	if err := run(os.Stdout, denom, constants.Iterations); err != nil {
		debug.DropError("RUN", err)
		stopDiag()
		os.Exit(1)
	}
	stopDiag()
}

// parseArgs reads the mutation-probability denominator from the single
// positional argument and rejects values no oracle can be built from.
func parseArgs(args []string) (uint32, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	v, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: denominator %q: %w", errUsage, args[0], err)
	}
	denom := uint32(v)
	if _, err := oracle.NewBernoulli(1, denom); err != nil {
		return 0, fmt.Errorf("%w: denominator %d: %w", errUsage, denom, err)
	}
	return denom, nil
}

// run prints the banner, then times each strategy on a fresh payload and
// prints one line per strategy.  Payload construction stays outside the
// measured region.
func run(w io.Writer, denom uint32, n int) error {
	banner := "Running " + utils.Itoa(n) + " rounds with 1/" + utils.Utoa(uint64(denom)) +
		" clone probability using the " + alloc.Name() + " allocator\n"
	if _, err := io.WriteString(w, banner); err != nil {
		return err
	}

	for _, s := range bench.Strategies {
		p, err := bench.NewPayload(denom)
		if err != nil {
			return err
		}

		var muts uint64
		elapsed := timing.Measure(func() {
			muts = s.Run(n, p)
		})

		line := s.Label + ": " + utils.Itoa(int(timing.Millis(elapsed))) + "ms\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		debug.Trace(s.Label, "mutations "+utils.Utoa(muts)+" of "+utils.Itoa(n))
	}
	return nil
}
