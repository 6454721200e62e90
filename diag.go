package main

import (
	"os"

	"github.com/google/gops/agent"

	"cowbench/constants"
	"cowbench/debug"
)

// startDiagnostics starts the gops agent when COWBENCH_GOPS is set, so a
// long run can be inspected (stack, memstats, GC) from another terminal.
// The returned func stops it.
func startDiagnostics() func() {
	if os.Getenv(constants.EnvGops) == "" {
		return func() {}
	}
	if err := agent.Listen(agent.Options{ShutdownCleanup: false}); err != nil {
		debug.DropError("GOPS", err)
		return func() {}
	}
	debug.DropMessage("GOPS", "agent listening")
	return agent.Close
}
