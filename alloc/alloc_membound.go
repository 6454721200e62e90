//go:build membound

package alloc

import (
	"runtime/debug"

	"cowbench/constants"
)

const name = "membound"

// setup disables proportional collection and lets the heap grow to
// HeapSoftLimit before the collector runs.
func setup() {
	debug.SetGCPercent(-1)
	debug.SetMemoryLimit(constants.HeapSoftLimit)
}
