//go:build membound

package alloc

import (
	"math"
	"runtime/debug"
	"testing"

	"cowbench/constants"
)

func TestMemboundSetup(t *testing.T) {
	prevGC := debug.SetGCPercent(-1)
	prevLimit := debug.SetMemoryLimit(math.MaxInt64)
	debug.SetGCPercent(prevGC)
	debug.SetMemoryLimit(prevLimit)
	t.Cleanup(func() {
		debug.SetGCPercent(prevGC)
		debug.SetMemoryLimit(prevLimit)
	})

	Setup()

	if pct := debug.SetGCPercent(-1); pct != -1 {
		t.Fatalf("GC percent = %d, want -1", pct)
	}
	if limit := debug.SetMemoryLimit(-1); limit != constants.HeapSoftLimit {
		t.Fatalf("memory limit = %d, want %d", limit, constants.HeapSoftLimit)
	}
	if Name() != "membound" {
		t.Fatalf("Name() = %q", Name())
	}
}
