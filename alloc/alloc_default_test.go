//go:build !membound

package alloc

import (
	"runtime/debug"
	"testing"
)

func TestDefaultSetupLeavesGCAlone(t *testing.T) {
	before := debug.SetGCPercent(-1)
	debug.SetGCPercent(before)

	Setup()

	after := debug.SetGCPercent(before)
	if after != before {
		t.Fatalf("GC percent changed from %d to %d", before, after)
	}
	if Name() != "default" {
		t.Fatalf("Name() = %q", Name())
	}
}
