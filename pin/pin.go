// Package pin keeps the benchmark on one OS thread and, where the platform
// allows it, on one CPU, so scheduler migrations do not show up in the
// timings.
package pin

import "runtime"

// Current locks the calling goroutine to its OS thread and pins that thread
// to a single CPU.  It returns the CPU, or -1 if only the thread lock could
// be applied.  The lock is never released; call it from the goroutine that
// runs the benchmarks.
func Current() int {
	runtime.LockOSThread()
	return setAffinity()
}
