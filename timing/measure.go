// Package timing wraps a single strategy run between two monotonic clock
// readings.
package timing

import "time"

// Measure runs run exactly once and returns the wall-clock time it took.
// time.Now carries a monotonic reading, so the result is immune to clock
// steps.  Panics in run propagate.
func Measure(run func()) time.Duration {
	start := time.Now()
	run()
	return time.Since(start)
}

// Millis truncates d to whole milliseconds.
func Millis(d time.Duration) int64 {
	return d.Milliseconds()
}
