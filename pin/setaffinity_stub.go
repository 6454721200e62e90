//go:build !linux || tinygo

package pin

// setAffinity is a no-op where sched_setaffinity(2) is unavailable.
func setAffinity() int {
	return -1
}
