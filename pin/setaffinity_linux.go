//go:build linux && !tinygo

// setaffinity_linux.go
//
// Linux binding for sched_setaffinity(2).  The thread is pinned to the
// highest-numbered CPU it is currently allowed on, which keeps it away from
// CPU 0 where most housekeeping interrupts land.  Errors are swallowed: in a
// restricted container the call may fail with EPERM and the fallback is
// simply "no pin".

package pin

import "golang.org/x/sys/unix"

// maxCPU bounds the search; unix.CPUSet holds 1024 bits.
const maxCPU = 1024

func setAffinity() int {
	var allowed unix.CPUSet
	if err := unix.SchedGetaffinity(0, &allowed); err != nil {
		return -1
	}
	cpu := highest(&allowed)
	if cpu < 0 {
		return -1
	}
	var one unix.CPUSet
	one.Set(cpu)
	if err := unix.SchedSetaffinity(0, &one); err != nil {
		return -1
	}
	return cpu
}

// highest returns the largest CPU index set in s, or -1.
func highest(s *unix.CPUSet) int {
	for cpu := maxCPU - 1; cpu >= 0; cpu-- {
		if s.IsSet(cpu) {
			return cpu
		}
	}
	return -1
}
