// Package alloc selects, at build time, how the runtime manages the heap
// during a benchmark run.  Go's allocator itself is fixed; what varies is
// when the collector is allowed to run.
//
//	go build            default   GOGC as configured by the runtime
//	go build -tags membound       proportional GC off, soft limit only
//
// The choice changes absolute timings, never program logic, and its name is
// printed in the startup banner.
package alloc

// Name reports the memory mode compiled into the binary.
func Name() string {
	return name
}

// Setup applies the memory mode.  Call once, before any benchmark runs.
func Setup() {
	setup()
}
