// hint.go — optimization barriers for the strategy loops
//
// The compiler may drop a copy nobody reads or a write nobody observes.
// Use and UseMut are never inlined and publish their argument through a
// package sink, so every buffer handed to them has to exist on the heap
// exactly as the caller built it.
//
// ⚠️ Single goroutine only: the sink is a plain variable.

package hint

var sink []byte

// Use observes b without modifying it.
//
//go:noinline
func Use(b []byte) {
	sink = b
}

// UseMut observes b through a real in-place write to its first byte.
//
//go:noinline
func UseMut(b []byte) {
	if len(b) != 0 {
		b[0]++
	}
	sink = b
}

// Release drops the last observed buffer so it does not outlive the run
// that produced it.
func Release() {
	sink = nil
}
