// Package cow implements the three ownership models measured by the
// benchmark: a plain deep copy, a single-goroutine reference-counted handle
// and an atomically reference-counted handle.
//
// Rc and Arc share one contract:
//
//   - Clone returns a new handle to the same buffer and bumps the count.
//   - Get returns a read-only view and never copies.
//   - MakeMut returns a buffer the handle owns exclusively, duplicating the
//     shared one first iff another handle is still alive.
//   - Drop releases the handle; the buffer is released with the last one.
//
// Handles are values.  A handle must be dropped exactly once and not used
// after Drop.
package cow

// Dup returns a freshly allocated copy of b.
func Dup(b []byte) []byte {
	d := make([]byte, len(b))
	copy(d, b)
	return d
}
