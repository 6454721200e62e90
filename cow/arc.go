package cow

import "sync/atomic"

// Arc is a reference-counted handle whose count is maintained with atomic
// operations, so handles may be cloned and dropped from any goroutine.
type Arc struct {
	b *arcBox
}

type arcBox struct {
	refs atomic.Int64
	val  []byte
}

// NewArc takes ownership of v and returns the first handle to it.
func NewArc(v []byte) Arc {
	b := &arcBox{val: v}
	b.refs.Store(1)
	return Arc{b: b}
}

// Clone returns another handle to the same buffer.
func (a Arc) Clone() Arc {
	a.b.refs.Add(1)
	return a
}

// Get returns the shared buffer.  Callers must not write to it.
func (a Arc) Get() []byte {
	return a.b.val
}

// StrongCount reports how many live handles share the buffer.  The value
// may be stale by the time it is read if other goroutines hold handles.
func (a Arc) StrongCount() int {
	return int(a.b.refs.Load())
}

// MakeMut returns a buffer owned by a alone.  If other handles exist, a
// detaches onto a private duplicate and the shared buffer is left untouched.
//
// A count of one cannot rise concurrently: only a holder can Clone, and a
// is the only holder.
func (a *Arc) MakeMut() []byte {
	if a.b.refs.Load() != 1 {
		dup := &arcBox{val: Dup(a.b.val)}
		dup.refs.Store(1)
		old := a.b
		a.b = dup
		if old.refs.Add(-1) == 0 {
			// every other holder dropped between the Load and here
			old.val = nil
		}
	}
	return a.b.val
}

// Drop releases a.
func (a *Arc) Drop() {
	b := a.b
	a.b = nil
	if b.refs.Add(-1) == 0 {
		b.val = nil
	}
}
