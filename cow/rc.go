package cow

// Rc is a reference-counted handle whose count is a plain integer.  All
// handles to one buffer must stay on one goroutine.
type Rc struct {
	b *rcBox
}

type rcBox struct {
	refs int
	val  []byte
}

// NewRc takes ownership of v and returns the first handle to it.
func NewRc(v []byte) Rc {
	return Rc{b: &rcBox{refs: 1, val: v}}
}

// Clone returns another handle to the same buffer.
func (r Rc) Clone() Rc {
	r.b.refs++
	return r
}

// Get returns the shared buffer.  Callers must not write to it.
func (r Rc) Get() []byte {
	return r.b.val
}

// StrongCount reports how many live handles share the buffer.
func (r Rc) StrongCount() int {
	return r.b.refs
}

// MakeMut returns a buffer owned by r alone.  If other handles exist, r
// detaches onto a private duplicate and the shared buffer is left untouched.
func (r *Rc) MakeMut() []byte {
	if r.b.refs != 1 {
		dup := &rcBox{refs: 1, val: Dup(r.b.val)}
		r.b.refs--
		r.b = dup
	}
	return r.b.val
}

// Drop releases r.
func (r *Rc) Drop() {
	b := r.b
	r.b = nil
	b.refs--
	if b.refs == 0 {
		b.val = nil
	}
}
