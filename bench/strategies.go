// strategies.go
//
// Each loop simulates n call sites.  Every call site receives its own
// handle to the payload text plus the next oracle decision, reads the text,
// and writes to it when told to.  The three loops differ only in how the
// call site's handle is produced:
//
//   Clone  full duplicate per call site
//   Rc     shared handle, plain count, copy on write
//   Arc    shared handle, atomic count, copy on write
//
// In Rc and Arc the outer handle stays alive for the whole loop, so every
// mutating call site sees a count of two and pays for a duplicate.  That is
// the quantity being measured; do not hoist or elide it.
//
// Each loop returns how many mutating accesses it performed.

package bench

import (
	"cowbench/cow"
	"cowbench/hint"
	"cowbench/oracle"
)

// Strategy names a loop for the driver.
type Strategy struct {
	Label string
	Run   func(n int, p *Payload) uint64
}

// Strategies lists the loops in the order the driver runs them.
var Strategies = [...]Strategy{
	{Label: "Clone", Run: RunClone},
	{Label: "Rc", Run: RunRc},
	{Label: "Arc", Run: RunArc},
}

// ───────────────────────────── Clone ─────────────────────────────

// RunClone duplicates the text for every call site.  p.Text itself is
// never written.
func RunClone(n int, p *Payload) uint64 {
	muts := cloneLoop(n, p.Text, p.Oracle)
	hint.Release()
	return muts
}

func cloneLoop(n int, s []byte, o *oracle.Oracle) uint64 {
	var muts uint64
	for i := 0; i < n; i++ {
		c := cow.Dup(s)
		m := o.Next()
		cloneStep(c, m)
		if m {
			muts++
		}
	}
	return muts
}

func cloneStep(s []byte, mutate bool) {
	hint.Use(s)
	if mutate {
		hint.UseMut(s)
	}
}

// ────────────────────────────── Rc ───────────────────────────────

// RunRc shares the text through one Rc and hands each call site a clone
// of the handle.
func RunRc(n int, p *Payload) uint64 {
	outer := cow.NewRc(p.Text)
	muts := rcLoop(n, outer, p.Oracle)
	outer.Drop()
	hint.Release()
	return muts
}

func rcLoop(n int, outer cow.Rc, o *oracle.Oracle) uint64 {
	var muts uint64
	for i := 0; i < n; i++ {
		h := outer.Clone()
		m := o.Next()
		rcStep(h, m)
		if m {
			muts++
		}
	}
	return muts
}

func rcStep(s cow.Rc, mutate bool) {
	hint.Use(s.Get())
	if mutate {
		hint.UseMut(s.MakeMut())
	}
	s.Drop()
}

// ────────────────────────────── Arc ──────────────────────────────

// RunArc is RunRc with an atomically counted handle.
func RunArc(n int, p *Payload) uint64 {
	outer := cow.NewArc(p.Text)
	muts := arcLoop(n, outer, p.Oracle)
	outer.Drop()
	hint.Release()
	return muts
}

func arcLoop(n int, outer cow.Arc, o *oracle.Oracle) uint64 {
	var muts uint64
	for i := 0; i < n; i++ {
		h := outer.Clone()
		m := o.Next()
		arcStep(h, m)
		if m {
			muts++
		}
	}
	return muts
}

func arcStep(s cow.Arc, mutate bool) {
	hint.Use(s.Get())
	if mutate {
		hint.UseMut(s.MakeMut())
	}
	s.Drop()
}
