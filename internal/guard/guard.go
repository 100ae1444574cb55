// Package guard provides the advisory latch that keeps overlay toggles from
// re-entering while a transition animation is still on screen.
package guard

import "sync/atomic"

// Guard is a page-lifetime latch. The zero value is ready to use and starts
// in the idle state.
//
// Guard never blocks. Callers that trigger overlay transitions claim it
// with TryBegin and drop the request when the claim fails.
type Guard struct {
	running atomic.Bool
}

// New returns an idle Guard.
func New() *Guard {
	return &Guard{}
}

// IsRunning reports whether a transition animation is in flight.
func (g *Guard) IsRunning() bool {
	if g == nil {
		return false
	}
	return g.running.Load()
}

// Begin marks a transition animation as started.
func (g *Guard) Begin() {
	if g == nil {
		return
	}
	g.running.Store(true)
}

// TryBegin starts a transition only if none is running and reports whether
// it did. Concurrent callers cannot both win.
func (g *Guard) TryBegin() bool {
	if g == nil {
		return true
	}
	return g.running.CompareAndSwap(false, true)
}

// End clears the latch. It is called by the animation-completion notifier.
func (g *Guard) End() {
	if g == nil {
		return
	}
	g.running.Store(false)
}
