// Package overlay owns the mutual-exclusion policy for the full-panel
// overlays drawn above the base layer.
package overlay

import (
	"log/slog"
	"sync"

	"github.com/five82/newtab/internal/guard"
)

// Surface identifies one overlay.
type Surface int

const (
	QuickLaunchMenu Surface = iota
	SearchBox
	WeatherPanel
	SettingsDashboard
)

// Surfaces lists every overlay in declaration order.
var Surfaces = []Surface{QuickLaunchMenu, SearchBox, WeatherPanel, SettingsDashboard}

// String returns the surface name used in logs and zone ids.
func (s Surface) String() string {
	switch s {
	case QuickLaunchMenu:
		return "launcher"
	case SearchBox:
		return "search"
	case WeatherPanel:
		return "weather"
	case SettingsDashboard:
		return "settings"
	default:
		return "unknown"
	}
}

// Event is published after a surface changes visibility.
type Event struct {
	Surface Surface
	Visible bool
}

// Coordinator keeps at most one overlay visible at a time.
//
// Toggle is the user-initiated entry point and honours the animation guard.
// Closing the other overlays while opening one is a side effect and is not
// guarded. Show and Hide are direct and never consult the guard.
type Coordinator struct {
	mu          sync.Mutex
	guard       *guard.Guard
	visible     map[Surface]bool
	subscribers []func(Event)
}

// NewCoordinator returns a Coordinator in the AllClosed state.
func NewCoordinator(g *guard.Guard) *Coordinator {
	return &Coordinator{
		guard:   g,
		visible: make(map[Surface]bool, len(Surfaces)),
	}
}

// Subscribe registers fn to receive every visibility change. Subscribers run
// on the caller's goroutine after the coordinator state has settled.
func (c *Coordinator) Subscribe(fn func(Event)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Toggle flips s, closing every other open overlay first. It is a no-op while
// the guard reports a running animation and reports whether it was accepted.
func (c *Coordinator) Toggle(s Surface) bool {
	return c.toggle(s, c.guard.IsRunning)
}

// ToggleAnimated is Toggle for transitions that take time. Accepting the
// request and starting the guard happen as one step under the lock. The
// caller ends the guard when the transition completes.
func (c *Coordinator) ToggleAnimated(s Surface) bool {
	return c.toggle(s, func() bool { return !c.guard.TryBegin() })
}

// toggle runs busy under the lock and drops the request when it reports true.
func (c *Coordinator) toggle(s Surface, busy func() bool) bool {
	c.mu.Lock()
	if busy() {
		c.mu.Unlock()
		slog.Debug("overlay toggle dropped", slog.String("surface", s.String()))
		return false
	}
	events := c.closeOthersLocked(s)
	open := !c.visible[s]
	c.visible[s] = open
	events = append(events, Event{Surface: s, Visible: open})
	subs := c.subscribersLocked()
	c.mu.Unlock()

	c.publish(subs, events)
	return true
}

// Show makes s visible and closes every other overlay.
func (c *Coordinator) Show(s Surface) {
	c.mu.Lock()
	events := c.closeOthersLocked(s)
	if !c.visible[s] {
		c.visible[s] = true
		events = append(events, Event{Surface: s, Visible: true})
	}
	subs := c.subscribersLocked()
	c.mu.Unlock()

	c.publish(subs, events)
}

// Hide closes s. Hiding a hidden surface does nothing.
func (c *Coordinator) Hide(s Surface) {
	c.mu.Lock()
	if !c.visible[s] {
		c.mu.Unlock()
		return
	}
	c.visible[s] = false
	subs := c.subscribersLocked()
	c.mu.Unlock()

	c.publish(subs, []Event{{Surface: s, Visible: false}})
}

// HideAll closes every open overlay.
func (c *Coordinator) HideAll() {
	for _, s := range Surfaces {
		c.Hide(s)
	}
}

// IsVisible reports whether s is open.
func (c *Coordinator) IsVisible(s Surface) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible[s]
}

// AnyVisible reports whether some overlay is open.
func (c *Coordinator) AnyVisible() bool {
	_, ok := c.Current()
	return ok
}

// Current returns the open overlay. The second value is false in the
// AllClosed state.
func (c *Coordinator) Current() (Surface, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range Surfaces {
		if c.visible[s] {
			return s, true
		}
	}
	return 0, false
}

func (c *Coordinator) closeOthersLocked(keep Surface) []Event {
	var events []Event
	for _, s := range Surfaces {
		if s == keep || !c.visible[s] {
			continue
		}
		c.visible[s] = false
		events = append(events, Event{Surface: s, Visible: false})
	}
	return events
}

func (c *Coordinator) subscribersLocked() []func(Event) {
	subs := make([]func(Event), len(c.subscribers))
	copy(subs, c.subscribers)
	return subs
}

func (c *Coordinator) publish(subs []func(Event), events []Event) {
	for _, ev := range events {
		slog.Debug("overlay changed", slog.String("surface", ev.Surface.String()), slog.Bool("visible", ev.Visible))
		for _, fn := range subs {
			fn(ev)
		}
	}
}
