// Package keys routes key presses to overlay actions.
package keys

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/five82/newtab/internal/overlay"
)

// Key names shared with Bubble Tea's KeyMsg.String output.
const (
	Alt       = "alt"
	Ctrl      = "ctrl"
	Shift     = "shift"
	Escape    = "esc"
	Backspace = "backspace"
	Enter     = "enter"
)

// ActionKind says what the caller should do with a routed key.
type ActionKind int

const (
	// Ignore leaves the key to whichever overlay owns focus.
	Ignore ActionKind = iota
	// Toggle flips Surface through the coordinator (guarded).
	Toggle
	// Close hides Surface.
	Close
	// OpenSearch opens the search box seeded with Seed.
	OpenSearch
)

// Action is the outcome of a key press.
type Action struct {
	Kind    ActionKind
	Surface overlay.Surface
	Seed    string
}

// Overlays is the read side of the overlay coordinator.
type Overlays interface {
	IsVisible(overlay.Surface) bool
	AnyVisible() bool
}

var altToggles = map[string]overlay.Surface{
	"s": overlay.SettingsDashboard,
	"e": overlay.QuickLaunchMenu,
	"x": overlay.WeatherPanel,
}

// escapeOrder is the fixed priority in which Escape closes overlays.
var escapeOrder = []overlay.Surface{
	overlay.SearchBox,
	overlay.SettingsDashboard,
	overlay.WeatherPanel,
}

// Router consumes one key-down at a time. It remembers held keys only for
// modifier checks; key-up clears them.
type Router struct {
	overlays Overlays
	query    func() string
	held     map[string]bool
}

// NewRouter builds a Router. query returns the current search box text and
// may be nil when there is no search box.
func NewRouter(overlays Overlays, query func() string) *Router {
	if query == nil {
		query = func() string { return "" }
	}
	return &Router{
		overlays: overlays,
		query:    query,
		held:     make(map[string]bool),
	}
}

// KeyDown records name as held and returns the action it triggers.
func (r *Router) KeyDown(name string) Action {
	name = normalize(name)
	if name == "" {
		return Action{}
	}
	r.held[name] = true
	if isModifier(name) {
		return Action{}
	}

	if r.held[Alt] {
		if s, ok := altToggles[strings.ToLower(name)]; ok {
			return Action{Kind: Toggle, Surface: s}
		}
		return Action{}
	}
	if r.held[Ctrl] {
		return Action{}
	}

	if name == Escape {
		for _, s := range escapeOrder {
			if r.overlays.IsVisible(s) {
				return Action{Kind: Close, Surface: s}
			}
		}
		return Action{Kind: Toggle, Surface: overlay.QuickLaunchMenu}
	}

	if r.overlays.IsVisible(overlay.SearchBox) {
		if (name == Backspace || name == Enter) && r.query() == "" {
			return Action{Kind: Close, Surface: overlay.SearchBox}
		}
		return Action{}
	}

	if r.overlays.AnyVisible() {
		return Action{}
	}
	if name == Backspace {
		return Action{Kind: OpenSearch}
	}
	if isPrintable(name) {
		return Action{Kind: OpenSearch, Seed: name}
	}
	return Action{}
}

// Text routes a burst of runes delivered as one event, as terminals do for
// fast typing and input methods. On the base layer a fully printable burst
// opens the search box seeded with the whole text.
func (r *Router) Text(text string) Action {
	if text == "" || r.held[Alt] || r.held[Ctrl] || r.overlays.AnyVisible() {
		return Action{}
	}
	for _, c := range text {
		if !unicode.IsPrint(c) {
			return Action{}
		}
	}
	return Action{Kind: OpenSearch, Seed: text}
}

// KeyUp releases name.
func (r *Router) KeyUp(name string) {
	delete(r.held, normalize(name))
}

// Held reports whether name is currently down.
func (r *Router) Held(name string) bool {
	return r.held[normalize(name)]
}

// Reset forgets every held key. Used when focus leaves the terminal.
func (r *Router) Reset() {
	clear(r.held)
}

// Press routes a chord such as "alt+e" by synthesising the down/up sequence
// a key-up capable toolkit would deliver: modifiers down, key down, key up,
// modifiers up.
func (r *Router) Press(chord string) Action {
	mods, key := Split(chord)
	for _, m := range mods {
		r.KeyDown(m)
	}
	action := r.KeyDown(key)
	r.KeyUp(key)
	for i := len(mods) - 1; i >= 0; i-- {
		r.KeyUp(mods[i])
	}
	return action
}

// Split separates a chord into modifiers and the final key. A lone "+" is a key.
func Split(chord string) ([]string, string) {
	if chord == "" || chord == "+" {
		return nil, chord
	}
	parts := strings.Split(chord, "+")
	if strings.HasSuffix(chord, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}
	var mods []string
	for _, p := range parts[:len(parts)-1] {
		if isModifier(normalize(p)) {
			mods = append(mods, normalize(p))
			continue
		}
		// Not a modifier chord (e.g. a literal key containing '+').
		return nil, chord
	}
	return mods, parts[len(parts)-1]
}

func normalize(name string) string {
	switch name {
	case "escape":
		return Escape
	case "space":
		return " "
	}
	if isModifier(strings.ToLower(name)) {
		return strings.ToLower(name)
	}
	return name
}

func isModifier(name string) bool {
	return name == Alt || name == Ctrl || name == Shift
}

func isPrintable(name string) bool {
	if utf8.RuneCountInString(name) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsPrint(r)
}
