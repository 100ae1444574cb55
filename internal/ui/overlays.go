package ui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/newtab/internal/config"
	"github.com/five82/newtab/internal/gesture"
	"github.com/five82/newtab/internal/guard"
	"github.com/five82/newtab/internal/keys"
	"github.com/five82/newtab/internal/menu"
	"github.com/five82/newtab/internal/overlay"
)

// baseSwipes maps a swipe on the base layer to the overlay it toggles.
var baseSwipes = map[gesture.Direction]overlay.Surface{
	gesture.Up:    overlay.QuickLaunchMenu,
	gesture.Down:  overlay.WeatherPanel,
	gesture.Left:  overlay.SettingsDashboard,
	gesture.Right: overlay.SearchBox,
}

// session holds the engine components. Model is copied on every Update, so
// everything that must outlive one copy lives here behind a pointer.
type session struct {
	guard     *guard.Guard
	overlays  *overlay.Coordinator
	router    *keys.Router
	gestures  *gesture.Recognizer
	nav       *menu.Navigator
	animation time.Duration

	// searchQuery mirrors the search input for the router's empty-query rule.
	searchQuery string

	// Base layer presentation. collapsed follows the compact preference;
	// revealed is set while the quick-launch menu is open.
	collapsed bool
	revealed  bool

	// Commands produced by gesture handlers, drained after each touch event.
	pending []tea.Cmd
	// swiped is set when the current drag produced a gesture.
	swiped bool
}

func newSession(cfg config.Config, sink menu.Sink, compact bool) *session {
	s := &session{
		guard:     guard.New(),
		gestures:  gesture.NewRecognizer(),
		animation: cfg.AnimationDuration(),
		collapsed: compact,
	}
	s.overlays = overlay.NewCoordinator(s.guard)
	s.router = keys.NewRouter(s.overlays, func() string { return s.searchQuery })
	ratio := cfg.FuzzyThreshold
	s.nav = menu.New(menuEntries(cfg.Sites), menu.Options{
		Ratio:  &ratio,
		Layout: menuLayout(cfg.Grid),
		Sink:   sink,
	})
	s.overlays.Subscribe(s.onOverlayEvent)
	s.registerGestures()
	return s
}

// toggle asks the coordinator to flip surface. With transitions enabled the
// guard is claimed in the same step and released by animationDoneMsg.
func (s *session) toggle(surface overlay.Surface) tea.Cmd {
	if s.animation <= 0 {
		s.overlays.Toggle(surface)
		return nil
	}
	if !s.overlays.ToggleAnimated(surface) {
		return nil
	}
	return tea.Tick(s.animation, func(time.Time) tea.Msg {
		return animationDoneMsg{}
	})
}

// onOverlayEvent drives the base layer reveal.
func (s *session) onOverlayEvent(ev overlay.Event) {
	if ev.Surface != overlay.QuickLaunchMenu {
		return
	}
	s.revealed = ev.Visible && s.collapsed
	if s.revealed {
		slog.Debug("base layer revealed")
	}
}

func (s *session) registerGestures() {
	s.gestures.Register(baseSurface, func(dir gesture.Direction) {
		s.swiped = true
		if target, ok := baseSwipes[dir]; ok {
			s.queue(s.toggle(target))
		}
	})
	for _, surface := range overlay.Surfaces {
		s.gestures.Register(surface.String(), func(dir gesture.Direction) {
			s.swiped = true
			if dir == gesture.Down {
				s.queue(s.toggle(surface))
			}
		})
	}
}

func (s *session) queue(cmd tea.Cmd) {
	if cmd != nil {
		s.pending = append(s.pending, cmd)
	}
}

func (s *session) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// surfaceAt is the gesture surface under the pointer. An open overlay
// covers the whole screen.
func (s *session) surfaceAt() string {
	if current, ok := s.overlays.Current(); ok {
		return current.String()
	}
	return baseSurface
}

func menuEntries(sites []config.Site) []menu.Entry {
	entries := make([]menu.Entry, 0, len(sites))
	for _, site := range sites {
		entries = append(entries, menu.Entry{Label: site.Label, Icon: site.Icon, URL: site.URL})
	}
	return entries
}

func menuLayout(grid config.Grid) menu.Layout {
	return menu.Layout{
		ItemWidth:         grid.ItemWidth,
		ScrollbarWidth:    grid.ScrollbarWidth,
		MarginPercent:     grid.MarginPercent,
		SingleColumnBelow: grid.SingleColumnBelow,
	}
}
