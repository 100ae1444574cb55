package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/newtab/internal/keys"
	"github.com/five82/newtab/internal/menu"
	"github.com/five82/newtab/internal/overlay"
)

// handleKey routes a key press. Overlay toggles come from keys.Router;
// keys it ignores go to whichever overlay is open.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	var action keys.Action
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 1 {
		// Bursts and pastes arrive as one message; String() would bracket a paste.
		action = m.session.router.Text(string(msg.Runes))
	} else {
		action = m.session.router.Press(msg.String())
	}

	var cmd tea.Cmd
	switch action.Kind {
	case keys.Toggle:
		cmd = m.session.toggle(action.Surface)
	case keys.Close:
		m.session.overlays.Hide(action.Surface)
	case keys.OpenSearch:
		cmd = m.openSearch(action.Seed)
	default:
		return m.handleOverlayKey(msg)
	}
	focus := m.syncFocus()
	return m, tea.Batch(cmd, focus)
}

// handleOverlayKey processes keys the router left to the open overlay.
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current, ok := m.session.overlays.Current()
	if !ok {
		return m, nil
	}
	switch current {
	case overlay.QuickLaunchMenu:
		return m.handleLauncherKey(msg)
	case overlay.SearchBox:
		return m.handleSearchKey(msg)
	case overlay.SettingsDashboard:
		return m.handleSettingsKey(msg)
	case overlay.WeatherPanel:
		return m.handleWeatherKey(msg)
	}
	return m, nil
}

// openSearch opens the search box through the guarded toggle and seeds it
// with the key that opened it.
func (m *Model) openSearch(seed string) tea.Cmd {
	cmd := m.session.toggle(overlay.SearchBox)
	if !m.session.overlays.IsVisible(overlay.SearchBox) {
		return cmd
	}
	focus := m.syncFocus()
	if seed != "" {
		m.searchInput.SetValue(seed)
		m.searchInput.CursorEnd()
		m.session.searchQuery = m.searchInput.Value()
	}
	return tea.Batch(cmd, focus)
}

// syncFocus reconciles input focus with the coordinator after anything that
// may have opened or closed an overlay.
func (m *Model) syncFocus() tea.Cmd {
	current, ok := m.session.overlays.Current()
	if ok == m.hasFocused && current == m.focused {
		return nil
	}
	m.focused, m.hasFocused = current, ok

	m.launcherInput.Blur()
	m.launcherInput.Reset()
	m.searchInput.Blur()
	m.searchInput.Reset()
	m.session.searchQuery = ""
	m.session.nav.SetQuery("")
	if !ok {
		return nil
	}

	switch current {
	case overlay.QuickLaunchMenu:
		return m.launcherInput.Focus()
	case overlay.SearchBox:
		return m.searchInput.Focus()
	case overlay.SettingsDashboard:
		m.settingsRow = 0
	case overlay.WeatherPanel:
		if m.store != nil {
			return fetchSnapshotCmd(m.store)
		}
	}
	return nil
}

// handleMouse feeds presses and drags to the gesture recognizer and treats
// a release without a swipe as a click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s := m.session

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		return m.scrollLauncher(menu.Up)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		return m.scrollLauncher(menu.Down)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = s.surfaceAt()
		s.swiped = false
		s.gestures.TouchStart(m.dragging, msg.X, msg.Y)
		return m, nil

	case msg.Action == tea.MouseActionMotion && m.dragging != "":
		s.gestures.TouchMove(m.dragging, msg.X, msg.Y)
		cmd := s.drain()
		focus := m.syncFocus()
		return m, tea.Batch(cmd, focus)

	case msg.Action == tea.MouseActionRelease && m.dragging != "":
		s.gestures.Cancel(m.dragging)
		m.dragging = ""
		if s.swiped {
			s.swiped = false
			return m, nil
		}
		return m.handleClick(msg)
	}

	return m, nil
}

// handleClick resolves a click against the zones rendered in the last frame.
func (m Model) handleClick(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	current, open := m.session.overlays.Current()
	if !open {
		for _, surface := range overlay.Surfaces {
			if m.inZone(zoneDock+surface.String(), msg) {
				cmd := m.session.toggle(surface)
				focus := m.syncFocus()
				return m, tea.Batch(cmd, focus)
			}
		}
		return m, nil
	}

	switch current {
	case overlay.QuickLaunchMenu:
		for i := range m.session.nav.Visible() {
			if m.inZone(zoneTile+strconv.Itoa(i), msg) {
				m.session.nav.Focus(i)
				cmd := m.activateFocused()
				return m, cmd
			}
		}
	case overlay.SettingsDashboard:
		for i, row := range settingRows {
			if m.inZone(zoneSetting+strconv.Itoa(i), msg) {
				m.settingsRow = i
				m.changeSetting(row)
				return m, nil
			}
		}
	}
	return m, nil
}

func (m Model) scrollLauncher(dir menu.Direction) (tea.Model, tea.Cmd) {
	if m.session.overlays.IsVisible(overlay.QuickLaunchMenu) {
		m.session.nav.Move(dir)
	}
	return m, nil
}

func (m Model) inZone(id string, msg tea.MouseMsg) bool {
	zi := zone.Get(m.zoneID + id)
	return zi != nil && zi.InBounds(msg)
}
