package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/newtab/internal/overlay"
)

var overlayTitles = map[overlay.Surface]string{
	overlay.QuickLaunchMenu:   "Quick Launch",
	overlay.SearchBox:         "Search",
	overlay.WeatherPanel:      "Weather",
	overlay.SettingsDashboard: "Settings",
}

// renderOverlay frames the open overlay and centers it. The border dims while
// the open/close transition is running.
func (m Model) renderOverlay(surface overlay.Surface) string {
	styles := m.theme.Styles()

	var content string
	switch surface {
	case overlay.QuickLaunchMenu:
		content = m.renderLauncher()
	case overlay.SearchBox:
		content = m.renderSearch()
	case overlay.WeatherPanel:
		content = m.renderWeather()
	case overlay.SettingsDashboard:
		content = m.renderSettings()
	}

	panel := styles.Panel
	if m.session.guard.IsRunning() {
		panel = styles.PanelAnimating
	}
	if surface != overlay.QuickLaunchMenu {
		panel = panel.Width(m.panelWidth())
	}

	title := styles.AccentText.Bold(true).Render(overlayTitles[surface])
	framed := panel.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content))

	if surface == overlay.QuickLaunchMenu {
		// The launcher sits under the (revealed) home header.
		framed = lipgloss.JoinVertical(lipgloss.Center, m.renderHero(), "", framed)
	}

	return lipgloss.Place(
		m.width,
		m.bodyHeight(),
		lipgloss.Center,
		lipgloss.Center,
		framed,
		lipgloss.WithWhitespaceChars(" "),
	)
}

// panelWidth is the width of every overlay except the launcher grid.
func (m Model) panelWidth() int {
	w := m.width - 4
	if w > PanelMaxWidth {
		w = PanelMaxWidth
	}
	if w < PanelMinWidth {
		w = PanelMinWidth
	}
	return w
}
