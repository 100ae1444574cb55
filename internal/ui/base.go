package ui

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/newtab/internal/overlay"
)

var dockLabels = map[overlay.Surface]string{
	overlay.QuickLaunchMenu:   "Launch",
	overlay.SearchBox:         "Search",
	overlay.WeatherPanel:      "Weather",
	overlay.SettingsDashboard: "Settings",
}

// renderBase renders the home screen shown when no overlay is open.
func (m Model) renderBase() string {
	content := lipgloss.JoinVertical(lipgloss.Center, m.renderHero(), "", m.renderDock())
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, content)
}

// renderHero renders the clock and, unless collapsed, the greeting, date
// and weather summary.
func (m Model) renderHero() string {
	styles := m.theme.Styles()
	lines := []string{styles.Clock.Render(formatClock(m.clock, m.prefs.Clock24h))}
	if m.session.collapsed && !m.session.revealed {
		return lines[0]
	}

	lines = append(lines,
		styles.Text.Render(greeting(m.clock)),
		styles.MutedText.Render(m.clock.Format("Monday, January 2")),
	)
	if summary := m.weatherSummary(); summary != "" {
		lines = append(lines, "", styles.InfoText.Render(truncateLabel(summary, m.width-4)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// renderDock renders one clickable button per overlay.
func (m Model) renderDock() string {
	styles := m.theme.Styles()
	buttons := make([]string, 0, len(overlay.Surfaces))
	for i, surface := range overlay.Surfaces {
		if i > 0 {
			buttons = append(buttons, " ")
		}
		button := styles.DockButton.Render(dockLabels[surface])
		buttons = append(buttons, zone.Mark(m.zoneID+zoneDock+surface.String(), button))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
