package ui

import "github.com/charmbracelet/lipgloss"

// renderKeyHelp renders every binding in columns for the settings dashboard.
func (m Model) renderKeyHelp() string {
	styles := m.theme.Styles()
	h := m.help
	h.ShowAll = true
	h.Width = m.panelWidth() - 6

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", h.View(m.keys))
}

// renderFooter renders the status message, or the short help when there is none.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.status != "" {
		return styles.Footer.Render(styles.WarningText.Render(m.status))
	}
	return styles.Footer.Render(m.help.View(m.keys))
}
