package ui

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/newtab/internal/menu"
	"github.com/five82/newtab/internal/overlay"
)

// handleLauncherKey processes keyboard input for the quick-launch menu.
// Arrows move the grid cursor, enter activates, anything else edits the filter.
func (m Model) handleLauncherKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := m.session.nav
	switch {
	case key.Matches(msg, m.keys.Left):
		nav.Move(menu.Left)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		nav.Move(menu.Right)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		nav.Move(menu.Up)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		nav.Move(menu.Down)
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		cmd := m.activateFocused()
		return m, cmd
	}

	var cmd tea.Cmd
	m.launcherInput, cmd = m.launcherInput.Update(msg)
	if query := m.launcherInput.Value(); query != nav.Query() {
		nav.SetQuery(query)
	}
	return m, cmd
}

// activateFocused opens the focused entry and hides the menu.
func (m *Model) activateFocused() tea.Cmd {
	entry, ok := m.session.nav.Selected()
	if !ok {
		return nil
	}
	if !m.session.nav.Activate() {
		m.status = "Could not open " + entry.Label
		return nil
	}
	slog.Info("site opened", slog.String("label", entry.Label))
	m.status = ""
	m.session.overlays.Hide(overlay.QuickLaunchMenu)
	return m.syncFocus()
}

// renderLauncher renders the filter input above the site grid.
func (m Model) renderLauncher() string {
	styles := m.theme.Styles()
	nav := m.session.nav
	entries := nav.Visible()
	cursor := nav.Cursor()

	cols := cursor.Columns
	if cols < 1 {
		cols = 1
	}
	width := m.tileWidth()

	var grid string
	if len(entries) == 0 {
		grid = styles.MutedText.Render("No matching sites")
	} else {
		rows := make([]string, 0, len(entries)/cols+1)
		row := make([]string, 0, cols)
		for i, entry := range entries {
			style := styles.Tile
			if i == cursor.Index {
				style = styles.Selected
			}
			label := truncateLabel(tileLabel(entry), width-2)
			tile := zone.Mark(m.zoneID+zoneTile+strconv.Itoa(i), style.Width(width).Render(label))
			row = append(row, tile)
			if len(row) == cols {
				rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
				row = row[:0]
			}
		}
		if len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
		grid = lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	count := styles.FaintText.Render(strconv.Itoa(len(entries)) + " of " + strconv.Itoa(len(nav.Entries())) + " sites")
	return lipgloss.JoinVertical(lipgloss.Left,
		m.launcherInput.View(),
		"",
		grid,
		"",
		count,
	)
}

// tileWidth is the rendered width of one grid cell.
func (m Model) tileWidth() int {
	if w := m.config.Grid.ItemWidth; w > 4 {
		return w
	}
	return menu.DefaultLayout().ItemWidth
}

func tileLabel(entry menu.Entry) string {
	if entry.Icon == "" {
		return entry.Label
	}
	return entry.Icon + " " + entry.Label
}
