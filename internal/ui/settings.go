package ui

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/newtab/internal/prefs"
)

type settingRow int

const (
	rowTheme settingRow = iota
	rowClock
	rowCompact
)

var settingRows = []settingRow{rowTheme, rowClock, rowCompact}

func (r settingRow) label() string {
	switch r {
	case rowTheme:
		return "Theme"
	case rowClock:
		return "24-hour clock"
	case rowCompact:
		return "Compact home"
	default:
		return ""
	}
}

func (m Model) settingValue(r settingRow) string {
	switch r {
	case rowTheme:
		return m.theme.Name
	case rowClock:
		return onOff(m.prefs.Clock24h)
	case rowCompact:
		return onOff(m.prefs.Compact)
	default:
		return ""
	}
}

// handleSettingsKey processes keyboard input for the settings dashboard.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.settingsRow > 0 {
			m.settingsRow--
		}
	case key.Matches(msg, m.keys.Down):
		if m.settingsRow < len(settingRows)-1 {
			m.settingsRow++
		}
	case key.Matches(msg, m.keys.CycleTheme):
		m.changeSetting(rowTheme)
	case key.Matches(msg, m.keys.Change):
		m.changeSetting(settingRows[m.settingsRow])
	}
	return m, nil
}

// changeSetting flips or cycles one preference and persists it.
func (m *Model) changeSetting(r settingRow) {
	switch r {
	case rowTheme:
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		m.prefs.Theme = m.theme.Name
	case rowClock:
		m.prefs.Clock24h = !m.prefs.Clock24h
	case rowCompact:
		m.prefs.Compact = !m.prefs.Compact
		m.session.collapsed = m.prefs.Compact
	}
	slog.Debug("setting changed", slog.String("setting", r.label()), slog.String("value", m.settingValue(r)))
	m.savePrefs()
}

// savePrefs writes preferences, reporting failures in the footer.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		slog.Warn("save prefs failed", slog.String("path", m.prefsPath), slog.String("error", err.Error()))
		m.status = "Could not save preferences"
	}
}

// renderSettings renders the preference rows followed by the key help.
func (m Model) renderSettings() string {
	styles := m.theme.Styles()
	labelStyle := lipgloss.NewStyle().Width(18)

	rows := make([]string, 0, len(settingRows))
	for i, r := range settingRows {
		marker := "  "
		style := styles.Text
		if i == m.settingsRow {
			marker = "▸ "
			style = styles.AccentText
		}
		line := style.Render(marker+labelStyle.Render(r.label())) + styles.WarningText.Render(m.settingValue(r))
		rows = append(rows, zone.Mark(m.zoneID+zoneSetting+strconv.Itoa(i), line))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		m.renderKeyHelp(),
	)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
