package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// handleWeatherKey processes keyboard input for the weather panel.
func (m Model) handleWeatherKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Refresh) && m.fetcher != nil && m.store != nil && !m.refreshing {
		m.refreshing = true
		return m, refreshWeatherCmd(m.ctx, m.fetcher, m.store)
	}
	return m, nil
}

// weatherLoading reports whether no report or error has arrived yet.
func (m Model) weatherLoading() bool {
	return m.refreshing || (!m.snapshot.HasReport && m.snapshot.LastError == nil)
}

// renderWeather renders the latest report with its age and any poll error.
func (m Model) renderWeather() string {
	styles := m.theme.Styles()
	snap := m.snapshot
	width := m.panelWidth() - 6
	labelStyle := styles.MutedText.Width(13)

	var lines []string
	if m.weatherLoading() {
		lines = append(lines, m.spinner.View()+" "+styles.MutedText.Render("Fetching weather…"))
	}
	if snap.HasReport {
		r := snap.Report
		rows := []struct{ label, value string }{
			{"Location", r.Location},
			{"Conditions", r.Condition},
			{"Temperature", r.Temperature},
			{"Wind", r.Wind},
			{"Humidity", r.Humidity},
		}
		for _, row := range rows {
			if strings.TrimSpace(row.value) == "" {
				continue
			}
			lines = append(lines, labelStyle.Render(row.label)+styles.Text.Render(truncateLabel(row.value, width-13)))
		}
		if !r.FetchedAt.IsZero() {
			lines = append(lines, "", styles.FaintText.Render("Updated "+humanize.Time(r.FetchedAt)))
		}
	}
	if snap.LastError != nil {
		prefix := "Error: "
		if snap.IsOffline() {
			prefix = "Offline: "
		}
		lines = append(lines, "", styles.DangerText.Render(truncateLabel(prefix+snap.LastError.Error(), width)))
	}
	if m.fetcher != nil {
		lines = append(lines, "", styles.FaintText.Render("r to refresh"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// weatherSummary is the one-line report shown on the base layer.
func (m Model) weatherSummary() string {
	if !m.snapshot.HasReport {
		return ""
	}
	r := m.snapshot.Report
	parts := make([]string, 0, 3)
	for _, v := range []string{r.Location, r.Condition, r.Temperature} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " · ")
}
