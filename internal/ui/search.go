package ui

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/five82/newtab/internal/browser"
	"github.com/five82/newtab/internal/overlay"
)

// handleSearchKey processes keyboard input for the search box. Empty-query
// enter and backspace never get here; the router closes the box for those.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		cmd := m.submitSearch()
		return m, cmd
	case key.Matches(msg, m.keys.Complete):
		if suggestions := m.suggestions(); len(suggestions) > 0 {
			m.searchInput.SetValue(suggestions[0])
			m.searchInput.CursorEnd()
			m.session.searchQuery = m.searchInput.Value()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.session.searchQuery = m.searchInput.Value()
	return m, cmd
}

// submitSearch sends the query to the configured engine, remembers it and
// hides the box.
func (m *Model) submitSearch() tea.Cmd {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		return nil
	}
	target := browser.SearchURL(m.config.SearchEngine, query)
	if m.sink != nil {
		if err := m.sink.NavigateTo(target); err != nil {
			slog.Warn("search failed", slog.String("url", target), slog.String("error", err.Error()))
			m.status = "Search failed: " + err.Error()
			return nil
		}
	}

	m.prefs = m.prefs.Remember(query)
	m.savePrefs()
	m.status = ""
	m.session.overlays.Hide(overlay.SearchBox)
	return m.syncFocus()
}

// suggestions ranks the search history against the current input. With an
// empty input the most recent queries come first.
func (m Model) suggestions() []string {
	history := m.prefs.History
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		if len(history) > SuggestionLimit {
			return history[:SuggestionLimit]
		}
		return history
	}

	matches := fuzzy.Find(query, history)
	out := make([]string, 0, SuggestionLimit)
	for _, match := range matches {
		if match.Str == query {
			continue
		}
		out = append(out, match.Str)
		if len(out) == SuggestionLimit {
			break
		}
	}
	return out
}

// renderSearch renders the input, history suggestions and the engine host.
func (m Model) renderSearch() string {
	styles := m.theme.Styles()
	width := m.panelWidth() - 6

	lines := []string{m.searchInput.View(), ""}
	suggestions := m.suggestions()
	for i, s := range suggestions {
		style := styles.MutedText
		prefix := "  "
		if i == 0 && strings.TrimSpace(m.searchInput.Value()) != "" {
			style = styles.AccentText
			prefix = "⇥ "
		}
		lines = append(lines, style.Render(prefix+truncateLabel(s, width-2)))
	}
	if len(suggestions) == 0 {
		lines = append(lines, styles.FaintText.Render("No recent searches"))
	}
	lines = append(lines, "", styles.FaintText.Render("enter to search "+engineHost(m.config.SearchEngine)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func engineHost(template string) string {
	u, err := url.Parse(strings.Replace(template, "%s", "", 1))
	if err != nil || u.Host == "" {
		return "the web"
	}
	return strings.TrimPrefix(u.Host, "www.")
}
