package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings the UI handles itself. Overlay
// toggles are decided by keys.Router; their bindings here exist for help.
type keyMap struct {
	// Global
	Quit key.Binding

	// Overlay toggles
	QuickLaunch key.Binding
	Settings    key.Binding
	Weather     key.Binding
	Search      key.Binding
	Close       key.Binding

	// Grid and list navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Confirm    key.Binding
	Complete   key.Binding
	Change     key.Binding
	CycleTheme key.Binding
	Refresh    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),

		QuickLaunch: key.NewBinding(
			key.WithKeys("alt+e"),
			key.WithHelp("alt+e", "Quick launch"),
		),
		Settings: key.NewBinding(
			key.WithKeys("alt+s"),
			key.WithHelp("alt+s", "Settings"),
		),
		Weather: key.NewBinding(
			key.WithKeys("alt+x"),
			key.WithHelp("alt+x", "Weather"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("type", "Search the web"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close / quick launch"),
		),

		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Move right"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Complete from history"),
		),
		Change: key.NewBinding(
			key.WithKeys("enter", " ", "left", "right"),
			key.WithHelp("enter/space", "Change setting"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh weather"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.QuickLaunch, k.Search, k.Settings, k.Weather, k.Quit}
}

// FullHelp returns key bindings for the settings dashboard.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Overlays
		{k.QuickLaunch, k.Search, k.Weather, k.Settings, k.Close},
		// Navigation
		{k.Up, k.Down, k.Left, k.Right, k.Confirm},
		// General
		{k.Complete, k.Change, k.CycleTheme, k.Refresh, k.Quit},
	}
}
