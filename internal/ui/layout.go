package ui

import "time"

// Overlay panel geometry, in cells.
const (
	// PanelMaxWidth caps overlays other than the quick-launch grid.
	PanelMaxWidth = 60

	// PanelMinWidth keeps overlays readable in narrow terminals.
	PanelMinWidth = 24

	// SuggestionLimit is the number of history suggestions under the search box.
	SuggestionLimit = 5
)

// Timing constants.
const (
	// DefaultUIInterval is the clock and snapshot refresh interval.
	DefaultUIInterval = time.Second

	// WeatherRefreshTimeout bounds a manual weather refresh.
	WeatherRefreshTimeout = 10 * time.Second
)

// Gesture surface id of the base layer. Overlays use Surface.String().
const baseSurface = "base"

// Zone id suffixes; each is joined with the model's zone prefix.
const (
	zoneDock    = "dock-"
	zoneTile    = "tile-"
	zoneSetting = "setting-"
)
