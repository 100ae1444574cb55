// Package ui provides the Bubble Tea terminal interface for newtab.
//
// # Architecture Overview
//
// The home screen is a base layer (clock, greeting, date, weather summary
// and a dock of buttons) with four overlays on top of it: the quick-launch
// menu, the search box, the weather panel and the settings dashboard. At
// most one overlay is open at a time; overlay.Coordinator owns that state
// and this package only renders it.
//
// # Package Structure
//
//   - app.go: Model, Init/Update/View and the Run entry point
//   - overlays.go: engine wiring (guard, coordinator, router, gestures, menu)
//   - input_handlers.go: key routing, focus reconciliation, mouse and gestures
//   - navigation.go: quick-launch filter and grid
//   - search.go: web search box with fuzzy-ranked history
//   - weather.go: weather panel and base-layer summary
//   - settings.go: preference rows persisted through prefs.Save
//   - base.go, modal.go: base layer and overlay framing
//
// # Input Flow
//
// Every key press goes through keys.Router first. Toggle actions call the
// coordinator's guarded Toggle; when it is accepted the animation guard is
// held for the configured duration and released by animationDoneMsg. Keys
// the router ignores fall through to the open overlay.
//
// Mouse presses start a gesture on the surface under the pointer (the open
// overlay covers the whole screen, otherwise the base layer). The first drag
// motion classifies the swipe. A release without a swipe is a click and is
// resolved against bubblezone marks from the last frame.
//
// # Event Flow
//
//  1. Run() builds the Model and starts the program with mouse cell motion
//  2. A one second tick refreshes the clock and pulls a state.Store snapshot
//  3. Input mutates the session components shared by every Model copy
//  4. syncFocus reconciles text input focus with the open overlay
//  5. Context cancellation stops the program
package ui
