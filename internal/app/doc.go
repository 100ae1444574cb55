// Package app provides the orchestration layer for newtab.
//
// # Overview
//
// This package wires configuration, preferences, logging, the weather poller
// and the UI together. It is the composition root: every long-lived
// dependency is created here and handed to the packages that use it.
//
// # Startup
//
//  1. Point slog at $XDG_STATE_HOME/newtab/newtab.log (the TUI owns stdout)
//  2. Load config.toml, falling back to defaults when it does not exist
//  3. Load prefs.toml (theme, clock, compact, search history)
//  4. Build the weather client and the shared state.Store
//  5. Run the poller and the Bubble Tea program in one errgroup
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> initLogger()        slog file handler
//	       ├─────> config.Load()       sites, engine, weather, grid
//	       ├─────> prefs.Load()        user preferences
//	       ├─────> weather.NewClient() wttr.in client
//	       ├─────> runPoller()         background refresh (errgroup)
//	       └─────> ui.Run()            TUI (errgroup, cancels poller on exit)
//
// # Polling Behavior
//
// The poller refreshes the weather report every refresh_minutes (default 15).
// Failures are logged and recorded in the store, and the next attempt is
// delayed with exponential backoff capped at one hour. The UI reads
// snapshots from the store on its own one second tick.
//
// # Error Handling
//
// Fatal errors (returned from Run): an unparsable config file, an invalid
// weather base URL, or a log file that cannot be created. Weather failures
// never stop the program.
package app
