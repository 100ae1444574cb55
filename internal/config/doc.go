// Package config loads the newtab configuration file.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. An explicit path argument (tilde expanded)
//  2. The NEWTAB_CONFIG environment variable (a .env file is honoured)
//  3. $XDG_CONFIG_HOME/newtab/config.toml
//
// A missing file is not an error: Defaults are returned. Fields that are
// missing, blank or out of range in the file keep their default values.
//
// # TOML Format
//
//	search_engine = "https://duckduckgo.com/?q=%s"
//	fuzzy_threshold = 1.0   # quick-launch filter strictness
//	animation_ms = 250      # overlay transition; negative disables
//
//	[weather]
//	location = ""           # empty lets the provider geolocate
//	units = "metric"        # metric or imperial
//	refresh_minutes = 15
//
//	[grid]
//	item_width = 18
//	scrollbar_width = 1
//	margin_percent = 10
//	single_column_below = 40
//
//	[[sites]]
//	label = "Github"
//	icon = ""
//	url = "https://github.com"
//
// Sites without a label or url are dropped. If no usable site remains the
// built-in list is kept.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files and TOML
// parse errors. The config is read once at startup; the returned Config is a
// plain value with no global state.
package config
