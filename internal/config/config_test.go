package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Defaults()
	if cfg.SearchEngine != want.SearchEngine {
		t.Fatalf("SearchEngine = %q, want %q", cfg.SearchEngine, want.SearchEngine)
	}
	if len(cfg.Sites) != len(want.Sites) {
		t.Fatalf("len(Sites) = %d, want %d", len(cfg.Sites), len(want.Sites))
	}
	if cfg.FuzzyThreshold != defaultFuzzyThreshold {
		t.Fatalf("FuzzyThreshold = %v, want %v", cfg.FuzzyThreshold, defaultFuzzyThreshold)
	}
	if cfg.Grid != want.Grid {
		t.Fatalf("Grid = %#v, want %#v", cfg.Grid, want.Grid)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := writeConfig(t, `
search_engine = "  https://example.com/search?q=%s  "
fuzzy_threshold = 0.5
animation_ms = 100

[weather]
location = "  Oslo "
units = "IMPERIAL"
refresh_minutes = 30

[grid]
item_width = 20
margin_percent = 5

[[sites]]
label = "  Github "
url = " https://github.com "

[[sites]]
label = "no url"
url = "   "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SearchEngine != "https://example.com/search?q=%s" {
		t.Fatalf("SearchEngine = %q", cfg.SearchEngine)
	}
	if cfg.FuzzyThreshold != 0.5 {
		t.Fatalf("FuzzyThreshold = %v, want 0.5", cfg.FuzzyThreshold)
	}
	if got := cfg.AnimationDuration(); got != 100*time.Millisecond {
		t.Fatalf("AnimationDuration = %v, want 100ms", got)
	}
	if cfg.Weather.Location != "Oslo" || cfg.Weather.Units != "imperial" {
		t.Fatalf("Weather = %#v, want Oslo/imperial", cfg.Weather)
	}
	if got := cfg.WeatherInterval(); got != 30*time.Minute {
		t.Fatalf("WeatherInterval = %v, want 30m", got)
	}
	if cfg.Grid.ItemWidth != 20 || cfg.Grid.MarginPercent != 5 {
		t.Fatalf("Grid = %#v, want item_width=20 margin_percent=5", cfg.Grid)
	}
	if cfg.Grid.ScrollbarWidth != Defaults().Grid.ScrollbarWidth {
		t.Fatalf("ScrollbarWidth = %d, want default", cfg.Grid.ScrollbarWidth)
	}
	if len(cfg.Sites) != 1 || cfg.Sites[0] != (Site{Label: "Github", URL: "https://github.com"}) {
		t.Fatalf("Sites = %#v, want single trimmed Github entry", cfg.Sites)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	path := writeConfig(t, `
search_engine = "   "
[weather]
units = "kelvin"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SearchEngine != defaultSearchEngine {
		t.Fatalf("SearchEngine = %q, want %q", cfg.SearchEngine, defaultSearchEngine)
	}
	if cfg.Weather.Units != defaultUnits {
		t.Fatalf("Units = %q, want %q", cfg.Weather.Units, defaultUnits)
	}
	if len(cfg.Sites) == 0 {
		t.Fatalf("Sites empty, want defaults")
	}
}

func TestLoad_NegativeAnimationDisables(t *testing.T) {
	cfg, err := Load(writeConfig(t, "animation_ms = -1\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AnimationDuration() != 0 {
		t.Fatalf("AnimationDuration = %v, want 0", cfg.AnimationDuration())
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, `search_engine = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `search_engine = "https://env.example/?q=%s"`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SearchEngine != "https://env.example/?q=%s" {
		t.Fatalf("SearchEngine = %q, want env config value", cfg.SearchEngine)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestDefaultPath_UnderXDGConfig(t *testing.T) {
	got := DefaultPath()
	if !strings.HasSuffix(got, filepath.Join(DirName, "config.toml")) {
		t.Fatalf("DefaultPath = %q, want it to end with newtab/config.toml", got)
	}
}

func TestLoad_FuzzyThresholdKeepsZeroAndNegative(t *testing.T) {
	tests := []struct {
		body string
		want float64
	}{
		{"fuzzy_threshold = 0.0\n", 0},
		{"fuzzy_threshold = -0.5\n", -0.5},
		{"search_engine = \"https://example.com/?q=%s\"\n", defaultFuzzyThreshold},
	}
	for _, tt := range tests {
		cfg, err := Load(writeConfig(t, tt.body))
		if err != nil {
			t.Fatalf("Load(%q) returned error: %v", tt.body, err)
		}
		if cfg.FuzzyThreshold != tt.want {
			t.Fatalf("Load(%q).FuzzyThreshold = %v, want %v", tt.body, cfg.FuzzyThreshold, tt.want)
		}
	}
}
