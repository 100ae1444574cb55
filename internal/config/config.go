package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Site is one quick-launch entry as written in the config file.
type Site struct {
	Label string `toml:"label"`
	Icon  string `toml:"icon"`
	URL   string `toml:"url"`
}

// Weather configures the weather panel.
type Weather struct {
	Location       string `toml:"location"`
	Units          string `toml:"units"`
	RefreshMinutes int    `toml:"refresh_minutes"`
	BaseURL        string `toml:"base_url"`
}

// Grid configures the quick-launch grid geometry, in terminal cells.
type Grid struct {
	ItemWidth         int `toml:"item_width"`
	ScrollbarWidth    int `toml:"scrollbar_width"`
	MarginPercent     int `toml:"margin_percent"`
	SingleColumnBelow int `toml:"single_column_below"`
}

// Config is the resolved newtab configuration.
type Config struct {
	Sites          []Site  `toml:"sites"`
	SearchEngine   string  `toml:"search_engine"`
	FuzzyThreshold float64 `toml:"fuzzy_threshold"`
	AnimationMS    int     `toml:"animation_ms"`
	Weather        Weather `toml:"weather"`
	Grid           Grid    `toml:"grid"`
}

const (
	// DirName is the per-application directory under the XDG base dirs.
	DirName = "newtab"

	// EnvConfigPath overrides the config location when no flag is given.
	EnvConfigPath = "NEWTAB_CONFIG"

	configFileName        = "config.toml"
	defaultSearchEngine   = "https://duckduckgo.com/?q=%s"
	defaultFuzzyThreshold = 1.0
	defaultAnimationMS    = 250
	defaultUnits          = "metric"
	defaultRefreshMinutes = 15
)

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		Sites:          defaultSites(),
		SearchEngine:   defaultSearchEngine,
		FuzzyThreshold: defaultFuzzyThreshold,
		AnimationMS:    defaultAnimationMS,
		Weather: Weather{
			Units:          defaultUnits,
			RefreshMinutes: defaultRefreshMinutes,
		},
		Grid: Grid{
			ItemWidth:         18,
			ScrollbarWidth:    1,
			MarginPercent:     10,
			SingleColumnBelow: 40,
		},
	}
}

func defaultSites() []Site {
	return []Site{
		{Label: "Github", Icon: "", URL: "https://github.com"},
		{Label: "Reddit", Icon: "", URL: "https://reddit.com"},
		{Label: "Youtube", Icon: "", URL: "https://youtube.com"},
		{Label: "Wikipedia", Icon: "", URL: "https://wikipedia.org"},
		{Label: "Hacker News", Icon: "", URL: "https://news.ycombinator.com"},
		{Label: "Go Packages", Icon: "", URL: "https://pkg.go.dev"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/newtab/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, DirName, configFileName)
}

// Load locates and parses the config, falling back to defaults when missing.
// Fields left empty in the file keep their default values.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw Config
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// fuzzy_threshold may legitimately be zero or negative, so presence is
	// decided by the key rather than the value.
	var present struct {
		FuzzyThreshold *float64 `toml:"fuzzy_threshold"`
	}
	if err := toml.Unmarshal(bytes, &present); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	merge(&cfg, raw)
	if present.FuzzyThreshold != nil {
		cfg.FuzzyThreshold = *present.FuzzyThreshold
	}
	return cfg, nil
}

func merge(cfg *Config, raw Config) {
	if sites := cleanSites(raw.Sites); len(sites) > 0 {
		cfg.Sites = sites
	}
	if engine := strings.TrimSpace(raw.SearchEngine); engine != "" {
		cfg.SearchEngine = engine
	}
	if raw.AnimationMS > 0 {
		cfg.AnimationMS = raw.AnimationMS
	} else if raw.AnimationMS < 0 {
		cfg.AnimationMS = 0
	}

	cfg.Weather.Location = strings.TrimSpace(raw.Weather.Location)
	cfg.Weather.BaseURL = strings.TrimSpace(raw.Weather.BaseURL)
	switch units := strings.ToLower(strings.TrimSpace(raw.Weather.Units)); units {
	case "metric", "imperial":
		cfg.Weather.Units = units
	}
	if raw.Weather.RefreshMinutes > 0 {
		cfg.Weather.RefreshMinutes = raw.Weather.RefreshMinutes
	}

	if raw.Grid.ItemWidth > 0 {
		cfg.Grid.ItemWidth = raw.Grid.ItemWidth
	}
	if raw.Grid.ScrollbarWidth > 0 {
		cfg.Grid.ScrollbarWidth = raw.Grid.ScrollbarWidth
	}
	if raw.Grid.MarginPercent > 0 && raw.Grid.MarginPercent < 100 {
		cfg.Grid.MarginPercent = raw.Grid.MarginPercent
	}
	if raw.Grid.SingleColumnBelow > 0 {
		cfg.Grid.SingleColumnBelow = raw.Grid.SingleColumnBelow
	}
}

// cleanSites trims every field and drops entries without a label or url.
func cleanSites(sites []Site) []Site {
	out := make([]Site, 0, len(sites))
	for _, s := range sites {
		s.Label = strings.TrimSpace(s.Label)
		s.Icon = strings.TrimSpace(s.Icon)
		s.URL = strings.TrimSpace(s.URL)
		if s.Label == "" || s.URL == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// AnimationDuration is the overlay transition length. Zero disables it.
func (c Config) AnimationDuration() time.Duration {
	if c.AnimationMS <= 0 {
		return 0
	}
	return time.Duration(c.AnimationMS) * time.Millisecond
}

// WeatherInterval is the weather poll cadence.
func (c Config) WeatherInterval() time.Duration {
	if c.Weather.RefreshMinutes <= 0 {
		return defaultRefreshMinutes * time.Minute
	}
	return time.Duration(c.Weather.RefreshMinutes) * time.Minute
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
			return expandPath(env)
		}
		return DefaultPath(), nil
	}
	return expandPath(path)
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
