// Package prefs handles newtab user preferences persistence.
// Preferences are stored in $XDG_CONFIG_HOME/newtab/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for newtab.
type Prefs struct {
	Theme    string   `toml:"theme"`
	Clock24h bool     `toml:"clock_24h"`
	Compact  bool     `toml:"compact"`
	History  []string `toml:"history"`
}

const (
	defaultTheme = "Dracula"

	// MaxHistory caps the remembered search queries.
	MaxHistory = 20
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "newtab", "prefs.toml")
}

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, Clock24h: true}
}

// Load reads preferences from the given path, falling back to defaults if
// missing or unreadable.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default()
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Default()
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Default() // Graceful degradation
	}

	prefs := Default()
	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Default() // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	prefs.History = normalizeHistory(prefs.History)

	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	p.History = normalizeHistory(p.History)
	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// Remember returns a copy of p with query moved to the front of the history.
func (p Prefs) Remember(query string) Prefs {
	query = strings.TrimSpace(query)
	if query == "" {
		return p
	}
	history := make([]string, 0, len(p.History)+1)
	history = append(history, query)
	for _, h := range p.History {
		if h != query {
			history = append(history, h)
		}
	}
	p.History = normalizeHistory(history)
	return p
}

func normalizeHistory(history []string) []string {
	out := make([]string, 0, len(history))
	seen := make(map[string]bool, len(history))
	for _, h := range history {
		h = strings.TrimSpace(h)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
		if len(out) == MaxHistory {
			break
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath(), nil
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
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
