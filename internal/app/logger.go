package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/five82/newtab/internal/config"
)

const logFileName = "newtab.log"

// DefaultLogPath returns $XDG_STATE_HOME/newtab/newtab.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, config.DirName, logFileName)
}

// initLogger points the default slog logger at a file, since the terminal
// belongs to the TUI. The caller closes the returned file.
func initLogger(path string, level slog.Level) (io.Closer, error) {
	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))
	slog.SetDefault(logger)

	return file, nil
}
