package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/five82/newtab/internal/browser"
	"github.com/five82/newtab/internal/config"
	"github.com/five82/newtab/internal/prefs"
	"github.com/five82/newtab/internal/state"
	"github.com/five82/newtab/internal/ui"
	"github.com/five82/newtab/internal/weather"
)

// Options configure the newtab application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/newtab/prefs.toml
	LogPath    string // empty uses default ~/.local/state/newtab/newtab.log
	Debug      bool
}

// Run boots the newtab TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	closer, err := initLogger(opts.LogPath, level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = closer.Close() }()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	client, err := weather.NewClient(weather.Options{
		BaseURL:  cfg.Weather.BaseURL,
		Location: cfg.Weather.Location,
		Units:    weather.Units(cfg.Weather.Units),
	})
	if err != nil {
		return fmt.Errorf("init weather client: %w", err)
	}

	store := &state.Store{}

	slog.Info("starting newtab",
		slog.Int("sites", len(cfg.Sites)),
		slog.String("theme", userPrefs.Theme),
		slog.Duration("animation", cfg.AnimationDuration()),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runPoller(gctx, store, client, cfg.WeatherInterval())
	})
	g.Go(func() error {
		// Quitting the UI stops the poller.
		defer cancel()
		return ui.Run(ui.Options{
			Context:   gctx,
			Store:     store,
			Weather:   client,
			Config:    cfg,
			Prefs:     userPrefs,
			PrefsPath: prefsPath,
			Sink:      browser.New(),
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
