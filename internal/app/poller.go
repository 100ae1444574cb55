package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/newtab/internal/state"
	"github.com/five82/newtab/internal/weather"
)

const (
	defaultPollInterval = 15 * time.Minute
	maxBackoff          = time.Hour
)

// runPoller refreshes the store at a fixed cadence until ctx is cancelled.
// Consecutive failures back off exponentially up to maxBackoff.
func runPoller(ctx context.Context, store *state.Store, client weather.Fetcher, interval time.Duration) error {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	failures := 0
	for {
		if refresh(ctx, store, client) {
			failures = 0
		} else {
			failures++
		}

		timer := time.NewTimer(calculateBackoff(failures, interval))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// calculateBackoff doubles the base interval per consecutive failure, capped
// at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

func refresh(ctx context.Context, store *state.Store, client weather.Fetcher) bool {
	report, err := client.Fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		store.Update(nil, err)
		slog.Warn("weather poll failed", slog.String("error", err.Error()))
		return false
	}
	store.Update(&report, nil)
	slog.Debug("weather updated", slog.String("location", report.Location))
	return true
}
