package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/newtab/internal/state"
	"github.com/five82/newtab/internal/weather"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 10 * time.Minute

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 10 * time.Minute},
		{"negative failures", -1, 10 * time.Minute},
		{"one failure", 1, 20 * time.Minute},
		{"two failures", 2, 40 * time.Minute},
		{"three failures capped", 3, time.Hour}, // Would be 80m, capped to 1h
		{"many failures capped", 50, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type stubFetcher struct {
	calls  atomic.Int32
	report weather.Report
	err    error
}

func (s *stubFetcher) Fetch(context.Context) (weather.Report, error) {
	s.calls.Add(1)
	return s.report, s.err
}

func TestRefresh_UpdatesStore(t *testing.T) {
	var store state.Store
	ok := refresh(context.Background(), &store, &stubFetcher{report: weather.Report{Location: "Oslo"}})
	if !ok {
		t.Fatalf("refresh = false, want true")
	}
	if snap := store.Snapshot(); !snap.HasReport || snap.Report.Location != "Oslo" {
		t.Fatalf("snapshot = %#v, want Oslo report", snap)
	}

	ok = refresh(context.Background(), &store, &stubFetcher{err: errors.New("down")})
	if ok {
		t.Fatalf("refresh = true on error, want false")
	}
	if snap := store.Snapshot(); snap.LastError == nil || snap.Report.Location != "Oslo" {
		t.Fatalf("snapshot = %#v, want error recorded and report kept", snap)
	}
}

func TestRunPoller_StopsOnCancel(t *testing.T) {
	var store state.Store
	fetcher := &stubFetcher{report: weather.Report{Location: "Oslo"}}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- runPoller(ctx, &store, fetcher, time.Hour) }()

	deadline := time.Now().Add(2 * time.Second)
	for fetcher.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runPoller returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("runPoller did not stop after cancel")
	}
	if fetcher.calls.Load() != 1 {
		t.Fatalf("Fetch called %d times, want 1", fetcher.calls.Load())
	}
}
