package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/newtab/internal/weather"
)

// Snapshot represents the latest weather data available to the UI.
type Snapshot struct {
	Report              weather.Report
	HasReport           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the provider has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored report. When err is non-nil the previous report
// is kept but the error is recorded for visibility.
func (s *Store) Update(report *weather.Report, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if report != nil {
		s.snapshot.Report = *report
		s.snapshot.HasReport = true
	} else {
		s.snapshot.Report = weather.Report{}
		s.snapshot.HasReport = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
