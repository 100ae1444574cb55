package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/newtab/internal/weather"
)

func TestStore_UpdateAndSnapshot(t *testing.T) {
	var s Store

	report := &weather.Report{Location: "Berlin", Temperature: "+12°C"}

	before := time.Now()
	s.Update(report, nil)

	snap := s.Snapshot()
	if !snap.HasReport || snap.Report.Location != "Berlin" {
		t.Fatalf("snapshot report = %#v, want Berlin HasReport=true", snap.Report)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Mutating the caller's report must not leak into the store.
	report.Location = "Paris"
	if got := s.Snapshot().Report.Location; got != "Berlin" {
		t.Fatalf("stored location = %q, want Berlin", got)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(&weather.Report{Location: "Oslo"}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.HasReport != prev.HasReport || snap.Report.Location != prev.Report.Location {
		t.Fatalf("report changed on error: got %#v want %#v", snap.Report, prev.Report)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("cloned error should wrap the original")
	}
}

func TestStore_NilReportClearsData(t *testing.T) {
	var s Store
	s.Update(&weather.Report{Location: "Oslo"}, nil)
	s.Update(nil, nil)
	snap := s.Snapshot()
	if snap.HasReport {
		t.Fatalf("HasReport = true after nil update, want false")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	s.Update(nil, errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 failure")
	}

	s.Update(nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}

	s.Update(&weather.Report{}, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false after success")
	}
}
