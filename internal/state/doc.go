// Package state provides thread-safe state shared between the weather poller
// and the UI.
//
// # Overview
//
// The poller goroutine fetches a weather report on a fixed cadence and writes
// it into a Store. The Bubble Tea program pulls a Snapshot on its own tick and
// renders the weather panel from it, so a slow provider never blocks input.
//
//	Producer (poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ client.Fetch() │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │  render panel   │
//	└────────────────┘            └─────────────────┘
//
// # Error Handling
//
// A failed poll keeps the previous report and records the error together with
// a consecutive failure count. Two failures in a row mark the snapshot offline;
// the first success resets the counter.
//
// Errors are cloned with fmt.Errorf("%w") on read so callers cannot hold on to
// the stored instance while still being able to use errors.Is.
package state
