// Package menu implements the quick-launch list: alphabetical ordering,
// fuzzy filtering and 2-D cursor movement over a width-dependent grid.
package menu

import (
	"log/slog"
	"sort"
	"sync"
)

// Entry is one quick-launch site.
type Entry struct {
	Label string
	Icon  string
	URL   string
}

// Cursor is the focused position inside the filtered list.
type Cursor struct {
	Index   int
	Columns int
}

// Sink performs the actual navigation.
type Sink interface {
	NavigateTo(url string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(url string) error

// NavigateTo calls f.
func (f SinkFunc) NavigateTo(url string) error { return f(url) }

// Options configure a Navigator.
type Options struct {
	// Ratio is the FuzzyMatch threshold. nil uses DefaultRatio; any other
	// value, including zero and negatives, is used as given.
	Ratio  *float64
	Layout Layout
	Sink   Sink
}

// Navigator owns the entries, the current query and the cursor.
type Navigator struct {
	mu       sync.Mutex
	entries  []Entry
	filtered []Entry
	query    string
	ratio    float64
	layout   Layout
	width    int
	cursor   Cursor
	sink     Sink
}

// New copies entries, sorts them by label and returns a Navigator showing all
// of them. A zero Layout uses DefaultLayout.
func New(entries []Entry, opts Options) *Navigator {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Label < sorted[j].Label
	})

	ratio := DefaultRatio
	if opts.Ratio != nil {
		ratio = *opts.Ratio
	}
	layout := opts.Layout
	if layout == (Layout{}) {
		layout = DefaultLayout()
	}

	n := &Navigator{
		entries: sorted,
		ratio:   ratio,
		layout:  layout,
		sink:    opts.Sink,
		cursor:  Cursor{Columns: 1},
	}
	n.filtered = sorted
	return n
}

// Entries returns every entry in display order.
func (n *Navigator) Entries() []Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Entry(nil), n.entries...)
}

// Visible returns the entries matching the current query.
func (n *Navigator) Visible() []Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Entry(nil), n.filtered...)
}

// Query returns the active filter text.
func (n *Navigator) Query() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.query
}

// Cursor returns the current cursor.
func (n *Navigator) Cursor() Cursor {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cursor
}

// Selected returns the focused entry. ok is false when nothing is visible.
func (n *Navigator) Selected() (Entry, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.filtered) == 0 {
		return Entry{}, false
	}
	return n.filtered[n.cursor.Index], true
}

// SetQuery refilters the entries and puts the cursor on the first match.
func (n *Navigator) SetQuery(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.query = text
	if text == "" {
		n.filtered = n.entries
	} else {
		matched := make([]Entry, 0, len(n.entries))
		for _, e := range n.entries {
			if FuzzyMatch(e.Label, text, n.ratio) {
				matched = append(matched, e)
			}
		}
		n.filtered = matched
	}
	n.cursor.Index = 0
}

// Resize recomputes the column count for a new viewport width.
func (n *Navigator) Resize(width int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.width = width
	n.cursor.Columns = n.layout.Columns(width)
}

// Move shifts the cursor one step. It does nothing when no entry is visible.
func (n *Navigator) Move(dir Direction) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.filtered) == 0 {
		return
	}
	n.cursor.Columns = n.layout.Columns(n.width)
	n.cursor.Index = step(n.cursor.Index, len(n.filtered), n.cursor.Columns, dir)
}

// Focus puts the cursor on index if it is in range.
func (n *Navigator) Focus(index int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if index < 0 || index >= len(n.filtered) {
		return
	}
	n.cursor.Index = index
}

// Activate navigates to the focused entry and reports whether it did.
func (n *Navigator) Activate() bool {
	entry, ok := n.Selected()
	if !ok || n.sink == nil {
		return false
	}
	if err := n.sink.NavigateTo(entry.URL); err != nil {
		slog.Warn("navigation failed", slog.String("url", entry.URL), slog.String("error", err.Error()))
		return false
	}
	slog.Debug("navigated", slog.String("label", entry.Label), slog.String("url", entry.URL))
	return true
}
