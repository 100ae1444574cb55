package menu

import "math"

// Layout describes the terminal geometry of the quick-launch grid. Widths are
// in cells.
type Layout struct {
	ItemWidth         int
	ScrollbarWidth    int
	MarginPercent     int
	SingleColumnBelow int
}

// DefaultLayout fits 18-cell tiles.
func DefaultLayout() Layout {
	return Layout{
		ItemWidth:         18,
		ScrollbarWidth:    1,
		MarginPercent:     10,
		SingleColumnBelow: 40,
	}
}

// Columns returns how many tiles fit on one row at the given viewport width.
func (l Layout) Columns(width int) int {
	if width < l.SingleColumnBelow || l.ItemWidth <= 0 {
		return 1
	}
	margin := float64(width*l.MarginPercent) / 100
	usable := float64(width) - float64(l.ItemWidth)/2 - float64(l.ScrollbarWidth) - margin
	cols := int(math.Round(usable / float64(l.ItemWidth)))
	if cols < 1 {
		return 1
	}
	return cols
}

// Direction is an arrow-key move inside the grid.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// step applies one move to index in a list of count entries laid out in cols
// columns. Moving past the end lands on the first entry; moving before the
// start lands on the last.
func step(index, count, cols int, dir Direction) int {
	if count <= 0 {
		return 0
	}
	if cols < 1 {
		cols = 1
	}
	switch dir {
	case Left:
		index--
	case Right:
		index++
	case Up:
		index -= cols
	case Down:
		index += cols
	}
	switch {
	case index >= count:
		return 0
	case index < 0:
		return count - 1
	default:
		return index
	}
}
