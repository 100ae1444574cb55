package ui

import (
	"time"

	"github.com/muesli/reflow/truncate"
)

// greeting picks a salutation for the hour of t.
func greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 5:
		return "Good night"
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// formatClock renders t as HH:MM or h:MM AM/PM.
func formatClock(t time.Time, h24 bool) string {
	if h24 {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// truncateLabel shortens s to width cells, marking the cut with an ellipsis.
func truncateLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
