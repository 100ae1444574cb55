// Package gesture turns raw pointer samples into discrete swipe directions.
//
// A terminal has no touch events, so the UI feeds left-button presses in as
// touch-start samples and drag motion as touch-move samples. Each registered
// surface keeps at most one baseline; the first move after a start consumes it.
// Later moves of the same drag have no baseline and are ignored until the next
// start, so a gesture fires exactly once.
package gesture

import (
	"sync"
)

// Direction is a classified swipe.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Classify maps a displacement to a direction. dx and dy are measured as
// start minus current, so a pointer moving toward the top-left yields
// positive values. The axis with the larger magnitude wins; ties go to the
// vertical axis.
func Classify(dx, dy int) Direction {
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return Left
		}
		return Right
	}
	if dy > 0 {
		return Up
	}
	return Down
}

type point struct {
	x, y int
}

// Recognizer tracks gesture baselines for registered surfaces.
type Recognizer struct {
	mu        sync.Mutex
	handlers  map[string]func(Direction)
	baselines map[string]point
}

// NewRecognizer returns an empty Recognizer.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		handlers:  make(map[string]func(Direction)),
		baselines: make(map[string]point),
	}
}

// Register installs onSwipe for surfaceID, replacing any previous handler.
func (r *Recognizer) Register(surfaceID string, onSwipe func(Direction)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[surfaceID] = onSwipe
	delete(r.baselines, surfaceID)
}

// Registered reports whether surfaceID has a handler.
func (r *Recognizer) Registered(surfaceID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.handlers[surfaceID]
	return ok
}

// TouchStart records the baseline for surfaceID. Unregistered surfaces are ignored.
func (r *Recognizer) TouchStart(surfaceID string, x, y int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[surfaceID]; !ok {
		return
	}
	r.baselines[surfaceID] = point{x: x, y: y}
}

// TouchMove classifies the move against the stored baseline and invokes the
// surface handler synchronously. The baseline is cleared regardless of outcome.
// It reports whether a direction was produced.
func (r *Recognizer) TouchMove(surfaceID string, x, y int) (Direction, bool) {
	r.mu.Lock()
	start, ok := r.baselines[surfaceID]
	delete(r.baselines, surfaceID)
	handler := r.handlers[surfaceID]
	r.mu.Unlock()

	if !ok {
		return 0, false
	}
	dir := Classify(start.x-x, start.y-y)
	if handler != nil {
		handler(dir)
	}
	return dir, true
}

// Cancel drops any baseline held for surfaceID.
func (r *Recognizer) Cancel(surfaceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.baselines, surfaceID)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
