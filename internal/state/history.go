package state

import "time"

// Snapshot is an immutable copy of the shape collection at a point in time.
type Snapshot struct {
	Shapes []Shape
	Taken  time.Time
}

// HistoryLog is an ordered sequence of snapshots with a cursor marking the
// current state. The cursor starts at -1 (no snapshot yet); once a snapshot
// exists it always indexes a valid entry. Capturing after an undo abandons
// the redo branch. The log is unbounded and lives for the surface's lifetime.
type HistoryLog struct {
	snapshots []Snapshot
	cursor    int
}

func NewHistoryLog() *HistoryLog {
	return &HistoryLog{cursor: -1}
}

// Capture records a deep copy of shapes as the new current state. Any
// snapshots past the cursor are discarded first.
func (h *HistoryLog) Capture(shapes []Shape) {
	h.snapshots = h.snapshots[:h.cursor+1]
	h.snapshots = append(h.snapshots, Snapshot{
		Shapes: cloneShapes(shapes),
		Taken:  time.Now(),
	})
	h.cursor = len(h.snapshots) - 1
}

// CanUndo reports whether a state before the current one exists.
func (h *HistoryLog) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether the cursor sits before the tail of the log.
func (h *HistoryLog) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}

// Undo moves the cursor back one snapshot and returns an independent copy of
// that state. At cursor 0 (or with no history) it is a no-op and reports
// false.
func (h *HistoryLog) Undo() ([]Shape, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.cursor--
	return cloneShapes(h.snapshots[h.cursor].Shapes), true
}

// Redo moves the cursor forward one snapshot and returns an independent copy
// of that state. At the tail it is a no-op and reports false.
func (h *HistoryLog) Redo() ([]Shape, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.cursor++
	return cloneShapes(h.snapshots[h.cursor].Shapes), true
}

// Len returns the number of recorded snapshots.
func (h *HistoryLog) Len() int {
	return len(h.snapshots)
}

// Cursor returns the index of the current snapshot, -1 before the first
// capture.
func (h *HistoryLog) Cursor() int {
	return h.cursor
}
