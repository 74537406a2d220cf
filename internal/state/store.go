package state

import "sync"

// ShapeStore owns the surface's shape collection and the current selection.
// The UI event handlers write to it and the widget renderer reads from it, so
// access is guarded by a mutex even though execution is serialized by the
// event loop in practice.
//
// Structural mutations (add, commit-move, remove) fire the change callback;
// Replace does not, so restoring a snapshot never re-records history.
type ShapeStore struct {
	mu       sync.RWMutex
	shapes   []Shape
	selected string
	onChange func(ChangeKind)
}

func NewShapeStore() *ShapeStore {
	return &ShapeStore{}
}

// SetOnChange registers the single change subscriber. Pass nil to
// unsubscribe on teardown.
func (st *ShapeStore) SetOnChange(fn func(ChangeKind)) {
	st.mu.Lock()
	st.onChange = fn
	st.mu.Unlock()
}

func (st *ShapeStore) notify(kind ChangeKind) {
	st.mu.RLock()
	fn := st.onChange
	st.mu.RUnlock()
	if fn != nil {
		fn(kind)
	}
}

// Add appends a shape, selects it, and notifies ChangeAdded.
func (st *ShapeStore) Add(s Shape) {
	st.mu.Lock()
	st.shapes = append(st.shapes, s)
	st.selected = s.ID
	st.mu.Unlock()
	st.notify(ChangeAdded)
}

// RemoveSelected removes the currently selected shape and notifies
// ChangeRemoved. It reports false without notifying when nothing is selected.
func (st *ShapeStore) RemoveSelected() bool {
	st.mu.Lock()
	if st.selected == "" {
		st.mu.Unlock()
		return false
	}
	kept := st.shapes[:0]
	removed := false
	for _, s := range st.shapes {
		if s.ID == st.selected {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	st.shapes = kept
	st.selected = ""
	st.mu.Unlock()
	if !removed {
		return false
	}
	st.notify(ChangeRemoved)
	return true
}

// TranslateSelected moves the selected shape without notifying; it is called
// repeatedly during a drag. CommitSelected fires the single ChangeModified
// once the drag ends.
func (st *ShapeStore) TranslateSelected(dx, dy float32) {
	st.mu.Lock()
	for i := range st.shapes {
		if st.shapes[i].ID == st.selected {
			st.shapes[i].Translate(dx, dy)
			break
		}
	}
	st.mu.Unlock()
}

// CommitSelected records the end of an in-progress modification of the
// selected shape. No-op when nothing is selected.
func (st *ShapeStore) CommitSelected() {
	st.mu.RLock()
	ok := st.selected != ""
	st.mu.RUnlock()
	if ok {
		st.notify(ChangeModified)
	}
}

// Shapes returns an independent copy of the collection in z-order.
func (st *ShapeStore) Shapes() []Shape {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return cloneShapes(st.shapes)
}

// Len returns the number of shapes.
func (st *ShapeStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.shapes)
}

// Replace discards the current collection and installs an independent copy of
// shapes. It never notifies: this is the history restore path. The selection
// is kept only if the selected shape still exists afterwards.
func (st *ShapeStore) Replace(shapes []Shape) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.shapes = cloneShapes(shapes)
	if st.selected == "" {
		return
	}
	for _, s := range st.shapes {
		if s.ID == st.selected {
			return
		}
	}
	st.selected = ""
}

// Select marks the shape with the given ID as selected, if present.
func (st *ShapeStore) Select(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, s := range st.shapes {
		if s.ID == id {
			st.selected = id
			return
		}
	}
}

// SelectAt selects the topmost shape containing (x, y) and reports whether
// one was hit. A miss clears the selection.
func (st *ShapeStore) SelectAt(x, y float32) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := len(st.shapes) - 1; i >= 0; i-- {
		if st.shapes[i].Contains(x, y) {
			st.selected = st.shapes[i].ID
			return true
		}
	}
	st.selected = ""
	return false
}

// ClearSelection deselects without touching the collection.
func (st *ShapeStore) ClearSelection() {
	st.mu.Lock()
	st.selected = ""
	st.mu.Unlock()
}

// SelectedID returns the selected shape's ID, or "" when none.
func (st *ShapeStore) SelectedID() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.selected
}

// Selected returns a copy of the selected shape.
func (st *ShapeStore) Selected() (Shape, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, s := range st.shapes {
		if s.ID == st.selected {
			return s, true
		}
	}
	return Shape{}, false
}
