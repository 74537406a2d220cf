package state

import "testing"

func TestShapeStore_AddSelectsAndNotifies(t *testing.T) {
	st := NewShapeStore()
	var events []ChangeKind
	st.SetOnChange(func(k ChangeKind) { events = append(events, k) })

	rect := NewRectangle(DefaultStroke)
	st.Add(rect)

	if st.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", st.Len())
	}
	if st.SelectedID() != rect.ID {
		t.Error("Add should select the new shape")
	}
	if len(events) != 1 || events[0] != ChangeAdded {
		t.Errorf("events: got %v, want [added]", events)
	}
}

func TestShapeStore_RemoveSelected(t *testing.T) {
	st := NewShapeStore()
	var events []ChangeKind
	st.SetOnChange(func(k ChangeKind) { events = append(events, k) })

	// Delete with no selection is a no-op that must not notify.
	if st.RemoveSelected() {
		t.Error("RemoveSelected with empty store should report false")
	}
	if len(events) != 0 {
		t.Errorf("no-op delete notified: %v", events)
	}

	st.Add(NewRectangle(DefaultStroke))
	if !st.RemoveSelected() {
		t.Error("RemoveSelected should remove the selected shape")
	}
	if st.Len() != 0 || st.SelectedID() != "" {
		t.Error("store should be empty and deselected after removal")
	}
	if len(events) != 2 || events[1] != ChangeRemoved {
		t.Errorf("events: got %v, want [added removed]", events)
	}
}

func TestShapeStore_DragCommit(t *testing.T) {
	st := NewShapeStore()
	st.Add(NewRectangle(DefaultStroke))

	var events []ChangeKind
	st.SetOnChange(func(k ChangeKind) { events = append(events, k) })

	st.TranslateSelected(5, 0)
	st.TranslateSelected(5, 10)
	if len(events) != 0 {
		t.Error("in-progress drag must not notify")
	}
	st.CommitSelected()
	if len(events) != 1 || events[0] != ChangeModified {
		t.Errorf("events: got %v, want [modified]", events)
	}

	s, ok := st.Selected()
	if !ok {
		t.Fatal("shape should still be selected after drag")
	}
	if s.X != 70 || s.Y != 70 {
		t.Errorf("position after drag: got (%g,%g), want (70,70)", s.X, s.Y)
	}

	// Commit with nothing selected is a no-op.
	st.ClearSelection()
	st.CommitSelected()
	if len(events) != 1 {
		t.Error("commit without selection must not notify")
	}
}

func TestShapeStore_SelectAt(t *testing.T) {
	st := NewShapeStore()
	bottom := NewRectangle(DefaultStroke) // covers (60,60)-(180,140)
	top := NewCircle(DefaultStroke)       // covers (60,60)-(160,160)
	st.Add(bottom)
	st.Add(top)

	tests := []struct {
		name   string
		x, y   float32
		hit    bool
		wantID string
	}{
		{"topmost wins at overlap", 110, 110, true, top.ID},
		{"rect-only corner misses the circle", 178, 62, true, bottom.ID},
		{"empty area clears selection", 400, 400, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := st.SelectAt(tt.x, tt.y)
			if hit != tt.hit {
				t.Fatalf("SelectAt(%g,%g): got %v, want %v", tt.x, tt.y, hit, tt.hit)
			}
			if st.SelectedID() != tt.wantID {
				t.Errorf("SelectedID: got %q, want %q", st.SelectedID(), tt.wantID)
			}
		})
	}
}

func TestShapeStore_ReplaceIsSilentAndIsolated(t *testing.T) {
	st := NewShapeStore()
	st.Add(NewRectangle(DefaultStroke))

	var notified int
	st.SetOnChange(func(ChangeKind) { notified++ })

	snapshot := []Shape{NewCircle(DefaultStroke)}
	st.Replace(snapshot)

	if notified != 0 {
		t.Error("Replace must not notify")
	}
	if st.Len() != 1 || st.Shapes()[0].Kind != KindCircle {
		t.Error("Replace should install the given shapes")
	}
	if st.SelectedID() != "" {
		t.Error("selection of a vanished shape must be cleared")
	}

	// Mutating the live collection must not corrupt the caller's slice, and
	// vice versa.
	st.Select(snapshot[0].ID)
	st.TranslateSelected(100, 100)
	if snapshot[0].X != 60 {
		t.Error("Replace must copy its input, not alias it")
	}
	shapes := st.Shapes()
	shapes[0].X = -1
	if s, _ := st.Selected(); s.X != 160 {
		t.Error("Shapes must return an independent copy")
	}
}

func TestShapeStore_ReplaceKeepsSurvivingSelection(t *testing.T) {
	st := NewShapeStore()
	rect := NewRectangle(DefaultStroke)
	st.Add(rect)

	st.Replace([]Shape{rect, NewCircle(DefaultStroke)})
	if st.SelectedID() != rect.ID {
		t.Error("selection should survive when the shape still exists")
	}
}

func TestShape_Contains(t *testing.T) {
	rect := NewRectangle(DefaultStroke)
	circle := NewCircle(DefaultStroke) // bounding box (60,60)-(160,160)

	tests := []struct {
		name string
		s    Shape
		x, y float32
		want bool
	}{
		{"rect center", rect, 120, 100, true},
		{"rect edge", rect, 60, 60, true},
		{"rect outside", rect, 59, 60, false},
		{"circle center", circle, 110, 110, true},
		{"circle corner of box", circle, 62, 62, false},
		{"circle on radius", circle, 160, 110, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%g,%g): got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
