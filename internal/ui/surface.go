package ui

import (
	"image"
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/dailly-ideas/editor-app/internal/background"
	"github.com/dailly-ideas/editor-app/internal/state"
)

var selectionColor = color.NRGBA{R: 30, G: 136, B: 229, A: 255}

// Surface is the drawing area: a fixed-size canvas bound to a background
// image, owning a shape collection and the history log that records every
// structural change to it.
//
// All operations degrade to no-ops rather than failing: undo at the start of
// history, delete without a selection, and anything called after Close.
type Surface struct {
	widget.BaseWidget

	width  int
	height int

	store   *state.ShapeStore
	history *state.HistoryLog

	mu     sync.RWMutex
	bg     image.Image
	stroke color.NRGBA
	closed bool

	dragMoved bool

	// OnHistoryChange fires whenever the history cursor or length moves, so
	// the toolbar can enable/disable undo and redo.
	OnHistoryChange func()
	// OnStatus receives short user-facing status messages.
	OnStatus func(string)
}

var _ fyne.Widget = (*Surface)(nil)
var _ fyne.Tappable = (*Surface)(nil)
var _ fyne.Draggable = (*Surface)(nil)

// NewSurface creates a surface of the given size. A non-empty source starts
// the asynchronous background-image load; the initial snapshot is captured
// once the load settles. With an empty source the initial snapshot is
// captured immediately.
func NewSurface(width, height int, source string) *Surface {
	s := &Surface{
		width:   width,
		height:  height,
		store:   state.NewShapeStore(),
		history: state.NewHistoryLog(),
		stroke:  state.DefaultStroke,
	}
	s.ExtendBaseWidget(s)
	s.store.SetOnChange(s.onStoreChange)

	if source == "" {
		s.captureInitial()
		return s
	}
	go s.loadBackground(source)
	return s
}

// loadBackground runs off the UI thread; results re-enter it via fyne.Do.
// A failed load is logged and the surface stays usable without the image.
func (s *Surface) loadBackground(source string) {
	img, err := background.Load(source)
	if err != nil {
		log.Printf("background: %v", err)
		fyne.Do(func() {
			s.setStatus("background image failed to load")
			s.captureInitial()
		})
		return
	}
	fitted := background.Fit(img, s.width, s.height)
	fyne.Do(func() {
		s.applyBackground(fitted)
	})
}

func (s *Surface) applyBackground(img image.Image) {
	s.mu.Lock()
	s.bg = img
	s.mu.Unlock()
	s.Refresh()
	s.captureInitial()
}

// captureInitial records the first snapshot exactly once, after the
// background load settles.
func (s *Surface) captureInitial() {
	if s.history.Len() == 0 {
		s.history.Capture(s.store.Shapes())
		s.historyChanged()
	}
}

func (s *Surface) onStoreChange(state.ChangeKind) {
	s.history.Capture(s.store.Shapes())
	s.historyChanged()
	s.Refresh()
}

func (s *Surface) historyChanged() {
	if s.OnHistoryChange != nil {
		s.OnHistoryChange()
	}
}

func (s *Surface) setStatus(msg string) {
	if s.OnStatus != nil {
		s.OnStatus(msg)
	}
}

func (s *Surface) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// AddRectangle inserts a default-styled rectangle and selects it.
func (s *Surface) AddRectangle() {
	if s.isClosed() {
		return
	}
	s.store.Add(state.NewRectangle(s.strokeColor()))
}

// AddCircle inserts a default-styled circle and selects it.
func (s *Surface) AddCircle() {
	if s.isClosed() {
		return
	}
	s.store.Add(state.NewCircle(s.strokeColor()))
}

// DeleteSelected removes the selected shape; no-op without a selection.
func (s *Surface) DeleteSelected() {
	if s.isClosed() {
		return
	}
	s.store.RemoveSelected()
}

// Undo steps the history cursor back and restores that snapshot. A no-op at
// the start of history.
func (s *Surface) Undo() {
	if s.isClosed() {
		return
	}
	shapes, ok := s.history.Undo()
	if !ok {
		return
	}
	s.store.Replace(shapes)
	s.historyChanged()
	s.Refresh()
}

// Redo steps the history cursor forward and restores that snapshot. A no-op
// at the tail.
func (s *Surface) Redo() {
	if s.isClosed() {
		return
	}
	shapes, ok := s.history.Redo()
	if !ok {
		return
	}
	s.store.Replace(shapes)
	s.historyChanged()
	s.Refresh()
}

// CanUndo and CanRedo expose the history guards for toolbar enablement; the
// operations themselves refuse at the boundaries regardless.
func (s *Surface) CanUndo() bool { return s.history.CanUndo() }
func (s *Surface) CanRedo() bool { return s.history.CanRedo() }

// Shapes returns a copy of the current shape collection in z-order.
func (s *Surface) Shapes() []state.Shape {
	return s.store.Shapes()
}

// BackgroundImage returns the fitted background image, nil while loading or
// after a failed load.
func (s *Surface) BackgroundImage() image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bg
}

// Size of the drawing area in pixels.
func (s *Surface) CanvasWidth() int  { return s.width }
func (s *Surface) CanvasHeight() int { return s.height }

// SetStrokeColor sets the stroke color applied to subsequently added shapes.
func (s *Surface) SetStrokeColor(c color.NRGBA) {
	s.mu.Lock()
	s.stroke = c
	s.mu.Unlock()
}

func (s *Surface) strokeColor() color.NRGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stroke
}

// Close releases the surface: the store subscription is dropped and every
// operation becomes inert. Safe to call more than once.
func (s *Surface) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.store.SetOnChange(nil)
}

// Tapped selects the topmost shape under the cursor, or clears the
// selection on a miss.
func (s *Surface) Tapped(e *fyne.PointEvent) {
	if s.isClosed() {
		return
	}
	s.store.SelectAt(e.Position.X, e.Position.Y)
	s.Refresh()
}

// Dragged moves the selected shape with the pointer. The modified event (and
// its snapshot) fires once at DragEnd, not per delta.
func (s *Surface) Dragged(e *fyne.DragEvent) {
	if s.isClosed() || s.store.SelectedID() == "" {
		return
	}
	s.store.TranslateSelected(e.Dragged.DX, e.Dragged.DY)
	s.dragMoved = true
	s.Refresh()
}

func (s *Surface) DragEnd() {
	if s.isClosed() || !s.dragMoved {
		return
	}
	s.dragMoved = false
	s.store.CommitSelected()
}

func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	r := &surfaceRenderer{surface: s}
	r.base = canvas.NewRectangle(color.White)
	return r
}

type surfaceRenderer struct {
	surface *Surface
	base    *canvas.Rectangle
}

func (r *surfaceRenderer) Objects() []fyne.CanvasObject {
	s := r.surface
	objects := []fyne.CanvasObject{r.base}

	if bg := s.BackgroundImage(); bg != nil {
		img := canvas.NewImageFromImage(bg)
		img.FillMode = canvas.ImageFillStretch
		img.Resize(fyne.NewSize(float32(s.width), float32(s.height)))
		objects = append(objects, img)
	}

	for _, sh := range s.store.Shapes() {
		objects = append(objects, shapeObject(sh))
	}

	if sh, ok := s.store.Selected(); ok {
		outline := canvas.NewRectangle(color.Transparent)
		outline.StrokeColor = selectionColor
		outline.StrokeWidth = 1
		outline.Move(fyne.NewPos(sh.X-4, sh.Y-4))
		outline.Resize(fyne.NewSize(sh.Width+8, sh.Height+8))
		objects = append(objects, outline)
	}
	return objects
}

func shapeObject(sh state.Shape) fyne.CanvasObject {
	if sh.Kind == state.KindCircle {
		c := canvas.NewCircle(sh.FillColor)
		c.StrokeColor = sh.StrokeColor
		c.StrokeWidth = sh.StrokeWidth
		c.Position1 = fyne.NewPos(sh.X, sh.Y)
		c.Position2 = fyne.NewPos(sh.X+sh.Width, sh.Y+sh.Height)
		return c
	}
	rect := canvas.NewRectangle(sh.FillColor)
	rect.StrokeColor = sh.StrokeColor
	rect.StrokeWidth = sh.StrokeWidth
	rect.Move(fyne.NewPos(sh.X, sh.Y))
	rect.Resize(fyne.NewSize(sh.Width, sh.Height))
	return rect
}

func (r *surfaceRenderer) Layout(size fyne.Size) {
	r.base.Resize(size)
}

func (r *surfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.surface.width), float32(r.surface.height))
}

func (r *surfaceRenderer) Refresh() {
	canvas.Refresh(r.surface)
}

func (r *surfaceRenderer) Destroy() {}
