package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// strokePalette returns the swatch colors: black plus a small set of evenly
// spaced hues.
func strokePalette() []color.NRGBA {
	out := []color.NRGBA{{A: 255}}
	for _, hue := range []float64{0, 120, 215, 45, 285} {
		r, g, b := colorful.Hsv(hue, 0.85, 0.85).RGB255()
		out = append(out, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return out
}

// NewToolbar builds the control row: the six surface operations plus the
// stroke color palette. Undo/redo buttons are disabled when the history log
// forbids the operation; that is a presentation hint only, the surface
// refuses by itself.
func NewToolbar(surface *Surface, onExport func()) fyne.CanvasObject {
	rectBtn := widget.NewButton("Rectangle", surface.AddRectangle)
	circleBtn := widget.NewButton("Circle", surface.AddCircle)
	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), surface.DeleteSelected)

	undoBtn := widget.NewButtonWithIcon("", theme.ContentUndoIcon(), surface.Undo)
	redoBtn := widget.NewButtonWithIcon("", theme.ContentRedoIcon(), surface.Redo)
	undoBtn.Disable()
	redoBtn.Disable()

	surface.OnHistoryChange = func() {
		if surface.CanUndo() {
			undoBtn.Enable()
		} else {
			undoBtn.Disable()
		}
		if surface.CanRedo() {
			redoBtn.Enable()
		} else {
			redoBtn.Disable()
		}
	}

	exportBtn := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), onExport)

	swatches := container.NewHBox()
	for _, c := range strokePalette() {
		swatches.Add(newColorSwatch(c, surface.SetStrokeColor))
	}

	return container.NewHBox(
		rectBtn,
		circleBtn,
		deleteBtn,
		widget.NewSeparator(),
		undoBtn,
		redoBtn,
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		swatches,
	)
}
