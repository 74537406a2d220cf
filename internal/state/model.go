package state

import (
	"image/color"

	"github.com/google/uuid"
)

// ShapeKind identifies the geometry of a shape.
type ShapeKind string

const (
	KindRectangle ShapeKind = "rectangle"
	KindCircle    ShapeKind = "circle"
)

// ChangeKind describes a structural mutation of the shape collection.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeRemoved  ChangeKind = "removed"
)

// Shape is a rectangle or circle placed on the surface. It is a plain value
// struct: copying a Shape (or a slice of them) is a deep copy, which is what
// snapshot isolation relies on.
type Shape struct {
	ID          string
	Kind        ShapeKind
	X           float32 // top-left of the bounding box
	Y           float32
	Width       float32
	Height      float32
	StrokeColor color.NRGBA
	FillColor   color.NRGBA
	StrokeWidth float32
}

// Default placement and styling for newly added shapes.
const (
	defaultX           float32 = 60
	defaultY           float32 = 60
	defaultStrokeWidth float32 = 2
)

// DefaultStroke is the stroke color used when no palette color was picked.
var DefaultStroke = color.NRGBA{A: 255} // black

// NewRectangle returns a default-styled rectangle: transparent fill, solid
// stroke, fixed initial position.
func NewRectangle(stroke color.NRGBA) Shape {
	return Shape{
		ID:          uuid.NewString(),
		Kind:        KindRectangle,
		X:           defaultX,
		Y:           defaultY,
		Width:       120,
		Height:      80,
		StrokeColor: stroke,
		FillColor:   color.NRGBA{}, // transparent
		StrokeWidth: defaultStrokeWidth,
	}
}

// NewCircle returns a default-styled circle with a 100x100 bounding box.
func NewCircle(stroke color.NRGBA) Shape {
	return Shape{
		ID:          uuid.NewString(),
		Kind:        KindCircle,
		X:           defaultX,
		Y:           defaultY,
		Width:       100,
		Height:      100,
		StrokeColor: stroke,
		FillColor:   color.NRGBA{},
		StrokeWidth: defaultStrokeWidth,
	}
}

// Contains reports whether the point (x, y) hits the shape. Rectangles test
// their bounding box; circles test the inscribed ellipse.
func (s Shape) Contains(x, y float32) bool {
	if x < s.X || x > s.X+s.Width || y < s.Y || y > s.Y+s.Height {
		return false
	}
	if s.Kind == KindRectangle {
		return true
	}
	rx := float64(s.Width) / 2
	ry := float64(s.Height) / 2
	if rx == 0 || ry == 0 {
		return false
	}
	dx := (float64(x) - (float64(s.X) + rx)) / rx
	dy := (float64(y) - (float64(s.Y) + ry)) / ry
	return dx*dx+dy*dy <= 1
}

// Translate moves the shape by (dx, dy).
func (s *Shape) Translate(dx, dy float32) {
	s.X += dx
	s.Y += dy
}

// cloneShapes returns an independent copy of a shape slice.
func cloneShapes(shapes []Shape) []Shape {
	out := make([]Shape, len(shapes))
	copy(out, shapes)
	return out
}
