// Package export rasterizes the surface contents to a single flat PNG.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/dailly-ideas/editor-app/internal/state"
)

// DefaultFileName is the file name offered by the export dialog.
const DefaultFileName = "canvas-export.png"

// Render composes the background and the shape collection into a single
// raster of the given surface size. It is a pure function of its inputs: the
// surface state is never touched. A nil background leaves the white base
// visible.
func Render(bg image.Image, shapes []state.Shape, width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)

	if bg != nil {
		xdraw.CatmullRom.Scale(out, out.Bounds(), bg, bg.Bounds(), draw.Over, nil)
	}

	for _, s := range shapes {
		drawShape(out, s)
	}
	return out
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawShape(img *image.RGBA, s state.Shape) {
	x0 := int(s.X)
	y0 := int(s.Y)
	x1 := int(s.X + s.Width)
	y1 := int(s.Y + s.Height)
	thick := int(s.StrokeWidth)
	if thick < 1 {
		thick = 1
	}

	switch s.Kind {
	case state.KindRectangle:
		if s.FillColor.A > 0 {
			fill := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
			draw.Draw(img, fill, &image.Uniform{s.FillColor}, image.Point{}, draw.Over)
		}
		drawRectOutline(img, image.Rect(x0, y0, x1, y1), s.StrokeColor, thick)
	case state.KindCircle:
		cx := (x0 + x1) / 2
		cy := (y0 + y1) / 2
		rx := (x1 - x0) / 2
		ry := (y1 - y0) / 2
		if s.FillColor.A > 0 {
			drawFilledEllipse(img, cx, cy, rx, ry, s.FillColor)
		}
		drawEllipse(img, cx, cy, rx, ry, s.StrokeColor, thick)
	}
}

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func drawRectOutline(img *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	drawLine(img, rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Min.Y, col, thick)
	drawLine(img, rect.Max.X-1, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1, col, thick)
	drawLine(img, rect.Max.X-1, rect.Max.Y-1, rect.Min.X, rect.Max.Y-1, col, thick)
	drawLine(img, rect.Min.X, rect.Max.Y-1, rect.Min.X, rect.Min.Y, col, thick)
}

func drawEllipse(img *image.RGBA, cx, cy, rx, ry int, col color.Color, thick int) {
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(float64(rx*rx+ry*ry))))
	if steps < 8 {
		steps = 8
	}
	var prevX, prevY int
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Cos(angle)*float64(rx))
		y := cy + int(math.Sin(angle)*float64(ry))
		if i > 0 {
			drawLine(img, prevX, prevY, x, y, col, thick)
		} else {
			setThickPixel(img, x, y, thick, col)
		}
		prevX, prevY = x, y
	}
}

func drawFilledEllipse(img *image.RGBA, cx, cy, rx, ry int, col color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		span := int(float64(rx) * math.Sqrt(1.0-float64(dy*dy)/float64(ry*ry)))
		for dx := -span; dx <= span; dx++ {
			px := cx + dx
			py := cy + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}
