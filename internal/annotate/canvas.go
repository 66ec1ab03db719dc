package annotate

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Canvas is a drawing surface for annotations.
type Canvas interface {
	// Size returns the surface width (X) and height (Y) in pixels.
	Size() image.Point
	// Circle draws a circle; a negative thickness fills it.
	Circle(center image.Point, radius int, c color.RGBA, thickness int)
	Line(from, to image.Point, c color.RGBA, thickness int)
	// Text draws s with its bottom-left corner at org.
	Text(s string, org image.Point, scale float64, c color.RGBA, thickness int)
}

// MatCanvas draws onto a gocv Mat in place.
type MatCanvas struct {
	mat *gocv.Mat
}

// NewMatCanvas wraps a BGR frame.
func NewMatCanvas(mat *gocv.Mat) *MatCanvas {
	return &MatCanvas{mat: mat}
}

func (m *MatCanvas) Size() image.Point {
	return image.Point{X: m.mat.Cols(), Y: m.mat.Rows()}
}

func (m *MatCanvas) Circle(center image.Point, radius int, c color.RGBA, thickness int) {
	gocv.Circle(m.mat, center, radius, c, thickness)
}

func (m *MatCanvas) Line(from, to image.Point, c color.RGBA, thickness int) {
	gocv.Line(m.mat, from, to, c, thickness)
}

func (m *MatCanvas) Text(s string, org image.Point, scale float64, c color.RGBA, thickness int) {
	gocv.PutTextWithParams(m.mat, s, org, gocv.FontHersheySimplex, scale, c, thickness, gocv.LineAA, false)
}
