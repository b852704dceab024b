package pathworld

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is one row of the input path. Cylinder paths leave Heading at 0.
type Point struct {
	X       float64
	Y       float64
	Heading float64
}

// Marker is the placement of one static model in the world.
type Marker struct {
	Index   int
	X       float64
	Y       float64
	Heading float64
	Length  float64
}

// BoxSize is the nominal box before the end boxes are halved.
type BoxSize struct {
	Length float64
	Width  float64
	Height float64
}

// Viewpoint is the position of the GUI camera looking straight down.
type Viewpoint struct {
	X float64
	Y float64
	Z float64
}

// RowShape is the number of fields expected in every data row.
type RowShape int

const (
	CylinderRow RowShape = 2
	BoxRow      RowShape = 3
)

// OffsetPosition moves (x, y) by offset along heading th.
func OffsetPosition(x, y, th, offset float64) (float64, float64) {
	dir := r2.Vec{X: math.Cos(th), Y: math.Sin(th)}
	moved := r2.Add(r2.Vec{X: x, Y: y}, r2.Scale(offset, dir))
	return moved.X, moved.Y
}

// formatFloat renders the shortest decimal that round-trips, without exponents.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
