package shape

import "math"

type Located interface {
	GetXY() Point
}

type Sized interface {
	GetWH() Size
}

type Point struct {
	X, Y float64
}

func (receiver Point) Equal(to Point, precision float64) bool {
	if math.Abs(receiver.X-to.X) <= precision && math.Abs(receiver.Y-to.Y) <= precision {
		return true
	}
	return false
}

func (receiver Point) Plus(to Point) Point {
	return Point{
		X: receiver.X + to.X,
		Y: receiver.Y + to.Y,
	}
}

func (receiver Point) Minus(to Point) Point {
	return Point{
		X: receiver.X - to.X,
		Y: receiver.Y - to.Y,
	}
}

func (receiver Point) Abs() Point {
	return Point{
		X: math.Abs(receiver.X),
		Y: math.Abs(receiver.Y),
	}
}

type Size struct {
	W, H float64
}

func (receiver Size) Equal(to Size, precision float64) bool {
	if math.Abs(receiver.W-to.W) <= precision && math.Abs(receiver.H-to.H) <= precision {
		return true
	}
	return false
}

func (receiver Size) Plus(to Size) Size {
	return Size{
		W: receiver.W + to.W,
		H: receiver.H + to.H,
	}
}

// Rect is a frame rectangle: extent plus center point.
type Rect struct {
	Size
	Center Point
}

func (receiver Rect) Equal(to Rect, precision float64) bool {
	return receiver.Size.Equal(to.Size, precision) && receiver.Center.Equal(to.Center, precision)
}

func (receiver Rect) Left() float64 {
	return receiver.Center.X - receiver.W/2
}

func (receiver Rect) Right() float64 {
	return receiver.Center.X + receiver.W/2
}

func (receiver Rect) Down() float64 {
	return receiver.Center.Y - receiver.H/2
}

func (receiver Rect) Up() float64 {
	return receiver.Center.Y + receiver.H/2
}

func getDistance(from, to Point) float64 {
	distX, distY := from.X-to.X, from.Y-to.Y
	return math.Sqrt(distX*distX + distY*distY)
}
