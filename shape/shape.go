package shape

import "errors"

var (
	DimensionError        = errors.New("non positive dimension")
	DegenerateCenterError = errors.New("coincident annulus centers")
	NotNestedError        = errors.New("inner circle is not nested in outer")
	VertexCountError      = errors.New("polygon needs at least 3 vertices")
	DegenerateVertexError = errors.New("polygon with zero signed area")
	ScaleFactorError      = errors.New("non positive scale factor")
)

// Shape is the capability set shared by every figure kind. Geometry mutates
// in place, so FrameRect must recompute on every call.
type Shape interface {
	Located
	Area() float64
	FrameRect() Rect
	MoveTo(pos Point)
	MoveBy(dx, dy float64)
	Scale(k float64) error
}
