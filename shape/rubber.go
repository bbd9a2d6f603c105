package shape

import "math"

// Rubber is the ring between two circles, the inner one fully contained in
// the outer. pos2 (the inner center) is the reference position.
type Rubber struct {
	r1, r2     float64
	pos1, pos2 Point
}

func (receiver *Rubber) Area() float64 {
	return math.Pi * (receiver.r1*receiver.r1 - receiver.r2*receiver.r2)
}

func (receiver *Rubber) FrameRect() Rect {
	return Rect{
		Size:   Size{W: 2 * receiver.r1, H: 2 * receiver.r1},
		Center: receiver.pos1,
	}
}

func (receiver *Rubber) GetXY() Point {
	return receiver.pos2
}

func (receiver *Rubber) GetWH() Size {
	return Size{W: 2 * receiver.r1, H: 2 * receiver.r1}
}

// MoveTo relocates the inner center and carries the outer one by the
// preserved offset between them.
func (receiver *Rubber) MoveTo(pos Point) {
	offset := receiver.pos1.Minus(receiver.pos2)
	receiver.pos2 = pos
	receiver.pos1 = pos.Plus(offset)
}

func (receiver *Rubber) MoveBy(dx, dy float64) {
	delta := Point{X: dx, Y: dy}
	receiver.pos1 = receiver.pos1.Plus(delta)
	receiver.pos2 = receiver.pos2.Plus(delta)
}

// Scale multiplies both radii and the center offset by k, pivoting on pos2.
func (receiver *Rubber) Scale(k float64) error {
	if k <= 0 {
		return ScaleFactorError
	}
	offset := receiver.pos1.Minus(receiver.pos2)
	receiver.r1 *= k
	receiver.r2 *= k
	receiver.pos1 = Point{
		X: receiver.pos2.X + offset.X*k,
		Y: receiver.pos2.Y + offset.Y*k,
	}
	return nil
}

func (receiver *Rubber) GetRadii() (outer, inner float64) {
	return receiver.r1, receiver.r2
}

func (receiver *Rubber) GetCenters() (outer, inner Point) {
	return receiver.pos1, receiver.pos2
}

func (receiver *Rubber) Copy() *Rubber {
	instance := *receiver
	return &instance
}

// NewRubber rejects non-nested circles with strict >, so exact tangency
// (distance + r2 == r1) still constructs.
func NewRubber(r1 float64, pos1 Point, r2 float64, pos2 Point) (*Rubber, error) {
	if r1 <= 0 || r2 <= 0 {
		return nil, DimensionError
	}
	if pos1 == pos2 {
		return nil, DegenerateCenterError
	}
	if getDistance(pos1, pos2)+r2 > r1 {
		return nil, NotNestedError
	}
	return &Rubber{
		r1:   r1,
		r2:   r2,
		pos1: pos1,
		pos2: pos2,
	}, nil
}
