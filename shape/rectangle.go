package shape

type Rectangle struct {
	w, h float64
	pos  Point
}

func (receiver *Rectangle) Area() float64 {
	return receiver.w * receiver.h
}

func (receiver *Rectangle) FrameRect() Rect {
	return Rect{
		Size:   Size{W: receiver.w, H: receiver.h},
		Center: receiver.pos,
	}
}

func (receiver *Rectangle) GetXY() Point {
	return receiver.pos
}

func (receiver *Rectangle) GetWH() Size {
	return Size{W: receiver.w, H: receiver.h}
}

func (receiver *Rectangle) MoveTo(pos Point) {
	receiver.pos = pos
}

func (receiver *Rectangle) MoveBy(dx, dy float64) {
	receiver.pos.X += dx
	receiver.pos.Y += dy
}

// Scale grows width and height about pos, which stays put.
func (receiver *Rectangle) Scale(k float64) error {
	if k <= 0 {
		return ScaleFactorError
	}
	receiver.w *= k
	receiver.h *= k
	return nil
}

func (receiver *Rectangle) Copy() *Rectangle {
	instance := *receiver
	return &instance
}

func NewRectangle(w, h float64, pos Point) (*Rectangle, error) {
	if w <= 0 || h <= 0 {
		return nil, DimensionError
	}
	return &Rectangle{
		w:   w,
		h:   h,
		pos: pos,
	}, nil
}
