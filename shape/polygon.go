package shape

import "math"

// Polygon owns its vertex buffer; the centroid is computed once at
// construction and maintained by every mutation.
type Polygon struct {
	vertices []Point
	center   Point
}

// signedArea is the shoelace half-sum, sign follows winding order.
func signedArea(vertices []Point) float64 {
	var sum float64
	for i := 0; i < len(vertices); i++ {
		curr, next := vertices[i], vertices[(i+1)%len(vertices)]
		sum += curr.X*next.Y - next.X*curr.Y
	}
	return sum / 2
}

func centroid(vertices []Point, area float64) Point {
	var cx, cy float64
	for i := 0; i < len(vertices); i++ {
		curr, next := vertices[i], vertices[(i+1)%len(vertices)]
		cross := curr.X*next.Y - next.X*curr.Y
		cx += (curr.X + next.X) * cross
		cy += (curr.Y + next.Y) * cross
	}
	return Point{
		X: cx / (6 * area),
		Y: cy / (6 * area),
	}
}

func (receiver *Polygon) Area() float64 {
	return math.Abs(signedArea(receiver.vertices))
}

func (receiver *Polygon) FrameRect() Rect {
	minP, maxP := receiver.vertices[0], receiver.vertices[0]
	for _, vertex := range receiver.vertices[1:] {
		minP.X = math.Min(minP.X, vertex.X)
		minP.Y = math.Min(minP.Y, vertex.Y)
		maxP.X = math.Max(maxP.X, vertex.X)
		maxP.Y = math.Max(maxP.Y, vertex.Y)
	}
	return Rect{
		Size: Size{W: maxP.X - minP.X, H: maxP.Y - minP.Y},
		Center: Point{
			X: (minP.X + maxP.X) / 2,
			Y: (minP.Y + maxP.Y) / 2,
		},
	}
}

func (receiver *Polygon) GetXY() Point {
	return receiver.center
}

func (receiver *Polygon) GetWH() Size {
	return receiver.FrameRect().Size
}

func (receiver *Polygon) MoveTo(pos Point) {
	receiver.MoveBy(pos.X-receiver.center.X, pos.Y-receiver.center.Y)
}

func (receiver *Polygon) MoveBy(dx, dy float64) {
	for i := range receiver.vertices {
		receiver.vertices[i].X += dx
		receiver.vertices[i].Y += dy
	}
	receiver.center.X += dx
	receiver.center.Y += dy
}

// Scale stretches every vertex offset from the centroid, centroid fixed.
func (receiver *Polygon) Scale(k float64) error {
	if k <= 0 {
		return ScaleFactorError
	}
	for i := range receiver.vertices {
		receiver.vertices[i].X = receiver.center.X + (receiver.vertices[i].X-receiver.center.X)*k
		receiver.vertices[i].Y = receiver.center.Y + (receiver.vertices[i].Y-receiver.center.Y)*k
	}
	return nil
}

func (receiver *Polygon) Copy() *Polygon {
	instance := *receiver
	instance.vertices = make([]Point, len(receiver.vertices))
	copy(instance.vertices, receiver.vertices)
	return &instance
}

// Detach hands the vertex buffer over to the caller and leaves the polygon
// empty. The empty polygon is only good for re-feeding NewPolygon.
func (receiver *Polygon) Detach() []Point {
	vertices := receiver.vertices
	receiver.vertices = nil
	receiver.center = Point{}
	return vertices
}

func (receiver *Polygon) Vertices() []Point {
	out := make([]Point, len(receiver.vertices))
	copy(out, receiver.vertices)
	return out
}

// NewPolygon copies the caller's slice. Self-intersection is not checked,
// only a zero signed area is rejected (centroid would be undefined).
func NewPolygon(vertices []Point) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, VertexCountError
	}
	owned := make([]Point, len(vertices))
	copy(owned, vertices)
	area := signedArea(owned)
	if area == 0 {
		return nil, DegenerateVertexError
	}
	return &Polygon{
		vertices: owned,
		center:   centroid(owned, area),
	}, nil
}
