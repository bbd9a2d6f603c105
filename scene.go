package main

import (
	"GoConsoleShapes/shape"
	"errors"
	"math"
)

var EmptySceneError = errors.New("scene has no shapes")

// Scene holds the polymorphic shape collection in insertion order.
type Scene struct {
	shapes []shape.Shape
}

func (receiver *Scene) Add(object shape.Shape) {
	receiver.shapes = append(receiver.shapes, object)
}

func (receiver *Scene) Len() int {
	return len(receiver.shapes)
}

func (receiver *Scene) Shapes() []shape.Shape {
	return receiver.shapes
}

// TotalArea sums in iteration order, reproducible for a given collection.
func (receiver *Scene) TotalArea() float64 {
	var total float64
	for _, object := range receiver.shapes {
		total += object.Area()
	}
	return total
}

// FrameRect folds every shape's frame into a running bounding box. This is a
// union of frames, not a re-derivation from raw geometry.
func (receiver *Scene) FrameRect() (shape.Rect, error) {
	if len(receiver.shapes) == 0 {
		return shape.Rect{}, EmptySceneError
	}
	first := receiver.shapes[0].FrameRect()
	left, right := first.Left(), first.Right()
	down, up := first.Down(), first.Up()
	for _, object := range receiver.shapes[1:] {
		frame := object.FrameRect()
		left = math.Min(left, frame.Left())
		right = math.Max(right, frame.Right())
		down = math.Min(down, frame.Down())
		up = math.Max(up, frame.Up())
	}
	return shape.Rect{
		Size: shape.Size{W: right - left, H: up - down},
		Center: shape.Point{
			X: (left + right) / 2,
			Y: (down + up) / 2,
		},
	}, nil
}

// ScaleAbout applies the external-pivot scale to every shape. k is validated
// before any shape mutates.
func (receiver *Scene) ScaleAbout(pivot shape.Point, k float64) error {
	if k <= 0 {
		return shape.ScaleFactorError
	}
	for _, object := range receiver.shapes {
		if err := ScaleAbout(object, pivot, k); err != nil {
			return err
		}
	}
	return nil
}

// ScaleAbout scales target by k about an arbitrary pivot using only the
// primitive operations: park the shape on the pivot, scale about its own
// center, then push it back out by k times its original offset.
func ScaleAbout(target shape.Shape, pivot shape.Point, k float64) error {
	if k <= 0 {
		return shape.ScaleFactorError
	}
	p1 := target.GetXY()
	target.MoveTo(pivot)
	if err := target.Scale(k); err != nil {
		return err
	}
	p2 := target.GetXY()
	target.MoveBy(k*(p1.X-p2.X), k*(p1.Y-p2.Y))
	return nil
}

func (receiver *Scene) Copy() *Scene {
	instance, _ := NewScene()
	for _, object := range receiver.shapes {
		instance.Add(copyShape(object))
	}
	return instance
}

// the shape set is closed, so a switch is the whole dispatch
func copyShape(object shape.Shape) shape.Shape {
	switch concrete := object.(type) {
	case *shape.Rectangle:
		return concrete.Copy()
	case *shape.Rubber:
		return concrete.Copy()
	case *shape.Polygon:
		return concrete.Copy()
	}
	return nil
}

func NewScene() (*Scene, error) {
	return &Scene{
		shapes: make([]shape.Shape, 0, 8),
	}, nil
}

// NewDemoScene is the built-in collection used when no scene file is given.
func NewDemoScene() (*Scene, error) {
	scene, _ := NewScene()

	rect, err := shape.NewRectangle(1, 5, shape.Point{X: 2, Y: 3})
	if err != nil {
		return nil, err
	}
	scene.Add(rect)

	rubber, err := shape.NewRubber(4.4, shape.Point{X: 1, Y: 1}, 1.1, shape.Point{X: 1.1, Y: 1.1})
	if err != nil {
		return nil, err
	}
	scene.Add(rubber)

	poly, err := shape.NewPolygon([]shape.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 4},
	})
	if err != nil {
		return nil, err
	}
	scene.Add(poly)

	return scene, nil
}
