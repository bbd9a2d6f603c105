package main

import (
	"GoConsoleShapes/shape"

	"github.com/fogleman/gg"
)

// SaveSnapshot rasterizes the scene to a PNG: shape outlines, the union
// frame rect dashed, and a cross on the pivot.
func SaveSnapshot(scene *Scene, pivot shape.Point, filename string, canvas Canvas) error {
	window, err := scene.FrameRect()
	if err != nil {
		return err
	}
	left := minFloat(window.Left(), pivot.X) - 1
	right := maxFloat(window.Right(), pivot.X) + 1
	down := minFloat(window.Down(), pivot.Y) - 1
	up := maxFloat(window.Up(), pivot.Y) + 1

	dc := gg.NewContext(canvas.W, canvas.H)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	scale := minFloat(float64(canvas.W)/(right-left), float64(canvas.H)/(up-down))
	// image rows grow downward, world Y grows upward
	px := func(p shape.Point) (float64, float64) {
		return (p.X - left) * scale, float64(canvas.H) - (p.Y-down)*scale
	}

	dc.SetLineWidth(2)
	for _, object := range scene.Shapes() {
		switch concrete := object.(type) {
		case *shape.Rectangle:
			frame := concrete.FrameRect()
			x, y := px(shape.Point{X: frame.Left(), Y: frame.Up()})
			dc.SetRGB(0.1, 0.3, 0.8)
			dc.DrawRectangle(x, y, frame.W*scale, frame.H*scale)
			dc.Stroke()
		case *shape.Rubber:
			outer, inner := concrete.GetCenters()
			r1, r2 := concrete.GetRadii()
			dc.SetRGB(0.8, 0.2, 0.2)
			x, y := px(outer)
			dc.DrawCircle(x, y, r1*scale)
			dc.Stroke()
			x, y = px(inner)
			dc.DrawCircle(x, y, r2*scale)
			dc.Stroke()
		case *shape.Polygon:
			dc.SetRGB(0.1, 0.6, 0.2)
			for i, vertex := range concrete.Vertices() {
				x, y := px(vertex)
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.ClosePath()
			dc.Stroke()
		}
	}

	dc.SetRGB(0.4, 0.4, 0.4)
	dc.SetDash(6, 4)
	x, y := px(shape.Point{X: window.Left(), Y: window.Up()})
	dc.DrawRectangle(x, y, window.W*scale, window.H*scale)
	dc.Stroke()
	dc.SetDash()

	dc.SetRGB(0, 0, 0)
	x, y = px(pivot)
	dc.DrawLine(x-6, y, x+6, y)
	dc.DrawLine(x, y-6, x, y+6)
	dc.Stroke()

	return dc.SavePNG(filename)
}
