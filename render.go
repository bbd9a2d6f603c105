package main

import (
	"GoConsoleShapes/shape"
	"fmt"

	direct "github.com/buger/goterm"
)

type ConsoleView struct {
	Config *AppConfig
}

func kindOf(object shape.Shape) string {
	switch object.(type) {
	case *shape.Rectangle:
		return "rectangle"
	case *shape.Rubber:
		return "rubber"
	case *shape.Polygon:
		return "polygon"
	}
	return "unknown"
}

// Report prints the per-shape table and the aggregate footer.
func (receiver *ConsoleView) Report(scene *Scene) {
	for i, object := range scene.Shapes() {
		frame := object.FrameRect()
		line := fmt.Sprintf("#%d %-9s area %10.4f frame %8.4f x %-8.4f at (%.4f, %.4f)",
			i, kindOf(object), object.Area(), frame.W, frame.H, frame.Center.X, frame.Center.Y)
		if receiver.Config.WithColor {
			line = direct.Color(line, direct.CYAN)
		}
		direct.Println(line)
	}
	total := fmt.Sprintf("total area %.4f", scene.TotalArea())
	if frame, err := scene.FrameRect(); err == nil {
		total += fmt.Sprintf(", union frame %.4f x %.4f at (%.4f, %.4f)",
			frame.W, frame.H, frame.Center.X, frame.Center.Y)
	}
	if receiver.Config.WithColor {
		total = direct.Bold(total)
	}
	direct.Println(total)
	direct.Flush()
}

// Draw paints the frame rects and the pivot marker on an ASCII canvas.
func (receiver *ConsoleView) Draw(scene *Scene, pivot shape.Point) {
	w, h := receiver.Config.Canvas.W, receiver.Config.Canvas.H

	window, err := scene.FrameRect()
	if err != nil {
		return
	}
	// window includes the pivot plus a margin so the marker never clips
	left := minFloat(window.Left(), pivot.X) - 1
	right := maxFloat(window.Right(), pivot.X) + 1
	down := minFloat(window.Down(), pivot.Y) - 1
	up := maxFloat(window.Up(), pivot.Y) + 1

	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = make([]rune, w)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	project := func(p shape.Point) (int, int) {
		col := int(float64(w-1) * (p.X - left) / (right - left))
		// terminal rows grow downward
		row := int(float64(h-1) * (up - p.Y) / (up - down))
		return clampInt(col, 0, w-1), clampInt(row, 0, h-1)
	}

	for _, object := range scene.Shapes() {
		frame := object.FrameRect()
		c1, r1 := project(shape.Point{X: frame.Left(), Y: frame.Up()})
		c2, r2 := project(shape.Point{X: frame.Right(), Y: frame.Down()})
		for col := c1; col <= c2; col++ {
			grid[r1][col] = '-'
			grid[r2][col] = '-'
		}
		for row := r1; row <= r2; row++ {
			grid[row][c1] = '|'
			grid[row][c2] = '|'
		}
		grid[r1][c1], grid[r1][c2] = '+', '+'
		grid[r2][c1], grid[r2][c2] = '+', '+'
	}
	pc, pr := project(pivot)
	grid[pr][pc] = 'x'

	direct.Clear()
	direct.MoveCursor(1, 1)
	for _, row := range grid {
		line := string(row)
		if receiver.Config.WithColor {
			line = direct.Color(line, direct.GREEN)
		}
		direct.Println(line)
	}
	direct.Printf("pivot (%.2f, %.2f)  [arrows] move  [+/-] scale  [s] snapshot  [q] quit\n",
		pivot.X, pivot.Y)
	receiver.Report(scene)
}

func NewConsoleView(config *AppConfig) (*ConsoleView, error) {
	return &ConsoleView{Config: config}, nil
}
