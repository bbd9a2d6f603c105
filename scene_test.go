package main

import (
	"GoConsoleShapes/shape"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const precision = 1e-9

func TestDemoSceneTotalArea(t *testing.T) {
	scene, err := NewDemoScene()
	require.NoError(t, err)
	require.Equal(t, 3, scene.Len())

	expected := 5.0 + math.Pi*(19.36-1.21) + 4.5
	assert.InDelta(t, expected, scene.TotalArea(), 1e-9)
}

func TestSceneFrameRectUnion(t *testing.T) {
	scene, err := NewDemoScene()
	require.NoError(t, err)

	frame, err := scene.FrameRect()
	require.NoError(t, err)
	// rubber frame spans [-3.4, 5.4]^2, polygon tops out at y=5.5 via the rect
	assert.True(t, frame.Equal(shape.Rect{
		Size:   shape.Size{W: 8.8, H: 8.9},
		Center: shape.Point{X: 1, Y: 1.05},
	}, precision))
}

func TestSceneFrameRectOrderInvariant(t *testing.T) {
	build := func(order []int) *Scene {
		demo, err := NewDemoScene()
		require.NoError(t, err)
		scene, _ := NewScene()
		for _, i := range order {
			scene.Add(demo.Shapes()[i])
		}
		return scene
	}
	reference, err := build([]int{0, 1, 2}).FrameRect()
	require.NoError(t, err)
	for _, order := range [][]int{{2, 1, 0}, {1, 0, 2}, {2, 0, 1}} {
		frame, err := build(order).FrameRect()
		require.NoError(t, err)
		assert.True(t, frame.Equal(reference, precision))
	}
}

func TestSceneFrameRectEmpty(t *testing.T) {
	scene, _ := NewScene()
	_, err := scene.FrameRect()
	assert.ErrorIs(t, err, EmptySceneError)
	assert.Zero(t, scene.TotalArea())
}

func TestScaleAboutOwnCenterEqualsPlainScale(t *testing.T) {
	scene, err := NewDemoScene()
	require.NoError(t, err)
	for _, object := range scene.Shapes() {
		direct := copyShape(object)
		require.NoError(t, direct.Scale(1.5))

		require.NoError(t, ScaleAbout(object, object.GetXY(), 1.5))
		assert.True(t, object.FrameRect().Equal(direct.FrameRect(), 1e-9),
			"pivot on own reference must reduce to Scale for %s", kindOf(object))
	}
}

func TestScaleAboutClosedForm(t *testing.T) {
	rect, err := shape.NewRectangle(2, 4, shape.Point{X: 6, Y: 2})
	require.NoError(t, err)

	pivot := shape.Point{X: 1, Y: 1}
	require.NoError(t, ScaleAbout(rect, pivot, 3))

	// reference lands on pivot + k*(old - pivot)
	assert.True(t, rect.GetXY().Equal(shape.Point{X: 16, Y: 4}, precision))
	assert.InDelta(t, 6.0, rect.FrameRect().W, precision)
	assert.InDelta(t, 12.0, rect.FrameRect().H, precision)
}

func TestScaleAboutScalesAreaQuadratically(t *testing.T) {
	scene, err := NewDemoScene()
	require.NoError(t, err)
	areas := make([]float64, scene.Len())
	for i, object := range scene.Shapes() {
		areas[i] = object.Area()
	}

	require.NoError(t, scene.ScaleAbout(shape.Point{X: -2, Y: 7}, 2))
	for i, object := range scene.Shapes() {
		assert.InDelta(t, 4*areas[i], object.Area(), 1e-9)
	}
}

func TestScaleAboutRejectsBadFactor(t *testing.T) {
	scene, err := NewDemoScene()
	require.NoError(t, err)
	before, err := scene.FrameRect()
	require.NoError(t, err)

	assert.ErrorIs(t, scene.ScaleAbout(shape.Point{}, 0), shape.ScaleFactorError)
	assert.ErrorIs(t, scene.ScaleAbout(shape.Point{}, -1), shape.ScaleFactorError)

	after, err := scene.FrameRect()
	require.NoError(t, err)
	assert.True(t, after.Equal(before, precision), "failed scale must not move anything")
}

func TestSceneCopyIsDeep(t *testing.T) {
	scene, err := NewDemoScene()
	require.NoError(t, err)
	clone := scene.Copy()
	require.Equal(t, scene.Len(), clone.Len())

	require.NoError(t, clone.ScaleAbout(shape.Point{X: 10, Y: 10}, 2))
	expected := 5.0 + math.Pi*(19.36-1.21) + 4.5
	assert.InDelta(t, expected, scene.TotalArea(), 1e-9, "original untouched")
	assert.InDelta(t, 4*expected, clone.TotalArea(), 1e-9)
}
