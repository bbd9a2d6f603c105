package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePolygon(t *testing.T) *Polygon {
	t.Helper()
	poly, err := NewPolygon([]Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 4},
	})
	require.NoError(t, err)
	return poly
}

func TestPolygonShoelaceArea(t *testing.T) {
	poly := samplePolygon(t)
	// shoelace half-sum: (0 + 2 + 2 + 5 + 0) / 2
	assert.InDelta(t, 4.5, poly.Area(), precision)
}

func TestPolygonAreaIgnoresWinding(t *testing.T) {
	clockwise, err := NewPolygon([]Point{
		{X: 1, Y: 4}, {X: 2, Y: 3}, {X: 2, Y: 2}, {X: 1, Y: 0}, {X: 0, Y: 0},
	})
	require.NoError(t, err)
	assert.InDelta(t, samplePolygon(t).Area(), clockwise.Area(), precision)
}

func TestPolygonFrameRect(t *testing.T) {
	frame := samplePolygon(t).FrameRect()
	assert.True(t, frame.Equal(Rect{
		Size:   Size{W: 2, H: 4},
		Center: Point{X: 1, Y: 2},
	}, precision))
}

func TestPolygonCentroid(t *testing.T) {
	poly := samplePolygon(t)
	assert.True(t, poly.GetXY().Equal(Point{X: 29.0 / 27.0, Y: 49.0 / 27.0}, precision))
}

func TestPolygonConstructionErrors(t *testing.T) {
	_, err := NewPolygon([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, VertexCountError)

	// collinear, signed area is exactly zero
	_, err = NewPolygon([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}})
	assert.ErrorIs(t, err, DegenerateVertexError)
}

func TestPolygonOwnsItsBuffer(t *testing.T) {
	source := []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	poly, err := NewPolygon(source)
	require.NoError(t, err)

	source[0] = Point{X: 100, Y: 100}
	assert.InDelta(t, 2.0, poly.Area(), precision, "caller slice mutation must not leak in")
}

func TestPolygonMoveTranslatesVerticesAndCentroid(t *testing.T) {
	poly := samplePolygon(t)
	area := poly.Area()

	poly.MoveTo(Point{X: 5, Y: 5})
	assert.True(t, poly.GetXY().Equal(Point{X: 5, Y: 5}, precision))
	assert.InDelta(t, area, poly.Area(), precision)

	before := poly.FrameRect()
	poly.MoveBy(1.5, -2.5)
	poly.MoveBy(-1.5, 2.5)
	assert.True(t, poly.FrameRect().Equal(before, precision))
}

func TestPolygonScaleKeepsCentroid(t *testing.T) {
	poly := samplePolygon(t)
	center := poly.GetXY()
	area := poly.Area()

	require.NoError(t, poly.Scale(3))
	assert.True(t, poly.GetXY().Equal(center, precision))
	assert.InDelta(t, 9*area, poly.Area(), 1e-9)

	frame := poly.FrameRect()
	assert.InDelta(t, 6.0, frame.W, precision)
	assert.InDelta(t, 12.0, frame.H, precision)
}

func TestPolygonScaleRejectsWithoutMutation(t *testing.T) {
	poly := samplePolygon(t)
	before := poly.Vertices()

	assert.ErrorIs(t, poly.Scale(0), ScaleFactorError)
	assert.Equal(t, before, poly.Vertices())
}

func TestPolygonCopyIsDeep(t *testing.T) {
	poly := samplePolygon(t)
	clone := poly.Copy()

	require.NoError(t, clone.Scale(2))
	assert.InDelta(t, 4.5, poly.Area(), precision, "original untouched by clone mutation")
	assert.InDelta(t, 18.0, clone.Area(), precision)
}

func TestPolygonDetachTransfersOwnership(t *testing.T) {
	poly := samplePolygon(t)
	vertices := poly.Detach()

	assert.Len(t, vertices, 5)
	assert.Empty(t, poly.Vertices())

	rebuilt, err := NewPolygon(vertices)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, rebuilt.Area(), precision)
}
