package theta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewView(t *testing.T) {
	v, err := NewView(840, 640, TopLeft, 50, 50, 20)
	require.NoError(t, err)

	chart := v.Chart()
	assert.Equal(t, Point{X: 50, Y: 20}, chart.Origin)
	assert.Equal(t, Point{X: 770, Y: 570}, chart.Vector)

	canvas := v.Canvas()
	assert.Equal(t, Point{}, canvas.Origin)
	assert.Equal(t, Point{X: 840, Y: 640}, canvas.Vector)

	xaxis := v.XAxis()
	assert.Equal(t, Point{X: 50, Y: 590}, xaxis.Origin)
	assert.Equal(t, 50.0, xaxis.Height())

	yaxis := v.YAxis()
	assert.Equal(t, Point{X: 0, Y: 20}, yaxis.Origin)
	assert.Equal(t, 50.0, yaxis.Width())
}

func TestNewView_Corners(t *testing.T) {
	tests := []struct {
		Corner Corner
		Origin Point
		Vector Point
	}{
		{Corner: TopLeft, Origin: Point{X: 50, Y: 20}, Vector: Point{X: 770, Y: 570}},
		{Corner: TopRight, Origin: Point{X: 820, Y: 20}, Vector: Point{X: -770, Y: 570}},
		{Corner: BottomRight, Origin: Point{X: 820, Y: 590}, Vector: Point{X: -770, Y: -570}},
		{Corner: BottomLeft, Origin: Point{X: 50, Y: 590}, Vector: Point{X: 770, Y: -570}},
	}
	for _, tt := range tests {
		v, err := NewView(840, 640, tt.Corner, 50, 50, 20)
		require.NoError(t, err)
		chart := v.Chart()
		assert.Equal(t, tt.Origin, chart.Origin, "corner %d origin", tt.Corner)
		assert.Equal(t, tt.Vector, chart.Vector, "corner %d vector", tt.Corner)
		// strips follow the plot orientation
		assert.Equal(t, chart.Vector.X, v.XAxis().Vector.X)
		assert.Equal(t, chart.Vector.Y, v.YAxis().Vector.Y)
	}
}

func TestNewView_Tiling(t *testing.T) {
	v, err := NewView(820, 620, BottomLeft, 100, 100, 20)
	require.NoError(t, err)
	assert.Equal(t, 820.0, v.Chart().Width()+v.YAxis().Width()+20)
	assert.Equal(t, 620.0, v.Chart().Height()+v.XAxis().Height()+20)
}

func TestNewView_BadGeometry(t *testing.T) {
	_, err := NewView(100, 100, BottomLeft, 60, 60, 40)
	assert.ErrorIs(t, err, ErrBadGeometry)

	_, err = NewView(800, 600, BottomLeft, 50, 50, -1)
	assert.ErrorIs(t, err, ErrBadGeometry)

	_, err = NewView(800, 600, Corner(7), 50, 50, 20)
	assert.ErrorIs(t, err, ErrBadGeometry)
}
