package theta

import (
	"fmt"
	"math"
)

// Corner selects which corner of the plot area hosts the chart origin.
// Values match the numeric positions of the configuration surface.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

func (c Corner) left() bool {
	return c == TopLeft || c == BottomLeft
}

func (c Corner) top() bool {
	return c == TopLeft || c == TopRight
}

type Point struct {
	X float64
	Y float64
}

// Rect is a chart sub-region: an origin in canvas pixels plus a vector
// spanning the region. The vector components are signed so that scaling a
// normalized value by the vector always walks from the origin into the
// region, whatever corner the origin sits in.
type Rect struct {
	Origin Point
	Vector Point
}

func (r Rect) Width() float64 {
	return math.Abs(r.Vector.X)
}

func (r Rect) Height() float64 {
	return math.Abs(r.Vector.Y)
}

// View is the pixel layout of one chart: the whole canvas, the plot
// area, and the two axis strips. The y-axis strip sits left of the plot
// and the x-axis strip below it; margin pads the two remaining sides.
// The four regions tile the canvas exactly.
type View struct {
	canvas Rect
	chart  Rect
	xaxis  Rect
	yaxis  Rect
}

func NewView(width, height int, corner Corner, xAxisHeight, yAxisWidth, margin int) (View, error) {
	var view View
	if corner < TopLeft || corner > BottomLeft {
		return view, fmt.Errorf("%w: origin position %d", ErrBadGeometry, corner)
	}
	var (
		w  = float64(width)
		h  = float64(height)
		hx = float64(xAxisHeight)
		wy = float64(yAxisWidth)
		mg = float64(margin)
	)
	if hx < 0 || wy < 0 || mg < 0 {
		return view, fmt.Errorf("%w: negative axis or margin size", ErrBadGeometry)
	}
	var (
		innerW = w - wy - mg
		innerH = h - hx - mg
	)
	if innerW <= 0 || innerH <= 0 {
		return view, fmt.Errorf("%w: %dx%d leaves no plot area for axis %dx%d and margin %d",
			ErrBadGeometry, width, height, xAxisHeight, yAxisWidth, margin)
	}
	view.canvas = Rect{
		Vector: Point{X: w, Y: h},
	}
	chart := Rect{
		Origin: Point{X: wy, Y: mg},
		Vector: Point{X: innerW, Y: innerH},
	}
	if !corner.left() {
		chart.Origin.X += innerW
		chart.Vector.X = -innerW
	}
	if !corner.top() {
		chart.Origin.Y += innerH
		chart.Vector.Y = -innerH
	}
	view.chart = chart
	view.xaxis = Rect{
		Origin: Point{X: chart.Origin.X, Y: h - hx},
		Vector: Point{X: chart.Vector.X, Y: hx},
	}
	view.yaxis = Rect{
		Origin: Point{X: 0, Y: chart.Origin.Y},
		Vector: Point{X: wy, Y: chart.Vector.Y},
	}
	return view, nil
}

// Canvas is the whole requested drawing surface, origin (0,0).
func (v View) Canvas() Rect {
	return v.canvas
}

// Chart is the plot area. Point coordinates produced by the chart models
// are local to this rect's origin.
func (v View) Chart() Rect {
	return v.chart
}

// XAxis is the horizontal axis strip, aligned with the plot origin.
func (v View) XAxis() Rect {
	return v.xaxis
}

// YAxis is the vertical axis strip, aligned with the plot origin.
func (v View) YAxis() Rect {
	return v.yaxis
}
