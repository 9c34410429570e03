package theta

import (
	"bufio"
	"io"
	"log/slog"
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

// DefaultShiftDegrees is the hue rotation applied between consecutive
// series of a group when the caller does not pick one.
const DefaultShiftDegrees = 70.0

// LineChart renders a Cartesian as a polyline with point markers. The
// chart model owns all coordinate math; this type only turns the
// computed device pixels into markup. A chart in error renders as an
// empty canvas and the error goes to the logging collaborator.
type LineChart struct {
	Color  Color
	Point  PointFunc
	Logger *slog.Logger
}

func (c LineChart) Render(w io.Writer, ch Cartesian) error {
	var (
		view   = ch.View()
		canvas = view.Canvas()
		el     = svg.NewSVG()
	)
	el.Dim = svg.NewDim(canvas.Vector.X, canvas.Vector.Y)
	el.OmitProlog = true
	if err := ch.Err(); err != nil {
		c.logger().Error("line chart not drawn", "err", err)
	} else {
		el.Append(drawAxes(view, ch.AX(), ch.AY(), ch.X().IsLabel(), ch.Y().IsLabel()))
		el.Append(c.drawSerie(ch))
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c LineChart) drawSerie(ch Cartesian) svg.Element {
	var (
		area = ch.View().Chart()
		vec  = area.Vector
		ax   = ch.AX()
		ay   = ch.AY()
		xs   = ch.X().Sticks()
		ys   = ch.Y().Sticks()
		grp  = getBaseGroup(area.Origin, "inner-chart", "line")
	)
	if len(xs) == 0 {
		return grp.AsElement()
	}
	var (
		pat   = getBasePath(c.color().Hex())
		point = c.Point
		pos   svg.Pos
	)
	if point == nil {
		point = GetChartPoint
	}
	pos.X = ax.Scale(slices.Fst(xs).Value) * vec.X
	pos.Y = ay.Scale(slices.Fst(ys).Value) * vec.Y
	pat.AbsMoveTo(pos)
	grp.Append(point(pos))
	for i, st := range slices.Rest(xs) {
		pos.X = ax.Scale(st.Value) * vec.X
		pos.Y = ay.Scale(ys[i+1].Value) * vec.Y
		pat.AbsLineTo(pos)
		grp.Append(point(pos))
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

func (c LineChart) color() Color {
	var zero Color
	if c.Color == zero {
		return DefaultColor
	}
	return c.Color
}

func (c LineChart) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// BarGroupChart renders a CartesianGroup as grouped bars. Each label
// slot is cut into one band per serie, bands cover 90% of the slot and
// the rest is gutter; serie colors come from rotating the base hue by
// Shift degrees per serie index, or from Fill when a palette is given.
// Bars are drawn as thick line strokes, one per stick.
type BarGroupChart struct {
	Color  Color
	Shift  float64
	Fill   Palette
	Logger *slog.Logger
}

func (c BarGroupChart) Render(w io.Writer, g CartesianGroup) error {
	var (
		view   = g.View()
		canvas = view.Canvas()
		el     = svg.NewSVG()
	)
	el.Dim = svg.NewDim(canvas.Vector.X, canvas.Vector.Y)
	el.OmitProlog = true

	bw := bufio.NewWriter(w)
	defer bw.Flush()

	if err := g.Err(); err != nil {
		c.logger().Error("bar chart not drawn", "err", err)
		el.Render(bw)
		return nil
	}
	var (
		ax    = g.AXGroup()
		ay    = g.AYGroup()
		pairs = g.Data()
	)
	bars, err := c.drawBars(g, ax, ay)
	if err != nil {
		c.logger().Error("bar chart not drawn", "err", err)
		el.Render(bw)
		return err
	}
	var xlabel, ylabel bool
	if len(pairs) > 0 {
		xlabel = pairs[0].X.IsLabel()
		ylabel = pairs[0].Y.IsLabel()
	}
	el.Append(drawAxes(view, ax, ay, xlabel, ylabel))
	el.Append(bars)
	el.Render(bw)
	return nil
}

func (c BarGroupChart) drawBars(g CartesianGroup, ax, ay Scaler) (svg.Element, error) {
	var (
		area  = g.View().Chart()
		pairs = g.Data()
		grp   = getBaseGroup(area.Origin, "inner-chart", "bar")
	)
	if len(pairs) == 0 {
		return grp.AsElement(), nil
	}
	// the label side decides the orientation, settled once per render
	// from the first pair
	if pairs[0].X.IsLabel() {
		return c.vertical(grp, area.Vector, pairs, ax, ay)
	}
	return c.horizontal(grp, area.Vector, pairs, ax, ay)
}

func (c BarGroupChart) vertical(grp svg.Group, vec Point, pairs []Pair, ax, ay Scaler) (svg.Element, error) {
	count := ax.Count()
	if count == 0 {
		return grp.AsElement(), nil
	}
	width := math.Abs(BandWidth(count, len(pairs)) * vec.X)
	for index, pair := range pairs {
		var (
			stroke = svg.NewStroke(c.fill(index), width)
			sub    svg.Group
			ys     = pair.Y.Sticks()
		)
		for i, st := range pair.X.Sticks() {
			rank, err := ax.Rank(st.Label)
			if err != nil {
				return nil, err
			}
			var (
				x = BandCenter(rank, count, index, len(pairs)) * vec.X
				y = ay.Scale(ys[i].Value) * vec.Y
			)
			li := svg.NewLine(svg.NewPos(x, 0), svg.NewPos(x, y))
			li.Stroke = stroke
			sub.Append(li.AsElement())
		}
		grp.Append(sub.AsElement())
	}
	return grp.AsElement(), nil
}

func (c BarGroupChart) horizontal(grp svg.Group, vec Point, pairs []Pair, ax, ay Scaler) (svg.Element, error) {
	count := ay.Count()
	if count == 0 {
		return grp.AsElement(), nil
	}
	width := math.Abs(BandWidth(count, len(pairs)) * vec.Y)
	for index, pair := range pairs {
		var (
			stroke = svg.NewStroke(c.fill(index), width)
			sub    svg.Group
			xs     = pair.X.Sticks()
		)
		for i, st := range pair.Y.Sticks() {
			rank, err := ay.Rank(st.Label)
			if err != nil {
				return nil, err
			}
			var (
				x = ax.Scale(xs[i].Value) * vec.X
				y = BandCenter(rank, count, index, len(pairs)) * vec.Y
			)
			li := svg.NewLine(svg.NewPos(0, y), svg.NewPos(x, y))
			li.Stroke = stroke
			sub.Append(li.AsElement())
		}
		grp.Append(sub.AsElement())
	}
	return grp.AsElement(), nil
}

func (c BarGroupChart) fill(index int) string {
	if len(c.Fill) > 0 {
		return c.Fill.Color(index)
	}
	return c.color().ShiftHueDegreesIndex(c.shift(), index).Hex()
}

func (c BarGroupChart) color() Color {
	var zero Color
	if c.Color == zero {
		return DefaultColor
	}
	return c.Color
}

func (c BarGroupChart) shift() float64 {
	if c.Shift == 0 {
		return DefaultShiftDegrees
	}
	return c.Shift
}

func (c BarGroupChart) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func drawAxes(view View, ax, ay Scaler, xlabel, ylabel bool) svg.Element {
	var g svg.Group
	g.Id = "axes"
	bottom := Axis{
		Orientation:    OrientBottom,
		Region:         view.XAxis(),
		Ticks:          ax.Ticks(),
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
	if xlabel && ax.Count() > 0 {
		bottom.Align = 0.5 / float64(ax.Count())
	}
	left := Axis{
		Orientation:    OrientLeft,
		Region:         view.YAxis(),
		Ticks:          ay.Ticks(),
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
	if ylabel && ay.Count() > 0 {
		left.Align = 0.5 / float64(ay.Count())
	}
	g.Append(bottom.Render())
	g.Append(left.Render())
	return g.AsElement()
}

func getBaseGroup(origin Point, class ...string) svg.Group {
	var g svg.Group
	g.Class = class
	g.Transform = svg.Translate(origin.X, origin.Y)
	return g
}

func getBasePath(color string) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(color, 1)
	pat.Fill = svg.NewFill("none")
	return pat
}
