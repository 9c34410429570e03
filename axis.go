package theta

import (
	"github.com/midbel/svg"
)

const FontSize = 12.0

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Axis draws one axis strip from the tick descriptors a scaler
// generated. Region is the strip rect of the view; tick positions are
// normalized and get stretched along the region's long side, so the
// strip inherits the orientation the view chose for the plot.
type Axis struct {
	Orientation
	Region Rect
	Ticks  []Tick

	// Align shifts ticks and labels by a normalized offset along the
	// axis. Label axes set it to half a slot so labels sit centered
	// under their band; number axes leave it at zero.
	Align float64

	WithInnerTicks bool
	WithLabelTicks bool
}

func (a Axis) Render() svg.Element {
	var (
		left   = a.Region.Origin.X
		top    = a.Region.Origin.Y
		length = a.Region.Vector.X
	)
	if a.Vertical() {
		// ticks hang off the inner edge of the strip
		left += a.Region.Vector.X
		length = a.Region.Vector.Y
	}
	var (
		g      = svg.Group{Transform: svg.Translate(left, top)}
		d      = domainLine(a.Orientation, length)
		font   = svg.NewFont(FontSize)
		offset = a.Align * length
	)
	g.Append(d.AsElement())
	for _, t := range a.Ticks {
		var (
			pos = t.Position * length
			grp = svg.Group{Transform: svg.Translate(pos, 0)}
		)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, offset, FontSize*0.8, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, t.Text, offset, font)
			grp.Append(text.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func domainLine(orient Orientation, length float64) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = svg.NewStroke("black", 1)
	return d
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = offset, FontSize * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
