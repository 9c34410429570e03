package theta

import "fmt"

// Cartesian is a single-pair chart model: one x serie, one y serie, a
// viewport, and the two scalers derived from the series. It is built by
// value, so a constructed chart is read-only at render time.
type Cartesian struct {
	x Serie
	y Serie

	ax Scaler
	ay Scaler

	view View
	err  error
}

func NewCartesian(x, y Serie) Cartesian {
	c := Cartesian{
		x: x,
		y: y,
	}
	if x.Len() != y.Len() {
		c.err = fmt.Errorf("%w: x has %d entries, y has %d", ErrMismatched, x.Len(), y.Len())
	}
	c.ax, _ = NewScaler(x)
	c.ay, _ = NewScaler(y)
	return c
}

// SetView attaches the viewport geometry. A configuration that leaves no
// plot area is recorded as the chart error rather than returned, so the
// builder chain never breaks; renderers check Err before drawing.
func (c Cartesian) SetView(width, height int, corner Corner, xAxisHeight, yAxisWidth, margin int) Cartesian {
	view, err := NewView(width, height, corner, xAxisHeight, yAxisWidth, margin)
	c.view = view
	if err != nil && c.err == nil {
		c.err = err
	}
	return c
}

func (c Cartesian) View() View {
	return c.view
}

func (c Cartesian) X() Serie {
	return c.x
}

func (c Cartesian) Y() Serie {
	return c.y
}

func (c Cartesian) AX() Scaler {
	return c.ax
}

func (c Cartesian) AY() Scaler {
	return c.ay
}

func (c Cartesian) Err() error {
	return c.err
}

// Pair is one positional (x, y) serie pair of a group.
type Pair struct {
	X Serie
	Y Serie
}

// CartesianGroup is a multi-pair chart model. All pairs share one
// viewport and one scaler per axis; the number of pairs drives the band
// subdivision of grouped bars.
type CartesianGroup struct {
	pairs []Pair
	view  View
	err   error
}

func NewGroup() CartesianGroup {
	return CartesianGroup{}
}

// AddData appends a serie pair. Grouping is positional: the index at
// which a pair is added keys its band offset and its color.
func (g CartesianGroup) AddData(x, y Serie) CartesianGroup {
	if x.Len() != y.Len() && g.err == nil {
		g.err = fmt.Errorf("%w: pair %d: x has %d entries, y has %d",
			ErrMismatched, len(g.pairs), x.Len(), y.Len())
	}
	pairs := make([]Pair, len(g.pairs), len(g.pairs)+1)
	copy(pairs, g.pairs)
	g.pairs = append(pairs, Pair{X: x, Y: y})
	return g
}

func (g CartesianGroup) SetView(width, height int, corner Corner, xAxisHeight, yAxisWidth, margin int) CartesianGroup {
	view, err := NewView(width, height, corner, xAxisHeight, yAxisWidth, margin)
	g.view = view
	if err != nil && g.err == nil {
		g.err = err
	}
	return g
}

func (g CartesianGroup) View() View {
	return g.view
}

func (g CartesianGroup) Data() []Pair {
	pairs := make([]Pair, len(g.pairs))
	copy(pairs, g.pairs)
	return pairs
}

// AXGroup is the scaler merged over every x serie of the group. When the
// group is in error the returned scaler is a degenerate fallback; Err
// reports the real failure.
func (g CartesianGroup) AXGroup() Scaler {
	s, err := NewScaler(g.xseries()...)
	if err != nil {
		return NumberScaler(0, 0)
	}
	return s
}

// AYGroup is the scaler merged over every y serie of the group.
func (g CartesianGroup) AYGroup() Scaler {
	s, err := NewScaler(g.yseries()...)
	if err != nil {
		return NumberScaler(0, 0)
	}
	return s
}

func (g CartesianGroup) Err() error {
	if g.err != nil {
		return g.err
	}
	if _, err := NewScaler(g.xseries()...); err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	if _, err := NewScaler(g.yseries()...); err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	return nil
}

// BandCenter gives the normalized axis position of the center of the
// bar drawn by serie index for the label at rank, in a group of groups
// series over count labels. Each label slot spans 1/count of the axis;
// the series bands cover 90% of the slot, offset past a 5% gutter, so
// bars of one slot never touch the next slot or each other.
func BandCenter(rank, count, index, groups int) float64 {
	var (
		band     = 0.9 / float64(groups)
		interval = 1 / float64(count)
	)
	return float64(rank)*interval + (band*float64(index)+band/2+0.05)*interval
}

// BandWidth gives the normalized width of one bar band.
func BandWidth(count, groups int) float64 {
	return 0.9 / float64(groups) / float64(count)
}

func (g CartesianGroup) xseries() []Serie {
	all := make([]Serie, len(g.pairs))
	for i, p := range g.pairs {
		all[i] = p.X
	}
	return all
}

func (g CartesianGroup) yseries() []Serie {
	all := make([]Serie, len(g.pairs))
	for i, p := range g.pairs {
		all[i] = p.Y
	}
	return all
}
