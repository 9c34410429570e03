package theta

import (
	"fmt"
	"strconv"
)

// DefaultTicks is the number of intervals a numeric axis is partitioned
// into when no explicit tick count is given.
const DefaultTicks = 5

// Tick is one axis tick descriptor. Position is normalized to [0,1]
// along the axis; converting it to pixels is the renderer's business.
type Tick struct {
	Position float64
	Text     string
}

type Scaler interface {
	// Scale maps a stick value to a normalized position in [0,1].
	Scale(float64) float64
	// Rank gives the 0-based first-seen rank of a label. Looking up a
	// label outside the domain is a contract violation and returns an
	// error wrapping ErrUnknownLabel.
	Rank(string) (int, error)
	// Ticks generates the axis tick descriptors for the domain.
	Ticks() []Tick
	// Count reports the number of domain buckets: distinct labels for a
	// label scaler, interval count for a number scaler.
	Count() int
}

// NewScaler derives a scaler from one or more series sharing an axis.
// All series must be of the same kind; numeric domains are merged to
// their min/max union, label domains to the first-seen union of labels.
func NewScaler(series ...Serie) (Scaler, error) {
	if len(series) == 0 {
		return NumberScaler(0, 0), nil
	}
	label := series[0].IsLabel()
	for _, s := range series {
		if s.IsLabel() != label {
			return nil, fmt.Errorf("%w: label and number series on one axis", ErrMixedSeries)
		}
	}
	if label {
		var all []string
		for _, s := range series {
			all = append(all, s.labels...)
		}
		return LabelScaler(all...), nil
	}
	var (
		min  float64
		max  float64
		seen bool
	)
	for _, s := range series {
		if s.Len() == 0 {
			continue
		}
		if lo := s.min(); !seen || lo < min {
			min = lo
		}
		if hi := s.max(); !seen || hi > max {
			max = hi
		}
		seen = true
	}
	return NumberScaler(min, max), nil
}

type numberScaler struct {
	min   float64
	max   float64
	ticks int
}

func NumberScaler(min, max float64) Scaler {
	return NumberScalerN(min, max, DefaultTicks)
}

func NumberScalerN(min, max float64, ticks int) Scaler {
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	return numberScaler{
		min:   min,
		max:   max,
		ticks: ticks,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	if n.min == n.max {
		return 0.5
	}
	x := (v - n.min) / (n.max - n.min)
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func (n numberScaler) Rank(label string) (int, error) {
	return 0, fmt.Errorf("%w: %q on numeric axis", ErrUnknownLabel, label)
}

func (n numberScaler) Ticks() []Tick {
	if n.min == n.max {
		t := Tick{
			Position: 0.5,
			Text:     formatTick(n.min),
		}
		return []Tick{t}
	}
	var (
		all  = make([]Tick, 0, n.ticks+1)
		step = (n.max - n.min) / float64(n.ticks)
	)
	for i := 0; i <= n.ticks; i++ {
		v := n.min + float64(i)*step
		all = append(all, Tick{
			Position: n.Scale(v),
			Text:     formatTick(v),
		})
	}
	return all
}

func (n numberScaler) Count() int {
	return n.ticks
}

type labelScaler struct {
	labels []string
	ranks  map[string]int
}

// LabelScaler builds a categorical scaler over the given labels,
// deduplicated in first-seen order.
func LabelScaler(labels ...string) Scaler {
	s := labelScaler{
		ranks: make(map[string]int, len(labels)),
	}
	for _, label := range labels {
		if _, ok := s.ranks[label]; ok {
			continue
		}
		s.ranks[label] = len(s.labels)
		s.labels = append(s.labels, label)
	}
	return s
}

// Scale maps a value expressed in rank units to its slot position. It is
// also how grouped renderers turn a slot fraction into an axis fraction:
// Scale(0.9/G) times the axis extent is the pixel width of one band.
func (s labelScaler) Scale(v float64) float64 {
	if len(s.labels) == 0 {
		return 0
	}
	return v / float64(len(s.labels))
}

func (s labelScaler) Rank(label string) (int, error) {
	x, ok := s.ranks[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return x, nil
}

func (s labelScaler) Ticks() []Tick {
	all := make([]Tick, len(s.labels))
	for i, label := range s.labels {
		all[i] = Tick{
			Position: s.Scale(float64(i)),
			Text:     label,
		}
	}
	return all
}

func (s labelScaler) Count() int {
	return len(s.labels)
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
