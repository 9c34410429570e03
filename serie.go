package theta

type serieKind int

const (
	kindNumber serieKind = iota
	kindLabel
)

// Serie holds the raw data of one chart axis. A serie is either numeric
// or categorical, never both: the kind is fixed at construction and every
// consumer switches on it.
type Serie struct {
	kind   serieKind
	values []float64
	labels []string
}

func NumberSerie(values ...float64) Serie {
	vs := make([]float64, len(values))
	copy(vs, values)
	return Serie{
		kind:   kindNumber,
		values: vs,
	}
}

func LabelSerie(labels ...string) Serie {
	ls := make([]string, len(labels))
	copy(ls, labels)
	return Serie{
		kind:   kindLabel,
		labels: ls,
	}
}

func (s Serie) IsLabel() bool {
	return s.kind == kindLabel
}

func (s Serie) Len() int {
	if s.kind == kindLabel {
		return len(s.labels)
	}
	return len(s.values)
}

// Stick is one plottable entry resolved from a Serie. Label is empty for
// numeric series; for label series Value carries the first-seen rank of
// the label so it can be fed to a label scaler directly.
type Stick struct {
	Label string
	Value float64
}

// Sticks resolves the serie in its original order. Each call returns a
// fresh slice; an empty serie gives an empty slice, not an error.
func (s Serie) Sticks() []Stick {
	if s.kind == kindNumber {
		all := make([]Stick, len(s.values))
		for i, v := range s.values {
			all[i] = Stick{Value: v}
		}
		return all
	}
	var (
		all  = make([]Stick, len(s.labels))
		rank = make(map[string]int, len(s.labels))
	)
	for i, label := range s.labels {
		x, ok := rank[label]
		if !ok {
			x = len(rank)
			rank[label] = x
		}
		all[i] = Stick{
			Label: label,
			Value: float64(x),
		}
	}
	return all
}

func (s Serie) min() float64 {
	var min float64
	for i, v := range s.values {
		if i == 0 || v < min {
			min = v
		}
	}
	return min
}

func (s Serie) max() float64 {
	var max float64
	for i, v := range s.values {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}
