package theta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberScaler_Scale(t *testing.T) {
	s := NumberScaler(2, 10)
	assert.Equal(t, 0.0, s.Scale(2))
	assert.Equal(t, 1.0, s.Scale(10))
	assert.InDelta(t, 0.5, s.Scale(6), 1e-9)
}

func TestNumberScaler_ScaleClamped(t *testing.T) {
	s := NumberScaler(0, 4)
	assert.Equal(t, 0.0, s.Scale(-10))
	assert.Equal(t, 1.0, s.Scale(100))
}

func TestNumberScaler_ScaleDegenerate(t *testing.T) {
	s := NumberScaler(3, 3)
	for _, v := range []float64{-1, 0, 3, 1e9} {
		assert.Equal(t, 0.5, s.Scale(v))
	}
}

func TestNumberScaler_Ticks(t *testing.T) {
	s := NumberScaler(0, 10)
	ticks := s.Ticks()
	require.Len(t, ticks, DefaultTicks+1)
	assert.Equal(t, 0.0, ticks[0].Position)
	assert.Equal(t, 1.0, ticks[len(ticks)-1].Position)
	for i, tick := range ticks {
		assert.InDelta(t, float64(i)/DefaultTicks, tick.Position, 1e-9)
	}
	assert.Equal(t, "0", ticks[0].Text)
	assert.Equal(t, "10.00", ticks[len(ticks)-1].Text)
}

func TestNumberScaler_TicksRoundTrip(t *testing.T) {
	var (
		min = 1.3
		max = 97.2
		s   = NumberScalerN(min, max, 7)
	)
	ticks := s.Ticks()
	require.Len(t, ticks, 8)
	for i, tick := range ticks {
		v := min + float64(i)*(max-min)/7
		assert.InDelta(t, tick.Position, s.Scale(v), 1e-9)
	}
}

func TestNumberScaler_TicksDegenerate(t *testing.T) {
	ticks := NumberScaler(5, 5).Ticks()
	require.Len(t, ticks, 1)
	assert.Equal(t, 0.5, ticks[0].Position)
}

func TestLabelScaler_Rank(t *testing.T) {
	s := LabelScaler("A", "B", "A", "C")
	require.Equal(t, 3, s.Count())

	seen := make(map[int]struct{})
	for _, label := range []string{"A", "B", "C"} {
		fst, err := s.Rank(label)
		require.NoError(t, err)
		snd, err := s.Rank(label)
		require.NoError(t, err)
		assert.Equal(t, fst, snd)

		_, dup := seen[fst]
		assert.False(t, dup, "rank %d assigned twice", fst)
		seen[fst] = struct{}{}
	}

	_, err := s.Rank("D")
	assert.ErrorIs(t, err, ErrUnknownLabel)
}

func TestLabelScaler_Scale(t *testing.T) {
	s := LabelScaler("A", "B", "C")
	assert.InDelta(t, 1.0/3, s.Scale(1), 1e-9)
	assert.InDelta(t, 0.3, s.Scale(0.9), 1e-9)
}

func TestLabelScaler_Ticks(t *testing.T) {
	ticks := LabelScaler("A", "B", "C").Ticks()
	require.Len(t, ticks, 3)
	assert.Equal(t, "B", ticks[1].Text)
	assert.InDelta(t, 1.0/3, ticks[1].Position, 1e-9)
}

func TestNewScaler_Merge(t *testing.T) {
	s, err := NewScaler(NumberSerie(3, 7), NumberSerie(-2, 5))
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Scale(-2))
	assert.Equal(t, 1.0, s.Scale(7))

	s, err = NewScaler(LabelSerie("A", "B"), LabelSerie("B", "C"))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count())
	x, err := s.Rank("C")
	require.NoError(t, err)
	assert.Equal(t, 2, x)
}

func TestNewScaler_Mixed(t *testing.T) {
	_, err := NewScaler(LabelSerie("A"), NumberSerie(1))
	assert.ErrorIs(t, err, ErrMixedSeries)
}

func TestNewScaler_Empty(t *testing.T) {
	s, err := NewScaler(NumberSerie())
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.Scale(42))
}
