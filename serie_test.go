package theta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerie_Sticks(t *testing.T) {
	s := NumberSerie(0.7, 1.5, 1.9)
	sticks := s.Sticks()
	require.Len(t, sticks, 3)
	for i, want := range []float64{0.7, 1.5, 1.9} {
		assert.Equal(t, want, sticks[i].Value)
		assert.Empty(t, sticks[i].Label)
	}
}

func TestSerie_SticksLabel(t *testing.T) {
	s := LabelSerie("A", "B", "A", "C")
	sticks := s.Sticks()
	require.Len(t, sticks, 4)

	want := []Stick{
		{Label: "A", Value: 0},
		{Label: "B", Value: 1},
		{Label: "A", Value: 0},
		{Label: "C", Value: 2},
	}
	assert.Equal(t, want, sticks)
}

func TestSerie_SticksEmpty(t *testing.T) {
	assert.Empty(t, NumberSerie().Sticks())
	assert.Empty(t, LabelSerie().Sticks())
}

func TestSerie_SticksRestartable(t *testing.T) {
	s := LabelSerie("x", "y")
	fst := s.Sticks()
	fst[0].Label = "mutated"
	assert.Equal(t, "x", s.Sticks()[0].Label)
}

func TestSerie_Len(t *testing.T) {
	assert.Equal(t, 3, NumberSerie(1, 2, 3).Len())
	assert.Equal(t, 2, LabelSerie("a", "b").Len())
	assert.Zero(t, Serie{}.Len())
}
