package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally(t *testing.T) {
	tl := New()
	tl.Add("b")
	tl.Add("a")
	tl.AddN("b", 2)
	tl.AddN("c", 0)

	assert.Equal(t, uint64(4), tl.Total())
	assert.Equal(t, uint64(3), tl.Count("b"))
	assert.Equal(t, uint64(0), tl.Count("c"))
	assert.Equal(t, []string{"a", "b"}, tl.Keys())
	assert.Equal(t, map[string]float64{"a": 0.25, "b": 0.75}, tl.Frequencies())
}

func TestTally_Merge(t *testing.T) {
	a := New()
	a.AddN("x", 3)
	b := New()
	b.AddN("x", 1)
	b.AddN("y", 6)

	a.Merge(b)
	assert.Equal(t, uint64(10), a.Total())
	assert.Equal(t, uint64(4), a.Count("x"))
	assert.Equal(t, uint64(6), a.Count("y"))
	assert.Equal(t, uint64(7), b.Total())
}

func TestTally_ChiSquare(t *testing.T) {
	tl := New()
	tl.AddN("heads", 60)
	tl.AddN("tails", 40)

	stat, dof, err := tl.ChiSquare(map[string]float64{"heads": 1, "tails": 1})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, stat, 1e-9)
	assert.Equal(t, 1, dof)

	stat, _, err = tl.ChiSquare(map[string]float64{"heads": 0.6, "tails": 0.4, "edge": 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, stat, 1e-9)
}

func TestTally_ChiSquareErrors(t *testing.T) {
	_, _, err := New().ChiSquare(map[string]float64{"a": 1})
	assert.ErrorIs(t, err, ErrNoDraws)

	tl := New()
	tl.Add("a")
	_, _, err = tl.ChiSquare(map[string]float64{"a": -1})
	assert.ErrorIs(t, err, ErrInvalidExpected)
	_, _, err = tl.ChiSquare(map[string]float64{"a": 0})
	assert.ErrorIs(t, err, ErrInvalidExpected)
	_, _, err = tl.ChiSquare(map[string]float64{"b": 1})
	assert.ErrorIs(t, err, ErrUnexpectedResult)
}
