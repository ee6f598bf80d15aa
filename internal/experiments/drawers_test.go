package experiments

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/chancekit/approx"
	"github.com/petuhovskiy/chancekit/dice"
	"github.com/petuhovskiy/chancekit/internal/rngtest"
	"github.com/petuhovskiy/chancekit/sample"
)

func TestWeighted(t *testing.T) {
	w, err := NewWeighted(json.RawMessage(`{"Outcomes": [
		{"Value": "a", "Weight": 1},
		{"Value": "b", "Weight": 0},
		{"Value": "a", "Weight": 2}
	]}`))
	require.NoError(t, err)

	src := &rngtest.Script{Floats: []float64{0.1, 0.5}}
	got, err := w.Draw(src)
	require.NoError(t, err)
	assert.Equal(t, "a", got)
	got, err = w.Draw(src)
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	assert.Equal(t, map[string]float64{"a": 3, "b": 0}, w.Expected())

	_, err = NewWeighted(nil)
	assert.ErrorIs(t, err, sample.ErrEmptyDistribution)
	_, err = NewWeighted(json.RawMessage(`{"Outcomes": [{"Value": "a", "Weight": -1}]}`))
	assert.ErrorIs(t, err, ErrInvalidArgs)
	_, err = NewWeighted(json.RawMessage(`{"Outcomes": 5}`))
	assert.ErrorIs(t, err, ErrInvalidArgs)
}

func TestDice(t *testing.T) {
	d, err := NewDice(json.RawMessage(`{"Notation": "2d6+1"}`))
	require.NoError(t, err)

	got, err := d.Draw(&rngtest.Script{Ints: []int{5, 0}})
	require.NoError(t, err)
	assert.Equal(t, "8", got)

	exp := d.Expected()
	assert.Len(t, exp, 11)
	assert.InDelta(t, 1.0/36, exp["3"], 1e-12)
	assert.InDelta(t, 6.0/36, exp["8"], 1e-12)
	assert.InDelta(t, 1.0/36, exp["13"], 1e-12)

	var sum float64
	for _, w := range exp {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-12)

	many, err := NewDice(json.RawMessage(`{"Notation": "400d6"}`))
	require.NoError(t, err)
	assert.Len(t, many.Expected(), 2001)

	def, err := NewDice(nil)
	require.NoError(t, err)
	assert.Len(t, def.Expected(), 6)

	huge, err := NewDice(json.RawMessage(`{"Notation": "100d100"}`))
	require.NoError(t, err)
	assert.Nil(t, huge.Expected())

	widest, err := NewDice(json.RawMessage(`{"Notation": "1000d1000000"}`))
	require.NoError(t, err)
	assert.Nil(t, widest.Expected())
}

func TestCustomDice(t *testing.T) {
	d, err := NewCustomDice(json.RawMessage(`{"Faces": ["sword", "shield", "sword"]}`))
	require.NoError(t, err)

	got, err := d.Draw(&rngtest.Script{Ints: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, "shield", got)
	assert.Equal(t, map[string]float64{"sword": 2, "shield": 1}, d.Expected())

	w, err := NewCustomDice(json.RawMessage(`{"Faces": ["hit", "miss"], "Weights": [0.9, 0.1]}`))
	require.NoError(t, err)
	got, err = w.Draw(&rngtest.Script{Floats: []float64{0.95}})
	require.NoError(t, err)
	assert.Equal(t, "miss", got)

	_, err = NewCustomDice(json.RawMessage(`{}`))
	assert.ErrorIs(t, err, dice.ErrEmptyFaces)
	_, err = NewCustomDice(json.RawMessage(`{"Faces": ["a"], "Weights": [1, 2]}`))
	assert.ErrorIs(t, err, sample.ErrLengthMismatch)
	_, err = NewCustomDice(json.RawMessage(`{"Faces": ["a"], "Weights": [0]}`))
	assert.ErrorIs(t, err, sample.ErrDegenerateDistribution)
}

func TestCoin(t *testing.T) {
	fair, err := NewCoin(nil)
	require.NoError(t, err)
	got, err := fair.Draw(&rngtest.Script{Floats: []float64{0.7}})
	require.NoError(t, err)
	assert.Equal(t, "tails", got)

	biased, err := NewCoin(json.RawMessage(`{"PHeads": 0.9}`))
	require.NoError(t, err)
	got, err = biased.Draw(&rngtest.Script{Floats: []float64{0.7}})
	require.NoError(t, err)
	assert.Equal(t, "heads", got)
	assert.InDelta(t, 0.1, biased.Expected()["tails"], 1e-12)

	_, err = NewCoin(json.RawMessage(`{"PHeads": 1.2}`))
	assert.ErrorIs(t, err, ErrInvalidArgs)
}

func TestCard(t *testing.T) {
	c, err := NewCard(nil)
	require.NoError(t, err)
	assert.Len(t, c.Expected(), 52)
	got, err := c.Draw(&rngtest.Script{Ints: []int{13}})
	require.NoError(t, err)
	assert.Equal(t, "A of diamonds", got)

	s, err := NewCard(json.RawMessage(`{"SuitOnly": true}`))
	require.NoError(t, err)
	assert.Len(t, s.Expected(), 4)
	got, err = s.Draw(&rngtest.Script{Ints: []int{2}})
	require.NoError(t, err)
	assert.Equal(t, "clubs", got)
}

func TestJitter(t *testing.T) {
	j, err := NewJitter(approx.DefaultComparer[float64](), json.RawMessage(`{"Digits": 1}`))
	require.NoError(t, err)

	for _, tc := range []struct {
		in, want float64
	}{
		{0.05, 0},
		{-0.1, 0},
		{0.5, 0.5},
		{-0.5, -0.5},
		{0.95, -1},
		{-0.95, -1},
	} {
		got, err := j.Condition(tc.in)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "in=%v", tc.in)
	}

	// Magnitude 0.44, then sign draw 0.2 keeps it positive.
	got, err := j.Draw(&rngtest.Script{Floats: []float64{0.44, 0.2}})
	require.NoError(t, err)
	assert.Equal(t, "0.4", got)

	_, err = NewJitter(approx.DefaultComparer[float64](), json.RawMessage(`{"DeadzoneMin": 0.9, "DeadzoneMax": 0.1}`))
	assert.ErrorIs(t, err, ErrInvalidArgs)
	_, err = NewJitter(approx.DefaultComparer[float64](), json.RawMessage(`{"WrapMin": 1, "WrapMax": 1}`))
	assert.ErrorIs(t, err, ErrInvalidArgs)
	_, err = NewJitter(approx.DefaultComparer[float64](), json.RawMessage(`{"Digits": 99}`))
	assert.ErrorIs(t, err, approx.ErrInvalidDigits)
}
