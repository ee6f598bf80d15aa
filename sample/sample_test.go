package sample

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/chancekit/internal/rngtest"
	"github.com/petuhovskiy/chancekit/rng"
)

func TestCumulative(t *testing.T) {
	cdf, err := Cumulative([]float64{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 1}, cdf)

	cdf, err = Cumulative([]float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)
	assert.Equal(t, 1.0, cdf[len(cdf)-1])
	for i := 1; i < len(cdf); i++ {
		assert.LessOrEqual(t, cdf[i-1], cdf[i])
	}
}

func TestCumulative_Errors(t *testing.T) {
	_, err := Cumulative(nil)
	assert.ErrorIs(t, err, ErrEmptyDistribution)

	_, err = Cumulative([]float64{0, 0})
	assert.ErrorIs(t, err, ErrDegenerateDistribution)

	_, err = Cumulative([]float64{1, -1, 3})
	assert.ErrorIs(t, err, ErrDegenerateDistribution)

	_, err = Cumulative([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, ErrDegenerateDistribution)

	_, err = Cumulative([]float64{math.Inf(1)})
	assert.ErrorIs(t, err, ErrDegenerateDistribution)
}

func TestSample_Errors(t *testing.T) {
	src := rng.NewPCG(1)

	_, err := Sample[string](src, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyDistribution)

	_, err = Sample(src, []string{"a", "b"}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Sample(src, []string{"a"}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Sample(src, []string{"a", "b"}, []float64{0, 0})
	assert.ErrorIs(t, err, ErrDegenerateDistribution)
}

func TestSample_BoundaryTieBreak(t *testing.T) {
	values := []string{"A", "B", "C", "D"}
	weights := []float64{1, 1, 1, 1} // C = 0.25, 0.5, 0.75, 1

	cases := []struct {
		r    float64
		want string
	}{
		{0, "A"},
		{0.2499, "A"},
		{0.25, "B"}, // r == C[0] goes to the next bucket
		{0.5, "C"},
		{0.75, "D"},
		{0.9999, "D"},
		{1, "D"}, // last bucket is inclusive
	}
	for _, c := range cases {
		src := &rngtest.Script{Floats: []float64{c.r}}
		got, err := Sample(src, values, weights)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "r=%v", c.r)
		assert.Equal(t, 1, src.Calls(), "exactly one draw per call")
	}
}

func TestSample_SkipsZeroWeights(t *testing.T) {
	values := []string{"zero-head", "A", "zero-mid", "B", "zero-tail"}
	weights := []float64{0, 1, 0, 1, 0}

	for _, r := range []float64{0, 0.3, 0.5, 0.7, 0.999999} {
		got, err := Sample(&rngtest.Script{Floats: []float64{r}}, values, weights)
		require.NoError(t, err)
		assert.NotContains(t, got, "zero", "r=%v", r)
	}
}

func TestSample_OutOfRangeSource(t *testing.T) {
	for _, r := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := Sample(&rngtest.Script{Floats: []float64{r}}, []int{1, 2}, []float64{1, 1})
		assert.True(t, errors.Is(err, ErrUniformOutOfRange), "r=%v", r)
	}
}

func TestSample_Frequency(t *testing.T) {
	src := rng.NewPCG(2024)
	values := []string{"A", "B"}
	weights := []float64{1, 3}

	const total = 100_000
	var b int
	for i := 0; i < total; i++ {
		v, err := Sample(src, values, weights)
		require.NoError(t, err)
		if v == "B" {
			b++
		}
	}

	freq := float64(b) / total
	assert.InDelta(t, 0.75, freq, 0.01)
}

func TestWrand_Pick(t *testing.T) {
	w := Wrand[bool]{
		{Weight: 1, Item: true},
		{Weight: 3, Item: false},
	}

	v, err := w.Pick(&rngtest.Script{Floats: []float64{0.1}})
	require.NoError(t, err)
	assert.True(t, v)

	v, err = w.Pick(&rngtest.Script{Floats: []float64{0.25}})
	require.NoError(t, err)
	assert.False(t, v)

	_, err = Wrand[bool]{}.Pick(rng.NewPCG(1))
	assert.ErrorIs(t, err, ErrEmptyDistribution)

	assert.Panics(t, func() {
		Wrand[int]{{Weight: 0, Item: 1}}.MustPick(rng.NewPCG(1))
	})
}

func TestOf(t *testing.T) {
	w, err := Of([]string{"x", "y"}, []float64{2, 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, w.Items())
	assert.Equal(t, []float64{2, 5}, w.Weights())

	_, err = Of([]string{"x"}, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestShuffle(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(rng.NewPCG(5), s)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, s)

	// Scripted: every draw picks index 0, rotating the head to the tail.
	src := &rngtest.Script{Ints: []int{0, 0, 0}}
	s = []int{1, 2, 3, 4}
	Shuffle(src, s)
	assert.Equal(t, 3, src.IntCalls)
	assert.Equal(t, []int{2, 3, 4, 1}, s)
}
