package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/chancekit/rng"
)

func TestClamp(t *testing.T) {
	v, err := Clamp(5, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = Clamp(-1, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = Clamp(2, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	f, err := Clamp(0.5, 0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	u, err := Clamp[uint](10, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, uint(4), u)
}

func TestClamp_InvalidRange(t *testing.T) {
	_, err := Clamp(1, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestClamp_Idempotent(t *testing.T) {
	src := rng.NewPCG(8)
	for i := 0; i < 5000; i++ {
		x := (src.Float64() - 0.5) * 200
		lo := (src.Float64() - 0.5) * 100
		hi := lo + src.Float64()*50

		once, err := Clamp(x, lo, hi)
		require.NoError(t, err)
		twice, err := Clamp(once, lo, hi)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
		assert.True(t, once >= lo && once <= hi)
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.2))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.3, Clamp01(0.3))
	assert.Equal(t, 1, Clamp01(7))
	assert.Equal(t, uint8(0), Clamp01(uint8(0)))
}

func TestInvertScale(t *testing.T) {
	assert.Equal(t, -2.5, Invert(2.5))
	assert.Equal(t, 3, Invert(-3))
	assert.Equal(t, 7.5, Scale(2.5, 3.0))
}
