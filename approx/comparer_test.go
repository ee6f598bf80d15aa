package approx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/chancekit/rng"
)

func TestNewComparer(t *testing.T) {
	c, err := NewComparer[float64](5)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Digits())

	_, err = NewComparer[float64](-1)
	assert.ErrorIs(t, err, ErrInvalidDigits)
	_, err = NewComparer[float32](16)
	assert.ErrorIs(t, err, ErrInvalidDigits)

	assert.Equal(t, DefaultDigits, DefaultComparer[float64]().Digits())
}

func TestComparer_Equal(t *testing.T) {
	c := DefaultComparer[float64]()

	assert.True(t, c.Equal(1.0001, 1.0004))
	assert.True(t, c.Equal(0.1+0.2, 0.3))
	assert.False(t, c.Equal(1.001, 1.002))
	assert.True(t, c.Equal(-0.0001, 0.0001))
	assert.True(t, c.Equal(math.Inf(1), math.Inf(1)))
	assert.False(t, c.Equal(math.NaN(), math.NaN()))

	// Half to even at the retained digit.
	assert.Equal(t, 2.0, DefaultComparer[float64]().Round(2.0))
	zero := Comparer[float64]{}
	assert.Equal(t, 2.0, zero.Round(2.5))
	assert.Equal(t, 4.0, zero.Round(3.5))
}

func TestComparer_Float32(t *testing.T) {
	c := DefaultComparer[float32]()
	assert.True(t, c.Equal(float32(0.1), float32(0.1000004)))
	assert.Equal(t, c.Hash(0.1), c.Hash(0.10004))
	assert.Equal(t, float32(0.123), c.Round(0.12345))
}

func TestComparer_LargeValues(t *testing.T) {
	c, err := NewComparer[float64](15)
	require.NoError(t, err)

	big := 1e300
	assert.Equal(t, big, c.Round(big))
	assert.True(t, c.Equal(big, big))
	assert.Equal(t, c.Hash(big), c.Hash(big))
}

func TestComparer_HashContract(t *testing.T) {
	src := rng.NewPCG(404)
	for digits := 0; digits <= 6; digits++ {
		c, err := NewComparer[float64](digits)
		require.NoError(t, err)

		for i := 0; i < 5000; i++ {
			a := (src.Float64() - 0.5) * 20
			// Perturb below the retained precision, sometimes across a
			// rounding boundary; equality must still imply equal hashes.
			b := a + (src.Float64()-0.5)*math.Pow10(-digits)
			if c.Equal(a, b) {
				assert.Equal(t, c.Hash(a), c.Hash(b), "digits=%d a=%v b=%v", digits, a, b)
				assert.Equal(t, c.Key(a), c.Key(b))
			}
		}
	}
}

func TestComparer_SignedZero(t *testing.T) {
	c := DefaultComparer[float64]()
	negZero := math.Copysign(0, -1)

	assert.True(t, c.Equal(negZero, 0))
	assert.Equal(t, c.Hash(negZero), c.Hash(0))
	assert.Equal(t, c.Hash(-0.0002), c.Hash(0.0002))
	assert.Equal(t, "0.000", c.Key(-0.0002))
}

func TestComparer_Key(t *testing.T) {
	c := DefaultComparer[float64]()
	assert.Equal(t, "1.235", c.Key(1.23456))
	assert.Equal(t, "-2.000", c.Key(-1.9999))
}

func TestComparer_Compatible(t *testing.T) {
	a, _ := NewComparer[float64](3)
	b, _ := NewComparer[float64](3)
	c, _ := NewComparer[float64](4)
	assert.True(t, a.Compatible(b))
	assert.False(t, a.Compatible(c))
}

func TestWithin(t *testing.T) {
	assert.True(t, Within(1.0, 1.05, 0.1))
	assert.False(t, Within(1.0, 1.1, 0.1))
	assert.True(t, Within(float32(-1), float32(-1.0001), 0.001))
}
