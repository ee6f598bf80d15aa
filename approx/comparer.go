// Package approx compares floating-point values at a fixed decimal precision.
//
// A Comparer rounds both operands to its number of digits (half to even) and
// compares the rounded values exactly. Its Hash rounds the same way before
// hashing, so Equal(a, b) implies Hash(a) == Hash(b) and a Comparer can key a
// hash container. Two comparers are interchangeable only when their digits
// match; mixing comparers with different digits in one container breaks that
// guarantee.
package approx

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

const (
	DefaultDigits = 3
	MaxDigits     = 15
)

// exactAbove is the magnitude from which every float64 is an integer.
const exactAbove = 1 << 52

// Comparer is immutable and safe for concurrent use. The zero value rounds
// to whole numbers.
type Comparer[F constraints.Float] struct {
	digits int
	scale  float64
}

// NewComparer returns a comparer retaining digits decimal places.
func NewComparer[F constraints.Float](digits int) (Comparer[F], error) {
	if digits < 0 || digits > MaxDigits {
		return Comparer[F]{}, fmt.Errorf("digits = %d: %w", digits, ErrInvalidDigits)
	}
	return Comparer[F]{digits: digits, scale: math.Pow10(digits)}, nil
}

// DefaultComparer retains DefaultDigits decimal places.
func DefaultComparer[F constraints.Float]() Comparer[F] {
	c, _ := NewComparer[F](DefaultDigits)
	return c
}

// Digits returns the number of decimal places retained.
func (c Comparer[F]) Digits() int {
	return c.digits
}

// Compatible reports whether c and o make the same equality decisions.
func (c Comparer[F]) Compatible(o Comparer[F]) bool {
	return c.digits == o.digits
}

func (c Comparer[F]) round(v float64) float64 {
	scale := c.scale
	if scale == 0 {
		scale = 1
	}

	scaled := v * scale
	if math.Abs(scaled) >= exactAbove || math.IsInf(scaled, 0) {
		// No fractional digits left at this precision.
		return v
	}
	return math.RoundToEven(scaled) / scale
}

// Round returns v rounded to the comparer's precision.
func (c Comparer[F]) Round(v F) F {
	return F(c.round(float64(v)))
}

// Equal reports whether a and b are equal once rounded. NaN is never equal
// to anything.
func (c Comparer[F]) Equal(a, b F) bool {
	return c.round(float64(a)) == c.round(float64(b))
}

// Hash returns a hash of v rounded to the comparer's precision.
func (c Comparer[F]) Hash(v F) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], c.bits(v))
	return xxhash.Sum64(buf[:])
}

// Key returns a string that is identical for values the comparer considers
// equal, suitable as a map key or a label.
func (c Comparer[F]) Key(v F) string {
	r := math.Float64frombits(c.bits(v))
	return strconv.FormatFloat(r, 'f', c.digits, 64)
}

func (c Comparer[F]) bits(v F) uint64 {
	r := c.round(float64(v))
	switch {
	case r == 0:
		// -0 equals +0.
		return 0
	case math.IsNaN(r):
		return math.Float64bits(math.NaN())
	default:
		return math.Float64bits(r)
	}
}

// Within reports whether |a - b| < epsilon.
func Within[F constraints.Float](a, b, epsilon F) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}
