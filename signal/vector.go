package signal

import (
	"fmt"
	"math"
)

type Vec2 struct{ X, Y float64 }

type Vec3 struct{ X, Y, Z float64 }

type Vec4 struct{ X, Y, Z, W float64 }

// Vector is satisfied by Vec2, Vec3 and Vec4. Vector functions work on the
// components the type has and never mix them.
type Vector[V any] interface {
	Vec2 | Vec3 | Vec4
	lanes() ([4]float64, int)
	withLanes(l [4]float64) V
}

func (v Vec2) lanes() ([4]float64, int) { return [4]float64{v.X, v.Y}, 2 }
func (v Vec3) lanes() ([4]float64, int) { return [4]float64{v.X, v.Y, v.Z}, 3 }
func (v Vec4) lanes() ([4]float64, int) { return [4]float64{v.X, v.Y, v.Z, v.W}, 4 }

func (Vec2) withLanes(l [4]float64) Vec2 { return Vec2{l[0], l[1]} }
func (Vec3) withLanes(l [4]float64) Vec3 { return Vec3{l[0], l[1], l[2]} }
func (Vec4) withLanes(l [4]float64) Vec4 { return Vec4{l[0], l[1], l[2], l[3]} }

// Axis selects vector components, e.g. AxisX|AxisZ.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY
	AxisZ
	AxisW

	AxisNone Axis = 0
	AxisAll       = AxisX | AxisY | AxisZ | AxisW
)

// Axes builds a mask from per-component flags.
func Axes(x, y, z, w bool) Axis {
	var a Axis
	for i, on := range [4]bool{x, y, z, w} {
		if on {
			a |= 1 << i
		}
	}
	return a
}

// Has reports whether the i-th component (0 = X) is selected.
func (a Axis) Has(i int) bool {
	return a&(1<<i) != 0
}

func apply[V Vector[V]](v V, f func(i int, x float64) float64) V {
	l, n := v.lanes()
	for i := 0; i < n; i++ {
		l[i] = f(i, l[i])
	}
	return v.withLanes(l)
}

func apply3[V Vector[V]](v, a, b V, f func(x, a, b float64) (float64, error)) (V, error) {
	l, n := v.lanes()
	al, _ := a.lanes()
	bl, _ := b.lanes()
	for i := 0; i < n; i++ {
		r, err := f(l[i], al[i], bl[i])
		if err != nil {
			var zero V
			return zero, fmt.Errorf("component %d: %w", i, err)
		}
		l[i] = r
	}
	return v.withLanes(l), nil
}

// ClampVec clamps each component of v to the matching components of min and max.
func ClampVec[V Vector[V]](v, min, max V) (V, error) {
	return apply3(v, min, max, Clamp[float64])
}

// Clamp01Vec clamps each component to [0, 1].
func Clamp01Vec[V Vector[V]](v V) V {
	return apply(v, func(_ int, x float64) float64 { return Clamp01(x) })
}

// WrapVec wraps each component into [min, max).
func WrapVec[V Vector[V]](v, min, max V) (V, error) {
	return apply3(v, min, max, Wrap[float64])
}

// DeadzoneVec applies AxisDeadzone to each component with the same band.
func DeadzoneVec[V Vector[V]](v V, min, max float64) (V, error) {
	if !(min >= 0 && min <= max) {
		var zero V
		return zero, fmt.Errorf("deadzone [%v, %v]: %w", min, max, ErrInvalidRange)
	}
	return apply(v, func(_ int, x float64) float64 {
		r, _ := AxisDeadzone(x, min, max)
		return r
	}), nil
}

// InvertVec negates every component.
func InvertVec[V Vector[V]](v V) V {
	return InvertAxes(v, AxisAll)
}

// InvertAxes negates the components selected by mask.
func InvertAxes[V Vector[V]](v V, mask Axis) V {
	return apply(v, func(i int, x float64) float64 {
		if mask.Has(i) {
			return -x
		}
		return x
	})
}

// ScaleVec multiplies every component by factor.
func ScaleVec[V Vector[V]](v V, factor float64) V {
	return apply(v, func(_ int, x float64) float64 { return x * factor })
}

// ScaleAxes multiplies each component by the matching component of factors.
func ScaleAxes[V Vector[V]](v, factors V) V {
	f, _ := factors.lanes()
	return apply(v, func(i int, x float64) float64 { return x * f[i] })
}

// Length returns the Euclidean length of v.
func Length[V Vector[V]](v V) float64 {
	l, n := v.lanes()
	var sum float64
	for i := 0; i < n; i++ {
		sum += l[i] * l[i]
	}
	return math.Sqrt(sum)
}

// unitEpsilon is the length below which UnitVec returns the zero vector.
const unitEpsilon = 1e-5

// UnitVec returns v scaled to length 1, or the zero vector when v is too
// short to have a direction.
func UnitVec[V Vector[V]](v V) V {
	length := Length(v)
	if length <= unitEpsilon {
		var zero V
		return zero
	}
	return ScaleVec(v, 1/length)
}
