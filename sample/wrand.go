package sample

import "github.com/petuhovskiy/chancekit/rng"

// Wrand is a weight vector stored as pairs. It can be serialized and
// deserialized to/from JSON, e.g. [{"Weight": 1, "Item": "a"}].
type Wrand[T any] []WrandItem[T]

type WrandItem[T any] struct {
	Weight float64
	Item   T
}

// Of builds a Wrand from parallel slices.
func Of[T any](values []T, weights []float64) (Wrand[T], error) {
	if len(values) != len(weights) {
		return nil, ErrLengthMismatch
	}
	w := make(Wrand[T], len(values))
	for i := range values {
		w[i] = WrandItem[T]{Weight: weights[i], Item: values[i]}
	}
	return w, nil
}

// Weights returns the weight column.
func (w Wrand[T]) Weights() []float64 {
	weights := make([]float64, len(w))
	for i, item := range w {
		weights[i] = item.Weight
	}
	return weights
}

// Items returns the value column.
func (w Wrand[T]) Items() []T {
	items := make([]T, len(w))
	for i, item := range w {
		items[i] = item.Item
	}
	return items
}

// Pick selects one item proportionally to its weight.
func (w Wrand[T]) Pick(src rng.Source) (T, error) {
	var zero T

	i, err := Index(src, w.Weights())
	if err != nil {
		return zero, err
	}
	return w[i].Item, nil
}

// MustPick is Pick for weight vectors known to be valid, such as package-level
// defaults.
func (w Wrand[T]) MustPick(src rng.Source) T {
	v, err := w.Pick(src)
	if err != nil {
		panic("sample: MustPick on invalid weights: " + err.Error())
	}
	return v
}
