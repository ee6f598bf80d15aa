package dice

import "golang.org/x/exp/constraints"

// Number is a face type that can be summed.
type Number interface {
	constraints.Integer | constraints.Float
}
