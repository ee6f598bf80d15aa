package approx

import (
	"cmp"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Relation is a comparison operator that can be stored in configuration.
type Relation int

const (
	Eq Relation = iota
	NotEq
	Greater
	GreaterEq
	Less
	LessEq
)

var relationSymbols = [...]string{
	Eq:        "==",
	NotEq:     "!=",
	Greater:   ">",
	GreaterEq: ">=",
	Less:      "<",
	LessEq:    "<=",
}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationSymbols) {
		return fmt.Sprintf("Relation(%d)", int(r))
	}
	return relationSymbols[r]
}

// ParseRelation reads one of ==, !=, >, >=, <, <=.
func ParseRelation(s string) (Relation, error) {
	for i, sym := range relationSymbols {
		if sym == s {
			return Relation(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownRelation)
}

// holds maps a three-way comparison result to the relation.
func (r Relation) holds(c int) bool {
	switch r {
	case Eq:
		return c == 0
	case NotEq:
		return c != 0
	case Greater:
		return c > 0
	case GreaterEq:
		return c >= 0
	case Less:
		return c < 0
	case LessEq:
		return c <= 0
	default:
		return false
	}
}

// Compare reports whether a r b holds. Unknown relations never hold.
// Floats follow cmp.Compare, which orders NaN before everything and equal to
// itself.
func Compare[T cmp.Ordered](r Relation, a, b T) bool {
	return r.holds(cmp.Compare(a, b))
}

// CompareWith is Compare on values rounded by c, so Eq agrees with c.Equal.
// A NaN operand satisfies only NotEq.
func CompareWith[F constraints.Float](c Comparer[F], r Relation, a, b F) bool {
	ra, rb := c.round(float64(a)), c.round(float64(b))
	if math.IsNaN(ra) || math.IsNaN(rb) {
		return r == NotEq
	}
	return r.holds(cmp.Compare(ra, rb))
}
