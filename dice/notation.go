package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Spec is a parsed dice expression such as "3d6+2".
type Spec struct {
	Count    int
	Sides    int
	Modifier int
}

func (s Spec) String() string {
	switch {
	case s.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", s.Count, s.Sides, s.Modifier)
	case s.Modifier < 0:
		return fmt.Sprintf("%dd%d%d", s.Count, s.Sides, s.Modifier)
	default:
		return fmt.Sprintf("%dd%d", s.Count, s.Sides)
	}
}

// Limits accepted by Parse. Within them Min and Max fit in a 32-bit int.
const (
	MaxCount    = 1000
	MaxSides    = 1_000_000
	MaxModifier = 1_000_000_000
)

// Min and Max bound the total a Spec can roll. Specs outside the Parse
// limits may overflow.
func (s Spec) Min() int { return s.Count + s.Modifier }
func (s Spec) Max() int { return s.Count*s.Sides + s.Modifier }

// Parse reads NdS, NdS+M or NdS-M. The count may be omitted ("d20" is 1d20).
func Parse(expr string) (Spec, error) {
	raw := strings.ToLower(strings.TrimSpace(expr))

	d := strings.IndexByte(raw, 'd')
	if d < 0 {
		return Spec{}, fmt.Errorf("%q: missing 'd': %w", expr, ErrInvalidNotation)
	}

	spec := Spec{Count: 1}
	if d > 0 {
		n, err := strconv.Atoi(raw[:d])
		if err != nil {
			return Spec{}, fmt.Errorf("%q: bad count: %w", expr, ErrInvalidNotation)
		}
		spec.Count = n
	}

	rest := raw[d+1:]
	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		m, err := strconv.Atoi(rest[i:])
		if err != nil {
			return Spec{}, fmt.Errorf("%q: bad modifier: %w", expr, ErrInvalidNotation)
		}
		spec.Modifier = m
		rest = rest[:i]
	}

	sides, err := strconv.Atoi(rest)
	if err != nil {
		return Spec{}, fmt.Errorf("%q: bad sides: %w", expr, ErrInvalidNotation)
	}
	spec.Sides = sides

	if spec.Sides < 1 || spec.Count < 0 {
		return Spec{}, fmt.Errorf("%q: %w", expr, ErrInvalidArgument)
	}
	if spec.Count > MaxCount || spec.Sides > MaxSides || abs(spec.Modifier) > MaxModifier {
		return Spec{}, fmt.Errorf("%q: exceeds %dd%d%+d: %w", expr, MaxCount, MaxSides, MaxModifier, ErrInvalidArgument)
	}
	return spec, nil
}

// MustParse is Parse that panics, for package-level expressions.
func MustParse(expr string) Spec {
	s, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return s
}

// RollSpec rolls s.Count dice of s.Sides and adds the modifier.
func (e *Engine) RollSpec(s Spec) (int, error) {
	total, err := e.RollN(s.Sides, s.Count)
	if err != nil {
		return 0, err
	}
	return total + s.Modifier, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
