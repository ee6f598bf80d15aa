package approx

import "golang.org/x/exp/constraints"

// Set holds floating-point values, treating values its comparer considers
// equal as one element. The first value added is the one kept.
type Set[F constraints.Float] struct {
	cmp     Comparer[F]
	buckets map[uint64][]F
	order   []F
}

func NewSet[F constraints.Float](c Comparer[F]) *Set[F] {
	return &Set[F]{
		cmp:     c,
		buckets: make(map[uint64][]F),
	}
}

// Add inserts v and reports whether it was not already present.
func (s *Set[F]) Add(v F) bool {
	h := s.cmp.Hash(v)
	for _, existing := range s.buckets[h] {
		if s.cmp.Equal(existing, v) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], v)
	s.order = append(s.order, v)
	return true
}

func (s *Set[F]) Contains(v F) bool {
	for _, existing := range s.buckets[s.cmp.Hash(v)] {
		if s.cmp.Equal(existing, v) {
			return true
		}
	}
	return false
}

func (s *Set[F]) Len() int {
	return len(s.order)
}

// Values returns the elements in insertion order.
func (s *Set[F]) Values() []F {
	return append([]F(nil), s.order...)
}

func (s *Set[F]) Comparer() Comparer[F] {
	return s.cmp
}
