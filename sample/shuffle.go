package sample

import "github.com/petuhovskiy/chancekit/rng"

// Shuffle permutes s in place with the Fisher-Yates algorithm, drawing
// len(s)-1 integers from src.
func Shuffle[T any](src rng.Source, s []T) {
	for n := len(s); n > 1; n-- {
		k := src.IntRange(0, n)
		s[n-1], s[k] = s[k], s[n-1]
	}
}
