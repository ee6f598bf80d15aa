// Package chance has small fair-odds helpers built on rng.Source: coin flips,
// signs and draws from a standard 52-card deck.
package chance

import (
	"fmt"

	"github.com/petuhovskiy/chancekit/rng"
	"github.com/petuhovskiy/chancekit/sample"
)

type Coin int

const (
	Heads Coin = iota
	Tails
)

func (c Coin) String() string {
	switch c {
	case Heads:
		return "heads"
	case Tails:
		return "tails"
	default:
		return fmt.Sprintf("Coin(%d)", int(c))
	}
}

// CoinFlip returns Heads when the draw is below 0.5.
func CoinFlip(src rng.Source) Coin {
	if src.Float64() < 0.5 {
		return Heads
	}
	return Tails
}

// WeightedCoin returns Heads with probability pHeads.
func WeightedCoin(src rng.Source, pHeads float64) (Coin, error) {
	return sample.Sample(src, []Coin{Heads, Tails}, []float64{pHeads, 1 - pHeads})
}

func RandomBool(src rng.Source) bool {
	return src.Float64() < 0.5
}

// PositiveOrNegative returns v or -v with even odds.
func PositiveOrNegative(src rng.Source, v float64) float64 {
	if src.Float64() < 0.5 {
		return v
	}
	return -v
}

// Sign returns 1 or -1 with even odds.
func Sign(src rng.Source) float64 {
	return PositiveOrNegative(src, 1)
}
