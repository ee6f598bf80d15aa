package experiments

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/petuhovskiy/chancekit/chance"
	"github.com/petuhovskiy/chancekit/dice"
	"github.com/petuhovskiy/chancekit/rng"
	"github.com/petuhovskiy/chancekit/sample"
)

func parseArgs(j json.RawMessage, v interface{}) error {
	if len(j) == 0 {
		return nil
	}
	err := json.Unmarshal(j, v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return nil
}

type WeightedArgs struct {
	Outcomes []struct {
		Value  string
		Weight float64
	}
}

// Weighted draws one of the configured outcomes.
type Weighted struct {
	wrand sample.Wrand[string]
}

func NewWeighted(j json.RawMessage) (*Weighted, error) {
	var args WeightedArgs
	if err := parseArgs(j, &args); err != nil {
		return nil, err
	}

	var values []string
	var weights []float64
	for _, o := range args.Outcomes {
		values = append(values, o.Value)
		weights = append(weights, o.Weight)
	}

	w, err := sample.Of(values, weights)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	if _, err := sample.Cumulative(weights); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return &Weighted{wrand: w}, nil
}

func (w *Weighted) Draw(src rng.Source) (string, error) {
	return w.wrand.Pick(src)
}

func (w *Weighted) Expected() map[string]float64 {
	res := make(map[string]float64)
	for _, item := range w.wrand {
		res[item.Item] += item.Weight
	}
	return res
}

type DiceArgs struct {
	// Dice notation, e.g. "3d6+2". Defaults to "1d6".
	Notation string
}

// maxExpectedOutcomes bounds the number of totals Dice.Expected computes.
// The work is quadratic in it.
const maxExpectedOutcomes = 5000

// Dice rolls dice given in NdS+M notation and reports the total.
type Dice struct {
	spec dice.Spec
}

func NewDice(j json.RawMessage) (*Dice, error) {
	args := DiceArgs{Notation: "1d6"}
	if err := parseArgs(j, &args); err != nil {
		return nil, err
	}

	spec, err := dice.Parse(args.Notation)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return &Dice{spec: spec}, nil
}

func (d *Dice) Draw(src rng.Source) (string, error) {
	total, err := dice.New(src).RollSpec(d.spec)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(total), nil
}

// Expected returns the probability of each total, or nil when there are
// too many dice to compute it.
func (d *Dice) Expected() map[string]float64 {
	sides := d.spec.Sides
	if d.spec.Count > maxExpectedOutcomes/sides {
		return nil
	}

	// p[s] is the probability of rolling s with the dice so far.
	p := []float64{1}
	for i := 0; i < d.spec.Count; i++ {
		next := make([]float64, len(p)+sides)
		for s, v := range p {
			if v == 0 {
				continue
			}
			v /= float64(sides)
			for face := 1; face <= sides; face++ {
				next[s+face] += v
			}
		}
		p = next
	}

	res := make(map[string]float64)
	for s, v := range p {
		if v > 0 {
			res[strconv.Itoa(s+d.spec.Modifier)] = v
		}
	}
	return res
}

type CustomDiceArgs struct {
	Faces []string
	// Optional, one per face.
	Weights []float64
}

// CustomDice rolls a die with arbitrary faces, optionally weighted.
type CustomDice struct {
	faces   []string
	weights []float64
}

func NewCustomDice(j json.RawMessage) (*CustomDice, error) {
	var args CustomDiceArgs
	if err := parseArgs(j, &args); err != nil {
		return nil, err
	}

	if len(args.Faces) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, dice.ErrEmptyFaces)
	}
	if args.Weights != nil {
		if len(args.Weights) != len(args.Faces) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, sample.ErrLengthMismatch)
		}
		if _, err := sample.Cumulative(args.Weights); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
	}
	return &CustomDice{faces: args.Faces, weights: args.Weights}, nil
}

func (d *CustomDice) Draw(src rng.Source) (string, error) {
	e := dice.New(src)
	if d.weights != nil {
		return dice.RollWeighted(e, d.faces, d.weights)
	}
	return dice.RollCustom(e, d.faces)
}

func (d *CustomDice) Expected() map[string]float64 {
	res := make(map[string]float64)
	for i, f := range d.faces {
		if d.weights != nil {
			res[f] += d.weights[i]
		} else {
			res[f]++
		}
	}
	return res
}

type CoinArgs struct {
	// Probability of heads. A fair coin if not set.
	PHeads *float64
}

type Coin struct {
	pHeads *float64
}

func NewCoin(j json.RawMessage) (*Coin, error) {
	var args CoinArgs
	if err := parseArgs(j, &args); err != nil {
		return nil, err
	}
	if p := args.PHeads; p != nil && !(*p >= 0 && *p <= 1) {
		return nil, fmt.Errorf("%w: pHeads = %v", ErrInvalidArgs, *p)
	}
	return &Coin{pHeads: args.PHeads}, nil
}

func (c *Coin) Draw(src rng.Source) (string, error) {
	if c.pHeads == nil {
		return chance.CoinFlip(src).String(), nil
	}
	coin, err := chance.WeightedCoin(src, *c.pHeads)
	if err != nil {
		return "", err
	}
	return coin.String(), nil
}

func (c *Coin) Expected() map[string]float64 {
	p := 0.5
	if c.pHeads != nil {
		p = *c.pHeads
	}
	return map[string]float64{
		chance.Heads.String(): p,
		chance.Tails.String(): 1 - p,
	}
}

type CardArgs struct {
	// Draw only the suit.
	SuitOnly bool
}

type Card struct {
	suitOnly bool
}

func NewCard(j json.RawMessage) (*Card, error) {
	var args CardArgs
	if err := parseArgs(j, &args); err != nil {
		return nil, err
	}
	return &Card{suitOnly: args.SuitOnly}, nil
}

func (c *Card) Draw(src rng.Source) (string, error) {
	if c.suitOnly {
		return chance.RandomSuit(src).String(), nil
	}
	return chance.RandomCard(src).String(), nil
}

func (c *Card) Expected() map[string]float64 {
	res := make(map[string]float64)
	if c.suitOnly {
		for _, s := range []chance.Suit{chance.Hearts, chance.Diamonds, chance.Clubs, chance.Spades} {
			res[s.String()] = 1
		}
		return res
	}
	for _, card := range chance.Deck() {
		res[card.String()] = 1
	}
	return res
}
