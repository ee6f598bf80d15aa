package chance

import (
	"fmt"

	"github.com/petuhovskiy/chancekit/rng"
)

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suitNames = [...]string{
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Clubs:    "clubs",
	Spades:   "spades",
}

func (s Suit) String() string {
	if s < 0 || int(s) >= len(suitNames) {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprint(int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return fmt.Sprintf("Rank(%d)", int(r))
	}
}

const (
	DeckSize = 52
	ranks    = 13
)

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// deckSuits is the order suits appear in a fresh deck.
var deckSuits = [4]Suit{Hearts, Diamonds, Spades, Clubs}

// CardAt returns the i-th card of a fresh deck: each suit from ace down to
// two, suits in the order hearts, diamonds, spades, clubs.
func CardAt(i int) (Card, error) {
	if i < 0 || i >= DeckSize {
		return Card{}, fmt.Errorf("card index %d out of [0, %d)", i, DeckSize)
	}
	return Card{
		Rank: Ace - Rank(i%ranks),
		Suit: deckSuits[i/ranks],
	}, nil
}

// Deck returns a fresh 52-card deck.
func Deck() []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i], _ = CardAt(i)
	}
	return deck
}

func RandomSuit(src rng.Source) Suit {
	return Suit(src.IntRange(0, len(suitNames)))
}

// RandomCard draws one card uniformly from a full deck.
func RandomCard(src rng.Source) Card {
	c, _ := CardAt(src.IntRange(0, DeckSize))
	return c
}
