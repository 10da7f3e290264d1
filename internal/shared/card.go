package shared

import "fmt"

// Suit represents the suit of a card (Clubs, Diamonds, Hearts, Spades).
type Suit int

const (
	NoSuit   Suit = -1 // No lead yet, or a round without trump
	Clubs    Suit = 0
	Diamonds Suit = 1
	Hearts   Suit = 2
	Spades   Suit = 3
)

// Suits lists the four suits in their natural order.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case NoSuit:
		return "no trump"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Rank is the face value of a card, 2 through 14 (Ace high).
type Rank int

const (
	Two   Rank = 2
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card represents a single card of the 52-card French deck.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Compare orders cards by rank first and suit second.
// It returns -1, 0 or +1.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	case c.Suit < other.Suit:
		return -1
	case c.Suit > other.Suit:
		return 1
	}
	return 0
}

// Less reports whether c sorts before other.
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// HasSuit reports whether the card belongs to suit s.
func (c Card) HasSuit(s Suit) bool {
	return c.Suit == s
}

// Valid reports whether the card is one of the 52 cards of the deck.
func (c Card) Valid() bool {
	return c.Suit >= Clubs && c.Suit <= Spades && c.Rank >= Two && c.Rank <= Ace
}
