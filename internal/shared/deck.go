package shared

import (
	"fmt"
	"math/rand/v2"
)

const (
	// DeckSize is the number of cards in a full deck.
	DeckSize = 52
	// MaxHandSize is the largest number of cards dealt to one hand.
	MaxHandSize = 13
	// Rounds is the number of rounds in a game: 1..13 cards and back down to 1.
	Rounds = 2 * MaxHandSize
)

// CardsPerRound returns how many cards each hand gets in round (1-indexed),
// or 0 when round is outside 1..Rounds.
func CardsPerRound(round int) int {
	switch {
	case round < 1 || round > Rounds:
		return 0
	case round <= MaxHandSize:
		return round
	default:
		return Rounds + 1 - round
	}
}

// RoundSizes returns the cards per hand for every round in order.
func RoundSizes() []int {
	sizes := make([]int, Rounds)
	for i := range sizes {
		sizes[i] = CardsPerRound(i + 1)
	}
	return sizes
}

// FullDeck returns the 52 cards in suit-major order.
func FullDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// Deck holds the stock cards are dealt from and a discard pile for
// completed tricks. Discarded cards stay out of play until Gather.
type Deck struct {
	Stock   Pile
	Discard Pile
}

// NewDeck creates a standard, unshuffled 52-card deck.
func NewDeck() *Deck {
	return &Deck{Stock: NewPile(FullDeck()...)}
}

// Len counts the cards in the stock and the discard pile.
func (d *Deck) Len() int {
	return d.Stock.Len() + d.Discard.Len()
}

// Shuffle randomizes the stock.
func (d *Deck) Shuffle(rng *rand.Rand) {
	d.Stock.Shuffle(rng)
}

// Gather returns the discard pile to the stock.
func (d *Deck) Gather() error {
	return d.Discard.Move(&d.Stock, d.Discard.Len())
}

// Deal moves cardsPerHand cards from the stock to each hand in the given order.
func (d *Deck) Deal(hands []*Hand, cardsPerHand int) error {
	if need := len(hands) * cardsPerHand; need > d.Stock.Len() {
		return fmt.Errorf("deal %d cards to %d hands from %d: %w", cardsPerHand, len(hands), d.Stock.Len(), ErrNotEnoughCards)
	}
	for _, h := range hands {
		if err := d.Stock.Move(&h.Pile, cardsPerHand); err != nil {
			return err
		}
	}
	return nil
}
