package shared

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// ErrContractViolation marks bookkeeping bugs: the caller asked a pile for
// cards it does not hold. These errors must reach the caller.
var ErrContractViolation = errors.New("card contract violation")

var (
	ErrNotEnoughCards = fmt.Errorf("%w: not enough cards", ErrContractViolation)
	ErrCardNotFound   = fmt.Errorf("%w: card not found", ErrContractViolation)
)

// Pile is an ordered collection of cards. Deck, Hand and Trick all hold one.
// The zero value is an empty pile ready to use.
type Pile struct {
	cards []Card
}

// NewPile returns a pile holding a copy of cards.
func NewPile(cards ...Card) Pile {
	return Pile{cards: slices.Clone(cards)}
}

// Len returns the number of cards in the pile.
func (p *Pile) Len() int {
	return len(p.cards)
}

// Empty reports whether the pile holds no cards.
func (p *Pile) Empty() bool {
	return len(p.cards) == 0
}

// Cards returns a copy of the cards in pile order.
func (p *Pile) Cards() []Card {
	return slices.Clone(p.cards)
}

// Last returns the card at the end of the pile.
func (p *Pile) Last() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// Contains reports whether card is in the pile.
func (p *Pile) Contains(card Card) bool {
	return slices.Contains(p.cards, card)
}

// Add appends cards to the end of the pile.
func (p *Pile) Add(cards ...Card) {
	p.cards = append(p.cards, cards...)
}

// Pop removes and returns the last card.
func (p *Pile) Pop() (Card, error) {
	if len(p.cards) == 0 {
		return Card{}, fmt.Errorf("pop from empty pile: %w", ErrNotEnoughCards)
	}
	c := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return c, nil
}

// Move takes the last count cards and appends them to `to`, keeping their order.
func (p *Pile) Move(to *Pile, count int) error {
	return p.MoveAt(to, count, len(p.cards)-count)
}

// MoveAt takes count cards starting at index and appends them to `to`,
// keeping their order. Neither pile changes on error.
func (p *Pile) MoveAt(to *Pile, count, index int) error {
	if count < 0 || count > len(p.cards) {
		return fmt.Errorf("move %d of %d cards: %w", count, len(p.cards), ErrNotEnoughCards)
	}
	if index < 0 || index+count > len(p.cards) {
		return fmt.Errorf("move %d cards at %d of %d: %w", count, index, len(p.cards), ErrNotEnoughCards)
	}
	moved := slices.Clone(p.cards[index : index+count])
	p.cards = slices.Delete(p.cards, index, index+count)
	to.Add(moved...)
	return nil
}

// MoveSpecific moves exactly one card, found by equality, to `to`.
func (p *Pile) MoveSpecific(to *Pile, card Card) error {
	i := slices.Index(p.cards, card)
	if i < 0 {
		return fmt.Errorf("move %s: %w", card, ErrCardNotFound)
	}
	return p.MoveAt(to, 1, i)
}

// Shuffle randomizes the order of the cards using rng.
func (p *Pile) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(p.cards), func(i, j int) {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	})
}

// Sort orders the pile by card order, lowest first.
func (p *Pile) Sort() {
	slices.SortFunc(p.cards, Card.Compare)
}

// Filter returns the cards of the given suit, in pile order.
func (p *Pile) Filter(s Suit) []Card {
	var out []Card
	for _, c := range p.cards {
		if c.HasSuit(s) {
			out = append(out, c)
		}
	}
	return out
}
