package shared

import (
	"fmt"
	"slices"
)

// PlayedCard stores a card along with the label of the player who played it.
type PlayedCard struct {
	Card        Card `json:"card"`
	PlayerLabel int  `json:"player_label"`
}

// Trick represents the cards on the table. Turn is the label of the player
// who plays next.
type Trick struct {
	LeadSuit  Suit
	TrumpSuit Suit
	Turn      int

	cards   Pile
	players []int
}

// NewTrick creates an empty trick with no lead and no trump.
func NewTrick() *Trick {
	return &Trick{LeadSuit: NoSuit, TrumpSuit: NoSuit}
}

// Len returns the number of cards on the table.
func (t *Trick) Len() int {
	return t.cards.Len()
}

// Cards returns the cards on the table in play order.
func (t *Trick) Cards() []Card {
	return t.cards.Cards()
}

// Plays returns the cards on the table with the labels of their players.
func (t *Trick) Plays() []PlayedCard {
	cards := t.cards.Cards()
	plays := make([]PlayedCard, len(cards))
	for i, c := range cards {
		plays[i] = PlayedCard{Card: c, PlayerLabel: t.players[i]}
	}
	return plays
}

// Play moves card from hand onto the table. The first card of a trick
// fixes the lead suit.
func (t *Trick) Play(hand *Hand, card Card) error {
	if err := hand.MoveSpecific(&t.cards, card); err != nil {
		return err
	}
	t.players = append(t.players, hand.Label)
	if t.cards.Len() == 1 {
		t.LeadSuit = card.Suit
	}
	return nil
}

// Winner resolves the trick with HighestCard.
func (t *Trick) Winner() (PlayedCard, error) {
	if t.cards.Empty() {
		return PlayedCard{}, fmt.Errorf("resolve empty trick: %w", ErrNotEnoughCards)
	}
	return HighestCard(t.Plays(), t.LeadSuit, t.TrumpSuit), nil
}

// Collect moves every card on the table to `to` and clears the lead suit.
func (t *Trick) Collect(to *Pile) error {
	if err := t.cards.Move(to, t.cards.Len()); err != nil {
		return err
	}
	t.players = t.players[:0]
	t.LeadSuit = NoSuit
	return nil
}

// HighestCard returns the winning play. Plays are sorted by card order,
// then stably by whether they follow the lead suit, then stably by whether
// they are trump; the last one wins. plays must not be empty.
func HighestCard(plays []PlayedCard, lead, trump Suit) PlayedCard {
	sorted := slices.Clone(plays)
	slices.SortStableFunc(sorted, func(a, b PlayedCard) int {
		return a.Card.Compare(b.Card)
	})
	slices.SortStableFunc(sorted, func(a, b PlayedCard) int {
		return boolCmp(a.Card.HasSuit(lead), b.Card.HasSuit(lead))
	})
	slices.SortStableFunc(sorted, func(a, b PlayedCard) int {
		return boolCmp(a.Card.HasSuit(trump), b.Card.HasSuit(trump))
	})
	return sorted[len(sorted)-1]
}

func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
