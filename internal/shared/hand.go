package shared

import "slices"

// Hand is the pile of cards held by the player with the same label.
type Hand struct {
	Label int
	Pile
}

// NewHand creates an empty hand for a player label.
func NewHand(label int) *Hand {
	return &Hand{Label: label}
}

// Playable returns the cards the hand may legally play, in hand order.
//
// A player holding the lead suit must play it, but may always play a trump
// instead. Without the lead suit (or before anyone has led) every card is
// playable.
func (h *Hand) Playable(lead, trump Suit) []Card {
	leads := h.Filter(lead)
	if len(leads) == 0 {
		return h.Cards()
	}
	if lead == trump || len(h.Filter(trump)) == 0 {
		return leads
	}
	var out []Card
	for _, c := range h.cards {
		if c.HasSuit(lead) || c.HasSuit(trump) {
			out = append(out, c)
		}
	}
	return out
}

// Unplayable returns the cards of the hand that Playable excludes.
func (h *Hand) Unplayable(lead, trump Suit) []Card {
	playable := h.Playable(lead, trump)
	var out []Card
	for _, c := range h.cards {
		if !slices.Contains(playable, c) {
			out = append(out, c)
		}
	}
	return out
}

// CanPlay reports whether card is in the playable set.
func (h *Hand) CanPlay(card Card, lead, trump Suit) bool {
	return slices.Contains(h.Playable(lead, trump), card)
}
