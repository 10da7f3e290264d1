package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func handOf(cards ...Card) *Hand {
	h := NewHand(0)
	h.Add(cards...)
	return h
}

func TestPlayable(t *testing.T) {
	testCases := []struct {
		name       string
		hand       []Card
		lead       Suit
		trump      Suit
		playable   []Card
		unplayable []Card
	}{
		{
			name:     "no lead yet",
			hand:     []Card{{Clubs, 2}, {Hearts, 5}, {Spades, King}},
			lead:     NoSuit,
			trump:    Hearts,
			playable: []Card{{Clubs, 2}, {Hearts, 5}, {Spades, King}},
		},
		{
			name:       "must follow lead",
			hand:       []Card{{Clubs, 2}, {Hearts, 5}, {Clubs, Queen}, {Spades, King}},
			lead:       Clubs,
			trump:      NoSuit,
			playable:   []Card{{Clubs, 2}, {Clubs, Queen}},
			unplayable: []Card{{Hearts, 5}, {Spades, King}},
		},
		{
			name:       "trump may be played alongside lead",
			hand:       []Card{{Clubs, 2}, {Hearts, 5}, {Diamonds, 9}, {Clubs, Queen}},
			lead:       Clubs,
			trump:      Hearts,
			playable:   []Card{{Clubs, 2}, {Hearts, 5}, {Clubs, Queen}},
			unplayable: []Card{{Diamonds, 9}},
		},
		{
			name:       "lead only, trump suit not held",
			hand:       []Card{{Clubs, 2}, {Diamonds, 9}},
			lead:       Clubs,
			trump:      Hearts,
			playable:   []Card{{Clubs, 2}},
			unplayable: []Card{{Diamonds, 9}},
		},
		{
			name:       "trump led",
			hand:       []Card{{Hearts, 3}, {Diamonds, 9}, {Hearts, Ace}},
			lead:       Hearts,
			trump:      Hearts,
			playable:   []Card{{Hearts, 3}, {Hearts, Ace}},
			unplayable: []Card{{Diamonds, 9}},
		},
		{
			name:     "cannot follow",
			hand:     []Card{{Hearts, 3}, {Diamonds, 9}},
			lead:     Spades,
			trump:    Clubs,
			playable: []Card{{Hearts, 3}, {Diamonds, 9}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := handOf(tc.hand...)
			assert.Equal(t, tc.playable, h.Playable(tc.lead, tc.trump))
			assert.ElementsMatch(t, tc.unplayable, h.Unplayable(tc.lead, tc.trump))
		})
	}
}

func TestPlayableNeverEmpty(t *testing.T) {
	deck := FullDeck()
	for i := 0; i+5 <= len(deck); i += 3 {
		h := handOf(deck[i : i+5]...)
		for _, lead := range append(Suits[:], NoSuit) {
			for _, trump := range append(Suits[:], NoSuit) {
				playable := h.Playable(lead, trump)
				assert.NotEmpty(t, playable)
				assert.Len(t, h.Unplayable(lead, trump), h.Len()-len(playable))
			}
		}
	}
}

func TestPlayableDoesNotMutateHand(t *testing.T) {
	h := handOf(Card{Clubs, 2}, Card{Hearts, 5})
	before := h.Cards()
	h.Playable(Clubs, Hearts)
	h.Unplayable(Clubs, Hearts)
	assert.Equal(t, before, h.Cards())
}

func TestCanPlay(t *testing.T) {
	h := handOf(Card{Clubs, 2}, Card{Hearts, 5}, Card{Diamonds, 9})
	assert.True(t, h.CanPlay(Card{Clubs, 2}, Clubs, Hearts))
	assert.True(t, h.CanPlay(Card{Hearts, 5}, Clubs, Hearts))
	assert.False(t, h.CanPlay(Card{Diamonds, 9}, Clubs, Hearts))
	assert.False(t, h.CanPlay(Card{Spades, Ace}, NoSuit, NoSuit))
}
