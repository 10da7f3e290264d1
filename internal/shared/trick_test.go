package shared

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plays(cards ...Card) []PlayedCard {
	out := make([]PlayedCard, len(cards))
	for i, c := range cards {
		out[i] = PlayedCard{Card: c, PlayerLabel: i}
	}
	return out
}

func TestHighestCard(t *testing.T) {
	testCases := []struct {
		name   string
		cards  []Card
		lead   Suit
		trump  Suit
		winner PlayedCard
	}{
		{
			name:   "low trump beats high lead",
			cards:  []Card{{Clubs, 2}, {Clubs, King}, {Hearts, 3}},
			lead:   Clubs,
			trump:  Hearts,
			winner: PlayedCard{Card{Hearts, 3}, 2},
		},
		{
			name:   "highest lead wins without trump",
			cards:  []Card{{Diamonds, 7}, {Spades, Ace}, {Diamonds, Jack}, {Diamonds, 3}},
			lead:   Diamonds,
			trump:  NoSuit,
			winner: PlayedCard{Card{Diamonds, Jack}, 2},
		},
		{
			name:   "highest trump among trumps",
			cards:  []Card{{Spades, 4}, {Hearts, 9}, {Hearts, Queen}, {Spades, Ace}},
			lead:   Spades,
			trump:  Hearts,
			winner: PlayedCard{Card{Hearts, Queen}, 2},
		},
		{
			name:   "trump led",
			cards:  []Card{{Hearts, 4}, {Clubs, Ace}, {Hearts, 8}, {Spades, Ace}},
			lead:   Hearts,
			trump:  Hearts,
			winner: PlayedCard{Card{Hearts, 8}, 2},
		},
		{
			name:   "no lead or trump match falls back to card order",
			cards:  []Card{{Clubs, 9}, {Spades, 9}, {Diamonds, 9}},
			lead:   Hearts,
			trump:  NoSuit,
			winner: PlayedCard{Card{Spades, 9}, 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.winner, HighestCard(plays(tc.cards...), tc.lead, tc.trump))
		})
	}
}

func TestHighestCardTrumpAlwaysWins(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	deck := NewPile(FullDeck()...)
	for range 500 {
		deck.Shuffle(rng)
		cards := deck.Cards()[:4]
		lead := cards[0].Suit
		trump := Suits[rng.IntN(4)]

		winner := HighestCard(plays(cards...), lead, trump)

		hasTrump := false
		for _, c := range cards {
			hasTrump = hasTrump || c.HasSuit(trump)
		}
		if hasTrump {
			assert.Equal(t, trump, winner.Card.Suit, "%v lead %s trump %s", cards, lead, trump)
		} else {
			assert.Equal(t, lead, winner.Card.Suit, "%v lead %s trump %s", cards, lead, trump)
		}
	}
}

func TestHighestCardDoesNotReorderInput(t *testing.T) {
	in := plays(Card{Clubs, Ace}, Card{Clubs, 2})
	HighestCard(in, Clubs, NoSuit)
	assert.Equal(t, Card{Clubs, Ace}, in[0].Card)
}

func TestTrickPlayAndCollect(t *testing.T) {
	trick := NewTrick()
	trick.TrumpSuit = Spades
	hands := []*Hand{NewHand(2), NewHand(3), NewHand(0)}
	hands[0].Add(Card{Diamonds, 5}, Card{Clubs, 7})
	hands[1].Add(Card{Diamonds, King})
	hands[2].Add(Card{Spades, 2})

	require.NoError(t, trick.Play(hands[0], Card{Diamonds, 5}))
	assert.Equal(t, Diamonds, trick.LeadSuit)
	require.NoError(t, trick.Play(hands[1], Card{Diamonds, King}))
	require.NoError(t, trick.Play(hands[2], Card{Spades, 2}))
	assert.Equal(t, Diamonds, trick.LeadSuit, "only the first card sets the lead")

	assert.ErrorIs(t, trick.Play(hands[1], Card{Hearts, Ace}), ErrCardNotFound)
	assert.Equal(t, 3, trick.Len())

	winner, err := trick.Winner()
	require.NoError(t, err)
	assert.Equal(t, PlayedCard{Card{Spades, 2}, 0}, winner)
	assert.Equal(t, []PlayedCard{
		{Card{Diamonds, 5}, 2},
		{Card{Diamonds, King}, 3},
		{Card{Spades, 2}, 0},
	}, trick.Plays())

	var discard Pile
	require.NoError(t, trick.Collect(&discard))
	assert.Equal(t, 0, trick.Len())
	assert.Equal(t, NoSuit, trick.LeadSuit)
	assert.Equal(t, Spades, trick.TrumpSuit)
	assert.Equal(t, 3, discard.Len())
	assert.Empty(t, trick.Plays())
}

func TestEmptyTrickWinner(t *testing.T) {
	_, err := NewTrick().Winner()
	assert.ErrorIs(t, err, ErrContractViolation)
}
