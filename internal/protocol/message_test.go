package protocol

import (
	"encoding/json"
	"testing"

	"boerenbridge/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	raw, err := NewMessage(TypeTrump, TrumpPayload{Round: 2, Suit: shared.Hearts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"trump","payload":{"round":2,"suit":2}}`, string(raw))
}

func TestNewMessageWithoutPayload(t *testing.T) {
	raw, err := NewMessage(TypeGameOver, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"game_over"}`, string(raw))
}

func TestTurnPayloadShape(t *testing.T) {
	raw, err := NewMessage(TypeTurn, TurnPayload{
		Round:       3,
		PlayerLabel: 1,
		LeadSuit:    shared.Clubs,
		TrumpSuit:   shared.NoSuit,
		Playable:    []shared.Card{{Suit: shared.Clubs, Rank: shared.Ace}},
		Unplayable:  []shared.Card{{Suit: shared.Spades, Rank: 7}},
	})
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, TypeTurn, msg.Type)
	assert.JSONEq(t, `{
		"round": 3,
		"player_label": 1,
		"lead_suit": 0,
		"trump_suit": -1,
		"playable": [{"suit": 0, "rank": 14}],
		"unplayable": [{"suit": 3, "rank": 7}]
	}`, string(msg.Payload))
}
