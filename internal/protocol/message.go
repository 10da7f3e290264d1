package protocol

import (
	"encoding/json"

	"boerenbridge/internal/shared"
)

// Message is the envelope every game event travels in.
type Message struct {
	Type    string          `json:"type"`              // Type of the event (e.g., "turn", "trick_end")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, shape depends on Type
}

// Event types, in the order a round emits them.
const (
	TypeRoundStart = "round_start"
	TypeTrump      = "trump"
	TypeBid        = "bid"
	TypeTurn       = "turn"
	TypeCardPlayed = "card_played"
	TypeTrickEnd   = "trick_end"
	TypeRoundEnd   = "round_end"
	TypeGameOver   = "game_over"
	TypeGameState  = "game_state"
)

type PlayerInfo struct {
	Label int    `json:"label"`
	Name  string `json:"name"`
}

type RoundStartPayload struct {
	GameID       string       `json:"game_id"`
	Round        int          `json:"round"`
	CardsPerHand int          `json:"cards_per_hand"`
	Starter      int          `json:"starter"`
	Players      []PlayerInfo `json:"players"`
}

type TrumpPayload struct {
	Round int         `json:"round"`
	Suit  shared.Suit `json:"suit"` // -1 when the round has no trump
}

// BidRequestPayload is what a bidder sees before announcing its bid.
type BidRequestPayload struct {
	Round        int           `json:"round"`
	PlayerLabel  int           `json:"player_label"`
	CardsPerHand int           `json:"cards_per_hand"`
	TrumpSuit    shared.Suit   `json:"trump_suit"`
	Hand         []shared.Card `json:"hand"`
	BidsSoFar    []BidPayload  `json:"bids_so_far,omitempty"`
}

type BidPayload struct {
	PlayerLabel int `json:"player_label"`
	Bid         int `json:"bid"`
}

// TurnPayload carries the playability split computed for the player to move.
type TurnPayload struct {
	Round       int           `json:"round"`
	PlayerLabel int           `json:"player_label"`
	LeadSuit    shared.Suit   `json:"lead_suit"`
	TrumpSuit   shared.Suit   `json:"trump_suit"`
	Playable    []shared.Card `json:"playable"`
	Unplayable  []shared.Card `json:"unplayable"`
}

type CardPlayedPayload struct {
	PlayerLabel int         `json:"player_label"`
	Card        shared.Card `json:"card"`
	AutoPlayed  bool        `json:"auto_played,omitempty"` // Chosen by the engine after a timeout or repeated invalid picks
}

type TrickEndPayload struct {
	Winner    shared.PlayedCard   `json:"winner"`
	Cards     []shared.PlayedCard `json:"cards"`
	LeadSuit  shared.Suit         `json:"lead_suit"`
	TrumpSuit shared.Suit         `json:"trump_suit"`
}

type PlayerScore struct {
	Label     int `json:"label"`
	Bid       int `json:"bid"`
	TricksWon int `json:"tricks_won"`
	Delta     int `json:"delta"`
	Score     int `json:"score"`
}

type RoundEndPayload struct {
	Round  int           `json:"round"`
	Scores []PlayerScore `json:"scores"`
}

type GameOverPayload struct {
	GameID  string        `json:"game_id"`
	Winners []int         `json:"winners"` // Labels sharing the highest score
	Scores  []PlayerScore `json:"scores"`
}

// GameStatePayload is a snapshot of the public table state.
type GameStatePayload struct {
	GameID       string              `json:"game_id"`
	Phase        string              `json:"phase"`
	Round        int                 `json:"round"`
	Turn         int                 `json:"turn"`
	LeadSuit     shared.Suit         `json:"lead_suit"`
	TrumpSuit    shared.Suit         `json:"trump_suit"`
	CardsOnTable []shared.PlayedCard `json:"cards_on_table"`
	Scores       []PlayerScore       `json:"scores"`
}

// NewMessage encodes a payload into a JSON message.
func NewMessage(msgType string, payload any) ([]byte, error) {
	payloadBytes, err := EncodePayload(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}

// EncodePayload marshals a payload for a Message. A nil payload yields nil
// so the envelope omits it.
func EncodePayload(payload any) (json.RawMessage, error) {
	if payload == nil {
		return nil, nil
	}
	return json.Marshal(payload)
}
