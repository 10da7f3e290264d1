package game

import "errors"

var (
	// ErrInvalidSelection is returned for a card outside the playable set.
	// The game state is left untouched and the player may pick again.
	ErrInvalidSelection = errors.New("card is not playable")
	ErrNotYourTurn      = errors.New("not this player's turn")
	ErrUnknownPlayer    = errors.New("unknown player label")
	ErrInvalidBid       = errors.New("invalid bid")
	ErrWrongPhase       = errors.New("action not allowed in this phase")
	ErrGameOver         = errors.New("game is over")
)
