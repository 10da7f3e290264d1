package game

import (
	"context"

	"boerenbridge/internal/protocol"
	"boerenbridge/internal/shared"
)

// Chooser decides which card a seat plays. turn.Playable is never empty.
// Implementations must return once ctx is done: a chooser that never
// returns keeps its goroutine alive after the turn timeout has moved on.
type Chooser interface {
	Choose(ctx context.Context, turn protocol.TurnPayload) (shared.Card, error)
}

// Bidder is implemented by choosers that also announce bids.
type Bidder interface {
	Bid(ctx context.Context, req protocol.BidRequestPayload) (int, error)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(ctx context.Context, turn protocol.TurnPayload) (shared.Card, error)

func (f ChooserFunc) Choose(ctx context.Context, turn protocol.TurnPayload) (shared.Card, error) {
	return f(ctx, turn)
}

// firstLegal plays the first playable card, the engine's fallback policy.
var firstLegal = ChooserFunc(func(_ context.Context, turn protocol.TurnPayload) (shared.Card, error) {
	return turn.Playable[0], nil
})
