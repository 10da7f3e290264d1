// Package player holds ready-made seats for the game engine.
package player

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"boerenbridge/internal/protocol"
	"boerenbridge/internal/shared"
)

// Seat picks the card to play on a turn. It has the method set of
// game.Chooser, declared here because the game tests import this package.
type Seat interface {
	Choose(ctx context.Context, turn protocol.TurnPayload) (shared.Card, error)
}

// FirstLegal always plays the first playable card and never bids.
type FirstLegal struct{}

func (FirstLegal) Choose(_ context.Context, turn protocol.TurnPayload) (shared.Card, error) {
	return turn.Playable[0], nil
}

// RandomBot plays a random playable card and bids a random count.
type RandomBot struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomBot returns a bot whose picks are fully determined by seed.
func NewRandomBot(seed uint64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (b *RandomBot) Choose(_ context.Context, turn protocol.TurnPayload) (shared.Card, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return turn.Playable[b.rng.IntN(len(turn.Playable))], nil
}

func (b *RandomBot) Bid(_ context.Context, req protocol.BidRequestPayload) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rng.IntN(req.CardsPerHand + 1), nil
}

// Strategy names a built-in seat.
type Strategy string

const (
	StrategyFirst  Strategy = "first"
	StrategyRandom Strategy = "random"
)

// New builds the seat for a strategy. Random seats derive their seed from
// seed and label so every seat plays differently but reproducibly.
func New(strategy Strategy, seed uint64, label int) (Seat, error) {
	switch strategy {
	case StrategyFirst, "":
		return FirstLegal{}, nil
	case StrategyRandom:
		return NewRandomBot(seed + uint64(label) + 1), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}
