package game

import (
	"boerenbridge/internal/protocol"
	"boerenbridge/internal/shared"
)

// Settle returns the score change for a round: an exact bid earns
// 5 plus 2 per trick, a missed bid costs 2 per trick of difference.
func Settle(bid, won int) int {
	if won == bid {
		return won*2 + 5
	}
	diff := won - bid
	if diff < 0 {
		diff = -diff
	}
	return -diff * 2
}

// ScoreKeeper adjusts player scores at the end of a round.
type ScoreKeeper struct {
	Players []*shared.Player
}

// Adjust applies Settle to every player and reports the result.
func (s ScoreKeeper) Adjust() []protocol.PlayerScore {
	out := make([]protocol.PlayerScore, len(s.Players))
	for i, p := range s.Players {
		delta := Settle(p.Bid, p.TricksWon)
		p.Score += delta
		out[i] = protocol.PlayerScore{
			Label:     p.Label,
			Bid:       p.Bid,
			TricksWon: p.TricksWon,
			Delta:     delta,
			Score:     p.Score,
		}
	}
	return out
}
