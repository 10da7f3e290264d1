package shared

// Player represents a seat at the table. Label is the stable identity
// (0..3) used for turn order and for mapping trick winners back.
type Player struct {
	Label      int
	Name       string
	Hand       *Hand
	PlayedCard *Card // Last card played in the current trick
	TricksWon  int
	Bid        int
	Score      int // Persists across rounds
}

// NewPlayer creates a new player with an empty hand.
func NewPlayer(label int, name string) *Player {
	return &Player{
		Label: label,
		Name:  name,
		Hand:  NewHand(label),
	}
}

// ResetRound clears the per-round state. The score is kept.
func (p *Player) ResetRound() {
	p.PlayedCard = nil
	p.TricksWon = 0
	p.Bid = 0
}

// HasCards reports whether the player still holds cards.
func (p *Player) HasCards() bool {
	return !p.Hand.Empty()
}
