package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"boerenbridge/internal/protocol"
	"boerenbridge/internal/shared"
)

// RunGame plays every remaining round.
func (g *Game) RunGame(ctx context.Context) error {
	for !g.Over() {
		if err := g.RunRound(ctx); err != nil {
			return err
		}
	}
	return nil
}

// RunRound advances exactly one round: deal, trump, bids, all tricks, score.
func (g *Game) RunRound(ctx context.Context) error {
	if err := g.StartRound(); err != nil {
		return err
	}
	if err := g.collectBids(ctx); err != nil {
		return err
	}
	return g.PlayRound(ctx)
}

// StartRound deals the cards of the current round and assigns trump.
// Bids may be set until play begins.
func (g *Game) StartRound() error {
	if g.Phase == PhaseGameOver {
		return ErrGameOver
	}
	if g.Phase != PhaseDeal {
		return fmt.Errorf("start round in phase %s: %w", g.Phase, ErrWrongPhase)
	}
	if err := g.Deck.Gather(); err != nil {
		return err
	}
	for _, p := range g.Players {
		p.ResetRound()
	}

	g.starter = nextPlayer(g.starter)
	g.Trick.Turn = g.starter
	g.Deck.Shuffle(g.rng)
	g.assignTrump()

	hands := make([]*shared.Hand, 0, NumPlayers)
	for _, label := range turnOrder(g.starter) {
		hands = append(hands, g.Players[label].Hand)
	}
	n := shared.CardsPerRound(g.Round)
	if err := g.Deck.Deal(hands, n); err != nil {
		return err
	}
	g.Phase = PhaseBidding

	g.logger.Debug("round started",
		slog.Int("round", g.Round),
		slog.Int("cards", n),
		slog.Int("starter", g.starter),
		slog.String("trump", g.Trick.TrumpSuit.String()))
	g.emit(protocol.TypeRoundStart, protocol.RoundStartPayload{
		GameID:       g.ID,
		Round:        g.Round,
		CardsPerHand: n,
		Starter:      g.starter,
		Players:      g.playerInfos(),
	})
	g.emit(protocol.TypeTrump, protocol.TrumpPayload{Round: g.Round, Suit: g.Trick.TrumpSuit})
	g.broadcastGameState()
	return nil
}

// assignTrump turns up the suit of the last card of the stock on even
// rounds and reshuffles; odd rounds have no trump.
func (g *Game) assignTrump() {
	g.Trick.TrumpSuit = shared.NoSuit
	if g.Round%2 != 0 {
		return
	}
	if last, ok := g.Deck.Stock.Last(); ok {
		g.Trick.TrumpSuit = last.Suit
		g.Deck.Shuffle(g.rng)
	}
}

// SetBid records how many tricks a player expects to win this round.
func (g *Game) SetBid(label, count int) error {
	if g.Phase != PhaseBidding {
		return fmt.Errorf("bid in phase %s: %w", g.Phase, ErrWrongPhase)
	}
	if label < 0 || label >= NumPlayers {
		return fmt.Errorf("bid for %d: %w", label, ErrUnknownPlayer)
	}
	if n := shared.CardsPerRound(g.Round); count < 0 || count > n {
		return fmt.Errorf("bid %d with %d cards: %w", count, n, ErrInvalidBid)
	}
	g.Players[label].Bid = count
	g.emit(protocol.TypeBid, protocol.BidPayload{PlayerLabel: label, Bid: count})
	return nil
}

// collectBids asks every seat that is also a Bidder, in turn order.
func (g *Game) collectBids(ctx context.Context) error {
	var bids []protocol.BidPayload
	for _, label := range turnOrder(g.starter) {
		bidder, ok := g.choosers[label].(Bidder)
		if !ok {
			continue
		}
		req := protocol.BidRequestPayload{
			Round:        g.Round,
			PlayerLabel:  label,
			CardsPerHand: shared.CardsPerRound(g.Round),
			TrumpSuit:    g.Trick.TrumpSuit,
			Hand:         g.Players[label].Hand.Cards(),
			BidsSoFar:    slices.Clone(bids),
		}
		n, err := bidder.Bid(ctx, req)
		if err != nil {
			return fmt.Errorf("bid of player %d: %w", label, err)
		}
		if err := g.SetBid(label, n); err != nil {
			return err
		}
		bids = append(bids, protocol.BidPayload{PlayerLabel: label, Bid: n})
	}
	return nil
}

// PlayRound plays tricks until every hand is empty, then scores the round.
// Bidding stays open until the first card actually lands on the table.
func (g *Game) PlayRound(ctx context.Context) error {
	if !g.playing() {
		return fmt.Errorf("play in phase %s: %w", g.Phase, ErrWrongPhase)
	}
	for g.playing() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.takeTurn(ctx, g.Trick.Turn); err != nil {
			return err
		}
	}
	return nil
}

// PlayCard plays one card for the player whose turn it is. A card outside
// the playable set is rejected with ErrInvalidSelection and nothing changes.
func (g *Game) PlayCard(label int, card shared.Card) error {
	if !g.playing() {
		return fmt.Errorf("play in phase %s: %w", g.Phase, ErrWrongPhase)
	}
	if label < 0 || label >= NumPlayers {
		return fmt.Errorf("play for %d: %w", label, ErrUnknownPlayer)
	}
	if label != g.Trick.Turn {
		return fmt.Errorf("player %d, turn of %d: %w", label, g.Trick.Turn, ErrNotYourTurn)
	}
	if !g.Players[label].Hand.CanPlay(card, g.Trick.LeadSuit, g.Trick.TrumpSuit) {
		return fmt.Errorf("player %d plays %s: %w", label, card, ErrInvalidSelection)
	}
	return g.play(label, card, false)
}

// playing reports whether a card may be played: during bidding the first
// card of the round closes the bids.
func (g *Game) playing() bool {
	return g.Phase == PhaseBidding || g.Phase == PhasePlay
}

// Turn describes the move of the player whose turn it is.
func (g *Game) Turn() protocol.TurnPayload {
	label := g.Trick.Turn
	hand := g.Players[label].Hand
	lead, trump := g.Trick.LeadSuit, g.Trick.TrumpSuit
	return protocol.TurnPayload{
		Round:       g.Round,
		PlayerLabel: label,
		LeadSuit:    lead,
		TrumpSuit:   trump,
		Playable:    hand.Playable(lead, trump),
		Unplayable:  hand.Unplayable(lead, trump),
	}
}

func (g *Game) takeTurn(ctx context.Context, label int) error {
	turn := g.Turn()
	g.emit(protocol.TypeTurn, turn)

	card, auto, err := g.choose(ctx, label, turn)
	if err != nil {
		return err
	}
	return g.play(label, card, auto)
}

// choose asks the seat for a card until it picks a playable one. A timeout
// or too many invalid picks fall back to the first playable card.
func (g *Game) choose(ctx context.Context, label int, turn protocol.TurnPayload) (shared.Card, bool, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		card, err := g.ask(ctx, label, turn)
		switch {
		case err == nil:
		case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
			g.logger.Warn("turn timed out, playing first legal card",
				slog.Int("round", g.Round), slog.Int("player", label))
			return turn.Playable[0], true, nil
		default:
			return shared.Card{}, false, fmt.Errorf("choose for player %d: %w", label, err)
		}
		if slices.Contains(turn.Playable, card) {
			return card, false, nil
		}
		g.logger.Warn("rejected selection",
			slog.Int("round", g.Round),
			slog.Int("player", label),
			slog.String("card", card.String()),
			slog.Int("attempt", attempt))
	}
	return turn.Playable[0], true, nil
}

type choice struct {
	card shared.Card
	err  error
}

// ask runs the chooser. Without a turn timeout it runs inline; with one it
// runs in its own goroutine so the deadline holds even if the chooser
// ignores its context, and that goroutine lives until the chooser returns.
func (g *Game) ask(ctx context.Context, label int, turn protocol.TurnPayload) (shared.Card, error) {
	if g.turnTimeout <= 0 {
		return g.choosers[label].Choose(ctx, turn)
	}
	ctx, cancel := context.WithTimeout(ctx, g.turnTimeout)
	defer cancel()
	ch := make(chan choice, 1)
	go func() {
		card, err := g.choosers[label].Choose(ctx, turn)
		ch <- choice{card: card, err: err}
	}()
	select {
	case c := <-ch:
		return c.card, c.err
	case <-ctx.Done():
		return shared.Card{}, ctx.Err()
	}
}

func (g *Game) play(label int, card shared.Card, auto bool) error {
	p := g.Players[label]
	if err := g.Trick.Play(p.Hand, card); err != nil {
		return err
	}
	g.Phase = PhasePlay
	played := card
	p.PlayedCard = &played
	g.logger.Debug("card played", slog.Int("player", label), slog.String("card", card.String()))
	g.emit(protocol.TypeCardPlayed, protocol.CardPlayedPayload{PlayerLabel: label, Card: card, AutoPlayed: auto})

	if g.Trick.Len() == NumPlayers {
		return g.endTrick()
	}
	g.Trick.Turn = nextPlayer(label)
	return nil
}

// endTrick credits the winner, clears the table and hands the lead to the
// winner. The last trick of a round settles the round.
func (g *Game) endTrick() error {
	winner, err := g.Trick.Winner()
	if err != nil {
		return err
	}
	g.Players[winner.PlayerLabel].TricksWon++
	g.emit(protocol.TypeTrickEnd, protocol.TrickEndPayload{
		Winner:    winner,
		Cards:     g.Trick.Plays(),
		LeadSuit:  g.Trick.LeadSuit,
		TrumpSuit: g.Trick.TrumpSuit,
	})
	g.logger.Debug("trick won", slog.Int("player", winner.PlayerLabel), slog.String("card", winner.Card.String()))

	if err := g.Trick.Collect(&g.Deck.Discard); err != nil {
		return err
	}
	for _, p := range g.Players {
		p.PlayedCard = nil
	}
	g.Trick.Turn = winner.PlayerLabel

	for _, p := range g.Players {
		if p.HasCards() {
			g.broadcastGameState()
			return nil
		}
	}
	return g.endRound()
}

func (g *Game) endRound() error {
	g.Phase = PhaseScore
	scores := ScoreKeeper{Players: g.Players[:]}.Adjust()
	g.emit(protocol.TypeRoundEnd, protocol.RoundEndPayload{Round: g.Round, Scores: scores})

	if err := g.Deck.Gather(); err != nil {
		return err
	}
	if err := g.CheckCards(); err != nil {
		return fmt.Errorf("after round %d: %w", g.Round, err)
	}
	g.logger.Debug("round scored", slog.Int("round", g.Round))

	g.Round++
	if g.Round > shared.Rounds {
		g.Phase = PhaseGameOver
		g.logger.Info("game over", slog.String("game", g.ID), slog.Any("winners", g.Winners()))
		g.emit(protocol.TypeGameOver, protocol.GameOverPayload{GameID: g.ID, Winners: g.Winners(), Scores: g.scoreboard()})
	} else {
		g.Phase = PhaseDeal
	}
	g.broadcastGameState()
	return nil
}
