package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"boerenbridge/internal/protocol"
	"boerenbridge/internal/shared"

	"github.com/google/uuid"
)

// NumPlayers is the number of seats at the table.
const NumPlayers = 4

// Phase represents where the game is within a round.
type Phase string

const (
	PhaseDeal     Phase = "Deal"     // Waiting for StartRound
	PhaseBidding  Phase = "Bidding"  // Cards dealt, bids may be set
	PhasePlay     Phase = "Play"     // Tricks are being played
	PhaseScore    Phase = "Score"    // Settling the round
	PhaseGameOver Phase = "GameOver" // All rounds played
)

// EventSink receives every event the game emits. Payload types live in
// the protocol package.
type EventSink func(eventType string, payload any)

// Game represents the state machine of one Boerenbridge game.
type Game struct {
	ID      string
	Players [NumPlayers]*shared.Player
	Deck    *shared.Deck
	Trick   *shared.Trick
	Round   int // 1-indexed, Rounds+1 once the game is over
	Phase   Phase
	Dealer  int // Label of the initial dealer

	starter     int // Label leading the current round
	choosers    [NumPlayers]Chooser
	sink        EventSink
	logger      *slog.Logger
	rng         *rand.Rand
	turnTimeout time.Duration
	maxAttempts int
}

// Option configures a Game.
type Option func(*Game)

// WithSeed makes shuffling and dealer selection deterministic.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithChooser sets the card chooser of one seat.
func WithChooser(label int, c Chooser) Option {
	return func(g *Game) {
		if label >= 0 && label < NumPlayers {
			g.choosers[label] = c
		}
	}
}

// WithChoosers sets the card chooser of every seat.
func WithChoosers(c Chooser) Option {
	return func(g *Game) {
		for i := range g.choosers {
			g.choosers[i] = c
		}
	}
}

// WithEventSink registers the receiver of game events.
func WithEventSink(sink EventSink) Option {
	return func(g *Game) {
		g.sink = sink
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithTurnTimeout bounds each Choose call. Zero means no limit.
func WithTurnTimeout(d time.Duration) Option {
	return func(g *Game) {
		g.turnTimeout = d
	}
}

// WithMaxAttempts bounds how often a seat is re-prompted after an invalid pick.
func WithMaxAttempts(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithPlayerNames names the seats in label order.
func WithPlayerNames(names ...string) Option {
	return func(g *Game) {
		for i, name := range names {
			if i < NumPlayers {
				g.Players[i].Name = name
			}
		}
	}
}

// NewGame initializes a fresh game and draws the initial dealer.
func NewGame(opts ...Option) *Game {
	g := &Game{
		ID:          uuid.NewString(),
		Deck:        shared.NewDeck(),
		Trick:       shared.NewTrick(),
		Round:       1,
		Phase:       PhaseDeal,
		sink:        func(string, any) {},
		logger:      slog.New(slog.DiscardHandler),
		maxAttempts: 3,
	}
	for i := range g.Players {
		g.Players[i] = shared.NewPlayer(i, fmt.Sprintf("Player %d", i+1))
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	for i, c := range g.choosers {
		if c == nil {
			g.choosers[i] = firstLegal
		}
	}

	g.Dealer = g.drawDealer()
	g.starter = g.Dealer
	g.Trick.Turn = g.Dealer
	g.logger.Debug("game created", slog.String("game", g.ID), slog.Int("dealer", g.Dealer))
	return g
}

// drawDealer gives every player one card from a shuffled deck; the highest
// card deals. The cards are only looked at, never removed from the stock.
func (g *Game) drawDealer() int {
	g.Deck.Shuffle(g.rng)
	cards := g.Deck.Stock.Cards()
	drawn := cards[len(cards)-NumPlayers:]
	dealer := 0
	for i, c := range drawn {
		if drawn[dealer].Less(c) {
			dealer = i
		}
	}
	return dealer
}

// nextPlayer returns the label clockwise after label.
func nextPlayer(label int) int {
	return (label + 1) % NumPlayers
}

// Starter returns the label leading the current round.
func (g *Game) Starter() int {
	return g.starter
}

// Over reports whether every round has been played.
func (g *Game) Over() bool {
	return g.Phase == PhaseGameOver
}

// CheckCards verifies that deck, hands and trick together hold exactly the
// 52 distinct cards.
func (g *Game) CheckCards() error {
	seen := make(map[shared.Card]bool, shared.DeckSize)
	total := 0
	add := func(where string, cards []shared.Card) error {
		for _, c := range cards {
			if !c.Valid() {
				return fmt.Errorf("%w: invalid card %v in %s", shared.ErrContractViolation, c, where)
			}
			if seen[c] {
				return fmt.Errorf("%w: duplicate %s in %s", shared.ErrContractViolation, c, where)
			}
			seen[c] = true
			total++
		}
		return nil
	}
	if err := add("stock", g.Deck.Stock.Cards()); err != nil {
		return err
	}
	if err := add("discard", g.Deck.Discard.Cards()); err != nil {
		return err
	}
	if err := add("trick", g.Trick.Cards()); err != nil {
		return err
	}
	for _, p := range g.Players {
		if err := add(fmt.Sprintf("hand %d", p.Label), p.Hand.Cards()); err != nil {
			return err
		}
	}
	if total != shared.DeckSize {
		return fmt.Errorf("%w: %d cards in play, want %d", shared.ErrContractViolation, total, shared.DeckSize)
	}
	return nil
}

// State returns a snapshot of the public table state.
func (g *Game) State() protocol.GameStatePayload {
	return protocol.GameStatePayload{
		GameID:       g.ID,
		Phase:        string(g.Phase),
		Round:        g.Round,
		Turn:         g.Trick.Turn,
		LeadSuit:     g.Trick.LeadSuit,
		TrumpSuit:    g.Trick.TrumpSuit,
		CardsOnTable: g.Trick.Plays(),
		Scores:       g.scoreboard(),
	}
}

func (g *Game) scoreboard() []protocol.PlayerScore {
	out := make([]protocol.PlayerScore, NumPlayers)
	for i, p := range g.Players {
		out[i] = protocol.PlayerScore{Label: p.Label, Bid: p.Bid, TricksWon: p.TricksWon, Score: p.Score}
	}
	return out
}

// Winners returns the labels sharing the highest score.
func (g *Game) Winners() []int {
	best := g.Players[0].Score
	for _, p := range g.Players[1:] {
		best = max(best, p.Score)
	}
	var out []int
	for _, p := range g.Players {
		if p.Score == best {
			out = append(out, p.Label)
		}
	}
	return out
}

func (g *Game) playerInfos() []protocol.PlayerInfo {
	out := make([]protocol.PlayerInfo, NumPlayers)
	for i, p := range g.Players {
		out[i] = protocol.PlayerInfo{Label: p.Label, Name: p.Name}
	}
	return out
}

func (g *Game) emit(eventType string, payload any) {
	g.sink(eventType, payload)
}

func (g *Game) broadcastGameState() {
	g.emit(protocol.TypeGameState, g.State())
}

// turnOrder lists the labels starting at from and going clockwise.
func turnOrder(from int) []int {
	order := make([]int, NumPlayers)
	for i := range order {
		order[i] = (from + i) % NumPlayers
	}
	return order
}
