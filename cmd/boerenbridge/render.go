package main

import (
	"log/slog"

	"boerenbridge/internal/game"
	"boerenbridge/internal/protocol"
)

func fanOut(sinks ...game.EventSink) game.EventSink {
	return func(eventType string, payload any) {
		for _, sink := range sinks {
			sink(eventType, payload)
		}
	}
}

// consoleSink renders game events as log lines.
func consoleSink(logger *slog.Logger) game.EventSink {
	return func(eventType string, payload any) {
		switch p := payload.(type) {
		case protocol.RoundStartPayload:
			logger.Info("round", slog.Int("round", p.Round), slog.Int("cards", p.CardsPerHand), slog.Int("starter", p.Starter))
		case protocol.TrumpPayload:
			logger.Info("trump", slog.String("suit", p.Suit.String()))
		case protocol.TurnPayload:
			logger.Debug("turn",
				slog.Int("player", p.PlayerLabel),
				slog.Any("playable", p.Playable),
				slog.Any("unplayable", p.Unplayable))
		case protocol.CardPlayedPayload:
			logger.Debug("played", slog.Int("player", p.PlayerLabel), slog.String("card", p.Card.String()), slog.Bool("auto", p.AutoPlayed))
		case protocol.TrickEndPayload:
			logger.Info("highest card", slog.String("card", p.Winner.Card.String()), slog.Int("player", p.Winner.PlayerLabel))
		case protocol.RoundEndPayload:
			for _, s := range p.Scores {
				logger.Info("score",
					slog.Int("round", p.Round),
					slog.Int("player", s.Label),
					slog.Int("bid", s.Bid),
					slog.Int("won", s.TricksWon),
					slog.Int("delta", s.Delta),
					slog.Int("total", s.Score))
			}
		case protocol.GameOverPayload:
			logger.Info("game over", slog.Any("winners", p.Winners))
		}
	}
}
