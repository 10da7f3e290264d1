package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"boerenbridge/internal/config"
	"boerenbridge/internal/game"
	"boerenbridge/internal/player"
	"boerenbridge/internal/server"

	"github.com/lmittmann/tint"
)

func main() {
	if err := run(); err != nil {
		slog.Error("boerenbridge", slog.Any("err", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed (0 picks one from the clock)")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "spectator server address, e.g. :8080 (empty disables it)")
	flag.DurationVar(&cfg.TurnTimeout, "turn-timeout", cfg.TurnTimeout, "time limit per turn (0 means none)")
	flag.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "invalid picks before a card is auto-played")
	flag.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "seat strategy: first or random")
	flag.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	linger := flag.Duration("linger", 0, "keep the spectator server up this long after the game")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sinks := []game.EventSink{consoleSink(logger)}
	if cfg.Addr != "" {
		hub := server.NewHub(logger)
		go hub.Run(ctx)

		mux := http.NewServeMux()
		server.HandleRoutes(mux, hub)
		srv := &http.Server{Addr: cfg.Addr, Handler: mux}
		go func() {
			logger.Info("spectator server listening", slog.String("addr", cfg.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("spectator server", slog.Any("err", err))
			}
		}()
		defer srv.Close()
		sinks = append(sinks, hub.Publish)
	}

	opts := []game.Option{
		game.WithSeed(cfg.Seed),
		game.WithLogger(logger),
		game.WithEventSink(fanOut(sinks...)),
		game.WithTurnTimeout(cfg.TurnTimeout),
		game.WithMaxAttempts(cfg.MaxAttempts),
	}
	for label := range game.NumPlayers {
		seat, err := player.New(player.Strategy(cfg.Strategy), cfg.Seed, label)
		if err != nil {
			return err
		}
		opts = append(opts, game.WithChooser(label, seat))
	}

	g := game.NewGame(opts...)
	logger.Info("starting game",
		slog.String("game", g.ID),
		slog.Uint64("seed", cfg.Seed),
		slog.Int("dealer", g.Dealer))

	if err := g.RunGame(ctx); err != nil {
		return err
	}
	for _, p := range g.Players {
		logger.Info("final score", slog.String("player", p.Name), slog.Int("score", p.Score))
	}

	if cfg.Addr != "" && *linger > 0 {
		select {
		case <-time.After(*linger):
		case <-ctx.Done():
		}
	}
	return nil
}
