// Package config reads the driver settings from the environment. A .env
// file in the working directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const prefix = "BOERENBRIDGE_"

type Config struct {
	Seed        uint64 // 0 lets the driver pick one
	Addr        string
	TurnTimeout time.Duration
	MaxAttempts int
	LogLevel    slog.Level
	Strategy    string
}

func Default() Config {
	return Config{
		MaxAttempts: 3,
		LogLevel:    slog.LevelInfo,
		Strategy:    "first",
	}
}

// Load reads the optional env files (".env" when none are given) and then
// the environment. Variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(prefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%sSEED: %w", prefix, err)
		}
		cfg.Seed = seed
	}
	if v, ok := get("ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := get("TURN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%sTURN_TIMEOUT: %w", prefix, err)
		}
		cfg.TurnTimeout = d
	}
	if v, ok := get("MAX_ATTEMPTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("%sMAX_ATTEMPTS: want a positive integer, got %q", prefix, v)
		}
		cfg.MaxAttempts = n
	}
	if v, ok := get("LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%sLOG_LEVEL: %w", prefix, err)
		}
	}
	if v, ok := get("STRATEGY"); ok {
		cfg.Strategy = strings.ToLower(v)
	}
	return cfg, nil
}
