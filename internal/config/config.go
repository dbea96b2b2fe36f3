package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"snakearcade/internal/record"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type Config struct {
	Frontend string
	AssetDir string
	DataDir  string

	Width, Height int
	CellSize      int
	GameTPS       int
	MenuTPS       int

	Policy       record.Policy
	Seed         int64
	DebugOverlay bool
	LogLevel     string
}

// Load reads the given env files (or an optional .env when none are given)
// and then the process environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	var err error
	cfg.Frontend = strings.ToLower(getEnv("SNAKE_FRONTEND", FrontendWindow))
	cfg.AssetDir = getEnv("SNAKE_ASSET_DIR", ".")
	cfg.DataDir = getEnv("SNAKE_DATA_DIR", ".")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"SNAKE_WIDTH", 640, &cfg.Width},
		{"SNAKE_HEIGHT", 640, &cfg.Height},
		{"SNAKE_CELL_SIZE", 49, &cfg.CellSize},
		{"SNAKE_GAME_TPS", 6, &cfg.GameTPS},
		{"SNAKE_MENU_TPS", 60, &cfg.MenuTPS},
	}
	for _, v := range ints {
		if *v.dst, err = getInt(v.key, v.def); err != nil {
			return Config{}, err
		}
	}

	if cfg.Seed, err = strconv.ParseInt(getEnv("SNAKE_SEED", "0"), 10, 64); err != nil {
		return Config{}, fmt.Errorf("SNAKE_SEED: %w", err)
	}
	if cfg.DebugOverlay, err = strconv.ParseBool(getEnv("SNAKE_DEBUG_OVERLAY", "false")); err != nil {
		return Config{}, fmt.Errorf("SNAKE_DEBUG_OVERLAY: %w", err)
	}
	if cfg.Policy, err = record.ParsePolicy(getEnv("SNAKE_LEADERBOARD_POLICY", "shift")); err != nil {
		return Config{}, fmt.Errorf("SNAKE_LEADERBOARD_POLICY: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("SNAKE_FRONTEND: unknown frontend %q", c.Frontend)
	}
	if c.CellSize <= 0 || c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface %dx%d with %dpx cells is not drawable", c.Width, c.Height, c.CellSize)
	}
	// The apple needs at least one cell inside the border.
	if c.Width/c.CellSize < 3 || c.Height/c.CellSize < 3 {
		return fmt.Errorf("surface %dx%d holds fewer than 3x3 cells of %dpx", c.Width, c.Height, c.CellSize)
	}
	for _, tps := range []int{c.GameTPS, c.MenuTPS} {
		if tps < 1 || tps > 60 {
			return fmt.Errorf("tick rate %d out of range 1..60", tps)
		}
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
