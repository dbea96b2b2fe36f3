package main

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"snakearcade/internal/asset"
	"snakearcade/internal/config"
	"snakearcade/internal/game"
	"snakearcade/internal/record"
	"snakearcade/internal/term"
	"snakearcade/internal/window"
)

const logFile = "snake.log"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	out, err := logOutput(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open log file")
	}
	defer out.Close()
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	log.Info().Str("frontend", cfg.Frontend).Str("assets", cfg.AssetDir).Str("data", cfg.DataDir).
		Stringer("policy", cfg.Policy).Msg("config loaded")

	store := record.NewStore(cfg.DataDir, cfg.Policy)
	if created, err := store.EnsureLeaderboard(); err != nil {
		log.Fatal().Err(err).Msg("cannot prepare leaderboard")
	} else if created {
		log.Info().Str("path", store.LeaderboardPath()).Msg("leaderboard created")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	board := game.NewBoard(cfg.Width, cfg.Height, cfg.CellSize)
	loader := asset.NewLoader(os.DirFS(cfg.AssetDir))

	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = runTerminal(cfg, board, store, loader, rng)
	default:
		err = runWindow(cfg, board, store, loader, rng)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// logOutput keeps the terminal free for tcell by logging to a file there.
func logOutput(cfg config.Config) (io.WriteCloser, error) {
	if cfg.Frontend != config.FrontendTerminal {
		return nopCloser{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}}, nil
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(cfg.DataDir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func runWindow(cfg config.Config, board game.Board, store *record.Store, loader *asset.Loader, rng *rand.Rand) error {
	w, err := window.New(window.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Board:        board,
		Store:        store,
		Loader:       loader,
		Rand:         rng,
		GameTPS:      cfg.GameTPS,
		MenuTPS:      cfg.MenuTPS,
		DebugOverlay: cfg.DebugOverlay,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load assets")
	}
	return w.Run()
}

func runTerminal(cfg config.Config, board game.Board, store *record.Store, loader *asset.Loader, rng *rand.Rand) error {
	sounds, err := term.LoadSounds(loader)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load assets")
	}
	sounds.Init()
	defer sounds.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	t := term.New(screen, term.Options{
		Board:   board,
		Store:   store,
		Cues:    sounds,
		Rand:    rng,
		GameTPS: cfg.GameTPS,
		MenuTPS: cfg.MenuTPS,
	})
	return t.Run()
}
