package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/game/manager"
	"classic-snake/game/types"
	"classic-snake/logging"
	"classic-snake/store"
	"classic-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/pflag"
	"golang.org/x/exp/rand"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := pflag.NewFlagSet("snake", pflag.ContinueOnError)
	configDir := fs.String("config-dir", ".", "Directory holding "+config.FileName)
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("log-file", "", "Also append logs to this file")
	fs.String("store", "file", "High score backend (file, sqlite, postgres)")
	fs.String("store-path", "", "High score file or sqlite database path")
	fs.String("store-dsn", "", "Postgres connection string")
	fs.Uint64("seed", 0, "Food placement seed, 0 picks one from the clock")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if err := config.BindFlags(fs); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind flags: %v\n", err)
		return 1
	}

	log, logCloser, err := logging.New(logging.Config{
		Level: config.GetString("logLevel"),
		File:  config.GetString("logFile"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storeCfg := config.GetStoreConfig()
	st, err := store.New(storeCfg, log)
	if err != nil {
		log.Error().Err(err).Str("store", storeCfg.Type).Msg("Failed to open high score store")
		return 1
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close high score store")
		}
	}()

	scores, err := manager.NewStateManager(ctx, st, log)
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			log.Error().Err(err).Msg("High score store is unreadable, fix or remove it to continue")
		} else {
			log.Error().Err(err).Msg("Failed to start")
		}
		return 1
	}

	if history, err := st.History(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to read run history")
	} else {
		log.Info().Int("runs", len(history)).Msg("Run history loaded")
	}

	gameCfg := config.GetGameConfig()
	seed := gameCfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", seed).Msg("Food seed")

	grid := types.DefaultGrid()
	g, err := game.NewGame(game.Options{
		Grid:         grid,
		BaseTickRate: gameCfg.BaseTickRate,
		Rand:         rand.New(rand.NewSource(seed)),
		Scores:       scores,
		Logger:       log,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create game")
		return 1
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(grid.Width), int32(grid.Height), config.GetString("window.title"))
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	menu := ui.NewMenu(int32(grid.Width), int32(grid.Height))
	loop := game.NewLoop(g, ui.NewInput(menu), ui.NewRenderer(grid, menu))
	if err := loop.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Game loop failed")
		return 1
	}

	log.Info().
		Int("gamesPlayed", scores.GetGamesPlayed()).
		Int("sessionBest", scores.GetSessionBest()).
		Int("highScore", scores.GetHighScore()).
		Msg("Goodbye")
	return 0
}
