// Package main runs Galactic Dawn, either as a single game on the local
// terminal or as a Telnet server playing one game per connection.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/config"
	"github.com/cory-johannsen/galacticdawn/internal/frontend/handlers"
	"github.com/cory-johannsen/galacticdawn/internal/observability"
	"github.com/cory-johannsen/galacticdawn/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	mode := flag.String("mode", "", "override server.mode: local or telnet")
	flag.Parse()

	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("reading .env: %v", err)
	}
	if *mode != "" {
		os.Setenv("GALACTIC_SERVER_MODE", *mode)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting galactic dawn",
		zap.String("mode", cfg.Server.Mode),
		zap.Int64("seed", cfg.Game.Seed),
	)

	lc := server.NewLifecycle(logger)
	var cleanup func()
	switch cfg.Server.Mode {
	case "telnet":
		cleanup, err = addTelnet(lc, cfg, logger)
	default:
		cleanup, err = addLocal(lc, cfg, logger)
	}
	if err != nil {
		logger.Error("initializing game", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("game initialized", zap.Duration("elapsed", time.Since(start)))

	runErr := lc.Run(context.Background())
	cleanup()
	if runErr != nil {
		logger.Error("exiting with error", zap.Error(runErr))
		logger.Sync()
		os.Exit(1)
	}
}

// addLocal registers a single game played on stdin and stdout. Every game
// ending, including end of input, exits cleanly.
func addLocal(lc *server.Lifecycle, cfg config.Config, logger *zap.Logger) (func(), error) {
	factory, cleanup, err := initializeFactory(cfg, logger)
	if err != nil {
		return nil, err
	}
	g, err := factory.NewGame(handlers.NewStreamTerminal(os.Stdin, os.Stdout))
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("creating game: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Add("local-game", &server.FuncService{
		StartFn: func() error {
			ending, err := g.Run(ctx)
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			if err != nil {
				return err
			}
			logger.Info("game finished", zap.Stringer("ending", ending))
			return nil
		},
		StopFn: cancel,
	})
	return func() {
		cancel()
		cleanup()
	}, nil
}

// addTelnet registers the Telnet acceptor.
func addTelnet(lc *server.Lifecycle, cfg config.Config, logger *zap.Logger) (func(), error) {
	acceptor, cleanup, err := initializeAcceptor(cfg, logger)
	if err != nil {
		return nil, err
	}
	lc.Add("telnet", &server.FuncService{
		StartFn: acceptor.ListenAndServe,
		StopFn:  acceptor.Stop,
	})
	logger.Info("telnet listening", zap.String("addr", cfg.Telnet.Addr()))
	return cleanup, nil
}
