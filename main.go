// tombs is the local terminal build of Tombs of the Ancient Kings.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"tombs-roguelike/internal/config"
	"tombs-roguelike/internal/game"
	"tombs-roguelike/internal/logger"
	"tombs-roguelike/internal/telemetry"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debugf(".env not loaded: %v", err)
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	closer, err := logger.Init(logger.Options{
		Level:    cfg.LogLevel,
		Format:   cfg.LogFormat,
		File:     cfg.LogFile,
		Fallback: io.Discard,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx := context.Background()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.Warnf("telemetry setup failed, continuing without: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Log.Errorf("telemetry shutdown: %v", err)
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		logger.Log.WithError(err).Error("screen setup failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run(ctx)
}
