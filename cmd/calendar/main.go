package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/offlinelab/calendar-plus/internal/calendar"
	"github.com/offlinelab/calendar-plus/internal/clock"
	"github.com/offlinelab/calendar-plus/internal/config"
	"github.com/offlinelab/calendar-plus/internal/repl"
	"github.com/offlinelab/calendar-plus/internal/store"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "Path to configuration file")
	dataDir := flag.String("data-dir", "", "Data directory (overrides config)")
	storageBackend := flag.String("storage", "", "Storage backend: file or sqlite (overrides config)")
	tickInterval := flag.Int("tick", 0, "Clock tick interval in seconds (overrides config)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Apply CLI flag overrides
	if *dataDir != "" {
		cfg.Storage.DataDir = *dataDir
	}
	if *storageBackend != "" {
		cfg.Storage.Backend = *storageBackend
	}
	if *tickInterval > 0 {
		cfg.Clock.TickInterval = *tickInterval
	}
	if *noColor {
		cfg.UI.ColoredOutput = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	backend, err := openBackend(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	state := calendar.Load(store.New(backend))

	replInstance, err := repl.NewREPL(state, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating REPL: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		cancel()
		os.Exit(0)
	}()

	// The clock drives notification evaluation once per tick; the REPL
	// also evaluates after every user action.
	go clock.New(cfg.TickInterval()).Run(ctx, func(now time.Time) {
		if surfaced, ok := state.EvaluateNotifications(now); ok {
			replInstance.ShowNotification(surfaced)
		}
	})

	if err := replInstance.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.Storage.Backend {
	case config.StorageSQLite:
		if err := os.MkdirAll(cfg.Storage.DataDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return store.NewSQLiteBackend(cfg.DatabasePath())
	default:
		return store.NewFileBackend(cfg.Storage.DataDir)
	}
}
