package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/miketth/numcaps/pkg/clipboard"
	"codeberg.org/miketth/numcaps/pkg/config"
	"codeberg.org/miketth/numcaps/pkg/keystate"
	"codeberg.org/miketth/numcaps/pkg/locales"
	"codeberg.org/miketth/numcaps/pkg/numcaps"
	"codeberg.org/miketth/numcaps/pkg/singleinstance"
	"codeberg.org/miketth/numcaps/pkg/settingsstore/json"
	"codeberg.org/miketth/numcaps/pkg/settingsstore/memory"
	"codeberg.org/miketth/numcaps/pkg/settingsstore/sqlite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "numcaps"

func main() {
	err := run()
	if err != nil {
		log.Fatalf("error: %+v", err)
	}
}

// agentDeps are the OS adapters the tray wires into the agent.
type agentDeps struct {
	reader    numcaps.KeyStateReader
	store     numcaps.SettingsStore
	clipboard numcaps.Clipboard
	locales   numcaps.LocaleSource
	options   numcaps.Options
	interval  time.Duration
}

type settingsStore interface {
	numcaps.SettingsStore
	Close() error
}

func run() error {
	configPath := flag.String("config", config.DefaultPath(), "path to config.yaml")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pairs, err := cfg.BuildPairs()
	if err != nil {
		return fmt.Errorf("build layout pairs: %w", err)
	}

	lock, err := singleinstance.TryLock(singleinstance.MutexName(appName))
	if err != nil {
		return fmt.Errorf("lock instance: %w", err)
	}
	defer func() { _ = lock.Release() }()

	store, err := openStore(cfg, log)
	if err != nil {
		return fmt.Errorf("create settings store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorw("close settings store", "error", err)
		}
	}()

	reader, err := keystate.NewReader()
	if err != nil {
		return fmt.Errorf("create key state reader: %w", err)
	}

	clip, err := clipboard.New()
	if err != nil {
		return fmt.Errorf("open clipboard: %w", err)
	}

	deps := agentDeps{
		reader:    reader,
		store:     store,
		clipboard: clip,
		locales:   locales.NewSource(),
		options:   numcaps.Options{Pairs: pairs, WidthLimit: cfg.WidthLimit},
		interval:  cfg.PollInterval,
	}

	log.Infow("started numcaps", "config", *configPath, "store", cfg.Store, "pairs", len(pairs))

	// the tray owns the calling goroutine until it is closed
	if err := runTray(ctx, deps, log); err != nil {
		return fmt.Errorf("run tray: %w", err)
	}

	log.Info("shutting down")
	return nil
}

func openStore(cfg *config.Config, log *zap.SugaredLogger) (settingsStore, error) {
	path, err := cfg.StoreFile()
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}

	switch cfg.Store {
	case config.StoreSQLite:
		store, err := sqlite.NewSettingsStore(path, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreJSON:
		store, err := json.NewSettingsStore(path, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreMemory:
		return memory.NewSettingsStore(), nil
	}

	return nil, fmt.Errorf("store %q: %w", cfg.Store, config.ErrUnknownStore)
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stdout"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
