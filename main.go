// initiative-tracker tracks turn order and status effects for a tabletop
// combat encounter. Build:
//
//	go build -o initiative-tracker .
//
// Usage:
//
//	./initiative-tracker [-config tracker.yaml] [-ui console|tui] [-log-level info]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"initiative-tracker/internal/config"
	"initiative-tracker/internal/console"
	"initiative-tracker/internal/tui"
	"initiative-tracker/internal/turnorder"
)

const defaultConfigPath = "tracker.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := defaultConfigPath
	if p := os.Getenv("TRACKER_CONFIG"); p != "" {
		cfgPath = p
	}
	flag.StringVar(&cfgPath, "config", cfgPath, "Path to the YAML config file (optional)")
	ui := flag.String("ui", "", "Front end: console or tui (overrides config)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *ui != "" {
		cfg.UI = *ui
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closeLog()

	order := turnorder.New()
	if err := cfg.Seed(order); err != nil {
		return fmt.Errorf("seeding encounter: %w", err)
	}
	logger.Info("session started", "ui", cfg.UI, "creatures", order.Len())

	switch cfg.UI {
	case config.UITUI:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		tui.New(screen, order, cfg.Theme, logger).Run()
	default:
		if err := console.New(os.Stdin, os.Stdout, order, logger).Run(); err != nil {
			return err
		}
	}

	logger.Info("session ended", "creatures", order.Len())
	return nil
}

// newLogger writes text logs to the configured file; the terminal belongs to
// the front end.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
