package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/config"
	"github.com/mmcdole/marquee/internal/log"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var (
		showVersion bool
		configPath  string
		catalogURL  string
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&catalogURL, "url", "", "catalog endpoint URL (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("marquee %s\n", Version)
		return
	}

	if err := run(configPath, catalogURL); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, catalogURL string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("marquee needs an interactive terminal")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if catalogURL != "" {
		cfg.Catalog.URL = catalogURL
	}
	if cfg.Catalog.URL == "" {
		return fmt.Errorf("no catalog endpoint configured (set catalog.url or pass -url)")
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting marquee", "version", Version, "catalog", cfg.Catalog.URL)

	client, err := catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Timeout, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	matcher := search.NewMatcher(logger)
	model := tui.NewModel(client, matcher, cfg.SortKey(), cfg.Catalog.Timeout, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
