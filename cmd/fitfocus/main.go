package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/fitfocus/fitfocus/internal/clock"
	"github.com/fitfocus/fitfocus/internal/coach"
	"github.com/fitfocus/fitfocus/internal/storage"
	"github.com/fitfocus/fitfocus/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fitfocus failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Credentials live in .env when present; the environment wins.
	_ = godotenv.Load()
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	state, err := store.Load(context.Background())
	if err != nil {
		return err
	}
	if cfg.Language.IsValid() {
		state.Language = cfg.Language
	}

	coachClient := coach.NewClient(cfg.GeminiKey).WithModel(cfg.GeminiModel)

	watcher := clock.NewWatcher()
	watcher.Start()
	defer watcher.Stop()

	program := tea.NewProgram(update.NewModelWithWatcher(state, store, coachClient, watcher))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
