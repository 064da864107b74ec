// main.go - Entry point for the message board client.
// Wires the pure board model to the runtime: loads configuration, builds the
// API client and hands the model to Bubble Tea, which owns the event loop.

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"msgboard/src/api"
	"msgboard/src/components/board"
	"msgboard/src/config"
)

func main() {
	// Initialize logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting board client", "base_url", cfg.BaseURL)

	client := api.NewClient(cfg.BaseURL, cfg.FetchTimeout, logger)
	program := tea.NewProgram(board.NewModel(client), tea.WithAltScreen())

	// Set up graceful shutdown
	setupGracefulShutdown(program, logger)

	if _, err := program.Run(); err != nil {
		logger.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

// setupGracefulShutdown sets up signal handling for graceful shutdown
func setupGracefulShutdown(program *tea.Program, logger *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Received shutdown signal, cleaning up...")
		program.Quit()
	}()
}
