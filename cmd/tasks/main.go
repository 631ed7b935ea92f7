package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"tasks/internal/config"
	"tasks/internal/storage"
	"tasks/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Bubble Tea owns the terminal, so logs only go to a file.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "tasks")
		if err != nil {
			fmt.Printf("failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, "tasks")
	if err != nil {
		fmt.Printf("failed to open task store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	log.Printf("config loaded from %s", configPath)
	if err := ui.Run(ctx, store, cfg); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
