package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"elevmap/internal/config"
	"elevmap/internal/logging"
	"elevmap/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI; logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format, w)

	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithPath(*cfg, args[0])
	} else {
		m = tui.New(*cfg)
	}
	slog.Info("starting elevmap", "args", args)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		slog.Error("program exited", "error", err)
		return err
	}
	return nil
}
