package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/logger"
	"github.com/abhisek/quizdeck/internal/question"
)

var errNoTerminal = errors.New("quizdeck needs an interactive terminal; use 'quizdeck validate' to check a question file from scripts")

// runApp loads configuration, sets up logging, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	src := question.NewSource(cfg.Questions)
	log.Info("starting quiz",
		zap.Stringer("source", src),
		zap.Duration("fetch_timeout", cfg.FetchTimeout))

	return app.Run(app.Options{
		Source:  src,
		Timeout: cfg.FetchTimeout,
		Logger:  log,
	})
}
