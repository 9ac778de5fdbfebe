package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thunkd/internal/modfs"
)

// watchCmd continuously validates a modular project directory
var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-validate a modular project whenever its files change",
	Long: `Watches a modular project directory and attempts a merge after every
settled burst of edits, so a bad file name, broken JSON, or an unmatched
screen id shows up at save time instead of at push time. Runs until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Report the starting state before the first edit.
	if err := modfs.Validate(path); err != nil {
		logger.Warn("modular project does not merge yet", zap.Error(err))
	} else {
		logger.Info("modular project merges cleanly")
	}

	watcher, err := modfs.NewWatcher(path, logger)
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		logger.Info("received shutdown signal")
	case <-ctx.Done():
	}
	return nil
}
