package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"thunkd/internal/api"
	"thunkd/internal/config"
)

// operationContext returns a context bounded by the global timeout that is
// also cancelled on SIGINT/SIGTERM.
func operationContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// resolveConfigPath honors the --config flag.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// newClient loads the config and builds an authenticated API client. A
// missing token is an error with a pointer at the fix.
func newClient() (*api.Client, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, err
	}
	token := cfg.Token()
	if token == "" {
		return nil, fmt.Errorf("thunk_token is not set; run 'thunkd set thunk_token <value>' first")
	}

	clientCfg := api.DefaultConfig(token)
	clientCfg.Logger = logger
	if cfg.APIBaseURL != "" {
		clientCfg.BaseURL = cfg.APIBaseURL
	}
	return api.NewClientWithConfig(clientCfg), nil
}

// confirmOverwrite lists the files about to be deleted and asks on stdin.
func confirmOverwrite(existing []string) bool {
	fmt.Println("After this operation, the following files will be permanently deleted.")
	for _, name := range existing {
		fmt.Printf("\t%s\n", name)
	}
	fmt.Print("Do you want to continue [Y/n]? ")

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
