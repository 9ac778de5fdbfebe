package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"thunkd/internal/config"
)

// setCmd stores a config value
var setCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Store a configuration value",
	Long: `Writes a value into the config file.

Keys:
  thunk_token    session cookie used to authenticate (required for pull/push)
  api_base_url   backend host override`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	path := resolveConfigPath()

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Printf("Set %s in %s\n", key, path)
	return nil
}
