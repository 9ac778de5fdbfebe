// Package config stores thunkd's credentials and backend settings in a JSON
// file under the user's home directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settable config keys, as accepted by "thunkd set".
const (
	KeyThunkToken = "thunk_token"
	KeyAPIBaseURL = "api_base_url"
)

// Config holds all thunkd configuration from ~/.thunkd/config.json.
type Config struct {
	// ThunkToken is the session cookie value used to authenticate against
	// the Thunkable backend. Grab it from the browser's cookie store while
	// logged in.
	ThunkToken string `json:"thunk_token,omitempty"`

	// APIBaseURL overrides the backend host, mainly for testing.
	APIBaseURL string `json:"api_base_url,omitempty"`
}

// DefaultPath returns the config file location under the user's home
// directory, falling back to the working directory when home is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".thunkd", "config.json")
	}
	return filepath.Join(home, ".thunkd", "config.json")
}

// Load reads configuration from path. A missing file yields an empty config,
// not an error; unreadable or invalid JSON is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Token returns the thunk_token to use. The THUNK_TOKEN environment variable
// takes priority over the config file.
func (c *Config) Token() string {
	if token := os.Getenv("THUNK_TOKEN"); token != "" {
		return token
	}
	if c != nil {
		return c.ThunkToken
	}
	return ""
}

// Set assigns value to the named key. Unknown keys are an error so a typo in
// "thunkd set" does not silently write a dead field.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyThunkToken:
		c.ThunkToken = value
	case KeyAPIBaseURL:
		c.APIBaseURL = value
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s, %s)", key, KeyThunkToken, KeyAPIBaseURL)
	}
	return nil
}
