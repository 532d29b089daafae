// Package config resolves the Linear API credential at process start.
//
// The credential is looked up in precedence order: command-line
// argument, then the LINEAR_API_KEY environment variable, then a JSON
// config file in the user's home directory. The resolved Config is
// constructed exactly once in main and passed into the server wiring —
// business logic never reads ambient process state.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// ConfigFile is the name of the fallback credential file, looked up
// in the user's home directory unless LINEAR_MCP_CONFIG overrides
// the full path.
const ConfigFile = ".linear-mcp.json"

// ErrNoCredential is returned when no API key can be resolved from
// any source. The process must exit non-zero before registering any
// capability when it sees this.
var ErrNoCredential = errors.New(
	"no Linear API key found: pass it as an argument, set LINEAR_API_KEY, or create ~/" + ConfigFile,
)

// Config carries the settings the server needs to talk to Linear.
type Config struct {
	// APIKey is the static Linear credential sent on every API call.
	APIKey string
}

// environment is the env-var leg of credential resolution.
type environment struct {
	APIKey     string `env:"LINEAR_API_KEY"`
	ConfigPath string `env:"LINEAR_MCP_CONFIG"`
}

// fileConfig is the on-disk shape of the credential file.
type fileConfig struct {
	APIKey string `json:"apiKey"`
}

// Resolve determines the API key with precedence: the given
// command-line argument, then LINEAR_API_KEY, then the config file.
// It returns ErrNoCredential when all three sources are empty.
func Resolve(arg string) (Config, error) {
	if arg != "" {
		return Config{APIKey: arg}, nil
	}

	var envCfg environment
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if envCfg.APIKey != "" {
		return Config{APIKey: envCfg.APIKey}, nil
	}

	path := envCfg.ConfigPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, ErrNoCredential
		}
		path = filepath.Join(home, ConfigFile)
	}

	key, err := readFileKey(path)
	if err != nil {
		return Config{}, err
	}
	if key == "" {
		return Config{}, ErrNoCredential
	}
	return Config{APIKey: key}, nil
}

// readFileKey loads the apiKey field from the config file. A missing
// file is not an error — it just means this source has no credential.
func readFileKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	return fc.APIKey, nil
}
