package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable overriding the config location.
const EnvConfigPath = "NODETREE_CONFIG"

// GetConfigPath returns the configuration file path. It first checks the
// NODETREE_CONFIG environment variable, then falls back to the default
// location (~/.nodetree/config).
func GetConfigPath() (string, error) {
	if configPath := os.Getenv(EnvConfigPath); configPath != "" {
		return configPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".nodetree", "config"), nil
}
