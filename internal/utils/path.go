package utils

import (
	"fmt"
	"os"
	"path"
)

// GetConfigDir returns the path to the sahayak configuration directory.
// The directory is located inside the user's configuration directory
// as <UserConfigDir>/.sahayak, unless overridden by SAHAYAK_CONFIG_HOME.
func GetConfigDir() (string, error) {
	if configHome := os.Getenv("SAHAYAK_CONFIG_HOME"); configHome != "" {
		return configHome, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return path.Join(cfg, ".sahayak"), nil
}
