// Package config resolves where the store lives and how the CLI behaves.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// StoreDir is the directory under the user's home that holds the store.
	StoreDir = ".blackroad"
	// StoreFile is the store's file name.
	StoreFile = "facilities-management.db"
)

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidColorModes lists the supported color values.
var ValidColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// DefaultDBPath returns ~/.blackroad/facilities-management.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, StoreDir, StoreFile), nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}

// ValidateColor checks that the color mode is valid.
func ValidateColor(mode string) error {
	if mode == "" {
		return nil // Empty defaults to auto
	}

	for _, valid := range ValidColorModes {
		if mode == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid color: %s (valid: %v)", mode, ValidColorModes)
}
