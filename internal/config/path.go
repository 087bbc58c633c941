// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}

// DefaultStorePath returns the default location of the ledger document
// store when no path is configured.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "wonflow.db"
	}
	return filepath.Join(home, ".local", "share", "wonflow", "ledger.db")
}
