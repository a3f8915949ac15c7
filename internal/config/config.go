// Package config resolves the directories loom works with.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the CLI configuration.
type Config struct {
	// LoomRoot is the loom state directory (~/.loom).
	LoomRoot string

	// BlueprintDir is where user-defined blueprints live
	// (~/.loom/blueprints), one directory per blueprint containing a
	// blueprint.yaml and a templates/ directory.
	BlueprintDir string
}

// Load resolves the loom root and creates it if needed.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	root := filepath.Join(home, ".loom")
	blueprintDir := filepath.Join(root, "blueprints")
	if err := os.MkdirAll(blueprintDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create loom root: %w", err)
	}

	return &Config{
		LoomRoot:     root,
		BlueprintDir: blueprintDir,
	}, nil
}

// TargetDir resolves where a new project is written: the --dir override if
// given, otherwise a directory named after the project under the current
// working directory.
func TargetDir(override, project string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, project), nil
}
