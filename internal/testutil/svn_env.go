// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"os"
)

// UnsetShelfEnv clears environment variables that change editor selection,
// config lookup, or svn behavior, so tests see only what they set.
func UnsetShelfEnv() error {
	envVars := []string{
		"SVN_EDITOR",
		"VISUAL",
		"EDITOR",
		"SHELF_CONFIG",
		"SHELF_SVN",
		"SHELF_DIFFSTAT",
		"SHELF_EDITOR",
		"SHELF_SHELVES_DIR",
	}
	for _, name := range envVars {
		if err := os.Unsetenv(name); err != nil {
			return fmt.Errorf("unset %s: %w", name, err)
		}
	}
	return nil
}
