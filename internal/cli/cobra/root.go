// Package cobra provides the Cobra-based CLI command tree for shelf.
package cobra

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/shelf/internal/version"
)

// GlobalOpts holds global options parsed before subcommand dispatch.
type GlobalOpts struct {
	Verbose        bool
	NonInteractive bool
	ConfigPath     string
}

// globalOpts stores the parsed global options for access by subcommands.
var globalOpts GlobalOpts

// GetGlobalOpts returns the parsed global options.
func GetGlobalOpts() GlobalOpts {
	return globalOpts
}

// NewRootCmd creates the root cobra command for shelf.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shelf",
		Short: "Shelve and unshelve local changes in a Subversion working copy",
		Long: `shelf - shelve and unshelve local changes in a Subversion working copy

Shelving saves the local modifications under the given paths as a named patch
and reverts them. Unshelving applies a saved patch back to the working copy.
Shelves live in the working copy's administrative area (.svn/shelves).`,
		Version:       version.FullVersion(),
		SilenceErrors: true, // errors are printed by main.go
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().BoolVar(&globalOpts.Verbose, "verbose", false, "show detailed error context")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.NonInteractive, "non-interactive", false, "never prompt or start an editor")
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigPath, "config", "", "config file (default $SHELF_CONFIG or ~/.config/shelf/config.json)")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newShelveCmd(),
		newUnshelveCmd(),
		newShelvesCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with the given output writers.
// This is the main entry point from main.go.
func Execute(stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
