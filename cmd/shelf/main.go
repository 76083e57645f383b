// Command shelf shelves and unshelves local changes in a Subversion working copy.
package main

import (
	"os"

	"github.com/NielsdaWheelz/shelf/internal/cli/cobra"
	"github.com/NielsdaWheelz/shelf/internal/errors"
)

func main() {
	err := cobra.Execute(os.Stdout, os.Stderr)
	if err != nil {
		opts := errors.PrintOptions{
			Verbose: cobra.GetGlobalOpts().Verbose,
		}
		errors.PrintWithOptions(os.Stderr, err, opts)
		os.Exit(errors.ExitCode(err))
	}
}
