package cobra

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/shelf/internal/commands"
)

func newShelvesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shelves",
		Short: "List shelves with diff statistics",
		Long: `List shelves with diff statistics.
Shelves are sorted by modification time, youngest last.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeps()
			if err != nil {
				return err
			}

			client := d.client(cmd.OutOrStdout(), nil)
			return commands.Shelves(context.Background(), client, d.cwd, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	return cmd
}
