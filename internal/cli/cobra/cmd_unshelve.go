package cobra

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/shelf/internal/commands"
)

func newUnshelveCmd() *cobra.Command {
	var opts commands.UnshelveOpts
	var targetsFile string

	cmd := &cobra.Command{
		Use:   "unshelve [<name>]",
		Short: "Apply a shelf to the working copy",
		Long: `Apply a shelf to the working copy.

Arguments:
  name    shelf name; defaults to the youngest shelf

Behavior:
  - applies the shelved patch with svn patch
  - deletes the shelf afterwards unless --keep-local is given
  - on conflicts the shelf is kept`,
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: completeShelfNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeps()
			if err != nil {
				return err
			}

			opts.ExtraTargets, err = d.readTargets(targetsFile)
			if err != nil {
				return err
			}

			client := d.client(cmd.OutOrStdout(), nil)
			return commands.Unshelve(context.Background(), client, d.cwd, args, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.List, "list", false, "list shelves")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "print nothing, or only summary information")
	flags.BoolVar(&opts.KeepLocal, "keep-local", false, "keep the shelf after applying it")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "try the operation but make no changes")
	flags.StringVar(&targetsFile, "targets", "", "read additional arguments from file, one per line")

	return cmd
}
