package cobra

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/NielsdaWheelz/shelf/internal/commands"
)

func newShelveCmd() *cobra.Command {
	var opts commands.ShelveOpts
	var targetsFile string
	var message, messageFile, editorCmd string

	cmd := &cobra.Command{
		Use:   "shelve <name> <path>...",
		Short: "Save local changes as a named shelf and revert them",
		Long: `Save local changes as a named shelf and revert them.

Arguments:
  name    shelf name
  path    local paths to shelve; there is no implicit "."

Behavior:
  - shelve <name> <path>...   saves the changes under <path> and reverts them
  - shelve --remove <name>    deletes a shelf
  - shelve --list             lists shelves, youngest last

A log message may be given with -m, read with -F, or entered in an editor
(--editor-cmd, $SVN_EDITOR, config "editor", $VISUAL, $EDITOR).`,
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

			client := d.client(cmd.OutOrStdout(), d.logMessages(message, messageFile, editorCmd))
			return commands.Shelve(context.Background(), client, d.cwd, args, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.List, "list", false, "list shelves")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "print nothing, or only summary information")
	flags.BoolVar(&opts.Remove, "remove", false, "delete the named shelf")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "try the operation but make no changes")
	flags.StringVar(&opts.Depth, "depth", "", "limit operation by depth (empty, files, immediates, infinity)")
	flags.StringArrayVar(&opts.Changelists, "changelist", nil, "operate only on members of changelist (repeatable, alias --cl)")
	flags.BoolVar(&opts.KeepLocal, "keep-local", false, "keep the changes in the working copy")
	flags.StringVar(&targetsFile, "targets", "", "read additional paths from file, one per line")
	flags.StringVarP(&message, "message", "m", "", "log message")
	flags.StringVarP(&messageFile, "file", "F", "", "read log message from file")
	flags.StringVar(&editorCmd, "editor-cmd", "", "editor for the log message")
	flags.SetNormalizeFunc(changelistAlias)

	return cmd
}

// changelistAlias maps svn's --cl shorthand onto --changelist.
func changelistAlias(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "cl" {
		name = "changelist"
	}
	return pflag.NormalizedName(name)
}
