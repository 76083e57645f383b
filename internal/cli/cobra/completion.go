package cobra

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/fs"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

func newCompletionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts.
By default, prints the script to stdout.
Use --output to write directly to a file.

Arguments:
  shell    target shell: bash or zsh

Installation:

  bash (with bash-completion package):
    shelf completion --output ~/.local/share/bash-completion/completions/shelf bash

  zsh (with fpath):
    shelf completion zsh > ~/.zsh/completions/_shelf
    # ensure ~/.zsh/completions is in fpath before compinit

After installation, restart your shell.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			if err := genCompletion(cmd.Root(), args[0], &buf); err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			fsys := fs.NewRealFS()
			dir := filepath.Dir(output)
			if err := fsys.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrap(errors.EInternal, fmt.Sprintf("failed to create directory %s", dir), err)
			}
			if err := fsys.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return errors.Wrap(errors.EInternal, fmt.Sprintf("failed to write %s", output), err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "write completion script to file instead of stdout")

	return cmd
}

func genCompletion(root *cobra.Command, shell string, buf *bytes.Buffer) error {
	var err error
	switch shell {
	case "bash":
		err = root.GenBashCompletionV2(buf, true)
	case "zsh":
		err = root.GenZshCompletion(buf)
	default:
		return errors.New(errors.EUsage, fmt.Sprintf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to generate completion script", err)
	}
	return nil
}

// completeShelfNames completes the first argument with existing shelf names.
func completeShelfNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	d, err := loadDeps()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	records, err := d.client(nil, nil).Store.List(context.Background(), d.cwd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, 0, len(records))
	for key := range records {
		names = append(names, shelf.BareName(key))
	}
	sort.Strings(names)
	return names, cobra.ShellCompDirectiveNoFileComp
}
