package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// UnshelveOpts holds options for the unshelve command.
type UnshelveOpts struct {
	List      bool
	Quiet     bool
	KeepLocal bool
	DryRun    bool

	// ExtraTargets are arguments read from --targets. Unshelve takes none,
	// so any non-reserved entry is a usage error.
	ExtraTargets []string
}

// Unshelve implements `shelf unshelve [<name>]`.
// Without a name the youngest shelf is applied and a notice naming it is
// always printed, quiet or not.
func Unshelve(ctx context.Context, client *shelf.Client, cwd string, args []string, opts UnshelveOpts, stdout, stderr io.Writer) error {
	if opts.List {
		if len(args) > 0 {
			return errors.NewWithDetails(errors.EUsage, "--list does not accept arguments",
				map[string]string{"command": "unshelve"})
		}
		return listShelves(ctx, client, cwd, !opts.Quiet, stdout)
	}

	var name string
	var rest []string
	if len(args) > 0 {
		var err error
		name, rest, err = takeName(args)
		if err != nil {
			return err
		}
	} else {
		youngest, err := shelf.ResolveYoungest(ctx, client.Store, cwd)
		if err != nil {
			return err
		}
		name = youngest
		_, _ = fmt.Fprintf(stdout, "unshelving the youngest change, '%s'\n", name)
	}

	trailing := dropReserved(append(append([]string(nil), rest...), opts.ExtraTargets...), stderr)
	if len(trailing) > 0 {
		return errors.NewWithDetails(errors.EUsage, "unshelve accepts at most one shelf name",
			map[string]string{"command": "unshelve", "name": name})
	}

	if opts.Quiet {
		client = client.Quiet()
	}

	req := shelf.ApplyRequest{
		Name:      name,
		Root:      cwd,
		KeepLocal: opts.KeepLocal,
		DryRun:    opts.DryRun,
		Notify:    client.Notify,
	}
	if err := client.Store.Apply(ctx, req); err != nil {
		return err
	}

	if !opts.Quiet {
		_, _ = fmt.Fprintf(stdout, "unshelved '%s'\n", name)
	}
	return nil
}
