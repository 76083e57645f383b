// Package commands implements shelf CLI commands.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/NielsdaWheelz/shelf/internal/core"
	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// ShelveOpts holds options for the shelve command.
type ShelveOpts struct {
	// List prints the shelves instead of creating one.
	List bool

	// Quiet suppresses confirmation lines and progress notifications.
	Quiet bool

	// Remove deletes the named shelf.
	Remove bool

	// DryRun validates and reports without changing anything.
	DryRun bool

	// Depth is the raw --depth value; empty means infinity.
	Depth string

	// Changelists restricts the shelved changes to these changelists.
	Changelists []string

	// KeepLocal leaves the shelved changes in the working copy.
	KeepLocal bool

	// ExtraTargets are targets read from --targets, appended after args.
	ExtraTargets []string
}

// Shelve implements `shelf shelve`.
//
//	shelve --list
//	shelve --remove <name>
//	shelve <name> <target>...
//
// cwd is used as the working-copy root. Shelve has no implicit target: at
// least one path must be given. On success a confirmation line is printed
// unless quiet.
func Shelve(ctx context.Context, client *shelf.Client, cwd string, args []string, opts ShelveOpts, stdout, stderr io.Writer) error {
	if opts.Quiet {
		client = client.Quiet()
	}

	if opts.List {
		if len(args) > 0 {
			return errors.NewWithDetails(errors.EUsage, "--list does not accept arguments",
				map[string]string{"command": "shelve"})
		}
		return listShelves(ctx, client, cwd, !opts.Quiet, stdout)
	}

	name, rest, err := takeName(args)
	if err != nil {
		return err
	}

	if opts.Remove {
		if len(rest) > 0 {
			return errors.NewWithDetails(errors.EUsage, "--remove accepts only a shelf name",
				map[string]string{"command": "shelve", "name": name})
		}
		if err := client.Store.Delete(ctx, name, cwd, opts.DryRun); err != nil {
			return err
		}
		if !opts.Quiet {
			_, _ = fmt.Fprintf(stdout, "deleted '%s'\n", name)
		}
		return nil
	}

	if err := core.ValidateName(name); err != nil {
		return err
	}

	depth, err := shelf.ParseDepth(opts.Depth)
	if err != nil {
		return err
	}

	raw := make([]string, 0, len(rest)+len(opts.ExtraTargets))
	raw = append(raw, rest...)
	raw = append(raw, opts.ExtraTargets...)

	targets, err := localTargets(cwd, raw, stderr)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errors.NewWithDetails(errors.EInvalidTarget,
			"no targets given; shelve needs at least one path",
			map[string]string{"command": "shelve", "name": name})
	}

	req := shelf.CreateRequest{
		Name:        name,
		Targets:     targets,
		Depth:       depth.OrInfinity(),
		Changelists: opts.Changelists,
		KeepLocal:   opts.KeepLocal,
		DryRun:      opts.DryRun,
		Notify:      client.Notify,
	}
	if err := createWithMessage(ctx, client, req); err != nil {
		return err
	}

	if !opts.Quiet {
		_, _ = fmt.Fprintf(stdout, "shelved '%s'\n", name)
	}
	return nil
}

// createWithMessage runs Store.Create with a log message acquired from the
// client. The message is released with the outcome of the create call.
func createWithMessage(ctx context.Context, client *shelf.Client, req shelf.CreateRequest) error {
	if client.LogMessages == nil {
		return client.Store.Create(ctx, req)
	}

	msg, err := client.LogMessages.Acquire(ctx)
	if err != nil {
		return err
	}
	req.Message = msg.Text()
	err = client.Store.Create(ctx, req)
	return msg.Release(err)
}
