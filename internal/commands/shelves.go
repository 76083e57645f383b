package commands

import (
	"context"
	"io"

	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// Shelves implements `shelf shelves`: the shelf listing with diff statistics.
// This is a read-only command with no side effects.
func Shelves(ctx context.Context, client *shelf.Client, cwd string, args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		return errors.NewWithDetails(errors.EUsage, "shelves does not accept arguments",
			map[string]string{"command": "shelves"})
	}

	return listShelves(ctx, client, cwd, true, stdout)
}
