package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/NielsdaWheelz/shelf/internal/render"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// listShelves prints every shelf under root, oldest first. With diffstat set
// and a Diffstat collaborator configured, each entry is followed by its diff
// statistics and a blank line.
func listShelves(ctx context.Context, client *shelf.Client, root string, diffstat bool, stdout io.Writer) error {
	list, err := shelf.ListSorted(ctx, client.Store, root)
	if err != nil {
		return err
	}

	now := client.Clock()
	for _, rec := range list {
		if err := render.WriteShelfRow(stdout, render.FormatShelfRow(rec, now)); err != nil {
			return err
		}
		if diffstat && client.Diffstat != nil {
			client.Diffstat(ctx, rec.PatchPath, stdout)
			_, _ = fmt.Fprintln(stdout)
		}
	}
	return nil
}
