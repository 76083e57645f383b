package shelf

import (
	"context"

	"github.com/NielsdaWheelz/shelf/internal/errors"
)

// ResolveYoungest returns the bare name of the most recently modified shelf
// under root. On a timestamp tie the name that sorts last wins.
//
// Returns E_NO_SHELVES when root has no shelves. Store errors are returned as-is.
func ResolveYoungest(ctx context.Context, store Store, root string) (string, error) {
	list, err := ListSorted(ctx, store, root)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", errors.NewWithDetails(errors.ENoShelves, "No shelved changes found",
			map[string]string{"wc_root": root})
	}
	return BareName(list[len(list)-1].Name), nil
}
