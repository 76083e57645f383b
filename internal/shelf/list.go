package shelf

import (
	"context"
	"sort"
)

// ListSorted returns every shelf under root ordered oldest to youngest by
// ModifiedAt. Shelves with identical timestamps are ordered by name, so the
// result is the same for identical store contents regardless of map order.
// Each Record's Name is set to its store key. Store errors are returned as-is.
func ListSorted(ctx context.Context, store Store, root string) ([]Record, error) {
	records, err := store.List(ctx, root)
	if err != nil {
		return nil, err
	}
	return sortByModified(records), nil
}

func sortByModified(records map[string]Record) []Record {
	keys := make([]string, 0, len(records))
	for key := range records {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	list := make([]Record, 0, len(keys))
	for _, key := range keys {
		rec := records[key]
		rec.Name = key
		list = append(list, rec)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ModifiedAt.Before(list[j].ModifiedAt)
	})
	return list
}
