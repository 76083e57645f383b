package svnstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// List returns the shelves of the working copy containing root, keyed by
// patch file name ("foo.patch"). A missing shelves directory yields an
// empty map (not error). Unreadable patch files are listed without a message.
func (s *Store) List(ctx context.Context, root string) (map[string]shelf.Record, error) {
	wcRoot, err := s.WCRoot(ctx, root)
	if err != nil {
		return nil, err
	}
	return s.scan(wcRoot)
}

func (s *Store) scan(wcRoot string) (map[string]shelf.Record, error) {
	dir := s.ShelvesDir(wcRoot)

	entries, err := s.FS.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]shelf.Record{}, nil
		}
		return nil, errors.WrapWithDetails(errors.EShelvesDirFailed, "failed to read shelves directory", err,
			map[string]string{"shelves_dir": dir, "wc_root": wcRoot})
	}

	records := make(map[string]shelf.Record)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, shelf.PatchSuffix) || name == shelf.PatchSuffix {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := s.FS.Stat(path)
		if err != nil {
			// Removed between ReadDir and Stat
			continue
		}

		rec := shelf.Record{
			Name:       name,
			PatchPath:  path,
			ModifiedAt: info.ModTime(),
			SizeBytes:  info.Size(),
		}
		if data, err := s.FS.ReadFile(path); err == nil {
			rec.Message = parseMessage(data)
		}
		records[name] = rec
	}
	return records, nil
}

// lookup returns the patch path of an existing shelf, or E_SHELF_NOT_FOUND
// with a did-you-mean hint.
func (s *Store) lookup(wcRoot, name string) (string, error) {
	path := s.PatchPath(wcRoot, name)
	info, err := s.FS.Stat(path)
	if err == nil && !info.IsDir() {
		return path, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return "", errors.WrapWithDetails(errors.EShelvesDirFailed, "failed to stat patch file", err,
			map[string]string{"patch": path, "name": name})
	}

	notFound := errors.NewWithDetails(errors.EShelfNotFound,
		"shelved change '"+name+"' not found",
		map[string]string{"name": name, "wc_root": wcRoot})

	existing, scanErr := s.scan(wcRoot)
	if scanErr != nil {
		return "", notFound
	}
	if match, ok := closestName(name, existing); ok {
		notFound = errors.WithDetail(notFound, "hint", "did you mean '"+match+"'?")
	}
	return "", notFound
}
