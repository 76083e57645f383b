package svnstore

import (
	"context"

	"github.com/NielsdaWheelz/shelf/internal/core"
	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/events"
	"github.com/NielsdaWheelz/shelf/internal/fs"
)

// Delete removes a shelf's patch file. A dry run stops after the existence check.
func (s *Store) Delete(ctx context.Context, name, root string, dryRun bool) error {
	if err := core.ValidateName(name); err != nil {
		return err
	}

	wcRoot, err := s.WCRoot(ctx, root)
	if err != nil {
		return err
	}

	patchPath, err := s.lookup(wcRoot, name)
	if err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	if err := fs.SafeRemove(s.FS, patchPath, s.ShelvesDir(wcRoot)); err != nil {
		return errors.WrapWithDetails(errors.EPersistFailed, "failed to remove patch file", err,
			map[string]string{"patch": patchPath})
	}

	s.logEvent(wcRoot, events.KindDelete, name, nil)
	return nil
}
