package svnstore

import (
	"context"
	"strings"

	"github.com/NielsdaWheelz/shelf/internal/core"
	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/events"
	"github.com/NielsdaWheelz/shelf/internal/fs"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// conflictSummary is printed by svn patch when any hunk was rejected.
const conflictSummary = "Summary of conflicts"

// Apply runs svn patch with the shelf's patch file against the wc root.
// The patch file is removed after a clean apply unless DryRun or KeepLocal
// is set. On conflicts the shelf is kept and E_PATCH_CONFLICT is returned.
//
// svn patch always runs with notifications on: its conflict summary is part
// of the output, so quiet only stops forwarding.
func (s *Store) Apply(ctx context.Context, req shelf.ApplyRequest) error {
	if err := core.ValidateName(req.Name); err != nil {
		return err
	}

	wcRoot, err := s.WCRoot(ctx, req.Root)
	if err != nil {
		return err
	}

	patchPath, err := s.lookup(wcRoot, req.Name)
	if err != nil {
		return err
	}

	args := []string{"patch"}
	if req.DryRun {
		args = append(args, "--dry-run")
	}
	args = append(args, "--", patchPath, wcRoot)

	res, runErr := s.svn(ctx, wcRoot, args...)
	for _, line := range outputLines(res.Stdout) {
		req.Notify.Emit(shelf.Notification{Action: shelf.ActionPatched, Path: patchedPath(line), Text: line})
	}

	if strings.Contains(res.Stdout, conflictSummary) {
		return errors.NewWithDetails(errors.EPatchConflict,
			"shelved change '"+req.Name+"' applied with conflicts; the shelf was kept",
			map[string]string{"name": req.Name, "patch": patchPath, "wc_root": wcRoot})
	}
	if runErr != nil {
		return errors.WithDetail(runErr, "patch", patchPath)
	}

	if req.DryRun {
		return nil
	}

	removed := false
	if !req.KeepLocal {
		if err := fs.SafeRemove(s.FS, patchPath, s.ShelvesDir(wcRoot)); err != nil {
			return errors.WrapWithDetails(errors.EPersistFailed, "applied, but failed to remove patch file", err,
				map[string]string{"patch": patchPath})
		}
		removed = true
	}

	s.logEvent(wcRoot, events.KindUnshelve, req.Name, events.UnshelveData(req.KeepLocal, removed))
	return nil
}

// patchedPath extracts the path from svn patch lines like "U         a.txt".
func patchedPath(line string) string {
	if len(line) > 2 && line[1] == ' ' && strings.ContainsRune("UADCG", rune(line[0])) {
		return strings.TrimSpace(line[1:])
	}
	return ""
}
