package svnstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/shelf/internal/core"
	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/events"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// Create saves the local modifications under req.Targets as a new patch
// file and, unless KeepLocal, reverts them.
//
// Steps:
//  1. Validate the name and refuse an existing shelf
//  2. svn diff --git, run from the wc root with wc-relative targets
//  3. Write <name>.patch atomically (skipped on dry run)
//  4. Reverse-apply the patch (skipped on dry run or KeepLocal)
//
// If the reverse apply fails the patch file is kept so no change is lost.
func (s *Store) Create(ctx context.Context, req shelf.CreateRequest) error {
	if err := core.ValidateName(req.Name); err != nil {
		return err
	}
	if len(req.Targets) == 0 {
		return errors.NewWithDetails(errors.EInvalidTarget, "no targets given",
			map[string]string{"name": req.Name})
	}

	wcRoot, err := s.WCRoot(ctx, req.Targets[0])
	if err != nil {
		return err
	}

	rel, err := relativeTargets(wcRoot, req.Targets)
	if err != nil {
		return err
	}

	patchPath := s.PatchPath(wcRoot, req.Name)
	if _, err := s.FS.Stat(patchPath); err == nil {
		return errors.NewWithDetails(errors.EShelfExists,
			"shelved change '"+req.Name+"' already exists",
			map[string]string{"name": req.Name, "patch": patchPath})
	} else if !os.IsNotExist(err) {
		return errors.WrapWithDetails(errors.EShelvesDirFailed, "failed to stat patch file", err,
			map[string]string{"patch": patchPath})
	}

	depth := string(req.Depth.OrInfinity())
	diffArgs := append([]string{"diff", "--git", "--depth", depth}, changelistArgs(req.Changelists)...)
	diffArgs = append(diffArgs, "--")
	diffArgs = append(diffArgs, rel...)

	res, err := s.svn(ctx, wcRoot, diffArgs...)
	if err != nil {
		return err
	}
	if strings.TrimSpace(res.Stdout) == "" {
		return errors.NewWithDetails(errors.ENoChanges, "No local modifications could be found",
			map[string]string{"name": req.Name, "wc_root": wcRoot})
	}

	if req.DryRun {
		return nil
	}

	content := encodePatch(req.Message, res.Stdout)
	if err := s.FS.MkdirAll(s.ShelvesDir(wcRoot), 0o755); err != nil {
		return errors.WrapWithDetails(errors.EPersistFailed, "failed to create shelves directory", err,
			map[string]string{"shelves_dir": s.ShelvesDir(wcRoot)})
	}
	if err := s.FS.WriteFile(patchPath, content, 0o644); err != nil {
		return errors.WrapWithDetails(errors.EPersistFailed, "failed to write patch file", err,
			map[string]string{"patch": patchPath})
	}

	if !req.KeepLocal {
		if err := s.revert(ctx, wcRoot, patchPath, req.Notify); err != nil {
			return errors.WithDetail(err, "patch", patchPath)
		}
	}

	s.logEvent(wcRoot, events.KindShelve, req.Name,
		events.ShelveData(rel, depth, req.Changelists, req.KeepLocal, int64(len(content))))
	return nil
}

// revert takes the shelved modifications out of the working copy by
// reverse-applying the patch just written. Unlike svn revert this also
// deletes added files, so the patch applies cleanly on unshelve.
// Output lines are forwarded as reverted notifications.
func (s *Store) revert(ctx context.Context, wcRoot, patchPath string, notify shelf.NotifyFunc) error {
	res, err := s.svn(ctx, wcRoot, "patch", "--reverse-diff", "--", patchPath, wcRoot)
	for _, line := range outputLines(res.Stdout) {
		notify.Emit(shelf.Notification{Action: shelf.ActionReverted, Path: patchedPath(line), Text: line})
	}
	if strings.Contains(res.Stdout, conflictSummary) {
		return errors.NewWithDetails(errors.ESvnFailed,
			"local changes could not be fully removed from the working copy",
			map[string]string{"wc_root": wcRoot})
	}
	return err
}

func changelistArgs(changelists []string) []string {
	args := make([]string, 0, 2*len(changelists))
	for _, cl := range changelists {
		args = append(args, "--changelist", cl)
	}
	return args
}

// relativeTargets converts absolute targets to wc-root-relative paths so the
// patch applies from the wc root. Targets outside the working copy are rejected.
func relativeTargets(wcRoot string, targets []string) ([]string, error) {
	rel := make([]string, 0, len(targets))
	for _, t := range targets {
		r, err := filepath.Rel(wcRoot, t)
		if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
			return nil, errors.NewWithDetails(errors.EInvalidTarget,
				"'"+t+"' is not inside the working copy",
				map[string]string{"target": t, "wc_root": wcRoot})
		}
		rel = append(rel, pegSafe(filepath.ToSlash(r)))
	}
	return rel, nil
}
