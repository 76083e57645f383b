// Package svnstore implements shelf.Store on top of the svn command-line
// client. Shelves are patch files kept inside the working copy's
// administrative area:
//
//	<wc_root>/.svn/shelves/<name>.patch
//	<wc_root>/.svn/shelves/events.jsonl
package svnstore

import (
	"path/filepath"
	"time"

	"github.com/NielsdaWheelz/shelf/internal/events"
	"github.com/NielsdaWheelz/shelf/internal/exec"
	"github.com/NielsdaWheelz/shelf/internal/fs"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// DefaultShelvesDir is the shelves directory relative to the wc root.
const DefaultShelvesDir = ".svn/shelves"

// Store is the svn-backed shelf.Store.
type Store struct {
	FS     fs.FS              // filesystem interface for stubbing
	Runner exec.CommandRunner // runs svn
	Svn    string             // svn executable name or path
	Dir    string             // shelves directory relative to the wc root
	Now    func() time.Time   // injectable clock for deterministic tests
}

var _ shelf.Store = (*Store)(nil)

// New creates a Store. Empty svn or dir select the defaults.
func New(filesystem fs.FS, runner exec.CommandRunner, svn, dir string, now func() time.Time) *Store {
	if svn == "" {
		svn = "svn"
	}
	if dir == "" {
		dir = DefaultShelvesDir
	}
	if now == nil {
		now = time.Now
	}
	return &Store{
		FS:     filesystem,
		Runner: runner,
		Svn:    svn,
		Dir:    dir,
		Now:    now,
	}
}

// ShelvesDir returns the shelves directory of a working copy.
// Format: <wc_root>/.svn/shelves/
func (s *Store) ShelvesDir(wcRoot string) string {
	return filepath.Join(wcRoot, filepath.FromSlash(s.Dir))
}

// PatchPath returns the patch file path for a shelf.
// Format: <wc_root>/.svn/shelves/<name>.patch
func (s *Store) PatchPath(wcRoot, name string) string {
	return filepath.Join(s.ShelvesDir(wcRoot), name+shelf.PatchSuffix)
}

// EventsPath returns the path to the activity log.
// Format: <wc_root>/.svn/shelves/events.jsonl
func (s *Store) EventsPath(wcRoot string) string {
	return filepath.Join(s.ShelvesDir(wcRoot), "events.jsonl")
}

// logEvent appends to the activity log. Best-effort.
func (s *Store) logEvent(wcRoot, kind, name string, data map[string]any) {
	_ = events.AppendEvent(s.EventsPath(wcRoot), events.New(kind, name, wcRoot, s.Now(), data))
}
