package svnstore

import (
	"context"
	"os"
	osexec "os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/exec"
	"github.com/NielsdaWheelz/shelf/internal/fs"
)

func TestPaths(t *testing.T) {
	s := New(fs.NewRealFS(), &fakeRunner{}, "", "", nil)

	assert.Equal(t, filepath.Join("/wc", ".svn", "shelves"), s.ShelvesDir("/wc"))
	assert.Equal(t, filepath.Join("/wc", ".svn", "shelves", "fix.patch"), s.PatchPath("/wc", "fix"))
	assert.Equal(t, filepath.Join("/wc", ".svn", "shelves", "events.jsonl"), s.EventsPath("/wc"))
	assert.Equal(t, "svn", s.Svn)
}

func TestPaths_CustomDir(t *testing.T) {
	s := New(fs.NewRealFS(), &fakeRunner{}, "/opt/svn/bin/svn", "shelves/local", nil)

	assert.Equal(t, filepath.Join("/wc", "shelves", "local"), s.ShelvesDir("/wc"))
	assert.Equal(t, "/opt/svn/bin/svn", s.Svn)
}

func TestWCRoot(t *testing.T) {
	s, runner, wcRoot := newTestStore(t)

	got, err := s.WCRoot(context.Background(), filepath.Join(wcRoot, "sub@dir"))
	require.NoError(t, err)
	assert.Equal(t, wcRoot, got)

	call := runner.find(t, "info")
	assert.Equal(t, "svn", call.Name)
	assert.True(t, call.has("--non-interactive"))
	assert.True(t, call.has("wc-root"))
	assert.Equal(t, filepath.Join(wcRoot, "sub@dir")+"@", call.Args[len(call.Args)-1])
}

func TestWCRoot_NotWorkingCopy(t *testing.T) {
	s, runner, _ := newTestStore(t)
	runner.responses["info"] = exec.CmdResult{
		ExitCode: 1,
		Stderr:   "svn: E155007: '/tmp/x' is not a working copy\n",
	}

	_, err := s.WCRoot(context.Background(), "/tmp/x")
	require.Error(t, err)
	assert.Equal(t, errors.ENotWorkingCopy, errors.GetCode(err))
}

func TestWCRoot_SvnMissing(t *testing.T) {
	s, runner, _ := newTestStore(t)
	runner.errs["info"] = &osexec.Error{Name: "svn", Err: osexec.ErrNotFound}

	_, err := s.WCRoot(context.Background(), "/tmp/x")
	require.Error(t, err)
	assert.Equal(t, errors.ESvnNotInstalled, errors.GetCode(err))
}

func TestSvn_FailureDetails(t *testing.T) {
	s, runner, wcRoot := newTestStore(t)
	runner.responses["diff"] = exec.CmdResult{
		ExitCode: 1,
		Stderr:   "svn: warning: W155010: skipped\nsvn: E200009: Could not display info for all targets\n",
	}

	_, err := s.svn(context.Background(), wcRoot, "diff", "--", "a.txt")
	require.Error(t, err)

	se, ok := errors.AsShelfError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ESvnFailed, se.Code)
	assert.Equal(t, "svn: E200009: Could not display info for all targets", se.Msg)
	assert.Equal(t, "1", se.Details["exit_code"])
	assert.Equal(t, "svn diff -- a.txt", se.Details["command"])
}

func TestLogEvent(t *testing.T) {
	s, _, wcRoot := newTestStore(t)
	s.Now = func() time.Time { return testNow }

	s.logEvent(wcRoot, "delete", "x", nil)

	data, err := os.ReadFile(s.EventsPath(wcRoot))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"event":"delete"`)
	assert.Contains(t, string(data), `"timestamp":"2026-03-01T12:00:00Z"`)
}
