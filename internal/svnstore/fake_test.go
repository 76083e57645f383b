package svnstore

import (
	"context"
	osexec "os/exec"
	"strings"
	"testing"
	"time"

	"github.com/NielsdaWheelz/shelf/internal/exec"
	"github.com/NielsdaWheelz/shelf/internal/fs"
)

// fakeCall captures one invocation of fakeRunner.
type fakeCall struct {
	Name string
	Args []string
	Dir  string
}

// sub returns the svn subcommand of the call.
func (c fakeCall) sub() string {
	for _, a := range c.Args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

func (c fakeCall) has(arg string) bool {
	for _, a := range c.Args {
		if a == arg {
			return true
		}
	}
	return false
}

// fakeRunner answers svn subcommands from a table keyed by subcommand.
type fakeRunner struct {
	wcRoot    string
	responses map[string]exec.CmdResult
	errs      map[string]error
	calls     []fakeCall
}

var _ exec.CommandRunner = (*fakeRunner)(nil)

func (r *fakeRunner) Run(_ context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	call := fakeCall{Name: name, Args: append([]string(nil), args...), Dir: opts.Dir}
	r.calls = append(r.calls, call)

	sub := call.sub()
	if err := r.errs[sub]; err != nil {
		return exec.CmdResult{}, err
	}
	if res, ok := r.responses[sub]; ok {
		return res, nil
	}
	if sub == "info" {
		return exec.CmdResult{Stdout: r.wcRoot + "\n"}, nil
	}
	return exec.CmdResult{}, nil
}

func (r *fakeRunner) LookPath(file string) (string, error) {
	return "", osexec.ErrNotFound
}

// subs returns the subcommands invoked, in order.
func (r *fakeRunner) subs() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.sub()
	}
	return out
}

// find returns the first call with the given subcommand.
func (r *fakeRunner) find(t *testing.T, sub string) fakeCall {
	t.Helper()
	for _, c := range r.calls {
		if c.sub() == sub {
			return c
		}
	}
	t.Fatalf("no svn %s call; calls: %v", sub, r.subs())
	return fakeCall{}
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestStore returns a Store over a temp wc root with a fake runner.
func newTestStore(t *testing.T) (*Store, *fakeRunner, string) {
	t.Helper()
	wcRoot := t.TempDir()
	runner := &fakeRunner{
		wcRoot:    wcRoot,
		responses: map[string]exec.CmdResult{},
		errs:      map[string]error{},
	}
	s := New(fs.NewRealFS(), runner, "", "", func() time.Time { return testNow })
	return s, runner, wcRoot
}

const sampleDiff = `Index: a.txt
===================================================================
diff --git a/a.txt b/a.txt
--- a/a.txt	(revision 3)
+++ b/a.txt	(working copy)
@@ -1 +1 @@
-old
+new
`

const addedFileDiff = `Index: newfile.go
===================================================================
diff --git a/newfile.go b/newfile.go
new file mode 100644
--- a/newfile.go	(nonexistent)
+++ b/newfile.go	(working copy)
@@ -0,0 +1 @@
+package main
`
