package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/fs"
)

func TestReadTargetsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "targets.txt")
	content := "a.txt\r\n\nsub dir/b.txt\n   \nc.txt"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadTargetsFile(fs.NewRealFS(), path)
	if err != nil {
		t.Fatalf("ReadTargetsFile() error = %v", err)
	}
	want := []string{"a.txt", "sub dir/b.txt", "c.txt"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTargetsFile_Missing(t *testing.T) {
	_, err := ReadTargetsFile(fs.NewRealFS(), filepath.Join(t.TempDir(), "nope"))
	if errors.GetCode(err) != errors.EUsage {
		t.Fatalf("expected E_USAGE, got %v", err)
	}
}

func TestReadTargetsFile_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.txt")
	if err := os.WriteFile(path, []byte("ok\n\xfe\xff\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadTargetsFile(fs.NewRealFS(), path)
	if errors.GetCode(err) != errors.EInvalidEncoding {
		t.Fatalf("expected E_INVALID_ENCODING, got %v", err)
	}
}

func TestLocalTargets(t *testing.T) {
	var stderr bytes.Buffer
	got, err := localTargets("/wc", []string{"a", "b/../c", "/abs@12", "dir/.svn", "x@"}, &stderr)
	if err != nil {
		t.Fatalf("localTargets() error = %v", err)
	}

	want := []string{"/wc/a", "/wc/c", "/abs", "/wc/x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
	if stderr.String() != "Skipping argument: 'dir/.svn' ends in a reserved name\n" {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestLocalTargets_URL(t *testing.T) {
	for _, u := range []string{"svn://host/repo", "file:///var/svn/repo", "svn+ssh://h/r@5"} {
		var stderr bytes.Buffer
		_, err := localTargets("/wc", []string{"ok", u}, &stderr)
		if errors.GetCode(err) != errors.EInvalidTarget {
			t.Errorf("%s: expected E_INVALID_TARGET, got %v", u, err)
		}
	}
}

func TestTakeName(t *testing.T) {
	name, rest, err := takeName([]string{"n", "a", "b"})
	if err != nil {
		t.Fatalf("takeName() error = %v", err)
	}
	if name != "n" {
		t.Errorf("name = %q", name)
	}
	if diff := cmp.Diff([]string{"a", "b"}, rest); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := takeName(nil); errors.GetCode(err) != errors.EUsage {
		t.Errorf("empty args: expected E_USAGE, got %v", err)
	}
}
