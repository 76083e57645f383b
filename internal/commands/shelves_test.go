package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

func TestShelves_RejectsArgs(t *testing.T) {
	store := &fakeStore{}
	client, _ := newTestClient(store)

	var stdout, stderr bytes.Buffer
	err := Shelves(context.Background(), client, testCwd, []string{"x"}, &stdout, &stderr)
	if errors.GetCode(err) != errors.EUsage {
		t.Fatalf("expected E_USAGE, got %v", err)
	}
	if len(store.calls) != 0 {
		t.Errorf("store was called: %v", store.calls)
	}
}

func TestShelves_AlwaysDiffstat(t *testing.T) {
	store := &fakeStore{records: map[string]shelf.Record{
		"a.patch": {ModifiedAt: time.Unix(10, 0), PatchPath: "/p/a.patch"},
		"b.patch": {ModifiedAt: time.Unix(20, 0), PatchPath: "/p/b.patch"},
	}}
	client, _ := newTestClient(store)
	var diffed []string
	client.Diffstat = recordingDiffstat(&diffed)

	var stdout, stderr bytes.Buffer
	if err := Shelves(context.Background(), client, testCwd, nil, &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diffed) != 2 {
		t.Errorf("diffstat runs = %v, want 2", diffed)
	}
}

func TestShelves_Empty(t *testing.T) {
	store := &fakeStore{}
	client, _ := newTestClient(store)

	var stdout, stderr bytes.Buffer
	if err := Shelves(context.Background(), client, testCwd, nil, &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestShelves_NoDiffstatCollaborator(t *testing.T) {
	store := &fakeStore{records: map[string]shelf.Record{
		"a.patch": {ModifiedAt: time.Unix(100_000, 0), Message: "m"},
	}}
	client, _ := newTestClient(store)

	var stdout, stderr bytes.Buffer
	if err := Shelves(context.Background(), client, testCwd, nil, &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stdout.String(); got[len(got)-3:] != " m\n" {
		t.Errorf("stdout = %q", got)
	}
}
