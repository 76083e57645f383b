package commands

import (
	"context"
	"io"
	"time"

	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// fakeStore is an in-memory shelf.Store that records every call.
type fakeStore struct {
	records map[string]shelf.Record

	listErr   error
	createErr error
	deleteErr error
	applyErr  error

	calls   []string
	created []shelf.CreateRequest
	applied []shelf.ApplyRequest
	deleted []deleteCall

	// notifyOnMutate makes the store emit one notification per mutation.
	notifyOnMutate bool
}

type deleteCall struct {
	Name   string
	Root   string
	DryRun bool
}

var _ shelf.Store = (*fakeStore)(nil)

func (s *fakeStore) List(_ context.Context, root string) (map[string]shelf.Record, error) {
	s.calls = append(s.calls, "list")
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.records, nil
}

func (s *fakeStore) Create(_ context.Context, req shelf.CreateRequest) error {
	s.calls = append(s.calls, "create")
	s.created = append(s.created, req)
	if s.notifyOnMutate {
		req.Notify.Emit(shelf.Notification{Action: shelf.ActionReverted, Path: req.Targets[0]})
	}
	return s.createErr
}

func (s *fakeStore) Delete(_ context.Context, name, root string, dryRun bool) error {
	s.calls = append(s.calls, "delete")
	s.deleted = append(s.deleted, deleteCall{Name: name, Root: root, DryRun: dryRun})
	return s.deleteErr
}

func (s *fakeStore) Apply(_ context.Context, req shelf.ApplyRequest) error {
	s.calls = append(s.calls, "apply")
	s.applied = append(s.applied, req)
	if s.notifyOnMutate {
		req.Notify.Emit(shelf.Notification{Action: shelf.ActionPatched, Path: "file.txt"})
	}
	return s.applyErr
}

// fakeMessages is a LogMessageSource handing out a fixed message.
type fakeMessages struct {
	text       string
	acquireErr error

	acquired   int
	released   []error
	releaseErr error // returned from Release when non-nil
}

type fakeMessage struct {
	src *fakeMessages
}

func (m *fakeMessages) Acquire(context.Context) (shelf.LogMessage, error) {
	m.acquired++
	if m.acquireErr != nil {
		return nil, m.acquireErr
	}
	return fakeMessage{src: m}, nil
}

func (m fakeMessage) Text() string { return m.src.text }

func (m fakeMessage) Release(err error) error {
	m.src.released = append(m.src.released, err)
	if m.src.releaseErr != nil {
		return m.src.releaseErr
	}
	return err
}

// newTestClient returns a client over store with a fixed clock and a
// notifier that counts notifications.
func newTestClient(store *fakeStore) (*shelf.Client, *int) {
	count := 0
	client := &shelf.Client{
		Store:  store,
		Notify: func(shelf.Notification) { count++ },
		Now:    func() time.Time { return time.Unix(100_000, 0) },
	}
	return client, &count
}

// recordingDiffstat returns a DiffstatFunc that writes a marker per patch.
func recordingDiffstat(paths *[]string) shelf.DiffstatFunc {
	return func(_ context.Context, patchPath string, w io.Writer) {
		*paths = append(*paths, patchPath)
		_, _ = io.WriteString(w, " 1 file changed\n")
	}
}
