package shelf

import (
	"context"
	"io"
	"time"

	"github.com/NielsdaWheelz/shelf/internal/errors"
)

// Depth limits how far below each target a shelve operation reaches.
type Depth string

const (
	DepthUnknown    Depth = ""
	DepthEmpty      Depth = "empty"
	DepthFiles      Depth = "files"
	DepthImmediates Depth = "immediates"
	DepthInfinity   Depth = "infinity"
)

// ParseDepth parses a --depth value. The empty string is DepthUnknown.
func ParseDepth(s string) (Depth, error) {
	switch d := Depth(s); d {
	case DepthUnknown, DepthEmpty, DepthFiles, DepthImmediates, DepthInfinity:
		return d, nil
	}
	return DepthUnknown, errors.NewWithDetails(errors.EUsage,
		"invalid depth '"+s+"'; expected empty, files, immediates, or infinity",
		map[string]string{"depth": s})
}

// OrInfinity resolves an unset depth to DepthInfinity.
func (d Depth) OrInfinity() Depth {
	if d == DepthUnknown {
		return DepthInfinity
	}
	return d
}

// Notification actions emitted by stores.
const (
	ActionReverted = "reverted"
	ActionPatched  = "patched"
)

// Notification reports progress of a mutating store operation.
type Notification struct {
	Action string
	Path   string
	Text   string // raw tool output line, when available
}

// NotifyFunc receives progress notifications. A nil NotifyFunc disables them;
// stores must behave identically either way apart from output.
type NotifyFunc func(Notification)

// Emit calls f if it is non-nil.
func (f NotifyFunc) Emit(n Notification) {
	if f != nil {
		f(n)
	}
}

// CreateRequest holds the inputs of Store.Create.
type CreateRequest struct {
	Name        string
	Targets     []string // local paths, peg revisions already removed
	Depth       Depth
	Changelists []string
	KeepLocal   bool
	DryRun      bool
	Message     string
	Notify      NotifyFunc
}

// ApplyRequest holds the inputs of Store.Apply.
type ApplyRequest struct {
	Name      string // bare shelf name
	Root      string
	KeepLocal bool
	DryRun    bool
	Notify    NotifyFunc
}

// Store is the change-management subsystem that owns shelved changes.
// Its errors are surfaced to the user verbatim.
type Store interface {
	// List returns every shelved change under root, keyed by store name.
	// Iteration order of the map carries no meaning.
	List(ctx context.Context, root string) (map[string]Record, error)

	// Create captures the local changes under the request's targets.
	Create(ctx context.Context, req CreateRequest) error

	// Delete removes the named shelf.
	Delete(ctx context.Context, name, root string, dryRun bool) error

	// Apply reapplies the named shelf to the working copy at root.
	Apply(ctx context.Context, req ApplyRequest) error
}

// LogMessage is a log message acquired for a single shelve call.
// Release must be called exactly once after the store call, with that
// call's error; it returns the error to report (possibly annotated).
type LogMessage interface {
	Text() string
	Release(err error) error
}

// LogMessageSource acquires log messages for new shelves.
type LogMessageSource interface {
	Acquire(ctx context.Context) (LogMessage, error)
}

// DiffstatFunc writes a diff-statistics summary of the patch at path to w.
// Failures are not reported.
type DiffstatFunc func(ctx context.Context, patchPath string, w io.Writer)

// Client bundles the collaborators a command invocation works with.
type Client struct {
	Store Store

	// Notify receives store progress; nil disables notifications.
	Notify NotifyFunc

	// LogMessages supplies shelve messages; nil means no message.
	LogMessages LogMessageSource

	// Diffstat renders diff statistics in listings; nil disables them.
	Diffstat DiffstatFunc

	// Now is the clock used for listing ages; nil means time.Now.
	Now func() time.Time
}

// Quiet returns a copy of c with notifications disabled.
func (c *Client) Quiet() *Client {
	cp := *c
	cp.Notify = nil
	return &cp
}

// Clock returns c.Now or time.Now.
func (c *Client) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
