// Package events provides the shelf activity log.
// Events are stored in an append-only JSONL file next to the patch files.
package events

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is the current events.jsonl schema version.
const SchemaVersion = "1"

// Event kinds.
const (
	KindShelve   = "shelve"
	KindUnshelve = "unshelve"
	KindDelete   = "delete"
)

// Event represents a single event in events.jsonl.
// This is the public contract for the events file format.
type Event struct {
	SchemaVersion string         `json:"schema_version"`
	ID            string         `json:"id"`        // random UUID
	Timestamp     string         `json:"timestamp"` // RFC3339
	WCRoot        string         `json:"wc_root"`
	Shelf         string         `json:"shelf"`
	Event         string         `json:"event"` // "shelve", "unshelve", "delete"
	Data          map[string]any `json:"data,omitempty"`
}

// New returns an event of the given kind stamped with a fresh id and now.
func New(kind, shelf, wcRoot string, now time.Time, data map[string]any) Event {
	return Event{
		SchemaVersion: SchemaVersion,
		ID:            uuid.NewString(),
		Timestamp:     now.UTC().Format(time.RFC3339),
		WCRoot:        wcRoot,
		Shelf:         shelf,
		Event:         kind,
		Data:          data,
	}
}

// AppendEvent appends a single event to the events.jsonl file.
// The file is created lazily if it doesn't exist.
// Each event is written as a single JSON line followed by newline.
//
// Best-effort: errors are returned but callers should typically ignore them
// and continue with the main operation.
func AppendEvent(path string, e Event) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = f.Write(data)
	return err
}

// ShelveData returns the data map for a shelve event.
func ShelveData(targets []string, depth string, changelists []string, keepLocal bool, sizeBytes int64) map[string]any {
	data := map[string]any{
		"targets":    targets,
		"depth":      depth,
		"keep_local": keepLocal,
		"size_bytes": sizeBytes,
	}
	if len(changelists) > 0 {
		data["changelists"] = changelists
	}
	return data
}

// UnshelveData returns the data map for an unshelve event.
// removed reports whether the patch file was deleted after applying.
func UnshelveData(keepLocal, removed bool) map[string]any {
	return map[string]any{
		"keep_local": keepLocal,
		"removed":    removed,
	}
}
