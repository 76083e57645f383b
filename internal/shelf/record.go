// Package shelf holds the shelved-change model and the read-side logic shared
// by the shelve, unshelve, and shelves commands: ordered listing and
// youngest-shelf resolution over a Store.
package shelf

import (
	"strings"
	"time"
)

// PatchSuffix is the file extension of the on-disk patch artifact. Stores may
// key their records by file name; callers expect bare shelf names.
const PatchSuffix = ".patch"

// MessageDisplayLen is the number of runes of a shelf message shown in listings.
const MessageDisplayLen = 50

// Record describes one shelved change. Records are read-only snapshots
// produced by a Store for a single command invocation.
type Record struct {
	// Name is the store key for this shelf (possibly with PatchSuffix).
	Name string

	// PatchPath is the absolute path to the patch artifact.
	PatchPath string

	// ModifiedAt is the patch artifact's last modification time; the sole
	// ordering key for listings.
	ModifiedAt time.Time

	// SizeBytes is the size of the patch artifact.
	SizeBytes int64

	// Message is the free-text description recorded at shelve time.
	Message string
}

// BareName strips PatchSuffix from a store key. Keys without the suffix are
// returned unchanged.
func BareName(key string) string {
	return strings.TrimSuffix(key, PatchSuffix)
}

// DisplayMessage returns the first line of msg, truncated to MessageDisplayLen runes.
func DisplayMessage(msg string) string {
	line, _, _ := strings.Cut(msg, "\n")
	line = strings.TrimRight(line, "\r")
	runes := []rune(line)
	if len(runes) <= MessageDisplayLen {
		return line
	}
	return string(runes[:MessageDisplayLen])
}

// AgeMinutes returns whole minutes elapsed between modifiedAt and now.
// A modification time in the future yields 0.
func AgeMinutes(modifiedAt, now time.Time) int {
	d := now.Sub(modifiedAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
