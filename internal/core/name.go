// Package core provides foundational helpers for shelf names and targets.
package core

import (
	"strings"
	"unicode"

	"github.com/NielsdaWheelz/shelf/internal/errors"
)

// NameMaxLen bounds shelf names so the patch file name stays portable.
const NameMaxLen = 200

// ValidateName checks that a shelf name can be used as a file name in the
// shelves directory. Returns nil if valid, or E_INVALID_NAME with details.
//
// Validation rules:
//   - Non-empty, at most 200 bytes
//   - Not "." or ".."
//   - No path separators and no control characters
//   - Must not start with '-' (would be read as a flag by svn)
func ValidateName(name string) error {
	details := map[string]string{"name": name}

	switch {
	case name == "":
		return errors.NewWithDetails(errors.EInvalidName, "shelf name must not be empty", details)
	case len(name) > NameMaxLen:
		return errors.NewWithDetails(errors.EInvalidName, "shelf name must be at most 200 bytes", details)
	case name == "." || name == "..":
		return errors.NewWithDetails(errors.EInvalidName, "shelf name must not be '.' or '..'", details)
	case strings.HasPrefix(name, "-"):
		return errors.NewWithDetails(errors.EInvalidName, "shelf name must not start with '-'", details)
	case strings.ContainsAny(name, `/\`):
		return errors.NewWithDetails(errors.EInvalidName, "shelf name must not contain path separators", details)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return errors.NewWithDetails(errors.EInvalidName, "shelf name must not contain control characters", details)
		}
	}
	return nil
}
