package core

import (
	"path/filepath"
	"regexp"
	"strings"
)

// ReservedName is the working-copy administrative directory name.
// Targets ending in it are never passed to svn.
const ReservedName = ".svn"

// urlPattern matches "scheme://" prefixes (svn's notion of a URL target).
var urlPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// IsURL reports whether target is a repository URL rather than a local path.
func IsURL(target string) bool {
	return urlPattern.MatchString(target)
}

// SplitPegRevision splits "path@REV" into ("path", "REV").
// The peg is the text after the last '@' that is not followed by a path
// separator, so "dir@1/file" has no peg. A trailing bare '@' yields an
// empty peg ("name@@" is the escape for a literal '@' in the name).
func SplitPegRevision(target string) (path, peg string, hasPeg bool) {
	for i := len(target) - 1; i >= 0; i-- {
		switch target[i] {
		case '/', '\\':
			return target, "", false
		case '@':
			return target[:i], target[i+1:], true
		}
	}
	return target, "", false
}

// StripPegRevision returns target without its peg revision suffix.
func StripPegRevision(target string) string {
	path, _, _ := SplitPegRevision(target)
	return path
}

// IsReserved reports whether the target names the administrative directory
// itself (for example "wc/.svn" or ".svn/").
func IsReserved(target string) bool {
	clean := filepath.Clean(strings.TrimRight(target, `/\`))
	return filepath.Base(clean) == ReservedName
}
