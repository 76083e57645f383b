package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/NielsdaWheelz/shelf/internal/core"
	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/fs"
)

// ReadTargetsFile reads a --targets file: one target per line, blank lines
// ignored. The file must be valid UTF-8.
func ReadTargetsFile(fsys fs.FS, path string) ([]string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithDetails(errors.EUsage, "failed to read targets file", err,
			map[string]string{"path": path})
	}
	if !utf8.Valid(data) {
		return nil, errors.NewWithDetails(errors.EInvalidEncoding, "targets file is not valid UTF-8",
			map[string]string{"path": path})
	}

	var targets []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		targets = append(targets, line)
	}
	return targets, nil
}

// takeName consumes the shelf name from the front of args.
func takeName(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, errors.New(errors.EUsage, "shelf name is required")
	}
	name := args[0]
	if !utf8.ValidString(name) {
		return "", nil, errors.NewWithDetails(errors.EInvalidEncoding, "shelf name is not valid UTF-8",
			map[string]string{"name": strings.ToValidUTF8(name, "?")})
	}
	return name, args[1:], nil
}

// dropReserved removes arguments naming the administrative directory,
// printing a warning for each one skipped.
func dropReserved(args []string, stderr io.Writer) []string {
	kept := make([]string, 0, len(args))
	for _, a := range args {
		if core.IsReserved(core.StripPegRevision(a)) {
			_, _ = fmt.Fprintf(stderr, "Skipping argument: '%s' ends in a reserved name\n", a)
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

// localTargets turns shelve target arguments into absolute local paths.
// URL targets are rejected, peg revisions are removed and reserved names are
// skipped with a warning.
func localTargets(cwd string, args []string, stderr io.Writer) ([]string, error) {
	for _, a := range args {
		if !utf8.ValidString(a) {
			return nil, errors.NewWithDetails(errors.EInvalidEncoding, "target is not valid UTF-8",
				map[string]string{"target": strings.ToValidUTF8(a, "?")})
		}
		if core.IsURL(a) {
			return nil, errors.NewWithDetails(errors.EInvalidTarget,
				fmt.Sprintf("'%s' is not a local path", a),
				map[string]string{"target": a})
		}
	}

	kept := dropReserved(args, stderr)
	targets := make([]string, 0, len(kept))
	for _, a := range kept {
		path := core.StripPegRevision(a)
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		targets = append(targets, filepath.Clean(path))
	}
	return targets, nil
}
