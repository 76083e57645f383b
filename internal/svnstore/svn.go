package svnstore

import (
	"context"
	"strconv"
	"strings"

	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/exec"
)

// maxStderrDetail bounds the svn stderr copied into error details.
const maxStderrDetail = 2048

// svn runs one svn subcommand from dir. The returned result is valid even
// when err reports a non-zero exit, so callers can inspect the output.
func (s *Store) svn(ctx context.Context, dir string, args ...string) (exec.CmdResult, error) {
	full := append([]string{"--non-interactive"}, args...)
	res, err := s.Runner.Run(ctx, s.Svn, full, exec.RunOpts{Dir: dir})
	if err != nil {
		if exec.IsNotFound(err) {
			return res, errors.WrapWithDetails(errors.ESvnNotInstalled, "svn not found", err,
				map[string]string{"command": s.Svn})
		}
		return res, errors.WrapWithDetails(errors.ESvnFailed, "failed to run svn "+args[0], err,
			map[string]string{"command": commandLine(s.Svn, args)})
	}
	if res.ExitCode != 0 {
		return res, errors.NewWithDetails(errors.ESvnFailed, svnMessage(args[0], res.Stderr),
			map[string]string{
				"command":   commandLine(s.Svn, args),
				"exit_code": strconv.Itoa(res.ExitCode),
				"stderr":    truncate(strings.TrimSpace(res.Stderr), maxStderrDetail),
			})
	}
	return res, nil
}

// svnMessage picks the first svn error line ("svn: E155007: ...") as the
// message, falling back to a generic one.
func svnMessage(sub, stderr string) string {
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "svn: E") {
			return line
		}
	}
	return "svn " + sub + " failed"
}

func commandLine(name string, args []string) string {
	return name + " " + strings.Join(args, " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// outputLines returns the non-empty lines of svn output.
func outputLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// pegSafe escapes a path containing '@' so svn does not read a peg revision.
func pegSafe(path string) string {
	if strings.Contains(path, "@") {
		return path + "@"
	}
	return path
}
