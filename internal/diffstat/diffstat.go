// Package diffstat renders diff statistics for shelf listings with an
// external diffstat tool.
package diffstat

import (
	"context"
	"io"

	"github.com/NielsdaWheelz/shelf/internal/exec"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// New returns a DiffstatFunc running tool on each patch file, or nil when
// tool is empty or not installed. Tool failures print nothing.
func New(runner exec.CommandRunner, tool string) shelf.DiffstatFunc {
	if tool == "" {
		return nil
	}
	path, err := runner.LookPath(tool)
	if err != nil {
		return nil
	}
	return func(ctx context.Context, patchPath string, w io.Writer) {
		res, err := runner.Run(ctx, path, []string{patchPath}, exec.RunOpts{})
		if err != nil || res.ExitCode != 0 {
			return
		}
		_, _ = io.WriteString(w, res.Stdout)
	}
}
