// Package exec runs external commands (svn, diffstat, editors) for shelf.
// Commands never go through a shell.
package exec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	osexec "os/exec"
)

// RunOpts controls a single command execution.
type RunOpts struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env holds extra KEY=VALUE entries appended to the inherited environment.
	Env []string

	// Stdin is connected to the child's stdin when non-nil.
	Stdin io.Reader

	// Interactive connects the child directly to the terminal (editors).
	// Stdout and Stderr are not captured in this mode.
	Interactive bool
}

// CmdResult holds the outcome of a command that started successfully.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes external commands.
// Run returns an error only when the command could not be started or was
// interrupted; a non-zero exit is reported through CmdResult.ExitCode.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)
	LookPath(file string) (string, error)
}

// RealRunner is the os/exec backed CommandRunner.
type RealRunner struct{}

// NewRealRunner returns a CommandRunner that executes real processes.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run implements CommandRunner.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	var stdout, stderr bytes.Buffer
	if opts.Interactive {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdin = opts.Stdin
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	result := CmdResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		return result, err
	}
	return result, nil
}

// LookPath implements CommandRunner.
func (r *RealRunner) LookPath(file string) (string, error) {
	return osexec.LookPath(file)
}

// IsNotFound reports whether err means the executable could not be found.
func IsNotFound(err error) bool {
	return errors.Is(err, osexec.ErrNotFound)
}
