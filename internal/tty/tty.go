// Package tty provides TTY detection helpers for shelf prompts.
package tty

import "os"

// IsTTY returns true if the given file is a TTY.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// IsInteractive returns true if stdin and stdout are both TTYs.
// Log message prompts and editors are only offered in that case.
func IsInteractive() bool {
	return IsTTY(os.Stdin) && IsTTY(os.Stdout)
}
