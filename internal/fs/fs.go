// Package fs provides filesystem utilities for shelf.
package fs

import (
	"bytes"
	"io"
	iofs "io/fs"
	"os"

	"github.com/natefinch/atomic"
)

// FS is the filesystem surface used by shelf packages, stubbable in tests.
type FS interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]os.DirEntry, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Stat(path string) (iofs.FileInfo, error)
	Remove(path string) error
	CreateTemp(dir, pattern string) (string, io.WriteCloser, error)
}

// RealFS is the os-backed FS.
type RealFS struct{}

// NewRealFS returns an FS backed by the real filesystem.
func NewRealFS() *RealFS {
	return &RealFS{}
}

func (RealFS) ReadFile(path string) ([]byte, error)         { return os.ReadFile(path) }
func (RealFS) ReadDir(path string) ([]os.DirEntry, error)   { return os.ReadDir(path) }
func (RealFS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }
func (RealFS) Stat(path string) (iofs.FileInfo, error)      { return os.Stat(path) }
func (RealFS) Remove(path string) error                     { return os.Remove(path) }

// WriteFile writes data atomically (temp file in the same directory, then rename).
// Readers never observe a partially written file.
func (RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	// atomic.WriteFile does not apply perm to newly created files
	return os.Chmod(path, perm)
}

// CreateTemp creates a new temp file and returns its path and an open handle.
func (RealFS) CreateTemp(dir, pattern string) (string, io.WriteCloser, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", nil, err
	}
	return f.Name(), f, nil
}
