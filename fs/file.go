// Package fs provides filesystem helpers for report output and name lists.
package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/botica"
)

// Ensure File can be used as a plain writer.
var _ io.Writer = (*File)(nil)

// File is an output file with atomic update semantics.
// Content is written to "<path>.tmp" and moved over path on Commit, so an
// interrupted run never leaves a partial report behind.
type File struct {
	path string
	f    *os.File
}

// Create opens the staging file for path, creating parent directories.
func Create(path string) (*File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(tempPath(path))
	if err != nil {
		return nil, err
	}
	return &File{path: path, f: f}, nil
}

func tempPath(path string) string {
	return path + ".tmp"
}

// Path returns the final destination of the file.
func (f *File) Path() string {
	return f.path
}

// Write appends to the staging file.
func (f *File) Write(p []byte) (int, error) {
	return f.f.Write(p)
}

// Commit closes the staging file and renames it over the destination.
func (f *File) Commit() error {
	if err := f.f.Close(); err != nil {
		_ = os.Remove(tempPath(f.path))
		return err
	}
	return os.Rename(tempPath(f.path), f.path)
}

// Abort closes and removes the staging file. The destination is untouched.
func (f *File) Abort() error {
	_ = f.f.Close()
	if err := os.Remove(tempPath(f.path)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ReadReferenceNames loads the reference name list at path.
// A missing file is reported as ENOTFOUND.
func ReadReferenceNames(path string) (*botica.ReferenceNameSet, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, botica.Errorf(botica.ENOTFOUND, "name list %q not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return botica.ReadReferenceNames(f)
}
