package main

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// localFS reads task logs straight off the local disk, e.g. the
// userlogs/ directory of a single-node cluster.
type localFS struct{}

func (localFS) Ls(dir string, fn func(path string) error) error {
	return filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		return fn(filepath.ToSlash(path))
	})
}

func (localFS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
