package main

import (
	"fmt"
	"io"
	"strings"
)

// logFS gives access to stored task logs, wherever they ended up: local
// disk, HDFS, or S3.
type logFS interface {
	// Ls calls fn once for every file under dir, in listing order.
	// Directories themselves are not reported. If fn returns an error
	// the walk stops and Ls returns it.
	Ls(dir string, fn func(path string) error) error

	// Open returns the contents of the log at path. The caller is
	// responsible for closing it.
	Open(path string) (io.ReadCloser, error)
}

// multiFS routes each path to a backend based on its URI scheme.
// Scheme-less paths go to the "" backend (local disk).
type multiFS struct {
	backends map[string]logFS
}

func newMultiFS() *multiFS {
	return &multiFS{backends: make(map[string]logFS)}
}

func (m *multiFS) register(scheme string, fs logFS) {
	m.backends[scheme] = fs
}

func (m *multiFS) backendFor(path string) (logFS, error) {
	fs, ok := m.backends[pathScheme(path)]
	if !ok {
		return nil, fmt.Errorf("no filesystem configured for %s", path)
	}
	return fs, nil
}

func (m *multiFS) Ls(dir string, fn func(path string) error) error {
	fs, err := m.backendFor(dir)
	if err != nil {
		return err
	}
	return fs.Ls(dir, fn)
}

func (m *multiFS) Open(path string) (io.ReadCloser, error) {
	fs, err := m.backendFor(path)
	if err != nil {
		return nil, err
	}
	return fs.Open(path)
}

func pathScheme(path string) string {
	i := strings.Index(path, "://")
	if i <= 0 {
		return ""
	}
	return path[:i]
}
