package main

import (
	"io"
	"path"
	"strings"

	"github.com/colinmarc/hdfs"
)

// hdfsFS reads task logs out of HDFS, which is where YARN log
// aggregation puts them (yarn.nodemanager.remote-app-log-dir). A fresh
// connection to the namenode is dialed per call and torn down with it.
type hdfsFS struct {
	namenodeAddress string
}

func (h *hdfsFS) Ls(dir string, fn func(path string) error) error {
	client, err := hdfs.New(h.namenodeAddress)
	if err != nil {
		return err
	}
	defer client.Close()

	prefix, root := splitHdfsPath(dir)
	return walkHdfs(client, prefix, root, fn)
}

func walkHdfs(client *hdfs.Client, prefix, dir string, fn func(path string) error) error {
	infos, err := client.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, info := range infos {
		p := path.Join(dir, info.Name())
		if info.IsDir() {
			if err := walkHdfs(client, prefix, p, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(prefix + p); err != nil {
			return err
		}
	}

	return nil
}

func (h *hdfsFS) Open(p string) (io.ReadCloser, error) {
	client, err := hdfs.New(h.namenodeAddress)
	if err != nil {
		return nil, err
	}

	_, name := splitHdfsPath(p)
	file, err := client.Open(name)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &hdfsFile{FileReader: file, client: client}, nil
}

// hdfsFile keeps the namenode connection alive until the reader is
// closed.
type hdfsFile struct {
	*hdfs.FileReader
	client *hdfs.Client
}

func (f *hdfsFile) Close() error {
	err := f.FileReader.Close()
	if cerr := f.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// splitHdfsPath splits "hdfs://nn:9000/tmp/logs" into its authority
// prefix and the filesystem path. Scheme-less paths pass through.
func splitHdfsPath(p string) (prefix, name string) {
	rest, ok := strings.CutPrefix(p, "hdfs://")
	if !ok {
		return "", p
	}
	i := strings.Index(rest, "/")
	if i < 0 {
		return p, "/"
	}
	return p[:len("hdfs://")+i], rest[i:]
}
