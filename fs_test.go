package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeFS serves canned file contents in a fixed listing order.
type fakeFS struct {
	order []string          // listing order for Ls
	files map[string]string // path -> content
}

func (f *fakeFS) Ls(dir string, fn func(path string) error) error {
	for _, path := range f.order {
		if strings.HasPrefix(path, dir) {
			if err := fn(path); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *fakeFS) Open(path string) (io.ReadCloser, error) {
	content, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func TestPathScheme(t *testing.T) {
	assert.Equal(t, "hdfs", pathScheme("hdfs://nn:9000/tmp/logs"), "hdfs URIs should report their scheme")
	assert.Equal(t, "s3", pathScheme("s3://bucket/logs"), "s3 URIs should report their scheme")
	assert.Equal(t, "", pathScheme("/var/log/hadoop/userlogs"), "local paths have no scheme")
	assert.Equal(t, "", pathScheme("relative/path"), "relative paths have no scheme")
}

func TestMultiFSDispatch(t *testing.T) {
	local := &fakeFS{
		order: []string{"/logs/a"},
		files: map[string]string{"/logs/a": "local"},
	}
	remote := &fakeFS{
		order: []string{"hdfs://nn:9000/logs/b"},
		files: map[string]string{"hdfs://nn:9000/logs/b": "remote"},
	}

	fs := newMultiFS()
	fs.register("", local)
	fs.register("hdfs", remote)

	f, err := fs.Open("hdfs://nn:9000/logs/b")
	assert.NoError(t, err, "the hdfs backend should serve hdfs paths")
	content, _ := io.ReadAll(f)
	assert.Equal(t, "remote", string(content), "the hdfs backend's content should come back")

	var seen []string
	err = fs.Ls("/logs", func(path string) error {
		seen = append(seen, path)
		return nil
	})
	assert.NoError(t, err, "the local backend should serve scheme-less paths")
	assert.Equal(t, []string{"/logs/a"}, seen, "listing should hit the local backend")

	_, err = fs.Open("gs://bucket/whatever")
	assert.Error(t, err, "an unconfigured scheme should be an error")
}

func TestSplitHdfsPath(t *testing.T) {
	prefix, name := splitHdfsPath("hdfs://nn:9000/tmp/logs")
	assert.Equal(t, "hdfs://nn:9000", prefix, "the authority prefix should be split off")
	assert.Equal(t, "/tmp/logs", name, "the filesystem path should remain")

	prefix, name = splitHdfsPath("/tmp/logs")
	assert.Equal(t, "", prefix, "scheme-less paths have no prefix")
	assert.Equal(t, "/tmp/logs", name, "scheme-less paths pass through")
}

func TestSplitS3Path(t *testing.T) {
	scheme, bucket, key, err := splitS3Path("s3://my-bucket/logs/userlogs/syslog")
	assert.NoError(t, err, "a well-formed s3 path should split")
	assert.Equal(t, "s3", scheme, "the scheme should be preserved")
	assert.Equal(t, "my-bucket", bucket, "the bucket should be split off")
	assert.Equal(t, "logs/userlogs/syslog", key, "the key should be the rest")

	_, _, _, err = splitS3Path("/local/path")
	assert.Error(t, err, "a local path is not an s3 path")

	_, _, _, err = splitS3Path("s3:///no-bucket")
	assert.Error(t, err, "an empty bucket is an error")
}
