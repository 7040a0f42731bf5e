package main

import (
	"fmt"
	"io"
)

// errorRecord is one corroborated task failure. HadoopError is always
// set; everything else depends on what the logs had to offer.
type errorRecord struct {
	TaskError   *taskError   `json:"taskError,omitempty"`
	HadoopError *hadoopError `json:"hadoopError"`
	Split       *splitInfo   `json:"split,omitempty"`

	AttemptID   string `json:"attemptId,omitempty"`
	ContainerID string `json:"containerId,omitempty"`
	TaskID      string `json:"taskId,omitempty"`
	JobID       string `json:"jobId,omitempty"`
}

// interpretation is the result of one pass over a job's task logs. Errors
// is in discovery order; Partial is true only when scanning stopped early
// at the first error.
type interpretation struct {
	Errors  []*errorRecord `json:"errors,omitempty"`
	Partial bool           `json:"partial,omitempty"`
}

// interpretTaskLogs looks for errors in the given log matches, in order.
//
// If partial is true (the usual case), scanning stops at the first match
// that produces an error record; exhaustively reading every task's logs
// on a big job is expensive and one explanation is usually all anyone
// wants. With partial false, every match is examined and the full list
// comes back.
//
// If onFile is non-nil it's called with each file's path just before the
// file is read.
//
// An unreadable file is a hard failure; sorting that out belongs to the
// filesystem, not here.
func interpretTaskLogs(fs logFS, matches []*logMatch, partial bool, onFile func(path string)) (*interpretation, error) {
	result := &interpretation{}
	syslogsParsed := make(map[string]bool)

	for _, match := range matches {
		// Is this match for a stderr file, or a syslog?
		var stderrPath, syslogPath string
		if match.syslog != nil {
			stderrPath = match.path
			syslogPath = match.syslog.path
		} else {
			syslogPath = match.path
		}

		var taskErr *taskError
		if stderrPath != "" {
			if onFile != nil {
				onFile(stderrPath)
			}
			var err error
			taskErr, err = scanFile(fs, stderrPath, parseTaskStderr)
			if err != nil {
				return nil, err
			}
			if taskErr == nil {
				continue // the syslog gets its own turn later
			}
			taskErr.Path = stderrPath
		}

		// Already parsed in conjunction with an earlier task error.
		if syslogsParsed[syslogPath] {
			continue
		}

		if onFile != nil {
			onFile(syslogPath)
		}
		info, err := scanFile(fs, syslogPath, parseTaskSyslog)
		if err != nil {
			return nil, err
		}
		syslogsParsed[syslogPath] = true

		if info.hadoopError == nil {
			// No entry in the Hadoop syslog, probably just noise.
			continue
		}
		info.hadoopError.Path = syslogPath

		errRec := &errorRecord{
			TaskError:   taskErr,
			HadoopError: info.hadoopError,
			Split:       info.split,
			AttemptID:   match.attemptID,
			ContainerID: match.containerID,
		}
		addImpliedIDs(errRec)
		result.Errors = append(result.Errors, errRec)

		if partial {
			result.Partial = true
			break
		}
	}

	return result, nil
}

// scanFile opens path on fs and hands it to parse, wrapping any failure
// with the path it happened on.
func scanFile[T any](fs logFS, path string, parse func(r io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := fs.Open(path)
	if err != nil {
		return zero, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	out, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}
