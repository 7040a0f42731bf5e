package main

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// logRecord is one log4j entry from a syslog, possibly spanning several
// lines. StartLine is the 0-indexed offset of the record's first line in
// the file; NumLines is how many lines it takes up.
type logRecord struct {
	Timestamp string
	Level     string
	Thread    string
	Logger    string
	Message   string
	StartLine int
	NumLines  int
}

// A log4j record header: timestamp, level, optional [thread], logger, and
// the start of the message. Matches both the short form
// ("15/12/11 13:26:07 INFO mapreduce.Job: ...") and the ISO form
// ("2015-08-22 00:46:18,411 WARN [main] org.apache.hadoop...: ...").
var log4jHeaderRegexp = regexp.MustCompile(
	`^\s*(\d{2,4}[-/]\d{2}[-/]\d{2,4}[ T]\d{2}:\d{2}:\d{2}(?:[.,]\d{3})?)` +
		`\s+([A-Z]+)` +
		`(?:\s+\[([^\]]*)\])?` +
		`\s+(\S+?)` +
		`(?:: | - )(.*)$`)

// log4jScanner groups raw syslog lines into discrete log4j records. A
// header line starts a record; anything else continues the previous one.
// Junk before the first header becomes a record with no metadata, so a
// file that doesn't use log4j at all still yields its content.
type log4jScanner struct {
	s       *bufio.Scanner
	rec     *logRecord // record ready for the caller
	pending *logRecord // record still accumulating lines
	lineNum int
	done    bool
}

func newLog4jScanner(r io.Reader) *log4jScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &log4jScanner{s: s, lineNum: -1}
}

// Scan advances to the next record, reading only as many lines as it
// takes to terminate one. It returns false at end of input or on error.
func (ls *log4jScanner) Scan() bool {
	if ls.done {
		return false
	}

	for ls.s.Scan() {
		ls.lineNum++
		line := strings.TrimRight(ls.s.Text(), "\r\n")

		if m := log4jHeaderRegexp.FindStringSubmatch(line); m != nil {
			next := &logRecord{
				Timestamp: m[1],
				Level:     m[2],
				Thread:    m[3],
				Logger:    m[4],
				Message:   m[5],
				StartLine: ls.lineNum,
				NumLines:  1,
			}
			if ls.pending != nil {
				ls.rec = ls.pending
				ls.pending = next
				return true
			}
			ls.pending = next
			continue
		}

		if ls.pending == nil {
			ls.pending = &logRecord{
				Message:   line,
				StartLine: ls.lineNum,
				NumLines:  1,
			}
			continue
		}
		ls.pending.Message += "\n" + line
		ls.pending.NumLines++
	}

	ls.done = true
	if ls.s.Err() == nil && ls.pending != nil {
		ls.rec = ls.pending
		ls.pending = nil
		return true
	}
	return false
}

// Record returns the record found by the last call to Scan.
func (ls *log4jScanner) Record() *logRecord {
	return ls.rec
}

func (ls *log4jScanner) Err() error {
	return ls.s.Err()
}
