// Package apachelog parses Apache access logs into typed records.
//
// Both the Common Log Format and the Combined Log Format (common plus
// referrer and user agent) are recognized. Records pairs naturally with
// follow.Follow to turn a live access log into a stream of structured
// entries.
package apachelog

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/stream"
)

// Record is one parsed access-log entry. Referrer and UserAgent are
// empty for lines in the plain common format.
type Record struct {
	Host      string
	Ident     string
	User      string
	Time      time.Time
	Method    string
	Path      string
	Protocol  string
	Status    int
	Bytes     int64
	Referrer  string
	UserAgent string
}

const timeLayout = "02/Jan/2006:15:04:05 -0700"

var linePattern = regexp.MustCompile(
	`^(\S+) (\S+) (\S+) \[([^\]]+)\] "(\S+) (\S+) (\S+)" (\d{3}) (\S+)` +
		`(?: "([^"]*)" "([^"]*)")?\s*$`)

// ParseLine parses a single access-log line.
func ParseLine(line string) (Record, error) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, errors.Parse("access log line", line)
	}

	ts, err := time.Parse(timeLayout, m[4])
	if err != nil {
		return Record{}, errors.Parse("access log timestamp", m[4]).WithCause(err)
	}

	status, err := strconv.Atoi(m[8])
	if err != nil {
		return Record{}, errors.Parse("access log status", m[8]).WithCause(err)
	}

	// A dash means no body was sent.
	var bytes int64
	if m[9] != "-" {
		bytes, err = strconv.ParseInt(m[9], 10, 64)
		if err != nil {
			return Record{}, errors.Parse("access log bytes", m[9]).WithCause(err)
		}
	}

	return Record{
		Host:      m[1],
		Ident:     m[2],
		User:      m[3],
		Time:      ts,
		Method:    m[5],
		Path:      m[6],
		Protocol:  m[7],
		Status:    status,
		Bytes:     bytes,
		Referrer:  m[10],
		UserAgent: m[11],
	}, nil
}

// Records lifts a stream of raw log lines into a stream of Records.
// A malformed line fails the stream with a parse error.
func Records(lines *stream.Stream[string]) *stream.Stream[Record] {
	return stream.Map(lines, func(_ context.Context, line string) (Record, error) {
		return ParseLine(line)
	})
}

// RecordsLenient is Records for logs that may contain garbage: lines
// that do not parse are dropped instead of failing the stream.
func RecordsLenient(lines *stream.Stream[string]) *stream.Stream[Record] {
	parsed := stream.Map(lines, func(_ context.Context, line string) (*Record, error) {
		rec, err := ParseLine(line)
		if err != nil {
			return nil, nil
		}
		return &rec, nil
	})
	kept := stream.Filter(parsed, func(rec *Record) bool { return rec != nil })
	return stream.Map(kept, func(_ context.Context, rec *Record) (Record, error) {
		return *rec, nil
	})
}
