package follow

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/stream"
)

// Option configures a follower.
type Option func(*options)

type options struct {
	pollInterval time.Duration
	fromStart    bool
	log          *logger.Logger
}

// WithPollInterval sets how often the follower re-checks the file when
// no fsnotify event arrives. Default one second.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) { o.pollInterval = d }
}

// FromStart yields the file's existing content before following appends.
func FromStart() Option {
	return func(o *options) { o.fromStart = true }
}

// WithLogger sets the logger for watcher setup failures.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// Follow returns an infinite stream of lines appended to the file at
// path. Each yielded line has its trailing newline stripped. The stream
// only ends through context cancellation or an unreadable file.
func Follow(path string, opts ...Option) *stream.Stream[string] {
	o := options{
		pollInterval: time.Second,
		log:          logger.Get("follow"),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return stream.FromFunc(func(_ context.Context) stream.Iterator[string] {
		return &tailIter{path: path, opts: o}
	})
}

// Lines wraps an io.Reader as a finite stream of lines: the static
// counterpart to Follow, for already-complete files and test fixtures.
func Lines(r io.Reader) *stream.Stream[string] {
	return stream.FromFunc(func(_ context.Context) stream.Iterator[string] {
		return &lineIter{scanner: bufio.NewScanner(r)}
	})
}

type lineIter struct {
	scanner *bufio.Scanner
}

func (it *lineIter) Next(_ context.Context) (string, bool, error) {
	if it.scanner.Scan() {
		return it.scanner.Text(), true, nil
	}
	if err := it.scanner.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}

func (it *lineIter) Close() error { return nil }

type tailIter struct {
	path    string
	opts    options
	file    *os.File
	reader  *bufio.Reader
	watcher *fsnotify.Watcher
	offset  int64
	partial strings.Builder
	opened  bool
	closed  bool
}

func (it *tailIter) Next(ctx context.Context) (string, bool, error) {
	if it.closed {
		return "", false, nil
	}
	if !it.opened {
		if err := it.open(); err != nil {
			return "", false, err
		}
	}

	for {
		chunk, err := it.reader.ReadString('\n')
		if err == nil {
			it.partial.WriteString(chunk)
			line := strings.TrimRight(it.partial.String(), "\r\n")
			it.partial.Reset()
			it.offset += int64(len(chunk))
			return line, true, nil
		}
		if err != io.EOF {
			return "", false, errors.SourceUnavailable(it.path).WithCause(err)
		}

		// Hold the incomplete line until its newline arrives.
		it.partial.WriteString(chunk)
		it.offset += int64(len(chunk))

		if err := it.checkTruncation(); err != nil {
			return "", false, err
		}
		if err := it.wait(ctx); err != nil {
			return "", false, err
		}
	}
}

func (it *tailIter) open() error {
	file, err := os.Open(it.path)
	if err != nil {
		return errors.SourceUnavailable(it.path).WithCause(err)
	}
	it.file = file
	if !it.opts.fromStart {
		offset, err := file.Seek(0, io.SeekEnd)
		if err != nil {
			file.Close()
			return errors.SourceUnavailable(it.path).WithCause(err)
		}
		it.offset = offset
	}
	it.reader = bufio.NewReader(file)
	it.opened = true

	// fsnotify is best-effort: without a watcher the poll interval
	// still drives progress.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		it.opts.log.Warn("fsnotify unavailable, polling only", logger.Fields(
			logger.FieldSource, it.path,
			logger.FieldError, err.Error(),
		))
		return nil
	}
	if err := watcher.Add(it.path); err != nil {
		it.opts.log.Warn("cannot watch file, polling only", logger.Fields(
			logger.FieldSource, it.path,
			logger.FieldError, err.Error(),
		))
		watcher.Close()
		return nil
	}
	it.watcher = watcher
	return nil
}

// checkTruncation reseeks to the start when the file shrank under us.
func (it *tailIter) checkTruncation() error {
	info, err := it.file.Stat()
	if err != nil {
		return errors.SourceUnavailable(it.path).WithCause(err)
	}
	if info.Size() >= it.offset {
		return nil
	}
	if _, err := it.file.Seek(0, io.SeekStart); err != nil {
		return errors.SourceUnavailable(it.path).WithCause(err)
	}
	it.offset = 0
	it.partial.Reset()
	it.reader.Reset(it.file)
	return nil
}

// wait blocks until the file may have new data or the context is done.
func (it *tailIter) wait(ctx context.Context) error {
	timer := time.NewTimer(it.opts.pollInterval)
	defer timer.Stop()

	if it.watcher != nil {
		select {
		case <-it.watcher.Events:
		case werr := <-it.watcher.Errors:
			it.opts.log.Warn("watcher error", logger.Fields(
				logger.FieldSource, it.path,
				logger.FieldError, werr.Error(),
			))
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	}

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (it *tailIter) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	if it.watcher != nil {
		it.watcher.Close()
	}
	if it.file != nil {
		return it.file.Close()
	}
	return nil
}
