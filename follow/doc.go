// Package follow turns a growing file into a lazy stream of lines, the
// tail -f of streamkit.
//
// Follow seeks to the end of the file and yields each line appended
// afterwards; FromStart yields existing content first. The stream is
// infinite — it blocks waiting for new data until its context is
// cancelled. New data is detected through fsnotify write events, with a
// polling fallback for filesystems that do not deliver them.
//
// Truncation (log rotation that reuses the same path) is handled by
// reseeking to the start of the file.
//
//	lines := follow.Follow("run/foo/access-log")
//	merged := handoff.Multiplex([]*stream.Stream[string]{lines, more})
package follow
