// Package treeify renders a stream of delimited paths as an indented
// tree: components shared with the previous line are replaced by
// spaces of the same width, so the unique suffix lines up under its
// parent.
package treeify

import (
	"context"
	"strings"

	"github.com/kbukum/streamkit/stream"
)

// Treeify transforms a stream of sep-delimited paths into indented
// tree lines. Input should be sorted so shared prefixes are adjacent.
func Treeify(paths *stream.Stream[string], sep string) *stream.Stream[string] {
	return stream.FromFunc(func(ctx context.Context) stream.Iterator[string] {
		return &treeIter{source: paths.Iter(ctx), sep: sep}
	})
}

type treeIter struct {
	source stream.Iterator[string]
	sep    string
	prev   []string
}

func (it *treeIter) Next(ctx context.Context) (string, bool, error) {
	path, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return "", ok, err
	}
	parts := strings.Split(path, it.sep)
	depth := sharedDepth(it.prev, parts)
	it.prev = parts
	return render(parts, depth, it.sep), true, nil
}

func (it *treeIter) Close() error {
	return it.source.Close()
}

func sharedDepth(prev, cur []string) int {
	depth := 0
	for depth < len(prev) && depth < len(cur) && prev[depth] == cur[depth] {
		depth++
	}
	// Never blank out an entire line.
	if depth == len(cur) {
		depth = len(cur) - 1
	}
	return depth
}

func render(parts []string, depth int, sep string) string {
	var sb strings.Builder
	for i := 0; i < depth; i++ {
		if i > 0 {
			sb.WriteString(strings.Repeat(" ", len(sep)))
		}
		sb.WriteString(strings.Repeat(" ", len(parts[i])))
	}
	if depth > 0 {
		sb.WriteString(sep)
	}
	sb.WriteString(strings.Join(parts[depth:], sep))
	return sb.String()
}
