package treeify

import (
	"context"
	"reflect"
	"testing"

	"github.com/kbukum/streamkit/stream"
)

func TestTreeify(t *testing.T) {
	paths := stream.FromSlice([]string{
		"usr/bin/go",
		"usr/bin/gofmt",
		"usr/lib/libc.so",
		"var/log/syslog",
	})
	got, err := stream.Collect(context.Background(), Treeify(paths, "/"))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []string{
		"usr/bin/go",
		"       /gofmt",
		"   /lib/libc.so",
		"var/log/syslog",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTreeifyFirstLineUnindented(t *testing.T) {
	got, err := stream.Collect(context.Background(),
		Treeify(stream.FromSlice([]string{"a/b"}), "/"))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a/b"}) {
		t.Fatalf("got %q", got)
	}
}

func TestTreeifyDuplicateLineKeepsLeaf(t *testing.T) {
	got, err := stream.Collect(context.Background(),
		Treeify(stream.FromSlice([]string{"a/b/c", "a/b/c"}), "/"))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []string{"a/b/c", "   /c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTreeifyCustomSeparator(t *testing.T) {
	paths := stream.FromSlice([]string{"com.example.app", "com.example.lib"})
	got, err := stream.Collect(context.Background(), Treeify(paths, "."))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []string{"com.example.app", "           .lib"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}
