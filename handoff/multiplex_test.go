package handoff

import (
	"context"
	"errors"
	"testing"

	"github.com/kbukum/streamkit/stream"
)

func TestMultiplex_RoundRobinInterleave(t *testing.T) {
	a := stream.FromSlice([]string{"a0", "a1"})
	b := stream.FromSlice([]string{"b0", "b1", "b2"})

	got, err := stream.Collect(context.Background(), Multiplex([]*stream.Stream[string]{a, b}))
	if err != nil {
		t.Fatal(err)
	}
	// A exhausts after two cycles; the remaining cycles serve only B.
	want := []string{"a0", "b0", "a1", "b1", "b2"}
	if !strSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMultiplex_CountAndPerSourceOrder(t *testing.T) {
	a := []int{1, 2, 3, 4}
	b := []int{100, 200}
	c := []int{7}
	merged := Multiplex([]*stream.Stream[int]{
		stream.FromSlice(a),
		stream.FromSlice(b),
		stream.FromSlice(c),
	})

	got, err := stream.Collect(context.Background(), merged)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(a)+len(b)+len(c) {
		t.Fatalf("got %d items, want %d", len(got), len(a)+len(b)+len(c))
	}

	// Each source's values appear in their original relative order.
	for _, src := range [][]int{a, b, c} {
		i := 0
		for _, v := range got {
			if i < len(src) && v == src[i] {
				i++
			}
		}
		if i != len(src) {
			t.Errorf("source %v not a subsequence of %v", src, got)
		}
	}
}

func TestMultiplex_ZeroSources(t *testing.T) {
	got, err := stream.Collect(context.Background(), Multiplex[int](nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestMultiplex_SingleSource(t *testing.T) {
	src := stream.FromSlice([]int{5, 6, 7})
	got, err := stream.Collect(context.Background(), Multiplex([]*stream.Stream[int]{src}))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMultiplex_UpstreamFailureSurfaces(t *testing.T) {
	failure := errors.New("source exploded")
	bad := stream.FromFunc(func(_ context.Context) stream.Iterator[int] {
		return &failingIter{items: []int{1}, err: failure}
	})
	good := stream.FromSlice([]int{10, 20})

	ctx := context.Background()
	iter := Multiplex([]*stream.Stream[int]{bad, good}).Iter(ctx)
	defer iter.Close()

	var values []int
	var gotErr error
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			gotErr = err
			continue // failure entries are not terminal
		}
		if !ok {
			break
		}
		values = append(values, val)
	}

	if !errors.Is(gotErr, failure) {
		t.Errorf("expected %v to surface, got %v", failure, gotErr)
	}
	want := []int{1, 10, 20}
	if len(values) != len(want) {
		t.Fatalf("got %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("got %v, want %v", values, want)
		}
	}
}

func TestMultiplex_SlotOrderIndependentOfPacing(t *testing.T) {
	// The fast source pre-fills its channel; round-robin still serves
	// the slow slot its turn, so the cycle order is deterministic.
	slow := NewChannel[int]()
	fast := stream.FromSlice([]int{100, 200, 300})

	go func() {
		slow.Put(1)
		slow.Put(2)
		slow.Put(3)
		slow.End()
	}()

	got, err := stream.Collect(context.Background(), Multiplex([]*stream.Stream[int]{
		slow.Stream(),
		fast,
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 100, 2, 200, 3, 300}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func strSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
