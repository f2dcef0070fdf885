package stream

import (
	"context"
	"errors"
	"testing"
)

func TestFromSlice_Collect(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	s := FromSlice([]int{})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestFrom_Iterator(t *testing.T) {
	iter := &sliceIter[string]{items: []string{"a", "b"}}
	s := From[string](iter)
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestFromChannel(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	got, err := Collect(context.Background(), FromChannel(ch))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestFromChannel_ContextCancel(t *testing.T) {
	ch := make(chan int) // never fed
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, FromChannel(ch))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context error, got %v", err)
	}
}

func TestGenerate_Take(t *testing.T) {
	n := 0
	naturals := Generate(func(_ context.Context) (int, error) {
		n++
		return n, nil
	})
	got, err := Collect(context.Background(), Take(naturals, 4))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("got %v, want [1 2 3 4]", got)
	}
}

func TestDrain_SinkError(t *testing.T) {
	boom := errors.New("sink failed")
	err := Drain(context.Background(), FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		if n == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
}

func TestIter_ExhaustionIsIdempotent(t *testing.T) {
	ctx := context.Background()
	iter := FromSlice([]int{1}).Iter(ctx)
	defer iter.Close()

	if _, ok, _ := iter.Next(ctx); !ok {
		t.Fatal("expected first value")
	}
	for i := 0; i < 3; i++ {
		if _, ok, err := iter.Next(ctx); ok || err != nil {
			t.Fatalf("pull %d after exhaustion: ok=%v err=%v", i, ok, err)
		}
	}
}

func intSliceEqual(a, b []int) bool {
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
