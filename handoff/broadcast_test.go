package handoff

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/kbukum/streamkit/stream"
)

func TestBroadcast_AllSinksSeeIdenticalSequence(t *testing.T) {
	ctx := context.Background()
	src := stream.FromSlice([]int{1, 2, 3, 4})
	sink1 := NewChannel[int]()
	sink2 := NewChannel[int]()

	if err := Broadcast(ctx, src, sink1, sink2); err != nil {
		t.Fatal(err)
	}

	for _, sink := range []*Channel[int]{sink1, sink2} {
		got, err := stream.Collect(ctx, sink.Stream())
		if err != nil {
			t.Fatal(err)
		}
		want := []int{1, 2, 3, 4}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	}
}

func TestBroadcast_EmptySource(t *testing.T) {
	ctx := context.Background()
	sink := NewChannel[string]()
	if err := Broadcast(ctx, stream.FromSlice([]string{}), sink); err != nil {
		t.Fatal(err)
	}
	got, err := stream.Collect(ctx, sink.Stream())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestBroadcast_SourceFailureForwarded(t *testing.T) {
	ctx := context.Background()
	failure := errors.New("reader died")
	src := stream.FromFunc(func(_ context.Context) stream.Iterator[int] {
		return &failingIter{items: []int{9}, err: failure}
	})
	sink := NewChannel[int]()

	if err := Broadcast(ctx, src, sink); !errors.Is(err, failure) {
		t.Fatalf("expected %v, got %v", failure, err)
	}

	if got, _, err := sink.Get(ctx); err != nil || got != 9 {
		t.Fatalf("first read: (%d, %v)", got, err)
	}
	if _, _, err := sink.Get(ctx); !errors.Is(err, failure) {
		t.Fatalf("expected forwarded failure, got %v", err)
	}
	if _, ok, err := sink.Get(ctx); ok || err != nil {
		t.Fatalf("expected end-of-stream, got ok=%v err=%v", ok, err)
	}
}

func TestBroadcast_ToConsumers(t *testing.T) {
	ctx := context.Background()

	var evens, total atomic.Int64
	evenCounter := NewConsumer(func(ctx context.Context, values *stream.Stream[int]) error {
		return stream.ForEach(ctx, values, func(_ context.Context, n int) error {
			if n%2 == 0 {
				evens.Add(1)
			}
			return nil
		})
	})
	summer := NewConsumer(func(ctx context.Context, values *stream.Stream[int]) error {
		return stream.ForEach(ctx, values, func(_ context.Context, n int) error {
			total.Add(int64(n))
			return nil
		})
	})
	evenCounter.Start(ctx)
	summer.Start(ctx)

	src := stream.FromSlice([]int{1, 2, 3, 4, 5})
	if err := Broadcast(ctx, src, evenCounter, summer); err != nil {
		t.Fatal(err)
	}
	if err := evenCounter.Wait(); err != nil {
		t.Fatal(err)
	}
	if err := summer.Wait(); err != nil {
		t.Fatal(err)
	}

	if evens.Load() != 2 {
		t.Errorf("evens = %d, want 2", evens.Load())
	}
	if total.Load() != 15 {
		t.Errorf("total = %d, want 15", total.Load())
	}
}

func TestConsumer_SendAndWait(t *testing.T) {
	ctx := context.Background()
	var sum atomic.Int64
	c := NewConsumer(func(ctx context.Context, values *stream.Stream[int]) error {
		return stream.ForEach(ctx, values, func(_ context.Context, n int) error {
			sum.Add(int64(n))
			return nil
		})
	})
	c.Start(ctx)

	c.Send(10)
	c.Send(20)
	c.End()
	if c.Send(30) {
		t.Error("Send after End accepted")
	}

	if err := c.Wait(); err != nil {
		t.Fatal(err)
	}
	if sum.Load() != 30 {
		t.Errorf("sum = %d, want 30", sum.Load())
	}
}

func TestConsumer_TargetErrorReported(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	c := NewConsumer(func(ctx context.Context, values *stream.Stream[int]) error {
		return stream.ForEach(ctx, values, func(_ context.Context, n int) error {
			if n == 2 {
				return boom
			}
			return nil
		})
	})
	c.Start(ctx)
	c.Send(1)
	c.Send(2)
	c.End()

	if err := c.Wait(); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
}
