package stream

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestMap(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	doubled := Map(s, func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	})
	got, err := Collect(context.Background(), doubled)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{2, 4, 6}) {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}

func TestMap_Error(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	fail := Map(s, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errors.New("bad value")
		}
		return n, nil
	})
	got, err := Collect(context.Background(), fail)
	if err == nil {
		t.Fatal("expected error")
	}
	if !intSliceEqual(got, []int{1}) {
		t.Errorf("expected [1] before error, got %v", got)
	}
}

func TestMap_TypeConversion(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	strs := Map(s, func(_ context.Context, n int) (string, error) {
		return fmt.Sprintf("#%d", n), nil
	})
	got, err := Collect(context.Background(), strs)
	if err != nil {
		t.Fatal(err)
	}
	if !strSliceEqual(got, []string{"#1", "#2", "#3"}) {
		t.Errorf("got %v", got)
	}
}

func TestFlatMap(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	expanded := FlatMap(s, func(_ context.Context, n int) (Iterator[int], error) {
		return &sliceIter[int]{items: []int{n, n * 10}}, nil
	})
	got, err := Collect(context.Background(), expanded)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 10, 2, 20, 3, 30}) {
		t.Errorf("got %v", got)
	}
}

func TestFilter(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5, 6})
	evens := Filter(s, func(n int) bool { return n%2 == 0 })
	got, err := Collect(context.Background(), evens)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{2, 4, 6}) {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}

func TestTake_ShorterSource(t *testing.T) {
	got, err := Collect(context.Background(), Take(FromSlice([]int{1, 2}), 5))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestTakeWhile(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 10, 4})
	got, err := Collect(context.Background(), TakeWhile(s, func(n int) bool { return n < 5 }))
	if err != nil {
		t.Fatal(err)
	}
	// Stops at 10; the trailing 4 is never yielded.
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestPairwise(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 5})
	got, err := Collect(context.Background(), Pairwise(s))
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{1, 2}, {2, 3}, {3, 5}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPairwise_SingleValue(t *testing.T) {
	got, err := Collect(context.Background(), Pairwise(FromSlice([]int{1})))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no pairs, got %v", got)
	}
}

func TestTap_SideEffect(t *testing.T) {
	var seen []int
	s := Tap(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		seen = append(seen, n)
		return nil
	})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) || !intSliceEqual(seen, []int{1, 2, 3}) {
		t.Errorf("got %v, seen %v", got, seen)
	}
}

func TestReduce(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4})
	got, err := Collect(context.Background(), Reduce(s, 0, func(acc, n int) int { return acc + n }))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 10 {
		t.Errorf("got %v, want [10]", got)
	}
}

func TestConcat(t *testing.T) {
	got, err := Collect(context.Background(), Concat(
		FromSlice([]int{1, 2}),
		FromSlice([]int{}),
		FromSlice([]int{3}),
	))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}
