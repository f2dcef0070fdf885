package greedy

import (
	"context"
	"reflect"
	"testing"

	"github.com/kbukum/streamkit/stream"
)

func TestGreedySumLimit(t *testing.T) {
	coins := stream.FromSlice([]int{25, 10, 5, 1})
	got, err := stream.Collect(context.Background(), Greedy(coins, SumLimit(63)))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []int{25, 25, 10, 1, 1, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGreedyZeroTarget(t *testing.T) {
	coins := stream.FromSlice([]int{25, 10, 5, 1})
	got, err := stream.Collect(context.Background(), Greedy(coins, SumLimit(0)))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestGreedyIsLazy(t *testing.T) {
	coins := stream.FromSlice([]int{100, 25, 10, 5, 1})
	s := stream.Take(Greedy(coins, SumLimit(250)), 2)
	got, err := stream.Collect(context.Background(), s)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []int{100, 100}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestChange(t *testing.T) {
	got, err := stream.Collect(context.Background(), Change(137, []int{1, 5, 10, 25, 100}))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []int{100, 25, 10, 1, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRoman(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{90, "XC"},
		{400, "CD"},
		{1990, "MCMXC"},
		{2026, "MMXXVI"},
		{3999, "MMMCMXCIX"},
	}
	for _, tc := range cases {
		got, err := Roman(tc.n)
		if err != nil {
			t.Fatalf("Roman(%d): %v", tc.n, err)
		}
		if got != tc.want {
			t.Errorf("Roman(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
