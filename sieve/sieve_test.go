package sieve

import (
	"context"
	"reflect"
	"testing"

	"github.com/kbukum/streamkit/stream"
)

func TestPrimesFirstTen(t *testing.T) {
	got, err := stream.Collect(context.Background(), stream.Take(Primes(), 10))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPrimesUpTo(t *testing.T) {
	got, err := stream.Collect(context.Background(), PrimesUpTo(30))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPrimesCount(t *testing.T) {
	got, err := stream.Collect(context.Background(), PrimesUpTo(10000))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(got) != 1229 {
		t.Fatalf("pi(10000) = %d, want 1229", len(got))
	}
	if got[len(got)-1] != 9973 {
		t.Fatalf("largest prime below 10000 = %d, want 9973", got[len(got)-1])
	}
}

func TestPrimesIndependentIterations(t *testing.T) {
	s := Primes()
	for i := 0; i < 2; i++ {
		got, err := stream.Collect(context.Background(), stream.Take(s, 3))
		if err != nil {
			t.Fatalf("collect: %v", err)
		}
		if !reflect.DeepEqual(got, []int{2, 3, 5}) {
			t.Fatalf("iteration %d got %v", i, got)
		}
	}
}
