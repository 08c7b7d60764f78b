package model

import "testing"

func TestLongestQueuePeek(t *testing.T) {
	q := NewLongestQueue()
	if got := q.Peek(); got != "" {
		t.Fatalf("expected empty peek, got %q", got)
	}
	for _, w := range []string{"cat", "horse", "mouse", "ox"} {
		q.Push(w)
	}
	if got := q.Peek(); got != "horse" {
		t.Fatalf("expected horse, got %q", got)
	}
	if q.Len() != 4 {
		t.Fatalf("expected 4 queued tokens, got %d", q.Len())
	}
}

func TestLongestQueueTopDistinct(t *testing.T) {
	q := NewLongestQueue()
	for _, w := range []string{"sat", "elephant", "The", "elephant", "giraffe", "ox"} {
		q.Push(w)
	}
	top := q.TopDistinct(3)
	want := []string{"elephant", "giraffe", "sat"}
	if len(top) != len(want) {
		t.Fatalf("expected %d words, got %v", len(want), top)
	}
	for i := range want {
		if top[i] != want[i] {
			t.Fatalf("unexpected order: %v", top)
		}
	}
	if q.Len() != 6 {
		t.Fatalf("TopDistinct must not drain the queue, len=%d", q.Len())
	}
	if got := q.TopDistinct(0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
}
