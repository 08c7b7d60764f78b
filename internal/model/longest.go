package model

import "container/heap"

type longItem struct {
	word string
	seq  int
}

type longHeap []longItem

func (h longHeap) Len() int { return len(h) }
func (h longHeap) Less(i, j int) bool {
	if len(h[i].word) == len(h[j].word) {
		return h[i].seq < h[j].seq
	}
	return len(h[i].word) > len(h[j].word)
}
func (h longHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *longHeap) Push(x any) {
	*h = append(*h, x.(longItem))
}

func (h *longHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// LongestQueue orders tokens by descending length. Equal lengths pop in push order.
type LongestQueue struct {
	items longHeap
	next  int
}

// NewLongestQueue returns an empty queue.
func NewLongestQueue() *LongestQueue {
	q := &LongestQueue{}
	heap.Init(&q.items)
	return q
}

// Push adds a token.
func (q *LongestQueue) Push(word string) {
	heap.Push(&q.items, longItem{word: word, seq: q.next})
	q.next++
}

// Len returns the number of queued tokens, duplicates included.
func (q *LongestQueue) Len() int {
	return q.items.Len()
}

// Peek returns the longest token, or "" when the queue is empty.
func (q *LongestQueue) Peek() string {
	if q.items.Len() == 0 {
		return ""
	}
	return q.items[0].word
}

// TopDistinct returns up to n distinct tokens, longest first. The queue is not modified.
func (q *LongestQueue) TopDistinct(n int) []string {
	if n <= 0 || q.items.Len() == 0 {
		return nil
	}
	work := make(longHeap, len(q.items))
	copy(work, q.items)
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for work.Len() > 0 && len(out) < n {
		item := heap.Pop(&work).(longItem)
		if _, ok := seen[item.word]; ok {
			continue
		}
		seen[item.word] = struct{}{}
		out = append(out, item.word)
	}
	return out
}
