// Package rolling provides a fixed-capacity trailing window that keeps a
// running sum of the samples it holds.
package rolling

import "github.com/gammazero/deque"

// Window holds up to capacity of the most recently pushed samples.
// Push and Mean are O(1); eviction pops from the front of a ring-buffer deque.
type Window struct {
	capacity int
	values   *deque.Deque[float64]
	sum      float64
}

// New returns an empty window. A capacity below 1 is treated as 1.
func New(capacity int) *Window {
	if capacity <= 0 {
		capacity = 1
	}
	return &Window{
		capacity: capacity,
		values:   deque.New[float64](0, capacity+1),
	}
}

// Push appends v and evicts the oldest sample once more than capacity are held.
func (w *Window) Push(v float64) {
	w.values.PushBack(v)
	w.sum += v
	if w.values.Len() > w.capacity {
		w.sum -= w.values.PopFront()
	}
}

// Mean returns the mean of the held samples, or 0 when empty.
func (w *Window) Mean() float64 {
	n := w.values.Len()
	if n == 0 {
		return 0
	}
	return w.sum / float64(n)
}
