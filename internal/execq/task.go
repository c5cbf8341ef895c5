package execq

import "container/heap"

// task is a single unit of deferred work: a zero-argument action bound to a
// priority. A task is immutable once enqueued, except for its position in the
// heap, and is dropped immediately after its action runs.
type task struct {
	priority Priority
	action   func()
}

// taskHeap is a max-heap of tasks ordered by priority. Ordering within one
// priority value is NOT stable: two tasks added at the same priority may pop
// in either order. Callers that need a total order must use distinct
// priorities.
type taskHeap []*task

var _ heap.Interface = (*taskHeap)(nil)

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	return h[i].priority > h[j].priority
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *taskHeap) Push(x any) {
	*h = append(*h, x.(*task))
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
