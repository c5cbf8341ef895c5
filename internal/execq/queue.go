package execq

import "container/heap"

// Queue is an ordered multiset of deferred actions drained by the owning
// execution context.
//
// Queue has no internal locking. The execution context that drains it must
// also serialize every Add call; under that discipline a multi-threaded host
// is fine, but the queue itself never synchronizes.
type Queue struct {
	tasks    taskHeap
	highTier Priority
}

// QueueOption configures a Queue.
type QueueOption func(*Queue)

// WithHighTier overrides the threshold at which ExecuteHighest and
// ExecuteHigh treat actions as high-tier work. The default is PriorityHigh.
func WithHighTier(p Priority) QueueOption {
	return func(q *Queue) {
		q.highTier = p
	}
}

// NewQueue creates an empty priority execution queue.
func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{
		tasks:    make(taskHeap, 0),
		highTier: PriorityHigh,
	}
	for _, opt := range opts {
		opt(q)
	}
	heap.Init(&q.tasks)
	return q
}

// Add enqueues an action at the given priority. It always succeeds; a nil
// action is ignored.
func (q *Queue) Add(priority Priority, action func()) {
	if action == nil {
		return
	}
	heap.Push(&q.tasks, &task{priority: priority, action: action})
}

// Len returns the number of pending actions.
func (q *Queue) Len() int {
	return q.tasks.Len()
}

// pop removes and returns the highest-priority task. The task leaves the
// queue before its action runs, so an action that enqueues same- or
// higher-priority work never re-observes itself, and a panic mid-drain never
// re-executes an already-popped task.
func (q *Queue) pop() *task {
	return heap.Pop(&q.tasks).(*task)
}

// ExecuteAll pops and runs the highest-priority action until the queue is
// empty, including actions enqueued by actions running during this call.
// Panics from actions are not caught.
func (q *Queue) ExecuteAll() {
	for q.tasks.Len() > 0 {
		q.pop().action()
	}
}

// ExecuteHighest pops and runs pending actions while they are at or above
// the high tier. Once an action below the tier is popped it runs once and
// draining stops, so a caller looping on ExecuteHighest drains all critical
// work each pass but lets only one background action through before
// yielding. It reports whether the queue still has pending actions.
func (q *Queue) ExecuteHighest() bool {
	for q.tasks.Len() > 0 {
		t := q.pop()
		p := t.priority
		t.action()
		if p < q.highTier {
			// one sub-tier action per pass
			break
		}
	}
	return q.tasks.Len() > 0
}

// ExecuteHigh pops and runs every pending action at or above the high tier,
// stopping without executing as soon as a sub-tier action is at the front.
func (q *Queue) ExecuteHigh() {
	for q.tasks.Len() > 0 {
		if q.tasks[0].priority < q.highTier {
			break
		}
		q.pop().action()
	}
}
