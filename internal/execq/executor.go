package execq

// Executor is a lightweight handle bound to a queue and a fixed priority.
// It satisfies the executor capability expected by the execution context:
// Post, Dispatch, and Defer all translate a submission into an Add on the
// bound queue. The three names exist to satisfy callers that distinguish
// immediate-preferred from deferred-preferred submission; in this design all
// three are deferred.
//
// Executor is a comparable value type: two executors are equal (==) iff they
// reference the same queue and carry the same priority. It may be copied
// freely.
type Executor struct {
	queue    *Queue
	priority Priority
}

// Executor returns an executor handle bound to this queue at priority p.
func (q *Queue) Executor(p Priority) Executor {
	return Executor{queue: q, priority: p}
}

// Post enqueues the action at the executor's priority.
func (e Executor) Post(action func()) {
	e.queue.Add(e.priority, action)
}

// Dispatch enqueues the action at the executor's priority. It never runs the
// action inline, even though the executor contract would permit it.
func (e Executor) Dispatch(action func()) {
	e.queue.Add(e.priority, action)
}

// Defer enqueues the action at the executor's priority.
func (e Executor) Defer(action func()) {
	e.queue.Add(e.priority, action)
}

// Context returns the queue this executor submits to.
func (e Executor) Context() *Queue {
	return e.queue
}

// Priority returns the fixed priority bound at construction.
func (e Executor) Priority() Priority {
	return e.priority
}
