// Package execq provides the priority execution queue at the heart of the
// Synapse runtime, together with the executor handles that feed it.
//
// The queue is an ordered container of deferred, priority-tagged actions.
// The surrounding execution context (typically an event loop) drains it with
// ExecuteAll, ExecuteHighest, or ExecuteHigh; that drain loop is the single
// place where scheduling decisions are made. Nothing in this package blocks
// or suspends - asynchrony comes purely from when an action is later popped
// and run.
//
// # Priority Tiers
//
// Priorities are plain integers; only relative order matters. A conventional
// three-tier scheme is provided:
//
//	PriorityHigh   = 100   critical work that must drain together
//	PriorityMedium = 50    default tier
//	PriorityLow    = 10    background work
//
// ExecuteHighest drains everything at or above the high tier, then lets
// exactly one lower-priority action through before yielding. A caller running
// it in a loop therefore interleaves fairly with other event-loop work.
//
// # Concurrency
//
// The queue has no internal locking. It assumes single-writer draining
// semantics: the execution context that drains it also serializes every call
// to Add, whether made directly or through an Executor. This is a
// cooperative, not preemptive, model.
package execq
