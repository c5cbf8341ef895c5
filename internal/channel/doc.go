// Package channel provides the broadcast primitive of the Synapse runtime.
//
// A channel is a loosely bound, asynchronous pub/sub concept: publishers push
// a value without knowing who is listening, and subscribers receive it later
// when the execution context drains the posted delivery. This removes the
// need to tightly couple independently developed components for the use-case
// of sending data around.
//
// Publish never invokes subscribers synchronously. The value is captured into
// a closure posted through the channel's Poster (normally an execq.Executor
// at a configured priority); the closure snapshots the subscriber list when
// it runs, not when Publish was called. Two consequences are part of the
// contract:
//
//   - Publishing with zero subscribers is a complete no-op: nothing is
//     captured and no work is posted.
//   - A subscriber added after Publish but before the deferred delivery runs
//     still receives the value. Callers must accept this race.
//
// How the subscriber set is invoked is pluggable via DeliveryPolicy. The
// default DropPolicy invokes every subscriber and silently discards
// individual failures, so one bad subscriber never starves the rest.
package channel
