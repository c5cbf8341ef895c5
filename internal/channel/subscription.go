package channel

import "sync/atomic"

// SubscriptionState represents the state of a subscription.
type SubscriptionState int32

const (
	// SubscriptionStateActive means the subscription receives deliveries.
	SubscriptionStateActive SubscriptionState = iota

	// SubscriptionStateCancelled means the subscription has been removed.
	// Cancelled is terminal.
	SubscriptionStateCancelled
)

// String returns a human-readable state name.
func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionStateActive:
		return "active"
	case SubscriptionStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Subscription is the handle returned by Channel.Subscribe. While held, it
// keeps the association alive; Unsubscribe (or Channel.Unsubscribe with the
// handle) deterministically stops future deliveries to the callback.
//
// A delivery already posted to the execution context before Unsubscribe may
// still reach the callback if its subscriber snapshot was taken first; a
// handle prevents future deliveries, it cannot recall queued ones.
type Subscription struct {
	id     string
	state  atomic.Int32
	remove func(id string)
}

func newSubscription(id string, remove func(id string)) *Subscription {
	s := &Subscription{id: id, remove: remove}
	s.state.Store(int32(SubscriptionStateActive))
	return s
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// State returns the current subscription state.
func (s *Subscription) State() SubscriptionState {
	return SubscriptionState(s.state.Load())
}

// IsActive returns true if the subscription can still receive deliveries.
func (s *Subscription) IsActive() bool {
	return s.State() == SubscriptionStateActive
}

// Unsubscribe removes the subscriber from its channel. It is idempotent:
// only the first call detaches, later calls are no-ops.
func (s *Subscription) Unsubscribe() {
	if s.state.CompareAndSwap(int32(SubscriptionStateActive), int32(SubscriptionStateCancelled)) {
		s.remove(s.id)
	}
}
