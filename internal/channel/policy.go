package channel

// Subscriber is a callback receiving published values. A subscriber may fail
// by returning an error or by panicking; what happens to the remaining
// subscribers is decided by the channel's DeliveryPolicy.
type Subscriber[T any] func(value T) error

// DeliveryPolicy governs how a channel invokes its subscriber set during one
// deferred delivery pass. The policy receives the subscribers in registration
// order and decides whether a single failure aborts delivery to the rest.
type DeliveryPolicy[T any] interface {
	Deliver(value T, subs []Subscriber[T])
}

// DropPolicy is the default delivery policy: invoke each subscriber in turn,
// discarding errors and recovering panics, so every subscriber gets the value
// regardless of failures elsewhere. Failures are never surfaced or retried.
type DropPolicy[T any] struct{}

// Deliver implements DeliveryPolicy.
func (DropPolicy[T]) Deliver(value T, subs []Subscriber[T]) {
	for _, sub := range subs {
		invokeDropping(sub, value)
	}
}

// invokeDropping runs one subscriber, swallowing its error and any panic.
func invokeDropping[T any](sub Subscriber[T], value T) {
	defer func() {
		_ = recover()
	}()
	_ = sub(value)
}
