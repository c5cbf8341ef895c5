package channel

import (
	"sync"

	"github.com/google/uuid"
)

// Poster is the capability a channel needs from the execution context: accept
// a zero-argument action to run later. execq.Executor satisfies it.
type Poster interface {
	Post(action func())
}

// Channel is a broadcast primitive parameterized by a payload type. One
// instance exists per declaration for the lifetime of the owning registry; it
// is never copied.
//
// The subscriber list is guarded by a mutex so components may subscribe and
// unsubscribe while a delivery pass is pending; the pass itself iterates a
// snapshot, so add/remove during iteration is safe.
type Channel[T any] struct {
	mu     sync.RWMutex
	order  []string
	subs   map[string]Subscriber[T]
	policy DeliveryPolicy[T]
	exec   Poster
	closed bool
}

// Option configures a Channel.
type Option[T any] func(*Channel[T])

// WithDeliveryPolicy replaces the default drop-and-continue delivery policy.
func WithDeliveryPolicy[T any](p DeliveryPolicy[T]) Option[T] {
	return func(c *Channel[T]) {
		if p != nil {
			c.policy = p
		}
	}
}

// New creates a channel posting deliveries through exec.
func New[T any](exec Poster, opts ...Option[T]) *Channel[T] {
	c := &Channel[T]{
		subs:   make(map[string]Subscriber[T]),
		policy: DropPolicy[T]{},
		exec:   exec,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Publish broadcasts a value to the channel's subscribers.
//
// With no live subscriptions this is a complete no-op: the value is not
// captured and no work is posted. Otherwise the value is captured into a
// deferred closure; when the execution context runs it, the delivery policy
// is applied to the subscriber list as it exists at that moment. Subscribers
// added between Publish and the deferred run therefore still receive the
// value.
func (c *Channel[T]) Publish(value T) {
	if !c.HasSubscribers() {
		return
	}
	c.exec.Post(func() {
		c.policy.Deliver(value, c.snapshot())
	})
}

// Subscribe registers a callback and returns its handle. Subscribing the
// same callable twice yields two independent subscriptions.
func (c *Channel[T]) Subscribe(fn Subscriber[T]) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilSubscriber
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrChannelClosed
	}

	id := uuid.NewString()
	c.order = append(c.order, id)
	c.subs[id] = fn
	return newSubscription(id, c.remove), nil
}

// Unsubscribe is an explicit, idempotent release of a subscription handle,
// equivalent to calling its Unsubscribe method. A nil handle is a no-op.
func (c *Channel[T]) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	sub.Unsubscribe()
}

// HasSubscribers returns true iff at least one live subscription exists.
func (c *Channel[T]) HasSubscribers() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs) > 0
}

// SubscriberCount returns the number of live subscriptions.
func (c *Channel[T]) SubscriberCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}

// Close cancels every subscription and rejects new ones. Deliveries already
// posted run against an empty snapshot. Close is idempotent.
func (c *Channel[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.order = nil
	c.subs = make(map[string]Subscriber[T])
}

// snapshot copies the subscriber list in registration order so a delivery
// pass is unaffected by concurrent add/remove.
func (c *Channel[T]) snapshot() []Subscriber[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Subscriber[T], 0, len(c.subs))
	for _, id := range c.order {
		if fn, ok := c.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func (c *Channel[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.subs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
