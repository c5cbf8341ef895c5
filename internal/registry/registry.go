package registry

import (
	"fmt"
	"sync"

	"github.com/dshills/synapse/internal/channel"
	"github.com/dshills/synapse/internal/method"
)

// Tag is the discriminator distinguishing otherwise identical channel or
// method declarations. Components that agree on a tag (and its types) share
// an instance.
type Tag string

// slot is one type-erased storage cell: the erased instance plus the destroy
// function constructed alongside it. Pairing the two at construction time is
// what keeps teardown safe without the slot knowing its concrete type.
type slot struct {
	value   any
	destroy func()
}

// Registry maps tags to channel and method singletons. It is safe for
// concurrent use. Instances live until Close.
type Registry struct {
	mu       sync.Mutex
	channels map[Tag]*slot
	methods  map[Tag]*slot
	closed   bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		channels: make(map[Tag]*slot),
		methods:  make(map[Tag]*slot),
	}
}

// ChannelFor returns the channel singleton for tag, constructing it on first
// use with the given poster and options. Later requests ignore poster and
// opts and must use the same payload type T; a different T yields a
// TagMismatchError.
func ChannelFor[T any](r *Registry, tag Tag, exec channel.Poster, opts ...channel.Option[T]) (*channel.Channel[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrRegistryClosed
	}

	if s, ok := r.channels[tag]; ok {
		ch, ok := s.value.(*channel.Channel[T])
		if !ok {
			return nil, &TagMismatchError{
				Tag:       tag,
				Stored:    fmt.Sprintf("%T", s.value),
				Requested: fmt.Sprintf("%T", (*channel.Channel[T])(nil)),
			}
		}
		return ch, nil
	}

	ch := channel.New[T](exec, opts...)
	r.channels[tag] = &slot{value: ch, destroy: ch.Close}
	return ch, nil
}

// MethodFor returns the method singleton for tag, constructing it on first
// use. Later requests must use the same request and response types; a
// different signature yields a TagMismatchError.
func MethodFor[Req, Resp any](r *Registry, tag Tag, opts ...method.Option[Req, Resp]) (*method.Method[Req, Resp], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrRegistryClosed
	}

	if s, ok := r.methods[tag]; ok {
		m, ok := s.value.(*method.Method[Req, Resp])
		if !ok {
			return nil, &TagMismatchError{
				Tag:       tag,
				Stored:    fmt.Sprintf("%T", s.value),
				Requested: fmt.Sprintf("%T", (*method.Method[Req, Resp])(nil)),
			}
		}
		return m, nil
	}

	m := method.New[Req, Resp](opts...)
	r.methods[tag] = &slot{value: m, destroy: m.Close}
	return m, nil
}

// ChannelCount returns the number of declared channels.
func (r *Registry) ChannelCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.channels)
}

// MethodCount returns the number of declared methods.
func (r *Registry) MethodCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.methods)
}

// Close runs every slot's destroy function and empties the registry. It is
// idempotent; after Close, ChannelFor and MethodFor fail with
// ErrRegistryClosed.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true

	for _, s := range r.channels {
		s.destroy()
	}
	for _, s := range r.methods {
		s.destroy()
	}
	r.channels = make(map[Tag]*slot)
	r.methods = make(map[Tag]*slot)
}
