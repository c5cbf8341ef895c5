package method

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// registration pairs a provider with its ordering metadata.
type registration[Req, Resp any] struct {
	id       string
	priority int
	seq      uint64
	fn       Provider[Req, Resp]
}

// Method is a single-call-site, multi-provider primitive. One instance
// exists per declaration for the lifetime of the owning registry.
//
// Registration and calls may come from different components; the provider
// list is guarded by a mutex and each call resolves against a snapshot, so
// registering or unregistering during a call is safe.
type Method[Req, Resp any] struct {
	mu     sync.RWMutex
	regs   []*registration[Req, Resp]
	seq    uint64
	policy ResolutionPolicy[Req, Resp]
}

// Option configures a Method.
type Option[Req, Resp any] func(*Method[Req, Resp])

// WithResolutionPolicy replaces the default first-success resolution policy.
func WithResolutionPolicy[Req, Resp any](p ResolutionPolicy[Req, Resp]) Option[Req, Resp] {
	return func(m *Method[Req, Resp]) {
		if p != nil {
			m.policy = p
		}
	}
}

// New creates a method with no providers.
func New[Req, Resp any](opts ...Option[Req, Resp]) *Method[Req, Resp] {
	m := &Method[Req, Resp]{
		policy: FirstSuccess[Req, Resp]{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ProviderOption configures a provider registration.
type ProviderOption func(*providerConfig)

type providerConfig struct {
	priority int
}

// WithPriority sets the provider's priority. Lower values are tried first;
// the default is 0. Providers sharing a priority are tried in registration
// order.
func WithPriority(priority int) ProviderOption {
	return func(c *providerConfig) {
		c.priority = priority
	}
}

// RegisterProvider adds a provider and returns its handle. The provider
// participates in calls until the handle is unregistered.
func (m *Method[Req, Resp]) RegisterProvider(fn Provider[Req, Resp], opts ...ProviderOption) (*ProviderHandle, error) {
	if fn == nil {
		return nil, ErrNilProvider
	}

	var config providerConfig
	for _, opt := range opts {
		opt(&config)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	reg := &registration[Req, Resp]{
		id:       uuid.NewString(),
		priority: config.priority,
		seq:      m.seq,
		fn:       fn,
	}
	m.seq++

	m.regs = append(m.regs, reg)
	sort.SliceStable(m.regs, func(i, j int) bool {
		if m.regs[i].priority != m.regs[j].priority {
			return m.regs[i].priority < m.regs[j].priority
		}
		return m.regs[i].seq < m.regs[j].seq
	})

	return newProviderHandle(reg.id, m.remove), nil
}

// Call invokes the method synchronously on the caller's goroutine. The
// resolution policy receives the providers in priority order; the aggregate
// failure it may return always escapes to the direct caller, never to a
// queue.
func (m *Method[Req, Resp]) Call(req Req) (Resp, error) {
	return m.policy.Resolve(req, m.snapshot())
}

// ProviderCount returns the number of registered providers.
func (m *Method[Req, Resp]) ProviderCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.regs)
}

// Close unregisters every provider. Outstanding handles become
// unregistered-by-proxy: their Unregister turns into a no-op.
func (m *Method[Req, Resp]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regs = nil
}

// snapshot copies the ordered provider list so a call is unaffected by
// concurrent registration changes.
func (m *Method[Req, Resp]) snapshot() []Provider[Req, Resp] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Provider[Req, Resp], len(m.regs))
	for i, reg := range m.regs {
		out[i] = reg.fn
	}
	return out
}

func (m *Method[Req, Resp]) remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, reg := range m.regs {
		if reg.id == id {
			m.regs = append(m.regs[:i], m.regs[i+1:]...)
			return
		}
	}
}
