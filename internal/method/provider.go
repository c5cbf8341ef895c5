package method

import "sync/atomic"

// ProviderState represents the state of a provider registration.
type ProviderState int32

const (
	// ProviderStateRegistered means the provider participates in calls.
	ProviderStateRegistered ProviderState = iota

	// ProviderStateUnregistered means the provider has been removed.
	// Unregistered is terminal.
	ProviderStateUnregistered
)

// String returns a human-readable state name.
func (s ProviderState) String() string {
	switch s {
	case ProviderStateRegistered:
		return "registered"
	case ProviderStateUnregistered:
		return "unregistered"
	default:
		return "unknown"
	}
}

// ProviderHandle is the exclusively owned handle returned by
// RegisterProvider. Registration is tied to the handle: unregistering it
// (explicitly, or as part of the owner's teardown) removes exactly that
// provider from future calls. A call already resolving against a snapshot
// that includes the provider still completes.
type ProviderHandle struct {
	id     string
	state  atomic.Int32
	remove func(id string)
}

func newProviderHandle(id string, remove func(id string)) *ProviderHandle {
	h := &ProviderHandle{id: id, remove: remove}
	h.state.Store(int32(ProviderStateRegistered))
	return h
}

// ID returns the unique registration identifier.
func (h *ProviderHandle) ID() string {
	return h.id
}

// State returns the current registration state.
func (h *ProviderHandle) State() ProviderState {
	return ProviderState(h.state.Load())
}

// IsRegistered returns true if the provider still participates in calls.
func (h *ProviderHandle) IsRegistered() bool {
	return h.State() == ProviderStateRegistered
}

// Unregister removes the provider from its method. It is an idempotent
// no-op after the first call.
func (h *ProviderHandle) Unregister() {
	if h.state.CompareAndSwap(int32(ProviderStateRegistered), int32(ProviderStateUnregistered)) {
		h.remove(h.id)
	}
}
