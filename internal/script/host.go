package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/synapse/internal/channel"
	"github.com/dshills/synapse/internal/method"
	"github.com/dshills/synapse/internal/registry"
)

// ErrHostClosed is returned when running sources on a closed host.
var ErrHostClosed = errors.New("script host is closed")

// Host runs Lua sources against the Synapse dispatch surface. Handles
// acquired by scripts (subscriptions, provider registrations) are owned by
// the host and released on Close, so an unloaded script stops receiving
// deliveries and stops providing.
type Host struct {
	reg  *registry.Registry
	exec channel.Poster

	mu        sync.Mutex
	state     *lua.LState
	subs      []*channel.Subscription
	providers []*method.ProviderHandle
	closed    bool
}

// NewHost creates a host whose scripts publish through exec and rendezvous
// with other components via reg.
func NewHost(reg *registry.Registry, exec channel.Poster) *Host {
	h := &Host{
		reg:   reg,
		exec:  exec,
		state: lua.NewState(),
	}
	h.install()
	return h
}

// install publishes the synapse table into the Lua state.
func (h *Host) install() {
	L := h.state
	tbl := L.NewTable()
	L.SetField(tbl, "publish", L.NewFunction(h.luaPublish))
	L.SetField(tbl, "subscribe", L.NewFunction(h.luaSubscribe))
	L.SetField(tbl, "provide", L.NewFunction(h.luaProvide))
	L.SetField(tbl, "call", L.NewFunction(h.luaCall))
	L.SetGlobal("synapse", tbl)
}

// DoString runs a Lua chunk.
func (h *Host) DoString(source string) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return ErrHostClosed
	}
	if err := h.state.DoString(source); err != nil {
		return fmt.Errorf("run script: %w", err)
	}
	return nil
}

// DoFile runs a Lua source file.
func (h *Host) DoFile(path string) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return ErrHostClosed
	}
	if err := h.state.DoFile(path); err != nil {
		return fmt.Errorf("run script %s: %w", path, err)
	}
	return nil
}

// Close releases every handle the host's scripts acquired and shuts down the
// Lua state. Close is idempotent.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true

	for _, sub := range h.subs {
		sub.Unsubscribe()
	}
	for _, handle := range h.providers {
		handle.Unregister()
	}
	h.subs = nil
	h.providers = nil
	h.state.Close()
}

// luaPublish implements synapse.publish(tag, value).
func (h *Host) luaPublish(L *lua.LState) int {
	tag := L.CheckString(1)
	value := toGo(L.Get(2))

	ch, err := registry.ChannelFor[any](h.reg, registry.Tag(tag), h.exec)
	if err != nil {
		L.RaiseError("publish %s: %v", tag, err)
		return 0
	}
	ch.Publish(value)
	return 0
}

// luaSubscribe implements synapse.subscribe(tag, fn).
func (h *Host) luaSubscribe(L *lua.LState) int {
	tag := L.CheckString(1)
	fn := L.CheckFunction(2)

	ch, err := registry.ChannelFor[any](h.reg, registry.Tag(tag), h.exec)
	if err != nil {
		L.RaiseError("subscribe %s: %v", tag, err)
		return 0
	}

	sub, err := ch.Subscribe(func(value any) error {
		L.Push(fn)
		L.Push(toLua(L, value))
		return L.PCall(1, 0, nil)
	})
	if err != nil {
		L.RaiseError("subscribe %s: %v", tag, err)
		return 0
	}

	h.mu.Lock()
	h.subs = append(h.subs, sub)
	h.mu.Unlock()
	return 0
}

// luaProvide implements synapse.provide(tag, fn [, priority]).
func (h *Host) luaProvide(L *lua.LState) int {
	tag := L.CheckString(1)
	fn := L.CheckFunction(2)
	priority := L.OptInt(3, 0)

	m, err := registry.MethodFor[[]any, any](h.reg, registry.Tag(tag))
	if err != nil {
		L.RaiseError("provide %s: %v", tag, err)
		return 0
	}

	handle, err := m.RegisterProvider(func(args []any) (any, error) {
		L.Push(fn)
		for _, arg := range args {
			L.Push(toLua(L, arg))
		}
		if err := L.PCall(len(args), 1, nil); err != nil {
			return nil, err
		}
		ret := L.Get(-1)
		L.Pop(1)
		return toGo(ret), nil
	}, method.WithPriority(priority))
	if err != nil {
		L.RaiseError("provide %s: %v", tag, err)
		return 0
	}

	h.mu.Lock()
	h.providers = append(h.providers, handle)
	h.mu.Unlock()
	return 0
}

// luaCall implements synapse.call(tag, ...). The method's aggregate failure
// surfaces as a Lua error at the call site.
func (h *Host) luaCall(L *lua.LState) int {
	tag := L.CheckString(1)

	top := L.GetTop()
	args := make([]any, 0, top-1)
	for i := 2; i <= top; i++ {
		args = append(args, toGo(L.Get(i)))
	}

	m, err := registry.MethodFor[[]any, any](h.reg, registry.Tag(tag))
	if err != nil {
		L.RaiseError("call %s: %v", tag, err)
		return 0
	}

	resp, err := m.Call(args)
	if err != nil {
		L.RaiseError("call %s: %v", tag, err)
		return 0
	}

	L.Push(toLua(L, resp))
	return 1
}
