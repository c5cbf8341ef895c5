package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/synapse/internal/execq"
	"github.com/dshills/synapse/internal/method"
	"github.com/dshills/synapse/internal/registry"
)

func newTestHost(t *testing.T) (*Host, *registry.Registry, *execq.Queue) {
	t.Helper()
	reg := registry.New()
	q := execq.NewQueue()
	h := NewHost(reg, q.Executor(execq.PriorityMedium))
	t.Cleanup(func() {
		h.Close()
		reg.Close()
	})
	return h, reg, q
}

func TestHost_ProvideAndCall(t *testing.T) {
	h, reg, _ := newTestHost(t)

	err := h.DoString(`
		synapse.provide("math.double", function(n)
			return n * 2
		end)
	`)
	if err != nil {
		t.Fatalf("DoString() failed: %v", err)
	}

	// The scripted provider is reachable from the Go side of the tag.
	m, err := registry.MethodFor[[]any, any](reg, "math.double")
	if err != nil {
		t.Fatalf("MethodFor() failed: %v", err)
	}
	got, err := m.Call([]any{int64(21)})
	if err != nil {
		t.Fatalf("Call() failed: %v", err)
	}
	if got != int64(42) {
		t.Errorf("Call() = %v (%T), want 42", got, got)
	}
}

func TestHost_CallFromScript(t *testing.T) {
	h, reg, _ := newTestHost(t)

	// Go provider, Lua caller.
	m, err := registry.MethodFor[[]any, any](reg, "greet")
	if err != nil {
		t.Fatalf("MethodFor() failed: %v", err)
	}
	m.RegisterProvider(func(args []any) (any, error) {
		name, _ := args[0].(string)
		return "hello " + name, nil
	})

	err = h.DoString(`result = synapse.call("greet", "synapse")`)
	if err != nil {
		t.Fatalf("DoString() failed: %v", err)
	}

	if err := h.DoString(`assert(result == "hello synapse", result)`); err != nil {
		t.Errorf("unexpected script result: %v", err)
	}
}

func TestHost_Call_AggregateFailureReachesScript(t *testing.T) {
	h, reg, _ := newTestHost(t)

	m, _ := registry.MethodFor[[]any, any](reg, "flaky")
	m.RegisterProvider(func(args []any) (any, error) {
		return nil, errors.New("backend down")
	})

	err := h.DoString(`synapse.call("flaky")`)
	if err == nil {
		t.Fatal("expected the aggregate failure to surface as a Lua error")
	}
	if !strings.Contains(err.Error(), "backend down") {
		t.Errorf("expected provider diagnostic in error, got %v", err)
	}
}

func TestHost_ScriptProviderFailureBecomesDiagnostic(t *testing.T) {
	h, reg, _ := newTestHost(t)

	err := h.DoString(`
		synapse.provide("flaky", function()
			error("scripted failure")
		end)
	`)
	if err != nil {
		t.Fatalf("DoString() failed: %v", err)
	}

	m, _ := registry.MethodFor[[]any, any](reg, "flaky")
	_, err = m.Call(nil)
	if !errors.Is(err, method.ErrNoResult) {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
	if !strings.Contains(err.Error(), "scripted failure") {
		t.Errorf("expected scripted diagnostic, got %v", err)
	}
}

func TestHost_SubscribeAndPublish(t *testing.T) {
	h, _, q := newTestHost(t)

	err := h.DoString(`
		received = {}
		synapse.subscribe("net.peer", function(v)
			received[#received + 1] = v
		end)
		synapse.publish("net.peer", "alpha")
		synapse.publish("net.peer", "beta")
	`)
	if err != nil {
		t.Fatalf("DoString() failed: %v", err)
	}

	// Nothing delivered until the execution context drains the queue.
	if err := h.DoString(`assert(#received == 0)`); err != nil {
		t.Fatalf("expected deferred delivery: %v", err)
	}

	q.ExecuteAll()

	err = h.DoString(`
		assert(#received == 2, "got " .. #received)
		assert(received[1] == "alpha")
		assert(received[2] == "beta")
	`)
	if err != nil {
		t.Errorf("unexpected deliveries: %v", err)
	}
}

func TestHost_Close_ReleasesHandles(t *testing.T) {
	reg := registry.New()
	defer reg.Close()
	q := execq.NewQueue()
	h := NewHost(reg, q.Executor(execq.PriorityMedium))

	err := h.DoString(`
		synapse.subscribe("tick", function(v) end)
		synapse.provide("now", function() return 0 end)
	`)
	if err != nil {
		t.Fatalf("DoString() failed: %v", err)
	}

	ch, _ := registry.ChannelFor[any](reg, "tick", q.Executor(execq.PriorityMedium))
	m, _ := registry.MethodFor[[]any, any](reg, "now")
	if !ch.HasSubscribers() {
		t.Fatal("expected scripted subscription before Close")
	}
	if m.ProviderCount() != 1 {
		t.Fatalf("expected scripted provider before Close, got %d", m.ProviderCount())
	}

	h.Close()

	if ch.HasSubscribers() {
		t.Error("expected subscription released on Close")
	}
	if m.ProviderCount() != 0 {
		t.Error("expected provider released on Close")
	}

	if err := h.DoString(`x = 1`); !errors.Is(err, ErrHostClosed) {
		t.Errorf("expected ErrHostClosed, got %v", err)
	}

	// Idempotent
	h.Close()
}
