package method

import (
	"errors"
	"strings"
	"testing"
)

func TestMethod_Call_FirstSuccessByPriority(t *testing.T) {
	m := New[int, string]()

	calls := make(map[string]int)
	register := func(name string, priority int, fn Provider[int, string]) {
		t.Helper()
		wrapped := func(req int) (string, error) {
			calls[name]++
			return fn(req)
		}
		if _, err := m.RegisterProvider(wrapped, WithPriority(priority)); err != nil {
			t.Fatalf("RegisterProvider(%s) failed: %v", name, err)
		}
	}

	// Registered out of order on purpose: priority 5 must be tried before
	// 10, and 20 must never run once 5 succeeds.
	register("p10", 10, func(req int) (string, error) {
		return "", errors.New("p10 failed")
	})
	register("p5", 5, func(req int) (string, error) {
		return "from p5", nil
	})
	register("p20", 20, func(req int) (string, error) {
		return "", errors.New("p20 failed")
	})

	got, err := m.Call(1)
	if err != nil {
		t.Fatalf("Call() failed: %v", err)
	}
	if got != "from p5" {
		t.Errorf("Call() = %q, want %q", got, "from p5")
	}
	if calls["p10"] != 1 {
		t.Errorf("priority-10 provider called %d times, want 1", calls["p10"])
	}
	if calls["p20"] != 0 {
		t.Errorf("priority-20 provider called %d times, want 0", calls["p20"])
	}
}

func TestMethod_Call_NoProviders(t *testing.T) {
	m := New[int, int]()

	_, err := m.Call(1)
	if !errors.Is(err, ErrNoResult) {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *ExhaustedError, got %T", err)
	}
	if len(exhausted.Errs) != 0 {
		t.Errorf("expected empty diagnostic list, got %v", exhausted.Errs)
	}
}

func TestMethod_Call_AllProvidersFail(t *testing.T) {
	m := New[int, int]()

	m.RegisterProvider(func(req int) (int, error) {
		return 0, errors.New("first failure")
	}, WithPriority(1))
	m.RegisterProvider(func(req int) (int, error) {
		panic("second failure")
	}, WithPriority(2))

	_, err := m.Call(1)
	if !errors.Is(err, ErrNoResult) {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *ExhaustedError, got %T", err)
	}
	if len(exhausted.Errs) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(exhausted.Errs))
	}
	if exhausted.Errs[0].Error() != "first failure" {
		t.Errorf("diagnostics out of provider order: %v", exhausted.Errs)
	}
	if !strings.Contains(exhausted.Errs[1].Error(), "second failure") {
		t.Errorf("panic diagnostic missing: %v", exhausted.Errs[1])
	}
	if !strings.Contains(err.Error(), `","`) {
		t.Errorf("expected diagnostics joined by separator, got %q", err.Error())
	}
}

func TestMethod_Call_SamePriorityRegistrationOrder(t *testing.T) {
	m := New[int, string]()

	m.RegisterProvider(func(req int) (string, error) {
		return "", errors.New("first")
	})
	m.RegisterProvider(func(req int) (string, error) {
		return "second", nil
	})

	got, err := m.Call(1)
	if err != nil {
		t.Fatalf("Call() failed: %v", err)
	}
	if got != "second" {
		t.Errorf("Call() = %q, want the second same-priority provider", got)
	}
}

func TestMethod_RegisterProvider_Nil(t *testing.T) {
	m := New[int, int]()
	if _, err := m.RegisterProvider(nil); !errors.Is(err, ErrNilProvider) {
		t.Errorf("expected ErrNilProvider, got %v", err)
	}
}

func TestProviderHandle_Unregister(t *testing.T) {
	m := New[int, int]()

	keepCalls := 0
	m.RegisterProvider(func(req int) (int, error) {
		keepCalls++
		return 0, errors.New("keep fails")
	}, WithPriority(1))

	dropCalls := 0
	handle, err := m.RegisterProvider(func(req int) (int, error) {
		dropCalls++
		return req * 2, nil
	}, WithPriority(2))
	if err != nil {
		t.Fatalf("RegisterProvider() failed: %v", err)
	}
	if !handle.IsRegistered() {
		t.Error("expected handle to start registered")
	}

	if _, err := m.Call(3); err != nil {
		t.Fatalf("Call() before unregister failed: %v", err)
	}
	if dropCalls != 1 {
		t.Fatalf("expected provider to run once before unregister, got %d", dropCalls)
	}

	handle.Unregister()
	if handle.IsRegistered() {
		t.Error("expected handle to be unregistered")
	}
	if handle.State() != ProviderStateUnregistered {
		t.Errorf("State() = %v, want unregistered", handle.State())
	}

	// Removes exactly that provider - the other one remains.
	if m.ProviderCount() != 1 {
		t.Errorf("ProviderCount() = %d, want 1", m.ProviderCount())
	}

	if _, err := m.Call(3); !errors.Is(err, ErrNoResult) {
		t.Errorf("expected ErrNoResult after unregistering the only succeeding provider, got %v", err)
	}
	if dropCalls != 1 {
		t.Errorf("unregistered provider was called again: %d", dropCalls)
	}

	// Double unregister is a no-op, not an error.
	handle.Unregister()
	if m.ProviderCount() != 1 {
		t.Errorf("double Unregister changed provider count: %d", m.ProviderCount())
	}
}

func TestMethod_Close(t *testing.T) {
	m := New[int, int]()

	handle, _ := m.RegisterProvider(func(req int) (int, error) { return req, nil })
	m.Close()

	if m.ProviderCount() != 0 {
		t.Errorf("ProviderCount() = %d after Close, want 0", m.ProviderCount())
	}

	// A handle outliving Close stays safe to unregister.
	handle.Unregister()
}

func TestMethod_WithResolutionPolicy(t *testing.T) {
	// A policy that sums every provider's result instead of stopping at
	// the first success.
	policy := sumPolicy{}
	m := New[int, int](WithResolutionPolicy[int, int](policy))

	m.RegisterProvider(func(req int) (int, error) { return req, nil })
	m.RegisterProvider(func(req int) (int, error) { return req * 10, nil })

	got, err := m.Call(2)
	if err != nil {
		t.Fatalf("Call() failed: %v", err)
	}
	if got != 22 {
		t.Errorf("Call() = %d, want 22", got)
	}
}

type sumPolicy struct{}

func (sumPolicy) Resolve(req int, providers []Provider[int, int]) (int, error) {
	total := 0
	for _, p := range providers {
		v, err := p(req)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}
