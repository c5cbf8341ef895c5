package execq

import "testing"

func TestExecutor_Submission(t *testing.T) {
	q := NewQueue()
	exec := q.Executor(PriorityMedium)

	ran := make(map[string]bool)
	exec.Post(func() { ran["post"] = true })
	exec.Dispatch(func() { ran["dispatch"] = true })
	exec.Defer(func() { ran["defer"] = true })

	if q.Len() != 3 {
		t.Fatalf("expected 3 pending actions, got %d", q.Len())
	}

	// None of the three may run inline; all are deferred until drain.
	if len(ran) != 0 {
		t.Errorf("expected no inline execution, got %v", ran)
	}

	q.ExecuteAll()
	for _, name := range []string{"post", "dispatch", "defer"} {
		if !ran[name] {
			t.Errorf("%s action did not run", name)
		}
	}
}

func TestExecutor_PriorityBinding(t *testing.T) {
	q := NewQueue()

	var order []string
	q.Executor(PriorityLow).Post(func() { order = append(order, "low") })
	q.Executor(PriorityHigh).Post(func() { order = append(order, "high") })

	q.ExecuteAll()

	if len(order) != 2 || order[0] != "high" || order[1] != "low" {
		t.Errorf("expected [high low], got %v", order)
	}
}

func TestExecutor_Equality(t *testing.T) {
	q1 := NewQueue()
	q2 := NewQueue()

	if q1.Executor(PriorityHigh) != q1.Executor(PriorityHigh) {
		t.Error("executors with same queue and priority should compare equal")
	}
	if q1.Executor(PriorityHigh) == q1.Executor(PriorityLow) {
		t.Error("executors with different priorities should not compare equal")
	}
	if q1.Executor(PriorityHigh) == q2.Executor(PriorityHigh) {
		t.Error("executors on different queues should not compare equal")
	}
}

func TestExecutor_Context(t *testing.T) {
	q := NewQueue()
	exec := q.Executor(PriorityLow)

	if exec.Context() != q {
		t.Error("Context() did not return the bound queue")
	}
	if exec.Priority() != PriorityLow {
		t.Errorf("Priority() = %v, want %v", exec.Priority(), PriorityLow)
	}
}
