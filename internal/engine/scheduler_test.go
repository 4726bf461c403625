package engine

import "testing"

func TestScheduler_FiresAtDueTime(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(10, 0.9, func() { fired = true })

	s.Tick(10.5)
	if fired {
		t.Fatal("Task fired before due time")
	}
	s.Tick(10.9)
	if !fired {
		t.Fatal("Task must fire at due time")
	}
	if s.Pending() != 0 {
		t.Errorf("Fired task must be discarded, pending %d", s.Pending())
	}
}

func TestScheduler_CancelPreventsExecution(t *testing.T) {
	s := NewScheduler()
	fired := false
	task := s.After(0, 1, func() { fired = true })

	task.Cancel()
	task.Cancel() // идемпотентность
	s.Tick(5)

	if fired {
		t.Error("Canceled task must not execute")
	}
	if s.Pending() != 0 {
		t.Errorf("Canceled task must be discarded, pending %d", s.Pending())
	}
}

func TestScheduler_CancelAll(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(0, 1, func() { fired++ })
	s.After(0, 2, func() { fired++ })

	s.CancelAll()
	s.Tick(10)

	if fired != 0 {
		t.Errorf("CancelAll must drop every task, %d fired", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected empty queue, pending %d", s.Pending())
	}
}

func TestScheduler_IndependentTasks(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.After(0, 2, func() { order = append(order, 2) })
	s.After(0, 1, func() { order = append(order, 1) })

	s.Tick(1.5)
	if len(order) != 1 || order[0] != 1 {
		t.Fatalf("Only the early task is due, got %v", order)
	}
	s.Tick(2.5)
	if len(order) != 2 {
		t.Errorf("Late task must fire on its own due time, got %v", order)
	}
}
