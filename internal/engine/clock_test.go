package engine

import (
	"testing"
	"time"
)

func TestClock_WholeStepsOnly(t *testing.T) {
	c := NewClock()
	base := time.Unix(0, 0)
	c.Advance(base, func() {}) // первый тик только задает базу

	steps := 0
	count := func() { steps++ }

	// 35 мс = 2 целых шага по 1/60 c, остаток копится.
	c.Advance(base.Add(35*time.Millisecond), count)
	if steps != 2 {
		t.Fatalf("Expected 2 steps after 35ms, got %d", steps)
	}

	// Еще 20 мс: остаток 1.67 мс + 20 мс = 1 шаг.
	c.Advance(base.Add(55*time.Millisecond), count)
	if steps != 3 {
		t.Errorf("Expected 3 total steps after 55ms, got %d", steps)
	}
}

func TestClock_PauseAbsorbsWallClock(t *testing.T) {
	c := NewClock()
	base := time.Unix(0, 0)
	c.Advance(base, func() {})

	c.Pause()
	steps := 0
	// Долгая пауза: реальное время уходит, логика стоит.
	if got := c.Advance(base.Add(5*time.Second), func() { steps++ }); got != 0 {
		t.Fatalf("Paused clock must not step, got %d", got)
	}

	c.Resume()
	// Первый тик после снятия паузы задает новую базу: залпа
	// догоняющих шагов быть не должно.
	if got := c.Advance(base.Add(5*time.Second+time.Millisecond), func() { steps++ }); got != 0 {
		t.Fatalf("Resume must not replay paused time, got %d steps", got)
	}
	c.Advance(base.Add(5*time.Second+35*time.Millisecond), func() { steps++ })
	if steps != 2 {
		t.Errorf("Expected 2 steps from post-resume time only, got %d", steps)
	}
}

func TestClock_ClampsLongFrame(t *testing.T) {
	c := NewClock()
	base := time.Unix(0, 0)
	c.Advance(base, func() {})

	steps := 0
	// Подвисший кадр в 2 секунды срезается до 0.25 c = 15 шагов.
	c.Advance(base.Add(2*time.Second), func() { steps++ })
	if steps != 15 {
		t.Errorf("Expected clamp to 15 steps, got %d", steps)
	}
}

func TestClock_ResetClearsState(t *testing.T) {
	c := NewClock()
	base := time.Unix(0, 0)
	c.Advance(base, func() {})
	c.Pause()
	c.Reset()

	if c.Paused() {
		t.Error("Reset must unpause the clock")
	}
	if got := c.Advance(base.Add(time.Hour), func() {}); got != 0 {
		t.Errorf("First tick after reset only re-bases, got %d steps", got)
	}
}
