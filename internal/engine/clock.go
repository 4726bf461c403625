package engine

import (
	"time"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
)

// Clock - драйвер фиксированного шага. Накапливает реальное время
// между хостовыми тиками и выполняет целое число логических шагов
// по 1/60 c, что делает таймеры и каденцию AI независимыми от
// частоты кадров хоста.
type Clock struct {
	accumulator float64
	last        time.Time
	hasLast     bool
	paused      bool
}

func NewClock() *Clock {
	return &Clock{}
}

// Paused - стоит ли логическое время.
func (c *Clock) Paused() bool {
	return c.paused
}

// Pause останавливает логическое время; реальное время поглощается.
func (c *Clock) Pause() {
	c.paused = true
}

// Resume снимает паузу. Аккумулятор сбрасывается, чтобы после долгой
// паузы не случился залп догоняющих шагов.
func (c *Clock) Resume() {
	c.paused = false
	c.accumulator = 0
	c.hasLast = false
}

// Reset полностью сбрасывает часы (новая игра).
func (c *Clock) Reset() {
	c.accumulator = 0
	c.hasLast = false
	c.paused = false
}

// Advance принимает метку времени хостового тика и выполняет step()
// за каждый целый накопленный шаг. Возвращает число выполненных шагов.
func (c *Clock) Advance(now time.Time, step func()) int {
	if c.paused {
		// Поглощаем реальное время, не продвигая логику.
		c.last = now
		c.hasLast = true
		return 0
	}
	if !c.hasLast {
		c.last = now
		c.hasLast = true
		return 0
	}

	elapsed := now.Sub(c.last).Seconds()
	c.last = now

	// Предохранитель от "спирали смерти" после подвисшего кадра.
	if elapsed > 0.25 {
		elapsed = 0.25
	}
	if elapsed < 0 {
		elapsed = 0
	}
	c.accumulator += elapsed

	steps := 0
	for c.accumulator >= domain.FixedStep {
		step()
		c.accumulator -= domain.FixedStep
		steps++
	}
	return steps
}
