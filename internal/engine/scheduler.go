package engine

import "github.com/darianrosebrook/figma-make-doom/pkg/logger"

// Task - отложенная задача симуляции. Отменяема: сброс или остановка
// игры инвалидирует задачи, чтобы они не мутировали уже выброшенное
// состояние.
type Task struct {
	due      float64
	fn       func()
	canceled bool
}

// Cancel помечает задачу отмененной. Идемпотентна.
func (t *Task) Cancel() {
	t.canceled = true
}

// Scheduler - очередь отложенных задач, привязанная к симуляционному
// времени (а не к wall-clock): на паузе задачи тоже стоят.
// Владелец - GameService; вызывается только из хостового тика.
type Scheduler struct {
	tasks []*Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After ставит fn на исполнение через delay секунд симуляционного
// времени от now. Возвращает хендл для отмены.
func (s *Scheduler) After(now, delay float64, fn func()) *Task {
	t := &Task{due: now + delay, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Tick исполняет созревшие задачи и выбрасывает их вместе с отмененными.
func (s *Scheduler) Tick(now float64) {
	if len(s.tasks) == 0 {
		return
	}

	var rest []*Task
	for _, t := range s.tasks {
		switch {
		case t.canceled:
			// выбрасываем
		case t.due <= now:
			t.fn()
		default:
			rest = append(rest, t)
		}
	}
	s.tasks = rest
}

// CancelAll отменяет и выбрасывает все задачи (reset/stop).
func (s *Scheduler) CancelAll() {
	if len(s.tasks) > 0 {
		logger.WithComponent("scheduler").WithField("pending", len(s.tasks)).Debug("Canceling pending tasks.")
	}
	for _, t := range s.tasks {
		t.canceled = true
	}
	s.tasks = nil
}

// Pending - число живых задач (для тестов и отладочного дампа).
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}
