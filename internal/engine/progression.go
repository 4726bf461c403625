package engine

import (
	"github.com/darianrosebrook/figma-make-doom/internal/domain"
	"github.com/darianrosebrook/figma-make-doom/pkg/logger"
)

// Задержки перед сменой этажа, секунды симуляционного времени.
// На боссовом этаже пауза длиннее (время на фанфары у аудио-клиента).
const (
	advanceDelay     = 0.9
	advanceDelayBoss = 2.2
)

// Progression следит за зачисткой этажа и планирует переход через
// отменяемый планировщик: сброс игры инвалидирует отложенный переход.
type Progression struct {
	store *EntityStore
	sched *Scheduler

	pending *Task
}

func NewProgression(store *EntityStore, sched *Scheduler) *Progression {
	return &Progression{store: store, sched: sched}
}

// Check вызывается раз в хостовый тик. Зачистка этажа (статус victory,
// на боссовом этаже - с поверженным боссом) ставит отложенный переход.
func (p *Progression) Check() {
	snapshot := &p.store.state

	if snapshot.Status != domain.StatusVictory || p.pending != nil {
		return
	}
	if snapshot.BossFloor && !snapshot.BossDefeated {
		return
	}

	delay := advanceDelay
	if snapshot.BossFloor {
		delay = advanceDelayBoss
	}

	floor := snapshot.Floor
	p.pending = p.sched.After(p.store.Time(), delay, func() {
		p.pending = nil
		p.store.AdvanceFloor()
		logger.WithComponent("progression").WithField("floor", floor+1).Info("Advanced to next floor.")
	})
}

// Invalidate отменяет отложенный переход (вызывается при сбросе).
func (p *Progression) Invalidate() {
	if p.pending != nil {
		p.pending.Cancel()
		p.pending = nil
	}
}
