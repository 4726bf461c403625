package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
	"github.com/darianrosebrook/figma-make-doom/internal/network"
	"github.com/darianrosebrook/figma-make-doom/pkg/api"
	"github.com/darianrosebrook/figma-make-doom/pkg/logger"
)

// hostTickRate - частота хостовых тиков. Логика при этом идет
// фиксированным шагом через Clock и от этой частоты не зависит.
const hostTickRate = 60

// GameService связывает все части ядра: стор, часы, планировщик,
// прогрессию, буфер ввода и рассылку снапшотов. Вся симуляция
// выполняется синхронно внутри Tick - никакого параллелизма в ядре.
type GameService struct {
	Input *InputState
	Hub   *network.Broadcaster

	store       *EntityStore
	clock       *Clock
	sched       *Scheduler
	progression *Progression

	cfg Config
	rng *rand.Rand
	log *logrus.Entry

	// Номер этажа, карту которого уже разослали: Grid кладется в
	// сообщение только при расхождении.
	sentGridFloor int

	// Кэш последнего опубликованного снапшота - единственное место,
	// где горутины транспорта и отладки читают состояние. Пишет
	// только тиковый цикл; живое состояние из чужих горутин не видно.
	mu        sync.RWMutex
	lastFull  api.ServerMessage
	lastState domain.GameState

	stop chan struct{}
	done chan struct{}
}

// NewService собирает движок. Ошибка возможна только из-за конфига баланса.
func NewService(cfg Config) (*GameService, error) {
	tuning, err := LoadTuning(cfg.TuningPath)
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	s := &GameService{
		Input:       NewInputState(),
		Hub:         network.NewBroadcaster(),
		store:       NewStore(tuning, rng),
		clock:       NewClock(),
		sched:       NewScheduler(),
		cfg:         cfg,
		rng:         rng,
		log:         logger.WithComponent("game_service"),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	s.progression = NewProgression(s.store, s.sched)
	// Кэш заполняется до старта цикла: клиент, подключившийся раньше
	// первого тика, уже получит полный снапшот.
	s.cacheSnapshot(s.buildMessage(true, nil))

	s.log.WithField("seed", cfg.Seed).Info("Game service initialized.")
	return s, nil
}

// Run крутит хостовые тики до Stop. Запускается в своей горутине.
func (s *GameService) Run() {
	ticker := time.NewTicker(time.Second / hostTickRate)
	defer ticker.Stop()
	defer close(s.done)

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.Tick(now)
		}
	}
}

// Stop останавливает цикл и инвалидирует отложенные задачи.
func (s *GameService) Stop() {
	close(s.stop)
	<-s.done
	s.sched.CancelAll()
	s.log.Info("Game service stopped.")
}

// Tick - один хостовый тик: потребить ввод, прокрутить фиксированные
// шаги, раз в тик обработать движение/бой/AI, опубликовать снапшот.
func (s *GameService) Tick(now time.Time) {
	intent, edges := s.Input.Consume()

	if edges.Reset {
		s.Reset()
		return
	}
	if edges.PauseToggle {
		s.togglePause()
	}

	// Фиксированные шаги: таймеры -> подбор предметов -> статус.
	s.clock.Advance(now, s.store.Step)

	// Движение, бой и AI идут раз в хостовый тик, по последнему
	// накопленному состоянию.
	if !s.clock.Paused() && s.store.Status() == domain.StatusPlaying {
		s.store.MovePlayer(intent)
		if edges.HasWeapon {
			s.store.SwitchWeapon(edges.Weapon)
		}
		if edges.Fire {
			s.store.Shoot()
		}
		s.store.UpdateAI()
	}

	s.progression.Check()
	s.sched.Tick(s.store.Time())

	s.publish()
}

// togglePause согласует паузу часов и статус игры.
func (s *GameService) togglePause() {
	if s.clock.Paused() {
		if s.store.SetPaused(false) {
			s.clock.Resume()
			s.log.Debug("Game resumed.")
		}
		return
	}
	if s.store.SetPaused(true) {
		s.clock.Pause()
		s.log.Debug("Game paused.")
	}
}

// Reset - полный сброс: отложенные задачи инвалидируются ДО пересоздания
// состояния, чтобы ни одна не мутировала уже выброшенный этаж.
func (s *GameService) Reset() {
	s.progression.Invalidate()
	s.sched.CancelAll()
	s.store.Reset()
	s.clock.Reset()
	s.sentGridFloor = 0
	// Тик после сброса завершается без publish; кэш обновляется здесь,
	// чтобы подключающиеся клиенты не увидели выброшенный этаж.
	s.cacheSnapshot(s.buildMessage(true, nil))
	s.log.Info("Game reset.")
}

// publish рассылает снапшот подписчикам и обновляет кэш.
// Буфер звуковых событий опустошается только здесь, в тиковом цикле.
func (s *GameService) publish() {
	includeGrid := s.store.state.Floor != s.sentGridFloor
	msg := s.buildMessage(includeGrid, s.store.DrainEvents())
	if includeGrid {
		s.sentGridFloor = s.store.state.Floor
	}
	s.cacheSnapshot(msg)
	s.Hub.Broadcast(msg)
}

// Snapshot отдает копию последнего опубликованного состояния
// (отладочный дамп, тесты). Безопасен из чужих горутин.
func (s *GameService) Snapshot() domain.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastState.Clone()
}
