package engine

import (
	"sync"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
	"github.com/darianrosebrook/figma-make-doom/internal/systems"
)

// EdgeEvents - одноразовые события ввода, потребляются ровно один раз
// за хостовый тик.
type EdgeEvents struct {
	Fire        bool
	PauseToggle bool
	Reset       bool
	Weapon      domain.WeaponKind
	HasWeapon   bool
}

// InputState - буфер ввода между транспортом (websocket readPump) и
// хостовым тиком. Это единственная граница, где встречаются две
// горутины, поэтому все под мьютексом; само ядро однопоточное.
type InputState struct {
	mu sync.Mutex

	forward, back           bool
	strafeLeft, strafeRight bool
	turnLeft, turnRight     bool
	mouseDelta              float64

	edges EdgeEvents
}

func NewInputState() *InputState {
	return &InputState{}
}

// SetMovement обновляет непрерывное намерение движения.
func (s *InputState) SetMovement(forward, back, strafeLeft, strafeRight, turnLeft, turnRight bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forward = forward
	s.back = back
	s.strafeLeft = strafeLeft
	s.strafeRight = strafeRight
	s.turnLeft = turnLeft
	s.turnRight = turnRight
}

// AddMouseDelta накапливает дельту мыши до следующего тика.
func (s *InputState) AddMouseDelta(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouseDelta += delta
}

func (s *InputState) QueueFire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges.Fire = true
}

func (s *InputState) QueuePauseToggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges.PauseToggle = true
}

func (s *InputState) QueueReset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges.Reset = true
}

func (s *InputState) QueueWeapon(w domain.WeaponKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges.Weapon = w
	s.edges.HasWeapon = true
}

// Consume отдает намерение движения и одноразовые события, обнуляя
// дельту мыши и события (single-shot семантика).
func (s *InputState) Consume() (systems.Intent, EdgeEvents) {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent := systems.Intent{
		Forward:     s.forward,
		Back:        s.back,
		StrafeLeft:  s.strafeLeft,
		StrafeRight: s.strafeRight,
		TurnLeft:    s.turnLeft,
		TurnRight:   s.turnRight,
		MouseDelta:  s.mouseDelta,
	}
	s.mouseDelta = 0

	edges := s.edges
	s.edges = EdgeEvents{}
	return intent, edges
}
