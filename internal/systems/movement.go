// Package systems - игровые системы поверх domain.GameState: движение,
// бой, поведение врагов. Системы вызываются только движком (EntityStore
// и GameService), снаружи пакета состояние не мутируется.
package systems

import (
	"math"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
)

// Intent - намерение движения от input-коллаборатора на один хостовый тик.
// MouseDelta - уже потребленная накопленная дельта мыши.
type Intent struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	MouseDelta  float64
}

// MovePlayer применяет намерение: поворот, затем движение со скольжением
// вдоль стен (оси пробуются по отдельности). Возвращает true, если игрок
// реально сместился.
func MovePlayer(state *domain.GameState, in Intent) bool {
	p := &state.Player

	p.Angle += in.MouseDelta * domain.MouseSensitivity
	if in.TurnLeft {
		p.Angle -= domain.PlayerTurnSpeed
	}
	if in.TurnRight {
		p.Angle += domain.PlayerTurnSpeed
	}
	p.Angle = NormalizeAngle(p.Angle)

	dx, dy := 0.0, 0.0
	cos, sin := math.Cos(p.Angle), math.Sin(p.Angle)
	if in.Forward {
		dx += cos
		dy += sin
	}
	if in.Back {
		dx -= cos
		dy -= sin
	}
	if in.StrafeLeft {
		dx += sin
		dy -= cos
	}
	if in.StrafeRight {
		dx -= sin
		dy += cos
	}

	if dx == 0 && dy == 0 {
		return false
	}

	// Нормируем, чтобы диагональ не была быстрее.
	length := math.Hypot(dx, dy)
	dx = dx / length * domain.PlayerSpeed
	dy = dy / length * domain.PlayerSpeed

	moved := false
	if CanStand(state.Grid, p.Pos.X+dx, p.Pos.Y, domain.PlayerRadius) {
		p.Pos.X += dx
		moved = true
	}
	if CanStand(state.Grid, p.Pos.X, p.Pos.Y+dy, domain.PlayerRadius) {
		p.Pos.Y += dy
		moved = true
	}
	return moved
}

// CanStand проверяет, помещается ли круг радиуса radius в точке (x, y).
// Выход за границы читается как стена (bounds-check внутри Blocked).
func CanStand(grid *domain.Grid, x, y, radius float64) bool {
	for _, off := range [4][2]float64{
		{-radius, -radius}, {radius, -radius},
		{-radius, radius}, {radius, radius},
	} {
		cx := int(math.Floor(x + off[0]))
		cy := int(math.Floor(y + off[1]))
		if grid.Blocked(cx, cy) {
			return false
		}
	}
	return true
}

// NormalizeAngle приводит угол к диапазону (-pi, pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Distance - евклидово расстояние между точками мира.
func Distance(a, b domain.Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
