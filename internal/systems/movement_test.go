package systems

import (
	"math"
	"testing"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
)

func newMovementState() *domain.GameState {
	state := &domain.GameState{
		Grid:   domain.NewGrid(20),
		Status: domain.StatusPlaying,
	}
	state.Player.Pos = domain.Position{X: 10.5, Y: 10.5}
	state.Player.Angle = 0
	return state
}

func TestMovePlayer_ForwardAdvances(t *testing.T) {
	state := newMovementState()

	moved := MovePlayer(state, Intent{Forward: true})

	if !moved {
		t.Fatal("Player must move on open ground")
	}
	want := 10.5 + domain.PlayerSpeed
	if math.Abs(state.Player.Pos.X-want) > 1e-9 {
		t.Errorf("Expected x=%f, got %f", want, state.Player.Pos.X)
	}
	if state.Player.Pos.Y != 10.5 {
		t.Errorf("Y must not change when facing +X, got %f", state.Player.Pos.Y)
	}
}

func TestMovePlayer_DiagonalIsNormalized(t *testing.T) {
	state := newMovementState()

	MovePlayer(state, Intent{Forward: true, StrafeRight: true})

	dx := state.Player.Pos.X - 10.5
	dy := state.Player.Pos.Y - 10.5
	if math.Abs(math.Hypot(dx, dy)-domain.PlayerSpeed) > 1e-9 {
		t.Errorf("Diagonal speed must equal PlayerSpeed, got %f", math.Hypot(dx, dy))
	}
}

func TestMovePlayer_StopsAtWall(t *testing.T) {
	state := newMovementState()
	state.Grid.Set(11, 10, 1)

	for i := 0; i < 30; i++ {
		MovePlayer(state, Intent{Forward: true})
	}

	// Радиус коллизии держит игрока на x <= 11 - PlayerRadius.
	limit := 11 - domain.PlayerRadius
	if state.Player.Pos.X > limit+1e-9 {
		t.Errorf("Player clipped into the wall: x=%f, limit %f", state.Player.Pos.X, limit)
	}
}

func TestMovePlayer_SlidesAlongWall(t *testing.T) {
	state := newMovementState()
	for x := 0; x < 20; x++ {
		state.Grid.Set(x, 9, 1) // стена сверху
	}
	// Под 45 градусов вверх-вправо: X-компонента должна проходить.
	state.Player.Angle = -math.Pi / 4

	for i := 0; i < 30; i++ {
		MovePlayer(state, Intent{Forward: true})
	}

	if state.Player.Pos.X <= 10.5 {
		t.Error("Blocked axis must not cancel movement on the open axis")
	}
	if state.Player.Pos.Y < 10+domain.PlayerRadius-1e-9 {
		t.Errorf("Player clipped into the wall: y=%f", state.Player.Pos.Y)
	}
}

func TestMovePlayer_TurnAndMouse(t *testing.T) {
	state := newMovementState()

	MovePlayer(state, Intent{TurnRight: true})
	if math.Abs(state.Player.Angle-domain.PlayerTurnSpeed) > 1e-9 {
		t.Errorf("Key turn mismatch: %f", state.Player.Angle)
	}

	MovePlayer(state, Intent{MouseDelta: 100})
	want := domain.PlayerTurnSpeed + 100*domain.MouseSensitivity
	if math.Abs(state.Player.Angle-want) > 1e-9 {
		t.Errorf("Mouse turn mismatch: got %f, want %f", state.Player.Angle, want)
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi + 0.5, -math.Pi + 0.5},
		{-math.Pi - 0.5, math.Pi - 0.5},
		{2 * math.Pi, 0},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}
