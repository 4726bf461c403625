package engine

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
	"github.com/darianrosebrook/figma-make-doom/internal/systems"
)

func newTestStore(seed int64) *EntityStore {
	return NewStore(domain.DefaultTuning(), rand.New(rand.NewSource(seed)))
}

func TestStore_ResetDefaults(t *testing.T) {
	s := newTestStore(42)

	p := s.state.Player
	if p.Health != domain.PlayerMaxHealth {
		t.Errorf("Expected full health, got %d", p.Health)
	}
	if p.Weapon != domain.WeaponPistol || !p.HasWeapon(domain.WeaponPistol) {
		t.Error("New game must start with the pistol equipped")
	}
	if p.HasWeapon(domain.WeaponShotgun) || p.HasWeapon(domain.WeaponChaingun) {
		t.Error("Heavier weapons must be locked at start")
	}
	if p.Ammo[domain.WeaponPistol] != s.tuning.Weapons[domain.WeaponPistol].StartAmmo {
		t.Errorf("Pistol ammo mismatch: %d", p.Ammo[domain.WeaponPistol])
	}
	if s.state.Floor != 1 || s.state.BossFloor {
		t.Errorf("New game starts on floor 1, got %d (boss=%v)", s.state.Floor, s.state.BossFloor)
	}
	if len(s.state.Enemies) == 0 {
		t.Error("Floor must be populated with enemies")
	}
}

func TestStore_SwitchWeaponGuard(t *testing.T) {
	s := newTestStore(42)

	if s.SwitchWeapon(domain.WeaponShotgun) {
		t.Error("Switch to a locked weapon must be a defined no-op")
	}
	if s.state.Player.Weapon != domain.WeaponPistol {
		t.Error("Current weapon must survive a rejected switch")
	}

	s.state.Player.Available[domain.WeaponShotgun] = true
	if !s.SwitchWeapon(domain.WeaponShotgun) {
		t.Error("Switch to an unlocked weapon must succeed")
	}
	if s.state.Player.Weapon != domain.WeaponShotgun {
		t.Error("Weapon not switched")
	}
}

func TestStore_HealthPickupClamped(t *testing.T) {
	s := newTestStore(42)
	s.state.Player.Health = 90
	s.state.Pickups = []domain.Pickup{{
		ID: 999, Kind: domain.PickupHealth, Value: 50,
		Pos: s.state.Player.Pos,
	}}

	s.Step()

	if s.state.Player.Health != domain.PlayerMaxHealth {
		t.Errorf("Health must clamp to max, got %d", s.state.Player.Health)
	}
	if len(s.state.Pickups) != 0 {
		t.Error("Collected pickup must leave the floor")
	}
}

func TestStore_AmmoPickupGoesToCurrentWeapon(t *testing.T) {
	s := newTestStore(42)
	s.state.Pickups = []domain.Pickup{{
		ID: 999, Kind: domain.PickupAmmo, Value: 1000,
		Pos: s.state.Player.Pos,
	}}

	s.Step()

	max := s.tuning.Weapons[domain.WeaponPistol].MaxAmmo
	if got := s.state.Player.Ammo[domain.WeaponPistol]; got != max {
		t.Errorf("Ammo must clamp to weapon max %d, got %d", max, got)
	}
	if s.state.Player.Ammo[domain.WeaponShotgun] != 0 {
		t.Error("Ammo pickup must only feed the current weapon")
	}
}

func TestStore_WeaponPickupAutoEquips(t *testing.T) {
	s := newTestStore(42)
	s.state.Pickups = []domain.Pickup{{
		ID: 999, Kind: domain.PickupWeapon, Weapon: domain.WeaponChaingun, Value: 10,
		Pos: s.state.Player.Pos,
	}}

	s.Step()

	p := s.state.Player
	if !p.HasWeapon(domain.WeaponChaingun) {
		t.Fatal("Picked up weapon must unlock")
	}
	if p.Weapon != domain.WeaponChaingun {
		t.Error("Picked up weapon must auto-equip")
	}
	if p.Ammo[domain.WeaponChaingun] != 10 {
		t.Errorf("Weapon pickup must grant its ammo, got %d", p.Ammo[domain.WeaponChaingun])
	}
}

func TestStore_DefeatOnZeroHealth(t *testing.T) {
	s := newTestStore(42)
	s.state.Player.Health = -5 // урон может увести ниже нуля за один удар

	s.Step()

	if s.Status() != domain.StatusDefeat {
		t.Fatalf("Expected DEFEAT, got %s", s.Status().String())
	}
	if s.state.Player.Health != 0 {
		t.Errorf("Health must clamp at 0, got %d", s.state.Player.Health)
	}
}

func TestStore_VictoryOnLastEnemy(t *testing.T) {
	s := newTestStore(42)
	s.state.Enemies = nil

	s.Step()

	if s.Status() != domain.StatusVictory {
		t.Fatalf("Expected VICTORY, got %s", s.Status().String())
	}
	if s.state.BossDefeated {
		t.Error("Boss flag must stay down on a regular floor")
	}
}

func TestStore_BossFloorVictorySetsFlag(t *testing.T) {
	s := newTestStore(42)
	s.state.BossFloor = true
	s.state.Enemies = nil

	s.Step()

	if s.Status() != domain.StatusVictory || !s.state.BossDefeated {
		t.Errorf("Boss floor clear must raise the defeated flag (status %s, flag %v)",
			s.Status().String(), s.state.BossDefeated)
	}
}

func TestStore_PauseGuards(t *testing.T) {
	s := newTestStore(42)

	if !s.SetPaused(true) || s.Status() != domain.StatusPaused {
		t.Fatal("Pause from PLAYING must succeed")
	}
	if s.SetPaused(true) {
		t.Error("Double pause must be rejected")
	}
	if !s.SetPaused(false) || s.Status() != domain.StatusPlaying {
		t.Fatal("Resume from PAUSED must succeed")
	}

	s.state.Status = domain.StatusDefeat
	if s.SetPaused(true) {
		t.Error("Pause from a terminal status must be rejected")
	}
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := newTestStore(42)
	snap := s.Snapshot()
	if len(snap.Enemies) == 0 {
		t.Fatal("Expected populated snapshot")
	}

	snap.Enemies[0].Health = -12345
	snap.Player.Health = -1

	if s.state.Enemies[0].Health == -12345 {
		t.Error("Mutating a snapshot must not leak into the live state")
	}
	if s.state.Player.Health == -1 {
		t.Error("Snapshot player must be a copy")
	}
}

func TestStore_DeterministicBySeed(t *testing.T) {
	a := newTestStore(7)
	b := newTestStore(7)

	for i := 0; i < 120; i++ {
		a.Step()
		a.UpdateAI()
		b.Step()
		b.UpdateAI()
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if !reflect.DeepEqual(sa.Enemies, sb.Enemies) {
		t.Error("Same seed must produce identical enemy populations")
	}
	if !reflect.DeepEqual(sa.Pickups, sb.Pickups) {
		t.Error("Same seed must produce identical pickups")
	}
	if sa.Grid.Size != sb.Grid.Size {
		t.Error("Same seed must produce identical floors")
	}
}

func TestStore_FootstepCadence(t *testing.T) {
	s := newTestStore(42)

	// Топчемся в расчищенной окрестности спавна: каждый хостовый тик
	// засчитывается движением, счетчик каденции растет.
	for i := 0; i < domain.FootstepInterval; i++ {
		if i%2 == 0 {
			s.MovePlayer(systems.Intent{Forward: true})
		} else {
			s.MovePlayer(systems.Intent{Back: true})
		}
	}

	found := false
	for _, ev := range s.DrainEvents() {
		if ev.Kind == domain.SoundFootstep {
			found = true
		}
	}
	if !found {
		t.Error("Expected a footstep event after a full movement interval")
	}

	// Тик без движения сбрасывает каденцию.
	s.MovePlayer(systems.Intent{})
	if s.footstepTick != 0 {
		t.Errorf("Idle tick must reset the cadence counter, got %d", s.footstepTick)
	}
}

func TestFloorSize_GrowsAndCaps(t *testing.T) {
	cases := []struct{ floor, want int }{
		{1, 24}, {2, 28}, {5, 40}, {7, 48}, {20, 48},
	}
	for _, c := range cases {
		if got := floorSize(c.floor); got != c.want {
			t.Errorf("floorSize(%d) = %d, want %d", c.floor, got, c.want)
		}
	}
}
