package systems

import (
	"math/rand"
	"testing"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
)

// Helper: открытая арена 30x30 с игроком в (10,10), смотрит вдоль +X.
func newCombatState() *domain.GameState {
	state := &domain.GameState{
		Grid:   domain.NewGrid(30),
		Status: domain.StatusPlaying,
	}
	p := &state.Player
	p.Pos = domain.Position{X: 10, Y: 10}
	p.Angle = 0
	p.MaxHealth = 100
	p.Health = 100
	p.Weapon = domain.WeaponPistol
	p.Available[domain.WeaponPistol] = true
	p.Ammo[domain.WeaponPistol] = 24
	return state
}

func addEnemy(state *domain.GameState, id int, class domain.EnemyClass, x, y float64, health int) {
	state.Enemies = append(state.Enemies, domain.Enemy{
		ID: id, Class: class,
		Pos:    domain.Position{X: x, Y: y},
		Health: health, MaxHealth: health,
		State: domain.AIStateIdle,
	})
}

func TestShoot_PistolFalloffScenario(t *testing.T) {
	state := newCombatState()
	tuning := domain.DefaultTuning()
	addEnemy(state, 1, domain.ClassGrunt, 20, 10, 100)

	res := Shoot(state, tuning, rand.New(rand.NewSource(1)))

	if !res.Fired {
		t.Fatal("Shot should fire")
	}
	if res.HitID != 1 {
		t.Fatalf("Expected hit on enemy 1, got %d", res.HitID)
	}
	// Дистанция 10 из 15: спад 1 - 0.2*(10/15) = 0.8667 >= пола 0.8.
	// Урон floor(12 * 0.8667) = 10.
	if res.Damage != 10 {
		t.Errorf("Expected damage 10, got %d", res.Damage)
	}
	if state.Enemies[0].Health != 90 {
		t.Errorf("Enemy health mismatch: got %d, want 90", state.Enemies[0].Health)
	}
	if state.Player.Ammo[domain.WeaponPistol] != 23 {
		t.Errorf("Ammo not decremented: %d", state.Player.Ammo[domain.WeaponPistol])
	}
	if state.Player.AttackTimer == 0 || state.Player.FlashTimer == 0 {
		t.Error("Attack/flash timers not set")
	}
}

func TestShoot_ShotgunRangeBoundary(t *testing.T) {
	state := newCombatState()
	tuning := domain.DefaultTuning()
	state.Player.Weapon = domain.WeaponShotgun
	state.Player.Available[domain.WeaponShotgun] = true
	state.Player.Ammo[domain.WeaponShotgun] = 5
	addEnemy(state, 1, domain.ClassGrunt, 18, 10, 100)

	res := Shoot(state, tuning, rand.New(rand.NewSource(1)))

	// Враг ровно на границе дальности (8): спад упирается в пол 0.3.
	// Урон floor(22 * 0.3) = 6.
	if res.HitID != 1 {
		t.Fatalf("Expected boundary hit, got HitID %d", res.HitID)
	}
	if res.Damage != 6 {
		t.Errorf("Expected floor damage 6, got %d", res.Damage)
	}
}

func TestShoot_NoAmmoIsNoop(t *testing.T) {
	state := newCombatState()
	tuning := domain.DefaultTuning()
	state.Player.Ammo[domain.WeaponPistol] = 0
	addEnemy(state, 1, domain.ClassGrunt, 12, 10, 100)

	res := Shoot(state, tuning, rand.New(rand.NewSource(1)))

	if res.Fired {
		t.Error("Shot with zero ammo must be a defined no-op")
	}
	if state.Enemies[0].Health != 100 {
		t.Error("Enemy must be untouched")
	}
}

func TestShoot_PausedIsNoop(t *testing.T) {
	state := newCombatState()
	tuning := domain.DefaultTuning()
	state.Status = domain.StatusPaused

	res := Shoot(state, tuning, rand.New(rand.NewSource(1)))

	if res.Fired {
		t.Error("Shot while paused must be a defined no-op")
	}
	if state.Player.Ammo[domain.WeaponPistol] != 24 {
		t.Error("Ammo must not be spent while paused")
	}
}

func TestShoot_WallOcclusion(t *testing.T) {
	state := newCombatState()
	tuning := domain.DefaultTuning()
	// Стена между стрелком и целью.
	state.Grid.Set(15, 10, 1)
	addEnemy(state, 1, domain.ClassGrunt, 20, 10, 100)

	res := Shoot(state, tuning, rand.New(rand.NewSource(1)))

	if !res.Fired {
		t.Fatal("Shot still fires (ammo spent) even when occluded")
	}
	if res.HitID != 0 {
		t.Errorf("Wall must occlude the enemy, got hit on %d", res.HitID)
	}
	if state.Enemies[0].Health != 100 {
		t.Error("Occluded enemy must be untouched")
	}
}

func TestShoot_OutsideAccuracyCone(t *testing.T) {
	state := newCombatState()
	tuning := domain.DefaultTuning()
	// Смещение в 5 клеток вбок: отклонение ~0.46 рад > полуугла 0.2.
	addEnemy(state, 1, domain.ClassGrunt, 20, 15, 100)

	res := Shoot(state, tuning, rand.New(rand.NewSource(1)))

	if res.HitID != 0 {
		t.Errorf("Enemy outside accuracy cone must not be hit, got %d", res.HitID)
	}
}

func TestShoot_KillRemovesFromLiveSet(t *testing.T) {
	state := newCombatState()
	tuning := domain.DefaultTuning()
	addEnemy(state, 7, domain.ClassGrunt, 12, 10, 5)

	res := Shoot(state, tuning, rand.New(rand.NewSource(1)))

	if !res.Killed {
		t.Fatal("Enemy with 5 HP must die from a pistol hit")
	}
	// Инвариант: здоровье <= 0 означает отсутствие в живом наборе
	// в том же шаге разрешения.
	if len(state.Enemies) != 0 {
		t.Errorf("Dead enemy still in live set: %d entries", len(state.Enemies))
	}
}

func TestShoot_FirstMatchInPopulationOrder(t *testing.T) {
	state := newCombatState()
	tuning := domain.DefaultTuning()
	// Дальний враг стоит в популяции раньше ближнего. Сортировки по
	// дистанции нет намеренно: побеждает первый подходящий.
	addEnemy(state, 1, domain.ClassGrunt, 20, 10, 100)
	addEnemy(state, 2, domain.ClassGrunt, 14, 10, 100)

	res := Shoot(state, tuning, rand.New(rand.NewSource(1)))

	if res.HitID != 1 {
		t.Errorf("First eligible enemy in population order must win, got %d", res.HitID)
	}
	if state.Enemies[1].Health != 100 {
		t.Error("Only one enemy per shot may take damage")
	}
}

func TestShoot_BossPhaseTransition(t *testing.T) {
	state := newCombatState()
	tuning := domain.DefaultTuning()

	boss := domain.Enemy{
		ID: 1, Class: domain.ClassSummoner,
		Pos:             domain.Position{X: 12, Y: 10},
		MaxHealth:       350,
		Health:          240, // доля 0.686, чуть выше порога 0.66
		State:           domain.AIStateChasing,
		PhaseThresholds: []float64{0.66, 0.33},
		MinionBudget:    6,
	}
	state.Enemies = append(state.Enemies, boss)

	res := Shoot(state, tuning, rand.New(rand.NewSource(1)))

	if res.HitID != 1 {
		t.Fatal("Boss must be hit")
	}
	e := &state.Enemies[0]
	if e.Phase != 1 {
		t.Errorf("Expected phase 1 after crossing threshold, got %d", e.Phase)
	}
	// Эффект фазы Summoner: +2 миньона в бюджет.
	if e.MinionBudget != 8 {
		t.Errorf("Expected minion budget 8 after phase up, got %d", e.MinionBudget)
	}
}

func TestFalloffDamage_NonShotgunFloor(t *testing.T) {
	spec := domain.DefaultTuning().Weapons[domain.WeaponPistol]

	// На полной дальности пологий пол: floor(12 * 0.8) = 9.
	if got := falloffDamage(spec, spec.Range); got != 9 {
		t.Errorf("Expected 9 damage at full range, got %d", got)
	}
	// В упор спада нет: почти полный урон.
	if got := falloffDamage(spec, 0.1); got < 11 {
		t.Errorf("Expected near-full damage point blank, got %d", got)
	}
}
