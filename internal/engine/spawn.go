package engine

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
	"github.com/darianrosebrook/figma-make-doom/internal/systems"
	"github.com/darianrosebrook/figma-make-doom/pkg/dungeon"
	"github.com/darianrosebrook/figma-make-doom/pkg/utils"
)

const (
	// Минимальная дистанция спавна врагов и предметов от игрока.
	enemySpawnMinDist  = 8.0
	pickupSpawnMinDist = 5.0
)

// floorSize - размер карты для этажа: растет на FloorSizeStep с капом.
func floorSize(floor int) int {
	size := domain.FirstFloorSize + domain.FloorSizeStep*(floor-1)
	if size > domain.MaxFloorSize {
		size = domain.MaxFloorSize
	}
	return size
}

// buildFloor генерирует этаж и его население. Игрок ставится в центр
// карты (генератор гарантирует расчищенную окрестность 3x3).
func (s *EntityStore) buildFloor(floor int) {
	size := floorSize(floor)
	theme := domain.ThemeForFloor(floor)

	s.state.Floor = floor
	s.state.Theme = theme
	s.state.BossFloor = floor%domain.BossFloorEvery == 0
	s.state.BossDefeated = false
	s.state.Status = domain.StatusPlaying
	s.state.Grid = dungeon.NewGenerator(s.rng).Generate(size, theme)

	cx, cy := s.state.Grid.Center()
	s.state.Player.Pos = domain.Position{X: float64(cx) + 0.5, Y: float64(cy) + 0.5}
	s.state.Player.AttackTimer = 0
	s.state.Player.FlashTimer = 0

	s.state.Enemies = nil
	s.state.Pickups = nil
	s.populateEnemies(floor)
	s.seedPickups(floor)

	s.log.WithFields(logrus.Fields{
		"floor":      floor,
		"size":       size,
		"theme":      theme.String(),
		"boss_floor": s.state.BossFloor,
		"enemies":    len(s.state.Enemies),
		"pickups":    len(s.state.Pickups),
	}).Info("Floor built.")
}

// AdvanceFloor - переход на следующий этаж: частичный хил и частичное
// пополнение боезапаса (не полное), затем новый этаж.
func (s *EntityStore) AdvanceFloor() {
	p := &s.state.Player
	p.Health += 25
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	for w := 0; w < domain.WeaponCount; w++ {
		if p.Available[w] {
			s.addAmmo(domain.WeaponKind(w), s.tuning.Weapons[w].RefillAmmo)
		}
	}

	s.buildFloor(s.state.Floor + 1)
}

// populateEnemies расставляет популяцию этажа: на боссовом этаже
// меньше рядовых плюс один масштабированный босс.
func (s *EntityStore) populateEnemies(floor int) {
	count := 4 + floor
	if count > 16 {
		count = 16
	}
	if s.state.BossFloor {
		count /= 2
	}

	for i := 0; i < count; i++ {
		class := s.rollClass(floor)
		if pos, ok := s.findSpawnCell(enemySpawnMinDist); ok {
			s.spawnEnemy(class, pos, 1.0)
		}
	}

	if s.state.BossFloor {
		class := domain.BossForFloor(floor)
		// Масштаб здоровья босса по номеру боссового этажа.
		scale := 1 + 0.25*float64(floor/domain.BossFloorEvery-1)
		if pos, ok := s.findSpawnCell(enemySpawnMinDist); ok {
			s.spawnEnemy(class, pos, scale)
		}
	}
}

// rollClass - состав рядовых врагов смещается к тяжелым классам с этажом.
func (s *EntityStore) rollClass(floor int) domain.EnemyClass {
	pCaptain := math.Min(0.05+0.02*float64(floor), 0.30)
	pSoldier := math.Min(0.20+0.03*float64(floor), 0.40)

	roll := s.rng.Float64()
	switch {
	case roll < pCaptain:
		return domain.ClassCaptain
	case roll < pCaptain+pSoldier:
		return domain.ClassSoldier
	default:
		return domain.ClassGrunt
	}
}

// spawnEnemy создает врага класса class со шкалированным здоровьем.
func (s *EntityStore) spawnEnemy(class domain.EnemyClass, pos domain.Position, healthScale float64) {
	spec := s.tuning.Classes[class]
	health := int(float64(spec.MaxHealth) * healthScale)

	e := domain.Enemy{
		ID:        s.allocEnemyID(),
		Class:     class,
		Pos:       pos,
		Health:    health,
		MaxHealth: health,
		State:     domain.AIStateIdle,
	}
	if class.IsBoss() {
		e.PhaseThresholds = append([]float64(nil), spec.PhaseThresholds...)
		e.MinionBudget = spec.MinionBudget
		e.SpawnCooldown = spec.SpawnInterval
	}
	s.state.Enemies = append(s.state.Enemies, e)
}

// seedPickups - равномерный посев предметов по этажу с отбраковкой
// стен и клеток рядом со спавном.
func (s *EntityStore) seedPickups(floor int) {
	count := 4 + floor/2
	if count > 12 {
		count = 12
	}

	for i := 0; i < count; i++ {
		pos, ok := s.findSpawnCell(pickupSpawnMinDist)
		if !ok {
			continue
		}

		roll := s.rng.Float64()
		item := domain.Pickup{ID: s.allocPickupID(), Pos: pos}
		switch {
		case roll < 0.40:
			item.Kind = domain.PickupHealth
			item.Value = utils.RandRange(s.rng, 10, 25)
		case roll < 0.85:
			item.Kind = domain.PickupAmmo
			item.Value = utils.RandRange(s.rng, 5, 20)
		default:
			item.Kind = domain.PickupWeapon
			item.Weapon = domain.WeaponKind(1 + s.rng.Intn(domain.WeaponCount-1))
			item.Value = 10
		}
		s.state.Pickups = append(s.state.Pickups, item)
	}
}

// findSpawnCell ищет проходимую клетку не ближе minDist к игроку.
func (s *EntityStore) findSpawnCell(minDist float64) (domain.Position, bool) {
	grid := s.state.Grid
	for try := 0; try < 64; try++ {
		x := utils.RandRange(s.rng, 1, grid.Size-2)
		y := utils.RandRange(s.rng, 1, grid.Size-2)
		if !grid.Passable(x, y) {
			continue
		}
		pos := domain.Position{X: float64(x) + 0.5, Y: float64(y) + 0.5}
		if systems.Distance(pos, s.state.Player.Pos) < minDist {
			continue
		}
		return pos, true
	}
	return domain.Position{}, false
}
