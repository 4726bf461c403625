package systems

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
	"github.com/darianrosebrook/figma-make-doom/pkg/logger"
	"github.com/darianrosebrook/figma-make-doom/pkg/raycast"
	"github.com/darianrosebrook/figma-make-doom/pkg/utils"
)

const (
	// enemyRadius - радиус коллизии врага со стенами.
	enemyRadius = 0.3

	// arriveEps - дистанция, на которой цель патруля считается достигнутой.
	arriveEps = 0.5

	// Боссы спавнят миньонов только в этой полосе дистанций до игрока.
	bossSpawnNear = 3.0
	bossSpawnFar  = 12.0
	// Миньон не появляется вплотную к игроку.
	minionMinPlayerDist = 2.0

	// spawnFrames - сколько тиков новый миньон проводит в состоянии SPAWNING.
	spawnFrames = 30

	// Вероятность ухода из IDLE в патруль при истекшем кулдауне разведки.
	patrolChance = 0.3
)

// UpdateEnemies прогоняет конечный автомат каждого врага на один хостовый
// тик. allocID выдает ID для спавнящихся миньонов (владелец счетчика -
// EntityStore). Возвращает звуковые события за тик.
func UpdateEnemies(state *domain.GameState, tuning *domain.Tuning, rng *rand.Rand, allocID func() int) []domain.SoundEvent {
	var events []domain.SoundEvent
	player := &state.Player

	// Спавны копятся отдельно и вливаются после прохода: нельзя
	// растить слайс, по которому идет итерация по индексам.
	var spawned []domain.Enemy

	for i := range state.Enemies {
		e := &state.Enemies[i]
		spec := tuning.Classes[e.Class]

		if e.AttackCooldown > 0 {
			e.AttackCooldown--
		}
		if e.ExploreCooldown > 0 {
			e.ExploreCooldown--
		}
		if e.SpawnCooldown > 0 {
			e.SpawnCooldown--
		}

		dist := Distance(e.Pos, player.Pos)
		seen := dist <= spec.Detection && raycast.LineOfSight(state.Grid, e.Pos, player.Pos)
		if seen {
			e.LastSeen = player.Pos
			e.HasLastSeen = true
		}

		switch e.State {
		case domain.AIStateSpawning:
			// Вылупление: короткая пауза, затем обычное поведение.
			if e.AttackCooldown <= 0 {
				e.State = domain.AIStateIdle
			}

		case domain.AIStateIdle:
			if seen {
				e.State = domain.AIStateChasing
				break
			}
			if e.ExploreCooldown <= 0 {
				if utils.Chance(rng, patrolChance) {
					e.State = domain.AIStatePatrolling
					e.PatrolTarget = randomPatrolTarget(state.Grid, e.Pos, rng, 8)
					e.HasPatrolTarget = true
				} else {
					// Разведка: короткий полуслучайный дрейф под IDLE.
					e.PatrolTarget = randomPatrolTarget(state.Grid, e.Pos, rng, 3)
					e.HasPatrolTarget = true
				}
				e.ExploreCooldown = utils.RandRange(rng, 90, 240)
			}
			if e.HasPatrolTarget {
				if Distance(e.Pos, e.PatrolTarget) < arriveEps {
					e.HasPatrolTarget = false
				} else if !stepToward(state.Grid, e, e.PatrolTarget, spec.Speed*0.5) {
					e.HasPatrolTarget = false // уперся в стену
				}
			}

		case domain.AIStatePatrolling:
			if seen {
				e.State = domain.AIStateChasing
				break
			}
			if !e.HasPatrolTarget {
				e.PatrolTarget = randomPatrolTarget(state.Grid, e.Pos, rng, 8)
				e.HasPatrolTarget = true
			}
			stepToward(state.Grid, e, e.PatrolTarget, spec.Speed)
			if Distance(e.Pos, e.PatrolTarget) < arriveEps {
				e.HasPatrolTarget = false
				e.State = domain.AIStateIdle
			}

		case domain.AIStateChasing:
			if dist <= domain.MeleeRange {
				e.State = domain.AIStateAttacking
				break
			}
			if !seen && dist > spec.Disengage {
				e.State = domain.AIStateIdle
				e.HasLastSeen = false
				break
			}
			target := player.Pos
			if !seen && e.HasLastSeen {
				target = e.LastSeen
			}
			stepToward(state.Grid, e, target, spec.Speed)

		case domain.AIStateAttacking:
			if dist > domain.MeleeRange {
				e.State = domain.AIStateChasing
				break
			}
			if e.AttackCooldown <= 0 {
				player.Health -= spec.MeleeDamage
				if player.Health < 0 {
					player.Health = 0
				}
				e.AttackCooldown = attackInterval(e, spec)
				events = append(events, domain.SoundEvent{Kind: domain.SoundPlayerHurt, Volume: 1})
				logger.WithComponent("ai_controller").WithFields(logrus.Fields{
					"enemy_id": e.ID,
					"class":    e.Class.String(),
					"damage":   spec.MeleeDamage,
					"hp_after": player.Health,
				}).Debug("Melee attack landed.")
			}
		}

		// Боссы: спавн миньонов в полосе дистанций, при истекшем
		// кулдауне и не исчерпанном бюджете.
		if e.Class.IsBoss() && e.MinionBudget > 0 && e.SpawnCooldown <= 0 &&
			dist >= bossSpawnNear && dist <= bossSpawnFar {
			if minion, ok := spawnMinion(state, tuning, e, rng, allocID); ok {
				spawned = append(spawned, minion)
				e.MinionBudget--
				e.SpawnCooldown = spawnInterval(e, spec)
				events = append(events, domain.SoundEvent{Kind: domain.SoundMinionSpawn, Volume: distanceVolume(dist)})
			}
		}
	}

	state.Enemies = append(state.Enemies, spawned...)
	return events
}

// attackInterval - каденция атак с учетом фаз Butcher: каждая фаза
// срезает четверть интервала.
func attackInterval(e *domain.Enemy, spec domain.ClassSpec) int {
	interval := spec.AttackInterval
	if e.Class == domain.ClassButcher && e.Phase > 0 {
		interval = interval * (4 - e.Phase) / 4
		if interval < 10 {
			interval = 10
		}
	}
	return interval
}

// spawnInterval - кулдаун спавна с учетом фаз Tyrant.
func spawnInterval(e *domain.Enemy, spec domain.ClassSpec) int {
	interval := spec.SpawnInterval
	if e.Class == domain.ClassTyrant && e.Phase > 0 {
		interval /= 1 + e.Phase
	}
	return interval
}

// spawnMinion подбирает клетку возле босса, но не вплотную к игроку.
func spawnMinion(state *domain.GameState, tuning *domain.Tuning, boss *domain.Enemy, rng *rand.Rand, allocID func() int) (domain.Enemy, bool) {
	for try := 0; try < 10; try++ {
		cand := domain.Position{
			X: boss.Pos.X + (rng.Float64()-0.5)*4,
			Y: boss.Pos.Y + (rng.Float64()-0.5)*4,
		}
		if !CanStand(state.Grid, cand.X, cand.Y, enemyRadius) {
			continue
		}
		if Distance(cand, state.Player.Pos) < minionMinPlayerDist {
			continue
		}

		class := tuning.Classes[boss.Class].MinionClass
		spec := tuning.Classes[class]
		return domain.Enemy{
			ID:             allocID(),
			Class:          class,
			Pos:            cand,
			Health:         spec.MaxHealth,
			MaxHealth:      spec.MaxHealth,
			State:          domain.AIStateSpawning,
			AttackCooldown: spawnFrames,
		}, true
	}
	return domain.Enemy{}, false
}

// stepToward двигает врага к цели со скольжением вдоль стен.
// Возвращает false, если сдвинуться не вышло ни по одной оси.
func stepToward(grid *domain.Grid, e *domain.Enemy, target domain.Position, speed float64) bool {
	dx := target.X - e.Pos.X
	dy := target.Y - e.Pos.Y
	length := math.Hypot(dx, dy)
	if length < 1e-6 {
		return false
	}
	dx = dx / length * speed
	dy = dy / length * speed

	moved := false
	if CanStand(grid, e.Pos.X+dx, e.Pos.Y, enemyRadius) {
		e.Pos.X += dx
		moved = true
	}
	if CanStand(grid, e.Pos.X, e.Pos.Y+dy, enemyRadius) {
		e.Pos.Y += dy
		moved = true
	}
	return moved
}

// randomPatrolTarget ищет проходимую клетку в радиусе radius от позиции.
func randomPatrolTarget(grid *domain.Grid, from domain.Position, rng *rand.Rand, radius int) domain.Position {
	for try := 0; try < 12; try++ {
		cand := domain.Position{
			X: from.X + float64(utils.RandRange(rng, -radius, radius)),
			Y: from.Y + float64(utils.RandRange(rng, -radius, radius)),
		}
		if CanStand(grid, cand.X, cand.Y, enemyRadius) {
			return cand
		}
	}
	return from
}
