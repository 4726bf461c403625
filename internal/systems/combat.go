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

// ShotResult - исход одного выстрела.
type ShotResult struct {
	Fired  bool
	HitID  int // 0 = промах
	Damage int
	Killed bool
	// Дроп убитого врага; ID проставляет EntityStore при вставке.
	Drops  []domain.Pickup
	Events []domain.SoundEvent
}

// Shoot выполняет выстрел текущим оружием игрока.
// Определенные no-op случаи (Fired=false): статус не playing, пауза,
// нет патронов. Разрешение попадания: первый подходящий враг в порядке
// популяции, один выстрел - максимум одна жертва. Порядок намеренно
// НЕ сортируется по дистанции: first-match семантика задает баланс.
func Shoot(state *domain.GameState, tuning *domain.Tuning, rng *rand.Rand) ShotResult {
	var res ShotResult

	if state.Status != domain.StatusPlaying {
		return res
	}

	p := &state.Player
	spec := tuning.Weapons[p.Weapon]
	if p.Ammo[p.Weapon] < spec.ShotCost {
		return res
	}

	p.Ammo[p.Weapon] -= spec.ShotCost
	p.AttackTimer = spec.AttackFrames
	p.FlashTimer = spec.FlashFrames
	res.Fired = true
	res.Events = append(res.Events, domain.SoundEvent{Kind: domain.FireSound(p.Weapon), Volume: 1})

	// Один луч до ближайшей стены по направлению выстрела; дальше него
	// хитскан не достает (окклюзия стеной).
	wallDist := raycast.Cast(state.Grid, p.Pos.X, p.Pos.Y, p.Angle, spec.Range)

	for i := range state.Enemies {
		e := &state.Enemies[i]

		dist := Distance(p.Pos, e.Pos)
		if dist > spec.Range || dist > wallDist {
			continue
		}
		bearing := math.Atan2(e.Pos.Y-p.Pos.Y, e.Pos.X-p.Pos.X)
		if math.Abs(NormalizeAngle(bearing-p.Angle)) > spec.HalfAngle {
			continue
		}

		res.HitID = e.ID
		res.Damage = falloffDamage(spec, dist)
		e.Health -= res.Damage

		combatLogger := logger.WithComponent("combat_resolver").WithFields(logrus.Fields{
			"weapon":   p.Weapon.String(),
			"enemy_id": e.ID,
			"class":    e.Class.String(),
			"damage":   res.Damage,
			"distance": dist,
		})

		if e.Health <= 0 {
			res.Killed = true
			res.Drops = RollDrops(tuning.Classes[e.Class], e.Pos, state.Grid, rng)
			res.Events = append(res.Events, domain.SoundEvent{
				Kind:   domain.SoundEnemyDie,
				Volume: distanceVolume(dist),
			})
			combatLogger.Debug("Enemy killed.")
			// Инвариант: здоровье <= 0 означает удаление из живого
			// набора в том же шаге разрешения.
			state.Enemies = append(state.Enemies[:i], state.Enemies[i+1:]...)
		} else {
			applyBossPhases(e, &res)
			res.Events = append(res.Events, domain.SoundEvent{
				Kind:   domain.SoundEnemyHit,
				Volume: distanceVolume(dist),
			})
			combatLogger.Debug("Enemy hit.")
		}
		break // только одна жертва на выстрел
	}

	return res
}

// falloffDamage считает урон со спадом по дистанции: линейный спад
// до нижнего предела множителя на полной дальности. У дробовика предел
// крутой (0.3), у остальных пологий (0.8).
func falloffDamage(spec domain.WeaponSpec, dist float64) int {
	t := dist / spec.Range
	if t > 1 {
		t = 1
	}
	falloff := 1 - (1-spec.FalloffFloor)*t
	if falloff < spec.FalloffFloor {
		falloff = spec.FalloffFloor
	}
	return int(math.Floor(float64(spec.Damage) * falloff))
}

// applyBossPhases проверяет пересечение порогов фаз вниз после урона.
// Индекс фазы монотонно растет; каждое пересечение дает классовый эффект.
func applyBossPhases(e *domain.Enemy, res *ShotResult) {
	if !e.Class.IsBoss() {
		return
	}
	frac := e.HealthFraction()
	for e.Phase < len(e.PhaseThresholds) && frac <= e.PhaseThresholds[e.Phase] {
		e.Phase++
		switch e.Class {
		case domain.ClassSummoner:
			// Дополнительный запас миньонов.
			e.MinionBudget += 2
		case domain.ClassTyrant:
			// Немедленно сократить текущий кулдаун спавна.
			e.SpawnCooldown /= 2
		}
		// У Butcher эффект (каденция атак) выводится из Phase в AI.
		res.Events = append(res.Events, domain.SoundEvent{Kind: domain.SoundBossPhase, Volume: 1})
		logger.WithComponent("combat_resolver").WithFields(logrus.Fields{
			"enemy_id": e.ID,
			"class":    e.Class.String(),
			"phase":    e.Phase,
		}).Info("Boss phase transition.")
	}
}

// RollDrops - независимые броски дроп-таблицы при смерти врага.
// Вероятности и диапазоны значений растут с классом.
func RollDrops(spec domain.ClassSpec, pos domain.Position, grid *domain.Grid, rng *rand.Rand) []domain.Pickup {
	var drops []domain.Pickup

	place := func(kind domain.PickupKind, value int, weapon domain.WeaponKind) {
		p := domain.Pickup{Kind: kind, Value: value, Weapon: weapon}
		p.Pos = scatterNear(pos, grid, rng)
		drops = append(drops, p)
	}

	if utils.Chance(rng, spec.DropHealth) {
		place(domain.PickupHealth, 10+rng.Intn(spec.MeleeDamage+10), 0)
	}
	if utils.Chance(rng, spec.DropAmmo) {
		place(domain.PickupAmmo, 5+rng.Intn(15), 0)
	}
	if utils.Chance(rng, spec.DropWeapon) {
		w := domain.WeaponKind(1 + rng.Intn(domain.WeaponCount-1)) // не пистолет
		place(domain.PickupWeapon, 10, w)
	}
	return drops
}

// scatterNear подбирает проходимую точку рядом с местом смерти.
func scatterNear(pos domain.Position, grid *domain.Grid, rng *rand.Rand) domain.Position {
	for try := 0; try < 8; try++ {
		cand := domain.Position{
			X: pos.X + (rng.Float64()-0.5)*2,
			Y: pos.Y + (rng.Float64()-0.5)*2,
		}
		if grid.Passable(int(math.Floor(cand.X)), int(math.Floor(cand.Y))) {
			return cand
		}
	}
	return pos
}

// distanceVolume - затухание громкости события по дистанции до игрока.
func distanceVolume(dist float64) float64 {
	v := 1 - dist/20
	if v < 0.2 {
		v = 0.2
	}
	return v
}
