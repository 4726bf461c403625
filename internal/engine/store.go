package engine

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
	"github.com/darianrosebrook/figma-make-doom/internal/systems"
	"github.com/darianrosebrook/figma-make-doom/pkg/logger"
)

// EntityStore - единственный владелец GameState. Вся мутация состояния
// идет через его методы; наружу отдаются только копии (Snapshot).
type EntityStore struct {
	state  domain.GameState
	tuning *domain.Tuning
	rng    *rand.Rand

	// Монотонные счетчики ID. Не входят в снапшот.
	nextEnemyID  int
	nextPickupID int

	// Звуковые события, накопленные с последней публикации.
	events []domain.SoundEvent

	// Каденция шагов: счетчик тиков движения.
	footstepTick int

	log *logrus.Entry
}

// NewStore создает состояние первого этажа.
func NewStore(tuning *domain.Tuning, rng *rand.Rand) *EntityStore {
	s := &EntityStore{
		tuning: tuning,
		rng:    rng,
		log:    logger.WithComponent("entity_store"),
	}
	s.Reset()
	return s
}

// Reset - новая игра с первого этажа.
func (s *EntityStore) Reset() {
	s.state = domain.GameState{}
	s.nextEnemyID = 0
	s.nextPickupID = 0
	s.events = nil
	s.footstepTick = 0

	p := &s.state.Player
	p.MaxHealth = domain.PlayerMaxHealth
	p.Health = domain.PlayerMaxHealth
	p.Weapon = domain.WeaponPistol
	for w := 0; w < domain.WeaponCount; w++ {
		p.Ammo[w] = s.tuning.Weapons[w].StartAmmo
	}
	p.Available[domain.WeaponPistol] = true

	s.buildFloor(1)
}

// Snapshot возвращает иммутабельную копию состояния для подписчиков.
func (s *EntityStore) Snapshot() domain.GameState {
	return s.state.Clone()
}

// Status - текущий статус игры.
func (s *EntityStore) Status() domain.Status {
	return s.state.Status
}

// Time - аккумулятор симуляционного времени, секунды.
func (s *EntityStore) Time() float64 {
	return s.state.Time
}

// Tuning отдает таблицы баланса (только чтение).
func (s *EntityStore) Tuning() *domain.Tuning {
	return s.tuning
}

// DrainEvents забирает накопленные звуковые события.
func (s *EntityStore) DrainEvents() []domain.SoundEvent {
	out := s.events
	s.events = nil
	return out
}

func (s *EntityStore) emit(kind domain.SoundKind, volume float64) {
	s.events = append(s.events, domain.SoundEvent{Kind: kind, Volume: volume})
}

func (s *EntityStore) allocEnemyID() int {
	s.nextEnemyID++
	return s.nextEnemyID
}

func (s *EntityStore) allocPickupID() int {
	s.nextPickupID++
	return s.nextPickupID
}

// Step - один логический шаг фиксированной длительности.
// Порядок жесткий: таймеры -> сбор предметов -> оценка статуса.
func (s *EntityStore) Step() {
	s.state.Time += domain.FixedStep

	if s.state.Status != domain.StatusPlaying {
		return
	}

	// 1. Таймеры атаки и вспышки только убывают до нуля.
	if s.state.Player.AttackTimer > 0 {
		s.state.Player.AttackTimer--
	}
	if s.state.Player.FlashTimer > 0 {
		s.state.Player.FlashTimer--
	}

	// 2. Сбор предметов по близости.
	s.collectPickups()

	// 3. Победа/поражение.
	s.evaluateStatus()
}

// collectPickups снимает предметы в радиусе подбора и применяет эффекты.
func (s *EntityStore) collectPickups() {
	p := &s.state.Player
	kept := s.state.Pickups[:0]

	for _, item := range s.state.Pickups {
		if systems.Distance(p.Pos, item.Pos) > domain.PickupRadius {
			kept = append(kept, item)
			continue
		}

		switch item.Kind {
		case domain.PickupHealth:
			p.Health += item.Value
			if p.Health > p.MaxHealth {
				p.Health = p.MaxHealth
			}
		case domain.PickupAmmo:
			// Патроны идут только в текущее оружие.
			s.addAmmo(p.Weapon, item.Value)
		case domain.PickupWeapon:
			p.Available[item.Weapon] = true
			p.Weapon = item.Weapon // автоэкип
			s.addAmmo(item.Weapon, item.Value)
		}

		s.emit(domain.SoundPickup, 1)
		s.log.WithFields(logrus.Fields{
			"pickup_id": item.ID,
			"kind":      item.Kind.String(),
			"value":     item.Value,
		}).Debug("Pickup collected.")
	}
	s.state.Pickups = kept
}

// addAmmo добавляет патроны с клампом к максимуму оружия.
func (s *EntityStore) addAmmo(w domain.WeaponKind, amount int) {
	max := s.tuning.Weapons[w].MaxAmmo
	s.state.Player.Ammo[w] += amount
	if s.state.Player.Ammo[w] > max {
		s.state.Player.Ammo[w] = max
	}
	if s.state.Player.Ammo[w] < 0 {
		s.state.Player.Ammo[w] = 0
	}
}

// evaluateStatus: здоровье <= 0 - поражение; ноль врагов - победа
// (на боссовом этаже заодно взводится флаг поверженного босса).
func (s *EntityStore) evaluateStatus() {
	if s.state.Player.Health <= 0 {
		s.state.Player.Health = 0
		s.state.Status = domain.StatusDefeat
		s.emit(domain.SoundDefeat, 1)
		s.log.WithField("floor", s.state.Floor).Info("Player defeated.")
		return
	}

	if len(s.state.Enemies) == 0 {
		if s.state.BossFloor {
			s.state.BossDefeated = true
		}
		s.state.Status = domain.StatusVictory
		s.emit(domain.SoundVictory, 1)
		s.log.WithFields(logrus.Fields{
			"floor":      s.state.Floor,
			"boss_floor": s.state.BossFloor,
		}).Info("Floor cleared.")
	}
}

// SetPaused переключает паузу на уровне статуса игры.
// Разрешено только из playing/paused (не из victory/defeat).
func (s *EntityStore) SetPaused(paused bool) bool {
	switch {
	case paused && s.state.Status == domain.StatusPlaying:
		s.state.Status = domain.StatusPaused
		return true
	case !paused && s.state.Status == domain.StatusPaused:
		s.state.Status = domain.StatusPlaying
		return true
	}
	return false
}

// MovePlayer применяет намерение движения и ведет каденцию шагов.
func (s *EntityStore) MovePlayer(in systems.Intent) {
	if s.state.Status != domain.StatusPlaying {
		return
	}
	if !systems.MovePlayer(&s.state, in) {
		s.footstepTick = 0
		return
	}
	s.footstepTick++
	if s.footstepTick >= domain.FootstepInterval {
		s.footstepTick = 0
		s.emit(domain.SoundFootstep, 0.5)
	}
}

// Shoot - выстрел текущим оружием. false - определенный no-op
// (пауза, не-playing, нет патронов).
func (s *EntityStore) Shoot() bool {
	res := systems.Shoot(&s.state, s.tuning, s.rng)
	if !res.Fired {
		return false
	}
	s.events = append(s.events, res.Events...)
	for _, drop := range res.Drops {
		drop.ID = s.allocPickupID()
		s.state.Pickups = append(s.state.Pickups, drop)
	}
	return true
}

// SwitchWeapon переключает оружие. Недоступное оружие - определенный
// no-op с false, текущее остается как было.
func (s *EntityStore) SwitchWeapon(w domain.WeaponKind) bool {
	if !s.state.Player.HasWeapon(w) {
		return false
	}
	if s.state.Player.Weapon != w {
		s.state.Player.Weapon = w
		s.emit(domain.SoundWeaponSwitch, 1)
	}
	return true
}

// UpdateAI прогоняет конечные автоматы врагов (раз в хостовый тик).
func (s *EntityStore) UpdateAI() {
	if s.state.Status != domain.StatusPlaying {
		return
	}
	events := systems.UpdateEnemies(&s.state, s.tuning, s.rng, s.allocEnemyID)
	s.events = append(s.events, events...)
}
