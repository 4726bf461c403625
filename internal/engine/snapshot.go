package engine

import (
	"github.com/darianrosebrook/figma-make-doom/internal/domain"
	"github.com/darianrosebrook/figma-make-doom/internal/systems"
	"github.com/darianrosebrook/figma-make-doom/pkg/api"
)

// Дистанция, на которой враг считается "рядом" для аудио-сводки.
const nearbyEnemyDist = 10.0

// FullMessage - последний опубликованный снапшот с картой, для только
// что подключившегося клиента. Читает кэш публикации, а не живое
// состояние, поэтому безопасен из горутин транспорта.
func (s *GameService) FullMessage() api.ServerMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastFull
}

// cacheSnapshot обновляет кэш последнего опубликованного снапшота.
// Пишет только тиковый цикл; FullMessage и Snapshot читают под RLock.
func (s *GameService) cacheSnapshot(msg api.ServerMessage) {
	full := msg
	// Дискретные события уже розданы подписчикам этого тика;
	// новому клиенту их не повторяем.
	full.Events = nil
	if full.Grid == nil {
		full.Grid = &api.GridView{
			Size:  s.store.state.Grid.Size,
			Cells: s.store.state.Grid.Cells(),
		}
	}
	state := s.store.Snapshot()

	s.mu.Lock()
	s.lastFull = full
	s.lastState = state
	s.mu.Unlock()
}

// buildMessage собирает DTO снапшота из текущего состояния.
// Вызывается только из тикового цикла; снаружи уходят только копии -
// ни одного указателя в живое состояние.
func (s *GameService) buildMessage(includeGrid bool, events []domain.SoundEvent) api.ServerMessage {
	state := &s.store.state
	tuning := s.store.tuning

	msg := api.ServerMessage{
		Type:      "SNAPSHOT",
		Floor:     state.Floor,
		Theme:     state.Theme.String(),
		BossFloor: state.BossFloor,
		Status:    state.Status.String(),
		Time:      state.Time,
		Player:    buildPlayerView(&state.Player, tuning),
		Enemies:   buildEnemyViews(state.Enemies),
		Pickups:   buildPickupViews(state.Pickups),
		Audio:     buildAudioSummary(state),
	}

	if includeGrid {
		msg.Grid = &api.GridView{
			Size:  state.Grid.Size,
			Cells: state.Grid.Cells(),
		}
	}

	for _, ev := range events {
		msg.Events = append(msg.Events, api.SoundEventView{
			Kind:   ev.Kind.String(),
			Volume: ev.Volume,
		})
	}
	return msg
}

func buildPlayerView(p *domain.Player, tuning *domain.Tuning) api.PlayerView {
	view := api.PlayerView{
		X:           p.Pos.X,
		Y:           p.Pos.Y,
		Angle:       p.Angle,
		Health:      p.Health,
		MaxHealth:   p.MaxHealth,
		Weapon:      p.Weapon.String(),
		WeaponRange: tuning.Weapons[p.Weapon].Range,
		Ammo:        make(map[string]int, domain.WeaponCount),
		AttackTimer: p.AttackTimer,
		FlashTimer:  p.FlashTimer,
	}
	for w := 0; w < domain.WeaponCount; w++ {
		kind := domain.WeaponKind(w)
		view.Ammo[kind.String()] = p.Ammo[w]
		if p.Available[w] {
			view.Available = append(view.Available, kind.String())
		}
	}
	return view
}

func buildEnemyViews(enemies []domain.Enemy) []api.EnemyView {
	views := make([]api.EnemyView, 0, len(enemies))
	for i := range enemies {
		e := &enemies[i]
		views = append(views, api.EnemyView{
			ID:        e.ID,
			Class:     e.Class.String(),
			State:     e.State.String(),
			X:         e.Pos.X,
			Y:         e.Pos.Y,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Phase:     e.Phase,
		})
	}
	return views
}

func buildPickupViews(pickups []domain.Pickup) []api.PickupView {
	views := make([]api.PickupView, 0, len(pickups))
	for _, item := range pickups {
		view := api.PickupView{
			ID:   item.ID,
			Kind: item.Kind.String(),
			X:    item.Pos.X,
			Y:    item.Pos.Y,
		}
		if item.Kind == domain.PickupWeapon {
			view.Weapon = item.Weapon.String()
		}
		views = append(views, view)
	}
	return views
}

// buildAudioSummary - производная сводка для адаптивного аудио.
func buildAudioSummary(state *domain.GameState) api.AudioSummary {
	summary := api.AudioSummary{
		EnemyCount:   len(state.Enemies),
		ClosestEnemy: -1,
		BossFloor:    state.BossFloor,
		Floor:        state.Floor,
		Status:       state.Status.String(),
	}
	if state.Player.MaxHealth > 0 {
		summary.HealthRatio = float64(state.Player.Health) / float64(state.Player.MaxHealth)
	}

	for i := range state.Enemies {
		e := &state.Enemies[i]
		dist := systems.Distance(state.Player.Pos, e.Pos)
		if summary.ClosestEnemy < 0 || dist < summary.ClosestEnemy {
			summary.ClosestEnemy = dist
		}
		if dist <= nearbyEnemyDist {
			summary.NearbyEnemies++
		}
		if e.State == domain.AIStateChasing || e.State == domain.AIStateAttacking {
			summary.InCombat = true
		}
	}
	return summary
}
