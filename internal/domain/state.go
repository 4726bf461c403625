package domain

// GameState - агрегат всего мутабельного состояния симуляции.
// Владеет им исключительно engine.EntityStore: снаружи состояние
// видно только через копии (Clone), мутации - только через методы стора.
type GameState struct {
	Player  Player
	Enemies []Enemy
	Pickups []Pickup
	Grid    *Grid

	Floor        int
	Theme        FloorTheme
	BossFloor    bool
	BossDefeated bool

	Status Status
	// Аккумулятор симуляционного времени в секундах (только зафиксированные шаги).
	Time float64
}

// Clone возвращает снимок состояния для подписчиков.
// Слайсы копируются; Grid после генерации этажа не мутируется,
// поэтому указатель можно разделять между снимками.
func (s *GameState) Clone() GameState {
	out := *s
	out.Enemies = make([]Enemy, len(s.Enemies))
	copy(out.Enemies, s.Enemies)
	out.Pickups = make([]Pickup, len(s.Pickups))
	copy(out.Pickups, s.Pickups)
	// PhaseThresholds у боссов задаются при спавне и дальше только читаются.
	return out
}

// AliveEnemies - число живых врагов (все в Enemies живы по инварианту,
// мертвые удаляются в том же шаге, где здоровье ушло в ноль).
func (s *GameState) AliveEnemies() int {
	return len(s.Enemies)
}

// HasBoss проверяет, есть ли среди живых врагов босс.
func (s *GameState) HasBoss() bool {
	for i := range s.Enemies {
		if s.Enemies[i].Class.IsBoss() {
			return true
		}
	}
	return false
}
