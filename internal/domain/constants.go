package domain

// Сквозные константы геймплея. Тонкая настройка классов и оружия
// живет в engine-конфиге, здесь - то, что завязано на геометрию мира.

const (
	// FixedStep - длительность логического шага, секунды.
	FixedStep = 1.0 / 60.0

	// MeleeRange - дистанция ближней атаки врага.
	MeleeRange = 1.5

	// PickupRadius - радиус подбора предмета игроком.
	PickupRadius = 0.8

	// PlayerMaxHealth - стартовый максимум здоровья.
	PlayerMaxHealth = 100

	// PlayerSpeed - скорость игрока, клеток за хостовый тик.
	PlayerSpeed = 0.09
	// PlayerTurnSpeed - скорость поворота с клавиатуры, радиан за тик.
	PlayerTurnSpeed = 0.05
	// MouseSensitivity - радиан на единицу накопленной дельты мыши.
	MouseSensitivity = 0.0025

	// PlayerRadius - радиус коллизии игрока со стенами.
	PlayerRadius = 0.25

	// BossFloorEvery - каждый N-й этаж боссовый.
	BossFloorEvery = 5

	// FirstFloorSize/FloorSizeStep/MaxFloorSize - рост карты по этажам.
	FirstFloorSize = 24
	FloorSizeStep  = 4
	MaxFloorSize   = 48

	// FootstepInterval - каденция звука шагов, в хостовых тиках
	// непрерывного движения (движение применяется раз в хостовый тик).
	FootstepInterval = 22
)
