package domain

import "strings"

// AIState - состояние конечного автомата врага.
type AIState uint8

const (
	AIStateIdle AIState = iota
	AIStatePatrolling
	AIStateChasing
	AIStateAttacking
	AIStateSpawning
)

var aiStateToString = map[AIState]string{
	AIStateIdle:       "IDLE",
	AIStatePatrolling: "PATROLLING",
	AIStateChasing:    "CHASING",
	AIStateAttacking:  "ATTACKING",
	AIStateSpawning:   "SPAWNING",
}

func (s AIState) String() string {
	if v, ok := aiStateToString[s]; ok {
		return v
	}
	return "UNKNOWN"
}

// EnemyClass - класс врага. Обычные классы + три класса боссов.
type EnemyClass uint8

const (
	ClassGrunt EnemyClass = iota
	ClassSoldier
	ClassCaptain
	ClassButcher  // босс: с фазами ускоряет атаки
	ClassSummoner // босс: с фазами получает дополнительных миньонов
	ClassTyrant   // босс: с фазами сокращает кулдаун спавна

	ClassCount = 6
)

var classToString = map[EnemyClass]string{
	ClassGrunt:    "GRUNT",
	ClassSoldier:  "SOLDIER",
	ClassCaptain:  "CAPTAIN",
	ClassButcher:  "BUTCHER",
	ClassSummoner: "SUMMONER",
	ClassTyrant:   "TYRANT",
}

var classFromString = map[string]EnemyClass{
	"GRUNT":    ClassGrunt,
	"SOLDIER":  ClassSoldier,
	"CAPTAIN":  ClassCaptain,
	"BUTCHER":  ClassButcher,
	"SUMMONER": ClassSummoner,
	"TYRANT":   ClassTyrant,
}

func (c EnemyClass) String() string {
	if v, ok := classToString[c]; ok {
		return v
	}
	return "UNKNOWN"
}

// ParseClass конвертирует строку из конфига в EnemyClass.
func ParseClass(s string) (EnemyClass, bool) {
	c, ok := classFromString[strings.ToUpper(s)]
	return c, ok
}

// IsBoss - является ли класс боссом.
func (c EnemyClass) IsBoss() bool {
	return c == ClassButcher || c == ClassSummoner || c == ClassTyrant
}

// ClassSpec - характеристики класса врага.
type ClassSpec struct {
	Name string `yaml:"name"`

	MaxHealth int `yaml:"max_health"`
	// Дистанция обнаружения игрока (при наличии прямой видимости).
	Detection float64 `yaml:"detection"`
	// Дистанция, за которой преследование прекращается при потере видимости.
	Disengage float64 `yaml:"disengage"`
	// Скорость, клеток за хостовый тик.
	Speed float64 `yaml:"speed"`

	MeleeDamage int `yaml:"melee_damage"`
	// Интервал между ударами в тиках.
	AttackInterval int `yaml:"attack_interval"`

	// Вероятности дропа при смерти.
	DropHealth float64 `yaml:"drop_health"`
	DropAmmo   float64 `yaml:"drop_ammo"`
	DropWeapon float64 `yaml:"drop_weapon"`

	// Только для боссов.
	PhaseThresholds []float64 `yaml:"phase_thresholds"`
	MinionBudget    int       `yaml:"minion_budget"`
	SpawnInterval   int       `yaml:"spawn_interval"`
	MinionClass     EnemyClass
	MinionClassName string `yaml:"minion_class"`
}

// Enemy - состояние одного врага.
type Enemy struct {
	ID    int
	Class EnemyClass
	Pos   Position

	Health    int
	MaxHealth int
	State     AIState

	// Runtime конечного автомата.
	PatrolTarget    Position
	HasPatrolTarget bool
	LastSeen        Position
	HasLastSeen     bool
	AttackCooldown  int
	ExploreCooldown int

	// Только для боссов.
	PhaseThresholds []float64
	Phase           int
	MinionBudget    int
	SpawnCooldown   int
}

// HealthFraction - доля оставшегося здоровья, для проверки порогов фаз.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}
