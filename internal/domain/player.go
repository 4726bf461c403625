package domain

import "strings"

// WeaponKind - вид оружия. Индексы плотные, чтобы хранить боезапас
// в фиксированном массиве (детерминизм важнее гибкости).
type WeaponKind uint8

const (
	WeaponPistol WeaponKind = iota
	WeaponShotgun
	WeaponChaingun

	WeaponCount = 3
)

var weaponToString = map[WeaponKind]string{
	WeaponPistol:   "PISTOL",
	WeaponShotgun:  "SHOTGUN",
	WeaponChaingun: "CHAINGUN",
}

var weaponFromString = map[string]WeaponKind{
	"PISTOL":   WeaponPistol,
	"SHOTGUN":  WeaponShotgun,
	"CHAINGUN": WeaponChaingun,
}

func (w WeaponKind) String() string {
	if v, ok := weaponToString[w]; ok {
		return v
	}
	return "UNKNOWN"
}

// ParseWeapon конвертирует строку (из конфига или команды клиента) в WeaponKind.
func ParseWeapon(s string) (WeaponKind, bool) {
	w, ok := weaponFromString[strings.ToUpper(s)]
	return w, ok
}

// WeaponSpec - боевые характеристики одного вида оружия.
type WeaponSpec struct {
	Name string `yaml:"name"`

	// Дальность хитскана в клетках.
	Range float64 `yaml:"range"`
	// Базовый урон до спада по дистанции.
	Damage int `yaml:"damage"`
	// Полуугол конуса точности, радианы.
	HalfAngle float64 `yaml:"half_angle"`
	// Нижний предел множителя спада урона на полной дальности.
	FalloffFloor float64 `yaml:"falloff_floor"`

	ShotCost  int `yaml:"shot_cost"`
	MaxAmmo   int `yaml:"max_ammo"`
	StartAmmo int `yaml:"start_ammo"`
	// Пополнение при переходе на следующий этаж.
	RefillAmmo int `yaml:"refill_ammo"`

	// Таймеры в логических шагах (1/60 c).
	AttackFrames int `yaml:"attack_frames"`
	FlashFrames  int `yaml:"flash_frames"`
}

// Player - состояние игрока.
type Player struct {
	Pos   Position
	Angle float64 // радианы

	Health    int
	MaxHealth int

	// Боезапас и доступность по видам оружия, индекс = WeaponKind.
	Ammo      [WeaponCount]int
	Available [WeaponCount]bool
	Weapon    WeaponKind

	// Транзиентные таймеры в логических шагах, только убывают до нуля.
	AttackTimer int
	FlashTimer  int
}

// HasWeapon проверяет, открыто ли оружие.
func (p *Player) HasWeapon(w WeaponKind) bool {
	return int(w) < WeaponCount && p.Available[w]
}
