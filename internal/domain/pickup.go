package domain

// PickupKind - вид подбираемого предмета.
type PickupKind uint8

const (
	PickupHealth PickupKind = iota
	PickupAmmo
	PickupWeapon
)

var pickupToString = map[PickupKind]string{
	PickupHealth: "HEALTH",
	PickupAmmo:   "AMMO",
	PickupWeapon: "WEAPON",
}

func (k PickupKind) String() string {
	if v, ok := pickupToString[k]; ok {
		return v
	}
	return "UNKNOWN"
}

// Pickup - предмет на полу. Создается дроп-таблицей при смерти врага
// или посевом при генерации этажа; исчезает при подборе игроком.
type Pickup struct {
	ID   int
	Pos  Position
	Kind PickupKind
	// Value: для HEALTH - очки здоровья, для AMMO - патроны,
	// для WEAPON - бонусные патроны к выданному оружию.
	Value  int
	Weapon WeaponKind // только для PickupWeapon
}
