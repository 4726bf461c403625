package domain

// Tuning - сводные таблицы баланса: оружие и классы врагов.
// Значения по умолчанию зашиты в код; YAML-конфиг может заменить
// отдельные записи целиком (см. engine.LoadTuning).
type Tuning struct {
	Weapons [WeaponCount]WeaponSpec
	Classes [ClassCount]ClassSpec
}

// DefaultTuning возвращает базовый баланс игры.
func DefaultTuning() *Tuning {
	t := &Tuning{}

	t.Weapons[WeaponPistol] = WeaponSpec{
		Name:         "Pistol",
		Range:        15,
		Damage:       12,
		HalfAngle:    0.2,
		FalloffFloor: 0.8,
		ShotCost:     1,
		MaxAmmo:      60,
		StartAmmo:    24,
		RefillAmmo:   20,
		AttackFrames: 12,
		FlashFrames:  6,
	}
	t.Weapons[WeaponShotgun] = WeaponSpec{
		Name:      "Shotgun",
		Range:     8,
		Damage:    22,
		HalfAngle: 0.35,
		// Крутой спад: на полной дальности остается 30% урона.
		FalloffFloor: 0.3,
		ShotCost:     1,
		MaxAmmo:      25,
		StartAmmo:    0,
		RefillAmmo:   8,
		AttackFrames: 26,
		FlashFrames:  8,
	}
	t.Weapons[WeaponChaingun] = WeaponSpec{
		Name:         "Chaingun",
		Range:        20,
		Damage:       8,
		HalfAngle:    0.15,
		FalloffFloor: 0.8,
		ShotCost:     1,
		MaxAmmo:      200,
		StartAmmo:    0,
		RefillAmmo:   50,
		AttackFrames: 5,
		FlashFrames:  4,
	}

	t.Classes[ClassGrunt] = ClassSpec{
		Name:           "Grunt",
		MaxHealth:      30,
		Detection:      8,
		Disengage:      12,
		Speed:          0.035,
		MeleeDamage:    8,
		AttackInterval: 50,
		DropHealth:     0.20,
		DropAmmo:       0.25,
		DropWeapon:     0.02,
	}
	t.Classes[ClassSoldier] = ClassSpec{
		Name:           "Soldier",
		MaxHealth:      50,
		Detection:      10,
		Disengage:      15,
		Speed:          0.045,
		MeleeDamage:    12,
		AttackInterval: 45,
		DropHealth:     0.25,
		DropAmmo:       0.30,
		DropWeapon:     0.05,
	}
	t.Classes[ClassCaptain] = ClassSpec{
		Name:      "Captain",
		MaxHealth: 80,
		Detection: 12,
		Disengage: 18,
		Speed:     0.055,
		// Капитаны бьют чаще рядовых.
		MeleeDamage:    18,
		AttackInterval: 32,
		DropHealth:     0.35,
		DropAmmo:       0.40,
		DropWeapon:     0.10,
	}

	t.Classes[ClassButcher] = ClassSpec{
		Name:           "Butcher",
		MaxHealth:      400,
		Detection:      14,
		Disengage:      22,
		Speed:          0.050,
		MeleeDamage:    30,
		AttackInterval: 40,
		DropHealth:     0.8,
		DropAmmo:       0.8,
		DropWeapon:     0.5,
		// Фазы ускоряют каденцию атак (см. ai.attackInterval).
		PhaseThresholds: []float64{0.66, 0.33},
		MinionBudget:    4,
		SpawnInterval:   300,
		MinionClass:     ClassGrunt,
	}
	t.Classes[ClassSummoner] = ClassSpec{
		Name:           "Summoner",
		MaxHealth:      350,
		Detection:      14,
		Disengage:      22,
		Speed:          0.040,
		MeleeDamage:    20,
		AttackInterval: 48,
		DropHealth:     0.8,
		DropAmmo:       0.8,
		DropWeapon:     0.5,
		// Фазы добавляют миньонов в бюджет (см. combat.applyBossPhases).
		PhaseThresholds: []float64{0.66, 0.33},
		MinionBudget:    6,
		SpawnInterval:   240,
		MinionClass:     ClassSoldier,
	}
	t.Classes[ClassTyrant] = ClassSpec{
		Name:           "Tyrant",
		MaxHealth:      500,
		Detection:      14,
		Disengage:      22,
		Speed:          0.045,
		MeleeDamage:    35,
		AttackInterval: 45,
		DropHealth:     0.8,
		DropAmmo:       0.8,
		DropWeapon:     0.5,
		// Фазы сокращают кулдаун спавна миньонов.
		PhaseThresholds: []float64{0.66, 0.33},
		MinionBudget:    5,
		SpawnInterval:   360,
		MinionClass:     ClassCaptain,
	}

	return t
}

// BossForFloor выбирает класс босса для боссового этажа: три класса
// чередуются по порядку боссовых этажей (5, 10, 15, ...).
func BossForFloor(floor int) EnemyClass {
	idx := (floor/BossFloorEvery - 1) % 3
	if idx < 0 {
		idx = 0
	}
	return []EnemyClass{ClassButcher, ClassSummoner, ClassTyrant}[idx]
}
