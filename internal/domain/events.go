package domain

// SoundKind - дискретное звуковое событие для аудио-коллаборатора.
// Ядро только эмитит события; синтез звука живет на клиенте.
type SoundKind uint8

const (
	SoundUnknown SoundKind = iota
	SoundPistol
	SoundShotgun
	SoundChaingun
	SoundEnemyHit
	SoundEnemyDie
	SoundPlayerHurt
	SoundPickup
	SoundWeaponSwitch
	SoundFootstep
	SoundBossPhase
	SoundMinionSpawn
	SoundVictory
	SoundDefeat
)

var soundToString = map[SoundKind]string{
	SoundPistol:       "PISTOL",
	SoundShotgun:      "SHOTGUN",
	SoundChaingun:     "CHAINGUN",
	SoundEnemyHit:     "ENEMY_HIT",
	SoundEnemyDie:     "ENEMY_DIE",
	SoundPlayerHurt:   "PLAYER_HURT",
	SoundPickup:       "PICKUP",
	SoundWeaponSwitch: "WEAPON_SWITCH",
	SoundFootstep:     "FOOTSTEP",
	SoundBossPhase:    "BOSS_PHASE",
	SoundMinionSpawn:  "MINION_SPAWN",
	SoundVictory:      "VICTORY",
	SoundDefeat:       "DEFEAT",
}

func (s SoundKind) String() string {
	if v, ok := soundToString[s]; ok {
		return v
	}
	return "UNKNOWN"
}

// SoundEvent - событие с громкостью (0..1). Громкость подсказывает клиенту
// затухание по дистанции, рассчитанное ядром.
type SoundEvent struct {
	Kind   SoundKind
	Volume float64
}

// FireSound - звук выстрела для вида оружия.
func FireSound(w WeaponKind) SoundKind {
	switch w {
	case WeaponShotgun:
		return SoundShotgun
	case WeaponChaingun:
		return SoundChaingun
	default:
		return SoundPistol
	}
}
