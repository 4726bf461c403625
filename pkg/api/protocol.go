package api

// --- КЛИЕНТ -> СЕРВЕР ---

// Типы клиентских команд.
const (
	CmdInput  = "INPUT"
	CmdFire   = "FIRE"
	CmdPause  = "PAUSE"
	CmdWeapon = "WEAPON"
	CmdReset  = "RESET"
)

// ClientCommand - команда input-коллаборатора.
// INPUT несет непрерывное намерение движения и накопленную дельту мыши;
// FIRE/PAUSE/WEAPON/RESET - одноразовые (edge-triggered) события,
// ядро потребляет их ровно один раз.
type ClientCommand struct {
	Type string `json:"type"`

	// Поля INPUT.
	Forward     bool    `json:"forward,omitempty"`
	Back        bool    `json:"back,omitempty"`
	StrafeLeft  bool    `json:"strafeLeft,omitempty"`
	StrafeRight bool    `json:"strafeRight,omitempty"`
	TurnLeft    bool    `json:"turnLeft,omitempty"`
	TurnRight   bool    `json:"turnRight,omitempty"`
	MouseDelta  float64 `json:"mouseDelta,omitempty"`

	// Поле WEAPON: слот 1..3.
	Slot int `json:"slot,omitempty"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerMessage - корневой объект снапшота, рассылаемый подписчикам
// (рендер, HUD, аудио-мост) после каждого хостового тика.
type ServerMessage struct {
	Type string `json:"type"` // всегда "SNAPSHOT"

	Floor     int     `json:"floor"`
	Theme     string  `json:"theme"`
	BossFloor bool    `json:"bossFloor"`
	Status    string  `json:"status"`
	Time      float64 `json:"time"`

	Player  PlayerView   `json:"player"`
	Enemies []EnemyView  `json:"enemies"`
	Pickups []PickupView `json:"pickups"`

	// Grid присылается только при смене этажа (и первым сообщением
	// после подписки); между сменами клиент кэширует карту.
	Grid *GridView `json:"grid,omitempty"`

	// Дискретные звуковые события с последнего тика.
	Events []SoundEventView `json:"events,omitempty"`

	// Сводка для адаптивного аудио.
	Audio AudioSummary `json:"audio"`
}

// GridView - карта этажа: row-major буфер материалов.
type GridView struct {
	Size  int   `json:"size"`
	Cells []int `json:"cells"`
}

// PlayerView - все, что нужно рендеру и HUD об игроке.
type PlayerView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`

	Health    int `json:"health"`
	MaxHealth int `json:"maxHealth"`

	Weapon      string         `json:"weapon"`
	WeaponRange float64        `json:"weaponRange"`
	Ammo        map[string]int `json:"ammo"`
	Available   []string       `json:"available"`

	// Флаги атаки для отрисовки оружия и вспышки.
	AttackTimer int `json:"attackTimer"`
	FlashTimer  int `json:"flashTimer"`
}

// EnemyView - DTO врага.
type EnemyView struct {
	ID        int     `json:"id"`
	Class     string  `json:"class"`
	State     string  `json:"state"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"maxHealth"`
	// Фаза имеет смысл только для боссов.
	Phase int `json:"phase,omitempty"`
}

// PickupView - DTO предмета на полу.
type PickupView struct {
	ID     int     `json:"id"`
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Weapon string  `json:"weapon,omitempty"`
}

// SoundEventView - дискретное звуковое событие.
type SoundEventView struct {
	Kind   string  `json:"kind"`
	Volume float64 `json:"volume"`
}

// AudioSummary - периодическая сводка для адаптивного аудио:
// клиент рулит интенсивностью эмбиента без знания правил игры.
type AudioSummary struct {
	HealthRatio   float64 `json:"healthRatio"`
	EnemyCount    int     `json:"enemyCount"`
	NearbyEnemies int     `json:"nearbyEnemies"`
	// Дистанция до ближайшего врага; -1, если врагов нет.
	ClosestEnemy float64 `json:"closestEnemy"`
	InCombat     bool    `json:"inCombat"`
	BossFloor    bool    `json:"bossFloor"`
	Floor        int     `json:"floor"`
	Status       string  `json:"status"`
}
