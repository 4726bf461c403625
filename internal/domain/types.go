package domain

import "strings"

// Status - общее состояние игры.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusVictory
	StatusDefeat
)

var statusToString = map[Status]string{
	StatusPlaying: "PLAYING",
	StatusPaused:  "PAUSED",
	StatusVictory: "VICTORY",
	StatusDefeat:  "DEFEAT",
}

func (s Status) String() string {
	if v, ok := statusToString[s]; ok {
		return v
	}
	return "UNKNOWN"
}

// FloorTheme - тема этажа. Определяет коды материалов стен.
type FloorTheme uint8

const (
	ThemeDungeon FloorTheme = iota
	ThemeCrypt
	ThemeCavern
	ThemeFoundry
	ThemeHellscape

	ThemeCount = 5
)

var themeToString = map[FloorTheme]string{
	ThemeDungeon:   "DUNGEON",
	ThemeCrypt:     "CRYPT",
	ThemeCavern:    "CAVERN",
	ThemeFoundry:   "FOUNDRY",
	ThemeHellscape: "HELLSCAPE",
}

var themeFromString = map[string]FloorTheme{
	"DUNGEON":   ThemeDungeon,
	"CRYPT":     ThemeCrypt,
	"CAVERN":    ThemeCavern,
	"FOUNDRY":   ThemeFoundry,
	"HELLSCAPE": ThemeHellscape,
}

func (t FloorTheme) String() string {
	if v, ok := themeToString[t]; ok {
		return v
	}
	return "UNKNOWN"
}

// ParseTheme конвертирует строку (из конфига) в FloorTheme.
func ParseTheme(s string) (FloorTheme, bool) {
	t, ok := themeFromString[strings.ToUpper(s)]
	return t, ok
}

// ThemeForFloor возвращает тему для номера этажа (циклически).
func ThemeForFloor(floor int) FloorTheme {
	if floor < 1 {
		floor = 1
	}
	return FloorTheme((floor - 1) % ThemeCount)
}

// Коды материалов стен. База темы + смещение внутри палитры.
// 0 зарезервирован за проходимой клеткой, поэтому базы начинаются с 1.
const themeMaterialStride = 10

// BorderMaterial - материал внешней рамки карты для темы.
func (t FloorTheme) BorderMaterial() int {
	return int(t)*themeMaterialStride + 1
}

// Palette - материалы зон для комнат этой темы.
func (t FloorTheme) Palette() []int {
	base := int(t) * themeMaterialStride
	return []int{base + 2, base + 3, base + 4, base + 5}
}
