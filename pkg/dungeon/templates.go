package dungeon

import (
	"github.com/darianrosebrook/figma-make-doom/internal/domain"
	"github.com/darianrosebrook/figma-make-doom/pkg/utils"
)

// RoomTemplate - многоклеточный шаблон специального зала.
// '#' - стена, '.' - гарантированный пол, ' ' - клетка не трогается.
type RoomTemplate struct {
	Name string
	Rows []string
}

// Библиотека шаблонов: крест, L, круг, H, ромб и составной зал.
var roomTemplates = []RoomTemplate{
	{
		Name: "cross",
		Rows: []string{
			"  ###  ",
			"  #.#  ",
			"###.###",
			"#.....#",
			"###.###",
			"  #.#  ",
			"  ###  ",
		},
	},
	{
		Name: "l_shape",
		Rows: []string{
			"#####  ",
			"#...#  ",
			"#.#.###",
			"#.#...#",
			"#.###.#",
			"#.....#",
			"#######",
		},
	},
	{
		Name: "circle",
		Rows: []string{
			"  ####  ",
			" #....# ",
			"#......#",
			"#......#",
			"#......#",
			"#......#",
			" #....# ",
			"  ####  ",
		},
	},
	{
		Name: "h_shape",
		Rows: []string{
			"### ###",
			"#.# #.#",
			"#.###.#",
			"#.....#",
			"#.###.#",
			"#.# #.#",
			"### ###",
		},
	},
	{
		Name: "diamond",
		Rows: []string{
			"   #   ",
			"  #.#  ",
			" #...# ",
			"#.....#",
			" #...# ",
			"  #.#  ",
			"   #   ",
		},
	},
	{
		Name: "complex",
		Rows: []string{
			"#########",
			"#...#...#",
			"#.#.#.#.#",
			"#.#...#.#",
			"#.##.##.#",
			"#.......#",
			"####.####",
			"#.......#",
			"#########",
		},
	},
}

// maxTemplateOverlap - максимальная доля клеток отпечатка, уже занятых
// стенами, при которой шаблон все еще штампуется.
const maxTemplateOverlap = 0.3

// stampSpecialRooms пытается проштамповать 2-3 специальных зала.
// Возвращает число успешно размещенных.
func (g *Generator) stampSpecialRooms(grid *domain.Grid, size int, theme domain.FloorTheme) int {
	palette := theme.Palette()
	want := utils.RandRange(g.rng, 2, 3)
	stamped := 0

	for attempt := 0; attempt < want*4 && stamped < want; attempt++ {
		tpl := roomTemplates[g.rng.Intn(len(roomTemplates))]
		tw := len(tpl.Rows[0])
		th := len(tpl.Rows)
		if tw+2 >= size || th+2 >= size {
			continue
		}

		ox := utils.RandRange(g.rng, 1, size-tw-2)
		oy := utils.RandRange(g.rng, 1, size-th-2)

		if templateOverlap(grid, tpl, ox, oy) >= maxTemplateOverlap {
			continue
		}

		material := palette[g.rng.Intn(len(palette))]
		stampTemplate(grid, tpl, ox, oy, material)
		g.repairTemplatePerimeter(grid, ox, oy, tw, th)
		stamped++
	}
	return stamped
}

// templateOverlap - доля значимых клеток шаблона, под которыми уже стена.
func templateOverlap(grid *domain.Grid, tpl RoomTemplate, ox, oy int) float64 {
	total, walls := 0, 0
	for ty, row := range tpl.Rows {
		for tx, c := range row {
			if c == ' ' {
				continue
			}
			total++
			if grid.Blocked(ox+tx, oy+ty) {
				walls++
			}
		}
	}
	if total == 0 {
		return 1
	}
	return float64(walls) / float64(total)
}

// stampTemplate переносит шаблон на карту.
func stampTemplate(grid *domain.Grid, tpl RoomTemplate, ox, oy, material int) {
	for ty, row := range tpl.Rows {
		for tx, c := range row {
			switch c {
			case '#':
				grid.Set(ox+tx, oy+ty, material)
			case '.':
				grid.Set(ox+tx, oy+ty, 0)
			}
		}
	}
}

// repairTemplatePerimeter прорезает проемы в серединах сторон
// ограничивающего прямоугольника шаблона, чтобы зал соединился
// с окружением до глобального ремонта связности.
func (g *Generator) repairTemplatePerimeter(grid *domain.Grid, ox, oy, tw, th int) {
	midX := ox + tw/2
	midY := oy + th/2

	openings := [][2]int{
		{midX, oy},          // север
		{midX, oy + th - 1}, // юг
		{ox, midY},          // запад
		{ox + tw - 1, midY}, // восток
	}
	for _, o := range openings {
		g.carveInterior(grid, o[0], o[1])
	}
}
