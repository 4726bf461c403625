// Package dungeon - процедурная генерация этажа: зоны, комнаты, двери,
// коридоры, колонны, специальные залы и ремонт связности.
// Контракт генератора: каждая проходимая клетка достижима от спавна
// (центра карты) по 4-соседству.
package dungeon

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/darianrosebrook/figma-make-doom/internal/domain"
	"github.com/darianrosebrook/figma-make-doom/pkg/logger"
	"github.com/darianrosebrook/figma-make-doom/pkg/utils"
)

// Rect - вспомогательная структура для комнаты/зоны.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// zone - прямоугольная зона темы со своим материалом стен.
type zone struct {
	rect     Rect
	material int
}

// Generator держит свой генератор случайных чисел: при одинаковом
// сиде этаж воспроизводится (важно для тестов).
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate создает карту size x size для темы theme.
// Этапы идут строго в порядке: рамка, комнаты по зонам, двери,
// коридоры, колонны, специальные залы, ремонт связности, аварийный проход.
func (g *Generator) Generate(size int, theme domain.FloorTheme) *domain.Grid {
	genLogger := logger.WithComponent("dungeon_generator")

	grid := domain.NewGrid(size)

	// 1. Рамка из пограничного материала темы.
	border := theme.BorderMaterial()
	for i := 0; i < size; i++ {
		grid.Set(i, 0, border)
		grid.Set(i, size-1, border)
		grid.Set(0, i, border)
		grid.Set(size-1, i, border)
	}

	// 2. Комнаты по зонам.
	zones := g.partitionZones(size, theme)
	rooms := g.placeRooms(grid, size, zones)

	// 3. Двери в каждой комнате.
	for _, room := range rooms {
		g.carveDoors(grid, room)
	}

	// 4. Плотные коридоры.
	g.carveCorridors(grid, size)

	// 5. Кластеры колонн.
	g.scatterPillars(grid, size, zones)

	// 6. Специальные залы из библиотеки шаблонов.
	stamped := g.stampSpecialRooms(grid, size, theme)

	// 7. Глобальный ремонт связности от точки спавна.
	spawnX, spawnY := grid.Center()
	repaired := g.repairConnectivity(grid, spawnX, spawnY)

	// 8. Аварийный проход: вероятностная расчистка центральных линий
	// и гарантированная расчистка окрестности спавна.
	g.emergencyPass(grid, size)

	// Аварийная расчистка могла открыть новые клетки - добиваем связность.
	repaired += g.repairConnectivity(grid, spawnX, spawnY)

	genLogger.WithFields(logrus.Fields{
		"size":           size,
		"theme":          theme.String(),
		"rooms":          len(rooms),
		"templates":      stamped,
		"repaired_cells": repaired,
	}).Debug("Floor generated.")

	return grid
}

// partitionZones делит карту на 4-6 прямоугольных зон темы.
// Две колонки, каждая режется на 2-3 ряда.
func (g *Generator) partitionZones(size int, theme domain.FloorTheme) []zone {
	palette := theme.Palette()
	splitX := size/2 + utils.RandRange(g.rng, -size/8, size/8)

	cols := []Rect{
		{X: 0, Y: 0, W: splitX, H: size},
		{X: splitX, Y: 0, W: size - splitX, H: size},
	}

	var zones []zone
	for _, col := range cols {
		rows := utils.RandRange(g.rng, 2, 3)
		h := col.H / rows
		for r := 0; r < rows; r++ {
			zr := Rect{X: col.X, Y: col.Y + r*h, W: col.W, H: h}
			if r == rows-1 {
				zr.H = col.H - r*h // остаток в последний ряд
			}
			zones = append(zones, zone{
				rect:     zr,
				material: palette[len(zones)%len(palette)],
			})
		}
	}
	return zones
}

// materialAt возвращает материал зоны, в которую попадает точка.
func materialAt(zones []zone, x, y int, fallback int) int {
	for _, z := range zones {
		if z.rect.Contains(x, y) {
			return z.material
		}
	}
	return fallback
}

// placeRooms пытается расставить комнаты, отбрасывая пересечения.
// Комната - контур из стен с проходимым нутром; материал - от зоны центра.
func (g *Generator) placeRooms(grid *domain.Grid, size int, zones []zone) []Rect {
	var rooms []Rect
	attempts := size

	for i := 0; i < attempts; i++ {
		w, h := g.rollRoomSize()
		if w+2 >= size || h+2 >= size {
			continue
		}
		x := utils.RandRange(g.rng, 1, size-w-2)
		y := utils.RandRange(g.rng, 1, size-h-2)
		room := Rect{X: x, Y: y, W: w, H: h}

		overlaps := false
		for _, other := range rooms {
			// Запас в одну клетку, чтобы стены комнат не слипались.
			padded := Rect{X: other.X - 1, Y: other.Y - 1, W: other.W + 2, H: other.H + 2}
			if room.Intersects(padded) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		cx, cy := room.Center()
		material := materialAt(zones, cx, cy, zones[0].material)
		g.buildRoom(grid, room, material)
		rooms = append(rooms, room)
	}
	return rooms
}

// rollRoomSize тянет размер из корзин small/medium/large.
func (g *Generator) rollRoomSize() (int, int) {
	roll := g.rng.Float64()
	switch {
	case roll < 0.4: // small
		return utils.RandRange(g.rng, 4, 6), utils.RandRange(g.rng, 4, 6)
	case roll < 0.8: // medium
		return utils.RandRange(g.rng, 7, 9), utils.RandRange(g.rng, 7, 9)
	default: // large
		return utils.RandRange(g.rng, 10, 13), utils.RandRange(g.rng, 10, 13)
	}
}

// buildRoom рисует контур комнаты и чистит нутро.
// Большие комнаты (>8x8) с шансом получают колонну или перегородку.
func (g *Generator) buildRoom(grid *domain.Grid, room Rect, material int) {
	for y := room.Y; y < room.Y+room.H; y++ {
		for x := room.X; x < room.X+room.W; x++ {
			onEdge := x == room.X || y == room.Y || x == room.X+room.W-1 || y == room.Y+room.H-1
			if onEdge {
				grid.Set(x, y, material)
			} else {
				grid.Set(x, y, 0)
			}
		}
	}

	if room.W > 8 && room.H > 8 && utils.Chance(g.rng, 0.6) {
		if utils.Chance(g.rng, 0.5) {
			// Колонна 2x2 в случайном месте нутра.
			px := utils.RandRange(g.rng, room.X+2, room.X+room.W-4)
			py := utils.RandRange(g.rng, room.Y+2, room.Y+room.H-4)
			grid.Set(px, py, material)
			grid.Set(px+1, py, material)
			grid.Set(px, py+1, material)
			grid.Set(px+1, py+1, material)
		} else {
			g.buildPartition(grid, room, material)
		}
	}
}

// buildPartition ставит перегородку поперек комнаты с прорезанным проемом.
func (g *Generator) buildPartition(grid *domain.Grid, room Rect, material int) {
	if utils.Chance(g.rng, 0.5) {
		// Вертикальная перегородка.
		wx := utils.RandRange(g.rng, room.X+3, room.X+room.W-4)
		for y := room.Y + 1; y < room.Y+room.H-1; y++ {
			grid.Set(wx, y, material)
		}
		doorY := utils.RandRange(g.rng, room.Y+1, room.Y+room.H-2)
		grid.Set(wx, doorY, 0)
	} else {
		wy := utils.RandRange(g.rng, room.Y+3, room.Y+room.H-4)
		for x := room.X + 1; x < room.X+room.W-1; x++ {
			grid.Set(x, wy, material)
		}
		doorX := utils.RandRange(g.rng, room.X+1, room.X+room.W-2)
		grid.Set(doorX, wy, 0)
	}
}

// carveDoors прорезает минимум одну дверь в контуре комнаты
// и 0-2 дополнительных, только в не-угловых клетках периметра.
func (g *Generator) carveDoors(grid *domain.Grid, room Rect) {
	var candidates [][2]int
	for x := room.X + 1; x < room.X+room.W-1; x++ {
		candidates = append(candidates,
			[2]int{x, room.Y},
			[2]int{x, room.Y + room.H - 1})
	}
	for y := room.Y + 1; y < room.Y+room.H-1; y++ {
		candidates = append(candidates,
			[2]int{room.X, y},
			[2]int{room.X + room.W - 1, y})
	}
	if len(candidates) == 0 {
		return
	}

	doors := 1 + utils.RandRange(g.rng, 0, 2)
	for d := 0; d < doors; d++ {
		pick := candidates[g.rng.Intn(len(candidates))]
		g.carveInterior(grid, pick[0], pick[1])
	}
}

// carveCorridors прокладывает широкие (до 3 клеток) коридоры в одном
// из 8 направлений со случайными сменами курса. Цель - сократить
// недостижимые карманы еще до ремонта связности.
func (g *Generator) carveCorridors(grid *domain.Grid, size int) {
	dirs := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}

	corridors := size / 4
	for c := 0; c < corridors; c++ {
		x := utils.RandRange(g.rng, 2, size-3)
		y := utils.RandRange(g.rng, 2, size-3)
		dir := dirs[g.rng.Intn(len(dirs))]
		width := utils.RandRange(g.rng, 1, 3)
		length := utils.RandRange(g.rng, size/3, size)

		for step := 0; step < length; step++ {
			for wOff := 0; wOff < width; wOff++ {
				// Ширина откладывается перпендикулярно ходу.
				g.carveInterior(grid, x+dir[1]*wOff, y+dir[0]*wOff)
			}
			x += dir[0]
			y += dir[1]
			if !grid.InBounds(x, y) {
				break
			}
			if utils.Chance(g.rng, 0.15) {
				dir = dirs[g.rng.Intn(len(dirs))]
			}
		}
	}
}

// scatterPillars разбрасывает одиночные и парные препятствия,
// только поверх уже проходимых клеток.
func (g *Generator) scatterPillars(grid *domain.Grid, size int, zones []zone) {
	clusters := size / 3
	for i := 0; i < clusters; i++ {
		x := utils.RandRange(g.rng, 2, size-3)
		y := utils.RandRange(g.rng, 2, size-3)
		if !grid.Passable(x, y) {
			continue
		}
		material := materialAt(zones, x, y, zones[0].material)
		grid.Set(x, y, material)
		if utils.Chance(g.rng, 0.35) {
			nx, ny := x+utils.RandRange(g.rng, -1, 1), y+utils.RandRange(g.rng, -1, 1)
			if grid.Passable(nx, ny) && nx > 0 && ny > 0 && nx < size-1 && ny < size-1 {
				grid.Set(nx, ny, material)
			}
		}
	}
}

// repairConnectivity - BFS от спавна по проходимым клеткам; каждую
// недостижимую проходимую клетку соединяет с ближайшей достижимой
// L-образным проходом (сначала горизонталь, потом вертикаль).
// Возвращает число прорезанных клеток.
func (g *Generator) repairConnectivity(grid *domain.Grid, spawnX, spawnY int) int {
	carved := 0

	// Ограничитель: каждый проход чинит минимум одну клетку,
	// так что больше size^2 итераций быть не может.
	for iter := 0; iter < grid.Size*grid.Size; iter++ {
		reached := floodFill(grid, spawnX, spawnY)

		var orphan *[2]int
		for y := 1; y < grid.Size-1 && orphan == nil; y++ {
			for x := 1; x < grid.Size-1; x++ {
				if grid.Passable(x, y) && !reached[y*grid.Size+x] {
					orphan = &[2]int{x, y}
					break
				}
			}
		}
		if orphan == nil {
			return carved
		}

		tx, ty := nearestReached(grid, reached, orphan[0], orphan[1])
		carved += g.carvePath(grid, orphan[0], orphan[1], tx, ty)
	}
	return carved
}

// floodFill - BFS по 4-соседству от стартовой клетки.
func floodFill(grid *domain.Grid, startX, startY int) []bool {
	reached := make([]bool, grid.Size*grid.Size)
	if !grid.Passable(startX, startY) {
		return reached
	}
	queue := [][2]int{{startX, startY}}
	reached[startY*grid.Size+startX] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := cur[0]+d[0], cur[1]+d[1]
			if grid.Passable(nx, ny) && !reached[ny*grid.Size+nx] {
				reached[ny*grid.Size+nx] = true
				queue = append(queue, [2]int{nx, ny})
			}
		}
	}
	return reached
}

// nearestReached ищет достижимую клетку с минимальной манхэттенской
// дистанцией от (x, y).
func nearestReached(grid *domain.Grid, reached []bool, x, y int) (int, int) {
	bestX, bestY := grid.Center()
	bestDist := grid.Size * grid.Size
	for cy := 1; cy < grid.Size-1; cy++ {
		for cx := 1; cx < grid.Size-1; cx++ {
			if !reached[cy*grid.Size+cx] {
				continue
			}
			d := abs(cx-x) + abs(cy-y)
			if d < bestDist {
				bestDist = d
				bestX, bestY = cx, cy
			}
		}
	}
	return bestX, bestY
}

// carvePath прорезает L-образный проход: горизонталь, потом вертикаль.
func (g *Generator) carvePath(grid *domain.Grid, fromX, fromY, toX, toY int) int {
	carved := 0
	step := func(x, y int) {
		if grid.InBounds(x, y) && x > 0 && y > 0 && x < grid.Size-1 && y < grid.Size-1 {
			if !grid.Passable(x, y) {
				carved++
			}
			grid.Set(x, y, 0)
		}
	}

	x := fromX
	for x != toX {
		step(x, fromY)
		if toX > x {
			x++
		} else {
			x--
		}
	}
	y := fromY
	for y != toY {
		step(toX, y)
		if toY > y {
			y++
		} else {
			y--
		}
	}
	step(toX, toY)
	return carved
}

// emergencyPass - последняя страховка от остаточной изоляции:
// вероятностная расчистка двух центральных линий и гарантированная
// расчистка 3x3 вокруг спавна.
func (g *Generator) emergencyPass(grid *domain.Grid, size int) {
	cx, cy := grid.Center()

	for i := 1; i < size-1; i++ {
		if utils.Chance(g.rng, 0.4) {
			grid.Set(i, cy, 0)
		}
		if utils.Chance(g.rng, 0.4) {
			grid.Set(cx, i, 0)
		}
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			g.carveInterior(grid, cx+dx, cy+dy)
		}
	}
}

// carveInterior чистит клетку, не трогая рамку.
func (g *Generator) carveInterior(grid *domain.Grid, x, y int) {
	if x <= 0 || y <= 0 || x >= grid.Size-1 || y >= grid.Size-1 {
		return
	}
	grid.Set(x, y, 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
