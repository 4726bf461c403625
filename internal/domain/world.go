package domain

// Position - позиция в непрерывных координатах мира.
// Клетка сетки, в которой находится точка, получается усечением (int(X), int(Y)).
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// OutOfBounds - маркерное значение материала за пределами карты.
// Оно ненулевое, поэтому выход за границы естественно читается как стена.
const OutOfBounds = -1

// Grid - карта уровня: плоский row-major буфер вместо вложенных слайсов.
// 0 = проходимая клетка, >0 = стена с кодом материала темы.
type Grid struct {
	Size  int
	cells []int
}

// NewGrid создает пустую (полностью проходимую) карту size x size.
func NewGrid(size int) *Grid {
	return &Grid{
		Size:  size,
		cells: make([]int, size*size),
	}
}

// InBounds проверяет, что клетка внутри карты.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Size && y < g.Size
}

// At возвращает материал клетки. За границами - OutOfBounds.
func (g *Grid) At(x, y int) int {
	if !g.InBounds(x, y) {
		return OutOfBounds
	}
	return g.cells[y*g.Size+x]
}

// Set записывает материал клетки. Запись за границы молча игнорируется.
func (g *Grid) Set(x, y, material int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Size+x] = material
}

// Blocked: стеной считается и настоящая стена, и выход за границы.
func (g *Grid) Blocked(x, y int) bool {
	return g.At(x, y) != 0
}

// Passable - клетка внутри карты и без стены.
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.Size+x] == 0
}

// Cells возвращает копию буфера (для снапшотов и отладочного дампа).
func (g *Grid) Cells() []int {
	out := make([]int, len(g.cells))
	copy(out, g.cells)
	return out
}

// Center возвращает клетку центра карты (точка спавна игрока).
func (g *Grid) Center() (int, int) {
	return g.Size / 2, g.Size / 2
}
