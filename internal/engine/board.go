package engine

import (
	"go_tutor/internal/domain/game"
)

// BoardView is the read-only side of the board. The analyzer and the capture
// evaluation phase work exclusively against this interface; only the rules
// engine ever touches the mutable *Board.
type BoardView interface {
	Size() int
	At(x, y int) game.Color
	InBounds(x, y int) bool
}

var directions = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

type Board struct {
	size  int
	cells []game.Color
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]game.Color, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

func (b *Board) At(x, y int) game.Color {
	return b.cells[y*b.size+x]
}

func (b *Board) set(x, y int, c game.Color) {
	b.cells[y*b.size+x] = c
}

func (b *Board) Clone() *Board {
	cells := make([]game.Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) CountStones(c game.Color) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Grid copies the board into a row-major snapshot for responses.
func (b *Board) Grid() [][]game.Color {
	grid := make([][]game.Color, b.size)
	for y := 0; y < b.size; y++ {
		row := make([]game.Color, b.size)
		for x := 0; x < b.size; x++ {
			row[x] = b.At(x, y)
		}
		grid[y] = row
	}
	return grid
}
