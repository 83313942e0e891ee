package entity

import (
	"errors"
	"fmt"

	"github.com/gridgames/tictactoe-cli/internal/apperror"
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

var ErrInvalidCell = errors.New("invalid cell index")

// Cell is the occupancy state of a single board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

// Glyph returns the mark shown on the board for this cell, a space when empty.
func (that Cell) Glyph() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return " "
	}
}

// Board is the 3x3 playing surface, stored row-major (index = row*3 + col).
// It tracks occupancy only; the rules of the game live in Game.
type Board [BoardSize]Cell

// Get returns the cell at the given index, false when the index is out of range.
func (that *Board) Get(cell int) (Cell, bool) {
	if cell < 0 || cell >= BoardSize {
		return CellEmpty, false
	}
	return that[cell], true
}

// Place marks the cell for the given player. An occupied cell is never
// overwritten, and a failed placement leaves the board untouched.
func (that *Board) Place(cell int, player Player) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that[cell] != CellEmpty {
		return apperror.ErrCellOccupied
	}

	that[cell] = player.Cell()

	return nil
}

// AvailableCells returns the empty cell indexes in ascending order.
func (that *Board) AvailableCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == CellEmpty {
			cells = append(cells, i)
		}
	}

	return cells
}

// IsFull reports whether no empty cell remains.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == CellEmpty {
			return false
		}
	}

	return true
}
