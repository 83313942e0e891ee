package entity

// Player is one of the two sides of a match.
type Player uint8

const (
	// PlayerX is the human side and always moves first.
	PlayerX Player = iota + 1
	// PlayerO is the computer side.
	PlayerO
)

// Opponent returns the other side.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Glyph returns the mark shown on the board for this side.
func (that Player) Glyph() string {
	if that == PlayerX {
		return "X"
	}
	return "O"
}

// Cell returns the occupied cell value belonging to this side.
func (that Player) Cell() Cell {
	if that == PlayerX {
		return CellX
	}
	return CellO
}
