package entity

import (
	"fmt"

	"github.com/gridgames/tictactoe-cli/internal/apperror"
)

const winScore = 10

// Outcome is the derived result of a match.
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeWonByX
	OutcomeWonByO
	OutcomeDraw
)

// Won returns the outcome for a win by the given side.
func Won(player Player) Outcome {
	if player == PlayerX {
		return OutcomeWonByX
	}
	return OutcomeWonByO
}

// Decided reports whether the match has reached a terminal outcome.
func (that Outcome) Decided() bool {
	return that != OutcomeInProgress
}

// Winner returns the winning side, false for a draw or an ongoing match.
func (that Outcome) Winner() (Player, bool) {
	switch that {
	case OutcomeWonByX:
		return PlayerX, true
	case OutcomeWonByO:
		return PlayerO, true
	default:
		return 0, false
	}
}

func (that Outcome) String() string {
	switch that {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWonByX:
		return "won_by_x"
	case OutcomeWonByO:
		return "won_by_o"
	case OutcomeDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// WinCombos are the eight cell triples that decide a match.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game is the state machine of a single match: the board, the side to move
// and the outcome. The outcome is always derived from the board, never set
// from outside.
type Game struct {
	ID      string
	Board   Board
	Turn    Player
	Outcome Outcome
}

// NewGame creates a match with an empty board and the human side to move.
func NewGame(id string) *Game {
	return &Game{
		ID:   id,
		Turn: PlayerX,
	}
}

// NewGameFromBoard creates a match from a pre-populated board and a side to
// move, deriving the outcome immediately. The search uses this to build
// hypothetical states without touching the live match.
func NewGameFromBoard(id string, board Board, turn Player) *Game {
	game := &Game{
		ID:    id,
		Board: board,
		Turn:  turn,
	}
	game.Outcome = deriveOutcome(&board)

	return game
}

// MakeTurn places the active side's mark on the given cell. A rejected move
// leaves the board, the turn and the outcome unchanged. Once the outcome is
// decided the turn is left as-is.
func (that *Game) MakeTurn(cell int) error {
	if that.Outcome.Decided() {
		return apperror.ErrGameFinished
	}

	if err := that.Board.Place(cell, that.Turn); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	// A move can only create a win for its own mover, so checking the mover
	// alone is enough.
	switch {
	case hasWinningLine(&that.Board, that.Turn):
		that.Outcome = Won(that.Turn)
	case that.Board.IsFull():
		that.Outcome = OutcomeDraw
	default:
		that.Turn = that.Turn.Opponent()
	}

	return nil
}

// AvailableCells returns the legal moves in ascending index order.
func (that *Game) AvailableCells() []int {
	return that.Board.AvailableCells()
}

// Evaluate scores the match for the search: +10 when the computer has won,
// -10 when the human has won, 0 for a draw or an ongoing match.
func (that *Game) Evaluate() int {
	switch that.Outcome {
	case OutcomeWonByO:
		return winScore
	case OutcomeWonByX:
		return -winScore
	default:
		return 0
	}
}

func hasWinningLine(board *Board, player Player) bool {
	mark := player.Cell()
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

func deriveOutcome(board *Board) Outcome {
	for _, player := range [2]Player{PlayerX, PlayerO} {
		if hasWinningLine(board, player) {
			return Won(player)
		}
	}

	if board.IsFull() {
		return OutcomeDraw
	}

	return OutcomeInProgress
}
