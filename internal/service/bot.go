package service

import (
	"math"

	"github.com/gridgames/tictactoe-cli/internal/apperror"
	"github.com/gridgames/tictactoe-cli/internal/entity"
)

// BotService picks the computer side's moves.
type BotService interface {
	ChooseCell(game *entity.Game) (int, error)
}

type botService struct {
	mark entity.Player
}

// NewBotService creates a bot that plays the computer side perfectly by
// searching the full remaining game tree.
func NewBotService() BotService {
	return &botService{mark: entity.PlayerO}
}

// ChooseCell returns the optimal cell for the computer under perfect play by
// both sides. Candidates are scanned in ascending index order and only a
// strictly better score replaces the current best, so the lowest-index
// optimal move wins ties. The passed game is never mutated.
func (that *botService) ChooseCell(game *entity.Game) (int, error) {
	availableCells := game.AvailableCells()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	bestScore := math.MinInt
	bestCell := availableCells[0]

	for _, cell := range availableCells {
		score := that.minimax(that.simulate(game, cell, that.mark), 1, false)
		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, nil
}

// minimax scores a hypothetical state: the computer maximizes, the human
// minimizes. Terminal scores are biased by depth so that faster wins and
// slower losses rank higher. Recursion is bounded by the nine board cells.
func (that *botService) minimax(game *entity.Game, depth int, maximizing bool) int {
	score := game.Evaluate()
	if score > 0 {
		return score - depth
	}
	if score < 0 {
		return score + depth
	}

	availableCells := game.AvailableCells()
	if len(availableCells) == 0 {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, cell := range availableCells {
			if childScore := that.minimax(that.simulate(game, cell, that.mark), depth+1, false); childScore > best {
				best = childScore
			}
		}

		return best
	}

	best := math.MaxInt
	for _, cell := range availableCells {
		if childScore := that.minimax(that.simulate(game, cell, that.mark.Opponent()), depth+1, true); childScore < best {
			best = childScore
		}
	}

	return best
}

// simulate builds an independent game reflecting the mover's placement. The
// board is copied by value, so the original game cannot be aliased.
func (that *botService) simulate(game *entity.Game, cell int, mover entity.Player) *entity.Game {
	board := game.Board
	board[cell] = mover.Cell()

	return entity.NewGameFromBoard(game.ID, board, mover.Opponent())
}
