package service

import (
	"fmt"
	"log/slog"

	"github.com/gridgames/tictactoe-cli/internal/entity"
)

// GamePlayService runs a single local match between the human and the bot.
type GamePlayService interface {
	Game() *entity.Game
	MakeHumanTurn(cell int) error
	MakeBotTurn() (int, error)
}

type gamePlayService struct {
	logger *slog.Logger

	game       *entity.Game
	botService BotService
}

func NewGamePlayService(logger *slog.Logger, game *entity.Game, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay", "game_id", game.ID),
		game:       game,
		botService: botService,
	}
}

// Game returns the live match.
func (that *gamePlayService) Game() *entity.Game {
	return that.game
}

// MakeHumanTurn applies the human's move to the live match.
func (that *gamePlayService) MakeHumanTurn(cell int) error {
	if err := that.game.MakeTurn(cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("human made turn", "cell", cell)

	return nil
}

// MakeBotTurn asks the bot for a move, applies it and returns the cell played.
func (that *gamePlayService) MakeBotTurn() (int, error) {
	cell, err := that.botService.ChooseCell(that.game)
	if err != nil {
		return 0, fmt.Errorf("bot failed to choose a cell: %w", err)
	}

	if err = that.game.MakeTurn(cell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "cell", cell)

	return cell, nil
}
