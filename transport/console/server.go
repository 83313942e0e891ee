package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gridgames/tictactoe-cli/internal/apperror"
	"github.com/gridgames/tictactoe-cli/internal/entity"
	"github.com/gridgames/tictactoe-cli/internal/service"
)

// ErrInputClosed is returned when the input stream ends before the match does.
var ErrInputClosed = errors.New("input stream closed")

// Server runs one interactive match on a terminal. It owns no game rules:
// every move goes through the gameplay service, and rejected moves are
// re-prompted without touching the match state.
type Server struct {
	logger *slog.Logger

	gameplay service.GamePlayService
	renderer *Renderer

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, gameplay service.GamePlayService, renderer *Renderer, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:   logger.With("component", "console"),
		gameplay: gameplay,
		renderer: renderer,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run plays the match until a terminal outcome and reports the result.
func (that *Server) Run(ctx context.Context) error {
	that.printWelcome()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		game := that.gameplay.Game()
		fmt.Fprint(that.out, that.renderer.Board(&game.Board))

		if game.Outcome.Decided() {
			fmt.Fprintln(that.out, that.renderer.ResultMessage(game.Outcome))
			that.logger.Info("match finished", "game_id", game.ID, "outcome", game.Outcome.String())

			return nil
		}

		var err error
		if game.Turn == entity.PlayerX {
			err = that.humanTurn()
		} else {
			err = that.botTurn()
		}
		if err != nil {
			return err
		}
	}
}

// humanTurn prompts until the human submits a move the match accepts.
// Positions are 1-indexed on the terminal and translated to the 0-indexed
// board here.
func (that *Server) humanTurn() error {
	for {
		fmt.Fprint(that.out, "Your turn (X). Enter position (1-9): ")

		line, err := that.readLine()
		if err != nil {
			return err
		}

		position, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || position < 1 || position > entity.BoardSize {
			fmt.Fprintln(that.out, "Invalid input! Please enter a number between 1 and 9.")
			continue
		}

		err = that.gameplay.MakeHumanTurn(position - 1)
		if errors.Is(err, apperror.ErrCellOccupied) {
			fmt.Fprintln(that.out, "That position is already taken! Try another.")
			continue
		}
		if err != nil {
			return fmt.Errorf("human turn failed: %w", err)
		}

		return nil
	}
}

func (that *Server) botTurn() error {
	fmt.Fprintln(that.out, "Computer is thinking...")

	cell, err := that.gameplay.MakeBotTurn()
	if err != nil {
		return fmt.Errorf("bot turn failed: %w", err)
	}

	fmt.Fprintf(that.out, "Computer played position %d\n", cell+1)

	return nil
}

func (that *Server) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", ErrInputClosed
	}

	return that.in.Text(), nil
}

func (that *Server) printWelcome() {
	fmt.Fprintln(that.out, "=================================")
	fmt.Fprintln(that.out, "   Welcome to Tic-Tac-Toe!")
	fmt.Fprintln(that.out, "=================================")
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, "You are X, the computer is O.")
	fmt.Fprintln(that.out, "Enter positions 1-9 as shown:")
	fmt.Fprintln(that.out)
	fmt.Fprint(that.out, that.renderer.PositionGuide())
}
