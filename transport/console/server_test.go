package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gridgames/tictactoe-cli/internal/entity"
	"github.com/gridgames/tictactoe-cli/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, game *entity.Game, input string) (*Server, *bytes.Buffer) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	gameplay := service.NewGamePlayService(logger, game, service.NewBotService())

	out := &bytes.Buffer{}
	renderer := NewRenderer(out, false)

	return New(logger, gameplay, renderer, strings.NewReader(input), out), out
}

func TestServer_Run(t *testing.T) {
	t.Run("Human completes a winning line and the session reports the win", func(t *testing.T) {
		// Given: X occupies 0 and 1, O occupies 3 and 4, X to move
		board := entity.Board{
			entity.CellX, entity.CellX, entity.CellEmpty,
			entity.CellO, entity.CellO, entity.CellEmpty,
			entity.CellEmpty, entity.CellEmpty, entity.CellEmpty,
		}
		game := entity.NewGameFromBoard("123", board, entity.PlayerX)
		server, out := newTestServer(t, game, "3\n")

		// When: the session runs
		err := server.Run(context.Background())

		// Then: X wins on the top row and the win message is printed
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWonByX, game.Outcome)
		assert.Contains(t, out.String(), "Congratulations! You won!")
	})

	t.Run("Rejected submissions are re-prompted without changing state", func(t *testing.T) {
		// Given: the same position, with garbage before the winning move
		board := entity.Board{
			entity.CellX, entity.CellX, entity.CellEmpty,
			entity.CellO, entity.CellO, entity.CellEmpty,
			entity.CellEmpty, entity.CellEmpty, entity.CellEmpty,
		}
		game := entity.NewGameFromBoard("123", board, entity.PlayerX)
		server, out := newTestServer(t, game, "abc\n0\n10\n1\n3\n")

		// When: the session runs
		err := server.Run(context.Background())

		// Then: every bad submission got its own message and X still won
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Invalid input! Please enter a number between 1 and 9.")
		assert.Contains(t, out.String(), "That position is already taken! Try another.")
		assert.Equal(t, entity.OutcomeWonByX, game.Outcome)
	})

	t.Run("Computer completes a winning line and the session reports it", func(t *testing.T) {
		// Given: O occupies 3 and 4 with O to move
		board := entity.Board{
			entity.CellX, entity.CellX, entity.CellEmpty,
			entity.CellO, entity.CellO, entity.CellEmpty,
			entity.CellEmpty, entity.CellEmpty, entity.CellX,
		}
		game := entity.NewGameFromBoard("123", board, entity.PlayerO)
		server, out := newTestServer(t, game, "")

		// When: the session runs
		err := server.Run(context.Background())

		// Then: the bot wins on position 6 (cell 5) without needing input
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWonByO, game.Outcome)
		assert.Contains(t, out.String(), "Computer played position 6")
		assert.Contains(t, out.String(), "The computer wins! Better luck next time!")
	})

	t.Run("Draw on the last cell prints the draw message", func(t *testing.T) {
		// Given: one empty cell left and no winning line possible
		board := entity.Board{
			entity.CellX, entity.CellO, entity.CellX,
			entity.CellX, entity.CellO, entity.CellO,
			entity.CellO, entity.CellX, entity.CellEmpty,
		}
		game := entity.NewGameFromBoard("123", board, entity.PlayerX)
		server, out := newTestServer(t, game, "9\n")

		// When: the session runs
		err := server.Run(context.Background())

		// Then: the match ends in a draw
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeDraw, game.Outcome)
		assert.Contains(t, out.String(), "It's a draw! Well played!")
	})

	t.Run("Error when the input stream ends mid-match", func(t *testing.T) {
		// Given: a fresh match and no input at all
		game := entity.NewGame("123")
		server, _ := newTestServer(t, game, "")

		// When: the session runs
		err := server.Run(context.Background())

		// Then: ErrInputClosed is returned
		require.ErrorIs(t, err, ErrInputClosed)
	})

	t.Run("Welcome banner includes the position guide", func(t *testing.T) {
		game := entity.NewGame("123")
		server, out := newTestServer(t, game, "")

		_ = server.Run(context.Background())

		assert.Contains(t, out.String(), "Welcome to Tic-Tac-Toe!")
		assert.Contains(t, out.String(), "   1 | 2 | 3")
		assert.Contains(t, out.String(), "   7 | 8 | 9")
	})
}
