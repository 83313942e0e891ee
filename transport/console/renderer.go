package console

import (
	"io"
	"strings"

	"github.com/gridgames/tictactoe-cli/internal/entity"
	"github.com/muesli/termenv"
)

// Renderer draws the board and match messages for a terminal.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer creates a renderer for the given writer. With color disabled
// the output is plain ASCII, which also keeps test output stable.
func NewRenderer(w io.Writer, color bool) *Renderer {
	profile := termenv.ANSI
	if !color {
		profile = termenv.Ascii
	}

	return &Renderer{
		output: termenv.NewOutput(w, termenv.WithProfile(profile)),
	}
}

// Board renders the 3x3 grid with row separators.
func (that *Renderer) Board(board *entity.Board) string {
	var b strings.Builder

	b.WriteString("\n")
	for row := 0; row < 3; row++ {
		b.WriteString(" ")
		for col := 0; col < 3; col++ {
			b.WriteString(" " + that.cell(board[row*3+col]) + " ")
			if col < 2 {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")
		if row < 2 {
			b.WriteString(" -----------\n")
		}
	}
	b.WriteString("\n")

	return b.String()
}

// PositionGuide shows how the 1-9 positions map onto the grid.
func (that *Renderer) PositionGuide() string {
	return strings.Join([]string{
		"   1 | 2 | 3",
		"  -----------",
		"   4 | 5 | 6",
		"  -----------",
		"   7 | 8 | 9",
	}, "\n") + "\n"
}

// ResultMessage returns the end-of-match message for a terminal outcome,
// an empty string while the match is still in progress.
func (that *Renderer) ResultMessage(outcome entity.Outcome) string {
	switch outcome {
	case entity.OutcomeWonByX:
		return "Congratulations! You won!"
	case entity.OutcomeWonByO:
		return "The computer wins! Better luck next time!"
	case entity.OutcomeDraw:
		return "It's a draw! Well played!"
	default:
		return ""
	}
}

func (that *Renderer) cell(cell entity.Cell) string {
	switch cell {
	case entity.CellX:
		return that.output.String(cell.Glyph()).Foreground(termenv.ANSIBrightRed).Bold().String()
	case entity.CellO:
		return that.output.String(cell.Glyph()).Foreground(termenv.ANSIBrightCyan).Bold().String()
	default:
		return cell.Glyph()
	}
}
