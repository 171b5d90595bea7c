package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bailey435/baileybennett-tic-tac-toe/internal/entity"
)

type styles struct {
	title    lipgloss.Style
	turn     lipgloss.Style
	announce lipgloss.Style
	x        lipgloss.Style
	o        lipgloss.Style
	free     lipgloss.Style
	grid     lipgloss.Style
}

// newStyles binds the styles to out so colors are dropped when out is not a terminal.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		turn:     r.NewStyle().Bold(true),
		announce: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#bb0000", Dark: "#df1010"}),
		x:        r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#007e50", Dark: "#6afd76"}),
		o:        r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#0003ad", Dark: "#5f61fc"}),
		free:     r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141", Dark: "#8f8f8f"}),
		grid:     r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// board draws the grid; free cells show the number to type for them.
func (that styles) board(board *entity.Board) string {
	rows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, that.cell(board, row*3+col))
		}
		rows = append(rows, strings.Join(cells, " | "))
	}

	return that.grid.Render(strings.Join(rows, "\n"))
}

func (that styles) cell(board *entity.Board, i int) string {
	switch board[i] {
	case entity.MarkX:
		return that.x.Render("X")
	case entity.MarkO:
		return that.o.Render("O")
	default:
		return that.free.Render(strconv.Itoa(i + 1))
	}
}
