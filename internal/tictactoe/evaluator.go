package tictactoe

import "github.com/bailey435/baileybennett-tic-tac-toe/internal/entity"

// Evaluate reports whether the board is won, drawn or still ongoing.
// The first completed line in WinLines order decides the winner. The board is never modified.
func Evaluate(board *entity.Board) entity.Outcome {
	for _, line := range entity.WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.MarkEmpty && a == b && b == c {
			return entity.Win(a)
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.Ongoing()
	}

	return entity.Draw()
}
