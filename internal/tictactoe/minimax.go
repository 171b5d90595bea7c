package tictactoe

import (
	"math"

	"github.com/bailey435/baileybennett-tic-tac-toe/internal/apperror"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/entity"
)

const winScore = 10

// ChooseComputerMove runs a full-depth minimax search for the computer (O)
// and returns the best cell. Equal scores keep the lowest index.
//
// Candidate moves are placed on the board and undone after scoring, so the
// board holds its original contents when the call returns.
func ChooseComputerMove(board *entity.Board) (int, error) {
	bestScore := math.MinInt
	bestMove := -1

	for cell := range board {
		if !board.IsEmpty(cell) {
			continue
		}

		board[cell] = entity.ComputerMark
		score := minimax(board, 0, false)
		board[cell] = entity.MarkEmpty

		if score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	if bestMove < 0 {
		return -1, apperror.ErrNoAvailableMoves
	}

	return bestMove, nil
}

// minimax scores the board from the computer's point of view. Depth counts
// the hypothetical moves made since the decision point: faster wins and
// slower losses score better.
func minimax(board *entity.Board, depth int, maximizing bool) int {
	outcome := Evaluate(board)
	switch outcome.Result {
	case entity.ResultWin:
		if outcome.Winner == entity.ComputerMark {
			return winScore - depth
		}
		return depth - winScore
	case entity.ResultDraw:
		return 0
	case entity.ResultOngoing:
	}

	if maximizing {
		best := math.MinInt
		for cell := range board {
			if !board.IsEmpty(cell) {
				continue
			}

			board[cell] = entity.ComputerMark
			best = max(best, minimax(board, depth+1, false))
			board[cell] = entity.MarkEmpty
		}

		return best
	}

	best := math.MaxInt
	for cell := range board {
		if !board.IsEmpty(cell) {
			continue
		}

		board[cell] = entity.HumanMark
		best = min(best, minimax(board, depth+1, true))
		board[cell] = entity.MarkEmpty
	}

	return best
}
