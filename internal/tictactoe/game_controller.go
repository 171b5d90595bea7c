package tictactoe

import (
	"fmt"

	"github.com/bailey435/baileybennett-tic-tac-toe/internal/apperror"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/entity"
)

// MakeTurn places mark on cell for the side to move, then finishes the game or passes the turn.
func MakeTurn(game *entity.Game, mark entity.Mark, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell] = mark
	updateGameStatus(game, mark)

	return nil
}

// MakeHumanTurn plays cell for whoever is to move. In games against the computer only X is human.
func MakeHumanTurn(game *entity.Game, cell int) error {
	if game.IsWithBot() && game.Turn != entity.HumanMark {
		return apperror.ErrNotYourTurn
	}

	return MakeTurn(game, game.Turn, cell)
}

// MakeComputerTurn asks the search engine for O's move and applies it.
// Pacing is left to the caller: the search itself returns immediately.
func MakeComputerTurn(game *entity.Game) (int, error) {
	if game.IsFinished() {
		return -1, apperror.ErrGameFinished
	}

	if !game.IsComputerTurn() {
		return -1, apperror.ErrNotComputerTurn
	}

	cell, err := ChooseComputerMove(&game.Board)
	if err != nil {
		return -1, fmt.Errorf("failed to choose computer move: %w", err)
	}

	if err = MakeTurn(game, entity.ComputerMark, cell); err != nil {
		return -1, err
	}

	return cell, nil
}

// Reset starts a new round: empty board, X to move. The running score is kept.
func Reset(game *entity.Game) {
	game.Board = entity.Board{}
	game.Turn = entity.MarkX
	game.Winner = entity.MarkEmpty
	game.Status = entity.StatusOngoing
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark entity.Mark, cell int) error {
	if !entity.ValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if !game.Board.IsEmpty(cell) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, mark entity.Mark) {
	outcome := Evaluate(&game.Board)

	switch outcome.Result {
	case entity.ResultWin:
		game.Winner = outcome.Winner
		game.Status = entity.StatusFinished
		game.Turn = entity.MarkEmpty
		addWin(&game.Score, outcome.Winner)
	case entity.ResultDraw:
		game.Winner = entity.MarkTie
		game.Status = entity.StatusFinished
		game.Turn = entity.MarkEmpty
	case entity.ResultOngoing:
		game.Turn = mark.Opponent()
	}
}

func addWin(score *entity.Score, winner entity.Mark) {
	switch winner {
	case entity.MarkX:
		score.X++
	case entity.MarkO:
		score.O++
	}
}
