package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrNotComputerTurn   = errors.New("it's not the computer's turn")
	ErrUnknownGameType   = errors.New("unknown game type")
	ErrGameNotFound      = errors.New("game not found")
	ErrUnknownGameStatus = errors.New("unknown game status")
)
