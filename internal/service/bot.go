package service

import (
	"fmt"

	"github.com/bailey435/baileybennett-tic-tac-toe/internal/entity"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn plays the minimax move for the computer and returns the chosen cell.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	cell, err := tictactoe.MakeComputerTurn(game)
	if err != nil {
		return -1, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}
