package entity

import (
	"fmt"

	"github.com/bailey435/baileybennett-tic-tac-toe/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	PvPType     = "pvp"
	WithBotType = "bot"
)

// State is the position of a game in the turn state machine.
type State string

const (
	StateXTurn State = "x_turn"
	StateOTurn State = "o_turn"
	StateWon   State = "won"
	StateDrawn State = "drawn"
)

// Score holds the running totals across games of one session. Draws are not counted.
type Score struct {
	X int `json:"x"`
	O int `json:"o"`
}

type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Winner Mark   `json:"winner"`
	Status string `json:"status"`
	Turn   Mark   `json:"player_turn"`
	Type   string `json:"type"`
	Score  Score  `json:"score"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Turn:   MarkX,
		Status: StatusOngoing,
		Type:   gameType,
	}
}

func ValidGameType(gameType string) error {
	switch gameType {
	case PvPType, WithBotType:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownGameType, gameType)
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// IsComputerTurn reports whether the controller must ask the search engine for the next move.
func (that *Game) IsComputerTurn() bool {
	return that.IsWithBot() && that.IsOngoing() && that.Turn == ComputerMark
}

func (that *Game) State() (State, error) {
	switch that.Status {
	case StatusOngoing:
		if that.Turn == MarkO {
			return StateOTurn, nil
		}
		return StateXTurn, nil
	case StatusFinished:
		if that.Winner == MarkTie {
			return StateDrawn, nil
		}
		return StateWon, nil
	default:
		return "", fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}
