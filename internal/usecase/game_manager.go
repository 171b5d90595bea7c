package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bailey435/baileybennett-tic-tac-toe/internal/entity"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/pkg"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
}

// GameManager is the outer turn controller: it owns the stored game and applies
// human moves, computer moves and resets to it.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	bot      botService
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		bot:      bot,
	}
}

func (that *GameManager) CreateGame(ctx context.Context, gameType string) (*entity.Game, error) {
	if err := entity.ValidGameType(gameType); err != nil {
		return nil, err
	}

	game := entity.NewGame(pkg.GenerateGameID(), gameType)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "type", game.Type)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn applies a human move for the side to move.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	mark := game.Turn
	if err = tictactoe.MakeHumanTurn(game, cell); err != nil {
		return game, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Debug("turn made", "mark", mark, "cell", cell, "status", game.Status)

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

// ComputerTurn lets the search engine play O. Any presentation delay belongs to the caller.
func (that *GameManager) ComputerTurn(ctx context.Context, id string) (int, *entity.Game, error) {
	log := that.logger.With("method", "ComputerTurn", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return -1, nil, err
	}

	cell, err := that.bot.MakeTurn(game)
	if err != nil {
		return -1, game, fmt.Errorf("failed computer turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return -1, nil, err
	}

	log.Debug("computer turn made", "cell", cell, "status", game.Status)

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return cell, game, nil
}

func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	tictactoe.Reset(game)

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game reset", "gameID", id, "scoreX", game.Score.X, "scoreO", game.Score.O)

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
