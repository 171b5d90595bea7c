package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bailey435/baileybennett-tic-tac-toe/internal/apperror"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/entity"
)

type gameUseCase interface {
	CreateGame(ctx context.Context, gameType string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	ComputerTurn(ctx context.Context, id string) (int, *entity.Game, error)
	ResetGame(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type createGameRequest struct {
	Type string `json:"type"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type computerTurnResponse struct {
	Cell int          `json:"cell"`
	Game *entity.Game `json:"game"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errMissingCell = errors.New("cell is required")

type handlers struct {
	logger *slog.Logger
	games  gameUseCase
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	game, err := that.games.CreateGame(r.Context(), req.Type)
	if err != nil {
		that.writeError(w, r, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	if req.Cell == nil {
		that.writeError(w, r, http.StatusBadRequest, errMissingCell)
		return
	}

	game, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, r, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) computerTurn(w http.ResponseWriter, r *http.Request) {
	cell, game, err := that.games.ComputerTurn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, computerTurnResponse{Cell: cell, Game: game})
}

func (that *handlers) resetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.ResetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, statusFor(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrUnknownGameType):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNotComputerTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNoAvailableMoves):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	log := that.logger.With("method", r.Method, "path", r.URL.Path)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		message = http.StatusText(status)
	} else {
		log.Debug("request rejected", "status", status, "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
