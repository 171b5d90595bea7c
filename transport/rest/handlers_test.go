package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bailey435/baileybennett-tic-tac-toe/internal/apperror"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/entity"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/service"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/usecase"
)

// memoryGames keeps copies of games so handlers never share state with the test.
type memoryGames struct {
	mu    sync.Mutex
	games map[string]entity.Game
}

func (m *memoryGames) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.games[game.ID] = *game
	return nil
}

func (m *memoryGames) GetByID(_ context.Context, id string) (*entity.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	game, ok := m.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}
	return &game, nil
}

func (m *memoryGames) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[id]; !ok {
		return apperror.ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

func newTestRouter(t *testing.T) (http.Handler, *memoryGames) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := &memoryGames{games: map[string]entity.Game{}}
	manager := usecase.NewGameManager(logger, repo, service.NewBotService())

	return NewRouter(logger, manager), repo
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	return rr
}

func decodeGame(t *testing.T, rr *httptest.ResponseRecorder) *entity.Game {
	t.Helper()

	var game entity.Game
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&game))
	return &game
}

func createGame(t *testing.T, h http.Handler, gameType string) *entity.Game {
	t.Helper()

	rr := doRequest(t, h, http.MethodPost, "/games", `{"type":"`+gameType+`"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	return decodeGame(t, rr)
}

func TestPing(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := doRequest(t, h, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}

func TestCreateGame(t *testing.T) {
	t.Run("Creates a game against the computer", func(t *testing.T) {
		h, _ := newTestRouter(t)

		game := createGame(t, h, entity.WithBotType)

		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.MarkX, game.Turn)
		assert.Equal(t, entity.WithBotType, game.Type)
	})

	t.Run("Unknown type is a bad request", func(t *testing.T) {
		h, _ := newTestRouter(t)

		rr := doRequest(t, h, http.MethodPost, "/games", `{"type":"online"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "unknown game type")
	})

	t.Run("Malformed body is a bad request", func(t *testing.T) {
		h, _ := newTestRouter(t)

		rr := doRequest(t, h, http.MethodPost, "/games", `{`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetGame(t *testing.T) {
	t.Run("Returns the stored game", func(t *testing.T) {
		h, _ := newTestRouter(t)
		created := createGame(t, h, entity.PvPType)

		rr := doRequest(t, h, http.MethodGet, "/games/"+created.ID, "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, created, decodeGame(t, rr))
	})

	t.Run("Unknown id is not found", func(t *testing.T) {
		h, _ := newTestRouter(t)

		rr := doRequest(t, h, http.MethodGet, "/games/nope", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestMakeTurn(t *testing.T) {
	t.Run("Plays the move", func(t *testing.T) {
		h, _ := newTestRouter(t)
		created := createGame(t, h, entity.PvPType)

		rr := doRequest(t, h, http.MethodPost, "/games/"+created.ID+"/turns", `{"cell":4}`)

		require.Equal(t, http.StatusOK, rr.Code)
		game := decodeGame(t, rr)
		assert.Equal(t, entity.MarkX, game.Board[4])
		assert.Equal(t, entity.MarkO, game.Turn)
	})

	t.Run("Maps domain errors to status codes", func(t *testing.T) {
		h, _ := newTestRouter(t)
		created := createGame(t, h, entity.WithBotType)
		path := "/games/" + created.ID + "/turns"

		assert.Equal(t, http.StatusBadRequest, doRequest(t, h, http.MethodPost, path, `{}`).Code)
		assert.Equal(t, http.StatusBadRequest, doRequest(t, h, http.MethodPost, path, `{"cell":9}`).Code)

		require.Equal(t, http.StatusOK, doRequest(t, h, http.MethodPost, path, `{"cell":0}`).Code)

		// O belongs to the computer
		assert.Equal(t, http.StatusConflict, doRequest(t, h, http.MethodPost, path, `{"cell":1}`).Code)
	})
}

func TestComputerTurn(t *testing.T) {
	t.Run("Computer answers a corner opening with the center", func(t *testing.T) {
		// Given: a bot game where X opened in the corner
		h, _ := newTestRouter(t)
		created := createGame(t, h, entity.WithBotType)
		require.Equal(t, http.StatusOK, doRequest(t, h, http.MethodPost, "/games/"+created.ID+"/turns", `{"cell":0}`).Code)

		// When: asking for the computer turn
		rr := doRequest(t, h, http.MethodPost, "/games/"+created.ID+"/computer-turn", "")

		// Then: the computer took the center and X is to move
		require.Equal(t, http.StatusOK, rr.Code)

		var resp computerTurnResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 4, resp.Cell)
		assert.Equal(t, entity.MarkO, resp.Game.Board[4])
		assert.Equal(t, entity.MarkX, resp.Game.Turn)
	})

	t.Run("Computer cannot move first", func(t *testing.T) {
		h, _ := newTestRouter(t)
		created := createGame(t, h, entity.WithBotType)

		rr := doRequest(t, h, http.MethodPost, "/games/"+created.ID+"/computer-turn", "")

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestResetAndDelete(t *testing.T) {
	// Given: a pvp game won by X
	h, repo := newTestRouter(t)
	created := createGame(t, h, entity.PvPType)
	path := "/games/" + created.ID

	for _, cell := range []string{"0", "3", "1", "4", "2"} {
		require.Equal(t, http.StatusOK, doRequest(t, h, http.MethodPost, path+"/turns", `{"cell":`+cell+`}`).Code)
	}

	won, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, entity.MarkX, won.Winner)

	// When: another move is attempted, then the game is reset
	assert.Equal(t, http.StatusConflict, doRequest(t, h, http.MethodPost, path+"/turns", `{"cell":5}`).Code)

	rr := doRequest(t, h, http.MethodPost, path+"/reset", "")

	// Then: the board is cleared and X's win is kept in the score
	require.Equal(t, http.StatusOK, rr.Code)
	game := decodeGame(t, rr)
	assert.Equal(t, entity.Board{}, game.Board)
	assert.Equal(t, entity.Score{X: 1}, game.Score)

	// And: deleting removes the session
	assert.Equal(t, http.StatusNoContent, doRequest(t, h, http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, h, http.MethodGet, path, "").Code)
}
