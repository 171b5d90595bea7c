// Package console is the local terminal front end: main menu, board, turn
// indicator and running score. It drives the same turn controller as the
// REST service and owns the pause shown before the computer moves.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/bailey435/baileybennett-tic-tac-toe/internal/apperror"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/entity"
	"github.com/bailey435/baileybennett-tic-tac-toe/internal/tictactoe"
)

const localGameID = "local"

type Console struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
	styles styles

	delay time.Duration
	sleep func(time.Duration)

	// score survives resets and trips back to the menu
	score entity.Score
}

type Option func(*Console)

// WithSleep replaces time.Sleep for the computer's thinking pause.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Console) {
		c.sleep = sleep
	}
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, delay time.Duration, opts ...Option) *Console {
	c := &Console{
		logger: logger.With("component", "console"),
		in:     bufio.NewScanner(in),
		out:    out,
		styles: newStyles(out),
		delay:  delay,
		sleep:  time.Sleep,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run shows the main menu until the player exits or input ends.
func (that *Console) Run() error {
	for {
		that.renderMenu()

		line, ok := that.readLine()
		if !ok {
			return nil
		}

		var gameType string
		switch line {
		case "1":
			gameType = entity.PvPType
		case "2":
			gameType = entity.WithBotType
		case "3", "q":
			return nil
		default:
			that.println("Unknown option " + strconv.Quote(line))
			continue
		}

		quit, err := that.play(gameType)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// play runs rounds of one mode. It reports quit=true when the player leaves the program.
func (that *Console) play(gameType string) (bool, error) {
	game := entity.NewGame(localGameID, gameType)
	game.Score = that.score

	log := that.logger.With("type", gameType)
	log.Debug("game started")

	for {
		if game.IsComputerTurn() {
			that.println("Computer is thinking...")
			that.sleep(that.delay)

			cell, err := tictactoe.MakeComputerTurn(game)
			if err != nil {
				return true, fmt.Errorf("computer turn failed: %w", err)
			}

			log.Debug("computer moved", "cell", cell)
			that.println(fmt.Sprintf("Computer plays %d", cell+1))
			that.finishRound(game)

			continue
		}

		that.renderGame(game)

		line, ok := that.readLine()
		if !ok {
			return true, nil
		}

		switch line {
		case "q":
			return true, nil
		case "m":
			that.score = game.Score
			return false, nil
		case "r":
			tictactoe.Reset(game)
			continue
		}

		cell, err := strconv.Atoi(line)
		if err != nil || cell < 1 || cell > entity.BoardSize {
			that.println("Choose a cell from 1 to 9, r to reset, m for the menu or q to quit")
			continue
		}

		if err = tictactoe.MakeHumanTurn(game, cell-1); err != nil {
			that.println(describe(err))
			continue
		}

		that.finishRound(game)
	}
}

// finishRound announces a finished game and starts the next round right away.
func (that *Console) finishRound(game *entity.Game) {
	if !game.IsFinished() {
		return
	}

	that.println(that.styles.board(&game.Board))

	if game.Winner == entity.MarkTie {
		that.println(that.styles.announce.Render("It's a Draw!"))
	} else {
		that.println(that.styles.announce.Render(fmt.Sprintf("Congratulations! Player %s wins!", game.Winner)))
	}

	that.score = game.Score
	that.println(scoreLine(game.Score))

	tictactoe.Reset(game)
}

func (that *Console) renderMenu() {
	that.println(that.styles.title.Render("Tic-Tac-Toe"))
	that.println("1) Player vs Player")
	that.println("2) Player vs Computer")
	that.println("3) Exit")
}

func (that *Console) renderGame(game *entity.Game) {
	that.println(that.styles.board(&game.Board))
	that.println(that.styles.turn.Render(fmt.Sprintf("Player %s's Turn", game.Turn)))
	that.println(scoreLine(game.Score))
}

func (that *Console) readLine() (string, bool) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
		return "", false
	}

	return strings.ToLower(strings.TrimSpace(that.in.Text())), true
}

func (that *Console) println(s string) {
	if _, err := fmt.Fprintln(that.out, s); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func scoreLine(score entity.Score) string {
	return fmt.Sprintf("Player X: %d | Player O: %d", score.X, score.O)
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Wait for your turn"
	default:
		return err.Error()
	}
}
