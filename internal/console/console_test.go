package console

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runConsole(t *testing.T, input string) (string, []time.Duration) {
	t.Helper()

	var out bytes.Buffer
	var pauses []time.Duration

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(logger, strings.NewReader(input), &out, 500*time.Millisecond, WithSleep(func(d time.Duration) {
		pauses = append(pauses, d)
	}))

	require.NoError(t, c.Run())

	return out.String(), pauses
}

func TestConsole_Menu(t *testing.T) {
	t.Run("Exit leaves right away", func(t *testing.T) {
		out, _ := runConsole(t, "3\n")

		assert.Contains(t, out, "Player vs Computer")
		assert.NotContains(t, out, "Player X's Turn")
	})

	t.Run("Unknown option is reported", func(t *testing.T) {
		out, _ := runConsole(t, "7\n3\n")

		assert.Contains(t, out, `Unknown option "7"`)
	})

	t.Run("End of input stops the program", func(t *testing.T) {
		out, _ := runConsole(t, "1\n")

		assert.Contains(t, out, "Player X's Turn")
	})
}

func TestConsole_PlayerVsPlayer(t *testing.T) {
	t.Run("Win is announced, scored and the board resets", func(t *testing.T) {
		// Given: X takes the top row while O plays the middle row
		input := "1\n1\n4\n2\n5\n3\nq\n"

		// When: playing it out
		out, pauses := runConsole(t, input)

		// Then: X wins, the score is shown and a new round begins with X
		assert.Contains(t, out, "Congratulations! Player X wins!")
		assert.Contains(t, out, "Player X: 1 | Player O: 0")
		assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Player X: 1 | Player O: 0"))
		assert.Empty(t, pauses)
	})

	t.Run("Occupied cell and bad input are rejected", func(t *testing.T) {
		out, _ := runConsole(t, "1\n5\n5\nfoo\nq\n")

		assert.Contains(t, out, "That cell is already taken")
		assert.Contains(t, out, "Choose a cell from 1 to 9")
		assert.Contains(t, out, "Player O's Turn")
	})

	t.Run("Score survives a trip to the menu", func(t *testing.T) {
		out, _ := runConsole(t, "1\n1\n4\n2\n5\n3\nm\n1\nq\n")

		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Equal(t, "Player X: 1 | Player O: 0", lines[len(lines)-1])
	})
}

func TestConsole_PlayerVsComputer(t *testing.T) {
	t.Run("Computer answers after the pause", func(t *testing.T) {
		// Given: the human opens in the top-left corner
		out, pauses := runConsole(t, "2\n1\nq\n")

		// Then: the computer waited once and took the center
		assert.Equal(t, []time.Duration{500 * time.Millisecond}, pauses)
		assert.Contains(t, out, "Computer is thinking...")
		assert.Contains(t, out, "Computer plays 5")
	})

	t.Run("Human cannot beat the computer down the left column", func(t *testing.T) {
		// Given: the human plays 1, then 4, then 7
		out, _ := runConsole(t, "2\n1\n4\n7\nq\n")

		// Then: the computer blocked at 7 before the human got there
		assert.Contains(t, out, "Computer plays 7")
		assert.NotContains(t, out, "Player X wins!")
	})
}
