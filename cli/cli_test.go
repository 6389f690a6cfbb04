package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"conquest/engine"
	"conquest/game"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlayCommand(t *testing.T) {
	out, err := runRoot(t, "show\nplayers\nclick 9 9\nbogus\nend\nquit\n",
		"play", "--seed", "1", "--width", "5", "--height", "5", "--humans", "1", "--ais", "1")

	require.NoError(t, err)
	require.Contains(t, out, "Game started! Player 1's turn.")
	require.Contains(t, out, "Turn 1 | Player 1 (A)")
	require.Contains(t, out, "RANK")
	require.Contains(t, out, "AI 1 (ai)")
	require.Contains(t, out, "Error: click (9, 9): position is outside the grid")
	require.Contains(t, out, `Error: unknown command "bogus"`)
	require.Contains(t, out, "Turn 3 | Player 1 (A)")
}

func TestPlayStopsAtEndOfInput(t *testing.T) {
	out, err := runRoot(t, "", "play", "--seed", "2")

	require.NoError(t, err)
	require.Contains(t, out, "Turn 1")
}

func TestSimulateCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runRoot(t, "",
		"simulate", "--games", "3", "--seed", "5", "--width", "6", "--height", "6", "--ais", "3", "--workers", "2", "--out", dir)

	require.NoError(t, err)
	require.Contains(t, out, "Games: 3 (4 AI players on 6x6)")
	require.Contains(t, out, "Records: "+dir)
	require.Contains(t, out, "WINNER")
}

func TestSimulateRejectsBadSettings(t *testing.T) {
	_, err := runRoot(t, "", "simulate", "--games", "1", "--humans", "0", "--ais", "1")

	require.ErrorIs(t, err, game.ErrInvalidSettings)
}

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, *engine.Engine) {
	t.Helper()
	e := engine.New(engine.WithSeed(4), engine.WithLogger(zerolog.Nop()))
	e.InitializeGame(game.FallbackSettings())
	var out bytes.Buffer
	return NewShell(e, strings.NewReader(""), &out), &out, e
}

func TestShellExecute(t *testing.T) {
	t.Run("validates arguments", func(t *testing.T) {
		s, _, _ := newTestShell(t)
		require.ErrorContains(t, s.Execute("click 1"), "usage: click X Y")
		require.ErrorContains(t, s.Execute("buy 1 x 2"), `invalid number "x"`)
		require.NoError(t, s.Execute("   "))
	})

	t.Run("reports rejections through the message", func(t *testing.T) {
		s, out, e := newTestShell(t)

		require.NoError(t, s.Execute("upgrade 0 0"))

		require.Contains(t, e.Message(), "Upgrade failed")
		require.Contains(t, out.String(), e.Message())
	})

	t.Run("buys troops on the capital", func(t *testing.T) {
		s, _, e := newTestShell(t)
		capital := e.Grid().Positions(func(c game.Cell) bool { return c.Owner == 0 })[0]

		require.NoError(t, s.Execute(fmt.Sprintf("buy %d %d 2", capital.X, capital.Y)))

		cell, _ := e.Cell(capital)
		require.Equal(t, 7, cell.Troops)
	})

	t.Run("refuses actions while paused", func(t *testing.T) {
		s, _, _ := newTestShell(t)
		require.NoError(t, s.Execute("pause"))
		require.ErrorIs(t, s.Execute("end"), engine.ErrNotRunning)
		require.NoError(t, s.Execute("resume"))
		require.Error(t, s.Execute("resume"))
	})

	t.Run("prints a json snapshot", func(t *testing.T) {
		s, out, _ := newTestShell(t)
		require.NoError(t, s.Execute("json"))
		require.Contains(t, out.String(), `"status": "running"`)
	})

	t.Run("starts over", func(t *testing.T) {
		s, _, e := newTestShell(t)
		require.NoError(t, s.Execute("end"))
		require.Equal(t, 3, e.Turn())
		require.NoError(t, s.Execute("new"))
		require.Equal(t, 1, e.Turn())
	})
}

func TestCellLabel(t *testing.T) {
	selected := game.Position{X: 1, Y: 2}
	require.Equal(t, ".", cellLabel(game.Cell{Owner: game.Unowned}, nil))
	require.Equal(t, "B4", cellLabel(game.Cell{Owner: 1, Troops: 4}, nil))
	require.Equal(t, "[A5*]", cellLabel(game.Cell{X: 1, Y: 2, Owner: 0, Troops: 5, IsCapital: true}, &selected))
}

func TestAgentFlag(t *testing.T) {
	out, err := runRoot(t, "",
		"simulate", "--games", "1", "--width", "5", "--height", "5", "--agent", "montecarlo", "--agent-episodes", "4")
	require.NoError(t, err)
	require.Contains(t, out, "Games: 1")

	_, err = runRoot(t, "", "play", "--agent", "minimax")
	require.ErrorContains(t, err, `unknown agent "minimax"`)
}
