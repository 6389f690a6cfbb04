package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"conquest/engine"
	"conquest/game"
	"conquest/utils"
)

var errQuit = errors.New("quit")

type command struct {
	name  string
	usage string
	args  int
	run   func(s *Shell, args []int) error
}

func newCommands() []command {
	return []command{
		{"click", "click X Y", 2, func(s *Shell, a []int) error { return s.engine.OnCellClick(game.Position{X: a[0], Y: a[1]}) }},
		{"end", "end", 0, func(s *Shell, _ []int) error { return s.engine.EndTurn() }},
		{"buy", "buy X Y N", 3, func(s *Shell, a []int) error { return s.engine.PurchaseTroops(game.Position{X: a[0], Y: a[1]}, a[2]) }},
		{"upgrade", "upgrade X Y", 2, func(s *Shell, a []int) error { return s.engine.UpgradeToCapital(game.Position{X: a[0], Y: a[1]}) }},
		{"pause", "pause", 0, func(s *Shell, _ []int) error { return s.engine.Pause() }},
		{"resume", "resume", 0, func(s *Shell, _ []int) error { return s.engine.Resume() }},
		{"new", "new", 0, (*Shell).restart},
		{"show", "show", 0, func(s *Shell, _ []int) error { return nil }},
		{"players", "players", 0, (*Shell).printPlayers},
		{"json", "json", 0, (*Shell).printJSON},
		{"help", "help", 0, (*Shell).help},
		{"quit", "quit", 0, func(s *Shell, _ []int) error { return errQuit }},
	}
}

// rejections are the errors of game actions the engine refused. The engine
// message already explains them.
var rejections = []error{
	game.ErrNotEnoughTroops, game.ErrTooFar, game.ErrNoMovesLeft, game.ErrSameOwner,
	game.ErrInvalidCount, game.ErrNotOwner, game.ErrInsufficientFunds, game.ErrAlreadyCapital,
}

func isRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

// Shell is a line-oriented front end to an engine.
type Shell struct {
	engine   *engine.Engine
	in       *bufio.Scanner
	out      io.Writer
	commands []command
	names    []string
}

func NewShell(e *engine.Engine, in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		engine:   e,
		in:       bufio.NewScanner(in),
		out:      out,
		commands: newCommands(),
	}
	for _, c := range s.commands {
		s.names = append(s.names, c.name)
	}
	return s
}

// Run executes commands until quit or the end of input.
func (s *Shell) Run() error {
	renderBoard(s.out, s.engine.Snapshot())
	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}

		err := s.Execute(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "Error: %s\n", err)
		}
	}
}

// Execute runs a single command line. Rejected game actions are reported
// through the engine message and do not return an error.
func (s *Shell) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	i := utils.FindIndex(s.names, strings.ToLower(fields[0]))
	if i < 0 {
		return fmt.Errorf("unknown command %q, type help for the list", fields[0])
	}
	c := s.commands[i]
	if len(fields)-1 != c.args {
		return fmt.Errorf("usage: %s", c.usage)
	}
	args := make([]int, c.args)
	for j, field := range fields[1:] {
		v, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", field, err)
		}
		args[j] = v
	}

	if err := c.run(s, args); err != nil && !isRejection(err) {
		return err
	}
	switch c.name {
	case "players", "json", "help":
	default:
		renderBoard(s.out, s.engine.Snapshot())
	}
	return nil
}

func (s *Shell) restart(_ []int) error {
	s.engine.InitializeGame(s.engine.Settings())
	return s.engine.ProcessAITurns()
}

func (s *Shell) printPlayers(_ []int) error {
	return renderPlayers(s.out, s.engine.Snapshot())
}

func (s *Shell) printJSON(_ []int) error {
	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	return enc.Encode(s.engine.Snapshot())
}

func (s *Shell) help(_ []int) error {
	fmt.Fprintln(s.out, "Commands:")
	for _, c := range s.commands {
		fmt.Fprintf(s.out, "  %s\n", c.usage)
	}
	return nil
}
