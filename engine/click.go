package engine

import (
	"errors"
	"fmt"

	"conquest/game"
)

// OnCellClick drives the select-then-attack interaction of a human player.
//
// With nothing selected, clicking an owned cell with troops to spare selects
// it. With a selection, clicking it again clears it, clicking another owned
// cell selects that one instead, and clicking any other cell attacks it. A
// rejected attack keeps the selection. The turn ends on its own once the
// move budget is spent.
func (e *Engine) OnCellClick(pos game.Position) error {
	if e.status != game.Running {
		return ErrNotRunning
	}
	if e.CurrentPlayer().IsAI {
		return ErrNotHumanTurn
	}
	cell := e.grid.At(pos)
	if cell == nil {
		return fmt.Errorf("click %s: %w", pos, game.ErrOutOfBounds)
	}

	if e.selected == nil {
		return e.selectCell(cell)
	}

	from := *e.selected
	if pos == from {
		e.selected = nil
		e.message = msgDeselected
		return nil
	}
	if cell.Owner == e.currentPlayer {
		e.selected = nil
		return e.selectCell(cell)
	}

	if err := e.checkAttack(from, pos); err != nil {
		e.message = e.rejection(from, pos, err)
		return err
	}

	e.selected = nil
	e.executeAttack(from, pos)
	if e.status == game.Running && e.movesAvailable <= 0 {
		return e.EndTurn()
	}
	return nil
}

func (e *Engine) selectCell(cell *game.Cell) error {
	if cell.Owner != e.currentPlayer {
		return nil
	}
	if cell.Troops <= 1 {
		e.message = fmt.Sprintf(msgNotEnoughTroops, cell.Position())
		return game.ErrNotEnoughTroops
	}
	pos := cell.Position()
	e.selected = &pos
	e.message = fmt.Sprintf(msgSelected, pos, cell.Troops)
	e.metrics.AddAction(e.currentPlayer, game.SelectAction, true)
	return nil
}

// CanAttack reports whether the current player may attack to from from.
func (e *Engine) CanAttack(from, to game.Position) bool {
	return e.checkAttack(from, to) == nil
}

// checkAttack returns the first rule an attack from from to to breaks.
func (e *Engine) checkAttack(from, to game.Position) error {
	if e.grid == nil {
		return ErrNotRunning
	}
	src, dst := e.grid.At(from), e.grid.At(to)
	switch {
	case src == nil || dst == nil:
		return game.ErrOutOfBounds
	case !game.Adjacent(from, to):
		return game.ErrTooFar
	case src.Troops <= 1:
		return game.ErrNotEnoughTroops
	case e.movesAvailable <= 0:
		return game.ErrNoMovesLeft
	case src.Owner == dst.Owner:
		return game.ErrSameOwner
	}
	return nil
}

func (e *Engine) rejection(from, to game.Position, err error) string {
	switch {
	case errors.Is(err, game.ErrTooFar):
		return fmt.Sprintf(msgTooFar, to, from)
	case errors.Is(err, game.ErrNotEnoughTroops):
		return fmt.Sprintf(msgNotEnoughTroops, from)
	case errors.Is(err, game.ErrNoMovesLeft):
		return msgNoMovesLeft
	}
	return fmt.Sprintf("Invalid move: %v", err)
}
