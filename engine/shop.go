package engine

import (
	"fmt"

	"conquest/game"
)

// PurchaseTroops buys count troops for the current player and places them on pos.
func (e *Engine) PurchaseTroops(pos game.Position, count int) error {
	if e.status != game.Running {
		return ErrNotRunning
	}
	p := e.player(e.currentPlayer)
	cell := e.grid.At(pos)

	var err error
	switch {
	case cell == nil:
		err = game.ErrOutOfBounds
	case count <= 0:
		err = game.ErrInvalidCount
	case cell.Owner != p.ID:
		err = game.ErrNotOwner
	case count > p.Money/e.settings.TroopCost:
		err = game.ErrInsufficientFunds
	}
	e.metrics.AddAction(p.ID, game.PurchaseAction, err == nil)
	if err != nil {
		e.message = fmt.Sprintf(msgPurchaseFailed, err)
		return fmt.Errorf("purchase %d troops at %s: %w", count, pos, err)
	}

	cost := count * e.settings.TroopCost
	p.Money -= cost
	cell.Troops += count
	game.RecomputeStats(e.grid, e.players)
	e.message = fmt.Sprintf(msgPurchased, count, pos, cost)
	e.logger.Debug().Int("player", p.ID).Stringer("cell", pos).Int("count", count).Int("cost", cost).Msg("Troops purchased")
	return nil
}

// UpgradeToCapital turns an owned cell into a capital for the current player.
func (e *Engine) UpgradeToCapital(pos game.Position) error {
	if e.status != game.Running {
		return ErrNotRunning
	}
	p := e.player(e.currentPlayer)
	cell := e.grid.At(pos)

	var err error
	switch {
	case cell == nil:
		err = game.ErrOutOfBounds
	case cell.Owner != p.ID:
		err = game.ErrNotOwner
	case cell.IsCapital:
		err = game.ErrAlreadyCapital
	case p.Money < e.settings.CapitalCost:
		err = game.ErrInsufficientFunds
	}
	e.metrics.AddAction(p.ID, game.UpgradeAction, err == nil)
	if err != nil {
		e.message = fmt.Sprintf(msgUpgradeFailed, err)
		return fmt.Errorf("upgrade %s: %w", pos, err)
	}

	p.Money -= e.settings.CapitalCost
	cell.IsCapital = true
	game.RecomputeStats(e.grid, e.players)
	e.message = fmt.Sprintf(msgUpgraded, pos)
	e.logger.Debug().Int("player", p.ID).Stringer("cell", pos).Msg("Capital founded")
	return nil
}
