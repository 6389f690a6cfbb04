package engine

import (
	"fmt"

	"conquest/game"
)

// executeAttack resolves an attack that already passed checkAttack, then
// applies elimination and victory.
func (e *Engine) executeAttack(from, to game.Position) game.AttackResult {
	attacker := e.CurrentPlayer()
	src, dst := e.grid.At(from), e.grid.At(to)

	result := game.ResolveAttack(src, dst, e.rules, e.roller)
	e.movesAvailable--
	e.metrics.AddAction(attacker.ID, game.AttackAction, result.Captured)

	if result.Captured {
		e.message = fmt.Sprintf(msgCaptured, attacker.Name, to)
	} else {
		e.message = fmt.Sprintf(msgAttackFailed, attacker.Name, to)
	}
	e.logger.Debug().
		Int("player", attacker.ID).
		Stringer("from", from).
		Stringer("to", to).
		Int("troops", result.AttackingTroops).
		Float64("attack", result.AttackPower).
		Float64("defense", result.DefensePower).
		Bool("captured", result.Captured).
		Msg("Attack")

	if result.Captured && result.WasCapital && result.PreviousOwner != game.Unowned {
		e.checkElimination(result.PreviousOwner)
	}
	game.RecomputeStats(e.grid, e.players)
	e.checkVictory()
	return result
}

func (e *Engine) checkElimination(id int) {
	p := e.player(id)
	if !p.IsActive || e.grid.CapitalCount(id) > 0 {
		return
	}
	p.IsActive = false
	e.message = fmt.Sprintf(msgDefeated, p.Name)
	e.metrics.AddElimination(id)
	e.logger.Info().Int("player", id).Str("name", p.Name).Msg("Player eliminated")
}

// checkVictory ends the game once at most one player is active.
func (e *Engine) checkVictory() {
	if game.ActiveCount(e.players) > 1 {
		return
	}
	e.winner = game.Unowned
	e.message = msgNobodyWins
	for _, p := range e.players {
		if p.IsActive {
			e.winner = p.ID
			e.message = fmt.Sprintf(msgWins, p.Name)
			break
		}
	}
	e.finish()
}

func (e *Engine) finish() {
	e.status = game.GameOver
	e.selected = nil
	e.logger.Info().Int("winner", e.winner).Int("turn", e.turn).Msg("Game over")
}
