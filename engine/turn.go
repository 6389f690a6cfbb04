package engine

import (
	"fmt"

	"conquest/game"
)

// EndTurn pays the current player, hands the turn to the next active player
// and plays every AI turn that follows.
func (e *Engine) EndTurn() error {
	if e.status != game.Running {
		return ErrNotRunning
	}
	e.advanceTurn()
	e.runAITurns()
	return nil
}

// ProcessAITurns plays AI turns until a human is to move or the game ends.
// Games whose first player is an AI need it once after InitializeGame.
func (e *Engine) ProcessAITurns() error {
	if e.status != game.Running {
		return ErrNotRunning
	}
	e.runAITurns()
	return nil
}

func (e *Engine) advanceTurn() {
	ending := e.player(e.currentPlayer)
	income := ending.Capitals * e.settings.MoneyPerCapital
	ending.Money += income
	e.metrics.AddAction(ending.ID, game.EndTurnAction, true)
	e.metrics.EndTurn(e.turn, ending.ID)

	e.currentPlayer = e.nextActivePlayer()
	e.selected = nil
	e.movesAvailable = e.settings.TroopsPerTurn
	e.turn++

	next := e.player(e.currentPlayer)
	if income > 0 {
		e.message = fmt.Sprintf(msgTurnIncome, next.Name, ending.Name, income)
	} else {
		e.message = fmt.Sprintf(msgTurn, next.Name)
	}
	e.logger.Debug().Int("turn", e.turn).Int("player", next.ID).Int("income", income).Msg("Turn started")
}

// nextActivePlayer returns the next active player after the current one in
// seat order, or the current player when nobody else is active.
func (e *Engine) nextActivePlayer() int {
	n := len(e.players)
	for i := 1; i < n; i++ {
		idx := (e.currentPlayer + i) % n
		if e.players[idx].IsActive {
			return idx
		}
	}
	return e.currentPlayer
}

func (e *Engine) runAITurns() {
	idle := 0
	for e.status == game.Running && e.CurrentPlayer().IsAI {
		if e.playAITurn() == 0 {
			idle++
		} else {
			idle = 0
		}
		if e.status != game.Running {
			return
		}
		// Nothing changes between idle AI turns, so a full idle round repeats forever.
		if idle >= game.ActiveCount(e.players) && !e.humanActive() {
			e.stalemate()
			return
		}
		e.advanceTurn()
	}
}

// playAITurn spends the current AI's move budget and returns the number of attacks made.
func (e *Engine) playAITurn() int {
	id := e.currentPlayer
	attacks := 0
	for e.status == game.Running && e.movesAvailable > 0 {
		from, to, ok := e.agent.NextAttack(e.grid, id)
		if !ok {
			break
		}
		if err := e.checkAttack(from, to); err != nil {
			e.logger.Warn().Err(err).Int("player", id).Stringer("from", from).Stringer("to", to).Msg("Agent proposed an illegal attack")
			break
		}
		e.executeAttack(from, to)
		attacks++
	}
	return attacks
}

func (e *Engine) humanActive() bool {
	for _, p := range e.players {
		if p.IsActive && !p.IsAI {
			return true
		}
	}
	return false
}

// stalemate ends a game no remaining player can progress, awarding it to the standings leader.
func (e *Engine) stalemate() {
	leader, ok := game.Leader(e.players)
	if !ok {
		e.winner = game.Unowned
		e.message = msgNobodyWins
	} else {
		e.winner = leader.ID
		e.message = fmt.Sprintf(msgStalemate, leader.Name)
	}
	e.finish()
}
