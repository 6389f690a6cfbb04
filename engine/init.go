package engine

import (
	"fmt"

	"conquest/game"
)

// InitializeGame starts a new game, discarding any game in progress. Settings
// that fail validation are replaced by game.FallbackSettings so the engine
// always ends up with a grid and players. AI players are not moved here, see
// ProcessAITurns.
func (e *Engine) InitializeGame(settings game.Settings) {
	e.status = game.Loading

	format := msgStarted
	grid, players, err := e.setup(settings)
	if err != nil {
		e.logger.Warn().Err(err).Msg("Falling back to default settings")
		format = msgFallback
		settings = game.FallbackSettings()
		grid, players, err = e.setup(settings)
		if err != nil {
			panic(fmt.Sprintf("fallback settings rejected: %v", err))
		}
	}

	e.settings = settings
	e.grid = grid
	e.players = players
	e.currentPlayer = 0
	e.movesAvailable = settings.TroopsPerTurn
	e.selected = nil
	e.turn = 1
	e.winner = game.Unowned
	e.status = game.Running
	e.message = fmt.Sprintf(format, e.CurrentPlayer().Name)
	e.metrics.Start(settings, e.currentPlayer)

	e.logger.Info().
		Int("width", grid.Width).
		Int("height", grid.Height).
		Int("humans", settings.HumanPlayers).
		Int("ais", settings.AIPlayers).
		Msg("Game initialized")
}

// setup builds the board for settings without touching engine state.
func (e *Engine) setup(settings game.Settings) (*game.Grid, []game.Player, error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	grid := game.NewGrid(settings.GridWidth, settings.GridHeight)
	players := game.NewPlayers(settings.HumanPlayers, settings.AIPlayers, settings.InitialMoney)

	for _, p := range players {
		free := grid.Positions(func(c game.Cell) bool { return !c.IsOwned() })
		if len(free) == 0 {
			return nil, nil, fmt.Errorf("%w: no free cell for %s's capital", game.ErrInvalidSettings, p.Name)
		}
		cell := grid.At(free[e.roller.Intn(len(free))])
		cell.Owner = p.ID
		cell.Troops = settings.InitialTroops
		cell.IsCapital = true
		e.logger.Debug().Int("player", p.ID).Stringer("cell", cell.Position()).Msg("Placed capital")
	}

	game.RecomputeStats(grid, players)
	return grid, players, nil
}
