// meta/meta.go
package meta

// GRID_WIDTH and GRID_HEIGHT define the default board size.
const GRID_WIDTH = 10
const GRID_HEIGHT = 10

// HUMAN_PLAYERS and AI_PLAYERS define the default seats.
const HUMAN_PLAYERS = 1
const AI_PLAYERS = 3

const INITIAL_MONEY = 10
const INITIAL_TROOPS = 5

// TROOPS_PER_TURN defines the number of attacks a player may make each turn.
const TROOPS_PER_TURN = 3

const MONEY_PER_CAPITAL = 5
const CAPITAL_COST = 20
const TROOP_COST = 1

// GAMES defines the number of games per simulation batch.
const GAMES = 20

// SEED defines the default seed of a simulation batch.
const SEED = 1
