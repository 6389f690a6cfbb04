package engine

// Status messages shown to the player after each operation.
const (
	msgStarted         = "Game started! %s's turn."
	msgFallback        = "Could not set up the requested game, started a default one. %s's turn."
	msgSelected        = "Selected %s with %d troops"
	msgDeselected      = "Selection cleared"
	msgNotEnoughTroops = "Not enough troops to attack from %s"
	msgTooFar          = "Invalid move: %s is too far from %s"
	msgNoMovesLeft     = "No moves left this turn"
	msgCaptured        = "%s captured %s"
	msgAttackFailed    = "%s's attack on %s failed"
	msgDefeated        = "%s has been defeated!"
	msgWins            = "%s wins!"
	msgNobodyWins      = "Nobody wins!"
	msgStalemate       = "Stalemate! %s wins with the most territory."
	msgTurn            = "%s's turn"
	msgTurnIncome      = "%s's turn. %s earned $%d."
	msgPurchased       = "Bought %d troops at %s for $%d"
	msgPurchaseFailed  = "Purchase failed: %v"
	msgUpgraded        = "%s is now a capital"
	msgUpgradeFailed   = "Upgrade failed: %v"
	msgPaused          = "Game paused"
	msgResumed         = "Game resumed"
)
