package game

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	SelectAction ActionType = iota
	AttackAction
	PurchaseAction
	UpgradeAction
	EndTurnAction
)

func (a ActionType) String() string {
	switch a {
	case SelectAction:
		return "select"
	case AttackAction:
		return "attack"
	case PurchaseAction:
		return "purchase"
	case UpgradeAction:
		return "upgrade"
	case EndTurnAction:
		return "end_turn"
	default:
		return "unknown"
	}
}
