package game

import "conquest/dice"

// AttackResult describes the outcome of a resolved attack.
type AttackResult struct {
	From, To        Position
	Attacker        int // Player ID of the attacker
	PreviousOwner   int // Owner of the target before the attack, possibly Unowned
	WasCapital      bool
	AttackingTroops int
	AttackPower     float64 // Zero when the target was unowned (no roll)
	DefensePower    float64
	Captured        bool
	AttackerLosses  int
	DefenderLosses  int
	RemainingTroops int // Troops left on the source cell
	DefendingTroops int // Troops left on the target cell
}

// ResolveAttack moves troops from one cell into another and applies the outcome
// to both cells. One troop always stays behind on the source cell. It does not
// check adjacency or turn state; callers validate first.
func ResolveAttack(from, to *Cell, rules Rules, roller dice.Roller) AttackResult {
	if from.Troops <= 1 {
		panic("cannot attack: source cell needs more than one troop")
	}

	attacking := from.Troops - 1
	result := AttackResult{
		From:            from.Position(),
		To:              to.Position(),
		Attacker:        from.Owner,
		PreviousOwner:   to.Owner,
		WasCapital:      to.IsCapital,
		AttackingTroops: attacking,
	}

	// Unowned cells fall without a fight
	if !to.IsOwned() {
		result.Captured = true
	} else {
		lo, hi := rules.AttackRange()
		result.AttackPower = float64(attacking) * dice.Uniform(roller, lo, hi)
		lo, hi = rules.DefenseRange()
		result.DefensePower = float64(to.Troops) * dice.Uniform(roller, lo, hi)
		result.Captured = result.AttackPower > result.DefensePower
	}

	if result.Captured {
		result.DefenderLosses = to.Troops
		from.Troops = 1
		to.Owner = from.Owner
		to.Troops = attacking
		to.IsCapital = false
	} else {
		before := from.Troops
		from.Troops = max(1, from.Troops-rules.AttackerLosses(attacking))
		result.AttackerLosses = before - from.Troops

		before = to.Troops
		to.Troops = max(1, to.Troops-rules.DefenderLosses(to.Troops))
		result.DefenderLosses = before - to.Troops
	}

	result.RemainingTroops = from.Troops
	result.DefendingTroops = to.Troops
	return result
}
